package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the change log as reStructuredText with an embedded raw HTML
// list. Given the same document it produces identical bytes.
func (d *Document) Render(w io.Writer) error {
	if err := renderHeader(d.Baseline, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for _, rec := range d.Records {
		if _, err := io.WriteString(w, RenderFragment(rec)); err != nil {
			return fmt.Errorf("rendering %s: %w", rec.Key, err)
		}
	}

	if err := renderFooter(w); err != nil {
		return fmt.Errorf("rendering footer: %w", err)
	}
	return nil
}

// RenderString is a convenience function that renders to a string.
func (d *Document) RenderString() (string, error) {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderHeader(baseline string, w io.Writer) error {
	header := `Change Log
==========

Summary of differences from ` + baseline + `

Pull Requests
+++++++++++++

.. raw:: html

   <ul>
`
	_, err := io.WriteString(w, header)
	return err
}

func renderFooter(w io.Writer) error {
	_, err := io.WriteString(w, "   </ul>\n\n|\n")
	return err
}

// RenderFragment formats one record as a list item followed by a blank line.
// The build tag superscript and the note are emitted only when present.
func RenderFragment(rec Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "   <li><p><i>%s</i> <b>%s</b>", rec.Date, rec.Key)
	if rec.HasBuildTag() {
		fmt.Fprintf(&b, " <sup>[%s]</sup>", rec.BuildTag)
	}
	if rec.HasNote {
		b.WriteString(" - ")
		b.WriteString(rec.Note)
	}
	b.WriteString("</p></li>\n\n")
	return b.String()
}
