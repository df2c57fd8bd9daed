package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	keyStyle       = color.New(color.Bold)
	dateStyle      = color.New(color.FgCyan)
	tagStyle       = color.New(color.FgGreen)
	componentStyle = color.New(color.FgYellow)
	droppedStyle   = color.New(color.FgRed)
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
	// Exclude names the internal-only component; matching records are marked
	// as dropped.
	Exclude string
}

// FormatTerminal writes one block per record: a summary line followed by the
// wrapped note, if any.
func FormatTerminal(records []Record, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for _, rec := range records {
		if err := writeRecord(rec, w, opts, width); err != nil {
			return fmt.Errorf("formatting %s: %w", rec.Key, err)
		}
	}
	return nil
}

func writeRecord(rec Record, w io.Writer, opts FormatOptions, width int) error {
	dropped := opts.Exclude != "" && !IsUserRelevant(rec, opts.Exclude)
	components := strings.Join(rec.Components, ", ")

	var line string
	if opts.Plain {
		line = fmt.Sprintf("%s %s", rec.Date, rec.Key)
		if rec.HasBuildTag() {
			line += " [" + rec.BuildTag + "]"
		}
		if components != "" {
			line += " (" + components + ")"
		}
		if dropped {
			line += " [dropped]"
		}
	} else {
		line = fmt.Sprintf("%s %s", dateStyle.Sprint(rec.Date), keyStyle.Sprint(rec.Key))
		if rec.HasBuildTag() {
			line += " " + tagStyle.Sprint("["+rec.BuildTag+"]")
		}
		if components != "" {
			line += " " + componentStyle.Sprint("("+components+")")
		}
		if dropped {
			line += " " + droppedStyle.Sprint("✗ dropped")
		}
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if !rec.HasNote || strings.TrimSpace(rec.Note) == "" {
		return nil
	}

	const prefix = "    "
	for _, para := range strings.Split(rec.Note, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, wrapText(para, width-len(prefix), prefix)); err != nil {
			return err
		}
	}
	return nil
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
