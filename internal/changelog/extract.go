package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultNoteField is the metadata field holding the release note text.
	DefaultNoteField = "customfield_10500"

	// dateLayout matches git-style timestamps once the weekday prefix and the
	// zone suffix are stripped, e.g. "Jan 2 15:04:05 2006".
	dateLayout   = "Jan 2 15:04:05 2006"
	outputLayout = "01/02/06"

	datePrefixLen = 4
	dateSuffixLen = 6

	noteIndent = "   "
)

// notePathChars mark a note field that is a gjson path rather than a
// plain member name.
const notePathChars = `.*?|#@\`

var buildTagPattern = regexp.MustCompile(`tag: (\d\.\d\.\d\.\d+)`)

// ExtractOptions controls how metadata lines are interpreted.
type ExtractOptions struct {
	// NoteField is a gjson path below "fields" naming the note text.
	NoteField string
	// ExcludeComponent names the internal-only component. The note of a
	// record that will be filtered out is never required to be text.
	ExcludeComponent string
}

// Metadata is the part of a record carried by the metadata export.
type Metadata struct {
	Key        string
	Components []string
	Note       string
	HasNote    bool
}

// Extract parses every correlated row into a Record, in order.
// The first failure aborts extraction.
func Extract(rows []Row, opts ExtractOptions) ([]Record, error) {
	if opts.NoteField == "" {
		opts.NoteField = DefaultNoteField
	}
	if opts.ExcludeComponent == "" {
		opts.ExcludeComponent = DefaultExcludeComponent
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := extractRecord(row, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func extractRecord(row Row, opts ExtractOptions) (Record, error) {
	key, fields, components, err := parseRecord(row.Metadata)
	if err != nil {
		return Record{}, withLine(err, row.Line)
	}

	date, err := ParseDate(row.Date)
	if err != nil {
		return Record{}, withLine(err, row.Line)
	}

	rec := Record{
		Key:        key,
		Components: components,
		Date:       date,
		BuildTag:   ExtractBuildTag(row.Build),
		Line:       row.Line,
	}

	note, hasNote, err := parseNote(fields, opts.NoteField)
	if err != nil {
		if IsUserRelevant(rec, opts.ExcludeComponent) {
			return Record{}, withLine(err, row.Line)
		}
		// Dropped records never reach the report; an unusable note is ignored.
		note, hasNote = "", false
	}
	if hasNote {
		rec.Note = IndentNote(note)
		rec.HasNote = true
	}
	return rec, nil
}

// withLine records the metadata line number on line-aware errors.
func withLine(err error, line int) error {
	var malformed *MalformedRecordError
	if errors.As(err, &malformed) {
		malformed.Line = line
	}
	var de *DateParseError
	if errors.As(err, &de) {
		de.Line = line
	}
	return err
}

// ParseMetadata parses one metadata line.
//
// The line uses the JSON literal vocabulary (true, false, null) and is read
// with a structured parser; nothing in it is ever evaluated. The record needs
// a scalar "key" and a "fields.components" list whose entries all carry a
// string "name". The note is optional and may be null.
//
// With duplicate members the last one wins, as in any map built from the line.
func ParseMetadata(line, noteField string) (Metadata, error) {
	key, fields, components, err := parseRecord(line)
	if err != nil {
		return Metadata{}, err
	}

	note, hasNote, err := parseNote(fields, noteField)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{Key: key, Components: components, Note: note, HasNote: hasNote}, nil
}

// parseRecord checks the record shape and returns the key, the "fields"
// mapping and the component names.
func parseRecord(line string) (string, gjson.Result, []string, error) {
	if !gjson.Valid(line) {
		return "", gjson.Result{}, nil, &MalformedRecordError{Reason: "not a well-formed record literal"}
	}

	root := gjson.Parse(line)
	if !root.IsObject() {
		return "", gjson.Result{}, nil, &MalformedRecordError{Reason: "record is not a mapping"}
	}

	key := lastMember(root, "key")
	if !key.Exists() || key.Type == gjson.Null || key.IsObject() || key.IsArray() {
		return "", gjson.Result{}, nil, &MalformedRecordError{Reason: `missing or non-scalar "key"`}
	}

	fields := lastMember(root, "fields")
	if !fields.IsObject() {
		return "", gjson.Result{}, nil, &MalformedRecordError{Reason: `missing "fields" mapping`}
	}

	components, err := parseComponents(lastMember(fields, "components"))
	if err != nil {
		return "", gjson.Result{}, nil, err
	}
	return key.String(), fields, components, nil
}

// lastMember returns the last member of obj named name. gjson's path lookup
// stops at the first one.
func lastMember(obj gjson.Result, name string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == name {
			found = v
		}
		return true
	})
	return found
}

// parseNote reads the note at noteField below fields. A missing or null note
// is absent; any other non-text value is malformed.
func parseNote(fields gjson.Result, noteField string) (string, bool, error) {
	note := lastMember(fields, noteField)
	if strings.ContainsAny(noteField, notePathChars) {
		note = fields.Get(noteField)
	}
	switch {
	case !note.Exists(), note.Type == gjson.Null:
		return "", false, nil
	case note.Type == gjson.String:
		return note.String(), true, nil
	default:
		return "", false, &MalformedRecordError{Reason: fmt.Sprintf("note field %q is not text", noteField)}
	}
}

func parseComponents(list gjson.Result) ([]string, error) {
	if !list.IsArray() {
		return nil, &MalformedRecordError{Reason: `"fields.components" is not a list`}
	}

	entries := list.Array()
	names := make([]string, 0, len(entries))
	for i, entry := range entries {
		name := lastMember(entry, "name")
		if !entry.IsObject() || name.Type != gjson.String {
			return nil, &MalformedRecordError{Reason: fmt.Sprintf("component %d has no \"name\"", i)}
		}
		names = append(names, name.String())
	}
	return names, nil
}

// ParseDate strips the 4-character weekday prefix and the 6-character zone
// suffix from a date line and reformats the remainder as MM/DD/YY.
func ParseDate(raw string) (string, error) {
	text := stripDateAffixes(raw)

	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return "", &DateParseError{Raw: raw, Text: text, Err: err}
	}
	return t.Format(outputLayout), nil
}

// stripDateAffixes counts runes, not bytes. Lines too short to hold both
// affixes reduce to the empty string.
func stripDateAffixes(raw string) string {
	runes := []rune(raw)
	if len(runes) <= datePrefixLen+dateSuffixLen {
		return ""
	}
	return string(runes[datePrefixLen : len(runes)-dateSuffixLen])
}

// ExtractBuildTag returns the first "tag: X.Y.Z.N" version in the line,
// or the empty string when there is none.
func ExtractBuildTag(line string) string {
	m := buildTagPattern.FindStringSubmatch(line)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// IndentNote re-indents every continuation line of a note by three spaces.
func IndentNote(note string) string {
	return strings.ReplaceAll(note, "\n", "\n"+noteIndent)
}
