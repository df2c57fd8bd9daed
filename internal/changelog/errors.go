package changelog

import (
	"errors"
	"fmt"
)

// Source roles used in error messages.
const (
	RoleBaseline     = "baseline"
	RolePullRequests = "pull requests"
	RoleDates        = "dates"
	RoleBuilds       = "builds"
)

// MissingSourceError is returned when an input file is absent, unreadable,
// or (for the baseline) has no first line.
type MissingSourceError struct {
	Role string
	Path string
	Err  error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("reading %s file %s: %v", e.Role, e.Path, e.Err)
}

func (e *MissingSourceError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError is returned when a metadata ordinal has no matching
// line in one of the companion exports.
type IndexOutOfRangeError struct {
	Source string
	Index  int
	Length int
	Line   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("pull request on line %d needs %s line %d but the %s export has only %d lines",
		e.Line, e.Source, e.Index+1, e.Source, e.Length)
}

// MalformedRecordError is returned when a metadata line is not a well-formed
// record literal.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed pull request on line %d: %s", e.Line, e.Reason)
	}
	return "malformed pull request: " + e.Reason
}

// DateParseError is returned when a date line does not match the expected layout
// once the fixed prefix and suffix are stripped.
type DateParseError struct {
	Line int
	Raw  string
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing date %q for pull request on line %d: %v", e.Text, e.Line, e.Err)
	}
	return fmt.Sprintf("parsing date %q: %v", e.Text, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// IsMissingSourceError returns true if the error is a MissingSourceError.
func IsMissingSourceError(err error) bool {
	var e *MissingSourceError
	return errors.As(err, &e)
}

// IsIndexOutOfRangeError returns true if the error is an IndexOutOfRangeError.
func IsIndexOutOfRangeError(err error) bool {
	var e *IndexOutOfRangeError
	return errors.As(err, &e)
}

// IsMalformedRecordError returns true if the error is a MalformedRecordError.
func IsMalformedRecordError(err error) bool {
	var e *MalformedRecordError
	return errors.As(err, &e)
}

// IsDateParseError returns true if the error is a DateParseError.
func IsDateParseError(err error) bool {
	var e *DateParseError
	return errors.As(err, &e)
}
