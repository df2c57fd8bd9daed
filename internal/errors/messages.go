package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/casadocs/prlog/internal/changelog"
	"github.com/casadocs/prlog/internal/config"
)

// FromPipeline converts a pipeline or configuration failure into a CLIError
// with remediation steps. Errors it does not recognise become runtime errors.
func FromPipeline(err error) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		missing    *changelog.MissingSourceError
		misaligned *changelog.IndexOutOfRangeError
		malformed  *changelog.MalformedRecordError
		badDate    *changelog.DateParseError
		writeErr   *changelog.WriteError
		cfgErr     *config.ValidationError
	)

	switch {
	case stderrors.As(err, &missing):
		return MissingSource(missing, err)
	case stderrors.As(err, &misaligned):
		return MisalignedExports(misaligned, err)
	case stderrors.As(err, &malformed):
		return MalformedRecord(malformed, err)
	case stderrors.As(err, &badDate):
		return UnparseableDate(badDate, err)
	case stderrors.As(err, &writeErr):
		return &CLIError{
			Category: Output,
			Message:  err.Error(),
			Remediation: []string{
				fmt.Sprintf("Check that the directory of %s exists and is writable", writeErr.Path),
				"Or set a different output with --output or PRLOG_OUTPUT_FILE",
			},
			Cause: err,
		}
	case stderrors.As(err, &cfgErr):
		return NewConfigError(err,
			"Run 'prlog config show' to inspect the effective configuration",
			"Run 'prlog config init' to write a commented default config",
		)
	default:
		return Wrap(err, Runtime)
	}
}

// MissingSource creates an error for an absent or unreadable input file.
func MissingSource(e *changelog.MissingSourceError, cause error) *CLIError {
	return NewInputError(cause,
		fmt.Sprintf("Check that the %s file exists: %s", e.Role, e.Path),
		"Point prlog at the right file with a flag, a PRLOG_* variable or .prlog.yml",
	)
}

// MisalignedExports creates an error for exports whose lines no longer line up.
func MisalignedExports(e *changelog.IndexOutOfRangeError, cause error) *CLIError {
	return NewInputError(cause,
		fmt.Sprintf("The %s export is shorter than the pull request export", e.Source),
		"Regenerate the pull request, dates and builds exports from the same run",
	)
}

// MalformedRecord creates an error for a metadata line that is not a record.
func MalformedRecord(e *changelog.MalformedRecordError, cause error) *CLIError {
	return NewInputError(cause,
		fmt.Sprintf("Inspect line %d of the pull request export", e.Line),
		"Each line after the header must be one JSON object with key and fields.components",
	)
}

// UnparseableDate creates an error for a date line in the wrong layout.
func UnparseableDate(e *changelog.DateParseError, cause error) *CLIError {
	return NewInputError(cause,
		"Date lines must look like 'Tue Jan 2 15:04:05 2024 -0500'",
		fmt.Sprintf("The offending line was %q", e.Raw),
	)
}
