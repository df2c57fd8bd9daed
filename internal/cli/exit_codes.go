package cli

import (
	stderrors "errors"

	"github.com/casadocs/prlog/internal/changelog"
	"github.com/casadocs/prlog/internal/config"
	clierrors "github.com/casadocs/prlog/internal/errors"
)

// Exit codes for the prlog CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates an unexpected failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 2

	// ExitMissingSource indicates an input file is absent or unreadable
	ExitMissingSource = 3

	// ExitMisalignedExports indicates the three exports do not line up
	ExitMisalignedExports = 4

	// ExitMalformedRecord indicates a metadata line is not a record literal
	ExitMalformedRecord = 5

	// ExitBadDate indicates a date line does not match the expected layout
	ExitBadDate = 6

	// ExitWriteFailed indicates the report could not be written
	ExitWriteFailed = 7
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var writeErr *changelog.WriteError
	switch {
	case changelog.IsMissingSourceError(err):
		return ExitMissingSource
	case changelog.IsIndexOutOfRangeError(err):
		return ExitMisalignedExports
	case changelog.IsMalformedRecordError(err):
		return ExitMalformedRecord
	case changelog.IsDateParseError(err):
		return ExitBadDate
	case stderrors.As(err, &writeErr):
		return ExitWriteFailed
	case config.IsValidationError(err):
		return ExitInvalidArguments
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument, clierrors.Configuration:
			return ExitInvalidArguments
		}
	}
	return ExitFailure
}
