package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Returns nil if valid, or a ValidationError with line/column information if invalid.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsPermission(err) {
			return &ValidationError{FilePath: filePath, Message: "permission denied"}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return ValidateYAMLSyntaxFromBytes(data, filePath)
}

// ValidateYAMLSyntaxFromBytes checks if YAML data has valid syntax.
// Returns nil if valid, or a ValidationError if invalid.
func ValidateYAMLSyntaxFromBytes(data []byte, filePath string) error {
	// Empty data is valid - will use defaults
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return &ValidationError{
				FilePath: filePath,
				Message:  strings.Join(typeError.Errors, "; "),
			}
		}

		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}

	return nil
}

// ValidateConfigValues checks that every location is set, that the output
// does not overwrite an input, and that the record knobs are non-empty.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	required := []struct {
		field string
		value string
	}{
		{"baseline_file", cfg.BaselineFile},
		{"pull_requests_file", cfg.PullRequestsFile},
		{"dates_file", cfg.DatesFile},
		{"builds_file", cfg.BuildsFile},
		{"output_file", cfg.OutputFile},
		{"exclude_component", cfg.ExcludeComponent},
		{"note_field", cfg.NoteField},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{FilePath: filePath, Field: r.field, Message: "is required"}
		}
	}

	if cfg.WritesToStdout() {
		return nil
	}

	output := filepath.Clean(cfg.OutputFile)
	for _, r := range required[:4] {
		if filepath.Clean(r.value) == output {
			return &ValidationError{
				FilePath: filePath,
				Field:    "output_file",
				Message:  fmt.Sprintf("would overwrite %s (%s)", r.field, r.value),
			}
		}
	}

	return nil
}

// extractLineColumn attempts to extract line and column numbers from a YAML error message.
// Returns 0, 0 if unable to extract.
func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix from error messages for cleaner output.
func cleanYAMLError(errMsg string) string {
	if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
		if strings.HasPrefix(errMsg, "yaml:") {
			return errMsg[idx+2:]
		}
	}
	return errMsg
}
