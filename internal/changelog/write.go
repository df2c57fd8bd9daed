package changelog

import (
	"fmt"
	"os"
)

// WriteError is returned when the rendered change log cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing change log %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile renders the document in memory and then replaces the file at path.
// Existing content is truncated; there is no backup and no atomic rename.
func WriteFile(path string, doc *Document) error {
	content, err := doc.RenderString()
	if err != nil {
		return fmt.Errorf("rendering change log: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
