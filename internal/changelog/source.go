package changelog

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var errEmptyBaseline = errors.New("file is empty")

// SourcePaths names the four pipeline inputs.
type SourcePaths struct {
	Baseline     string
	PullRequests string
	Dates        string
	Builds       string
}

// LoadSources reads the baseline and the three exports.
// The first line of the pull request export is a column header and is dropped.
// Any missing or unreadable file yields a MissingSourceError.
func LoadSources(paths SourcePaths) (*Sources, error) {
	baseline, err := readBaseline(paths.Baseline)
	if err != nil {
		return nil, err
	}

	prs, err := readLines(RolePullRequests, paths.PullRequests)
	if err != nil {
		return nil, err
	}

	dates, err := readLines(RoleDates, paths.Dates)
	if err != nil {
		return nil, err
	}

	builds, err := readLines(RoleBuilds, paths.Builds)
	if err != nil {
		return nil, err
	}

	return &Sources{
		Baseline:     baseline,
		PullRequests: prs[1:],
		Dates:        dates,
		Builds:       builds,
	}, nil
}

// readBaseline returns the first line of the baseline file, trimmed.
func readBaseline(path string) (string, error) {
	content, err := readSource(RoleBaseline, path)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", &MissingSourceError{Role: RoleBaseline, Path: path, Err: errEmptyBaseline}
	}

	first, _, _ := strings.Cut(content, "\n")
	return strings.TrimSpace(first), nil
}

// readLines reads a whole export and splits it into lines.
// A trailing newline produces a final empty element; callers rely on that to
// keep the line count identical to the raw export.
func readLines(role, path string) ([]string, error) {
	content, err := readSource(role, path)
	if err != nil {
		return nil, err
	}
	return SplitLines(content), nil
}

func readSource(role, path string) (string, error) {
	if path == "" {
		return "", &MissingSourceError{Role: role, Path: path, Err: errors.New("no path configured")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &MissingSourceError{Role: role, Path: path, Err: err}
	}
	return normalizeNewlines(string(data)), nil
}

// SplitLines splits content on newlines without dropping empty lines.
// It always returns at least one element.
func SplitLines(content string) []string {
	return strings.Split(normalizeNewlines(content), "\n")
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// String summarises the loaded sources for log output.
func (s *Sources) String() string {
	return fmt.Sprintf("baseline=%q pull_requests=%d dates=%d builds=%d",
		s.Baseline, len(s.PullRequests), len(s.Dates), len(s.Builds))
}
