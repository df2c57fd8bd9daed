package changelog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const prHeader = "pull requests exported from tracker"

// prLine builds one metadata export line. A nil note leaves the note field out.
func prLine(t *testing.T, key string, note *string, components ...string) string {
	t.Helper()

	comps := make([]map[string]any, 0, len(components))
	for _, c := range components {
		comps = append(comps, map[string]any{"name": c, "self": "https://tracker/component/" + c})
	}
	fields := map[string]any{
		"components": comps,
		"flagged":    false,
		"resolution": map[string]any{"name": "Fixed", "final": true},
		"assignee":   nil,
	}
	if note != nil {
		fields[DefaultNoteField] = *note
	}

	data, err := json.Marshal(map[string]any{"key": key, "fields": fields})
	require.NoError(t, err)
	return string(data)
}

func strPtr(s string) *string {
	return &s
}

// fixture holds the raw content of the four pipeline inputs.
type fixture struct {
	baseline string
	prs      []string
	dates    []string
	builds   []string
}

// write stores the fixture under dir, one file per source, each ending in a
// newline the way the exporters produce them.
func (f fixture) write(t *testing.T, dir string) SourcePaths {
	t.Helper()

	paths := SourcePaths{
		Baseline:     filepath.Join(dir, "api_baseline.txt"),
		PullRequests: filepath.Join(dir, "pullrequests.txt"),
		Dates:        filepath.Join(dir, "dates.txt"),
		Builds:       filepath.Join(dir, "builds.txt"),
	}

	prs := append([]string{prHeader}, f.prs...)
	writeFile(t, paths.Baseline, f.baseline+"\n")
	writeFile(t, paths.PullRequests, strings.Join(prs, "\n")+"\n")
	writeFile(t, paths.Dates, strings.Join(f.dates, "\n")+"\n")
	writeFile(t, paths.Builds, strings.Join(f.builds, "\n")+"\n")
	return paths
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
