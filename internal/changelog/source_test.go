package changelog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := fixture{
		baseline: "  6.5.0.15  ",
		prs:      []string{`{"key":"CAS-1"}`, ""},
		dates:    []string{"Tue Jan 2 15:04:05 2024 -0500"},
		builds:   []string{"(tag: 6.5.1.2)"},
	}.write(t, dir)

	s, err := LoadSources(paths)
	require.NoError(t, err)

	assert.Equal(t, "6.5.0.15", s.Baseline)
	// Header dropped; trailing newline leaves an empty final element.
	assert.Equal(t, []string{`{"key":"CAS-1"}`, "", ""}, s.PullRequests)
	assert.Equal(t, []string{"Tue Jan 2 15:04:05 2024 -0500", ""}, s.Dates)
	assert.Equal(t, []string{"(tag: 6.5.1.2)", ""}, s.Builds)
}

func TestLoadSources_HeaderOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := fixture{baseline: "6.5.0"}.write(t, dir)
	writeFile(t, paths.PullRequests, prHeader)

	s, err := LoadSources(paths)
	require.NoError(t, err)
	assert.Empty(t, s.PullRequests)
}

func TestLoadSources_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := fixture{baseline: "6.5.0"}.write(t, dir)
	writeFile(t, paths.Dates, "a\r\nb\rc")

	s, err := LoadSources(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.Dates)
}

func TestLoadSources_Missing(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		remove   func(SourcePaths) string
		wantRole string
	}{
		"baseline":      {remove: func(p SourcePaths) string { return p.Baseline }, wantRole: RoleBaseline},
		"pull requests": {remove: func(p SourcePaths) string { return p.PullRequests }, wantRole: RolePullRequests},
		"dates":         {remove: func(p SourcePaths) string { return p.Dates }, wantRole: RoleDates},
		"builds":        {remove: func(p SourcePaths) string { return p.Builds }, wantRole: RoleBuilds},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			paths := fixture{baseline: "6.5.0"}.write(t, t.TempDir())
			missing := tt.remove(paths)
			require.NoError(t, os.Remove(missing))

			_, err := LoadSources(paths)
			require.Error(t, err)

			var mse *MissingSourceError
			require.ErrorAs(t, err, &mse)
			assert.Equal(t, tt.wantRole, mse.Role)
			assert.Equal(t, missing, mse.Path)
			assert.True(t, os.IsNotExist(mse.Err))
		})
	}
}

func TestLoadSources_EmptyBaseline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := fixture{baseline: "6.5.0"}.write(t, dir)
	writeFile(t, paths.Baseline, "")

	_, err := LoadSources(paths)
	assert.True(t, IsMissingSourceError(err))
}

func TestLoadSources_EmptyPath(t *testing.T) {
	t.Parallel()

	paths := fixture{baseline: "6.5.0"}.write(t, t.TempDir())
	paths.Builds = ""

	_, err := LoadSources(paths)
	var mse *MissingSourceError
	require.ErrorAs(t, err, &mse)
	assert.Equal(t, RoleBuilds, mse.Role)
}

func TestLoadSources_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := fixture{baseline: "6.5.0"}.write(t, dir)
	paths.Dates = dir

	_, err := LoadSources(paths)
	assert.True(t, IsMissingSourceError(err))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want []string
	}{
		"empty":            {in: "", want: []string{""}},
		"trailing newline": {in: "a\n", want: []string{"a", ""}},
		"crlf":             {in: "a\r\nb", want: []string{"a", "b"}},
		"blank middle":     {in: "a\n\nb", want: []string{"a", "", "b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}
