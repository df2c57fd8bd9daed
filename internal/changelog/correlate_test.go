package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelate(t *testing.T) {
	t.Parallel()

	s := &Sources{
		PullRequests: []string{"pr0", "pr1", "pr2"},
		Dates:        []string{"d0", "d1", "d2"},
		Builds:       []string{"b0", "b1", "b2"},
	}

	rows, err := Correlate(s)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, i+2, row.Line)
		assert.Equal(t, s.PullRequests[i], row.Metadata)
		assert.Equal(t, s.Dates[i], row.Date)
		assert.Equal(t, s.Builds[i], row.Build)
	}
}

func TestCorrelate_BlankLineKeepsOrdinal(t *testing.T) {
	t.Parallel()

	s := &Sources{
		PullRequests: []string{"pr0", "   ", "pr2", ""},
		Dates:        []string{"d0", "d1", "d2"},
		Builds:       []string{"b0", "b1", "b2"},
	}

	rows, err := Correlate(s)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The blank line consumed ordinal 1, so pr2 pairs with d2, not d1.
	assert.Equal(t, "pr2", rows[1].Metadata)
	assert.Equal(t, "d2", rows[1].Date)
	assert.Equal(t, "b2", rows[1].Build)
	assert.Equal(t, 4, rows[1].Line)
}

func TestCorrelate_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		dates      []string
		builds     []string
		wantSource string
		wantLength int
	}{
		"short dates": {
			dates:      []string{"d0"},
			builds:     []string{"b0", "b1"},
			wantSource: RoleDates,
			wantLength: 1,
		},
		"short builds": {
			dates:      []string{"d0", "d1"},
			builds:     []string{"b0"},
			wantSource: RoleBuilds,
			wantLength: 1,
		},
		"both short reports dates first": {
			dates:      []string{"d0"},
			builds:     []string{"b0"},
			wantSource: RoleDates,
			wantLength: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := &Sources{
				PullRequests: []string{"pr0", "pr1"},
				Dates:        tt.dates,
				Builds:       tt.builds,
			}

			_, err := Correlate(s)
			var ioe *IndexOutOfRangeError
			require.ErrorAs(t, err, &ioe)
			assert.Equal(t, tt.wantSource, ioe.Source)
			assert.Equal(t, 1, ioe.Index)
			assert.Equal(t, tt.wantLength, ioe.Length)
			assert.Equal(t, 3, ioe.Line)
		})
	}
}

func TestCorrelate_TrailingBlankNeedsNoCompanion(t *testing.T) {
	t.Parallel()

	s := &Sources{
		PullRequests: []string{"pr0", ""},
		Dates:        []string{"d0"},
		Builds:       []string{"b0"},
	}

	rows, err := Correlate(s)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
