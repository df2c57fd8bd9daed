package changelog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTerminal_Plain(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Key: "CAS-1", Date: "01/02/24", BuildTag: "6.5.1.23", Components: []string{"Imaging", "Tools"}, Note: "One.\n   Two.", HasNote: true},
		{Key: "CAS-2", Date: "01/03/24", Components: []string{"Verification"}},
		{Key: "CAS-3", Date: "01/04/24"},
	}

	var buf bytes.Buffer
	err := FormatTerminal(records, &buf, FormatOptions{Plain: true, MaxWidth: 80, Exclude: DefaultExcludeComponent})
	require.NoError(t, err)

	want := "01/02/24 CAS-1 [6.5.1.23] (Imaging, Tools)\n" +
		"    One.\n" +
		"    Two.\n" +
		"01/03/24 CAS-2 (Verification) [dropped]\n" +
		"01/04/24 CAS-3\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatTerminal_NoExcludeMarksNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	records := []Record{{Key: "CAS-2", Date: "01/03/24", Components: []string{"Verification"}}}
	require.NoError(t, FormatTerminal(records, &buf, FormatOptions{Plain: true, MaxWidth: 80}))
	assert.NotContains(t, buf.String(), "dropped")
}

func TestFormatTerminal_WrapsNotes(t *testing.T) {
	t.Parallel()

	note := strings.Repeat("word ", 20)
	records := []Record{{Key: "CAS-1", Date: "01/02/24", Note: note, HasNote: true}}

	var buf bytes.Buffer
	require.NoError(t, FormatTerminal(records, &buf, FormatOptions{Plain: true, MaxWidth: 30}))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 30, "line %q", line)
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text     string
		maxWidth int
		want     string
	}{
		"fits":        {text: "short", maxWidth: 10, want: "short"},
		"zero width":  {text: "anything goes", maxWidth: 0, want: "anything goes"},
		"break space": {text: "aaa bbb ccc", maxWidth: 7, want: "aaa\n  bbb ccc"},
		"hard break":  {text: "abcdefghij", maxWidth: 4, want: "abcd\n  efgh\n  ij"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.text, tt.maxWidth, "  "))
		})
	}
}
