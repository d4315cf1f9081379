package termformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/diffview/internal/q/uni"
)

func collect(s *LineSplitter) []string {
	var out []string
	for s.Next() {
		out = append(out, s.Value())
	}
	return out
}

func TestSplitToWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{name: "even split", input: "abcdef", width: 3, want: []string{"abc", "def"}},
		{name: "uneven split", input: "abcdefg", width: 3, want: []string{"abc", "def", "g"}},
		{name: "fits in one chunk", input: "ab", width: 3, want: []string{"ab"}},
		{name: "empty yields nothing", input: "", width: 3, want: nil},
		{name: "wide glyphs never split", input: "世界世", width: 3, want: []string{"世", "界", "世"}},
		{name: "wide glyph pairs", input: "世界世界", width: 4, want: []string{"世界", "世界"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(SplitToWidth(tt.input, tt.width))
			require.Equal(t, tt.want, got)

			// Chunks reassemble the original line.
			joined := ""
			for _, chunk := range got {
				joined += chunk
				assert.LessOrEqual(t, uni.TextWidth(chunk, nil), tt.width)
			}
			require.Equal(t, tt.input, joined)
		})
	}
}

func TestSplitToWidthRestartable(t *testing.T) {
	// Two independent splitters over the same line do not share state.
	a := SplitToWidth("abcdef", 3)
	b := SplitToWidth("abcdef", 3)

	require.True(t, a.Next())
	require.True(t, a.Next())
	require.Equal(t, "def", a.Value())

	require.True(t, b.Next())
	require.Equal(t, "abc", b.Value())
}

func TestSplitToWidthOversizedCluster(t *testing.T) {
	// A cluster wider than the requested width is taken whole so the splitter
	// terminates.
	got := collect(SplitToWidth("世a", 1))
	require.Equal(t, []string{"世", "a"}, got)
}
