package termformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codalotl/diffview/internal/q/uni"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "fits unchanged", input: "abc", width: 5, want: "abc"},
		{name: "exact width unchanged", input: "abc", width: 3, want: "abc"},
		{name: "truncated with ellipsis", input: "abcdef", width: 4, want: "abc…"},
		{name: "width one keeps bare ellipsis", input: "abc", width: 1, want: "…"},
		{name: "wide glyphs", input: "世界世界", width: 5, want: "世界…"},
		{name: "empty", input: "", width: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.input, tt.width)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, uni.TextWidth(got, nil), tt.width)
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc  ", Pad("abc", 5))
	assert.Equal(t, "abc", Pad("abc", 3))
	assert.Equal(t, "abc", Pad("abc", 2)) // never truncates
	assert.Equal(t, "世 ", Pad("世", 3))
	assert.Equal(t, "   ", Pad("", 3))
}

func TestPlaceExactWidth(t *testing.T) {
	inputs := []string{"", "a", "abc", "abcdefghij", "世界世界", "a世b", "éééé"}

	for _, input := range inputs {
		for width := 1; width <= 8; width++ {
			got := Place(input, width)
			require.Equal(t, width, uni.TextWidth(got, nil), "Place(%q, %d) = %q", input, width, got)
		}
	}
}
