package termformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "hello, 世界",
			want:  "hello, 世界",
		},
		{
			name:  "bell escaped",
			input: "a\x07b",
			want:  "a<7>b",
		},
		{
			name:  "escape and del",
			input: "\x1bX\x00Y\x7f",
			want:  "<1b>X<0>Y<7f>",
		},
		{
			name:  "c1 controls escaped",
			input: "abc",
			want:  "a<85>b<9f>c",
		},
		{
			name:  "newline and carriage return escaped",
			input: "line1\r\nline2",
			want:  "line1<d><a>line2",
		},
		{
			name:  "tab escaped",
			input: "a\tb",
			want:  "a<9>b",
		},
		{
			name:  "invalid utf8 replaced",
			input: string([]byte{0xff, 'a', 0xc1}),
			want:  "�a�",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			require.Equal(t, tt.want, got)

			// Idempotence: a sanitized string passes through unchanged.
			require.Equal(t, got, Sanitize(got))
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tabWidth int
		want     string
	}{
		{name: "expanded when width positive", input: "a\tb", tabWidth: 3, want: "a   b"},
		{name: "preserved when width nonpositive", input: "a\tb", tabWidth: 0, want: "a\tb"},
		{name: "no tabs", input: "ab", tabWidth: 4, want: "ab"},
		{name: "multiple tabs", input: "\ta\t", tabWidth: 2, want: "  a  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExpandTabs(tt.input, tt.tabWidth))
		})
	}
}
