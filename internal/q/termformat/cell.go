package termformat

import (
	"strings"

	"github.com/codalotl/diffview/internal/q/uni"
)

// Fit truncates text to at most width terminal columns. Text that already fits is
// returned unchanged. Otherwise text is cut on a grapheme cluster boundary and a single
// ellipsis is appended; when width > 1 the cut leaves room for the ellipsis, so the
// result never exceeds width columns.
//
// text must not contain ANSI escape sequences or control characters (see Sanitize).
func Fit(text string, width int) string {
	p := uni.TruncatePoint(text, width, nil)
	if p >= len(text) {
		return text
	}
	if width > 1 {
		p = uni.TruncatePoint(text, width-1, nil)
	}
	return text[:p] + "…"
}

// Pad appends spaces to text until it occupies exactly width terminal columns. Text
// already width columns or wider is returned unchanged.
func Pad(text string, width int) string {
	w := uni.TextWidth(text, nil)
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}

// Place composes Fit and Pad: the result always occupies exactly width columns.
func Place(text string, width int) string {
	return Pad(Fit(text, width), width)
}
