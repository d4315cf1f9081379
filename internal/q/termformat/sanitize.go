package termformat

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sanitize neutralizes control characters in s for display in a terminal.
//
// Every rune in [0x00, 0x1F], 0x7F (DEL), or [0x80, 0x9F] (C1 controls) is replaced with
// the marker "<X>", where X is the lowercase hex value of the rune (ex: "\x07" -> "<7>",
// "\x1b" -> "<1b>"). Invalid UTF-8 bytes are replaced by U+FFFD.
//
// s is treated as a single line: '\n' and '\r' are control characters and are escaped
// like any other.
//
// Sanitize is idempotent: its output contains no control characters, and markers pass
// through unchanged.
func Sanitize(s string) string {
	if !strings.ContainsFunc(s, isControl) && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune('�')
			i++
			continue
		}
		i += size

		if isControl(r) {
			b.WriteByte('<')
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('>')
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ExpandTabs replaces each '\t' in s with tabWidth spaces. If tabWidth <= 0, s is
// returned unchanged.
//
// Tab stops are not honored: every tab becomes exactly tabWidth spaces.
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func isControl(r rune) bool {
	return r <= 0x1f || r == 0x7f || (r >= 0x80 && r <= 0x9f)
}
