package diffview

import (
	"strconv"
	"strings"
)

var sizeSuffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// humanReadableSize formats a byte count using the largest power-of-1024 unit that does
// not exceed it, with at most one decimal place (truncated, not rounded) and a trailing
// ".0" stripped. Ex: 1536 -> "1.5 KB".
func humanReadableSize(size int) string {
	divisor, suffix := 1, sizeSuffixes[0]
	for i, candidate := range sizeSuffixes {
		d := 1 << (i * 10)
		if i == len(sizeSuffixes)-1 || size < d<<10 {
			divisor, suffix = d, candidate
			break
		}
	}

	s := strconv.FormatFloat(float64(size)/float64(divisor), 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && dot+2 < len(s) {
		s = s[:dot+2]
	}
	s = strings.TrimSuffix(s, ".0")

	return s + " " + suffix
}
