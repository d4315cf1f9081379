package termformat

import "github.com/codalotl/diffview/internal/q/uni"

// LineSplitter yields successive width-bounded chunks of a single logical line, left to
// right, until the line is exhausted. Chunks are produced on demand; abandoning the
// splitter early does no further work.
type LineSplitter struct {
	rest  string
	width int
	cur   string
}

// SplitToWidth returns a splitter over chunks of line, each at most width terminal
// columns wide. Cuts fall on grapheme cluster boundaries. An empty line yields no
// chunks (not a single empty chunk).
//
// line must not contain newlines or ANSI escape sequences.
func SplitToWidth(line string, width int) *LineSplitter {
	return &LineSplitter{rest: line, width: width}
}

func (s *LineSplitter) Next() bool {
	if s.rest == "" {
		return false
	}

	p := uni.TruncatePoint(s.rest, s.width, nil)
	if p == 0 {
		// A single cluster wider than width. Take it whole so the splitter always
		// makes progress; the resulting chunk overflows width.
		iter := uni.NewGraphemeIterator(s.rest, nil)
		iter.Next()
		p = iter.End()
	}

	s.cur = s.rest[:p]
	s.rest = s.rest[p:]
	return true
}

func (s *LineSplitter) Value() string {
	return s.cur
}
