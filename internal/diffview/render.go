package diffview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codalotl/diffview/internal/q/termformat"
)

// Config controls one render pass.
type Config struct {
	// Columns is the total terminal width. Each side gets Columns/2 columns (margin
	// plus content), so with an odd width one column goes unused.
	Columns int

	// Formats styles the output; nil means DefaultFormats().
	Formats Formats
}

// Render lays out collection as display lines. diffs maps each EntryDiff path to its
// patch; src serves file content for both sides of every pair.
//
// Lines are produced on demand through the returned iterator; stopping early wastes no
// work. The iterator is single-use, but separate Render calls are fully independent
// and may run concurrently.
func Render(collection []Entry, diffs map[string]*Patch, src Source, cfg Config) *LineIter {
	formats := cfg.Formats
	if formats == nil {
		formats = DefaultFormats()
	}

	// The margin is sized once, from the largest line number across all entries, so
	// number columns line up across the whole batch.
	largest := 0
	for _, e := range collection {
		if e.Kind != EntryDiff {
			continue
		}
		if patch := diffs[e.Path]; patch != nil && patch.LargestLineNumber > largest {
			largest = patch.LargestLineNumber
		}
	}
	marginWidth := max(3, len(strconv.Itoa(largest))+1)

	r := &renderer{
		formats:      formats,
		src:          src,
		diffs:        diffs,
		columns:      cfg.Columns,
		marginWidth:  marginWidth,
		contentWidth: cfg.Columns/2 - marginWidth,
	}

	return &LineIter{r: r, entries: collection}
}

type renderer struct {
	formats      Formats
	src          Source
	diffs        map[string]*Patch
	columns      int
	marginWidth  int
	contentWidth int
}

// rowKind is the presentation type of one side of a display row. It drives the margin
// and content styles in renderHalf.
type rowKind int

const (
	rowContext rowKind = iota
	rowRemove
	rowAdd
	rowFiller
)

func sideKind(hl HunkLine, left bool) rowKind {
	switch {
	case hl.Number == 0:
		return rowFiller
	case hl.IsChange && left:
		return rowRemove
	case hl.IsChange:
		return rowAdd
	default:
		return rowContext
	}
}

// renderHalf composes the margin and content cells for one side of a row. number == 0
// leaves the margin blank. text must already fit in the content column; it is padded,
// never truncated.
func (r *renderer) renderHalf(number int, text string, kind rowKind) string {
	var marginStyle, textStyle Style
	switch kind {
	case rowFiller:
		marginStyle, textStyle = StyleFiller, StyleFiller
	case rowRemove:
		marginStyle, textStyle = StyleRemovedMargin, StyleRemoved
	case rowAdd:
		marginStyle, textStyle = StyleAddedMargin, StyleAdded
	case rowContext:
		marginStyle, textStyle = StyleMargin, StyleText
	}

	num := ""
	if number > 0 {
		num = strconv.Itoa(number)
	}

	margin := r.formats.wrap(marginStyle, termformat.Place(num, r.marginWidth))
	content := r.formats.wrap(textStyle, termformat.Pad(text, r.contentWidth))
	return margin + content
}

// renderPair composes one full display row for a line pair. Line numbers are shown only
// on the first wrapped row, so a wrapped logical line never repeats its number.
func (r *renderer) renderPair(left, right HunkLine, leftText, rightText string, first bool) string {
	leftNum, rightNum := 0, 0
	if first {
		leftNum, rightNum = left.Number, right.Number
	}
	return r.renderHalf(leftNum, leftText, sideKind(left, true)) +
		r.renderHalf(rightNum, rightText, sideKind(right, false))
}

// titleRows returns the three full-width rows heading a file entry: the name bar, a
// divider, and a blank row.
func (r *renderer) titleRows(path string) []string {
	name := termformat.Fit(termformat.Sanitize(path), r.columns-2*r.marginWidth)
	return []string{
		r.formats.wrap(StyleTitle, termformat.Place(" "+name, r.columns)),
		r.formats.wrap(StyleTitle, strings.Repeat("━", r.columns)),
		r.formats.wrap(StyleTitle, strings.Repeat(" ", r.columns)),
	}
}

// binaryRow summarizes a binary file pair as two size cells in place of a diff body.
func (r *renderer) binaryRow(path, otherPath string) string {
	half := func(p string) string {
		data, _ := r.src.Data(p)
		text := termformat.Place(fmt.Sprintf("Binary file: %s", humanReadableSize(len(data))), r.contentWidth)
		return r.formats.wrap(StyleMargin, strings.Repeat(" ", r.marginWidth)) +
			r.formats.wrap(StyleText, text)
	}
	return half(path) + half(otherPath)
}

// wrappedRows wraps one side's logical line to the content width. An absent side
// (Number == 0) has no rows of its own; alignment adds filler.
func (r *renderer) wrappedRows(path string, hl HunkLine) []string {
	if hl.Number == 0 {
		return nil
	}
	var rows []string
	for s := termformat.SplitToWidth(r.src.Line(path, hl.Number), r.contentWidth); s.Next(); {
		rows = append(rows, s.Value())
	}
	return rows
}

// LineIter yields display lines in strict order: entry by entry, and within a diff
// body hunk order, then line-pair order, then wrapped-row order. Consumers rely on
// that ordering to map output rows back to source positions.
type LineIter struct {
	r       *renderer
	entries []Entry

	entry  int  // index of the entry currently being produced
	opened bool // title block for entries[entry] already emitted
	hunk   int
	pair   int

	buf []Line
	cur Line
}

// Next advances to the next display line, returning false when the collection is
// exhausted.
func (it *LineIter) Next() bool {
	for len(it.buf) == 0 {
		if !it.fill() {
			return false
		}
	}
	it.cur = it.buf[0]
	it.buf = it.buf[1:]
	return true
}

// Line returns the current display line. Only valid after a true Next.
func (it *LineIter) Line() Line {
	return it.cur
}

// fill produces the next batch of lines into buf: a title block, a binary summary, or
// the rows of one aligned line pair. It may buffer nothing when it merely advances
// (skipped entries, hunk boundaries); callers loop. Returns false once all entries are
// done.
func (it *LineIter) fill() bool {
	if it.entry >= len(it.entries) {
		return false
	}
	e := it.entries[it.entry]
	if e.Kind != EntryDiff {
		it.entry++
		return true
	}

	r := it.r
	if !it.opened {
		it.opened = true
		it.hunk, it.pair = 0, 0

		ref := Ref{Path: e.Path}
		for _, text := range r.titleRows(e.Path) {
			it.buf = append(it.buf, Line{Text: text, Ref: ref})
		}
		if _, binary := r.src.Data(e.Path); binary {
			it.buf = append(it.buf, Line{Text: r.binaryRow(e.Path, e.OtherPath), Ref: ref})
			it.closeEntry()
		}
		return true
	}

	patch := r.diffs[e.Path]
	if patch == nil || it.hunk >= len(patch.Hunks) {
		it.closeEntry()
		return true
	}

	h := patch.Hunks[it.hunk]
	if len(h.LeftLines) != len(h.RightLines) {
		panic(fmt.Errorf("diffview: %s hunk %d: left/right line counts differ (%d != %d)",
			e.Path, it.hunk, len(h.LeftLines), len(h.RightLines)))
	}
	if it.pair >= len(h.LeftLines) {
		it.hunk++
		it.pair = 0
		return true
	}

	left, right := h.LeftLines[it.pair], h.RightLines[it.pair]
	leftRows := r.wrappedRows(e.Path, left)
	rightRows := r.wrappedRows(e.OtherPath, right)
	leftRows, rightRows = evenUpSides(leftRows, rightRows, "")

	hr := &HunkRef{Hunk: it.hunk, Line: it.pair}
	for i := range leftRows {
		it.buf = append(it.buf, Line{
			Text: r.renderPair(left, right, leftRows[i], rightRows[i], i == 0),
			Ref:  Ref{Path: e.Path, Hunk: hr},
		})
	}
	it.pair++
	return true
}

func (it *LineIter) closeEntry() {
	it.entry++
	it.opened = false
}
