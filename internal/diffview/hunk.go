package diffview

// HunkLine is one side of a hunk position: the line number on that side and whether the
// line changed. Number is 1-based; 0 means there is no line on this side (a pure
// insertion or deletion), which renders as a filler row.
type HunkLine struct {
	Number   int
	IsChange bool
}

// Hunk is a contiguous block of corresponding line ranges between the two versions of a
// file, as produced by a diff engine.
//
// Invariant: len(LeftLines) == len(RightLines). Every position has both a left and a
// right slot, one of which may be absent (Number == 0).
type Hunk struct {
	LeftLines  []HunkLine
	RightLines []HunkLine
}

// Patch is the full set of hunks for one file pair.
type Patch struct {
	Hunks []Hunk

	// LargestLineNumber is the maximum Number appearing in Hunks, on either side. It
	// feeds the shared margin width computation.
	LargestLineNumber int
}

// EntryKind says how a collection entry should be rendered.
type EntryKind int

const (
	// EntryDiff renders a two-column diff body (or a binary summary) for the pair
	// (Path, OtherPath). Entries of any other kind are skipped.
	EntryDiff EntryKind = iota
)

// Entry is one item of a render collection.
type Entry struct {
	Path      string
	Kind      EntryKind
	OtherPath string
}

// Source serves file content to Render. It is an external collaborator; Render never
// reads files itself.
//
// Implementations must be consistent with the Patch being rendered: Line will be called
// with exactly the (path, number) pairs that appear in the patch's hunks, and a number
// the source cannot serve is a programming error that should panic.
type Source interface {
	// Data returns the raw content of path and whether it is binary. Binary entries
	// render as a size summary instead of a line-by-line diff.
	Data(path string) (data []byte, binary bool)

	// Line returns the 1-based numbered line of path, without its trailing newline,
	// already sanitized for terminal display (see termformat.Sanitize).
	Line(path string, number int) string
}
