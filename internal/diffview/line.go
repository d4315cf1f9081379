package diffview

// HunkRef locates a logical line pair within a file's hunk list: Hunk indexes into
// Patch.Hunks, Line into that hunk's line-pair slices. It identifies the logical pair,
// not the physical row: all wrapped rows of one pair carry the same HunkRef.
type HunkRef struct {
	Hunk int
	Line int
}

// Ref is a back-pointer from a rendered line to its source position. It never affects
// rendering; it exists so a consumer can map display rows to logical positions (ex:
// click-to-jump).
type Ref struct {
	Path string
	Hunk *HunkRef // nil for title and binary-summary lines
}

// Line is one display row, ready to be written verbatim to a terminal.
type Line struct {
	Text string
	Ref  Ref
}
