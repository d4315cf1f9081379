// Package diffview lays out side-by-side diffs as fixed-width, ANSI-styled terminal
// lines.
//
// Inputs: an ordered collection of file entries, a Patch (hunks plus the largest line
// number) per diffed path, and a Source that serves file content. Hunks say which line
// numbers correspond; computing them is not this package's job (see the hunks
// subpackage for a ready-made producer).
//
// Output: a lazy sequence of Lines. Each Line.Text is a complete two-column display
// row (line-number margin and content cell for the left side, then the same for the
// right), styled with ANSI SGR sequences and occupying a fixed total number of
// terminal columns. Each Line carries a Ref pointing back at the logical hunk position
// it renders, for navigation; wrapped continuations of one logical line pair share a
// Ref.
//
// Layout rules:
//   - The line-number margin width is computed once per render from the largest line
//     number across all entries, so number columns align across files.
//   - A logical line wider than its column is wrapped; the two sides of a pair are
//     padded with filler rows so they always occupy the same number of display rows.
//   - The line number appears only on the first wrapped row of a logical line.
//   - Cells never exceed their column width: oversized text is truncated with an
//     ellipsis, and every cell is padded to exactly its width.
//
// Rendering is pure and single-threaded: no state is shared between renders, and the
// caller may simply stop consuming the iterator at any point.
//
// Malformed inputs (a hunk whose left and right slices differ in length, or a line
// number the Source cannot serve) are programming errors in the collaborator that
// produced them and cause a panic, not an error return.
package diffview
