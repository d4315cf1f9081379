// Package hunks produces diffview patches and file content for rendering.
//
// Compute diffs two versions of a text and groups the changes into diffview.Hunk
// values: parallel left/right line-number slices with context lines around each change
// group. FileSource implements diffview.Source over an in-memory snapshot of file
// contents.
package hunks

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codalotl/diffview/internal/diffview"
)

type lineOp int

const (
	opEqual lineOp = iota
	opDelete
	opInsert
)

// lineRec is one line of the diff with its 1-based number on whichever sides it exists.
type lineRec struct {
	op     lineOp
	oldNum int
	newNum int
}

// Compute diffs oldText to newText and returns the patch for diffview.Render.
//
// context is the number of unchanged lines included around each change group; two
// groups separated by at most 2*context unchanged lines are merged into one hunk with
// the intervening lines as context.
//
// Within a change group, deleted lines are paired with inserted lines row by row;
// leftover lines on either side get an absent slot (filler) on the other, so every
// hunk satisfies the equal-length invariant by construction.
func Compute(oldText, newText string, context int) *diffview.Patch {
	if context < 0 {
		context = 0
	}

	recs := lineRecords(oldText, newText)
	patch := &diffview.Patch{}

	i := 0
	for i < len(recs) {
		if recs[i].op == opEqual {
			i++
			continue
		}

		// Start of a change group. Extend over later change runs while the equal gap
		// between them is small enough to show as in-hunk context.
		end := i + 1
		for end < len(recs) {
			if recs[end].op != opEqual {
				end++
				continue
			}
			gapEnd := end
			for gapEnd < len(recs) && recs[gapEnd].op == opEqual {
				gapEnd++
			}
			if gapEnd < len(recs) && gapEnd-end <= 2*context {
				end = gapEnd + 1
				continue
			}
			break
		}

		preStart := i
		for preStart > 0 && i-preStart < context && recs[preStart-1].op == opEqual {
			preStart--
		}
		postEnd := end
		for postEnd < len(recs) && postEnd-end < context && recs[postEnd].op == opEqual {
			postEnd++
		}

		patch.Hunks = append(patch.Hunks, buildHunk(recs[preStart:postEnd], patch))
		i = postEnd
	}

	return patch
}

// buildHunk turns one group of records into a hunk, pairing delete runs with the
// insert runs that follow them. It also folds line numbers into patch's
// LargestLineNumber.
func buildHunk(group []lineRec, patch *diffview.Patch) diffview.Hunk {
	var h diffview.Hunk

	addPair := func(left, right diffview.HunkLine) {
		h.LeftLines = append(h.LeftLines, left)
		h.RightLines = append(h.RightLines, right)
		if left.Number > patch.LargestLineNumber {
			patch.LargestLineNumber = left.Number
		}
		if right.Number > patch.LargestLineNumber {
			patch.LargestLineNumber = right.Number
		}
	}

	i := 0
	for i < len(group) {
		if group[i].op == opEqual {
			addPair(
				diffview.HunkLine{Number: group[i].oldNum},
				diffview.HunkLine{Number: group[i].newNum},
			)
			i++
			continue
		}

		// A run of changes: collect its deletions and insertions in order, then pair
		// them up row by row.
		var dels, ins []lineRec
		for i < len(group) && group[i].op != opEqual {
			if group[i].op == opDelete {
				dels = append(dels, group[i])
			} else {
				ins = append(ins, group[i])
			}
			i++
		}
		n := max(len(dels), len(ins))
		for k := 0; k < n; k++ {
			var left, right diffview.HunkLine
			if k < len(dels) {
				left = diffview.HunkLine{Number: dels[k].oldNum, IsChange: true}
			}
			if k < len(ins) {
				right = diffview.HunkLine{Number: ins[k].newNum, IsChange: true}
			}
			addPair(left, right)
		}
	}

	return h
}

// lineRecords runs a line-granularity diff and flattens it into one record per line
// with 1-based numbering.
func lineRecords(oldText, newText string) []lineRec {
	dmp := diffmatchpatch.New()

	// Diff based on lines:
	rOld, rNew, _ := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var recs []lineRec
	oldNum, newNum := 1, 1

	for _, d := range diffs {
		// One rune per line in rune-encoded line diffs.
		for range d.Text {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				recs = append(recs, lineRec{op: opEqual, oldNum: oldNum, newNum: newNum})
				oldNum++
				newNum++
			case diffmatchpatch.DiffDelete:
				recs = append(recs, lineRec{op: opDelete, oldNum: oldNum})
				oldNum++
			case diffmatchpatch.DiffInsert:
				recs = append(recs, lineRec{op: opInsert, newNum: newNum})
				newNum++
			}
		}
	}

	return recs
}
