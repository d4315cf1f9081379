package diffview

// evenUpSides pads the shorter of left and right with filler rows until both slices
// have equal length, preserving order. This is the vertical alignment step: the two
// sides of a line pair always occupy the same number of display rows, however
// differently they wrapped.
func evenUpSides(left, right []string, filler string) ([]string, []string) {
	for len(left) < len(right) {
		left = append(left, filler)
	}
	for len(right) < len(left) {
		right = append(right, filler)
	}
	return left, right
}
