package vlist

import "fmt"

// Range is a half-open item range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of items in the range, never negative.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no items.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether item i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Response describes what a Layout call displayed and how visibility
// changed since the previous frame.
type Response struct {
	// Items is the range of items laid out this frame.
	Items Range

	// NewlyVisible holds items visible now that were not last frame.
	NewlyVisible Range

	// Hidden holds items visible last frame that are not anymore.
	Hidden Range
}

// visibilityDelta computes the entered and exited item ranges between
// two visible ranges. It assumes frame-to-frame scrolling, where the
// ranges overlap or at least stay close; for a disjoint jump both
// deltas cover the respective full range. A shrink on both ends at once
// (cur strictly inside prev) collapses each delta to one side.
func visibilityDelta(prev, cur Range) (newlyVisible, hidden Range) {
	// Items entering at the bottom, or the whole of cur when scrolling
	// up past prev's start.
	if cur.End > prev.End {
		newlyVisible = Range{Start: maxi(cur.Start, prev.End), End: cur.End}
	} else {
		newlyVisible = Range{Start: cur.Start, End: mini(prev.Start, cur.End)}
	}

	// Items leaving at the top, or the whole of prev when scrolling up.
	if cur.Start > prev.Start {
		hidden = Range{Start: prev.Start, End: mini(cur.Start, prev.End)}
	} else {
		hidden = Range{Start: maxi(cur.End, prev.Start), End: prev.End}
	}

	return newlyVisible, hidden
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
