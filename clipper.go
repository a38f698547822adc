package vlist

// ListClipper is the fast path for lists whose rows all share one known
// extent: the visible range is pure arithmetic, with no measurement or
// caching. Use VirtualList when row heights vary.
//
// Usage:
//
//	clipper := NewListClipper(totalItems, rowHeight, viewportHeight, scrollY)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.ItemY(i, baseY, scrollY)
//	    // Draw item at y
//	}
type ListClipper struct {
	StartIdx   int     // First visible item index (inclusive)
	EndIdx     int     // Last visible item index (exclusive)
	ItemExtent float32 // Height of each item
	TotalItems int     // Total number of items in the list
}

// NewListClipper calculates the visible item range for a uniform list.
func NewListClipper(totalItems int, itemExtent, viewportHeight, scrollY float32) *ListClipper {
	if totalItems == 0 || itemExtent <= 0 {
		return &ListClipper{ItemExtent: itemExtent, TotalItems: totalItems}
	}

	startIdx := int(scrollY / itemExtent)
	if startIdx < 0 {
		startIdx = 0
	}

	// +2 covers partial rows at the top and bottom edges.
	endIdx := startIdx + int(viewportHeight/itemExtent) + 2

	if startIdx > totalItems {
		startIdx = totalItems
	}
	if endIdx > totalItems {
		endIdx = totalItems
	}

	return &ListClipper{
		StartIdx:   startIdx,
		EndIdx:     endIdx,
		ItemExtent: itemExtent,
		TotalItems: totalItems,
	}
}

// Range returns the visible items as a Range.
func (c *ListClipper) Range() Range {
	return Range{Start: c.StartIdx, End: c.EndIdx}
}

// ShouldRender returns true if the item at the given index is visible.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY calculates the screen Y position for an item. baseY is the Y of
// the list's top edge before scrolling.
func (c *ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemExtent - scrollY
}

// VisibleCount returns the number of items in the visible range.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the total content height.
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemExtent
}

// MaxScroll returns the maximum valid scroll offset.
func (c *ListClipper) MaxScroll(viewportHeight float32) float32 {
	return maxf(0, c.ContentHeight()-viewportHeight)
}

// ScrollToItem returns the scroll offset needed to make an item
// visible, or the current offset if it already is.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, viewportHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}

	itemTop := float32(idx) * c.ItemExtent
	itemBottom := itemTop + c.ItemExtent

	if itemTop < currentScroll {
		return itemTop
	}
	if itemBottom > currentScroll+viewportHeight {
		return itemBottom - viewportHeight
	}
	return currentScroll
}
