package vlist

// VirtualList lays out huge item lists inside a scroll area by only
// rendering the rows that intersect the visible window. Row rectangles
// are measured as they are rendered and cached, and the extent of rows
// never rendered is estimated from running averages so the scrollbar
// behaves as if everything were laid out.
//
// A render callback may consume more than one item per row (e.g. a grid
// packing several thumbnails side by side), which is why rows and items
// are tracked separately.
//
// The zero value is ready to use. A VirtualList is single-goroutine
// state; keep it in a FrameStore or in the host, not shared.
type VirtualList struct {
	rows rowCache
	est  sizeEstimator

	// Index of the last row appended to the cache; the backward walk
	// starts here.
	lastKnownRow int

	// Cached rectangles are only valid for the width they were measured
	// at.
	lastWidth float32

	prevRange Range
}

// Layout renders the visible slice of a list with length items. The
// render callback is invoked with the index of the first item of a row
// and must lay out that row at the current cursor, returning how many
// items it consumed (at least 1).
//
// Must be called inside a scroll area so there is a visible window to
// lay out against.
func (vl *VirtualList) Layout(ctx *Context, length int, render func(ctx *Context, itemIndex int) int, opts ...Option) Response {
	o := applyOptions(opts)

	// Start of the list in screen space (above the viewport once
	// scrolled).
	origin := ctx.CursorPos()

	if w := ctx.ContentWidth(); w != vl.lastWidth {
		// Cached rectangles are stale at a new width. Keep the averages:
		// row heights usually change with width, but a rough estimate
		// beats none while rows re-measure.
		vl.rows.clear()
		vl.lastKnownRow = 0
		vl.lastWidth = w
	}

	// Drop stale rows if the list shrank under the cache.
	if covered := vl.rows.itemsCovered(); covered > length {
		for vl.rows.len() > 0 && vl.rows.at(vl.rows.len()-1).Items.Start >= length {
			vl.rows.truncate(vl.rows.len() - 1)
		}
		if vl.lastKnownRow >= vl.rows.len() {
			vl.lastKnownRow = maxi(0, vl.rows.len()-1)
		}
	}

	// The visible window in content-local coordinates (y=0 at the top
	// of the list).
	visible := ctx.VisibleRect().Translate(Vec2{X: -origin.X, Y: -origin.Y})
	maxY := visible.Bottom() + GetOpt(o, OptOverscan)

	// Walk backward from the most recently appended row to the first
	// row that starts at or above the visible top, then jump the cursor
	// straight to it.
	rowStart := vl.lastKnownRow
	if rowStart >= vl.rows.len() {
		rowStart = maxi(0, vl.rows.len()-1)
	}
	for rowStart > 0 {
		if row := vl.rows.at(rowStart); row.Rect.Y <= visible.Y {
			ctx.SetCursorPos(origin.Add(Vec2{Y: row.Rect.Y}))
			break
		}
		rowStart--
	}

	itemStart := 0
	if rowStart < vl.rows.len() {
		itemStart = vl.rows.at(rowStart).Items.Start
	}

	currentRow := rowStart
	currentItem := itemStart

	// Widgets inside rows are scoped by item index. The counter is
	// rewound after the loop so widgets following the list keep stable
	// IDs as the visible window moves between frames.
	idMark := ctx.idCounter

	for currentItem < length {
		rowTop := ctx.CursorPos()

		ctx.PushIDInt(currentItem)
		count := render(ctx, currentItem)
		ctx.PopID()
		if count < 1 {
			listLogger.Warn("virtual list row consumed no items, forcing one",
				"item", currentItem, "row", currentRow)
			count = 1
		}

		// Measure the row from how far the cursor moved, in
		// content-local coordinates.
		local := rowTop.Sub(origin)
		rect := Rect{
			X: local.X,
			Y: local.Y,
			W: ctx.ContentWidth(),
			H: ctx.CursorPos().Y - rowTop.Y,
		}

		rec := RowRecord{Items: Range{Start: currentItem, End: currentItem + count}, Rect: rect}
		if appended := vl.rows.upsert(currentRow, rec); appended {
			vl.est.observe(currentRow, count, rect)
			vl.lastKnownRow = currentRow
		}

		currentItem += count

		if rect.Bottom() > maxY {
			break
		}
		currentRow++
	}

	ctx.idCounter = idMark

	itemRange := Range{Start: itemStart, End: currentItem}

	// Stand in for everything below the last rendered row so the
	// enclosing scroll area sizes correctly.
	if itemRange.End < length {
		tail := vl.est.remainingExtent(length-itemRange.End) + GetOpt(o, OptTailEstimate)
		ctx.ReserveBelowCursor(tail)
	}

	newlyVisible, hidden := visibilityDelta(vl.prevRange, itemRange)
	vl.prevRange = itemRange

	listLogger.Debug("virtual list frame",
		"items", itemRange, "rows", vl.rows.len(),
		"newlyVisible", newlyVisible, "hidden", hidden)

	return Response{Items: itemRange, NewlyVisible: newlyVisible, Hidden: hidden}
}

// Reset clears all cached measurements and averages. Call when item
// contents change in a way that invalidates previous sizes.
func (vl *VirtualList) Reset() {
	vl.rows.clear()
	vl.est.reset()
	vl.lastKnownRow = 0
	vl.lastWidth = 0
}

// RowCount returns the number of measured rows in the cache.
func (vl *VirtualList) RowCount() int {
	return vl.rows.len()
}

// Row returns the measured row at index i.
func (vl *VirtualList) Row(i int) RowRecord {
	return vl.rows.at(i)
}

// AverageRowSize returns the running average row size, zero before any
// row has been measured.
func (vl *VirtualList) AverageRowSize() Vec2 {
	return vl.est.avgSize
}

// AverageItemsPerRow returns the running average items per row, zero
// before any row has been measured.
func (vl *VirtualList) AverageItemsPerRow() float32 {
	return vl.est.avgItems
}

// virtualListStore backs the convenience widget so callers don't have
// to hold a VirtualList themselves.
var virtualListStore = NewFrameStore[VirtualList]()

// VirtualList renders a virtual list identified by name, keeping its
// measurement state across frames automatically.
//
// Usage:
//
//	ctx.ScrollArea("log", 300)(func() {
//	    ctx.VirtualList("log_items", len(items), func(ctx *vlist.Context, i int) int {
//	        ctx.Text(items[i])
//	        return 1
//	    })
//	})
func (ctx *Context) VirtualList(name string, length int, render func(ctx *Context, itemIndex int) int, opts ...Option) Response {
	id := ctx.GetID(name + "_virtuallist")
	vl := virtualListStore.Get(id, VirtualList{})
	return vl.Layout(ctx, length, render, opts...)
}
