package vlist

// ScrollState holds per-area scroll position and measured content size.
type ScrollState struct {
	ScrollY       float32
	ContentHeight float32

	// Scrollbar thumb drag state
	Dragging        bool
	DragStartY      float32
	DragStartScroll float32
}

// scrollStore is the type-safe store for scroll area state.
var scrollStore = NewFrameStore[ScrollState]()

// scrollAreaNameToID maps area names to their generated IDs so state can
// be looked up from outside the widget.
var scrollAreaNameToID = map[string]ID{}

// GetScrollState returns the state of a scroll area by the name it was
// created with, or nil if it has not been rendered yet.
func GetScrollState(name string) *ScrollState {
	id, ok := scrollAreaNameToID[name+"_scrollarea"]
	if !ok {
		return nil
	}
	return scrollStore.GetIfExists(id)
}

// SetScroll sets a scroll area's offset by name. The value is clamped
// against the content height measured last frame.
func SetScroll(name string, y float32) {
	state := GetScrollState(name)
	if state == nil {
		return
	}
	state.ScrollY = maxf(0, y)
}

// ScrollArea creates a vertically scrollable region of fixed height.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.ScrollArea("items", 300)(func() {
//	    ctx.Text("Line 1")
//	    list.Layout(ctx, len(items), renderRow)
//	})
func (ctx *Context) ScrollArea(name string, height float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)

		scrollID := ctx.GetID(name + "_scrollarea")
		scrollAreaNameToID[name+"_scrollarea"] = scrollID
		state := scrollStore.Get(scrollID, ScrollState{})

		x, y := ctx.cursor.X, ctx.cursor.Y
		w := ctx.ContentWidth()
		if width := GetOpt(o, OptWidth); width > 0 {
			w = width
		}

		visibility := GetOpt(o, OptScrollbarVisibility)
		showScrollbar := visibility == ScrollbarAlways ||
			(visibility == ScrollbarAuto && state.ContentHeight > height)

		scrollbarWidth := float32(0)
		if showScrollbar {
			scrollbarWidth = ctx.style.ScrollbarSize
		}
		contentWidth := w - scrollbarWidth

		viewport := Rect{X: x, Y: y, W: contentWidth, H: height}

		if GetOpt(o, OptBackground) {
			ctx.DrawList.AddRect(x, y, w, height, ctx.style.BackgroundColor)
		}

		ctx.DrawList.PushClipRect(x, y, x+contentWidth, y+height)

		// Content (0,0) maps to the viewport top-left minus the scroll
		// offset.
		origin := Vec2{X: x, Y: y - state.ScrollY}
		ctx.cursor = origin
		ctx.pushScrollRegion(scrollID, origin, viewport, contentWidth)

		contents()

		region := ctx.popScrollRegion()
		ctx.DrawList.PopClipRect()

		// Content height is whichever is larger: what the cursor actually
		// walked past, or what was reserved for skipped content.
		measured := ctx.cursor.Y - origin.Y
		state.ContentHeight = maxf(measured, region.minHeight)

		maxScroll := maxf(0, state.ContentHeight-height)

		if ctx.Input != nil && ctx.isHovered(Rect{X: x, Y: y, W: w, H: height}) {
			if ctx.Input.MouseWheelY != 0 {
				state.ScrollY = clampf(state.ScrollY-ctx.Input.MouseWheelY*30, 0, maxScroll)
			}
			switch {
			case ctx.Input.KeyPressed(KeyUp):
				state.ScrollY = clampf(state.ScrollY-ctx.LineHeight(), 0, maxScroll)
			case ctx.Input.KeyPressed(KeyDown):
				state.ScrollY = clampf(state.ScrollY+ctx.LineHeight(), 0, maxScroll)
			case ctx.Input.KeyPressed(KeyPageUp):
				state.ScrollY = clampf(state.ScrollY-height, 0, maxScroll)
			case ctx.Input.KeyPressed(KeyPageDown):
				state.ScrollY = clampf(state.ScrollY+height, 0, maxScroll)
			case ctx.Input.KeyPressed(KeyHome):
				state.ScrollY = 0
			case ctx.Input.KeyPressed(KeyEnd):
				state.ScrollY = maxScroll
			}
		}

		// Re-evaluate after measuring: content may have grown this frame.
		showScrollbar = visibility == ScrollbarAlways ||
			(visibility != ScrollbarNever && state.ContentHeight > height)

		if showScrollbar {
			ctx.drawScrollbar(state, x+w-ctx.style.ScrollbarSize, y, height, maxScroll)
		}

		if GetOpt(o, OptBorder) {
			ctx.DrawList.AddRectOutline(x, y, w, height, ctx.style.BorderColor, 1)
		}

		// Clamp in case content shrank under the current offset.
		state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

		ctx.cursor = Vec2{X: x, Y: y + height + ctx.style.ItemSpacing}
	}
}

// drawScrollbar renders the vertical scrollbar and handles thumb dragging.
func (ctx *Context) drawScrollbar(state *ScrollState, x, y, height, maxScroll float32) {
	sw := ctx.style.ScrollbarSize

	ctx.DrawList.AddRect(x, y, sw, height, ctx.style.ScrollbarBgColor)

	if state.ContentHeight <= 0 {
		return
	}

	thumbH := maxf(20, height*height/state.ContentHeight)
	thumbH = minf(thumbH, height)

	thumbY := y
	if maxScroll > 0 {
		thumbY = y + (state.ScrollY/maxScroll)*(height-thumbH)
	}

	thumb := Rect{X: x, Y: thumbY, W: sw, H: thumbH}
	hovered := ctx.isHovered(thumb)

	if ctx.Input != nil {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartY = ctx.Input.MouseY
			state.DragStartScroll = state.ScrollY
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				if maxScroll > 0 && height > thumbH {
					delta := ctx.Input.MouseY - state.DragStartY
					state.ScrollY = clampf(
						state.DragStartScroll+delta*maxScroll/(height-thumbH),
						0, maxScroll)
				}
			} else {
				state.Dragging = false
			}
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if hovered || state.Dragging {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(thumb.X+2, thumb.Y, sw-4, thumbH, color)
}
