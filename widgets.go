package vlist

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.cursor
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.cursor
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.cursor
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Separator draws a horizontal rule across the available width.
func (ctx *Context) Separator() {
	pos := ctx.cursor
	w := ctx.ContentWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y, pos.X+w, pos.Y, ctx.style.BorderColor, 1)
	ctx.AdvanceCursor(Vec2{X: w, Y: 1})
}

// Selectable draws a full-width selectable row and returns true if it
// was clicked this frame.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	o := applyOptions(opts)

	pos := ctx.cursor
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = ctx.ContentWidth()
	}
	h := ctx.style.CharHeight * ctx.style.FontScale

	bounds := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	if !bounds.Intersects(ctx.VisibleRect()) {
		// Laid out fully past the visible window (overscan rows):
		// advance layout, emit no geometry.
		ctx.AdvanceCursor(Vec2{X: w, Y: h})
		return false
	}
	hovered := ctx.isHovered(bounds)
	clicked := hovered && ctx.Input.MouseClicked(MouseButtonLeft)

	textColor := ctx.style.TextColor
	switch {
	case selected:
		ctx.DrawList.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, ctx.style.SelectedBgColor)
		ctx.DrawList.AddRect(bounds.X, bounds.Y, 4, bounds.H, ColorCyan) // Left edge bar
		textColor = ctx.style.SelectedTextColor
	case hovered:
		ctx.DrawList.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, ctx.style.HoveredBgColor)
	}

	ctx.addText(bounds.X+6, bounds.Y, label, textColor)
	ctx.AdvanceCursor(Vec2{X: w, Y: h})

	return clicked
}
