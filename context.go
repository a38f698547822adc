package vlist

import (
	"log/slog"
	"os"
)

// listLogLevel controls log verbosity for the package.
// Set VLIST_DEBUG=1 environment variable to enable debug logging.
var listLogLevel = new(slog.LevelVar)

// listLogger is the package logger. Defaults to warn level to stay quiet
// in production; debug level surfaces per-frame layout decisions.
var listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: listLogLevel,
}))

func init() {
	listLogLevel.Set(slog.LevelWarn)
	if os.Getenv("VLIST_DEBUG") == "1" {
		listLogLevel.Set(slog.LevelDebug)
	}
}

// SetLogger replaces the package logger. Pass nil to restore the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: listLogLevel,
		}))
		return
	}
	listLogger = l
}

// scrollRegion tracks one level of nesting inside a scroll area. The
// origin is the screen-space point that content coordinate (0,0) maps to
// after scrolling; the viewport is the clipped screen-space window.
type scrollRegion struct {
	id        ID
	origin    Vec2 // screen-space position of unscrolled content top-left
	viewport  Rect // screen-space visible window
	width     float32
	minHeight float32 // lower bound on content height, from reservations
}

// Context holds per-frame UI state.
// Created once and reset each frame via Reset().
type Context struct {
	DrawList    *DrawList
	Input       *InputState
	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// FontTextureID is the texture used for text rendering.
	// Set by the backend after uploading the font atlas.
	FontTextureID uint32

	style     Style
	cursor    Vec2
	repainter Repainter

	idStack   []ID
	idCounter uint16

	scrollStack []scrollRegion
}

// NewContext creates a new UI context with default style.
func NewContext() *Context {
	return &Context{
		Input: NewInputState(),
		style: DefaultStyle(),
	}
}

// Reset prepares the context for a new frame. The caller owns the
// DrawList lifecycle; UI.Begin acquires one before calling this.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.scrollStack = ctx.scrollStack[:0]

	NextFrame()
}

// Style returns the current style.
func (ctx *Context) Style() *Style {
	return &ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(s Style) {
	ctx.style = s
}

// SetRepainter attaches the event-loop repainter picked up by Inbox
// reads.
func (ctx *Context) SetRepainter(r Repainter) {
	ctx.repainter = r
}

// CursorPos returns the current layout cursor position in screen space.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

// SetCursorPos sets the layout cursor position.
func (ctx *Context) SetCursorPos(pos Vec2) {
	ctx.cursor = pos
}

// AdvanceCursor moves the cursor past an item of the given size,
// including the style's item spacing.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// LineHeight returns the height of a line of text plus spacing.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight*ctx.style.FontScale + ctx.style.ItemSpacing
}

// MeasureText returns the pixel size of a string in the monospace font.
func (ctx *Context) MeasureText(text string) Vec2 {
	return Vec2{
		X: float32(len(text)) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.style.CharHeight * ctx.style.FontScale,
	}
}

// addText draws text through the font atlas texture, restoring the
// previous texture binding afterwards.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	prev := ctx.DrawList.textureID
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale)
	ctx.DrawList.SetTexture(prev)
}

// isHovered returns true if the mouse is over the rectangle.
func (ctx *Context) isHovered(r Rect) bool {
	return r.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY})
}

// isClicked returns true if the rectangle was clicked this frame.
func (ctx *Context) isClicked(r Rect) bool {
	return ctx.isHovered(r) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// ContentWidth returns the width available for content at the current
// nesting level.
func (ctx *Context) ContentWidth() float32 {
	if n := len(ctx.scrollStack); n > 0 {
		return ctx.scrollStack[n-1].width
	}
	return ctx.DisplaySize.X
}

// VisibleRect returns the screen-space window content can currently be
// seen through: the innermost scroll viewport, or the whole display when
// no scroll area is active.
func (ctx *Context) VisibleRect() Rect {
	if n := len(ctx.scrollStack); n > 0 {
		return ctx.scrollStack[n-1].viewport
	}
	return Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
}

// ReserveBelowCursor widens the enclosing scroll area's content height
// to cover at least h more units below the cursor, without laying
// anything out. Used to stand in for content that is skipped this frame.
func (ctx *Context) ReserveBelowCursor(h float32) {
	n := len(ctx.scrollStack)
	if n == 0 {
		return
	}
	region := &ctx.scrollStack[n-1]
	extent := ctx.cursor.Y + h - region.origin.Y
	if extent > region.minHeight {
		region.minHeight = extent
	}
}

// pushScrollRegion enters a scroll area. origin is where content (0,0)
// lands in screen space after applying the scroll offset.
func (ctx *Context) pushScrollRegion(id ID, origin Vec2, viewport Rect, width float32) {
	ctx.scrollStack = append(ctx.scrollStack, scrollRegion{
		id:       id,
		origin:   origin,
		viewport: viewport,
		width:    width,
	})
}

// popScrollRegion leaves the innermost scroll area and returns it.
func (ctx *Context) popScrollRegion() scrollRegion {
	n := len(ctx.scrollStack)
	region := ctx.scrollStack[n-1]
	ctx.scrollStack = ctx.scrollStack[:n-1]
	return region
}
