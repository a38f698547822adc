package vlist_test

import (
	"testing"

	"github.com/go-theft-auto/vlist"
)

// tallContent walks the cursor past 500 units of content.
func tallContent(ctx *vlist.Context) {
	ctx.AdvanceCursor(vlist.Vec2{Y: 500})
}

func scrollFrame(ui *vlist.UI, input *vlist.InputState, area string, contents func(*vlist.Context)) {
	if input == nil {
		input = vlist.NewInputState()
	}
	ctx := ui.Begin(input, vlist.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ScrollArea(area, 100, vlist.WithWidth(200), vlist.NoScrollbar())(func() {
		contents(ctx)
	})
	_ = ui.End()
}

func TestScrollAreaMeasuresContent(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_measure", tallContent)

	state := vlist.GetScrollState("sa_measure")
	if state == nil {
		t.Fatal("scroll state not found")
	}
	if state.ContentHeight != 500 {
		t.Errorf("ContentHeight = %v, want 500", state.ContentHeight)
	}
	if state.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", state.ScrollY)
	}
}

func TestScrollAreaWheelScrolls(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_wheel", tallContent)

	input := vlist.NewInputState()
	input.SetMousePos(50, 50) // inside the area
	input.SetMouseWheel(0, -2)
	scrollFrame(ui, input, "sa_wheel", tallContent)

	state := vlist.GetScrollState("sa_wheel")
	if state == nil {
		t.Fatal("scroll state not found")
	}
	// 30 units per wheel step
	if state.ScrollY != 60 {
		t.Errorf("ScrollY = %v after wheel, want 60", state.ScrollY)
	}
}

func TestScrollAreaWheelIgnoredWhenNotHovered(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_nohover", tallContent)

	input := vlist.NewInputState()
	input.SetMousePos(500, 400) // outside the area
	input.SetMouseWheel(0, -2)
	scrollFrame(ui, input, "sa_nohover", tallContent)

	state := vlist.GetScrollState("sa_nohover")
	if state.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0 when wheel happens elsewhere", state.ScrollY)
	}
}

func TestScrollAreaKeyNavigation(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_keys", tallContent)

	press := func(k vlist.Key) {
		input := vlist.NewInputState()
		input.SetMousePos(50, 50)
		input.SetKey(k, true)
		scrollFrame(ui, input, "sa_keys", tallContent)
	}

	press(vlist.KeyPageDown)
	if got := vlist.GetScrollState("sa_keys").ScrollY; got != 100 {
		t.Errorf("ScrollY after PageDown = %v, want 100", got)
	}

	press(vlist.KeyEnd)
	if got := vlist.GetScrollState("sa_keys").ScrollY; got != 400 {
		t.Errorf("ScrollY after End = %v, want 400 (content 500, viewport 100)", got)
	}

	press(vlist.KeyPageUp)
	if got := vlist.GetScrollState("sa_keys").ScrollY; got != 300 {
		t.Errorf("ScrollY after PageUp = %v, want 300", got)
	}

	press(vlist.KeyHome)
	if got := vlist.GetScrollState("sa_keys").ScrollY; got != 0 {
		t.Errorf("ScrollY after Home = %v, want 0", got)
	}
}

func TestScrollAreaArrowKeys(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_arrows", tallContent)

	press := func(k vlist.Key) {
		input := vlist.NewInputState()
		input.SetMousePos(50, 50)
		input.SetKey(k, true)
		scrollFrame(ui, input, "sa_arrows", tallContent)
	}

	press(vlist.KeyDown)
	if got := vlist.GetScrollState("sa_arrows").ScrollY; got != 13 {
		t.Errorf("ScrollY after Down = %v, want one line height (13)", got)
	}

	press(vlist.KeyDown)
	if got := vlist.GetScrollState("sa_arrows").ScrollY; got != 26 {
		t.Errorf("ScrollY after second Down = %v, want 26", got)
	}

	press(vlist.KeyUp)
	press(vlist.KeyUp)
	press(vlist.KeyUp)
	if got := vlist.GetScrollState("sa_arrows").ScrollY; got != 0 {
		t.Errorf("ScrollY after scrolling past the top = %v, want 0", got)
	}
}

func TestScrollAreaBorder(t *testing.T) {
	ui := newTestUI()

	ctx := ui.Begin(vlist.NewInputState(), vlist.Vec2{X: 800, Y: 600}, 0.016)
	ctx.ScrollArea("sa_border", 100, vlist.WithWidth(200), vlist.NoScrollbar(),
		vlist.NoBackground(), vlist.WithBorder())(func() {})

	// Four edge quads and nothing else.
	if got := len(ctx.DrawList.VtxBuffer); got != 16 {
		t.Errorf("vertex count = %d, want 16 (four border edges)", got)
	}
	_ = ui.End()
}

func TestScrollAreaSetScrollClamped(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_clamp", tallContent)

	vlist.SetScroll("sa_clamp", 10000)
	scrollFrame(ui, nil, "sa_clamp", tallContent)

	if got := vlist.GetScrollState("sa_clamp").ScrollY; got != 400 {
		t.Errorf("ScrollY = %v, want clamped to 400", got)
	}
}

func TestScrollAreaOffsetsContent(t *testing.T) {
	ui := newTestUI()
	scrollFrame(ui, nil, "sa_offset", tallContent)
	vlist.SetScroll("sa_offset", 150)

	var origin vlist.Vec2
	var visible vlist.Rect
	scrollFrame(ui, nil, "sa_offset", func(ctx *vlist.Context) {
		origin = ctx.CursorPos()
		visible = ctx.VisibleRect()
		tallContent(ctx)
	})

	// Content starts 150 units above the viewport top (y=0 here).
	if origin.Y != -150 {
		t.Errorf("content origin Y = %v, want -150", origin.Y)
	}
	// The visible window itself stays put in screen space.
	if visible.Y != 0 || visible.H != 100 {
		t.Errorf("visible rect = %+v, want y=0 h=100", visible)
	}
}

func TestScrollAreaReservation(t *testing.T) {
	ui := newTestUI()

	scrollFrame(ui, nil, "sa_reserve", func(ctx *vlist.Context) {
		ctx.AdvanceCursor(vlist.Vec2{Y: 40})
		ctx.ReserveBelowCursor(960)
	})

	if got := vlist.GetScrollState("sa_reserve").ContentHeight; got != 1000 {
		t.Errorf("ContentHeight = %v, want 1000 (40 laid out + 960 reserved)", got)
	}
}

// Scrollbar appears once content exceeds the viewport, narrowing the
// content width by the scrollbar size.
func TestScrollAreaAutoScrollbar(t *testing.T) {
	ui := newTestUI()

	var widths []float32
	frame := func() {
		ctx := ui.Begin(vlist.NewInputState(), vlist.Vec2{X: 800, Y: 600}, 0.016)
		ctx.ScrollArea("sa_auto", 100, vlist.WithWidth(200))(func() {
			widths = append(widths, ctx.ContentWidth())
			tallContent(ctx)
		})
		_ = ui.End()
	}

	frame()
	frame()

	if widths[0] != 200 {
		t.Errorf("first frame width = %v, want 200 (content height unknown yet)", widths[0])
	}
	if want := 200 - vlist.DefaultStyle().ScrollbarSize; widths[1] != want {
		t.Errorf("second frame width = %v, want %v", widths[1], want)
	}
}
