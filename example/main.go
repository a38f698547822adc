// Example renders a million-row virtual list next to a fixed-height
// clipped list, with a background goroutine streaming new log lines in
// through an Inbox.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vlist"
	"github.com/go-theft-auto/vlist/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "vlist example"

	bigListLen = 1_000_000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := vlist.New(renderer,
		vlist.WithStyle(vlist.DarkStyle()),
		vlist.WithRepainter(opengl.EventRepainter{}),
	)

	// Background goroutine streams log lines into the UI.
	logInbox := vlist.NewInbox[string]()
	sender := logInbox.Sender()
	go func() {
		for i := 0; ; i++ {
			time.Sleep(time.Second)
			sender.Send(fmt.Sprintf("event %d at %s", i, time.Now().Format("15:04:05")))
		}
	}()

	var logLines []string
	selected := -1

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := vlist.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)

		logLines = append(logLines, logInbox.Read(ctx)...)

		ctx.SetCursorPos(vlist.Vec2{X: 16, Y: 16})
		ctx.Text(fmt.Sprintf("%d items, variable heights", bigListLen))

		// A million rows with heights that vary by index. Only the
		// visible slice is laid out each frame.
		ctx.SetCursorPos(vlist.Vec2{X: 16, Y: 40})
		ctx.ScrollArea("big_list", 380, vlist.WithWidth(460), vlist.WithBorder())(func() {
			ctx.VirtualList("big_items", bigListLen, func(ctx *vlist.Context, i int) int {
				if ctx.Selectable(fmt.Sprintf("item %d", i), i == selected) {
					selected = i
				}
				// Every seventh row gets a second line.
				if i%7 == 0 {
					ctx.TextDisabled("  extra detail line")
				}
				return 1
			})
		})

		// Streamed log with uniform row heights, clipped arithmetically.
		ctx.SetCursorPos(vlist.Vec2{X: 500, Y: 40})
		ctx.Text(fmt.Sprintf("streamed log (%d lines)", len(logLines)))
		ctx.SetCursorPos(vlist.Vec2{X: 500, Y: 64})
		ctx.ScrollArea("log", 356, vlist.WithWidth(280), vlist.WithBorder())(func() {
			rowH := ctx.LineHeight()
			state := vlist.GetScrollState("log")
			scrollY := float32(0)
			if state != nil {
				scrollY = state.ScrollY
			}

			clipper := vlist.NewListClipper(len(logLines), rowH, 356, scrollY)
			base := ctx.CursorPos()
			for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
				ctx.SetCursorPos(vlist.Vec2{X: base.X, Y: base.Y + float32(i)*rowH})
				ctx.TextColored(logLines[i], vlist.ColorCyan)
			}
			// Walk the cursor to the full extent so the scrollbar sizes
			// for every line, not just the rendered ones.
			ctx.SetCursorPos(vlist.Vec2{X: base.X, Y: base.Y + clipper.ContentHeight()})
		})

		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
