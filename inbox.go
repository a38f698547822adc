package vlist

import "sync"

// Repainter requests a new frame from the event loop. Backends whose
// loops block on events implement this so background sends wake the UI;
// loops that redraw continuously can ignore it.
type Repainter interface {
	RequestRepaint()
}

// Inbox carries values from background goroutines into UI code. The UI
// side drains it once per frame with Read; senders obtained via Sender
// can be handed to any goroutine. When a Repainter is known, every send
// requests a repaint so the value shows up without waiting for input.
//
// The repainter is captured lazily from the first Read call, so an
// Inbox can be created before the UI exists.
type Inbox[T any] struct {
	shared *inboxShared[T]
}

type inboxShared[T any] struct {
	mu        sync.Mutex
	queue     []T
	repainter Repainter
}

// NewInbox creates an empty inbox.
func NewInbox[T any]() *Inbox[T] {
	return &Inbox[T]{shared: &inboxShared[T]{}}
}

// NewInboxWithRepainter creates an inbox with the repainter already
// attached, for use before the first Read.
func NewInboxWithRepainter[T any](r Repainter) *Inbox[T] {
	return &Inbox[T]{shared: &inboxShared[T]{repainter: r}}
}

// Read drains all queued values, capturing the context's repainter for
// future sends. Call once per frame from UI code.
func (in *Inbox[T]) Read(ctx *Context) []T {
	s := in.shared
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx != nil && ctx.repainter != nil {
		s.repainter = ctx.repainter
	}

	if len(s.queue) == 0 {
		return nil
	}
	out := s.queue
	s.queue = nil
	return out
}

// ReadLast drains the queue and returns only the most recent value.
// The boolean reports whether anything was queued.
func (in *Inbox[T]) ReadLast(ctx *Context) (T, bool) {
	vals := in.Read(ctx)
	if len(vals) == 0 {
		var zero T
		return zero, false
	}
	return vals[len(vals)-1], true
}

// Sender returns a handle for sending into this inbox from other
// goroutines. Senders are cheap; take as many as needed.
func (in *Inbox[T]) Sender() Sender[T] {
	return Sender[T]{shared: in.shared}
}

// Send queues a value directly. Shorthand for Sender().Send(v).
func (in *Inbox[T]) Send(v T) {
	in.Sender().Send(v)
}

// Sender is the producing side of an Inbox. Safe for concurrent use.
type Sender[T any] struct {
	shared *inboxShared[T]
}

// Send queues a value and requests a repaint if one is wired up.
func (s Sender[T]) Send(v T) {
	sh := s.shared
	sh.mu.Lock()
	sh.queue = append(sh.queue, v)
	r := sh.repainter
	sh.mu.Unlock()

	if r != nil {
		r.RequestRepaint()
	}
}

// Replace drops anything queued and queues only v. Useful for
// progress-style updates where intermediate values don't matter.
func (s Sender[T]) Replace(v T) {
	sh := s.shared
	sh.mu.Lock()
	sh.queue = sh.queue[:0]
	sh.queue = append(sh.queue, v)
	r := sh.repainter
	sh.mu.Unlock()

	if r != nil {
		r.RequestRepaint()
	}
}
