package vlist

import "sync"

// Cleanable is implemented by all FrameStore instances so the frame
// driver can sweep stale entries without knowing their element type.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	storesMu sync.Mutex
	stores   []Cleanable

	frameMu      sync.Mutex
	currentFrame uint64
)

// registerStore adds a store to the global cleanup list.
func registerStore(s Cleanable) {
	storesMu.Lock()
	stores = append(stores, s)
	storesMu.Unlock()
}

// NextFrame advances the frame counter and evicts state that was not
// touched last frame. The host calls this once per frame; Context.Reset
// does it automatically.
func NextFrame() {
	frameMu.Lock()
	currentFrame++
	frame := currentFrame
	frameMu.Unlock()

	storesMu.Lock()
	list := stores
	storesMu.Unlock()

	for _, s := range list {
		s.Cleanup(frame)
	}
}

// CurrentFrameCount returns the current frame counter.
func CurrentFrameCount() uint64 {
	frameMu.Lock()
	defer frameMu.Unlock()
	return currentFrame
}

type frameEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state keyed by ID. Entries not accessed
// for a full frame are evicted, so state for widgets that stop being
// submitted disappears on its own.
type FrameStore[T any] struct {
	mu      sync.Mutex
	entries map[ID]*frameEntry[T]
}

// NewFrameStore creates a FrameStore and registers it for per-frame
// cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{entries: make(map[ID]*frameEntry[T])}
	registerStore(s)
	return s
}

// Get returns the state for id, creating it from defaultVal if absent.
// The entry is marked as touched this frame. The returned pointer is
// valid until the entry is evicted; mutations through it persist.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &frameEntry[T]{value: defaultVal}
		s.entries[id] = e
	}
	e.lastFrame = frameNumberLocked()
	return &e.value
}

// GetIfExists returns the state for id, or nil if no entry exists.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil
	}
	e.lastFrame = frameNumberLocked()
	return &e.value
}

// Set stores a value for id, replacing any existing entry.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = &frameEntry[T]{value: value, lastFrame: frameNumberLocked()}
}

// Delete removes the state for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Cleanup evicts entries not touched since the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if frame > e.lastFrame+1 {
			delete(s.entries, id)
		}
	}
}

func frameNumberLocked() uint64 {
	frameMu.Lock()
	defer frameMu.Unlock()
	return currentFrame
}
