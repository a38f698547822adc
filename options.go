package vlist

// Option configures a widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptCustomThing = vlist.NewOptKey("customThing", defaultValue)
//
//	ctx.ScrollArea("log", 200, vlist.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := vlist.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds viewport
	ScrollbarAlways                            // Always show scrollbar
	ScrollbarNever                             // Never show scrollbar
)

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- ScrollArea Options ---
var (
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptBackground          = NewOptKey("background", true)
	OptBorder              = NewOptKey("border", false)
)

// --- VirtualList Options ---
var (
	// OptTailEstimate reserves at least this many units of extra content
	// height below the last laid-out row, on top of the list's own
	// estimate. Useful to keep the scrollbar stable while items stream in.
	OptTailEstimate = NewOptKey[float32]("tailEstimate", 0)

	// OptOverscan lays out this many extra units of content beyond the
	// bottom of the visible window.
	OptOverscan = NewOptKey[float32]("overscan", 0)
)

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// NoScrollbar hides the scrollbar entirely.
func NoScrollbar() Option { return WithOpt(OptScrollbarVisibility, ScrollbarNever) }

// NoBackground disables the scroll area background fill.
func NoBackground() Option { return WithOpt(OptBackground, false) }

// WithBorder outlines the scroll area in the style's border color.
func WithBorder() Option { return WithOpt(OptBorder, true) }

// WithTailEstimate reserves extra content height below the virtual
// list's last row.
func WithTailEstimate(h float32) Option { return WithOpt(OptTailEstimate, h) }

// WithOverscan lays out extra content beyond the visible window.
func WithOverscan(h float32) Option { return WithOpt(OptOverscan, h) }
