// Package vlist provides immediate-mode widgets for rendering very large
// item lists one visible slice at a time. The core is VirtualList, which
// measures rows lazily, caches their rectangles, and estimates the extent
// of content it has never rendered so the enclosing scroll area sizes
// correctly.
package vlist

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(offset Vec2) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, W: r.W, H: r.H}
}

// Size returns the rectangle's size as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Bottom returns the Y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorCyan        uint32 = 0xFFFFFF00
	ColorYellow      uint32 = 0xFF00FFFF
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
