package vlist

import "sync"

// Font atlas layout shared with the backend renderer.
// ASCII 32-127 arranged in a 16x6 grid; each glyph occupies the top-left
// FontGlyphWidth x FontGlyphHeight pixels of its cell.
const (
	FontGlyphWidth  = 7
	FontGlyphHeight = 13
	FontCellWidth   = 8
	FontCellHeight  = 16
	FontColumns     = 16
	FontAtlasWidth  = FontColumns * FontCellWidth // 128
	FontAtlasHeight = 6 * FontCellHeight          // 96
)

// drawListPool provides efficient reuse of DrawList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode UI where we rebuild the entire draw list each frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the current clip rectangle.
func (dl *DrawList) ClipRect() Rect {
	return Rect{
		X: dl.currentClip[0],
		Y: dl.currentClip[1],
		W: dl.currentClip[2] - dl.currentClip[0],
		H: dl.currentClip[3] - dl.currentClip[1],
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		if len(dl.CmdBuffer) > 0 {
			lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
			lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		}
		dl.textureID = textureID
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ClipRect:     dl.currentClip,
			TextureID:    dl.textureID,
			VertexOffset: uint32(len(dl.VtxBuffer)),
			IndexOffset:  uint32(len(dl.IdxBuffer)),
		})
		dl.cmdOffset = uint32(len(dl.VtxBuffer))
		dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// ensureCommand ensures there's an active draw command.
func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	dl.ensureCommand()
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a vertical or horizontal line as a thin quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	if x1 == x2 { // vertical
		dl.AddRect(x1-thickness*0.5, minf(y1, y2), thickness, maxf(y1, y2)-minf(y1, y2), color)
		return
	}
	dl.AddRect(minf(x1, x2), y1-thickness*0.5, maxf(x1, x2)-minf(x1, x2), thickness, color)
}

// AddText draws monospace text at the specified position using the
// shared font atlas layout. fontScale is typically 1.0 for normal size.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	cw := float32(FontGlyphWidth) * fontScale
	ch := float32(FontGlyphHeight) * fontScale

	pos := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}

		idx := int(r - 32)
		col := float32(idx % FontColumns)
		row := float32(idx / FontColumns)

		u0 := col * FontCellWidth / FontAtlasWidth
		v0 := row * FontCellHeight / FontAtlasHeight
		u1 := (col*FontCellWidth + FontGlyphWidth) / FontAtlasWidth
		v1 := (row*FontCellHeight + FontGlyphHeight) / FontAtlasHeight

		px := x + float32(pos)*cw
		pos++

		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)

		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
