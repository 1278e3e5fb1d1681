package charatlas

import "image"

// grid is the fixed partition of the atlas texture into equally sized
// cells. It is computed once at construction and never changes.
type grid struct {
	cellWidth  int
	cellHeight int
	cols       int
	rows       int
}

// newGrid partitions a texture of the given size into cells, discarding
// any remainder at the right and bottom edges.
func newGrid(textureWidth, textureHeight, cellWidth, cellHeight int) grid {
	return grid{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		cols:       textureWidth / cellWidth,
		rows:       textureHeight / cellHeight,
	}
}

// capacity returns the number of cells the atlas can hold.
func (g grid) capacity() int {
	return g.cols * g.rows
}

// slotRect returns the pixel region of the given slot. The mapping is a
// pure function of the slot index: slots fill rows left to right, top to
// bottom, so it is injective over [0, capacity).
//
// Slot indexes outside [0, capacity) are programming errors.
func (g grid) slotRect(slot int) image.Rectangle {
	if slot < 0 || slot >= g.capacity() {
		panic("charatlas: slot index out of range")
	}
	x := (slot % g.cols) * g.cellWidth
	y := (slot / g.cols) * g.cellHeight
	return image.Rect(x, y, x+g.cellWidth, y+g.cellHeight)
}
