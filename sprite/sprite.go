// Package sprite builds terminal cell sprites from image files.
// Conversion is deterministic: equal inputs always produce identical
// sprites, which is what lets the icon factory share one sprite across
// every platform whose preferences agree
package sprite

import (
	"github.com/lixenwraith/simscope/render"
)

// Cell holds visual data + offset for one sprite cell
type Cell struct {
	OffsetX  int
	OffsetY  int
	Rune     rune
	Fg       render.RGB
	Bg       render.RGB
	RenderFg bool
	RenderBg bool
}

// Sprite is a converted icon: a bag of cells with a bounding box and anchor
type Sprite struct {
	Cells   []Cell
	Width   int // Bounding width
	Height  int // Bounding height
	AnchorX int // Anchor offset applied at draw time
	AnchorY int
}

// Count returns number of cells in the sprite
func (s *Sprite) Count() int {
	return len(s.Cells)
}

// Empty returns true if the sprite has no cells
func (s *Sprite) Empty() bool {
	return len(s.Cells) == 0
}

// Bounds returns the bounding rectangle of the sprite cells
func (s *Sprite) Bounds() (minX, minY, maxX, maxY int) {
	if len(s.Cells) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = s.Cells[0].OffsetX, s.Cells[0].OffsetY
	maxX, maxY = minX, minY

	for _, cell := range s.Cells[1:] {
		if cell.OffsetX < minX {
			minX = cell.OffsetX
		}
		if cell.OffsetX > maxX {
			maxX = cell.OffsetX
		}
		if cell.OffsetY < minY {
			minY = cell.OffsetY
		}
		if cell.OffsetY > maxY {
			maxY = cell.OffsetY
		}
	}
	return minX, minY, maxX, maxY
}

// DrawTo composites the sprite into the buffer anchored at (x, y)
func (s *Sprite) DrawTo(b *render.Buffer, x, y int) {
	for _, c := range s.Cells {
		cx := x + s.AnchorX + c.OffsetX
		cy := y + s.AnchorY + c.OffsetY
		switch {
		case c.RenderFg && c.RenderBg:
			b.SetWithBg(cx, cy, c.Rune, c.Fg, c.Bg)
		case c.RenderFg:
			b.SetFgOnly(cx, cy, c.Rune, c.Fg, render.AttrNone)
		case c.RenderBg:
			b.SetBgOnly(cx, cy, c.Bg)
		}
	}
}

// DrawToIfClear composites only into cells not yet touched this frame,
// letting earlier layers keep depth precedence
func (s *Sprite) DrawToIfClear(b *render.Buffer, x, y int) {
	for _, c := range s.Cells {
		cx := x + s.AnchorX + c.OffsetX
		cy := y + s.AnchorY + c.OffsetY
		if b.Touched(cx, cy) {
			continue
		}
		switch {
		case c.RenderFg && c.RenderBg:
			b.SetWithBg(cx, cy, c.Rune, c.Fg, c.Bg)
		case c.RenderFg:
			b.SetFgOnly(cx, cy, c.Rune, c.Fg, render.AttrNone)
		case c.RenderBg:
			b.SetBgOnly(cx, cy, c.Bg)
		}
	}
}

// clone returns a deep copy so transforms never alias the source cells
func (s Sprite) clone() Sprite {
	cells := make([]Cell, len(s.Cells))
	copy(cells, s.Cells)
	s.Cells = cells
	return s
}
