package sprite

// Translate shifts all cell offsets by (dx, dy)
func Translate(s Sprite, dx, dy int) Sprite {
	out := s.clone()
	for i := range out.Cells {
		out.Cells[i].OffsetX += dx
		out.Cells[i].OffsetY += dy
	}
	out.AnchorX += dx
	out.AnchorY += dy
	return out
}

// WithAnchor returns the sprite with its anchor set to (ax, ay)
func WithAnchor(s Sprite, ax, ay int) Sprite {
	out := s
	out.AnchorX = ax
	out.AnchorY = ay
	return out
}

// rotateQuadrantCW remaps a quadrant bit pattern one quarter turn clockwise
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR
func rotateQuadrantCW(pattern int) int {
	out := 0
	if pattern&(1<<2) != 0 { // LL -> UL
		out |= 1 << 0
	}
	if pattern&(1<<0) != 0 { // UL -> UR
		out |= 1 << 1
	}
	if pattern&(1<<3) != 0 { // LR -> LL
		out |= 1 << 2
	}
	if pattern&(1<<1) != 0 { // UR -> LR
		out |= 1 << 3
	}
	return out
}

// flipQuadrantX mirrors a quadrant bit pattern horizontally
func flipQuadrantX(pattern int) int {
	out := 0
	if pattern&(1<<1) != 0 { // UR -> UL
		out |= 1 << 0
	}
	if pattern&(1<<0) != 0 { // UL -> UR
		out |= 1 << 1
	}
	if pattern&(1<<3) != 0 { // LR -> LL
		out |= 1 << 2
	}
	if pattern&(1<<2) != 0 { // LL -> LR
		out |= 1 << 3
	}
	return out
}

// Rotate90 rotates the sprite clockwise by quarterTurns * 90 degrees.
// Quadrant runes are remapped so sub-cell detail follows the rotation;
// other runes are left as-is
func Rotate90(s Sprite, quarterTurns int) Sprite {
	quarterTurns = ((quarterTurns % 4) + 4) % 4
	if quarterTurns == 0 {
		return s
	}

	out := s.clone()
	for turn := 0; turn < quarterTurns; turn++ {
		for i := range out.Cells {
			c := &out.Cells[i]
			x, y := c.OffsetX, c.OffsetY
			c.OffsetX = out.Height - 1 - y
			c.OffsetY = x
			if p := quadrantPattern(c.Rune); p >= 0 {
				c.Rune = QuadrantChars[rotateQuadrantCW(p)]
			}
		}
		out.Width, out.Height = out.Height, out.Width
	}
	return out
}

// FlipX mirrors the sprite horizontally
func FlipX(s Sprite) Sprite {
	out := s.clone()
	for i := range out.Cells {
		c := &out.Cells[i]
		c.OffsetX = out.Width - 1 - c.OffsetX
		if p := quadrantPattern(c.Rune); p >= 0 {
			c.Rune = QuadrantChars[flipQuadrantX(p)]
		}
	}
	return out
}
