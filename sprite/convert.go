package sprite

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/simscope/render"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// quadrantPattern returns the bit pattern for a quadrant rune, -1 otherwise
func quadrantPattern(r rune) int {
	for i, q := range QuadrantChars {
		if q == r {
			return i
		}
	}
	return -1
}

// alphaOpaque is the alpha cutoff for treating a pixel as solid
const alphaOpaque = 128

// FromImage converts an image to a sprite of the given cell width.
// Each cell covers a 2x2 pixel block rendered with quadrant characters,
// doubling effective resolution. Fully transparent blocks produce no cell,
// so irregular icon outlines stay irregular on screen
func FromImage(img image.Image, targetWidth int) Sprite {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	if srcW == 0 || srcH == 0 || targetWidth <= 0 {
		return Sprite{}
	}

	// Terminal chars are roughly 2:1 (height:width), so halve the height factor
	aspectRatio := float64(srcH) / float64(srcW)
	charAspect := 0.5

	outW := targetWidth
	outH := int(float64(targetWidth) * aspectRatio * charAspect)
	if outH < 1 {
		outH = 1
	}

	// Rescale once into the 2x quadrant grid, then sample directly
	grid := image.NewRGBA(image.Rect(0, 0, outW*2, outH*2))
	xdraw.ApproxBiLinear.Scale(grid, grid.Bounds(), img, bounds, xdraw.Src, nil)

	cells := make([]Cell, 0, outW*outH)

	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			// Sample positions: [0]=UL, [1]=UR, [2]=LL, [3]=LR
			var pixels [4]render.RGB
			var opaque [4]bool
			opaqueCount := 0

			offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
			for i, off := range offsets {
				px := grid.RGBAAt(x*2+off[0], y*2+off[1])
				pixels[i] = render.RGB{R: px.R, G: px.G, B: px.B}
				if px.A >= alphaOpaque {
					opaque[i] = true
					opaqueCount++
				}
			}

			if opaqueCount == 0 {
				continue
			}

			var cell Cell
			cell.OffsetX = x
			cell.OffsetY = y

			if opaqueCount == 4 {
				char, fg, bg := findBestQuadrant(pixels)
				cell.Rune = char
				cell.Fg = fg
				cell.Bg = bg
				cell.RenderFg = char != ' '
				cell.RenderBg = true
			} else {
				// Partially transparent block: pattern follows the opaque
				// mask, background shows through
				pattern := 0
				var sumR, sumG, sumB int
				for i := 0; i < 4; i++ {
					if opaque[i] {
						pattern |= 1 << i
						sumR += int(pixels[i].R)
						sumG += int(pixels[i].G)
						sumB += int(pixels[i].B)
					}
				}
				cell.Rune = QuadrantChars[pattern]
				cell.Fg = render.RGB{
					R: uint8(sumR / opaqueCount),
					G: uint8(sumG / opaqueCount),
					B: uint8(sumB / opaqueCount),
				}
				cell.RenderFg = true
				cell.RenderBg = false
			}

			cells = append(cells, cell)
		}
	}

	return Sprite{
		Cells:  cells,
		Width:  outW,
		Height: outH,
	}
}

// findBestQuadrant finds the optimal quadrant character and fg/bg colors for 4 pixels
func findBestQuadrant(pixels [4]render.RGB) (rune, render.RGB, render.RGB) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg render.RGB

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := computePatternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	return QuadrantChars[bestPattern], bestFg, bestBg
}

// computePatternColors computes optimal fg/bg colors for a given bit pattern
func computePatternColors(pixels [4]render.RGB, pattern int) (fg, bg render.RGB, totalError int) {
	var fgR, fgG, fgB, fgCount int
	var bgR, bgG, bgB, bgCount int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgR += int(pixels[i].R)
			fgG += int(pixels[i].G)
			fgB += int(pixels[i].B)
			fgCount++
		} else {
			bgR += int(pixels[i].R)
			bgG += int(pixels[i].G)
			bgB += int(pixels[i].B)
			bgCount++
		}
	}

	if fgCount > 0 {
		fg = render.RGB{
			R: uint8(fgR / fgCount),
			G: uint8(fgG / fgCount),
			B: uint8(fgB / fgCount),
		}
	}
	if bgCount > 0 {
		bg = render.RGB{
			R: uint8(bgR / bgCount),
			G: uint8(bgG / bgCount),
			B: uint8(bgB / bgCount),
		}
	}

	for i := 0; i < 4; i++ {
		var target render.RGB
		if pattern&(1<<i) != 0 {
			target = fg
		} else {
			target = bg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}

	return fg, bg, totalError
}

func colorDistanceSq(a, b render.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
