package sprite

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/simscope/render"
)

// brightnessNeutral is the preference value that leaves colors unchanged
const brightnessNeutral = 36

// Brighten scales sprite luminance by brightness preference.
// The neutral value maps to factor 1.0; higher values lighten, lower
// values darken. Works in HSL so hue is preserved
func Brighten(s Sprite, brightness int32) Sprite {
	if brightness == brightnessNeutral {
		return s
	}
	factor := float64(brightness) / brightnessNeutral

	out := s.clone()
	for i := range out.Cells {
		if out.Cells[i].RenderFg {
			out.Cells[i].Fg = scaleLuminance(out.Cells[i].Fg, factor)
		}
		if out.Cells[i].RenderBg {
			out.Cells[i].Bg = scaleLuminance(out.Cells[i].Bg, factor)
		}
	}
	return out
}

func scaleLuminance(c render.RGB, factor float64) render.RGB {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, sat, l := col.Hsl()
	l *= factor
	if l > 1.0 {
		l = 1.0
	}
	adjusted := colorful.Hsl(h, sat, l).Clamped()
	return render.RGB{
		R: uint8(adjusted.R*255 + 0.5),
		G: uint8(adjusted.G*255 + 0.5),
		B: uint8(adjusted.B*255 + 0.5),
	}
}

// Tint multiplies sprite colors by an override color, the terminal
// equivalent of multiply-mode override color on a model
func Tint(s Sprite, color render.RGB) Sprite {
	out := s.clone()
	for i := range out.Cells {
		if out.Cells[i].RenderFg {
			out.Cells[i].Fg = render.Multiply(out.Cells[i].Fg, color)
		}
		if out.Cells[i].RenderBg {
			out.Cells[i].Bg = render.Multiply(out.Cells[i].Bg, color)
		}
	}
	return out
}
