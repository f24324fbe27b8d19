package render

import (
	"github.com/gdamore/tcell/v2"
)

// styleFor converts cell colors and attributes to a tcell style
func styleFor(c Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if c.Attrs&AttrBlink != 0 {
		style = style.Blink(true)
	}
	return style
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *Buffer) FlushToScreen(s tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			r := row[x].Rune
			if r == 0 {
				r = ' '
			}
			s.SetContent(x, y, r, nil, styleFor(row[x]))
		}
	}
	s.Show()
}
