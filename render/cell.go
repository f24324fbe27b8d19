package render

// Attr is a bitmask of terminal text attributes
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
	AttrBlink
	AttrNone Attr = 0
)

// Cell is a single screen cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultBgRGB is the default background color
var DefaultBgRGB = RGB{13, 17, 23}
