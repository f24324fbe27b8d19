package prefs

import (
	"fmt"

	"github.com/lixenwraith/simscope/render"
)

// Alignment anchors an icon sprite relative to its platform position
type Alignment uint8

const (
	AlignCenterCenter Alignment = iota
	AlignCenterTop
	AlignCenterBottom
	AlignLeftCenter
	AlignLeftTop
	AlignLeftBottom
	AlignRightCenter
	AlignRightTop
	AlignRightBottom
)

var alignmentNames = map[string]Alignment{
	"center":       AlignCenterCenter,
	"top":          AlignCenterTop,
	"bottom":       AlignCenterBottom,
	"left":         AlignLeftCenter,
	"left-top":     AlignLeftTop,
	"left-bottom":  AlignLeftBottom,
	"right":        AlignRightCenter,
	"right-top":    AlignRightTop,
	"right-bottom": AlignRightBottom,
}

// UnmarshalText decodes an alignment name from config files
func (a *Alignment) UnmarshalText(text []byte) error {
	v, ok := alignmentNames[string(text)]
	if !ok {
		return fmt.Errorf("unknown alignment %q", string(text))
	}
	*a = v
	return nil
}

// Offsets returns the anchor translation for a sprite of the given size.
// Center alignment keeps the sprite centered on the platform position;
// the other alignments shift it so the named edge touches the position
func (a Alignment) Offsets(width, height int) (dx, dy int) {
	switch a {
	case AlignLeftCenter, AlignLeftTop, AlignLeftBottom:
		dx = 0
	case AlignRightCenter, AlignRightTop, AlignRightBottom:
		dx = -width
	default:
		dx = -width / 2
	}
	switch a {
	case AlignCenterTop, AlignLeftTop, AlignRightTop:
		dy = 0
	case AlignCenterBottom, AlignLeftBottom, AlignRightBottom:
		dy = -height
	default:
		dy = -height / 2
	}
	return dx, dy
}

// PolygonFace selects which sprite face survives cull-face filtering
type PolygonFace uint8

const (
	FaceFrontAndBack PolygonFace = iota
	FaceFront
	FaceBack
)

// UnmarshalText decodes a face name from config files
func (f *PolygonFace) UnmarshalText(text []byte) error {
	switch string(text) {
	case "front-and-back":
		*f = FaceFrontAndBack
	case "front":
		*f = FaceFront
	case "back":
		*f = FaceBack
	default:
		return fmt.Errorf("unknown cull face %q", string(text))
	}
	return nil
}

// Position is a 3D position offset in scene units
type Position struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// Orientation is a body orientation offset in radians
type Orientation struct {
	Yaw   float64 `toml:"yaw"`
	Pitch float64 `toml:"pitch"`
	Roll  float64 `toml:"roll"`
}

// Color is a render.RGB that decodes from "#RRGGBB" in config files
type Color render.RGB

// UnmarshalText decodes a hex color string
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	*c = Color{R: r, G: g, B: b}
	return nil
}

// RGB converts to the render color type
func (c Color) RGB() render.RGB {
	return render.RGB(c)
}

// PlatformPrefs holds the display preferences for one platform.
// The icon factory projects the rendering-relevant subset of these fields
// into its merge settings key; see icon.NewMergeSettings
type PlatformPrefs struct {
	Icon      string      `toml:"icon"`
	IconWidth int         `toml:"icon_width"`
	Alignment Alignment   `toml:"alignment"`
	PosOffset Position    `toml:"position_offset"`
	OriOffset Orientation `toml:"orientation_offset"`

	UseOverrideColor bool  `toml:"use_override_color"`
	OverrideColor    Color `toml:"override_color"`

	NoDepth     bool        `toml:"no_depth"`
	UseCullFace bool        `toml:"use_cull_face"`
	CullFace    PolygonFace `toml:"cull_face"`
	Brightness  int32       `toml:"brightness"`

	// Decoration modes incompatible with the shared-sprite fast path
	DrawBox             bool `toml:"draw_box"`
	DrawCircleHighlight bool `toml:"draw_circle_highlight"`
	DrawBodyAxis        bool `toml:"draw_body_axis"`
	DrawInertialAxis    bool `toml:"draw_inertial_axis"`
	DrawSunVector       bool `toml:"draw_sun_vector"`
	DrawMoonVector      bool `toml:"draw_moon_vector"`

	// Label settings apply to the per-platform placement, never to the
	// shared sprite, so they are deliberately absent from the merge key
	Label      string `toml:"label"`
	LabelColor Color  `toml:"label_color"`
}

// Default preference values
const (
	DefaultIconWidth  = 8
	DefaultBrightness = 36
)

// Default returns preferences with standard values applied
func Default() PlatformPrefs {
	return PlatformPrefs{
		IconWidth:  DefaultIconWidth,
		Alignment:  AlignCenterCenter,
		NoDepth:    true,
		Brightness: DefaultBrightness,
		LabelColor: Color{R: 255, G: 255, B: 255},
	}
}
