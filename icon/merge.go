// Package icon de-duplicates platform icon sprites across platforms with
// identical rendering preferences. Building a sprite is expensive (image
// decode, rescale, quadrant fitting, color passes); with thousands of
// platforms sharing a handful of preference sets, the factory builds each
// distinct sprite once and hands out shared references
package icon

import (
	"strings"

	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/render"
	"github.com/lixenwraith/simscope/vmath"
)

// MergeSettings is the subset of platform preferences that affect the
// shared sprite. If every field matches, two platforms produce bit-for-bit
// identical sprites and can share one node.
//
// Not all preferences belong here: label settings apply to the per-platform
// placement and must NOT force distinct sprites. But any preference that
// changes sprite output MUST be added here, or platforms differing only in
// that preference will silently share a wrong sprite. TestKeyCoversBuildInputs
// pins the field list against the build pipeline
type MergeSettings struct {
	PosOffset     vmath.Vec3 // scene-unit position offset
	OriOffset     vmath.Vec3 // X=yaw, Y=pitch, Z=roll, radians
	Path          string     // resolved icon file path, "" when unresolved
	Alignment     prefs.Alignment
	OverrideColor render.RGB // white when override unused (multiply identity)
	NoDepth       bool
	UseCullFace   bool
	CullFace      prefs.PolygonFace
	Brightness    int32
	IconWidth     int
}

// NewMergeSettings projects preferences into a merge key, resolving the
// icon name through the supplied resolver. Pure: never fails; an
// unresolvable icon is recorded as an empty path
func NewMergeSettings(p prefs.PlatformPrefs, resolve func(string) string) MergeSettings {
	overrideColor := render.RGBWhite
	if p.UseOverrideColor {
		overrideColor = p.OverrideColor.RGB()
	}
	return MergeSettings{
		PosOffset:     vmath.V3FromFloats(p.PosOffset.X, p.PosOffset.Y, p.PosOffset.Z),
		OriOffset:     vmath.V3FromFloats(p.OriOffset.Yaw, p.OriOffset.Pitch, p.OriOffset.Roll),
		Path:          resolve(p.Icon),
		Alignment:     p.Alignment,
		OverrideColor: overrideColor,
		NoDepth:       p.NoDepth,
		UseCullFace:   p.UseCullFace,
		CullFace:      p.CullFace,
		Brightness:    p.Brightness,
		IconWidth:     p.IconWidth,
	}
}

// Compare imposes a strict total order over merge settings, field by field
// in declaration order. Returns -1, 0, or 1
func (m MergeSettings) Compare(o MergeSettings) int {
	if c := m.PosOffset.Compare(o.PosOffset); c != 0 {
		return c
	}
	if c := m.OriOffset.Compare(o.OriOffset); c != 0 {
		return c
	}
	if c := strings.Compare(m.Path, o.Path); c != 0 {
		return c
	}
	if c := cmpInt(int(m.Alignment), int(o.Alignment)); c != 0 {
		return c
	}
	if c := cmpColor(m.OverrideColor, o.OverrideColor); c != 0 {
		return c
	}
	if c := cmpBool(m.NoDepth, o.NoDepth); c != 0 {
		return c
	}
	if c := cmpBool(m.UseCullFace, o.UseCullFace); c != 0 {
		return c
	}
	if c := cmpInt(int(m.CullFace), int(o.CullFace)); c != 0 {
		return c
	}
	if c := cmpInt(int(m.Brightness), int(o.Brightness)); c != 0 {
		return c
	}
	return cmpInt(m.IconWidth, o.IconWidth)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func cmpColor(a, b render.RGB) int {
	if c := cmpInt(int(a.R), int(b.R)); c != 0 {
		return c
	}
	if c := cmpInt(int(a.G), int(b.G)); c != 0 {
		return c
	}
	return cmpInt(int(a.B), int(b.B))
}
