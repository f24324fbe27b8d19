package icon

import (
	"fmt"
	"math"

	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/render"
	"github.com/lixenwraith/simscope/sprite"
	"github.com/lixenwraith/simscope/vmath"
)

// IconNode is one shared sprite plus its draw-order bin. Every platform
// holding a handle composites the same cell data; per-platform state
// (position, visibility, label) lives on Placement, never here. Nothing
// mutates the node after construction
type IconNode struct {
	spr     sprite.Sprite
	bin     int
	noDepth bool
	key     MergeSettings
}

// Sprite returns the shared sprite. Callers must not modify the cells
func (n *IconNode) Sprite() *sprite.Sprite {
	return &n.spr
}

// Bin returns the draw-order bin assigned at creation
func (n *IconNode) Bin() int {
	return n.bin
}

// NoDepth reports whether the sprite draws over earlier layers
func (n *IconNode) NoDepth() bool {
	return n.noDepth
}

// mergeSettings returns the key this node is cached under
func (n *IconNode) mergeSettings() MergeSettings {
	return n.key
}

// buildIconNode is the default build pipeline: load and convert the icon
// file, then bake every key-carried customization into the cell data.
// Each stage is deterministic, so equal keys produce identical nodes
func buildIconNode(key MergeSettings) (*IconNode, error) {
	spr, err := sprite.Load(key.Path, key.IconWidth)
	if err != nil {
		return nil, err
	}
	if spr.Empty() {
		return nil, fmt.Errorf("icon %s produced no cells", key.Path)
	}

	spr = applyOrientation(spr, key)
	spr = sprite.Brighten(spr, key.Brightness)
	if !key.OverrideColor.Equal(render.RGBWhite) {
		spr = sprite.Tint(spr, key.OverrideColor)
	}
	spr = applyAnchor(spr, key)

	return &IconNode{spr: spr}, nil
}

// applyOrientation maps the orientation offset onto the cell grid: yaw
// quantized to quarter turns, roll past a half turn mirrors the sprite.
// Cull-face preferences suppress the face the mirror would expose
func applyOrientation(spr sprite.Sprite, key MergeSettings) sprite.Sprite {
	yaw, _, roll := vmath.V3ToFloats(key.OriOffset)

	quarterTurns := int(math.Round(yaw/(math.Pi/2))) % 4
	if quarterTurns != 0 {
		spr = sprite.Rotate90(spr, quarterTurns)
	}

	backFacing := math.Abs(normalizeAngle(roll)) > math.Pi/2
	if backFacing && !cullsBackFace(key) {
		spr = sprite.FlipX(spr)
	}
	return spr
}

// cullsBackFace reports whether preferences hide the mirrored face
func cullsBackFace(key MergeSettings) bool {
	if !key.UseCullFace {
		return false
	}
	return key.CullFace == prefs.FaceBack || key.CullFace == prefs.FaceFrontAndBack
}

// applyAnchor combines alignment and position offset into the sprite anchor.
// Screen y grows downward, so a positive Y offset moves the sprite up;
// the Z component has no projection on the cell grid
func applyAnchor(spr sprite.Sprite, key MergeSettings) sprite.Sprite {
	ax, ay := key.Alignment.Offsets(spr.Width, spr.Height)
	ax += vmath.Round(key.PosOffset.X)
	ay -= vmath.Round(key.PosOffset.Y)
	return sprite.WithAnchor(spr, ax, ay)
}

// normalizeAngle wraps an angle to (-pi, pi]
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
