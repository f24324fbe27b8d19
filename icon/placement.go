package icon

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/simscope/render"
)

// Placement is the per-platform wrapper around a shared icon node. All
// holder-specific state lives here: screen position, visibility, label.
// Drawing reads the shared sprite but never writes through it, so one
// platform's placement can never corrupt another's display
type Placement struct {
	handle     *Handle
	X, Y       int
	Visible    bool
	Label      string
	LabelColor render.RGB
}

// NewPlacement wraps a handle obtained from Factory.GetOrCreate.
// The placement owns the handle and releases it in Release
func NewPlacement(h *Handle) *Placement {
	return &Placement{
		handle:  h,
		Visible: true,
	}
}

// MoveTo updates the screen anchor position
func (p *Placement) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// SetLabel sets the per-platform label drawn under the sprite
func (p *Placement) SetLabel(text string, color render.RGB) {
	p.Label = text
	p.LabelColor = color
}

// Handle returns the underlying handle, nil after Release
func (p *Placement) Handle() *Handle {
	return p.handle
}

// Submit queues this placement's draws. The sprite goes into the platform
// icon layer under the node's bin, so placements sharing a node draw
// consecutively; the label goes into the label layer above all icons
func (p *Placement) Submit(q *render.DrawQueue) {
	if p == nil || p.handle == nil || !p.Visible {
		return
	}

	node := p.handle.Node()
	spr := node.Sprite()
	x, y := p.X, p.Y

	if node.NoDepth() {
		q.Submit(render.PriorityPlatformIcon, node.Bin(), func(b *render.Buffer) {
			spr.DrawTo(b, x, y)
		})
	} else {
		q.Submit(render.PriorityPlatformIcon, node.Bin(), func(b *render.Buffer) {
			spr.DrawToIfClear(b, x, y)
		})
	}

	if p.Label != "" {
		label := p.Label
		color := p.LabelColor
		lx := x - runewidth.StringWidth(label)/2
		ly := y + spr.AnchorY + spr.Height
		q.Submit(render.PriorityLabel, 0, func(b *render.Buffer) {
			drawString(b, lx, ly, label, color)
		})
	}
}

// Release drops the placement's reference to the shared node. The
// placement draws nothing afterwards
func (p *Placement) Release() {
	if p.handle != nil {
		p.handle.Release()
		p.handle = nil
	}
}

// drawString writes text into the buffer, advancing by display width so
// wide runes keep their alignment
func drawString(b *render.Buffer, x, y int, text string, color render.RGB) {
	for _, r := range text {
		b.SetFgOnly(x, y, r, color, render.AttrNone)
		x += runewidth.RuneWidth(r)
	}
}
