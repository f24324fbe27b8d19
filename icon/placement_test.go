package icon

import (
	"testing"

	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/render"
	"github.com/lixenwraith/simscope/sprite"
)

// blockBuild returns a build func producing a 1x1 opaque block sprite
func blockBuild(key MergeSettings) (*IconNode, error) {
	return &IconNode{
		spr: sprite.Sprite{
			Cells: []sprite.Cell{{
				Rune:     '█',
				Fg:       render.RGBWhite,
				Bg:       render.RGBBlack,
				RenderFg: true,
				RenderBg: true,
			}},
			Width:  1,
			Height: 1,
		},
	}, nil
}

func newTestPlacement(t *testing.T, p prefs.PlatformPrefs) (*Placement, *Factory) {
	t.Helper()
	f, base := newTestFactory(t)
	base.NoDepth = p.NoDepth
	h := f.GetOrCreateFunc(base, blockBuild)
	if h == nil {
		t.Fatalf("Expected handle")
	}
	return NewPlacement(h), f
}

func TestPlacementSubmitDraws(t *testing.T) {
	pl, _ := newTestPlacement(t, prefs.Default())
	pl.MoveTo(5, 5)

	buf := render.NewBuffer(20, 20)
	q := render.NewDrawQueue()
	pl.Submit(q)
	q.Flush(buf)

	if got := buf.CellAt(5, 5).Rune; got != '█' {
		t.Errorf("Expected sprite cell at (5,5), got %q", got)
	}
}

func TestPlacementInvisibleDrawsNothing(t *testing.T) {
	pl, _ := newTestPlacement(t, prefs.Default())
	pl.MoveTo(5, 5)
	pl.Visible = false

	q := render.NewDrawQueue()
	pl.Submit(q)
	if q.Len() != 0 {
		t.Errorf("Expected no ops from invisible placement, got %d", q.Len())
	}
}

func TestPlacementLabel(t *testing.T) {
	pl, _ := newTestPlacement(t, prefs.Default())
	pl.MoveTo(5, 5)
	pl.SetLabel("AB", render.RGB{G: 255})

	buf := render.NewBuffer(20, 20)
	q := render.NewDrawQueue()
	pl.Submit(q)
	q.Flush(buf)

	// Centered under the sprite: width 2 label around x=5, one row below
	if got := buf.CellAt(4, 6).Rune; got != 'A' {
		t.Errorf("Expected label start at (4,6), got %q", got)
	}
	if got := buf.CellAt(5, 6).Rune; got != 'B' {
		t.Errorf("Expected label end at (5,6), got %q", got)
	}
	if got := buf.CellAt(4, 6).Fg; got != (render.RGB{G: 255}) {
		t.Errorf("Expected label color, got %v", got)
	}
}

func TestPlacementDepthSemantics(t *testing.T) {
	buf := render.NewBuffer(20, 20)
	buf.SetWithBg(5, 5, '#', render.RGBWhite, render.RGBBlack)

	p := prefs.Default()
	p.NoDepth = false
	pl, _ := newTestPlacement(t, p)
	pl.MoveTo(5, 5)

	q := render.NewDrawQueue()
	pl.Submit(q)
	q.Flush(buf)

	// Depth-respecting sprite yields to the earlier write
	if got := buf.CellAt(5, 5).Rune; got != '#' {
		t.Errorf("Expected occupied cell preserved, got %q", got)
	}

	// A no-depth sprite overwrites it
	pl2, _ := newTestPlacement(t, prefs.Default())
	pl2.MoveTo(5, 5)
	pl2.Submit(q)
	q.Flush(buf)
	if got := buf.CellAt(5, 5).Rune; got != '█' {
		t.Errorf("Expected no-depth sprite to overwrite, got %q", got)
	}
}

func TestPlacementReleaseDropsReference(t *testing.T) {
	pl, f := newTestPlacement(t, prefs.Default())
	if f.NodeCount() != 1 {
		t.Fatalf("Expected 1 cached node, got %d", f.NodeCount())
	}

	pl.Release()
	if f.NodeCount() != 0 {
		t.Errorf("Expected eviction after placement release, got %d", f.NodeCount())
	}
	if pl.Handle() != nil {
		t.Errorf("Expected nil handle after release")
	}

	// Released placement submits nothing and a second release is a no-op
	q := render.NewDrawQueue()
	pl.Submit(q)
	if q.Len() != 0 {
		t.Errorf("Expected no ops from released placement, got %d", q.Len())
	}
	pl.Release()
}
