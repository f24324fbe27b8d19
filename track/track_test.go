package track

import (
	"testing"
	"time"

	"github.com/lixenwraith/simscope/vmath"
)

func TestUpdatePositionHistory(t *testing.T) {
	var p Platform
	now := time.Now()

	p.UpdatePosition(vmath.Vec3{X: vmath.FromInt(1)}, now)
	if p.HistoryLen != 0 {
		t.Fatalf("Expected no history after first report, got %d", p.HistoryLen)
	}

	p.UpdatePosition(vmath.Vec3{X: vmath.FromInt(2)}, now.Add(time.Second))
	if p.HistoryLen != 1 {
		t.Fatalf("Expected 1 history entry, got %d", p.HistoryLen)
	}
	if p.History[0].Pos.X != vmath.FromInt(1) {
		t.Errorf("Expected previous position in history")
	}
	if p.Pos.X != vmath.FromInt(2) {
		t.Errorf("Expected current position updated")
	}
}

func TestHistoryRingWraps(t *testing.T) {
	var p Platform
	now := time.Now()

	for i := 0; i < HistoryCapacity+10; i++ {
		p.UpdatePosition(vmath.Vec3{X: vmath.FromInt(i)}, now.Add(time.Duration(i)*time.Second))
	}
	if p.HistoryLen != HistoryCapacity {
		t.Fatalf("Expected full ring, got %d", p.HistoryLen)
	}

	// Oldest surviving entry is the report that fell off the window
	var got []int
	p.eachHistory(func(h HistoryPoint) {
		got = append(got, vmath.ToInt(h.Pos.X))
	})
	if len(got) != HistoryCapacity {
		t.Fatalf("Expected %d visited entries, got %d", HistoryCapacity, len(got))
	}
	if got[0] != 9 {
		t.Errorf("Expected oldest entry 9, got %d", got[0])
	}
	if got[len(got)-1] != HistoryCapacity+8 {
		t.Errorf("Expected newest entry %d, got %d", HistoryCapacity+8, got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != got[i-1]+1 {
			t.Fatalf("Expected consecutive entries, got %v", got)
		}
	}
}

func TestStateAt(t *testing.T) {
	var p Platform
	now := time.Now()
	p.UpdatePosition(vmath.Vec3{}, now)

	stale := 5 * time.Second
	lost := 15 * time.Second

	if got := p.StateAt(now.Add(time.Second), stale, lost); got != StateActive {
		t.Errorf("Expected active, got %v", got)
	}
	if got := p.StateAt(now.Add(6*time.Second), stale, lost); got != StateStale {
		t.Errorf("Expected stale, got %v", got)
	}
	if got := p.StateAt(now.Add(16*time.Second), stale, lost); got != StateLost {
		t.Errorf("Expected lost, got %v", got)
	}
}
