// Package track maintains the platform track model: identity, position
// history, staleness, and the per-platform icon placement
package track

import (
	"time"

	"github.com/lixenwraith/simscope/icon"
	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/vmath"
)

// State represents track lifecycle state
type State uint8

const (
	StateActive State = iota // Updating within the stale window
	StateStale               // No update past the stale window
	StateLost                // No update past the lost window, pending removal
)

// HistoryCapacity is the ring buffer size for trail rendering
const HistoryCapacity = 32

// HistoryPoint stores a position snapshot for the track trail
type HistoryPoint struct {
	Pos  vmath.Vec3
	Seen time.Time
}

// Platform holds one track's state (pure data plus its icon placement)
type Platform struct {
	ID    uint64
	Prefs prefs.PlatformPrefs
	Pos   vmath.Vec3

	LastUpdate time.Time

	// Trail ring buffer
	History     [HistoryCapacity]HistoryPoint
	HistoryHead int // Next write index
	HistoryLen  int // Current valid entries (0..HistoryCapacity)

	placement *icon.Placement
	state     State
	hasFix    bool
}

// UpdatePosition records a new position and pushes the old one onto the
// history ring. The first report establishes the position without a
// history entry
func (p *Platform) UpdatePosition(pos vmath.Vec3, now time.Time) {
	if p.hasFix {
		p.History[p.HistoryHead] = HistoryPoint{Pos: p.Pos, Seen: p.LastUpdate}
		p.HistoryHead = (p.HistoryHead + 1) % HistoryCapacity
		if p.HistoryLen < HistoryCapacity {
			p.HistoryLen++
		}
	}
	p.Pos = pos
	p.LastUpdate = now
	p.hasFix = true
}

// StateAt classifies the track against the staleness windows
func (p *Platform) StateAt(now time.Time, staleAfter, lostAfter time.Duration) State {
	age := now.Sub(p.LastUpdate)
	switch {
	case age >= lostAfter:
		return StateLost
	case age >= staleAfter:
		return StateStale
	}
	return StateActive
}

// Placement returns the track's icon placement, nil when the track is on
// the general rendering fallback
func (p *Platform) Placement() *icon.Placement {
	return p.placement
}

// eachHistory visits history points oldest first
func (p *Platform) eachHistory(visit func(HistoryPoint)) {
	start := p.HistoryHead - p.HistoryLen
	if start < 0 {
		start += HistoryCapacity
	}
	for i := 0; i < p.HistoryLen; i++ {
		visit(p.History[(start+i)%HistoryCapacity])
	}
}
