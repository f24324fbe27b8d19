package track

import (
	"sync"
	"time"

	"github.com/lixenwraith/simscope/icon"
	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/render"
	"github.com/lixenwraith/simscope/vmath"
)

// Staleness windows
const (
	DefaultStaleAfter = 5 * time.Second
	DefaultLostAfter  = 15 * time.Second
)

const (
	fallbackGlyph = '?'
	historyGlyph  = '·'
)

// Event reports a track state transition from Sweep
type Event struct {
	ID    uint64
	State State
}

// Store owns the live track set. Icon handles are acquired through the
// factory on add and on relevant preference changes, and released on
// removal, so the factory's node count tracks the distinct preference
// sets in use
type Store struct {
	mu         sync.Mutex
	factory    *icon.Factory
	platforms  map[uint64]*Platform
	staleAfter time.Duration
	lostAfter  time.Duration
}

// NewStore creates a track store acquiring icons from the given factory
func NewStore(factory *icon.Factory) *Store {
	return &Store{
		factory:    factory,
		platforms:  make(map[uint64]*Platform),
		staleAfter: DefaultStaleAfter,
		lostAfter:  DefaultLostAfter,
	}
}

// SetStaleness adjusts the staleness windows
func (s *Store) SetStaleness(staleAfter, lostAfter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staleAfter = staleAfter
	s.lostAfter = lostAfter
}

// Add registers a new track. An existing track with the same id is
// replaced, releasing its icon reference
func (s *Store) Add(id uint64, p prefs.PlatformPrefs, now time.Time) *Platform {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.platforms[id]; ok {
		old.Release()
	}

	plat := &Platform{
		ID:         id,
		Prefs:      p,
		LastUpdate: now,
	}
	plat.placement = s.acquirePlacement(p)
	s.platforms[id] = plat
	return plat
}

// acquirePlacement gets a shared icon for the prefs, nil when the prefs
// fall back to general rendering. Caller holds mu
func (s *Store) acquirePlacement(p prefs.PlatformPrefs) *icon.Placement {
	h := s.factory.GetOrCreate(p)
	if h == nil {
		return nil
	}
	pl := icon.NewPlacement(h)
	pl.SetLabel(p.Label, p.LabelColor.RGB())
	return pl
}

// Get returns the track for id, nil if absent
func (s *Store) Get(id uint64) *Platform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platforms[id]
}

// UpdatePosition records a position report for a track
func (s *Store) UpdatePosition(id uint64, pos vmath.Vec3, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plat, ok := s.platforms[id]; ok {
		plat.UpdatePosition(pos, now)
	}
}

// UpdatePrefs applies a preference change. The icon reference is swapped
// only when the change invalidates the shared sprite or the fast-path
// eligibility; label-only changes keep the existing node
func (s *Store) UpdatePrefs(id uint64, p prefs.PlatformPrefs) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plat, ok := s.platforms[id]
	if !ok {
		return
	}

	if s.factory.HasRelevantChanges(plat.Prefs, p) {
		plat.Release()
		plat.placement = s.acquirePlacement(p)
	} else if plat.placement != nil {
		plat.placement.SetLabel(p.Label, p.LabelColor.RGB())
	}
	plat.Prefs = p
}

// Remove drops a track and releases its icon reference
func (s *Store) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plat, ok := s.platforms[id]; ok {
		plat.Release()
		delete(s.platforms, id)
	}
}

// Release drops the platform's icon reference
func (p *Platform) Release() {
	if p.placement != nil {
		p.placement.Release()
		p.placement = nil
	}
}

// Sweep classifies every track against the staleness windows, removes
// lost tracks, and returns the state transitions since the last sweep
func (s *Store) Sweep(now time.Time) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []Event
	for id, plat := range s.platforms {
		state := plat.StateAt(now, s.staleAfter, s.lostAfter)
		if state == plat.state {
			continue
		}
		plat.state = state
		events = append(events, Event{ID: id, State: state})
		if state == StateLost {
			plat.Release()
			delete(s.platforms, id)
		}
	}
	return events
}

// Submit queues draws for every track: history trail, then the shared
// icon sprite (or the fallback glyph), positioned by the projector
func (s *Store) Submit(q *render.DrawQueue, project func(vmath.Vec3) (int, int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, plat := range s.platforms {
		x, y := project(plat.Pos)

		if plat.HistoryLen > 0 {
			points := make([][2]int, 0, plat.HistoryLen)
			plat.eachHistory(func(h HistoryPoint) {
				hx, hy := project(h.Pos)
				points = append(points, [2]int{hx, hy})
			})
			trailColor := plat.Prefs.LabelColor.RGB()
			q.Submit(render.PriorityTrackHistory, 0, func(b *render.Buffer) {
				for _, pt := range points {
					b.SetFgOnly(pt[0], pt[1], historyGlyph, trailColor, render.AttrNone)
				}
			})
		}

		if plat.placement != nil {
			plat.placement.MoveTo(x, y)
			plat.placement.Submit(q)
			continue
		}

		// General fallback path for prefs the factory declined
		color := plat.Prefs.LabelColor.RGB()
		q.Submit(render.PriorityPlatformIcon, 0, func(b *render.Buffer) {
			b.SetFgOnly(x, y, fallbackGlyph, color, render.AttrNone)
		})
	}
}

// Counts returns the live track count and the distinct shared icon count
func (s *Store) Counts() (platforms, sharedNodes int) {
	s.mu.Lock()
	platforms = len(s.platforms)
	s.mu.Unlock()
	return platforms, s.factory.NodeCount()
}
