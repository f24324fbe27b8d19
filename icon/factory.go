package icon

import (
	"log"
	"sync"

	"github.com/lixenwraith/simscope/prefs"
	"github.com/lixenwraith/simscope/registry"
)

// BuildFunc constructs the sprite node for a merge key. Invoked only on
// cache miss; may block on file loading
type BuildFunc func(MergeSettings) (*IconNode, error)

// Factory caches icon nodes by merge settings. At most one live node
// exists per distinct key; eviction happens exactly when the last handle
// is released. One mutex covers the node map, the bin counter, and the
// refcount bookkeeping: a miss racing a release for the same key must
// serialize, or two goroutines could both become creators of what should
// be one shared node
type Factory struct {
	mu       sync.Mutex
	reg      *registry.Registry
	nodes    map[MergeSettings]*IconNode
	notifier *releaseNotifier
	bins     binAllocator
	enabled  bool
}

// NewFactory creates an icon factory resolving icon names through reg
func NewFactory(reg *registry.Registry) *Factory {
	f := &Factory{
		reg:     reg,
		nodes:   make(map[MergeSettings]*IconNode),
		enabled: true,
	}
	f.notifier = newReleaseNotifier(f.notifyReleased)
	return f
}

// GetOrCreate returns a handle to the shared icon node for the given
// preferences, building it with the default pipeline on first use.
// Returns nil when the preferences cannot use the shared-sprite path
// (unsupported decoration modes, unresolvable icon, build failure);
// callers fall back to their general rendering path
func (f *Factory) GetOrCreate(p prefs.PlatformPrefs) *Handle {
	return f.GetOrCreateFunc(p, buildIconNode)
}

// GetOrCreateFunc is GetOrCreate with a caller-supplied build function.
// The build function runs only on cache miss: two calls with preferences
// that project to equal keys share one node and one build
func (f *Factory) GetOrCreateFunc(p prefs.PlatformPrefs, build BuildFunc) *Handle {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.canApply(p) {
		return nil
	}

	key := NewMergeSettings(p, f.reg.FindIconFile)
	if key.Path == "" {
		return nil
	}

	if node, ok := f.nodes[key]; ok {
		f.notifier.acquire(key)
		return &Handle{factory: f, node: node}
	}

	node, err := build(key)
	if err != nil {
		// Recoverable: no entry inserted, next call retries the build
		log.Printf("icon: build failed for %s: %v", key.Path, err)
		return nil
	}

	node.key = key
	node.bin = f.bins.nextBin()
	node.noDepth = key.NoDepth

	f.notifier.track(key)
	f.notifier.acquire(key)
	f.nodes[key] = node

	return &Handle{factory: f, node: node}
}

// canApply reports whether preferences are compatible with the shared
// sprite representation. Decoration modes that need per-platform geometry
// cannot share cells. Caller holds mu
func (f *Factory) canApply(p prefs.PlatformPrefs) bool {
	if !f.enabled {
		return false
	}
	if p.DrawBox || p.DrawCircleHighlight {
		return false
	}
	if p.DrawBodyAxis || p.DrawInertialAxis || p.DrawSunVector || p.DrawMoonVector {
		return false
	}
	return true
}

// releaseNode records a handle drop for the node's key
func (f *Factory) releaseNode(node *IconNode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifier.release(node.mergeSettings())
}

// notifyReleased evicts the cache entry for a key whose last handle
// dropped. Fired by the release notifier with mu held. Idempotent: a key
// already evicted is a no-op. A notification arriving while handles are
// still live would be a bookkeeping bug; it is skipped rather than
// allowed to orphan live holders
func (f *Factory) notifyReleased(key MergeSettings) {
	if _, ok := f.nodes[key]; !ok {
		return
	}
	if live := f.notifier.liveRefs(key); live > 0 {
		log.Printf("icon: eviction for %s with %d live handles, skipping", key.Path, live)
		return
	}
	delete(f.nodes, key)
}

// HasRelevantChanges reports whether a preference update invalidates the
// shared sprite or the fast-path eligibility, field for field. Keys are
// not rebuilt here: icon names are compared unresolved, matching the
// fields a resolver cannot change mid-frame
func (f *Factory) HasRelevantChanges(oldPrefs, newPrefs prefs.PlatformPrefs) bool {
	return oldPrefs.Icon != newPrefs.Icon ||
		oldPrefs.IconWidth != newPrefs.IconWidth ||
		oldPrefs.Alignment != newPrefs.Alignment ||
		oldPrefs.PosOffset != newPrefs.PosOffset ||
		oldPrefs.OriOffset != newPrefs.OriOffset ||
		oldPrefs.UseOverrideColor != newPrefs.UseOverrideColor ||
		oldPrefs.OverrideColor != newPrefs.OverrideColor ||
		oldPrefs.NoDepth != newPrefs.NoDepth ||
		oldPrefs.UseCullFace != newPrefs.UseCullFace ||
		oldPrefs.CullFace != newPrefs.CullFace ||
		oldPrefs.Brightness != newPrefs.Brightness ||
		oldPrefs.DrawBox != newPrefs.DrawBox ||
		oldPrefs.DrawCircleHighlight != newPrefs.DrawCircleHighlight ||
		oldPrefs.DrawBodyAxis != newPrefs.DrawBodyAxis ||
		oldPrefs.DrawInertialAxis != newPrefs.DrawInertialAxis ||
		oldPrefs.DrawSunVector != newPrefs.DrawSunVector ||
		oldPrefs.DrawMoonVector != newPrefs.DrawMoonVector
}

// SetEnabled toggles the shared-sprite fast path. Disabling does not
// invalidate nodes already handed out; it only declines new requests
func (f *Factory) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enabled = enabled
}

// IsEnabled reports whether the fast path is active
func (f *Factory) IsEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled
}

// NodeCount returns the number of distinct cached nodes
func (f *Factory) NodeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.nodes)
}

// LiveHandles returns the live handle count for the node a handle refers
// to, for diagnostics and tests
func (f *Factory) LiveHandles(h *Handle) int {
	if h == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notifier.liveRefs(h.node.mergeSettings())
}
