package icon

import (
	"log"
)

// releaseNotifier tracks live handle counts for cached nodes and fires a
// callback exactly once, when a node's count transitions to zero. The
// factory's map holds no count of its own, so cache residency alone can
// never keep a node's count above zero.
//
// Per-node state machine: tracked (live) -> released (terminal). All
// methods are called with the factory mutex held
type releaseNotifier struct {
	refs   map[MergeSettings]int
	onZero func(MergeSettings)
}

func newReleaseNotifier(onZero func(MergeSettings)) *releaseNotifier {
	return &releaseNotifier{
		refs:   make(map[MergeSettings]int),
		onZero: onZero,
	}
}

// track begins observing a node. Tracking an already-tracked key would
// mean the factory inserted a duplicate; guard and keep the existing count
func (n *releaseNotifier) track(key MergeSettings) {
	if _, exists := n.refs[key]; exists {
		log.Printf("icon: duplicate track for %s, keeping existing count", key.Path)
		return
	}
	n.refs[key] = 0
}

// acquire records a new live handle for the key
func (n *releaseNotifier) acquire(key MergeSettings) {
	count, exists := n.refs[key]
	if !exists {
		// Acquiring an untracked key is a factory bookkeeping bug
		log.Printf("icon: acquire on untracked icon %s, ignoring", key.Path)
		return
	}
	n.refs[key] = count + 1
}

// release records a handle drop; the zero transition ends tracking and
// fires the callback. Releasing an untracked or drained key indicates a
// bookkeeping bug elsewhere; it is logged and skipped rather than allowed
// to corrupt the count
func (n *releaseNotifier) release(key MergeSettings) {
	count, exists := n.refs[key]
	if !exists {
		log.Printf("icon: release on untracked icon %s, ignoring", key.Path)
		return
	}
	if count <= 0 {
		log.Printf("icon: release on drained icon %s, ignoring", key.Path)
		return
	}
	count--
	if count == 0 {
		delete(n.refs, key)
		n.onZero(key)
		return
	}
	n.refs[key] = count
}

// liveRefs returns the live handle count for a key, 0 if untracked
func (n *releaseNotifier) liveRefs(key MergeSettings) int {
	return n.refs[key]
}
