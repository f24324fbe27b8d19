package icon

import (
	"sync/atomic"
)

// Handle is one strong reference to a shared icon node. Every holder gets
// its own handle; the node stays cached until the last handle is released.
// Release is safe to call more than once on the same handle; only the
// first call counts
type Handle struct {
	factory  *Factory
	node     *IconNode
	released atomic.Bool
}

// Node returns the shared icon node. Valid until Release
func (h *Handle) Node() *IconNode {
	return h.node
}

// Release drops this handle's reference. When the last handle for a node
// is released, the factory evicts its cache entry and the next request
// with the same settings rebuilds the sprite
func (h *Handle) Release() {
	if h == nil || h.released.Swap(true) {
		return
	}
	h.factory.releaseNode(h.node)
}
