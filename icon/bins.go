package icon

// Bin numbering for sprite nodes inside the platform icon layer.
// Bins live in a reserved range so they cannot collide with other draw
// ordering in the scene; binRange bounds the spread so distinct sprites
// stay clustered. A collision between two sprites only means their draw
// order can interleave, costing state coherence, never correctness
const (
	binBase  = 1000
	binRange = 1000
)

// binAllocator hands each new sprite node an ordering bin.
// The counter is strictly increasing and never reused; bins repeat after
// binRange allocations
type binAllocator struct {
	next uint64
}

// nextBin returns the bin for the next sprite node
func (a *binAllocator) nextBin() int {
	bin := binBase + int(a.next%binRange)
	a.next++
	return bin
}
