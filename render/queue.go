package render

import (
	"sort"
)

// DrawOp renders into the buffer when executed
type DrawOp func(*Buffer)

// queuedOp pairs a draw op with its ordering metadata
type queuedOp struct {
	priority Priority
	bin      int
	seq      int
	op       DrawOp
}

// DrawQueue collects draw ops for one frame and executes them in
// (priority, bin) order. Ops sharing a bin run consecutively, so state
// shared between them (sprite cell slices, style runs) stays coherent.
// Submission order breaks ties, making composition deterministic
type DrawQueue struct {
	ops  []queuedOp
	runs int
}

// NewDrawQueue creates an empty queue with some initial capacity
func NewDrawQueue() *DrawQueue {
	return &DrawQueue{ops: make([]queuedOp, 0, 256)}
}

// Submit adds a draw op at the given priority layer and bin
// Bin is an ordering hint within the layer, not a uniqueness guarantee
func (q *DrawQueue) Submit(priority Priority, bin int, op DrawOp) {
	q.ops = append(q.ops, queuedOp{
		priority: priority,
		bin:      bin,
		seq:      len(q.ops),
		op:       op,
	})
}

// Len returns the number of pending ops
func (q *DrawQueue) Len() int {
	return len(q.ops)
}

// Flush sorts and executes all pending ops, then empties the queue
func (q *DrawQueue) Flush(b *Buffer) {
	sort.Slice(q.ops, func(i, j int) bool {
		a, c := q.ops[i], q.ops[j]
		if a.priority != c.priority {
			return a.priority < c.priority
		}
		if a.bin != c.bin {
			return a.bin < c.bin
		}
		return a.seq < c.seq
	})

	q.runs = 0
	lastPriority := Priority(-1)
	lastBin := -1
	for i := range q.ops {
		if q.ops[i].priority != lastPriority || q.ops[i].bin != lastBin {
			q.runs++
			lastPriority = q.ops[i].priority
			lastBin = q.ops[i].bin
		}
		q.ops[i].op(b)
	}
	q.ops = q.ops[:0]
}

// Runs returns the number of distinct (priority, bin) groups executed by
// the last Flush. Fewer runs means fewer state transitions during draw
func (q *DrawQueue) Runs() int {
	return q.runs
}
