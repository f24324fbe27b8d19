package render

import (
	"testing"
)

func TestQueueOrdersByPriority(t *testing.T) {
	q := NewDrawQueue()
	b := NewBuffer(4, 1)

	// Submit out of order; higher priority must draw last (on top)
	q.Submit(PriorityOverlay, 0, func(b *Buffer) { b.SetWithBg(0, 0, 'O', RGBWhite, RGBBlack) })
	q.Submit(PriorityBackground, 0, func(b *Buffer) { b.SetWithBg(0, 0, 'B', RGBWhite, RGBBlack) })
	q.Flush(b)

	if got := b.CellAt(0, 0).Rune; got != 'O' {
		t.Errorf("Expected overlay on top, got %q", got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected queue emptied after flush")
	}
}

func TestQueueGroupsBins(t *testing.T) {
	q := NewDrawQueue()
	b := NewBuffer(8, 1)

	var order []int
	record := func(bin int) DrawOp {
		return func(*Buffer) { order = append(order, bin) }
	}

	// Interleaved submissions across two bins
	q.Submit(PriorityPlatformIcon, 1001, record(1001))
	q.Submit(PriorityPlatformIcon, 1000, record(1000))
	q.Submit(PriorityPlatformIcon, 1001, record(1001))
	q.Submit(PriorityPlatformIcon, 1000, record(1000))
	q.Flush(b)

	want := []int{1000, 1000, 1001, 1001}
	for i, bin := range want {
		if order[i] != bin {
			t.Fatalf("Expected bin order %v, got %v", want, order)
		}
	}
	if q.Runs() != 2 {
		t.Errorf("Expected 2 runs for 2 bins, got %d", q.Runs())
	}
}

func TestQueueStableWithinBin(t *testing.T) {
	q := NewDrawQueue()
	b := NewBuffer(1, 1)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.Submit(PriorityPlatformIcon, 1000, func(*Buffer) { order = append(order, i) })
	}
	q.Flush(b)

	for i := 0; i < 5; i++ {
		if order[i] != i {
			t.Fatalf("Expected submission order preserved within bin, got %v", order)
		}
	}
}
