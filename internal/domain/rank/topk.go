// Package rank provides a bounded top-K collector.
//
// Internally it keeps a min-heap of the current best K items, so ranking a
// dataset costs O(n log k) and never holds more than k items.
package rank

import (
	"container/heap"
	"sort"
)

// TopK collects the K largest items according to a strict ordering.
type TopK[T any] struct {
	k    int
	less func(a, b T) bool // a orders strictly below b
	h    *itemHeap[T]
}

// NewTopK creates a collector keeping the k largest items under less.
// k <= 0 yields a collector that keeps nothing.
func NewTopK[T any](k int, less func(a, b T) bool) *TopK[T] {
	h := &itemHeap[T]{less: less}
	heap.Init(h)
	return &TopK[T]{k: k, less: less, h: h}
}

// Insert offers an item to the collector.
func (t *TopK[T]) Insert(item T) {
	if t.k <= 0 {
		return
	}
	if t.h.Len() < t.k {
		heap.Push(t.h, item)
		return
	}
	// Full: replace the weakest kept item if the candidate beats it.
	if t.less(t.h.items[0], item) {
		t.h.items[0] = item
		heap.Fix(t.h, 0)
	}
}

// Len returns the number of items currently kept.
func (t *TopK[T]) Len() int {
	return t.h.Len()
}

// Sorted returns the kept items, strongest first.
func (t *TopK[T]) Sorted() []T {
	out := make([]T, len(t.h.items))
	copy(out, t.h.items)
	sort.Slice(out, func(i, j int) bool {
		return t.less(out[j], out[i])
	})
	return out
}

// itemHeap is a min-heap under less: items[0] is the weakest kept item.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *itemHeap[T]) Len() int           { return len(h.items) }
func (h *itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
