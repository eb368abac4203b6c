// Implements the PriorityQueue that orders the simulation's pending events.
// Kept fully sorted so that removal is always the front element.

package sim

import (
	"fmt"
	"strings"
)

// PriorityQueue is a stable priority queue: Remove returns the smallest item
// first (smaller per the comparator = higher priority), and items that compare
// equal come out in the order they were added. The event loop depends on the
// FIFO tie-break for reproducible runs.
//
// Items are held in a fully sorted slice. Add is O(n), Remove is O(1) off the
// front. Fine at simulation scale, where the queue holds pending events only.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewPriorityQueue creates an empty queue ordered by less.
// less must be a strict weak ordering; items for which neither
// less(a, b) nor less(b, a) holds are treated as equal.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("NewPriorityQueue: less must not be nil")
	}
	return &PriorityQueue[T]{less: less}
}

// Add inserts item, keeping the queue sorted. The scan stops at the first
// element strictly greater than item, so an equal element already present
// stays ahead of the newcomer.
func (pq *PriorityQueue[T]) Add(item T) {
	i := 0
	for i < len(pq.items) && !pq.less(item, pq.items[i]) {
		i++
	}
	pq.items = append(pq.items, item)
	copy(pq.items[i+1:], pq.items[i:])
	pq.items[i] = item
}

// Remove removes and returns the highest-priority (smallest) item.
//
// Precondition: the queue is not empty. Removing from an empty queue is a
// caller bug and panics.
func (pq *PriorityQueue[T]) Remove() T {
	if len(pq.items) == 0 {
		panic("PriorityQueue.Remove: queue is empty")
	}
	item := pq.items[0]
	pq.items = pq.items[1:]
	return item
}

// IsEmpty reports whether the queue holds zero items.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.items) == 0
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return len(pq.items)
}

func (pq *PriorityQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range pq.items {
		sb.WriteString(fmt.Sprint(item))
		if i < len(pq.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
