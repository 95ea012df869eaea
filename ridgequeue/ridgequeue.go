// Package ridgequeue implements the max-priority queue used by streamtree's
// lake-resolution pass: elements are ordered by the distance of the single
// edge that enqueued them, not by cumulative path distance from an outlet —
// an intentional, documented departure from a conventional
// shortest-path-to-outlet "priority flood" ordering (see streamtree's doc
// comment for why).
//
// The queue never decrease-keys: duplicate entries for the same index are
// expected, and it is the caller's job to ignore stale ones (typically via
// a visited set) once popped. This mirrors the dijkstra package's nodePQ
// "lazy decrease-key" min-heap, inverted here into a max-heap keyed on
// ridge-crossing distance.
package ridgequeue

import "container/heap"

// Item is one element of the queue: the site index and the distance of the
// edge that produced this entry.
type Item struct {
	Index int
	Dist  float64
}

// Queue is a max-priority queue of Item ordered by Dist descending. The
// zero value is not ready for use; construct with New.
type Queue struct {
	h itemHeap
}

// New returns an empty Queue with capacity hinted by cap.
func New(cap int) *Queue {
	q := &Queue{h: make(itemHeap, 0, cap)}
	heap.Init(&q.h)
	return q
}

// Push inserts item into the queue. O(log n).
func (q *Queue) Push(item Item) {
	heap.Push(&q.h, item)
}

// Len returns the number of elements currently queued.
func (q *Queue) Len() int { return q.h.Len() }

// Pop removes and returns the element with the greatest Dist. Pop on an
// empty queue panics, matching container/heap's own contract; callers must
// check Len() first.
func (q *Queue) Pop() Item {
	return heap.Pop(&q.h).(Item)
}

// itemHeap is a container/heap.Interface over Item, max-ordered by Dist.
// Ties are broken by whatever order container/heap's swap sequence
// produces for the given insertion sequence — deterministic for a fixed
// sequence of Push calls, since Go's heap implementation has no
// randomness, satisfying the "arbitrary but deterministic" tie-break the
// queue's contract allows.
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool { return h[i].Dist > h[j].Dist }

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
