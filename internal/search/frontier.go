package search

import (
	"container/heap"

	"github.com/hailam/sokosolve/internal/state"
)

// frontier is a min-priority queue of States ordered by Heuristic, grounded
// on the standard container/heap pattern the teacher uses for its move
// ordering structures. Ties are broken arbitrarily; the design does not
// depend on tie order (spec §3).
type frontier struct {
	items frontierHeap
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)
	return f
}

func (f *frontier) push(s *state.State) {
	heap.Push(&f.items, s)
}

// pop removes and returns the state with the minimum heuristic, or nil if
// the frontier is empty.
func (f *frontier) pop() *state.State {
	if f.items.Len() == 0 {
		return nil
	}
	return heap.Pop(&f.items).(*state.State)
}

func (f *frontier) len() int {
	return f.items.Len()
}

type frontierHeap []*state.State

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].Heuristic < h[j].Heuristic }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(*state.State)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
