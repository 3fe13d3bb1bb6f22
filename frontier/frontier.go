// Package frontier implements the priority-ordered open set used by the
// grid search engine.
//
// Entries are (priority, sequence, cell) triples ordered by ascending
// priority and, on equal priority, by ascending sequence, so the earliest
// pushed entry wins ties. Exploration order is therefore a pure function of
// the push order, never of heap internals.
//
// The frontier uses lazy deletion: pushing a cell that already has entries
// adds another entry instead of performing decrease-key. Superseded entries
// stay in the heap until popped, and the caller discards them by checking
// its own "finalized" marker.
//
// Complexity:
//
//   - Push, PopMin: O(log N), N = stored entries (including stale ones).
//   - Contains, Len: O(1).
//   - Memory:       O(N).
package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmptyFrontier is returned by PopMin when no entries remain.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Frontier is a min-priority queue of cell indices with deterministic
// tie-breaking and per-cell entry counts. The zero value is not usable;
// call New.
type Frontier struct {
	items   entryHeap
	seq     uint64
	members map[int]int // cell → number of stored entries
}

// New returns an empty frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{
		items:   make(entryHeap, 0, capacity),
		members: make(map[int]int, capacity),
	}
}

// Push inserts cell with the given priority and the next sequence number.
// Existing entries for cell are kept.
func (f *Frontier) Push(priority int64, cell int) {
	f.seq++
	heap.Push(&f.items, entry{priority: priority, seq: f.seq, cell: cell})
	f.members[cell]++
}

// PopMin removes and returns the cell of the lowest (priority, sequence)
// entry. It returns ErrEmptyFrontier if the frontier is empty.
func (f *Frontier) PopMin() (int, error) {
	if len(f.items) == 0 {
		return -1, ErrEmptyFrontier
	}
	e := heap.Pop(&f.items).(entry)
	if n := f.members[e.cell]; n <= 1 {
		delete(f.members, e.cell)
	} else {
		f.members[e.cell] = n - 1
	}

	return e.cell, nil
}

// Contains reports whether at least one entry for cell is stored,
// stale or not.
func (f *Frontier) Contains(cell int) bool {
	return f.members[cell] > 0
}

// Len returns the number of stored entries, stale ones included.
func (f *Frontier) Len() int { return len(f.items) }

// entry is one stored (priority, sequence, cell) triple.
type entry struct {
	priority int64
	seq      uint64
	cell     int
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
