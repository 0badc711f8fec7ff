// Package dheap implements an addressable d-ary min-heap over the index
// domain 1..n with float64 keys.
//
// Addressable means keyed by item id: Contains, Delete and ChangeKey take
// the item itself, in O(1) position lookup plus O(log_d n) repair. That is
// the operation set ratio-greedy set cover and shortest-path-with-potential
// solvers need, and the reason this is not a thin wrapper around the
// standard library's interface-based heap (which has no decrease-key
// addressed by an external id).
//
// Complexity: Insert/DeleteMin/Delete O(d·log_d n); ChangeKey O(d·log_d n)
// (O(log_d n) when the key decreases); FindMin O(1).
package dheap

import (
	"errors"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for dheap operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("dheap: item out of range")

	// ErrDuplicate indicates an insert of an item already on the heap.
	ErrDuplicate = errors.New("dheap: item already on heap")

	// ErrNotMember indicates an operation on an item not on the heap.
	ErrNotMember = errors.New("dheap: item not on heap")
)

// defaultArity balances sift-up and sift-down costs for the small
// auxiliary heaps this repo builds.
const defaultArity = 4

// DHeap is a d-ary min-heap over items 1..n.
type DHeap struct {
	n    int
	d    int
	size int
	item []int     // heap order, positions 1..size
	pos  []int     // item → position, 0 when absent
	key  []float64 // item → key
}

// New creates an empty heap over 1..n with arity d (values < 2 fall back
// to the default). Complexity: O(n).
func New(n, d int) *DHeap {
	if d < 2 {
		d = defaultArity
	}

	return &DHeap{
		n:    n,
		d:    d,
		item: make([]int, n+1),
		pos:  make([]int, n+1),
		key:  make([]float64, n+1),
	}
}

// N returns the index bound of the heap's domain.
func (h *DHeap) N() int { return h.n }

// Size returns the number of items on the heap.
func (h *DHeap) Size() int { return h.size }

// Empty reports whether the heap has no items.
func (h *DHeap) Empty() bool { return h.size == 0 }

// Valid reports whether i lies in the index domain.
func (h *DHeap) Valid(i int) bool { return i >= 1 && i <= h.n }

// Contains reports whether i is on the heap.
func (h *DHeap) Contains(i int) bool { return h.Valid(i) && h.pos[i] != 0 }

// Key returns i's key (meaningful only while i is on the heap).
func (h *DHeap) Key(i int) float64 {
	if !h.Valid(i) {
		return 0
	}

	return h.key[i]
}

// FindMin returns the minimum-key item without removing it, or 0.
func (h *DHeap) FindMin() int {
	if h.size == 0 {
		return 0
	}

	return h.item[1]
}

// place writes item i at position p.
func (h *DHeap) place(i, p int) {
	h.item[p] = i
	h.pos[i] = p
}

// siftup moves the item at position p toward the root.
func (h *DHeap) siftup(p int) {
	i := h.item[p]
	for p > 1 {
		parent := (p + h.d - 2) / h.d
		if h.key[h.item[parent]] <= h.key[i] {
			break
		}
		h.place(h.item[parent], p)
		p = parent
	}
	h.place(i, p)
}

// siftdown moves the item at position p toward the leaves.
func (h *DHeap) siftdown(p int) {
	i := h.item[p]
	for {
		first := (p-1)*h.d + 2
		if first > h.size {
			break
		}
		best := first
		last := first + h.d - 1
		if last > h.size {
			last = h.size
		}
		for c := first + 1; c <= last; c++ {
			if h.key[h.item[c]] < h.key[h.item[best]] {
				best = c
			}
		}
		if h.key[i] <= h.key[h.item[best]] {
			break
		}
		h.place(h.item[best], p)
		p = best
	}
	h.place(i, p)
}

// Insert puts i on the heap with key k. Complexity: O(log_d n).
func (h *DHeap) Insert(i int, k float64) error {
	if !h.Valid(i) {
		return ErrItemRange
	}
	if h.pos[i] != 0 {
		return ErrDuplicate
	}
	h.size++
	h.key[i] = k
	h.place(i, h.size)
	h.siftup(h.size)

	return nil
}

// DeleteMin removes and returns the minimum-key item, or 0 when empty.
// Complexity: O(d·log_d n).
func (h *DHeap) DeleteMin() int {
	if h.size == 0 {
		return 0
	}
	top := h.item[1]
	h.pos[top] = 0
	last := h.item[h.size]
	h.size--
	if h.size > 0 && last != top {
		h.place(last, 1)
		h.siftdown(1)
	}

	return top
}

// Delete removes i from the heap. Complexity: O(d·log_d n).
func (h *DHeap) Delete(i int) error {
	if !h.Valid(i) {
		return ErrItemRange
	}
	p := h.pos[i]
	if p == 0 {
		return ErrNotMember
	}
	h.pos[i] = 0
	last := h.item[h.size]
	h.size--
	if last != i {
		h.place(last, p)
		h.siftup(p)
		h.siftdown(h.pos[last])
	}

	return nil
}

// ChangeKey updates i's key and repairs the heap. Complexity:
// O(log_d n) on decrease, O(d·log_d n) on increase.
func (h *DHeap) ChangeKey(i int, k float64) error {
	if !h.Valid(i) {
		return ErrItemRange
	}
	p := h.pos[i]
	if p == 0 {
		return ErrNotMember
	}
	old := h.key[i]
	h.key[i] = k
	switch {
	case k < old:
		h.siftup(p)
	case k > old:
		h.siftdown(p)
	}

	return nil
}

// Clear removes every item. Complexity: O(size).
func (h *DHeap) Clear() {
	for p := 1; p <= h.size; p++ {
		h.pos[h.item[p]] = 0
	}
	h.size = 0
}

// Expand grows the index domain to at least n. Complexity: O(n).
func (h *DHeap) Expand(n int) {
	if n <= h.n {
		return
	}
	n = adt.Grow(h.n, n)
	item := make([]int, n+1)
	pos := make([]int, n+1)
	key := make([]float64, n+1)
	copy(item, h.item)
	copy(pos, h.pos)
	copy(key, h.key)
	h.item, h.pos, h.key, h.n = item, pos, key, n
}
