package listset

import (
	"errors"
	"sort"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for listset operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("listset: item out of range")

	// ErrFirstRequired indicates an operation was handed an item that is
	// not the first item of its list.
	ErrFirstRequired = errors.New("listset: item is not a list's first")

	// ErrSameList indicates Join was asked to join a list with itself.
	ErrSameList = errors.New("listset: cannot join a list with itself")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("listset: malformed input")
)

// ListSet partitions 1..n into disjoint ordered lists.
//
// Representation: next[i] is the following item (0 for the last item);
// prev[i] is the preceding item, except that the first item's prev points to
// the list's last, closing the cycle in the prev direction. A singleton has
// next == 0 and prev == itself.
type ListSet struct {
	n    int
	next []int
	prev []int
}

// New creates a ListSet of n singleton lists. Complexity: O(n).
func New(n int) *ListSet {
	ls := &ListSet{n: n, next: make([]int, n+1), prev: make([]int, n+1)}
	for i := 1; i <= n; i++ {
		ls.prev[i] = i
	}

	return ls
}

// N returns the index bound of the partition's domain.
func (ls *ListSet) N() int { return ls.n }

// Valid reports whether i lies in the index domain.
func (ls *ListSet) Valid(i int) bool { return i >= 1 && i <= ls.n }

// IsFirst reports whether i is the first item of its list.
func (ls *ListSet) IsFirst(i int) bool {
	return ls.Valid(i) && ls.next[ls.prev[i]] == 0
}

// IsSingleton reports whether i is alone on its list.
func (ls *ListSet) IsSingleton(i int) bool {
	return ls.Valid(i) && ls.next[i] == 0 && ls.prev[i] == i
}

// Next returns the item after i, or 0 when i is its list's last.
func (ls *ListSet) Next(i int) int {
	if !ls.Valid(i) {
		return 0
	}

	return ls.next[i]
}

// Prev returns the item before i, or 0 when i is its list's first.
func (ls *ListSet) Prev(i int) int {
	if !ls.Valid(i) || ls.IsFirst(i) {
		return 0
	}

	return ls.prev[i]
}

// Last returns the last item of the list whose first item is f.
func (ls *ListSet) Last(f int) int {
	if !ls.IsFirst(f) {
		return 0
	}

	return ls.prev[f]
}

// FindList walks prev links from i to its list's first item.
// Complexity: O(list length).
func (ls *ListSet) FindList(i int) int {
	if !ls.Valid(i) {
		return 0
	}
	for !ls.IsFirst(i) {
		i = ls.prev[i]
	}

	return i
}

// Join appends list l2 to the end of list l1 and returns the combined
// list's first item. Either argument may be 0 (the empty list).
// Complexity: O(1).
func (ls *ListSet) Join(l1, l2 int) (int, error) {
	if l1 == 0 {
		if l2 != 0 && !ls.IsFirst(l2) {
			return 0, ErrFirstRequired
		}

		return l2, nil
	}
	if l2 == 0 {
		if !ls.IsFirst(l1) {
			return 0, ErrFirstRequired
		}

		return l1, nil
	}
	if !ls.IsFirst(l1) || !ls.IsFirst(l2) {
		return 0, ErrFirstRequired
	}
	if l1 == l2 {
		return 0, ErrSameList
	}

	last1, last2 := ls.prev[l1], ls.prev[l2]
	ls.next[last1] = l2
	ls.prev[l2] = last1
	ls.prev[l1] = last2

	return l1, nil
}

// Delete removes i from the list whose first item is f and makes i a
// singleton. Returns the possibly-changed first item of the remaining list
// (0 when i was the list's only member). Complexity: O(1).
func (ls *ListSet) Delete(i, f int) (int, error) {
	if !ls.Valid(i) {
		return 0, ErrItemRange
	}
	if !ls.IsFirst(f) {
		return 0, ErrFirstRequired
	}

	var rest int
	switch {
	case ls.IsSingleton(i):
		return 0, nil
	case i == f:
		rest = ls.next[f]
		ls.prev[rest] = ls.prev[f] // inherit the last pointer
	case ls.next[i] == 0: // i is the last item
		rest = f
		ls.next[ls.prev[i]] = 0
		ls.prev[f] = ls.prev[i]
	default:
		rest = f
		ls.next[ls.prev[i]] = ls.next[i]
		ls.prev[ls.next[i]] = ls.prev[i]
	}
	ls.next[i] = 0
	ls.prev[i] = i

	return rest, nil
}

// Split cuts the list with first item f immediately before i, yielding the
// two lists (f .. pred(i)) and (i .. last). Returns their first items.
// Precondition: i is on f's list and i != f. Complexity: O(1).
func (ls *ListSet) Split(f, i int) (int, int, error) {
	if !ls.Valid(i) {
		return 0, 0, ErrItemRange
	}
	if !ls.IsFirst(f) {
		return 0, 0, ErrFirstRequired
	}
	if i == f || ls.IsFirst(i) {
		return 0, 0, ErrFirstRequired
	}

	last := ls.prev[f]
	ls.next[ls.prev[i]] = 0
	ls.prev[f] = ls.prev[i]
	ls.prev[i] = last

	return f, i, nil
}

// Rotate makes i the first item of the list whose first item is f, moving
// the prefix f..pred(i) to the back. Returns the new first item.
// Complexity: O(1).
func (ls *ListSet) Rotate(f, i int) (int, error) {
	if i == f {
		if !ls.IsFirst(f) {
			return 0, ErrFirstRequired
		}

		return f, nil
	}
	l1, l2, err := ls.Split(f, i)
	if err != nil {
		return 0, err
	}

	return ls.Join(l2, l1)
}

// SortList reorders the list whose first item is f ascending by less and
// returns the new first item. Complexity: O(k log k) for a k-item list.
func (ls *ListSet) SortList(f int, less func(a, b int) bool) (int, error) {
	if !ls.IsFirst(f) {
		return 0, ErrFirstRequired
	}
	items := make([]int, 0, 8)
	for i := f; ; i = ls.next[i] {
		items = append(items, i)
		if ls.next[i] == 0 {
			break
		}
	}
	sort.SliceStable(items, func(a, b int) bool { return less(items[a], items[b]) })

	return ls.relink(items), nil
}

// SortAll sorts every list of the partition independently.
// Complexity: O(n log n) total.
func (ls *ListSet) SortAll(less func(a, b int) bool) {
	for i := 1; i <= ls.n; i++ {
		if ls.IsFirst(i) && ls.next[i] != 0 {
			_, _ = ls.SortList(i, less)
		}
	}
}

// relink rebuilds one list from an explicit item order.
func (ls *ListSet) relink(items []int) int {
	k := len(items)
	for j, i := range items {
		if j+1 < k {
			ls.next[i] = items[j+1]
		} else {
			ls.next[i] = 0
		}
		if j > 0 {
			ls.prev[i] = items[j-1]
		}
	}
	ls.prev[items[0]] = items[k-1]

	return items[0]
}

// Expand grows the index domain to at least n; new items are singletons.
// Complexity: O(n).
func (ls *ListSet) Expand(n int) {
	if n <= ls.n {
		return
	}
	n = adt.Grow(ls.n, n)
	next := make([]int, n+1)
	prev := make([]int, n+1)
	copy(next, ls.next)
	copy(prev, ls.prev)
	for i := ls.n + 1; i <= n; i++ {
		prev[i] = i
	}
	ls.next, ls.prev, ls.n = next, prev, n
}

// Equals reports whether both partitions contain the same lists in the same
// order. Items beyond the smaller domain must be singletons.
func (ls *ListSet) Equals(o *ListSet) bool {
	small, big := ls, o
	if small.n > big.n {
		small, big = big, small
	}
	for i := 1; i <= small.n; i++ {
		if ls.next[i] != o.next[i] || ls.IsFirst(i) != o.IsFirst(i) {
			return false
		}
	}
	for i := small.n + 1; i <= big.n; i++ {
		if !big.IsSingleton(i) {
			return false
		}
	}

	return true
}
