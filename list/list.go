package list

import (
	"errors"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for list operations. Contract checks are always on;
// mutators report violations through these and leave the List unchanged.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("list: item out of range")

	// ErrDuplicate indicates an insert of an item already on the list.
	ErrDuplicate = errors.New("list: item already on list")

	// ErrNotMember indicates a required member item is not on the list.
	ErrNotMember = errors.New("list: item not on list")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("list: malformed input")
)

// notOnList is the next-slot sentinel distinguishing absence from "last".
const notOnList = -1

// List is an ordered sequence of distinct items in 1..n.
//
// The zero value is not usable; construct with New.
type List struct {
	n      int
	first  int
	last   int
	length int

	// next[i] = following item, 0 if i is last, notOnList if i is absent.
	next []int
	// prev is the exact inverse of next when materialized; nil otherwise.
	prev []int
	// value holds optional per-item values; nil until materialized.
	value []float64
}

// Option configures a List at construction time.
type Option func(*List)

// WithPrev materializes reverse links up front, making Prev, Delete, PopLast
// and negative At indices O(1) from the start.
func WithPrev() Option {
	return func(l *List) { l.prev = make([]int, l.n+1) }
}

// WithValues materializes per-item value storage up front.
func WithValues() Option {
	return func(l *List) { l.value = make([]float64, l.n+1) }
}

// New creates an empty List over 1..n.
// Complexity: O(n).
func New(n int, opts ...Option) *List {
	l := &List{n: n, next: make([]int, n+1)}
	for i := 1; i <= n; i++ {
		l.next[i] = notOnList
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// N returns the index bound of the list's domain.
func (l *List) N() int { return l.n }

// First returns the first item, or 0 when empty.
func (l *List) First() int { return l.first }

// Last returns the last item, or 0 when empty.
func (l *List) Last() int { return l.last }

// Length returns the number of items on the list.
func (l *List) Length() int { return l.length }

// Empty reports whether the list has no items.
func (l *List) Empty() bool { return l.length == 0 }

// Valid reports whether i lies in the index domain.
func (l *List) Valid(i int) bool { return i >= 1 && i <= l.n }

// Contains reports membership of i in O(1).
func (l *List) Contains(i int) bool {
	return l.Valid(i) && l.next[i] != notOnList
}

// Next returns the item following i, or 0 when i is last or absent.
func (l *List) Next(i int) int {
	if !l.Contains(i) {
		return 0
	}

	return l.next[i]
}

// Prev returns the item preceding i, or 0 when i is first or absent.
// The first call materializes reverse links in O(n) if needed.
func (l *List) Prev(i int) int {
	if !l.Contains(i) {
		return 0
	}
	l.materializePrev()

	return l.prev[i]
}

// Value returns the value attached to i (0 when values are absent).
func (l *List) Value(i int) float64 {
	if l.value == nil || !l.Valid(i) {
		return 0
	}

	return l.value[i]
}

// SetValue attaches v to item i, materializing value storage on first use.
func (l *List) SetValue(i int, v float64) error {
	if !l.Valid(i) {
		return ErrItemRange
	}
	if l.value == nil {
		l.value = make([]float64, l.n+1)
	}
	l.value[i] = v

	return nil
}

// materializePrev rebuilds prev from next in one pass.
func (l *List) materializePrev() {
	if l.prev != nil {
		return
	}
	l.prev = make([]int, l.n+1)
	p := 0
	for i := l.first; i != 0; i = l.next[i] {
		l.prev[i] = p
		p = i
	}
}

// Expand grows the index domain to at least n, preserving all state.
// Complexity: O(n).
func (l *List) Expand(n int) {
	if n <= l.n {
		return
	}
	n = adt.Grow(l.n, n)
	next := make([]int, n+1)
	copy(next, l.next)
	for i := l.n + 1; i <= n; i++ {
		next[i] = notOnList
	}
	l.next = next
	if l.prev != nil {
		prev := make([]int, n+1)
		copy(prev, l.prev)
		l.prev = prev
	}
	if l.value != nil {
		value := make([]float64, n+1)
		copy(value, l.value)
		l.value = value
	}
	l.n = n
}

// Insert places i immediately after j, or at the head when j == 0.
// The domain expands on demand to admit i.
// Complexity: O(1) (amortized when expanding).
func (l *List) Insert(i, j int) error {
	if i < 1 {
		return ErrItemRange
	}
	if i > l.n {
		l.Expand(i)
	}
	if l.Contains(i) {
		return ErrDuplicate
	}
	if j != 0 && !l.Contains(j) {
		return ErrNotMember
	}

	if j == 0 {
		l.next[i] = l.first
		if l.prev != nil {
			l.prev[i] = 0
			if l.first != 0 {
				l.prev[l.first] = i
			}
		}
		l.first = i
		if l.last == 0 {
			l.last = i
		}
	} else {
		l.next[i] = l.next[j]
		l.next[j] = i
		if l.prev != nil {
			l.prev[i] = j
			if l.next[i] != 0 {
				l.prev[l.next[i]] = i
			}
		}
		if l.last == j {
			l.last = i
		}
	}
	l.length++

	return nil
}

// DeleteNext removes the item following j (the first item when j == 0).
// Returns the removed item, 0 when there was nothing to remove.
// Complexity: O(1).
func (l *List) DeleteNext(j int) int {
	var i int
	if j == 0 {
		i = l.first
	} else {
		if !l.Contains(j) {
			return 0
		}
		i = l.next[j]
	}
	if i == 0 {
		return 0
	}

	if j == 0 {
		l.first = l.next[i]
	} else {
		l.next[j] = l.next[i]
	}
	if l.prev != nil {
		if l.next[i] != 0 {
			l.prev[l.next[i]] = j
		}
	}
	if l.last == i {
		l.last = j
	}
	l.next[i] = notOnList
	l.length--

	return i
}

// Delete removes i from the list. Materializes reverse links if absent.
// Complexity: O(1) given reverse links.
func (l *List) Delete(i int) error {
	if !l.Contains(i) {
		return ErrNotMember
	}
	if i == l.first {
		l.DeleteNext(0)

		return nil
	}
	l.materializePrev()
	l.DeleteNext(l.prev[i])

	return nil
}

// Push prepends i. Complexity: O(1).
func (l *List) Push(i int) error { return l.Insert(i, 0) }

// Pop removes and returns the first item (0 when empty). Complexity: O(1).
func (l *List) Pop() int { return l.DeleteNext(0) }

// Enq appends i. Complexity: O(1).
func (l *List) Enq(i int) error { return l.Insert(i, l.last) }

// Deq removes and returns the first item (0 when empty). Complexity: O(1).
func (l *List) Deq() int { return l.DeleteNext(0) }

// PopLast removes and returns the last item (0 when empty).
// Materializes reverse links if absent. Complexity: O(1) given them.
func (l *List) PopLast() int {
	i := l.last
	if i == 0 {
		return 0
	}
	l.materializePrev()
	l.DeleteNext(l.prev[i])

	return i
}

// At returns the k-th item: k > 0 counts from the head (At(1) == First),
// k < 0 from the tail (At(-1) == Last). Returns 0 when |k| exceeds the
// length. Complexity: O(|k|).
func (l *List) At(k int) int {
	switch {
	case k > 0:
		i := l.first
		for ; i != 0 && k > 1; k-- {
			i = l.next[i]
		}

		return i
	case k < 0:
		l.materializePrev()
		i := l.last
		for ; i != 0 && k < -1; k++ {
			i = l.prev[i]
		}

		return i
	default:
		return 0
	}
}

// Clear removes every item. Complexity: O(length).
func (l *List) Clear() {
	for l.first != 0 {
		l.DeleteNext(0)
	}
}

// Equals reports order-sensitive equality of the two sequences.
// Index bounds may differ. Complexity: O(length).
func (l *List) Equals(o *List) bool {
	if l.length != o.length {
		return false
	}
	i, j := l.first, o.first
	for i != 0 {
		if i != j {
			return false
		}
		i, j = l.next[i], o.next[j]
	}

	return j == 0
}

// SetEquals reports membership equality, ignoring order.
// Complexity: O(length).
func (l *List) SetEquals(o *List) bool {
	if l.length != o.length {
		return false
	}
	for i := l.first; i != 0; i = l.next[i] {
		if !o.Contains(i) {
			return false
		}
	}

	return true
}
