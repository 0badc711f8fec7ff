// Package listpair implements ListPair: a partition of the index domain
// 1..n into exactly two ordered lists, numbered 1 and 2, with an atomic
// O(1) Swap moving one item across.
//
// List membership is held in an explicit per-item tag rather than folded
// into the sign of a link field; the links themselves stay plain indices.
//
// Every item starts on list 1. The canonical text form is
// "[items of list 1 : items of list 2]".
//
// Complexity: all operations O(1) except the string round-trip and Equals,
// which are O(n).
package listpair

import (
	"errors"
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for listpair operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("listpair: item out of range")

	// ErrListNumber indicates a list selector other than 1 or 2.
	ErrListNumber = errors.New("listpair: list number must be 1 or 2")

	// ErrSwapTarget indicates Swap's anchor item is not on the other list.
	ErrSwapTarget = errors.New("listpair: anchor not on the destination list")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("listpair: malformed input")
)

// ListPair partitions 1..n into two ordered lists.
type ListPair struct {
	n      int
	next   []int
	prev   []int
	onList []uint8 // 1 or 2
	first  [3]int  // indexed by list number
	last   [3]int
	length [3]int
}

// New creates a ListPair with every item on list 1, in ascending order.
// Complexity: O(n).
func New(n int) *ListPair {
	lp := &ListPair{
		n:      n,
		next:   make([]int, n+1),
		prev:   make([]int, n+1),
		onList: make([]uint8, n+1),
	}
	for i := 1; i <= n; i++ {
		lp.next[i] = i + 1
		lp.prev[i] = i - 1
		lp.onList[i] = 1
	}
	if n > 0 {
		lp.next[n] = 0
		lp.first[1], lp.last[1], lp.length[1] = 1, n, n
	}

	return lp
}

// N returns the index bound of the partition's domain.
func (lp *ListPair) N() int { return lp.n }

// Valid reports whether i lies in the index domain.
func (lp *ListPair) Valid(i int) bool { return i >= 1 && i <= lp.n }

// In reports whether i is on list k (k must be 1 or 2).
func (lp *ListPair) In(i, k int) bool {
	return lp.Valid(i) && (k == 1 || k == 2) && int(lp.onList[i]) == k
}

// First returns the first item of list k, or 0 when empty.
func (lp *ListPair) First(k int) int {
	if k != 1 && k != 2 {
		return 0
	}

	return lp.first[k]
}

// Last returns the last item of list k, or 0 when empty.
func (lp *ListPair) Last(k int) int {
	if k != 1 && k != 2 {
		return 0
	}

	return lp.last[k]
}

// Length returns the number of items on list k.
func (lp *ListPair) Length(k int) int {
	if k != 1 && k != 2 {
		return 0
	}

	return lp.length[k]
}

// Next returns the item after i on its list, or 0.
func (lp *ListPair) Next(i int) int {
	if !lp.Valid(i) {
		return 0
	}

	return lp.next[i]
}

// Prev returns the item before i on its list, or 0.
func (lp *ListPair) Prev(i int) int {
	if !lp.Valid(i) {
		return 0
	}

	return lp.prev[i]
}

// Swap moves i from its current list to the other one, inserting it
// immediately after j (or at the destination's head when j == 0).
// Precondition: j == 0 or j is on the other list. Complexity: O(1).
func (lp *ListPair) Swap(i, j int) error {
	if !lp.Valid(i) {
		return ErrItemRange
	}
	from := int(lp.onList[i])
	to := 3 - from
	if j != 0 && !lp.In(j, to) {
		return ErrSwapTarget
	}

	// Unlink i from its current list.
	if lp.prev[i] != 0 {
		lp.next[lp.prev[i]] = lp.next[i]
	} else {
		lp.first[from] = lp.next[i]
	}
	if lp.next[i] != 0 {
		lp.prev[lp.next[i]] = lp.prev[i]
	} else {
		lp.last[from] = lp.prev[i]
	}
	lp.length[from]--

	// Link i after j on the destination list.
	if j == 0 {
		lp.next[i] = lp.first[to]
		lp.prev[i] = 0
		if lp.first[to] != 0 {
			lp.prev[lp.first[to]] = i
		}
		lp.first[to] = i
		if lp.last[to] == 0 {
			lp.last[to] = i
		}
	} else {
		lp.next[i] = lp.next[j]
		lp.prev[i] = j
		if lp.next[j] != 0 {
			lp.prev[lp.next[j]] = i
		} else {
			lp.last[to] = i
		}
		lp.next[j] = i
	}
	lp.onList[i] = uint8(to)
	lp.length[to]++

	return nil
}

// Expand grows the index domain to at least n; new items land at the end of
// list 1. Complexity: O(n).
func (lp *ListPair) Expand(n int) {
	if n <= lp.n {
		return
	}
	n = adt.Grow(lp.n, n)
	next := make([]int, n+1)
	prev := make([]int, n+1)
	onList := make([]uint8, n+1)
	copy(next, lp.next)
	copy(prev, lp.prev)
	copy(onList, lp.onList)
	lp.next, lp.prev, lp.onList = next, prev, onList
	for i := lp.n + 1; i <= n; i++ {
		lp.onList[i] = 1
		lp.prev[i] = lp.last[1]
		if lp.last[1] != 0 {
			lp.next[lp.last[1]] = i
		} else {
			lp.first[1] = i
		}
		lp.last[1] = i
		lp.length[1]++
	}
	lp.n = n
}

// Equals reports order-sensitive equality of both lists.
func (lp *ListPair) Equals(o *ListPair) bool {
	for k := 1; k <= 2; k++ {
		if lp.length[k] != o.length[k] {
			return false
		}
		i, j := lp.first[k], o.first[k]
		for i != 0 {
			if i != j {
				return false
			}
			i, j = lp.next[i], o.next[j]
		}
	}

	return true
}

// String renders the canonical form "[a b : c d]".
func (lp *ListPair) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := lp.first[1]; i != 0; i = lp.next[i] {
		if i != lp.first[1] {
			b.WriteByte(' ')
		}
		b.WriteString(adt.ItemString(i, lp.n))
	}
	b.WriteString(" : ")
	for i := lp.first[2]; i != 0; i = lp.next[i] {
		if i != lp.first[2] {
			b.WriteByte(' ')
		}
		b.WriteString(adt.ItemString(i, lp.n))
	}
	b.WriteByte(']')

	return b.String()
}

// FromString replaces the partition with the one encoded in s. Every item
// of 1..n must appear exactly once across the two lists. On failure the
// receiver is left unchanged and ErrParse is returned.
func (lp *ListPair) FromString(s string) error {
	sc := adt.NewScanner(s)
	if !sc.Verify('[') {
		return ErrParse
	}
	var lists [2][]int
	maxItem := 0
	seen := make(map[int]bool)
	for k := 0; k < 2; k++ {
		for {
			if k == 0 && sc.Verify(':') {
				break
			}
			if k == 1 && sc.Verify(']') {
				break
			}
			i, ok := sc.NextItem()
			if !ok || i == 0 || seen[i] {
				return ErrParse
			}
			seen[i] = true
			if i > maxItem {
				maxItem = i
			}
			lists[k] = append(lists[k], i)
		}
	}
	if !sc.Done() {
		return ErrParse
	}
	n := lp.n
	if maxItem > n {
		n = maxItem
	}
	if len(seen) != n {
		return ErrParse // the two lists must partition all of 1..n
	}

	fresh := New(n) // everything on list 1, ascending
	// Send everything to list 2, then rebuild both lists in parsed order.
	for i := 1; i <= n; i++ {
		_ = fresh.Swap(i, fresh.Last(2))
	}
	anchor := 0
	for _, i := range lists[0] {
		if err := fresh.Swap(i, anchor); err != nil {
			return ErrParse
		}
		anchor = i
	}
	// Items meant for list 2 are rotated through list 1 and back so their
	// final order matches the parsed order.
	for _, i := range lists[1] {
		if err := fresh.Swap(i, fresh.Last(1)); err != nil {
			return ErrParse
		}
		if err := fresh.Swap(i, fresh.Last(2)); err != nil {
			return ErrParse
		}
	}
	*lp = *fresh

	return nil
}
