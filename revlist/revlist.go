// Package revlist implements ReverseLists: a partition of the index domain
// 1..n into lists that can be reversed whole in O(1).
//
// Each item carries two symmetric neighbor slots with no fixed next/prev
// role. The first item of a list is the one whose spare slot holds the
// negated index of the list's last item; the last item's spare slot holds 0.
// A singleton holds {0, -self}. Traversal therefore needs the previous step:
// the next item is whichever slot differs from where you came from.
//
// Reverse simply swaps which endpoint carries the negated marker and which
// carries the 0, so direction flips without touching interior items.
//
// Complexity: Reverse, Pop, Join O(1); traversal O(length); the string
// round-trip O(n).
package revlist

import (
	"errors"
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for revlist operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("revlist: item out of range")

	// ErrFirstRequired indicates an operation was handed an item that is
	// not the first item of its list.
	ErrFirstRequired = errors.New("revlist: item is not a list's first")

	// ErrSameList indicates Join was asked to join a list with itself.
	ErrSameList = errors.New("revlist: cannot join a list with itself")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("revlist: malformed input")
)

// ReverseLists partitions 1..n into reversible lists.
type ReverseLists struct {
	n     int
	nabor [2][]int // the two symmetric neighbor slots
}

// New creates a ReverseLists of n singleton lists. Complexity: O(n).
func New(n int) *ReverseLists {
	rl := &ReverseLists{n: n}
	rl.nabor[0] = make([]int, n+1)
	rl.nabor[1] = make([]int, n+1)
	for i := 1; i <= n; i++ {
		rl.nabor[1][i] = -i
	}

	return rl
}

// N returns the index bound of the partition's domain.
func (rl *ReverseLists) N() int { return rl.n }

// Valid reports whether i lies in the index domain.
func (rl *ReverseLists) Valid(i int) bool { return i >= 1 && i <= rl.n }

// IsFirst reports whether i is the first item of its list: exactly the
// items holding a negated end marker.
func (rl *ReverseLists) IsFirst(i int) bool {
	return rl.Valid(i) && (rl.nabor[0][i] < 0 || rl.nabor[1][i] < 0)
}

// IsSingleton reports whether i is alone on its list.
func (rl *ReverseLists) IsSingleton(i int) bool {
	return rl.Valid(i) && rl.Last(i) == i
}

// Last returns the last item of the list whose first item is f.
func (rl *ReverseLists) Last(f int) int {
	if !rl.Valid(f) {
		return 0
	}
	if rl.nabor[0][f] < 0 {
		return -rl.nabor[0][f]
	}
	if rl.nabor[1][f] < 0 {
		return -rl.nabor[1][f]
	}

	return 0
}

// Next returns the item after cur, given the item the walk arrived from
// (0 when cur is the first item). Returns 0 past the last item.
func (rl *ReverseLists) Next(cur, from int) int {
	if !rl.Valid(cur) {
		return 0
	}
	for s := 0; s < 2; s++ {
		if v := rl.nabor[s][cur]; v > 0 && v != from {
			return v
		}
	}

	return 0
}

// replaceSlot overwrites the slot of i currently holding old with v.
func (rl *ReverseLists) replaceSlot(i, old, v int) {
	if rl.nabor[0][i] == old {
		rl.nabor[0][i] = v
	} else {
		rl.nabor[1][i] = v
	}
}

// Reverse flips the direction of the list whose first item is f and returns
// the new first item (the old last). Complexity: O(1).
func (rl *ReverseLists) Reverse(f int) (int, error) {
	if !rl.IsFirst(f) {
		return 0, ErrFirstRequired
	}
	l := rl.Last(f)
	if l == f { // singleton: direction has no meaning
		return f, nil
	}
	rl.replaceSlot(f, -l, 0)
	rl.replaceSlot(l, 0, -f)

	return l, nil
}

// Join appends the list with first item f2 to the list with first item f1
// and returns the combined list's first item. Complexity: O(1).
func (rl *ReverseLists) Join(f1, f2 int) (int, error) {
	if f1 == 0 {
		if f2 != 0 && !rl.IsFirst(f2) {
			return 0, ErrFirstRequired
		}

		return f2, nil
	}
	if f2 == 0 {
		if !rl.IsFirst(f1) {
			return 0, ErrFirstRequired
		}

		return f1, nil
	}
	if !rl.IsFirst(f1) || !rl.IsFirst(f2) {
		return 0, ErrFirstRequired
	}
	if f1 == f2 {
		return 0, ErrSameList
	}

	l1, l2 := rl.Last(f1), rl.Last(f2)
	rl.replaceSlot(f1, -l1, -l2)
	rl.replaceSlot(l1, 0, f2)
	rl.replaceSlot(f2, -l2, l1)

	return f1, nil
}

// Pop detaches the first item of the list whose first item is f, leaving it
// a singleton, and returns the new first item (0 when f was alone).
// Complexity: O(1).
func (rl *ReverseLists) Pop(f int) (int, error) {
	if !rl.IsFirst(f) {
		return 0, ErrFirstRequired
	}
	l := rl.Last(f)
	nx := rl.Next(f, 0)
	if nx == 0 { // f was a singleton already
		return 0, nil
	}
	rl.replaceSlot(nx, f, -l)
	rl.nabor[0][f] = 0
	rl.nabor[1][f] = -f

	return nx, nil
}

// Expand grows the index domain to at least n; new items are singletons.
// Complexity: O(n).
func (rl *ReverseLists) Expand(n int) {
	if n <= rl.n {
		return
	}
	n = adt.Grow(rl.n, n)
	for s := 0; s < 2; s++ {
		nabor := make([]int, n+1)
		copy(nabor, rl.nabor[s])
		rl.nabor[s] = nabor
	}
	for i := rl.n + 1; i <= n; i++ {
		rl.nabor[1][i] = -i
	}
	rl.n = n
}

// items returns the forward traversal of the list whose first item is f.
func (rl *ReverseLists) items(f int) []int {
	seq := []int{f}
	from := 0
	for cur := f; ; {
		nx := rl.Next(cur, from)
		if nx == 0 {
			return seq
		}
		seq = append(seq, nx)
		from, cur = cur, nx
	}
}

// firstOf maps every item to the first item of its list. O(n).
func (rl *ReverseLists) firstOf() []int {
	first := make([]int, rl.n+1)
	for f := 1; f <= rl.n; f++ {
		if !rl.IsFirst(f) {
			continue
		}
		for _, i := range rl.items(f) {
			first[i] = f
		}
	}

	return first
}

// Equals reports whether both partitions contain the same lists with the
// same forward order. Items beyond the smaller domain must be singletons.
// Complexity: O(n).
func (rl *ReverseLists) Equals(o *ReverseLists) bool {
	small, big := rl, o
	if small.n > big.n {
		small, big = big, small
	}
	for i := small.n + 1; i <= big.n; i++ {
		if big.Last(i) != i {
			return false
		}
	}
	oFirst := o.firstOf()
	for f := 1; f <= small.n; f++ {
		if !rl.IsFirst(f) {
			continue
		}
		mine := rl.items(f)
		of := oFirst[f]
		if of == 0 {
			return false
		}
		theirs := o.items(of)
		if len(mine) != len(theirs) {
			return false
		}
		for k := range mine {
			if mine[k] != theirs[k] {
				return false
			}
		}
	}

	return true
}

// String renders the canonical form "{[a c] [b] ...}", every list ordered
// by first item.
func (rl *ReverseLists) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := false
	for f := 1; f <= rl.n; f++ {
		if !rl.IsFirst(f) {
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		b.WriteByte('[')
		for k, i := range rl.items(f) {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(adt.ItemString(i, rl.n))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// FromString replaces the partition with the one encoded in s. Items absent
// from s become singletons. On failure the receiver is left unchanged.
func (rl *ReverseLists) FromString(s string) error {
	lists, maxItem, err := parseLists(s)
	if err != nil {
		return err
	}
	n := rl.n
	if maxItem > n {
		n = maxItem
	}
	fresh := New(n)
	for _, items := range lists {
		f := items[0]
		for _, i := range items[1:] {
			if f, err = fresh.Join(f, i); err != nil {
				return ErrParse
			}
		}
	}
	*rl = *fresh

	return nil
}

// parseLists validates the "{[...] [...]}" grammar with item uniqueness.
func parseLists(s string) ([][]int, int, error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return nil, 0, ErrParse
	}
	var lists [][]int
	maxItem := 0
	seen := make(map[int]bool)
	for {
		if sc.Verify('}') {
			break
		}
		if !sc.Verify('[') {
			return nil, 0, ErrParse
		}
		var items []int
		for {
			if sc.Verify(']') {
				break
			}
			i, ok := sc.NextItem()
			if !ok || i == 0 || seen[i] {
				return nil, 0, ErrParse
			}
			seen[i] = true
			if i > maxItem {
				maxItem = i
			}
			items = append(items, i)
		}
		if len(items) == 0 {
			return nil, 0, ErrParse
		}
		lists = append(lists, items)
	}
	if !sc.Done() {
		return nil, 0, ErrParse
	}

	return lists, maxItem, nil
}
