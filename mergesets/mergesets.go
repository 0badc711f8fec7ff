// Package mergesets implements MergeSets: a disjoint-set forest over the
// index domain 1..n with union-by-rank and full path compression.
//
// What:
//
//   - Find(i) returns the canonical element (root) of i's set, compressing
//     the walked path so every touched node points straight at the root.
//   - Merge(i, j) unites the sets rooted at i and j by rank.
//   - Findroot(i) is a non-compressing lookup for equality tests and
//     debugging; it never mutates the forest.
//   - Stats exposes finds/merges/steps counters for benchmarking.
//
// Invariants: a singleton has parent == self and rank 0; rank never
// decreases root-ward; only roots may be merged.
//
// Complexity: Merge O(1); Find amortized near-O(1) (inverse Ackermann),
// worst case O(log n) per operation.
//
// The canonical text form reuses the listset grammar with each set's
// canonical element first: "{[a c] [b]}".
package mergesets

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for mergesets operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("mergesets: item out of range")

	// ErrNotRoot indicates Merge was passed a non-canonical element.
	ErrNotRoot = errors.New("mergesets: merge requires set roots")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("mergesets: malformed input")
)

// Stats counts the work performed since construction (or ClearStats).
type Stats struct {
	Finds  int // Find calls
	Merges int // successful Merge calls
	Steps  int // parent-edge traversals across all Finds
}

// MergeSets is a disjoint-set forest over 1..n.
type MergeSets struct {
	n      int
	parent []int
	rank   []int
	stats  Stats
}

// New creates n singleton sets. Complexity: O(n).
func New(n int) *MergeSets {
	ms := &MergeSets{n: n, parent: make([]int, n+1), rank: make([]int, n+1)}
	for i := 1; i <= n; i++ {
		ms.parent[i] = i
	}

	return ms
}

// N returns the index bound of the forest's domain.
func (ms *MergeSets) N() int { return ms.n }

// Valid reports whether i lies in the index domain.
func (ms *MergeSets) Valid(i int) bool { return i >= 1 && i <= ms.n }

// Find returns the canonical element of i's set, compressing the path:
// every node on the walk ends up a direct child of the root.
// Amortized near-O(1).
func (ms *MergeSets) Find(i int) int {
	if !ms.Valid(i) {
		return 0
	}
	ms.stats.Finds++
	root := i
	for ms.parent[root] != root {
		ms.stats.Steps++
		root = ms.parent[root]
	}
	for ms.parent[i] != root {
		i, ms.parent[i] = ms.parent[i], root
	}

	return root
}

// Findroot returns the canonical element of i's set without compressing.
// Used by equality tests; never mutates the forest.
func (ms *MergeSets) Findroot(i int) int {
	if !ms.Valid(i) {
		return 0
	}
	for ms.parent[i] != i {
		i = ms.parent[i]
	}

	return i
}

// Merge unites the sets rooted at i and j and returns the root of the
// combined set. Both arguments must be roots; merging a set with itself is
// a contract violation. Complexity: O(1).
func (ms *MergeSets) Merge(i, j int) (int, error) {
	if !ms.Valid(i) || !ms.Valid(j) {
		return 0, ErrItemRange
	}
	if ms.parent[i] != i || ms.parent[j] != j || i == j {
		return 0, ErrNotRoot
	}
	ms.stats.Merges++
	if ms.rank[i] < ms.rank[j] {
		i, j = j, i
	}
	ms.parent[j] = i
	if ms.rank[i] == ms.rank[j] {
		ms.rank[i]++
	}

	return i, nil
}

// Stats returns the operation counters accumulated so far.
func (ms *MergeSets) Stats() Stats { return ms.stats }

// ClearStats zeroes the operation counters.
func (ms *MergeSets) ClearStats() { ms.stats = Stats{} }

// Expand grows the index domain to at least n; new items are singletons.
// Complexity: O(n).
func (ms *MergeSets) Expand(n int) {
	if n <= ms.n {
		return
	}
	n = adt.Grow(ms.n, n)
	parent := make([]int, n+1)
	rank := make([]int, n+1)
	copy(parent, ms.parent)
	copy(rank, ms.rank)
	for i := ms.n + 1; i <= n; i++ {
		parent[i] = i
	}
	ms.parent, ms.rank, ms.n = parent, rank, n
}

// Equals reports partition equality: i and j share a set in ms exactly when
// they do in o. Tree shapes and canonical elements may differ.
// Complexity: O(n).
func (ms *MergeSets) Equals(o *MergeSets) bool {
	small, big := ms, o
	if small.n > big.n {
		small, big = big, small
	}
	for i := small.n + 1; i <= big.n; i++ {
		if big.Findroot(i) != i {
			return false
		}
	}
	// Roots in ms must map one-to-one onto roots in o.
	m2o := make(map[int]int)
	o2m := make(map[int]int)
	for i := 1; i <= small.n; i++ {
		a, b := ms.Findroot(i), o.Findroot(i)
		if r, ok := m2o[a]; ok && r != b {
			return false
		}
		if r, ok := o2m[b]; ok && r != a {
			return false
		}
		m2o[a], o2m[b] = b, a
	}

	return true
}

// String renders the canonical form "{[a c] [b]}": one bracket per set,
// canonical element first, remaining members ascending, sets ordered by
// canonical element.
func (ms *MergeSets) String() string {
	members := make(map[int][]int)
	for i := 1; i <= ms.n; i++ {
		r := ms.Findroot(i)
		if i != r {
			members[r] = append(members[r], i)
		}
	}
	roots := make([]int, 0, len(members))
	for i := 1; i <= ms.n; i++ {
		if ms.Findroot(i) == i {
			roots = append(roots, i)
		}
	}
	sort.Ints(roots)

	var b strings.Builder
	b.WriteByte('{')
	for k, r := range roots {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		b.WriteString(adt.ItemString(r, ms.n))
		for _, i := range members[r] {
			b.WriteByte(' ')
			b.WriteString(adt.ItemString(i, ms.n))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// FromString replaces the forest with the partition encoded in s, merging
// each bracketed set onto its first item. Items absent from s become
// singletons. On failure the receiver is left unchanged.
func (ms *MergeSets) FromString(s string) error {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return ErrParse
	}
	var lists [][]int
	maxItem := 0
	seen := make(map[int]bool)
	for {
		if sc.Verify('}') {
			break
		}
		if !sc.Verify('[') {
			return ErrParse
		}
		var items []int
		for {
			if sc.Verify(']') {
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
			items = append(items, i)
		}
		if len(items) == 0 {
			return ErrParse
		}
		lists = append(lists, items)
	}
	if !sc.Done() {
		return ErrParse
	}

	n := ms.n
	if maxItem > n {
		n = maxItem
	}
	fresh := New(n)
	for _, items := range lists {
		for _, i := range items[1:] {
			if _, err := fresh.Merge(fresh.Find(items[0]), fresh.Find(i)); err != nil {
				return ErrParse
			}
		}
	}
	*ms = *fresh

	return nil
}
