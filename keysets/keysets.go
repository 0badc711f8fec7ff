package keysets

import (
	"errors"

	"github.com/katalvlaran/grafix/adt"
)

// Sentinel errors for keysets operations.
var (
	// ErrItemRange indicates an item outside the valid domain 1..n.
	ErrItemRange = errors.New("keysets: item out of range")

	// ErrNotSingleton indicates an item expected to be a free singleton
	// tree is part of a larger tree.
	ErrNotSingleton = errors.New("keysets: item is not a singleton")

	// ErrNotRoot indicates a tree argument that is not a tree root.
	ErrNotRoot = errors.New("keysets: not a tree root")

	// ErrKeyMode indicates a numeric-key operation on a string-keyed
	// forest, or the reverse.
	ErrKeyMode = errors.New("keysets: wrong key mode")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("keysets: malformed input")
)

// KeySets is a forest of balanced BSTs partitioning 1..n.
//
// rank is the AVL height of the subtree rooted at a node; a singleton has
// rank 1. The refresh hook, when set, is invoked on every node whose
// subtree composition changes, children first.
type KeySets struct {
	n        int
	left     []int
	right    []int
	parent   []int
	rank     []int
	key      []float64
	skey     []string
	byString bool
	refresh  func(u int)
}

// Option configures a KeySets at construction time.
type Option func(*KeySets)

// WithStringKeys orders items by a per-item string key instead of the
// numeric one.
func WithStringKeys() Option {
	return func(ks *KeySets) { ks.byString = true }
}

// WithRefresh installs an aggregate-maintenance hook, invoked on every node
// whose subtree changes, after its children are up to date.
func WithRefresh(f func(u int)) Option {
	return func(ks *KeySets) { ks.refresh = f }
}

// New creates a forest of n singleton trees. Complexity: O(n).
func New(n int, opts ...Option) *KeySets {
	ks := &KeySets{
		n:      n,
		left:   make([]int, n+1),
		right:  make([]int, n+1),
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
		key:    make([]float64, n+1),
	}
	for _, opt := range opts {
		opt(ks)
	}
	if ks.byString {
		ks.skey = make([]string, n+1)
	}
	for i := 1; i <= n; i++ {
		ks.rank[i] = 1
	}

	return ks
}

// N returns the index bound of the forest's domain.
func (ks *KeySets) N() int { return ks.n }

// Valid reports whether u lies in the index domain.
func (ks *KeySets) Valid(u int) bool { return u >= 1 && u <= ks.n }

// Left, Right, Parent and Rank expose the tree structure read-only.
func (ks *KeySets) Left(u int) int   { return ks.left[u] }
func (ks *KeySets) Right(u int) int  { return ks.right[u] }
func (ks *KeySets) Parent(u int) int { return ks.parent[u] }
func (ks *KeySets) Rank(u int) int   { return ks.rank[u] }

// Key returns u's numeric key.
func (ks *KeySets) Key(u int) float64 { return ks.key[u] }

// StringKey returns u's string key (string-key mode only).
func (ks *KeySets) StringKey(u int) string {
	if !ks.byString {
		return ""
	}

	return ks.skey[u]
}

// SetKey assigns a numeric key to the singleton u.
func (ks *KeySets) SetKey(u int, k float64) error {
	if !ks.Valid(u) {
		return ErrItemRange
	}
	if ks.byString {
		return ErrKeyMode
	}
	if !ks.IsSingleton(u) {
		return ErrNotSingleton
	}
	ks.key[u] = k
	ks.fix(u)

	return nil
}

// SetStringKey assigns a string key to the singleton u (string-key mode).
func (ks *KeySets) SetStringKey(u int, k string) error {
	if !ks.Valid(u) {
		return ErrItemRange
	}
	if !ks.byString {
		return ErrKeyMode
	}
	if !ks.IsSingleton(u) {
		return ErrNotSingleton
	}
	ks.skey[u] = k
	ks.fix(u)

	return nil
}

// IsSingleton reports whether u is a free one-node tree.
func (ks *KeySets) IsSingleton(u int) bool {
	return ks.Valid(u) && ks.parent[u] == 0 && ks.left[u] == 0 && ks.right[u] == 0
}

// IsRoot reports whether u is the root of its tree.
func (ks *KeySets) IsRoot(u int) bool { return ks.Valid(u) && ks.parent[u] == 0 }

// Find returns the root of u's tree. Complexity: O(log n).
func (ks *KeySets) Find(u int) int {
	if !ks.Valid(u) {
		return 0
	}
	for ks.parent[u] != 0 {
		u = ks.parent[u]
	}

	return u
}

// less orders items by the active key mode.
func (ks *KeySets) less(a, b int) bool {
	if ks.byString {
		return ks.skey[a] < ks.skey[b]
	}

	return ks.key[a] < ks.key[b]
}

func (ks *KeySets) rankOf(u int) int {
	if u == 0 {
		return 0
	}

	return ks.rank[u]
}

// fix recomputes u's rank from its children and fires the refresh hook.
func (ks *KeySets) fix(u int) {
	rl, rr := ks.rankOf(ks.left[u]), ks.rankOf(ks.right[u])
	if rl < rr {
		rl = rr
	}
	ks.rank[u] = rl + 1
	if ks.refresh != nil {
		ks.refresh(u)
	}
}

// balance is rank(left) - rank(right).
func (ks *KeySets) balance(u int) int {
	return ks.rankOf(ks.left[u]) - ks.rankOf(ks.right[u])
}

// relinkParent points u's parent's child slot, formerly holding old, at u.
func (ks *KeySets) relinkParent(u, old int) {
	pu := ks.parent[u]
	if pu == 0 {
		return
	}
	if ks.left[pu] == old {
		ks.left[pu] = u
	} else {
		ks.right[pu] = u
	}
}

// rotateRight lifts v's left child over v and returns it.
func (ks *KeySets) rotateRight(v int) int {
	x := ks.left[v]
	ks.left[v] = ks.right[x]
	if ks.right[x] != 0 {
		ks.parent[ks.right[x]] = v
	}
	ks.right[x] = v
	ks.parent[x] = ks.parent[v]
	ks.relinkParent(x, v)
	ks.parent[v] = x
	ks.fix(v)
	ks.fix(x)

	return x
}

// rotateLeft lifts v's right child over v and returns it.
func (ks *KeySets) rotateLeft(v int) int {
	x := ks.right[v]
	ks.right[v] = ks.left[x]
	if ks.left[x] != 0 {
		ks.parent[ks.left[x]] = v
	}
	ks.left[x] = v
	ks.parent[x] = ks.parent[v]
	ks.relinkParent(x, v)
	ks.parent[v] = x
	ks.fix(v)
	ks.fix(x)

	return x
}

// rebalance restores the AVL invariant at v and returns the subtree's new
// root. v's children are assumed balanced.
func (ks *KeySets) rebalance(v int) int {
	ks.fix(v)
	switch b := ks.balance(v); {
	case b > 1:
		if ks.balance(ks.left[v]) < 0 {
			ks.rotateLeft(ks.left[v])
		}

		return ks.rotateRight(v)
	case b < -1:
		if ks.balance(ks.right[v]) > 0 {
			ks.rotateRight(ks.right[v])
		}

		return ks.rotateLeft(v)
	default:
		return v
	}
}

// rebalanceUp rebalances every node from v to its root and returns the
// root. Complexity: O(log n).
func (ks *KeySets) rebalanceUp(v int) int {
	root := v
	for v != 0 {
		v = ks.rebalance(v)
		root = v
		v = ks.parent[v]
	}

	return root
}

// Insert places the singleton u into the tree rooted at t by key and
// returns the tree's (possibly new) root. Inserting into t == 0 makes u a
// tree of its own. Complexity: O(log n).
func (ks *KeySets) Insert(u, t int) (int, error) {
	if !ks.Valid(u) {
		return 0, ErrItemRange
	}
	if !ks.IsSingleton(u) {
		return 0, ErrNotSingleton
	}
	if t == 0 || t == u {
		return u, nil
	}
	if !ks.Valid(t) {
		return 0, ErrItemRange
	}
	if !ks.IsRoot(t) {
		return 0, ErrNotRoot
	}

	v := t
	for {
		if ks.less(u, v) {
			if ks.left[v] == 0 {
				ks.left[v] = u

				break
			}
			v = ks.left[v]
		} else {
			if ks.right[v] == 0 {
				ks.right[v] = u

				break
			}
			v = ks.right[v]
		}
	}
	ks.parent[u] = v

	return ks.rebalanceUp(v), nil
}

// leftmost returns the smallest-key item of v's subtree.
func (ks *KeySets) leftmost(v int) int {
	for ks.left[v] != 0 {
		v = ks.left[v]
	}

	return v
}

// First returns the smallest-key item of the tree rooted at t.
func (ks *KeySets) First(t int) int {
	if !ks.Valid(t) {
		return 0
	}

	return ks.leftmost(t)
}

// Next returns the in-order successor of u within its tree, or 0.
func (ks *KeySets) Next(u int) int {
	if !ks.Valid(u) {
		return 0
	}
	if ks.right[u] != 0 {
		return ks.leftmost(ks.right[u])
	}
	for ks.parent[u] != 0 && ks.right[ks.parent[u]] == u {
		u = ks.parent[u]
	}

	return ks.parent[u]
}

// reset makes u a singleton and refreshes its aggregate.
func (ks *KeySets) reset(u int) {
	ks.left[u], ks.right[u], ks.parent[u] = 0, 0, 0
	ks.fix(u)
}

// Delete removes u from its tree, leaving u a singleton, and returns the
// root of the remaining tree (0 when u was alone). Complexity: O(log n).
func (ks *KeySets) Delete(u int) (int, error) {
	if !ks.Valid(u) {
		return 0, ErrItemRange
	}
	if ks.IsSingleton(u) {
		return 0, nil
	}

	start := 0
	if ks.left[u] != 0 && ks.right[u] != 0 {
		// Two children: transplant the in-order successor s into u's slot.
		s := ks.leftmost(ks.right[u])
		ps := ks.parent[s]
		if ps != u {
			// Splice s (which has no left child) out of its position.
			ks.left[ps] = ks.right[s]
			if ks.right[s] != 0 {
				ks.parent[ks.right[s]] = ps
			}
			ks.right[s] = ks.right[u]
			ks.parent[ks.right[u]] = s
			start = ps
		} else {
			start = s
		}
		ks.left[s] = ks.left[u]
		ks.parent[ks.left[u]] = s
		ks.rank[s] = ks.rank[u]
		ks.parent[s] = ks.parent[u]
		ks.relinkParent(s, u)
	} else {
		// At most one child: splice it into u's place.
		c := ks.left[u] + ks.right[u]
		pu := ks.parent[u]
		if c != 0 {
			ks.parent[c] = pu
		}
		if pu != 0 {
			if ks.left[pu] == u {
				ks.left[pu] = c
			} else {
				ks.right[pu] = c
			}
			start = pu
		} else {
			ks.reset(u)

			return c, nil
		}
	}
	ks.reset(u)

	return ks.rebalanceUp(start), nil
}

// Search returns the item with numeric key k in the tree rooted at t, or 0.
// Complexity: O(log n).
func (ks *KeySets) Search(k float64, t int) int {
	if ks.byString || !ks.Valid(t) {
		return 0
	}
	for t != 0 {
		switch {
		case k < ks.key[t]:
			t = ks.left[t]
		case k > ks.key[t]:
			t = ks.right[t]
		default:
			return t
		}
	}

	return 0
}

// SearchString is Search for string-key mode.
func (ks *KeySets) SearchString(k string, t int) int {
	if !ks.byString || !ks.Valid(t) {
		return 0
	}
	for t != 0 {
		switch {
		case k < ks.skey[t]:
			t = ks.left[t]
		case k > ks.skey[t]:
			t = ks.right[t]
		default:
			return t
		}
	}

	return 0
}

// Join combines t1, the singleton u and t2 into one tree and returns its
// root. Precondition: every key in t1 ≤ key(u) ≤ every key in t2 (the key
// ordering itself is the caller's contract). Either tree may be 0.
// Complexity: O(log n).
func (ks *KeySets) Join(t1, u, t2 int) (int, error) {
	if !ks.Valid(u) {
		return 0, ErrItemRange
	}
	if !ks.IsSingleton(u) {
		return 0, ErrNotSingleton
	}
	if (t1 != 0 && (!ks.Valid(t1) || !ks.IsRoot(t1))) ||
		(t2 != 0 && (!ks.Valid(t2) || !ks.IsRoot(t2))) {
		return 0, ErrNotRoot
	}
	if t1 == u || t2 == u || (t1 == t2 && t1 != 0) {
		return 0, ErrNotRoot
	}

	r1, r2 := ks.rankOf(t1), ks.rankOf(t2)
	diff := r1 - r2
	if diff >= -1 && diff <= 1 {
		ks.left[u], ks.right[u] = t1, t2
		if t1 != 0 {
			ks.parent[t1] = u
		}
		if t2 != 0 {
			ks.parent[t2] = u
		}
		ks.fix(u)

		return u, nil
	}

	if r1 > r2 {
		// Descend t1's right spine to rank ≤ r2+1 and graft u there. The
		// spine may bottom out (v == 0) when t2 is small; pv is then the
		// last spine node and u hangs directly under it.
		v, pv := t1, 0
		for v != 0 && ks.rankOf(v) > r2+1 {
			pv, v = v, ks.right[v]
		}
		ks.left[u] = v
		if v != 0 {
			ks.parent[v] = u
		}
		ks.right[u] = t2
		if t2 != 0 {
			ks.parent[t2] = u
		}
		ks.right[pv] = u
		ks.parent[u] = pv
		ks.fix(u)

		return ks.rebalanceUp(pv), nil
	}

	// Mirror image: descend t2's left spine.
	v, pv := t2, 0
	for v != 0 && ks.rankOf(v) > r1+1 {
		pv, v = v, ks.left[v]
	}
	ks.right[u] = v
	if v != 0 {
		ks.parent[v] = u
	}
	ks.left[u] = t1
	if t1 != 0 {
		ks.parent[t1] = u
	}
	ks.left[pv] = u
	ks.parent[u] = pv
	ks.fix(u)

	return ks.rebalanceUp(pv), nil
}

// Split divides u's tree into the items ordered before u and after u,
// leaving u a singleton. Returns the two roots (either may be 0).
// Complexity: O(log n) amortized.
func (ks *KeySets) Split(u int) (int, int, error) {
	if !ks.Valid(u) {
		return 0, 0, ErrItemRange
	}

	l, r := ks.left[u], ks.right[u]
	if l != 0 {
		ks.parent[l] = 0
	}
	if r != 0 {
		ks.parent[r] = 0
	}
	v := ks.parent[u]
	wasRight := v != 0 && ks.right[v] == u
	ks.reset(u)

	for v != 0 {
		nextV := ks.parent[v]
		nextWasRight := nextV != 0 && ks.right[nextV] == v

		if wasRight {
			// v and its left subtree precede u.
			sub := ks.left[v]
			if sub != 0 {
				ks.parent[sub] = 0
			}
			ks.reset(v)
			var err error
			if l, err = ks.Join(sub, v, l); err != nil {
				return 0, 0, err
			}
		} else {
			sub := ks.right[v]
			if sub != 0 {
				ks.parent[sub] = 0
			}
			ks.reset(v)
			var err error
			if r, err = ks.Join(r, v, sub); err != nil {
				return 0, 0, err
			}
		}
		v, wasRight = nextV, nextWasRight
	}

	return l, r, nil
}

// Expand grows the index domain to at least n; new items are singletons.
// Complexity: O(n).
func (ks *KeySets) Expand(n int) {
	if n <= ks.n {
		return
	}
	n = adt.Grow(ks.n, n)
	grow := func(a []int) []int {
		b := make([]int, n+1)
		copy(b, a)

		return b
	}
	ks.left, ks.right = grow(ks.left), grow(ks.right)
	ks.parent, ks.rank = grow(ks.parent), grow(ks.rank)
	key := make([]float64, n+1)
	copy(key, ks.key)
	ks.key = key
	if ks.byString {
		skey := make([]string, n+1)
		copy(skey, ks.skey)
		ks.skey = skey
	}
	for i := ks.n + 1; i <= n; i++ {
		ks.rank[i] = 1
	}
	ks.n = n
}

// Equals reports whether both forests hold the same trees (as item sets)
// with equal keys per item. Tree shapes may differ. Complexity: O(n log n).
func (ks *KeySets) Equals(o *KeySets) bool {
	if ks.byString != o.byString {
		return false
	}
	small, big := ks, o
	if small.n > big.n {
		small, big = big, small
	}
	for i := small.n + 1; i <= big.n; i++ {
		if !big.IsSingleton(i) {
			return false
		}
	}
	m2o := make(map[int]int)
	o2m := make(map[int]int)
	for i := 1; i <= small.n; i++ {
		if ks.byString {
			if ks.skey[i] != o.skey[i] {
				return false
			}
		} else if ks.key[i] != o.key[i] {
			return false
		}
		a, b := ks.Find(i), o.Find(i)
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
