package keysets

import "math"

// DualKeySets is a KeySets whose items carry a secondary key, with the
// subtree aggregate min2(u) = min{key2(v) : v in u's subtree} maintained
// through every rotation, splice and join by the refresh hook.
//
// The primary key ordering is numeric; FindMin answers "cheapest secondary
// key among all items with primary key ≤ limit" in O(log n).
type DualKeySets struct {
	*KeySets
	key2 []float64
	min2 []float64
}

// NewDual creates a dual-key forest of n singleton trees. Complexity: O(n).
func NewDual(n int) *DualKeySets {
	d := &DualKeySets{
		key2: make([]float64, n+1),
		min2: make([]float64, n+1),
	}
	d.KeySets = New(n, WithRefresh(d.refreshMin2))

	return d
}

// refreshMin2 recomputes min2 at u from its children.
func (d *DualKeySets) refreshMin2(u int) {
	m := d.key2[u]
	if l := d.left[u]; l != 0 && d.min2[l] < m {
		m = d.min2[l]
	}
	if r := d.right[u]; r != 0 && d.min2[r] < m {
		m = d.min2[r]
	}
	d.min2[u] = m
}

// Key2 returns u's secondary key.
func (d *DualKeySets) Key2(u int) float64 { return d.key2[u] }

// Min2 returns the subtree aggregate at u.
func (d *DualKeySets) Min2(u int) float64 { return d.min2[u] }

// SetKey2 assigns u's secondary key and repairs the aggregates on the path
// to u's root. Complexity: O(log n).
func (d *DualKeySets) SetKey2(u int, k float64) error {
	if !d.Valid(u) {
		return ErrItemRange
	}
	d.key2[u] = k
	for v := u; v != 0; v = d.parent[v] {
		d.refreshMin2(v)
	}

	return nil
}

// Expand grows both the forest and the secondary-key arrays.
func (d *DualKeySets) Expand(n int) {
	if n <= d.n {
		return
	}
	d.KeySets.Expand(n)
	key2 := make([]float64, d.n+1)
	min2 := make([]float64, d.n+1)
	copy(key2, d.key2)
	copy(min2, d.min2)
	d.key2, d.min2 = key2, min2
}

// FindMin returns the item with the smallest secondary key among all items
// of the tree rooted at t whose primary key is ≤ limit, or 0 when no item
// qualifies. Ties break toward the first achiever found on the descent.
// Complexity: O(log n).
func (d *DualKeySets) FindMin(t int, limit float64) int {
	if !d.Valid(t) || !d.IsRoot(t) {
		return 0
	}

	best, bestSub := 0, 0
	bestVal := math.Inf(1)
	for u := t; u != 0; {
		if d.key[u] > limit {
			u = d.left[u]

			continue
		}
		// u and its whole left subtree qualify.
		if d.key2[u] < bestVal {
			best, bestSub, bestVal = u, 0, d.key2[u]
		}
		if l := d.left[u]; l != 0 && d.min2[l] < bestVal {
			best, bestSub, bestVal = 0, l, d.min2[l]
		}
		u = d.right[u]
	}
	if bestSub != 0 {
		return d.achiever(bestSub)
	}

	return best
}

// achiever descends to the node realizing min2 of u's subtree.
func (d *DualKeySets) achiever(u int) int {
	target := d.min2[u]
	for {
		if d.key2[u] == target {
			return u
		}
		if l := d.left[u]; l != 0 && d.min2[l] == target {
			u = l

			continue
		}
		u = d.right[u]
	}
}
