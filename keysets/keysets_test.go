package keysets

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests live inside the package: balance and aggregate invariants need the
// raw tree structure, which the public surface deliberately hides.

// inorder collects the tree rooted at t.
func inorder(ks *KeySets, t int) []int {
	var out []int
	for u := ks.First(t); u != 0; u = ks.Next(u) {
		out = append(out, u)
	}

	return out
}

// checkTree verifies the BST key order, the AVL rank rule and parent links
// for the tree rooted at t.
func checkTree(t *testing.T, ks *KeySets, root int) {
	t.Helper()
	var walk func(u int) int
	walk = func(u int) int {
		if u == 0 {
			return 0
		}
		if l := ks.left[u]; l != 0 {
			require.Equal(t, u, ks.parent[l])
			require.False(t, ks.less(u, l), "left child key must not exceed parent")
		}
		if r := ks.right[u]; r != 0 {
			require.Equal(t, u, ks.parent[r])
			require.False(t, ks.less(r, u), "right child key must not precede parent")
		}
		hl, hr := walk(ks.left[u]), walk(ks.right[u])
		require.LessOrEqual(t, hl-hr, 1, "node %d out of balance", u)
		require.LessOrEqual(t, hr-hl, 1, "node %d out of balance", u)
		h := hl
		if hr > h {
			h = hr
		}
		require.Equal(t, h+1, ks.rank[u], "rank of node %d is stale", u)

		return h + 1
	}
	walk(root)
}

// ------------------------------------------------------------------------
// 1. Insert/Search/Delete basics.
// ------------------------------------------------------------------------

func TestInsertSearchDelete(t *testing.T) {
	ks := New(10)
	keys := []float64{5, 2, 8, 1, 9, 3, 7}
	tr := 0
	for i, k := range keys {
		require.NoError(t, ks.SetKey(i+1, k))
		var err error
		tr, err = ks.Insert(i+1, tr)
		require.NoError(t, err)
	}
	checkTree(t, ks, tr)

	require.Equal(t, 3, ks.Search(8, tr))
	require.Equal(t, 4, ks.Search(1, tr))
	require.Zero(t, ks.Search(6, tr))

	// In-order keys are sorted ascending.
	var got []float64
	for _, u := range inorder(ks, tr) {
		got = append(got, ks.Key(u))
	}
	require.True(t, sort.Float64sAreSorted(got))

	tr, err := ks.Delete(tr) // delete whatever is at the root
	require.NoError(t, err)
	checkTree(t, ks, tr)
	require.Len(t, inorder(ks, tr), 6)
}

func TestInsertContracts(t *testing.T) {
	ks := New(5)
	tr, err := ks.Insert(1, 0)
	require.NoError(t, err)
	_, err = ks.Insert(1, tr) // no longer needed: 1 IS the tree
	require.NoError(t, err)

	_, err = ks.Insert(0, tr)
	require.ErrorIs(t, err, ErrItemRange)
	tr, err = ks.Insert(2, tr)
	require.NoError(t, err)
	_, err = ks.Insert(2, tr)
	require.ErrorIs(t, err, ErrNotSingleton)
	nonRoot := ks.left[tr] + ks.right[tr]
	_, err = ks.Insert(3, nonRoot)
	require.ErrorIs(t, err, ErrNotRoot)
}

// ------------------------------------------------------------------------
// 2. Join and Split.
// ------------------------------------------------------------------------

func buildTree(t *testing.T, ks *KeySets, items []int, keys []float64) int {
	t.Helper()
	tr := 0
	for i, u := range items {
		require.NoError(t, ks.SetKey(u, keys[i]))
		var err error
		tr, err = ks.Insert(u, tr)
		require.NoError(t, err)
	}

	return tr
}

func TestJoinBalancedAndSkewed(t *testing.T) {
	ks := New(20)
	t1 := buildTree(t, ks, []int{1, 2, 3, 4, 5, 6, 7}, []float64{10, 20, 30, 40, 50, 60, 70})
	t2 := buildTree(t, ks, []int{9, 10}, []float64{90, 100})
	require.NoError(t, ks.SetKey(8, 80))

	tr, err := ks.Join(t1, 8, t2)
	require.NoError(t, err)
	checkTree(t, ks, tr)
	seq := inorder(ks, tr)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seq)

	// Join with an empty right side.
	ks2 := New(8)
	l := buildTree(t, ks2, []int{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5})
	require.NoError(t, ks2.SetKey(6, 9))
	tr2, err := ks2.Join(l, 6, 0)
	require.NoError(t, err)
	checkTree(t, ks2, tr2)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, inorder(ks2, tr2))
}

func TestSplit(t *testing.T) {
	ks := New(15)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	keys := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90}
	_ = buildTree(t, ks, items, keys)

	l, r, err := ks.Split(4)
	require.NoError(t, err)
	require.True(t, ks.IsSingleton(4), "split leaves the pivot a singleton")
	require.Equal(t, []int{1, 2, 3}, inorder(ks, l))
	require.Equal(t, []int{5, 6, 7, 8, 9}, inorder(ks, r))
	checkTree(t, ks, l)
	checkTree(t, ks, r)
}

// ------------------------------------------------------------------------
// 3. Random churn: balance + order hold through insert/delete/join/split.
// ------------------------------------------------------------------------

func TestRandomChurn(t *testing.T) {
	const n = 80
	const steps = 1500
	rng := rand.New(rand.NewSource(11))
	ks := New(n)
	for i := 1; i <= n; i++ {
		require.NoError(t, ks.SetKey(i, float64(rng.Intn(500))))
	}

	for step := 0; step < steps; step++ {
		u := 1 + rng.Intn(n)
		switch rng.Intn(3) {
		case 0: // move u into a random other tree
			if !ks.IsSingleton(u) {
				break
			}
			v := 1 + rng.Intn(n)
			_, err := ks.Insert(u, ks.Find(v))
			if v == u {
				require.NoError(t, err)

				break
			}
			require.NoError(t, err)
		case 1: // delete u from its tree
			_, err := ks.Delete(u)
			require.NoError(t, err)
		case 2: // split at u
			_, _, err := ks.Split(u)
			require.NoError(t, err)
		}

		// Invariants after every mutation.
		seen := 0
		for root := 1; root <= n; root++ {
			if !ks.IsRoot(root) {
				continue
			}
			checkTree(t, ks, root)
			prev := math.Inf(-1)
			for _, x := range inorder(ks, root) {
				require.GreaterOrEqual(t, ks.Key(x), prev)
				prev = ks.Key(x)
				seen++
			}
		}
		require.Equal(t, n, seen, "forest must partition 1..n")
	}
}

// ------------------------------------------------------------------------
// 4. String keys and round-trip.
// ------------------------------------------------------------------------

func TestStringKeys(t *testing.T) {
	ks := New(6, WithStringKeys())
	words := []string{"pear", "apple", "quince", "fig", "mango"}
	tr := 0
	for i, w := range words {
		require.NoError(t, ks.SetStringKey(i+1, w))
		var err error
		tr, err = ks.Insert(i+1, tr)
		require.NoError(t, err)
	}
	require.Equal(t, 2, ks.First(tr), "apple sorts first")
	require.Equal(t, 3, ks.SearchString("quince", tr))
	require.ErrorIs(t, ks.SetKey(6, 1), ErrKeyMode)
}

func TestStringRoundTrip(t *testing.T) {
	ks := New(8)
	buildTree(t, ks, []int{1, 3, 5}, []float64{2, 1, 7.5})
	buildTree(t, ks, []int{2, 4}, []float64{4, 3})

	fresh := New(8)
	require.NoError(t, fresh.FromString(ks.String()))
	require.True(t, fresh.Equals(ks))

	// Rank annotations are accepted and ignored.
	other := New(8)
	require.NoError(t, other.FromString("{[c:1:1 a:2:2 e:7.5:1] [d:3 b:4] [f:0] [g:0] [h:0]}"))
	require.True(t, other.Equals(ks))
}

func TestFromStringRejectsBadInput(t *testing.T) {
	ks := New(4)
	for _, bad := range []string{"", "{[a:1", "{[a]}", "{[a:1 a:2]}", "{[a:x]}"} {
		require.ErrorIs(t, ks.FromString(bad), ErrParse, "input %q", bad)
	}
}
