package list_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/list"
)

// ------------------------------------------------------------------------
// 1. Contract checks: range, duplicates, membership.
// ------------------------------------------------------------------------

func TestInsertContracts(t *testing.T) {
	l := list.New(5)
	require.ErrorIs(t, l.Insert(0, 0), list.ErrItemRange)
	require.NoError(t, l.Insert(3, 0))
	require.ErrorIs(t, l.Insert(3, 0), list.ErrDuplicate)
	require.ErrorIs(t, l.Insert(2, 4), list.ErrNotMember)
	// A failed insert leaves the list unchanged.
	require.Equal(t, "[c]", l.String())
}

func TestDeleteContracts(t *testing.T) {
	l := list.New(4)
	require.NoError(t, l.Enq(1))
	require.ErrorIs(t, l.Delete(2), list.ErrNotMember)
	require.NoError(t, l.Delete(1))
	require.True(t, l.Empty())
}

// ------------------------------------------------------------------------
// 2. Scenario: queue/stack surgery over n=5.
// ------------------------------------------------------------------------

func TestQueueStackScenario(t *testing.T) {
	l := list.New(5)
	require.NoError(t, l.Enq(3))
	require.NoError(t, l.Enq(1))
	require.NoError(t, l.Enq(4))
	require.NoError(t, l.Push(2))
	require.NoError(t, l.Insert(5, 1))

	require.Equal(t, "[b c a e d]", l.String())
	require.Equal(t, 4, l.At(-1))
	require.Equal(t, 1, l.Prev(5))

	require.NoError(t, l.Delete(1))
	require.Equal(t, "[b c e d]", l.String())
	require.Equal(t, 4, l.Length())
	require.Equal(t, 2, l.First())
	require.Equal(t, 4, l.Last())
}

func TestAtPositions(t *testing.T) {
	l := list.New(6)
	for _, i := range []int{4, 2, 6, 1} {
		require.NoError(t, l.Enq(i))
	}
	require.Equal(t, 4, l.At(1))
	require.Equal(t, 6, l.At(3))
	require.Equal(t, 1, l.At(-1))
	require.Equal(t, 2, l.At(-3))
	require.Equal(t, 0, l.At(5))
	require.Equal(t, 0, l.At(0))
}

// ------------------------------------------------------------------------
// 3. Lazy materialization and expansion.
// ------------------------------------------------------------------------

func TestLazyPrev(t *testing.T) {
	l := list.New(4)
	require.NoError(t, l.Enq(1))
	require.NoError(t, l.Enq(3))
	require.NoError(t, l.Enq(2))
	// First Prev call pays the O(n) materialization; results must agree
	// with the forward walk afterwards.
	require.Equal(t, 3, l.Prev(2))
	require.Equal(t, 1, l.Prev(3))
	require.Equal(t, 0, l.Prev(1))
	require.Equal(t, 2, l.PopLast())
	require.Equal(t, 3, l.Last())
}

func TestInsertExpands(t *testing.T) {
	l := list.New(2)
	require.NoError(t, l.Enq(1))
	require.NoError(t, l.Enq(7)) // beyond n: domain grows in place
	require.GreaterOrEqual(t, l.N(), 7)
	require.Equal(t, "[a g]", l.String())
	require.True(t, l.Contains(7))
}

func TestValues(t *testing.T) {
	l := list.New(3, list.WithValues())
	require.NoError(t, l.Enq(2))
	require.NoError(t, l.SetValue(2, 4.5))
	require.Equal(t, 4.5, l.Value(2))

	lazy := list.New(3)
	require.NoError(t, lazy.SetValue(1, -1))
	require.Equal(t, -1.0, lazy.Value(1))
}

// ------------------------------------------------------------------------
// 4. Round-trip and equality.
// ------------------------------------------------------------------------

func TestStringRoundTrip(t *testing.T) {
	l := list.New(8)
	for _, i := range []int{2, 3, 1, 5, 4} {
		require.NoError(t, l.Enq(i))
	}
	s := l.String()
	fresh := list.New(8)
	require.NoError(t, fresh.FromString(s))
	require.True(t, fresh.Equals(l))
}

func TestFromStringRejectsBadInput(t *testing.T) {
	l := list.New(4)
	require.NoError(t, l.Enq(2))
	for _, bad := range []string{"", "[a b", "a b]", "[a a]", "[a -]", "[a] x"} {
		require.ErrorIs(t, l.FromString(bad), list.ErrParse, "input %q", bad)
		// Receiver untouched by the failed parse.
		require.Equal(t, "[b]", l.String())
	}
}

func TestSetEquals(t *testing.T) {
	a, b := list.New(5), list.New(5)
	for _, i := range []int{1, 2, 3} {
		require.NoError(t, a.Enq(i))
	}
	for _, i := range []int{3, 1, 2} {
		require.NoError(t, b.Enq(i))
	}
	require.False(t, a.Equals(b))
	require.True(t, a.SetEquals(b))
}

// ------------------------------------------------------------------------
// 5. Randomized stress vs a slice reference model.
// ------------------------------------------------------------------------

func TestRandomOpsAgainstReference(t *testing.T) {
	const n = 40
	const steps = 5000
	rng := rand.New(rand.NewSource(1))
	l := list.New(n)
	var ref []int

	inRef := func(i int) bool {
		for _, x := range ref {
			if x == i {
				return true
			}
		}

		return false
	}

	for step := 0; step < steps; step++ {
		i := 1 + rng.Intn(n)
		switch rng.Intn(4) {
		case 0: // enq
			if !inRef(i) {
				require.NoError(t, l.Enq(i))
				ref = append(ref, i)
			}
		case 1: // deq
			got := l.Deq()
			if len(ref) == 0 {
				require.Zero(t, got)
			} else {
				require.Equal(t, ref[0], got)
				ref = ref[1:]
			}
		case 2: // delete
			if inRef(i) {
				require.NoError(t, l.Delete(i))
				for k, x := range ref {
					if x == i {
						ref = append(ref[:k], ref[k+1:]...)

						break
					}
				}
			}
		case 3: // contains
			require.Equal(t, inRef(i), l.Contains(i))
		}
		require.Equal(t, len(ref), l.Length())
	}
	// Final order must match the reference exactly.
	k := 0
	for i := l.First(); i != 0; i = l.Next(i) {
		require.Equal(t, ref[k], i)
		k++
	}
}
