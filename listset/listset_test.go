package listset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/listset"
)

// ------------------------------------------------------------------------
// 1. Scenario from the canonical grammar: join then delete over n=8.
// ------------------------------------------------------------------------

func TestJoinDeleteScenario(t *testing.T) {
	ls := listset.New(8)
	require.NoError(t, ls.FromString("{[a c] [b g] [e f] [h]}"))
	require.Equal(t, "{[a c] [b g] [e f] [h]}", ls.String())

	f, err := ls.Join(1, 5)
	require.NoError(t, err)
	require.Equal(t, 1, f)
	require.Equal(t, "{[a c e f] [b g] [h]}", ls.String())

	rest, err := ls.Delete(5, 1)
	require.NoError(t, err)
	require.Equal(t, 1, rest)
	require.Equal(t, "{[a c f] [b g] [h]}", ls.String())
	require.True(t, ls.IsSingleton(5))
}

// ------------------------------------------------------------------------
// 2. Structure queries: firstness, last, cyclic prev.
// ------------------------------------------------------------------------

func TestStructureQueries(t *testing.T) {
	ls := listset.New(6)
	require.NoError(t, ls.FromString("{[a d b] [c] [e f]}"))

	require.True(t, ls.IsFirst(1))
	require.False(t, ls.IsFirst(4))
	require.Equal(t, 2, ls.Last(1))
	require.Equal(t, 4, ls.Next(1))
	require.Equal(t, 4, ls.Prev(2))
	require.Equal(t, 0, ls.Prev(1), "first item has no visible prev")
	require.Equal(t, 1, ls.FindList(2))
	require.Equal(t, 5, ls.FindList(6))
}

func TestDeleteFirstAndLast(t *testing.T) {
	ls := listset.New(5)
	require.NoError(t, ls.FromString("{[a b c]}"))

	rest, err := ls.Delete(1, 1) // delete the first: list head moves
	require.NoError(t, err)
	require.Equal(t, 2, rest)
	require.Equal(t, "{[a] [b c] [d] [e]}", ls.String())

	rest, err = ls.Delete(3, 2) // delete the last
	require.NoError(t, err)
	require.Equal(t, 2, rest)
	require.True(t, ls.IsSingleton(3))

	rest, err = ls.Delete(2, 2) // delete the only member
	require.NoError(t, err)
	require.Zero(t, rest)
}

// ------------------------------------------------------------------------
// 3. Split and rotate.
// ------------------------------------------------------------------------

func TestSplitRotate(t *testing.T) {
	ls := listset.New(6)
	require.NoError(t, ls.FromString("{[a b c d e]}"))

	l1, l2, err := ls.Split(1, 3)
	require.NoError(t, err)
	require.Equal(t, 1, l1)
	require.Equal(t, 3, l2)
	require.Equal(t, "{[a b] [c d e] [f]}", ls.String())

	f, err := ls.Rotate(3, 5)
	require.NoError(t, err)
	require.Equal(t, 5, f)
	require.Equal(t, "{[a b] [e c d] [f]}", ls.String())
}

func TestContractChecks(t *testing.T) {
	ls := listset.New(5)
	require.NoError(t, ls.FromString("{[a b] [c d]}"))

	_, err := ls.Join(2, 3) // 2 is not a first
	require.ErrorIs(t, err, listset.ErrFirstRequired)
	_, err = ls.Join(1, 1)
	require.ErrorIs(t, err, listset.ErrSameList)
	_, _, err = ls.Split(1, 1)
	require.ErrorIs(t, err, listset.ErrFirstRequired)
	_, err = ls.Delete(9, 1)
	require.ErrorIs(t, err, listset.ErrItemRange)
}

// ------------------------------------------------------------------------
// 4. Sorting and round-trip.
// ------------------------------------------------------------------------

func TestSortAll(t *testing.T) {
	ls := listset.New(7)
	require.NoError(t, ls.FromString("{[c a b] [g e]}"))
	ls.SortAll(func(a, b int) bool { return a < b })
	require.Equal(t, "{[a b c] [d] [e g] [f]}", ls.String())
}

func TestRoundTrip(t *testing.T) {
	ls := listset.New(8)
	require.NoError(t, ls.FromString("{[a c] [b g] [e f] [h]}"))
	fresh := listset.New(8)
	require.NoError(t, fresh.FromString(ls.String()))
	require.True(t, fresh.Equals(ls))
}

func TestFromStringRejectsBadInput(t *testing.T) {
	ls := listset.New(4)
	require.NoError(t, ls.FromString("{[a b]}"))
	for _, bad := range []string{"", "{[a b]", "{[]}", "{[a a]}", "{[a][a]}", "{[a]} x"} {
		require.ErrorIs(t, ls.FromString(bad), listset.ErrParse, "input %q", bad)
		require.Equal(t, "{[a b] [c] [d]}", ls.String())
	}
}

// ------------------------------------------------------------------------
// 5. Item-uniqueness invariant under random surgery.
// ------------------------------------------------------------------------

func TestPartitionInvariant(t *testing.T) {
	const n = 30
	ls := listset.New(n)
	// A fixed surgery sequence touching every operation.
	mustJoin := func(a, b int) int {
		f, err := ls.Join(a, b)
		require.NoError(t, err)

		return f
	}
	f := mustJoin(1, 2)
	f = mustJoin(f, 3)
	g := mustJoin(10, 20)
	g = mustJoin(g, 15)
	f = mustJoin(f, g)
	_, err := ls.Delete(15, f)
	require.NoError(t, err)
	_, _, err = ls.Split(f, 10)
	require.NoError(t, err)

	// Every item belongs to exactly one list.
	owner := make(map[int]int)
	for i := 1; i <= n; i++ {
		if !ls.IsFirst(i) {
			continue
		}
		for j := i; j != 0; j = ls.Next(j) {
			_, dup := owner[j]
			require.False(t, dup, "item %d appears in two lists", j)
			owner[j] = i
		}
	}
	require.Len(t, owner, n)
}
