package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/builder"
)

// ------------------------------------------------------------------------
// 1. Shapes and determinism.
// ------------------------------------------------------------------------

func TestRandomBigraphShape(t *testing.T) {
	g, err := builder.RandomBigraph(4, 6, 12, 7)
	require.NoError(t, err)
	require.Equal(t, 4, g.Ni())
	require.Equal(t, 6, g.No())
	require.Equal(t, 12, g.M())

	// Simple: no pair repeats.
	seen := make(map[[2]int]bool)
	for u := 1; u <= g.Ni(); u++ {
		for e := g.FirstAt(u); e != 0; e = g.NextAt(u, e) {
			p := [2]int{u, g.Output(e)}
			require.False(t, seen[p], "duplicate edge %v", p)
			seen[p] = true
		}
	}
}

func TestRandomBigraphDeterminism(t *testing.T) {
	a, err := builder.RandomBigraph(5, 5, 15, 3)
	require.NoError(t, err)
	b, err := builder.RandomBigraph(5, 5, 15, 3)
	require.NoError(t, err)
	require.True(t, a.Equals(b), "same seed must give the same instance")

	c, err := builder.RandomBigraph(5, 5, 15, 4)
	require.NoError(t, err)
	require.False(t, a.Equals(c), "different seeds should diverge")
}

func TestRandomBigraphDenseRegime(t *testing.T) {
	g, err := builder.RandomBigraph(3, 3, 9, 1) // complete
	require.NoError(t, err)
	require.Equal(t, 9, g.M())
}

func TestRegularBigraph(t *testing.T) {
	g, err := builder.RegularBigraph(5, 7, 3, 2)
	require.NoError(t, err)
	for u := 1; u <= g.Ni(); u++ {
		require.Equal(t, 3, g.Degree(u))
	}
	require.Equal(t, 15, g.M())
}

func TestBadShapes(t *testing.T) {
	_, err := builder.RandomBigraph(0, 3, 1, 1)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RandomBigraph(2, 2, 5, 1)
	require.ErrorIs(t, err, builder.ErrBadShape)
	_, err = builder.RegularBigraph(2, 2, 3, 1)
	require.ErrorIs(t, err, builder.ErrBadShape)
}

// ------------------------------------------------------------------------
// 2. Random groupings respect the group cap and cover every edge.
// ------------------------------------------------------------------------

func TestRandomGroups(t *testing.T) {
	g, err := builder.RandomBigraph(6, 8, 30, 9)
	require.NoError(t, err)
	eg, err := builder.RandomGroups(g, 3, 9)
	require.NoError(t, err)

	grouped := 0
	for u := 1; u <= g.Ni(); u++ {
		require.LessOrEqual(t, eg.GroupCount(u), 3)
		for grp := eg.FirstGroupAt(u); grp != 0; grp = eg.NextGroupAt(u, grp) {
			grouped += eg.Fanout(grp)
		}
	}
	require.Equal(t, g.M(), grouped, "every edge must land in a group")
}
