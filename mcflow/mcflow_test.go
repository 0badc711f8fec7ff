package mcflow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/mcflow"
)

// ------------------------------------------------------------------------
// 1. Hand-built networks.
// ------------------------------------------------------------------------

func TestSingleCheapPath(t *testing.T) {
	// 1 → 2 → 4 costs 1+1, 1 → 3 → 4 costs 3+3; capacities 1 each.
	nw := mcflow.New(4, 1, 4)
	a12, err := nw.AddArc(1, 2, 1, 1)
	require.NoError(t, err)
	_, err = nw.AddArc(2, 4, 1, 1)
	require.NoError(t, err)
	a13, err := nw.AddArc(1, 3, 1, 3)
	require.NoError(t, err)
	_, err = nw.AddArc(3, 4, 1, 3)
	require.NoError(t, err)

	flow, cost := nw.MinCostFlow()
	require.Equal(t, 2, flow)
	require.Equal(t, 8, cost)
	require.Equal(t, 1, nw.Flow(a12))
	require.Equal(t, 1, nw.Flow(a13))
}

func TestPrefersCheaperRoute(t *testing.T) {
	// Two parallel unit-capacity routes: the free one is saturated first,
	// then the cost-5 one carries the second unit.
	nw := mcflow.New(3, 1, 3)
	cheap, err := nw.AddArc(1, 2, 1, 0)
	require.NoError(t, err)
	_, err = nw.AddArc(2, 3, 1, 0)
	require.NoError(t, err)
	dear, err := nw.AddArc(1, 3, 1, 5)
	require.NoError(t, err)

	flow, cost := nw.MinCostFlow()
	require.Equal(t, 2, flow)
	require.Equal(t, 5, cost)
	require.Equal(t, 1, nw.Flow(cheap))
	require.Equal(t, 1, nw.Flow(dear))
}

func TestReroutingThroughResidual(t *testing.T) {
	// Classic diamond where the optimum needs the residual arc: the first
	// cheap path blocks the middle, the second must undo it.
	nw := mcflow.New(4, 1, 4)
	_, err := nw.AddArc(1, 2, 1, 1)
	require.NoError(t, err)
	_, err = nw.AddArc(2, 3, 1, 0)
	require.NoError(t, err)
	_, err = nw.AddArc(3, 4, 1, 1)
	require.NoError(t, err)
	_, err = nw.AddArc(1, 3, 1, 4)
	require.NoError(t, err)
	_, err = nw.AddArc(2, 4, 1, 4)
	require.NoError(t, err)

	flow, cost := nw.MinCostFlow()
	require.Equal(t, 2, flow)
	require.Equal(t, 10, cost, "1+0+1 then 4+0(undone)+4")
}

func TestContracts(t *testing.T) {
	nw := mcflow.New(2, 1, 2)
	_, err := nw.AddArc(0, 2, 1, 1)
	require.ErrorIs(t, err, mcflow.ErrNodeRange)
	_, err = nw.AddArc(1, 2, -1, 1)
	require.ErrorIs(t, err, mcflow.ErrBadArc)
	_, err = nw.AddArc(1, 2, 1, -1)
	require.ErrorIs(t, err, mcflow.ErrBadArc)

	flow, cost := nw.MinCostFlow()
	require.Zero(t, flow)
	require.Zero(t, cost)
}

// ------------------------------------------------------------------------
// 2. Random unit-capacity assignment vs permutation brute force.
// ------------------------------------------------------------------------

func TestAssignmentAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for trial := 0; trial < 100; trial++ {
		k := 2 + rng.Intn(4) // k workers, k jobs, complete cost matrix
		cost := make([][]int, k)
		for i := range cost {
			cost[i] = make([]int, k)
			for j := range cost[i] {
				cost[i][j] = rng.Intn(20)
			}
		}

		// Nodes: 1 = source, 2..k+1 workers, k+2..2k+1 jobs, 2k+2 = sink.
		src, snk := 1, 2*k+2
		nw := mcflow.New(snk, src, snk)
		for i := 0; i < k; i++ {
			_, err := nw.AddArc(src, 2+i, 1, 0)
			require.NoError(t, err)
			_, err = nw.AddArc(k+2+i, snk, 1, 0)
			require.NoError(t, err)
			for j := 0; j < k; j++ {
				_, err = nw.AddArc(2+i, k+2+j, 1, cost[i][j])
				require.NoError(t, err)
			}
		}
		flow, got := nw.MinCostFlow()
		require.Equal(t, k, flow)

		// Brute force over permutations.
		perm := make([]int, k)
		for i := range perm {
			perm[i] = i
		}
		best := 1 << 30
		var walk func(i int)
		walk = func(i int) {
			if i == k {
				total := 0
				for w, j := range perm {
					total += cost[w][j]
				}
				if total < best {
					best = total
				}

				return
			}
			for j := i; j < k; j++ {
				perm[i], perm[j] = perm[j], perm[i]
				walk(i + 1)
				perm[i], perm[j] = perm[j], perm[i]
			}
		}
		walk(0)
		require.Equal(t, best, got, "trial %d", trial)
	}
}
