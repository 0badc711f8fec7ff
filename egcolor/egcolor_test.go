package egcolor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/egcolor"
	"github.com/katalvlaran/grafix/egroups"
)

// buildTwoGroupInstance returns the groups A and B used across these
// tests: A at input a with edges to c and d, B at input b with edges to d
// and e.
func buildTwoGroupInstance(t *testing.T) (*egroups.EdgeGroups, int, int, map[string]int) {
	t.Helper()
	g := bigraph.New(2, 3, 6) // a,b inputs; c,d,e outputs
	edges := map[string]int{}
	add := func(name string, u, v int) {
		e, err := g.AddEdge(u, v)
		require.NoError(t, err)
		edges[name] = e
	}
	add("ac", 1, 3)
	add("ad", 1, 4)
	add("bd", 2, 4)
	add("be", 2, 5)

	eg := egroups.New(g, 2)
	ga, err := eg.Add(edges["ac"], 0)
	require.NoError(t, err)
	_, err = eg.Add(edges["ad"], ga)
	require.NoError(t, err)
	gb, err := eg.Add(edges["bd"], 0)
	require.NoError(t, err)
	_, err = eg.Add(edges["be"], gb)
	require.NoError(t, err)

	return eg, ga, gb, edges
}

// checkColorInvariants asserts U6 (outputs proper) and U7 (palette vs
// owner agreement) plus usage-count consistency.
func checkColorInvariants(t *testing.T, egc *egcolor.EdgeGroupColors) {
	t.Helper()
	eg := egc.Groups()
	g := eg.Graph()
	for v := g.Ni() + 1; v <= g.N(); v++ {
		for c := 1; c <= egc.C(); c++ {
			require.LessOrEqual(t, egc.Usage(v, c), 1, "output %d improper at color %d", v, c)
		}
	}
	for u := 1; u <= g.Ni(); u++ {
		for c := 1; c <= egc.C(); c++ {
			own := egc.Owner(u, c)
			inPalette := false
			if own != 0 {
				for pc := egc.FirstColor(own); pc != 0; pc = egc.NextColor(own, pc) {
					if pc == c {
						inPalette = true

						break
					}
				}
				require.True(t, inPalette, "owner set but color %d not in palette of %d", c, own)
			}
		}
	}
	// usage at a vertex equals the count of its incident edges so colored.
	for v := 1; v <= g.N(); v++ {
		count := make(map[int]int)
		for e := g.FirstAt(v); e != 0; e = g.NextAt(v, e) {
			if c := egc.ColorOf(e); c != 0 {
				count[c]++
			}
		}
		for c := 1; c <= egc.C(); c++ {
			require.Equal(t, count[c], egc.Usage(v, c), "usage drift at vertex %d color %d", v, c)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Bind/Release contracts.
// ------------------------------------------------------------------------

func TestBindRelease(t *testing.T) {
	eg, ga, gb, _ := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 3)

	require.NoError(t, egc.Bind(1, ga))
	require.Equal(t, ga, egc.Owner(1, 1))
	require.Equal(t, 1, egc.PaletteSize(ga))

	// Color 1 is taken at input a; group B hubs at input b, so it can
	// bind the same color independently.
	require.NoError(t, egc.Bind(1, gb))
	require.Equal(t, gb, egc.Owner(2, 1))

	// Rebinding an owned color at the same hub is refused.
	require.ErrorIs(t, egc.Bind(1, ga), egcolor.ErrOwned)

	require.NoError(t, egc.Release(1, ga))
	require.Zero(t, egc.Owner(1, 1))
	require.Zero(t, egc.PaletteSize(ga))
	require.ErrorIs(t, egc.Release(1, ga), egcolor.ErrOwned)
	checkColorInvariants(t, egc)
}

// ------------------------------------------------------------------------
// 2. Color: availability, implicit bind, uncolor, recolor (U8).
// ------------------------------------------------------------------------

func TestColorAvailabilityAndImplicitBind(t *testing.T) {
	eg, ga, gb, edges := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 2)

	// Implicit bind: coloring ad with 1 binds 1 to group A.
	require.True(t, egc.Avail(1, edges["ad"]))
	require.NoError(t, egc.Color(edges["ad"], 1))
	require.Equal(t, ga, egc.Owner(1, 1))
	require.Equal(t, 1, egc.ColorOf(edges["ad"]))
	require.Equal(t, 1, egc.Usage(4, 1))

	// Output conflict: bd also ends at output d, so color 1 is out.
	require.False(t, egc.Avail(1, edges["bd"]))
	require.ErrorIs(t, egc.Color(edges["bd"], 1), egcolor.ErrUnavailable)
	require.Zero(t, egc.ColorOf(edges["bd"]))

	// But be (output e) can take 1, binding it to B at input b.
	require.NoError(t, egc.Color(edges["be"], 1))
	require.Equal(t, gb, egc.Owner(2, 1))

	// A group reuses its own palette color at another output.
	require.True(t, egc.Avail(1, edges["ac"]))
	require.NoError(t, egc.Color(edges["ac"], 1))

	// Recolor and uncolor restore counts.
	require.NoError(t, egc.Color(edges["ac"], 2))
	require.Equal(t, 2, egc.ColorOf(edges["ac"]))
	require.Zero(t, egc.Usage(3, 1))
	require.NoError(t, egc.Uncolor(edges["ac"]))
	require.Zero(t, egc.ColorOf(edges["ac"]))
	require.Equal(t, 2, egc.NumberColored())
	checkColorInvariants(t, egc)
}

func TestColorContracts(t *testing.T) {
	eg, _, _, edges := buildTwoGroupInstance(t)
	g := eg.Graph()
	egc := egcolor.New(eg, 2)

	require.ErrorIs(t, egc.Color(99, 1), egcolor.ErrEdgeRange)
	require.ErrorIs(t, egc.Color(edges["ac"], 9), egcolor.ErrColorRange)

	loose, err := g.AddEdge(1, 5) // grouped nowhere
	require.NoError(t, err)
	require.ErrorIs(t, egc.Color(loose, 1), egcolor.ErrUngrouped)
}

// ------------------------------------------------------------------------
// 3. Palette matching across a shared output.
// ------------------------------------------------------------------------

func TestColorFromPalettes(t *testing.T) {
	eg, ga, gb, edges := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 3)
	require.NoError(t, egc.Bind(1, ga))
	require.NoError(t, egc.Bind(2, ga))
	require.NoError(t, egc.Bind(2, gb))
	require.NoError(t, egc.Bind(3, gb))

	require.True(t, egc.ColorFromPalettes())
	require.True(t, egc.Complete())

	// A's edges took colors from {1,2}, B's from {2,3}; at output d the
	// two edges differ and color 2 appears at most once.
	for _, name := range []string{"ac", "ad"} {
		require.Contains(t, []int{1, 2}, egc.ColorOf(edges[name]))
	}
	for _, name := range []string{"bd", "be"} {
		require.Contains(t, []int{2, 3}, egc.ColorOf(edges[name]))
	}
	require.NotEqual(t, egc.ColorOf(edges["ad"]), egc.ColorOf(edges["bd"]))
	require.LessOrEqual(t, egc.Usage(4, 2), 1)
	checkColorInvariants(t, egc)
}

func TestColorFromPalettesInfeasible(t *testing.T) {
	eg, ga, gb, _ := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 1)
	require.NoError(t, egc.Bind(1, ga))
	require.NoError(t, egc.Bind(1, gb))

	// Output d sees both groups but only one shared color: no matching
	// can finish, and the verdict is a result, not an error.
	require.False(t, egc.ColorFromPalettes())
	require.False(t, egc.Complete())
	checkColorInvariants(t, egc)
}

// ------------------------------------------------------------------------
// 4. Clear, equality, round-trip.
// ------------------------------------------------------------------------

func TestClear(t *testing.T) {
	eg, ga, _, edges := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 3)
	require.NoError(t, egc.Color(edges["ac"], 1))
	require.NoError(t, egc.Bind(2, ga))

	egc.Clear()
	require.Zero(t, egc.NumberColored())
	require.Zero(t, egc.ColorOf(edges["ac"]))
	require.Zero(t, egc.PaletteSize(ga))
	require.Zero(t, egc.Owner(1, 1))
	checkColorInvariants(t, egc)
}

func TestStringRoundTrip(t *testing.T) {
	eg, ga, gb, edges := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 3)
	require.NoError(t, egc.Bind(1, ga))
	require.NoError(t, egc.Bind(2, ga))
	require.NoError(t, egc.Bind(2, gb))
	require.NoError(t, egc.Bind(3, gb))
	require.NoError(t, egc.Color(edges["ac"], 1))
	require.NoError(t, egc.Color(edges["ad"], 2))
	require.NoError(t, egc.Color(edges["be"], 3))

	fresh := egcolor.New(eg, 3)
	require.NoError(t, fresh.FromString(egc.String()))
	require.True(t, fresh.Equals(egc))
	for _, e := range edges {
		require.Equal(t, egc.ColorOf(e), fresh.ColorOf(e))
	}
}

func TestFromStringRejectsBadInput(t *testing.T) {
	eg, _, _, _ := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 2)
	for _, bad := range []string{"x", "{1[a(c]}", "{0[a(c)]}", "{1[a(z)A]}", "{1[b(d .)A]}"} {
		require.ErrorIs(t, egc.FromString(bad), egcolor.ErrParse, "input %q", bad)
	}
}

// MaxColor and NumberColored summaries.
func TestSummaries(t *testing.T) {
	eg, _, _, edges := buildTwoGroupInstance(t)
	egc := egcolor.New(eg, 3)
	require.Zero(t, egc.MaxColor())
	require.NoError(t, egc.Color(edges["ac"], 2))
	require.Equal(t, 2, egc.MaxColor())
	require.Equal(t, 1, egc.NumberColored())
	require.False(t, egc.Complete())
}
