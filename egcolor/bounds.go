package egcolor

import "github.com/katalvlaran/grafix/egroups"

// LowerBound returns a floor on the colors any valid coloring of eg needs:
// every input requires one palette color per group, and every output one
// color per incident edge. Complexity: O(Ni + No).
func LowerBound(eg *egroups.EdgeGroups) int {
	g := eg.Graph()
	lb := 0
	for u := 1; u <= g.Ni(); u++ {
		if k := eg.GroupCount(u); k > lb {
			lb = k
		}
	}
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if d := g.Degree(v); d > lb {
			lb = d
		}
	}

	return lb
}

// UpperBound returns a ceiling sufficient for the greedy strategy: when an
// edge is colored, at most (input degree - 1) colors are pinned by foreign
// palettes at its input — every colored edge binds at most one — and at
// most (output degree - 1) by siblings at its output.
// Complexity: O(Ni + No).
func UpperBound(eg *egroups.EdgeGroups) int {
	g := eg.Graph()
	maxIn, maxOut := 0, 0
	for u := 1; u <= g.Ni(); u++ {
		if d := g.Degree(u); d > maxIn {
			maxIn = d
		}
	}
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if d := g.Degree(v); d > maxOut {
			maxOut = d
		}
	}
	if maxIn == 0 {
		return 0
	}

	return maxIn + maxOut - 1
}
