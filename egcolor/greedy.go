package egcolor

import "github.com/katalvlaran/grafix/egroups"

// GreedyBounded colors eg's edges group by group with at most c colors:
// each edge first tries the colors its group already owns (cheapest — no
// new bind), then the smallest bindable color. Edges with no available
// color stay uncolored.
//
// Returns the coloring and whether it is complete.
// Complexity: O(m·c) worst case.
func GreedyBounded(eg *egroups.EdgeGroups, c int) (*EdgeGroupColors, bool) {
	egc := New(eg, c)
	g := eg.Graph()
	for u := 1; u <= g.Ni(); u++ {
		for grp := eg.FirstGroupAt(u); grp != 0; grp = eg.NextGroupAt(u, grp) {
			for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
				if col := egc.pickColor(e, grp); col != 0 {
					if err := egc.Color(e, col); err != nil {
						return egc, false
					}
				}
			}
		}
	}

	return egc, egc.Complete()
}

// pickColor returns the cheapest available color for e, or 0.
func (egc *EdgeGroupColors) pickColor(e, grp int) int {
	for col := egc.FirstColor(grp); col != 0; col = egc.NextColor(grp, col) {
		if egc.Avail(col, e) {
			return col
		}
	}
	for col := 1; col <= egc.c; col++ {
		if egc.Avail(col, e) {
			return col
		}
	}

	return 0
}
