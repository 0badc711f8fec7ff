package egcolor

import "github.com/katalvlaran/grafix/egroups"

// Layered colors eg's edges layer by layer: after sorting every input's
// groups by decreasing fanout, each round takes at most one unprocessed
// group per input. The round's thickness — the largest number of its edges
// sharing one output — is the number of fresh colors the layer consumes;
// within the layer the edges at each output take those colors in sequence.
//
// One group per input per layer keeps ownership conflict-free; disjoint
// color ranges across layers keep the rounds independent.
//
// Returns the coloring and whether it is complete (false as soon as a
// layer does not fit in the remaining colors; later layers are skipped).
// Complexity: O(m + layers·Ni).
func Layered(eg *egroups.EdgeGroups, c int) (*EdgeGroupColors, bool) {
	egc := New(eg, c)
	g := eg.Graph()
	if err := eg.SortAllGroups(); err != nil {
		return egc, false
	}

	next := make([]int, g.Ni()+1)
	for u := 1; u <= g.Ni(); u++ {
		next[u] = eg.FirstGroupAt(u)
	}

	base := 1
	for {
		var layer []int
		for u := 1; u <= g.Ni(); u++ {
			if next[u] != 0 {
				layer = append(layer, next[u])
				next[u] = eg.NextGroupAt(u, next[u])
			}
		}
		if len(layer) == 0 {
			return egc, egc.Complete()
		}

		// Thickness: the most loaded output within this layer.
		load := make(map[int]int)
		thickness := 0
		for _, grp := range layer {
			for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
				v := g.Output(e)
				load[v]++
				if load[v] > thickness {
					thickness = load[v]
				}
			}
		}
		if base+thickness-1 > c {
			return egc, false
		}

		// Deal the layer's colors out per output.
		offset := make(map[int]int)
		for _, grp := range layer {
			for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
				v := g.Output(e)
				if err := egc.Color(e, base+offset[v]); err != nil {
					return egc, false
				}
				offset[v]++
			}
		}
		base += thickness
	}
}
