// Package setcover implements weighted set cover over a bipartite
// encoding: inputs are sets, outputs are elements, and an edge says the
// set contains the element.
//
// Two classic clients:
//
//   - Greedy repeatedly takes the set minimizing weight/uncovered, keyed
//     in an addressable heap so covering an element adjusts every
//     containing set in O(log n). An optional type array restricts the
//     cover to at most one set per type. Approximation: H(d_max).
//   - PrimalDual raises a dual variable per uncovered element by the
//     minimum slack of its sets, zeroing exactly one slack per step and
//     taking that set. Approximation: f (max element frequency), and the
//     returned duals certify the bound.
//
// Elements no set contains make full coverage impossible; both clients
// then return the best partial cover with complete == false — a result,
// not an error.
//
// Complexity: Greedy O((n + m) log n); PrimalDual O(n + m).
package setcover

import (
	"errors"

	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/dheap"
)

// Sentinel errors for set-cover inputs.
var (
	// ErrShape indicates weight/type arrays not covering the set range.
	ErrShape = errors.New("setcover: weight or type array mismatch")

	// ErrBadWeight indicates a negative set weight.
	ErrBadWeight = errors.New("setcover: negative weight")
)

// Cover is the result of a set-cover client.
type Cover struct {
	Sets     []int   // chosen set ids, in selection order
	Cost     float64 // total weight of the chosen sets
	Covered  int     // elements covered
	Complete bool    // every element covered
}

// validate checks the shared input contract: weight[1..Ni] present and
// nonnegative, typ (when given) sized like weight.
func validate(g *bigraph.Graph, weight []float64, typ []int) error {
	if len(weight) < g.Ni()+1 {
		return ErrShape
	}
	if typ != nil && len(typ) < g.Ni()+1 {
		return ErrShape
	}
	for s := 1; s <= g.Ni(); s++ {
		if weight[s] < 0 {
			return ErrBadWeight
		}
	}

	return nil
}

// Greedy computes a cover by repeatedly taking the set with the smallest
// weight-per-newly-covered-element ratio. With a non-nil typ, choosing a
// set evicts every other set of the same type.
func Greedy(g *bigraph.Graph, weight []float64, typ []int) (*Cover, error) {
	if err := validate(g, weight, typ); err != nil {
		return nil, err
	}

	uncovered := make([]int, g.Ni()+1)
	h := dheap.New(g.Ni(), 4)
	for s := 1; s <= g.Ni(); s++ {
		uncovered[s] = g.Degree(s)
		if uncovered[s] > 0 {
			if err := h.Insert(s, weight[s]/float64(uncovered[s])); err != nil {
				return nil, err
			}
		}
	}

	// Type index, for evictions.
	var byType map[int][]int
	if typ != nil {
		byType = make(map[int][]int)
		for s := 1; s <= g.Ni(); s++ {
			byType[typ[s]] = append(byType[typ[s]], s)
		}
	}

	covered := make([]bool, g.N()+1)
	remaining := 0
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if g.Degree(v) > 0 {
			remaining++
		}
	}

	cover := &Cover{}
	for remaining > 0 && !h.Empty() {
		s := h.DeleteMin()
		cover.Sets = append(cover.Sets, s)
		cover.Cost += weight[s]

		for e := g.FirstAt(s); e != 0; e = g.NextAt(s, e) {
			v := g.Output(e)
			if covered[v] {
				continue
			}
			covered[v] = true
			cover.Covered++
			remaining--
			// Every other set containing v just lost a prospect.
			for f := g.FirstAt(v); f != 0; f = g.NextAt(v, f) {
				s2 := g.Input(f)
				if !h.Contains(s2) {
					continue
				}
				uncovered[s2]--
				if uncovered[s2] == 0 {
					if err := h.Delete(s2); err != nil {
						return nil, err
					}
				} else if err := h.ChangeKey(s2, weight[s2]/float64(uncovered[s2])); err != nil {
					return nil, err
				}
			}
		}

		if typ != nil {
			for _, s2 := range byType[typ[s]] {
				if s2 != s && h.Contains(s2) {
					if err := h.Delete(s2); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	cover.Complete = remaining == 0 && isolatedFree(g)

	return cover, nil
}

// isolatedFree reports whether every element is contained in some set.
func isolatedFree(g *bigraph.Graph) bool {
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if g.Degree(v) == 0 {
			return false
		}
	}

	return true
}

// PrimalDual computes a cover by the dual-raising rule and returns the
// element duals alongside the cover (Σ y bounds the optimum from below).
func PrimalDual(g *bigraph.Graph, weight []float64) (*Cover, []float64, error) {
	if err := validate(g, weight, nil); err != nil {
		return nil, nil, err
	}

	slack := make([]float64, g.Ni()+1)
	copy(slack, weight[:g.Ni()+1])
	y := make([]float64, g.N()+1)
	covered := make([]bool, g.N()+1)
	inCover := make([]bool, g.Ni()+1)

	cover := &Cover{Complete: true}
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if covered[v] {
			continue
		}
		if g.Degree(v) == 0 {
			cover.Complete = false

			continue
		}

		// Raise y[v] by the minimum slack among v's sets.
		delta := -1.0
		chosen := 0
		for e := g.FirstAt(v); e != 0; e = g.NextAt(v, e) {
			s := g.Input(e)
			if delta < 0 || slack[s] < delta {
				delta, chosen = slack[s], s
			}
		}
		y[v] = delta
		for e := g.FirstAt(v); e != 0; e = g.NextAt(v, e) {
			slack[g.Input(e)] -= delta
		}

		// Exactly one slack hit zero (ties break to the first scanned);
		// its set joins the cover and claims all its elements.
		if !inCover[chosen] {
			inCover[chosen] = true
			cover.Sets = append(cover.Sets, chosen)
			cover.Cost += weight[chosen]
		}
		for e := g.FirstAt(chosen); e != 0; e = g.NextAt(chosen, e) {
			w := g.Output(e)
			if !covered[w] {
				covered[w] = true
				cover.Covered++
			}
		}
	}

	return cover, y, nil
}
