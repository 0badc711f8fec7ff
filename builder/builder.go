// Package builder provides deterministic constructors for random bipartite
// graphs and random edge groupings, used by the demo binary, benchmarks and
// stress tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical instance across platforms.
//   - Encapsulation: one RNG factory, no time-based sources hidden anywhere.
//   - Safety: no panics; only sentinel errors.
//
// Policy: seed == 0 selects a fixed default seed, so zero-valued configs
// stay reproducible.
package builder

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/egroups"
)

// Sentinel errors for instance construction.
var (
	// ErrBadShape indicates non-positive partition sizes or an edge count
	// that cannot be realized without parallel edges.
	ErrBadShape = errors.New("builder: invalid instance shape")
)

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand, mapping seed 0 to the
// stable default. Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomBigraph builds a bipartite graph with ni inputs, no outputs and m
// distinct random edges.
//
// Contract:
//   - ni ≥ 1, no ≥ 1, 0 ≤ m ≤ ni·no (else ErrBadShape).
//   - Edges are sampled by rejection, or taken from a shuffle of all pairs
//     when m > ni·no/2; the instance is simple (no parallel edges).
//
// Complexity: expected O(m) for m well below ni·no, O(ni·no) in the dense
// regime (where sampling switches to a shuffle).
func RandomBigraph(ni, no, m int, seed int64) (*bigraph.Graph, error) {
	if ni < 1 || no < 1 || m < 0 || m > ni*no {
		return nil, ErrBadShape
	}
	rng := rngFromSeed(seed)
	g := bigraph.New(ni, no, m)

	// Dense instances: shuffle all pairs instead of rejection sampling.
	if m*2 > ni*no {
		pairs := make([][2]int, 0, ni*no)
		for u := 1; u <= ni; u++ {
			for v := ni + 1; v <= ni+no; v++ {
				pairs = append(pairs, [2]int{u, v})
			}
		}
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		for _, p := range pairs[:m] {
			if _, err := g.AddEdge(p[0], p[1]); err != nil {
				return nil, err
			}
		}

		return g, nil
	}

	used := make(map[[2]int]bool, m)
	for g.M() < m {
		u := 1 + rng.Intn(ni)
		v := ni + 1 + rng.Intn(no)
		if used[[2]int{u, v}] {
			continue
		}
		used[[2]int{u, v}] = true
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RegularBigraph builds a bipartite graph where every input has exactly d
// distinct random outputs.
//
// Contract: ni ≥ 1, no ≥ 1, 1 ≤ d ≤ no (else ErrBadShape).
// Complexity: O(ni·no).
func RegularBigraph(ni, no, d int, seed int64) (*bigraph.Graph, error) {
	if ni < 1 || no < 1 || d < 1 || d > no {
		return nil, ErrBadShape
	}
	rng := rngFromSeed(seed)
	g := bigraph.New(ni, no, ni*d)

	outs := make([]int, no)
	for j := range outs {
		outs[j] = ni + 1 + j
	}
	for u := 1; u <= ni; u++ {
		rng.Shuffle(no, func(i, j int) { outs[i], outs[j] = outs[j], outs[i] })
		for _, v := range outs[:d] {
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomGroups partitions the edges of g into random groups, respecting the
// one-edge-per-output rule within each group. Every edge ends up in exactly
// one group. An input gets at most maxGroups groups unless an edge's output
// is already present in every group there (possible only when g has
// parallel edges); such an edge opens one more group.
//
// Complexity: O(m · maxGroups) worst case.
func RandomGroups(g *bigraph.Graph, maxGroups int, seed int64) (*egroups.EdgeGroups, error) {
	if maxGroups < 1 {
		return nil, ErrBadShape
	}
	rng := rngFromSeed(seed)
	eg := egroups.New(g, g.Ni()*maxGroups)

	for u := 1; u <= g.Ni(); u++ {
		var groups []int
		for e := g.FirstAt(u); e != 0; e = g.NextAt(u, e) {
			// Try the existing groups in random order; fall back to a new
			// group when the output collides everywhere (or by choice).
			placed := false
			if len(groups) > 0 && (len(groups) >= maxGroups || rng.Intn(2) == 0) {
				for _, k := range rng.Perm(len(groups)) {
					grp := groups[k]
					if eg.FindEdge(g.Output(e), grp) == 0 {
						if _, err := eg.Add(e, grp); err != nil {
							return nil, err
						}
						placed = true

						break
					}
				}
			}
			if !placed {
				grp, err := eg.Add(e, 0)
				if err != nil {
					return nil, err
				}
				groups = append(groups, grp)
			}
		}
	}

	return eg, nil
}
