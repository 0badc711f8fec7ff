// Package matching implements maximum bipartite matching on a
// bigraph.Graph via Hopcroft–Karp: BFS builds a level graph from the free
// inputs, DFS sweeps a maximal set of disjoint shortest augmenting paths,
// and the two alternate until no augmenting path remains.
//
// Complexity: Time O(E·√V), Memory O(V).
package matching

import (
	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/list"
)

// unreached marks inputs not seen by the current BFS phase.
const unreached = -1

// Matching holds a matching of a bipartite graph as per-vertex edge ids.
type Matching struct {
	g     *bigraph.Graph
	match []int // vertex → matching edge id, 0 when exposed
	size  int
}

// Size returns the number of matched edges.
func (m *Matching) Size() int { return m.size }

// EdgeAt returns the matching edge at vertex v, or 0.
func (m *Matching) EdgeAt(v int) int {
	if v < 1 || v > m.g.N() {
		return 0
	}

	return m.match[v]
}

// MateOf returns the vertex matched with v, or 0.
func (m *Matching) MateOf(v int) int {
	e := m.EdgeAt(v)
	if e == 0 {
		return 0
	}

	return m.g.Mate(e, v)
}

// IsMatched reports whether v is covered by the matching.
func (m *Matching) IsMatched(v int) bool { return m.EdgeAt(v) != 0 }

// Perfect reports whether every input is matched.
func (m *Matching) Perfect() bool { return m.size == m.g.Ni() }

// hkState carries the per-phase scratch of Hopcroft–Karp.
type hkState struct {
	g     *bigraph.Graph
	match []int
	level []int // input → BFS level, unreached outside the level graph
	iter  []int // input → next edge to probe in the DFS sweep
}

// HopcroftKarp computes a maximum matching of g.
func HopcroftKarp(g *bigraph.Graph) *Matching {
	st := &hkState{
		g:     g,
		match: make([]int, g.N()+1),
		level: make([]int, g.Ni()+1),
		iter:  make([]int, g.Ni()+1),
	}
	size := 0
	for st.bfs() {
		for u := 1; u <= g.Ni(); u++ {
			st.iter[u] = g.FirstAt(u)
		}
		for u := 1; u <= g.Ni(); u++ {
			if st.match[u] == 0 && st.dfs(u) {
				size++
			}
		}
	}

	return &Matching{g: g, match: st.match, size: size}
}

// bfs layers the inputs by alternating-path distance from the free ones
// and reports whether some augmenting path exists.
func (st *hkState) bfs() bool {
	q := list.New(st.g.Ni())
	for u := 1; u <= st.g.Ni(); u++ {
		if st.match[u] == 0 {
			st.level[u] = 0
			_ = q.Enq(u)
		} else {
			st.level[u] = unreached
		}
	}

	found := false
	for !q.Empty() {
		u := q.Deq()
		for e := st.g.FirstAt(u); e != 0; e = st.g.NextAt(u, e) {
			v := st.g.Output(e)
			me := st.match[v]
			if me == 0 {
				found = true

				continue
			}
			w := st.g.Input(me)
			if st.level[w] == unreached {
				st.level[w] = st.level[u] + 1
				_ = q.Enq(w)
			}
		}
	}

	return found
}

// dfs extends one shortest augmenting path from input u, flipping matched
// edges along the way.
func (st *hkState) dfs(u int) bool {
	for ; st.iter[u] != 0; st.iter[u] = st.g.NextAt(u, st.iter[u]) {
		e := st.iter[u]
		v := st.g.Output(e)
		me := st.match[v]
		if me == 0 {
			st.match[v], st.match[u] = e, e

			return true
		}
		w := st.g.Input(me)
		if st.level[w] == st.level[u]+1 && st.dfs(w) {
			st.match[v], st.match[u] = e, e

			return true
		}
	}
	st.level[u] = unreached // dead end: prune u for this phase

	return false
}
