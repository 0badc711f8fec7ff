// Package mcflow implements minimum-cost maximum flow on small auxiliary
// networks, via successive shortest augmenting paths with node potentials
// (Dijkstra on reduced costs).
//
// Networks here are built per call by their consumers — palette expansion
// builds one per output, sized in the tens of nodes — so construction is
// optimized for clarity and the solver for asymptotic soundness:
//
//	Time:   O(F · E log V) for total flow F; memory O(V + E).
//
// Arc ids come in reverse pairs (id ^ 1 is the residual twin), so Flow of
// a forward arc is simply the capacity accumulated on its twin.
//
// Errors:
//
//   - ErrNodeRange — arc endpoint outside 1..n
//   - ErrBadArc    — negative capacity or negative cost
package mcflow

import (
	"errors"

	"github.com/katalvlaran/grafix/dheap"
)

// Sentinel errors for network construction.
var (
	// ErrNodeRange indicates an arc endpoint outside the node range.
	ErrNodeRange = errors.New("mcflow: node out of range")

	// ErrBadArc indicates a negative capacity or cost.
	ErrBadArc = errors.New("mcflow: negative capacity or cost")
)

// unreached marks nodes not settled by the current Dijkstra pass.
const unreached = -1

// Network is a directed flow network over nodes 1..n.
type Network struct {
	n        int
	src, snk int

	// Arc a and a^1 are residual twins; forward arcs are even.
	to   []int
	cp   []int
	cost []int
	adj  [][]int // node → incident arc ids
}

// New creates an empty network with n nodes, source src and sink snk.
func New(n, src, snk int) *Network {
	return &Network{n: n, src: src, snk: snk, adj: make([][]int, n+1)}
}

// N returns the node count.
func (nw *Network) N() int { return nw.n }

// AddArc adds a u→v arc with the given capacity and nonnegative cost and
// returns its id. Complexity: O(1).
func (nw *Network) AddArc(u, v, capacity, cost int) (int, error) {
	if u < 1 || u > nw.n || v < 1 || v > nw.n {
		return 0, ErrNodeRange
	}
	if capacity < 0 || cost < 0 {
		return 0, ErrBadArc
	}
	a := len(nw.to)
	nw.to = append(nw.to, v, u)
	nw.cp = append(nw.cp, capacity, 0)
	nw.cost = append(nw.cost, cost, -cost)
	nw.adj[u] = append(nw.adj[u], a)
	nw.adj[v] = append(nw.adj[v], a^1)

	return a, nil
}

// Flow returns the flow carried by arc a (forward arcs only).
func (nw *Network) Flow(a int) int {
	if a < 0 || a >= len(nw.to) || a&1 == 1 {
		return 0
	}

	return nw.cp[a^1]
}

// MinCostFlow pushes flow from source to sink along cheapest augmenting
// paths until the sink is unreachable, and returns the total flow and its
// cost.
func (nw *Network) MinCostFlow() (flow, cost int) {
	pot := make([]int, nw.n+1)  // node potentials keep reduced costs ≥ 0
	dist := make([]int, nw.n+1) // shortest reduced distance per pass
	parc := make([]int, nw.n+1) // arc used to reach each node

	for {
		// Dijkstra on reduced costs over the residual network.
		for v := 1; v <= nw.n; v++ {
			dist[v] = unreached
			parc[v] = -1
		}
		h := dheap.New(nw.n, 4)
		dist[nw.src] = 0
		_ = h.Insert(nw.src, 0)
		for !h.Empty() {
			u := h.DeleteMin()
			for _, a := range nw.adj[u] {
				if nw.cp[a] == 0 {
					continue
				}
				v := nw.to[a]
				nd := dist[u] + nw.cost[a] + pot[u] - pot[v]
				if dist[v] == unreached {
					dist[v] = nd
					parc[v] = a
					_ = h.Insert(v, float64(nd))
				} else if nd < dist[v] {
					dist[v] = nd
					parc[v] = a
					_ = h.ChangeKey(v, float64(nd))
				}
			}
		}
		if dist[nw.snk] == unreached {
			return flow, cost
		}
		for v := 1; v <= nw.n; v++ {
			if dist[v] != unreached {
				pot[v] += dist[v]
			}
		}

		// Bottleneck along the parent-arc path, then augment.
		push := int(^uint(0) >> 1)
		for v := nw.snk; v != nw.src; {
			a := parc[v]
			if nw.cp[a] < push {
				push = nw.cp[a]
			}
			v = nw.to[a^1]
		}
		for v := nw.snk; v != nw.src; {
			a := parc[v]
			nw.cp[a] -= push
			nw.cp[a^1] += push
			cost += push * nw.cost[a]
			v = nw.to[a^1]
		}
		flow += push
	}
}
