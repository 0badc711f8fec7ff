package bigraph

import (
	"errors"

	"github.com/katalvlaran/grafix/adt"
	"github.com/katalvlaran/grafix/listpair"
	"github.com/katalvlaran/grafix/listset"
)

// Sentinel errors for bigraph operations.
var (
	// ErrVertexRange indicates an endpoint outside the graph's vertex set,
	// or on the wrong side of the bipartition.
	ErrVertexRange = errors.New("bigraph: vertex out of range")

	// ErrEdgeRange indicates an unknown or unused edge id.
	ErrEdgeRange = errors.New("bigraph: edge out of range")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("bigraph: malformed input")
)

// freeEdges and liveEdges name the two sides of the edge-id list pair.
const (
	freeEdges = 1
	liveEdges = 2
)

// Graph is a bipartite graph with integer vertices and recycled edge ids.
type Graph struct {
	ni, no  int
	maxEdge int
	m       int

	left  []int // edge → input endpoint, 0 when the id is free
	right []int // edge → output endpoint

	edgeIDs  *listpair.ListPair // free vs live edge ids
	adjIn    *listset.ListSet   // edge ids partitioned by input endpoint
	adjOut   *listset.ListSet   // edge ids partitioned by output endpoint
	firstIn  []int              // input → first incident edge id
	firstOut []int              // output → first incident edge id
	degree   []int              // vertex → incident edge count
}

// New creates an empty bipartite graph with ni inputs, no outputs and room
// for maxEdge edges. Complexity: O(ni + no + maxEdge).
func New(ni, no, maxEdge int) *Graph {
	return &Graph{
		ni:       ni,
		no:       no,
		maxEdge:  maxEdge,
		left:     make([]int, maxEdge+1),
		right:    make([]int, maxEdge+1),
		edgeIDs:  listpair.New(maxEdge),
		adjIn:    listset.New(maxEdge),
		adjOut:   listset.New(maxEdge),
		firstIn:  make([]int, ni+1),
		firstOut: make([]int, ni+no+1),
		degree:   make([]int, ni+no+1),
	}
}

// N returns the total vertex count.
func (g *Graph) N() int { return g.ni + g.no }

// Ni returns the input count; inputs are 1..Ni.
func (g *Graph) Ni() int { return g.ni }

// No returns the output count; outputs are Ni+1..Ni+No.
func (g *Graph) No() int { return g.no }

// M returns the number of live edges.
func (g *Graph) M() int { return g.m }

// MaxEdge returns the edge-id capacity.
func (g *Graph) MaxEdge() int { return g.maxEdge }

// IsInput reports whether v is an input vertex.
func (g *Graph) IsInput(v int) bool { return v >= 1 && v <= g.ni }

// IsOutput reports whether v is an output vertex.
func (g *Graph) IsOutput(v int) bool { return v > g.ni && v <= g.ni+g.no }

// ValidEdge reports whether e is a live edge id.
func (g *Graph) ValidEdge(e int) bool {
	return e >= 1 && e <= g.maxEdge && g.left[e] != 0
}

// Input returns the input endpoint of edge e.
func (g *Graph) Input(e int) int {
	if !g.ValidEdge(e) {
		return 0
	}

	return g.left[e]
}

// Output returns the output endpoint of edge e.
func (g *Graph) Output(e int) int {
	if !g.ValidEdge(e) {
		return 0
	}

	return g.right[e]
}

// Mate returns the endpoint of e opposite to v.
func (g *Graph) Mate(e, v int) int {
	if !g.ValidEdge(e) {
		return 0
	}
	if g.left[e] == v {
		return g.right[e]
	}
	if g.right[e] == v {
		return g.left[e]
	}

	return 0
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	if v < 1 || v > g.N() {
		return 0
	}

	return g.degree[v]
}

// FirstAt returns the first edge incident to v, or 0.
func (g *Graph) FirstAt(v int) int {
	switch {
	case g.IsInput(v):
		return g.firstIn[v]
	case g.IsOutput(v):
		return g.firstOut[v]
	default:
		return 0
	}
}

// NextAt returns the edge after e in v's adjacency list, or 0.
func (g *Graph) NextAt(v, e int) int {
	if !g.ValidEdge(e) {
		return 0
	}
	switch {
	case g.left[e] == v:
		return g.adjIn.Next(e)
	case g.right[e] == v:
		return g.adjOut.Next(e)
	default:
		return 0
	}
}

// FindEdge returns an edge joining input u and output v, or 0.
// Complexity: O(min degree of the endpoints).
func (g *Graph) FindEdge(u, v int) int {
	if !g.IsInput(u) || !g.IsOutput(v) {
		return 0
	}
	if g.degree[u] <= g.degree[v] {
		for e := g.firstIn[u]; e != 0; e = g.adjIn.Next(e) {
			if g.right[e] == v {
				return e
			}
		}

		return 0
	}
	for e := g.firstOut[v]; e != 0; e = g.adjOut.Next(e) {
		if g.left[e] == u {
			return e
		}
	}

	return 0
}

// expandEdges grows the edge-id capacity.
func (g *Graph) expandEdges(maxEdge int) {
	maxEdge = adt.Grow(g.maxEdge, maxEdge)
	left := make([]int, maxEdge+1)
	right := make([]int, maxEdge+1)
	copy(left, g.left)
	copy(right, g.right)
	g.left, g.right = left, right
	g.edgeIDs.Expand(maxEdge) // new ids join list 1 (free)
	g.adjIn.Expand(maxEdge)
	g.adjOut.Expand(maxEdge)
	g.maxEdge = maxEdge
}

// Expand grows the edge-id capacity to at least maxEdge, preserving all
// live edges and their ids. Complexity: O(maxEdge).
func (g *Graph) Expand(maxEdge int) {
	if maxEdge > g.maxEdge {
		g.expandEdges(maxEdge)
	}
}

// AddEdge connects input u to output v and returns the new edge's id.
// Freed ids are recycled before capacity grows on demand.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if !g.IsInput(u) || !g.IsOutput(v) {
		return 0, ErrVertexRange
	}
	if g.edgeIDs.First(freeEdges) == 0 {
		g.expandEdges(g.maxEdge + 1)
	}
	e := g.edgeIDs.First(freeEdges)
	if err := g.edgeIDs.Swap(e, g.edgeIDs.Last(liveEdges)); err != nil {
		return 0, err
	}
	g.left[e], g.right[e] = u, v

	var err error
	if g.firstIn[u], err = g.adjIn.Join(g.firstIn[u], e); err != nil {
		return 0, err
	}
	if g.firstOut[v], err = g.adjOut.Join(g.firstOut[v], e); err != nil {
		return 0, err
	}
	g.degree[u]++
	g.degree[v]++
	g.m++

	return e, nil
}

// DelEdge removes edge e and recycles its id. Complexity: O(1).
func (g *Graph) DelEdge(e int) error {
	if !g.ValidEdge(e) {
		return ErrEdgeRange
	}
	u, v := g.left[e], g.right[e]

	var err error
	if g.firstIn[u], err = g.adjIn.Delete(e, g.firstIn[u]); err != nil {
		return err
	}
	if g.firstOut[v], err = g.adjOut.Delete(e, g.firstOut[v]); err != nil {
		return err
	}
	g.left[e], g.right[e] = 0, 0
	g.degree[u]--
	g.degree[v]--
	g.m--

	return g.edgeIDs.Swap(e, 0) // back to the head of the free list
}

// Equals reports structural equality: same bipartition sizes and, for each
// input, the same sequence of outputs in adjacency order. Edge ids are an
// allocation detail and are ignored. Complexity: O(n + m).
func (g *Graph) Equals(o *Graph) bool {
	if g.ni != o.ni || g.no != o.no || g.m != o.m {
		return false
	}
	for u := 1; u <= g.ni; u++ {
		e, f := g.FirstAt(u), o.FirstAt(u)
		for e != 0 && f != 0 {
			if g.right[e] != o.right[f] {
				return false
			}
			e, f = g.NextAt(u, e), o.NextAt(u, f)
		}
		if e != 0 || f != 0 {
			return false
		}
	}

	return true
}
