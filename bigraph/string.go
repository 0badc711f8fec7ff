package bigraph

import (
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// String renders the canonical form "{a[f h] b[g]}": each input with at
// least one edge, followed by the outputs of its edges in adjacency order.
// Vertex letters index the whole vertex set 1..N.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := false
	for u := 1; u <= g.ni; u++ {
		if g.firstIn[u] == 0 {
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		b.WriteString(adt.ItemString(u, g.N()))
		b.WriteByte('[')
		for e := g.firstIn[u]; e != 0; e = g.adjIn.Next(e) {
			if e != g.firstIn[u] {
				b.WriteByte(' ')
			}
			b.WriteString(adt.ItemString(g.right[e], g.N()))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// parsedEdge is one input→output adjacency read by parse.
type parsedEdge struct{ u, v int }

// parse reads the "{a[f h] b[g]}" grammar and returns the edges plus the
// largest input and output mentioned.
func parse(s string) (edges []parsedEdge, maxIn, maxOut int, err error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return nil, 0, 0, ErrParse
	}
	for {
		if sc.Verify('}') {
			break
		}
		u, ok := sc.NextItem()
		if !ok || u == 0 || !sc.Verify('[') {
			return nil, 0, 0, ErrParse
		}
		if u > maxIn {
			maxIn = u
		}
		for {
			if sc.Verify(']') {
				break
			}
			v, ok := sc.NextItem()
			if !ok || v == 0 {
				return nil, 0, 0, ErrParse
			}
			if v > maxOut {
				maxOut = v
			}
			edges = append(edges, parsedEdge{u, v})
		}
	}
	if !sc.Done() {
		return nil, 0, 0, ErrParse
	}
	// Outputs must live strictly above every input.
	if len(edges) > 0 && maxOut <= maxIn {
		return nil, 0, 0, ErrParse
	}

	return edges, maxIn, maxOut, nil
}

// FromString replaces the graph with the one encoded in s. The receiver's
// dimensions are kept when the parsed content fits them; otherwise the
// bipartition is inferred with inputs 1..(smallest output - 1).
// On failure the receiver is left unchanged.
func (g *Graph) FromString(s string) error {
	edges, maxIn, maxOut, err := parse(s)
	if err != nil {
		return err
	}

	ni, no, maxEdge := g.ni, g.no, g.maxEdge
	fits := maxIn <= ni && maxOut <= ni+no && len(edges) <= maxEdge
	if !fits {
		minOut := maxOut
		for _, pe := range edges {
			if pe.v < minOut {
				minOut = pe.v
			}
		}
		ni = minOut - 1
		no = maxOut - ni
		maxEdge = len(edges)
	}
	if ni < maxIn {
		return ErrParse // an "output" collides with the input range
	}

	fresh := New(ni, no, maxEdge)
	for _, pe := range edges {
		if !fresh.IsInput(pe.u) || !fresh.IsOutput(pe.v) {
			return ErrParse
		}
		if _, err = fresh.AddEdge(pe.u, pe.v); err != nil {
			return ErrParse
		}
	}
	*g = *fresh

	return nil
}
