package egcolor

import (
	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/matching"
)

// ColorFromPalettes colors the uncolored edges at the given outputs (every
// output when none is named) using only colors the edge's group already
// owns: for each output it builds a bipartite palette graph — one node per
// group with an uncolored edge there, one node per usable palette color —
// and lets a maximum matching pick a distinct color per group.
//
// Edges of unmatched groups keep their previous color (typically 0).
// Returns true iff every processed output ended fully colored.
func (egc *EdgeGroupColors) ColorFromPalettes(outs ...int) bool {
	if len(outs) == 0 {
		outs = make([]int, 0, egc.g.No())
		for v := egc.g.Ni() + 1; v <= egc.g.N(); v++ {
			outs = append(outs, v)
		}
	}
	ok := true
	for _, v := range outs {
		if !egc.colorOutput(v) {
			ok = false
		}
	}

	return ok
}

// colorOutput runs the palette-matching step for one output.
func (egc *EdgeGroupColors) colorOutput(v int) bool {
	if !egc.g.IsOutput(v) {
		return false
	}

	// Collect the groups whose edge at v still needs a color. A group has
	// at most one edge per output, so each group appears once.
	var pending []int // edge ids
	for e := egc.g.FirstAt(v); e != 0; e = egc.g.NextAt(v, e) {
		if egc.color[e] == 0 && egc.eg.Group(e) != 0 {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return true
	}

	// Index the usable colors: in some pending group's palette and not
	// already used at v.
	colorIdx := make(map[int]int)
	var colors []int
	for _, e := range pending {
		grp := egc.eg.Group(e)
		for c := egc.FirstColor(grp); c != 0; c = egc.NextColor(grp, c) {
			if egc.usage[v][c] != 0 {
				continue
			}
			if _, ok := colorIdx[c]; !ok {
				colorIdx[c] = len(colors) + 1
				colors = append(colors, c)
			}
		}
	}

	// Palette graph: inputs = pending groups, outputs = usable colors.
	k := len(pending)
	pg := bigraph.New(k, len(colors), k*len(colors))
	for i, e := range pending {
		grp := egc.eg.Group(e)
		for c := egc.FirstColor(grp); c != 0; c = egc.NextColor(grp, c) {
			if egc.usage[v][c] != 0 {
				continue
			}
			if _, err := pg.AddEdge(i+1, k+colorIdx[c]); err != nil {
				return false
			}
		}
	}

	m := matching.HopcroftKarp(pg)
	for i, e := range pending {
		me := m.EdgeAt(i + 1)
		if me == 0 {
			continue // unmatched group: edge keeps its previous color
		}
		c := colors[pg.Output(me)-k-1]
		if err := egc.Color(e, c); err != nil {
			return false
		}
	}

	return m.Size() == k
}
