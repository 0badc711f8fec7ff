package egcolor

import (
	"github.com/katalvlaran/grafix/egroups"
	"github.com/katalvlaran/grafix/mcflow"
)

// FlowPalettes colors eg's edges output by output, pricing palette growth
// with a min-cost flow. For each output it builds the palette-expansion
// network — source, one node per group with an uncolored edge there, one
// node per color usable at the group's hub, sink; all capacities 1; a
// group→color arc costs nothing when the group already owns the color and
// the group's current palette size otherwise — so cheap solutions reuse
// palettes and spread the forced binds across the thinnest palettes.
//
// A full flow (one unit per pending group) names the binds to perform;
// ColorFromPalettes then matches the output's edges onto the palettes.
//
// Returns the coloring and whether every output ended fully colored.
// Complexity per output: O(k·E log V) on a network of k groups × ≤c colors.
func FlowPalettes(eg *egroups.EdgeGroups, c int) (*EdgeGroupColors, bool) {
	egc := New(eg, c)
	g := eg.Graph()
	ok := true
	for v := g.Ni() + 1; v <= g.N(); v++ {
		if !egc.expandAndColor(v) {
			ok = false
		}
	}

	return egc, ok
}

// expandAndColor runs the palette-expansion step for one output.
func (egc *EdgeGroupColors) expandAndColor(v int) bool {
	g, eg := egc.g, egc.eg

	var pending []int // edges at v still uncolored
	for e := g.FirstAt(v); e != 0; e = g.NextAt(v, e) {
		if egc.color[e] == 0 && eg.Group(e) != 0 {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return true
	}

	// Usable colors across the pending groups, deduplicated.
	k := len(pending)
	colorIdx := make(map[int]int)
	var colors []int
	usable := func(col, grp int) bool {
		if egc.usage[v][col] != 0 {
			return false
		}
		own := egc.owner[eg.Hub(grp)][col]

		return own == 0 || own == grp
	}
	for _, e := range pending {
		grp := eg.Group(e)
		for col := 1; col <= egc.c; col++ {
			if !usable(col, grp) {
				continue
			}
			if _, seen := colorIdx[col]; !seen {
				colorIdx[col] = len(colors) + 1
				colors = append(colors, col)
			}
		}
	}

	// Network layout: 1 = source, 2..k+1 groups, then colors, then sink.
	src := 1
	snk := k + len(colors) + 2
	nw := mcflow.New(snk, src, snk)
	type groupArc struct{ arc, grp, col int }
	var arcs []groupArc
	for i, e := range pending {
		grp := eg.Group(e)
		if _, err := nw.AddArc(src, 1+i+1, 1, 0); err != nil {
			return false
		}
		for col := 1; col <= egc.c; col++ {
			if !usable(col, grp) {
				continue
			}
			cost := 0
			if egc.owner[eg.Hub(grp)][col] != grp {
				cost = egc.palSize[grp]
			}
			a, err := nw.AddArc(1+i+1, k+1+colorIdx[col], 1, cost)
			if err != nil {
				return false
			}
			arcs = append(arcs, groupArc{arc: a, grp: grp, col: col})
		}
	}
	for j := range colors {
		if _, err := nw.AddArc(k+1+j+1, snk, 1, 0); err != nil {
			return false
		}
	}

	flow, _ := nw.MinCostFlow()
	for _, ga := range arcs {
		if nw.Flow(ga.arc) == 0 {
			continue
		}
		if egc.owner[eg.Hub(ga.grp)][ga.col] == 0 {
			if err := egc.Bind(ga.col, ga.grp); err != nil {
				return false
			}
		}
	}

	return egc.colorOutput(v) && flow == k
}
