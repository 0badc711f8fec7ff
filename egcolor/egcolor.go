package egcolor

import (
	"errors"

	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/egroups"
	"github.com/katalvlaran/grafix/listset"
)

// Sentinel errors for egcolor operations.
var (
	// ErrColorRange indicates a color outside 1..C.
	ErrColorRange = errors.New("egcolor: color out of range")

	// ErrEdgeRange indicates an unknown or unused edge id.
	ErrEdgeRange = errors.New("egcolor: edge out of range")

	// ErrUngrouped indicates the edge belongs to no group.
	ErrUngrouped = errors.New("egcolor: edge belongs to no group")

	// ErrOwned indicates a Bind/Release against the ownership invariant.
	ErrOwned = errors.New("egcolor: color ownership conflict")

	// ErrUnavailable indicates Color was given an unavailable color.
	ErrUnavailable = errors.New("egcolor: color not available for edge")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("egcolor: malformed input")
)

// EdgeGroupColors layers colors and palettes over an edge grouping.
type EdgeGroupColors struct {
	eg *egroups.EdgeGroups
	g  *bigraph.Graph
	c  int // color universe 1..c

	color        []int            // edge → color, 0 = uncolored
	byColor      *listset.ListSet // edge ids partitioned by color
	firstOfColor []int            // color → first edge of its list (0 = uncolored list)

	usage [][]int // vertex → color → incident edges with that color

	pal        []*listset.ListSet // per input: colors partitioned into unused + palettes
	unused     []int              // input → first color of the unused pool
	owner      [][]int            // input → color → owning group (0 = none)
	firstColor []int              // group → first palette color
	palSize    []int              // group → palette size

	numColored int
}

// New creates an all-uncolored coloring structure over eg with colors 1..c.
// Complexity: O((Ni+No)·c + MaxEdge).
func New(eg *egroups.EdgeGroups, c int) *EdgeGroupColors {
	g := eg.Graph()
	egc := &EdgeGroupColors{
		eg:           eg,
		g:            g,
		c:            c,
		color:        make([]int, g.MaxEdge()+1),
		byColor:      listset.New(g.MaxEdge()),
		firstOfColor: make([]int, c+1),
		usage:        make([][]int, g.N()+1),
		pal:          make([]*listset.ListSet, g.Ni()+1),
		unused:       make([]int, g.Ni()+1),
		owner:        make([][]int, g.Ni()+1),
		firstColor:   make([]int, eg.Ng()+1),
		palSize:      make([]int, eg.Ng()+1),
	}
	for v := 1; v <= g.N(); v++ {
		egc.usage[v] = make([]int, c+1)
	}
	for u := 1; u <= g.Ni(); u++ {
		egc.pal[u] = listset.New(c)
		egc.owner[u] = make([]int, c+1)
		// All colors start in the unused pool, ascending.
		f := 0
		for col := 1; col <= c; col++ {
			f, _ = egc.pal[u].Join(f, col)
		}
		egc.unused[u] = f
	}
	// All live edges start on the uncolored list.
	f := 0
	for u := 1; u <= g.Ni(); u++ {
		for e := g.FirstAt(u); e != 0; e = g.NextAt(u, e) {
			f, _ = egc.byColor.Join(f, e)
		}
	}
	egc.firstOfColor[0] = f

	return egc
}

// Groups returns the underlying edge grouping (referenced, not owned).
func (egc *EdgeGroupColors) Groups() *egroups.EdgeGroups { return egc.eg }

// C returns the size of the color universe.
func (egc *EdgeGroupColors) C() int { return egc.c }

// ValidColor reports whether c is a usable color.
func (egc *EdgeGroupColors) ValidColor(c int) bool { return c >= 1 && c <= egc.c }

// Color of edge e (0 when uncolored).
func (egc *EdgeGroupColors) ColorOf(e int) int {
	if e < 1 || e >= len(egc.color) {
		return 0
	}

	return egc.color[e]
}

// Usage returns the number of edges at vertex v colored c.
func (egc *EdgeGroupColors) Usage(v, c int) int {
	if v < 1 || v > egc.g.N() || !egc.ValidColor(c) {
		return 0
	}

	return egc.usage[v][c]
}

// Owner returns the group owning color c at input u, or 0.
func (egc *EdgeGroupColors) Owner(u, c int) int {
	if !egc.g.IsInput(u) || !egc.ValidColor(c) {
		return 0
	}

	return egc.owner[u][c]
}

// PaletteSize returns the number of colors bound to group grp.
func (egc *EdgeGroupColors) PaletteSize(grp int) int {
	if grp < 1 || grp > egc.eg.Ng() {
		return 0
	}

	return egc.palSize[grp]
}

// FirstColor returns the first color of grp's palette, or 0.
func (egc *EdgeGroupColors) FirstColor(grp int) int {
	if grp < 1 || grp > egc.eg.Ng() {
		return 0
	}

	return egc.firstColor[grp]
}

// NextColor returns the color after c in grp's palette, or 0.
func (egc *EdgeGroupColors) NextColor(grp, c int) int {
	u := egc.eg.Hub(grp)
	if u == 0 || egc.Owner(u, c) != grp {
		return 0
	}

	return egc.pal[u].Next(c)
}

// FirstUnused returns the first color at input u not bound to any group
// there, or 0.
func (egc *EdgeGroupColors) FirstUnused(u int) int {
	if !egc.g.IsInput(u) {
		return 0
	}

	return egc.unused[u]
}

// NextUnused returns the unbound color after c at input u, or 0.
func (egc *EdgeGroupColors) NextUnused(u, c int) int {
	if egc.Owner(u, c) != 0 || !egc.g.IsInput(u) || !egc.ValidColor(c) {
		return 0
	}

	return egc.pal[u].Next(c)
}

// FirstEdgeOf returns the first edge colored c, or 0. Color 0 walks the
// uncolored edges.
func (egc *EdgeGroupColors) FirstEdgeOf(c int) int {
	if c < 0 || c > egc.c {
		return 0
	}

	return egc.firstOfColor[c]
}

// NextEdgeOf returns the edge after e among those colored c, or 0.
func (egc *EdgeGroupColors) NextEdgeOf(c, e int) int {
	if egc.ColorOf(e) != c {
		return 0
	}

	return egc.byColor.Next(e)
}

// NumberColored returns the number of colored edges.
func (egc *EdgeGroupColors) NumberColored() int { return egc.numColored }

// Complete reports whether every edge of the graph is colored.
func (egc *EdgeGroupColors) Complete() bool { return egc.numColored == egc.g.M() }

// MaxColor returns the largest color currently on some edge.
func (egc *EdgeGroupColors) MaxColor() int {
	for c := egc.c; c >= 1; c-- {
		if egc.firstOfColor[c] != 0 {
			return c
		}
	}

	return 0
}

// Avail reports whether color c may be placed on edge e: c == 0 always,
// otherwise the output must be free of c and the hub's owner must be
// either nobody or e's own group.
func (egc *EdgeGroupColors) Avail(c, e int) bool {
	if c == 0 {
		return true
	}
	if !egc.ValidColor(c) || !egc.g.ValidEdge(e) {
		return false
	}
	grp := egc.eg.Group(e)
	if grp == 0 {
		return false
	}
	if egc.usage[egc.g.Output(e)][c] != 0 {
		return false
	}
	own := egc.owner[egc.g.Input(e)][c]

	return own == 0 || own == grp
}

// Bind moves color c from the unused pool of grp's hub into grp's palette.
// Preconditions: c unowned at the hub and unused there. Complexity: O(1).
func (egc *EdgeGroupColors) Bind(c, grp int) error {
	if !egc.ValidColor(c) {
		return ErrColorRange
	}
	if !egc.eg.ValidGroup(grp) {
		return egroups.ErrGroupRange
	}
	u := egc.eg.Hub(grp)
	if egc.owner[u][c] != 0 || egc.usage[u][c] != 0 {
		return ErrOwned
	}

	var err error
	if egc.unused[u], err = egc.pal[u].Delete(c, egc.unused[u]); err != nil {
		return err
	}
	if egc.firstColor[grp], err = egc.pal[u].Join(egc.firstColor[grp], c); err != nil {
		return err
	}
	egc.owner[u][c] = grp
	egc.palSize[grp]++

	return nil
}

// Release returns color c from grp's palette to the hub's unused pool.
// Precondition: grp owns c and no edge of grp currently carries c.
// Complexity: O(1).
func (egc *EdgeGroupColors) Release(c, grp int) error {
	if !egc.ValidColor(c) {
		return ErrColorRange
	}
	if !egc.eg.ValidGroup(grp) {
		return egroups.ErrGroupRange
	}
	u := egc.eg.Hub(grp)
	if egc.owner[u][c] != grp {
		return ErrOwned
	}
	if egc.usage[u][c] != 0 {
		return ErrOwned // colored edges still pin the palette entry
	}

	var err error
	if egc.firstColor[grp], err = egc.pal[u].Delete(c, egc.firstColor[grp]); err != nil {
		return err
	}
	if egc.unused[u], err = egc.pal[u].Join(egc.unused[u], c); err != nil {
		return err
	}
	egc.owner[u][c] = 0
	egc.palSize[grp]--

	return nil
}

// uncolor strips e's current color, if any.
func (egc *EdgeGroupColors) uncolor(e int) error {
	old := egc.color[e]
	if old == 0 {
		return nil
	}
	u, v := egc.g.Input(e), egc.g.Output(e)

	var err error
	if egc.firstOfColor[old], err = egc.byColor.Delete(e, egc.firstOfColor[old]); err != nil {
		return err
	}
	if egc.firstOfColor[0], err = egc.byColor.Join(egc.firstOfColor[0], e); err != nil {
		return err
	}
	egc.color[e] = 0
	egc.usage[u][old]--
	egc.usage[v][old]--
	egc.numColored--

	return nil
}

// Color sets edge e's color to c (0 uncolors). When c is unowned at the
// hub of e's group, an implicit Bind(c, group) is performed first — Color
// deliberately mutates palettes as well as edge colors. Precondition: c is
// available for e. Complexity: O(1).
func (egc *EdgeGroupColors) Color(e, c int) error {
	if !egc.g.ValidEdge(e) {
		return ErrEdgeRange
	}
	if c < 0 || c > egc.c {
		return ErrColorRange
	}
	grp := egc.eg.Group(e)
	if grp == 0 {
		return ErrUngrouped
	}
	if c == egc.color[e] {
		return nil
	}
	if !egc.Avail(c, e) {
		return ErrUnavailable
	}
	if err := egc.uncolor(e); err != nil {
		return err
	}
	if c == 0 {
		return nil
	}

	u, v := egc.g.Input(e), egc.g.Output(e)
	if egc.owner[u][c] == 0 {
		if err := egc.Bind(c, grp); err != nil {
			return err
		}
	}

	var err error
	if egc.firstOfColor[0], err = egc.byColor.Delete(e, egc.firstOfColor[0]); err != nil {
		return err
	}
	if egc.firstOfColor[c], err = egc.byColor.Join(egc.firstOfColor[c], e); err != nil {
		return err
	}
	egc.color[e] = c
	egc.usage[u][c]++
	egc.usage[v][c]++
	egc.numColored++

	return nil
}

// Uncolor removes e's color. Complexity: O(1).
func (egc *EdgeGroupColors) Uncolor(e int) error { return egc.Color(e, 0) }

// Clear uncolors every edge and empties every palette.
// Complexity: O((Ni+No)·C + MaxEdge).
func (egc *EdgeGroupColors) Clear() {
	*egc = *New(egc.eg, egc.c)
}

// Equals reports whether both colorings sit over equal groupings and give
// every group the same palette as a color set (order irrelevant). Group
// ids must correspond, which holds for structures built over the same
// grouping (the round-trip case).
func (egc *EdgeGroupColors) Equals(o *EdgeGroupColors) bool {
	if !egc.eg.Equals(o.eg) {
		return false
	}
	ng := egc.eg.Ng()
	if o.eg.Ng() < ng {
		ng = o.eg.Ng()
	}
	for grp := 1; grp <= ng; grp++ {
		if egc.PaletteSize(grp) != o.PaletteSize(grp) {
			return false
		}
		for c := egc.FirstColor(grp); c != 0; c = egc.NextColor(grp, c) {
			u := o.eg.Hub(grp)
			if u == 0 || o.Owner(u, c) != grp {
				return false
			}
		}
	}
	for grp := ng + 1; grp <= egc.eg.Ng(); grp++ {
		if egc.PaletteSize(grp) != 0 {
			return false
		}
	}
	for grp := ng + 1; grp <= o.eg.Ng(); grp++ {
		if o.PaletteSize(grp) != 0 {
			return false
		}
	}

	return true
}
