package egroups

import (
	"sort"
	"strings"

	"github.com/katalvlaran/grafix/adt"
	"github.com/katalvlaran/grafix/bigraph"
)

// groupShapes returns, for each group at input u, its output set in
// canonical (sorted) order. Used by Equals.
func (eg *EdgeGroups) groupShapes(u int) [][]int {
	var shapes [][]int
	for grp := eg.FirstGroupAt(u); grp != 0; grp = eg.NextGroupAt(u, grp) {
		var outs []int
		for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
			outs = append(outs, eg.g.Output(e))
		}
		sort.Ints(outs)
		shapes = append(shapes, outs)
	}
	sort.Slice(shapes, func(i, j int) bool {
		a, b := shapes[i], shapes[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})

	return shapes
}

func sameGroupShapes(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for k := range a[i] {
			if a[i][k] != b[i][k] {
				return false
			}
		}
	}

	return true
}

// String renders the canonical form "{a[(f g h)A (g i)B] b[(f h)C]}":
// each input with groups, each group's outputs in edge order followed by
// its group-id letter.
func (eg *EdgeGroups) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := false
	for u := 1; u <= eg.g.Ni(); u++ {
		if eg.firstGroup[u] == 0 {
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		b.WriteString(adt.ItemString(u, eg.g.N()))
		b.WriteByte('[')
		for grp := eg.FirstGroupAt(u); grp != 0; grp = eg.NextGroupAt(u, grp) {
			if grp != eg.FirstGroupAt(u) {
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
				if e != eg.FirstEdge(grp) {
					b.WriteByte(' ')
				}
				b.WriteString(adt.ItemString(eg.g.Output(e), eg.g.N()))
			}
			b.WriteByte(')')
			b.WriteString(adt.GroupString(grp, eg.ng))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// parsedGroup is one "(outputs)Letter" clause read by parseGroups.
type parsedGroup struct {
	input int
	id    int // 0 when the clause carries no explicit identifier
	outs  []int
}

// parseGroups reads the full grammar and returns the group clauses plus
// the extreme vertex indices mentioned.
func parseGroups(s string) (groups []parsedGroup, maxIn, minOut, maxOut int, err error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return nil, 0, 0, 0, ErrParse
	}
	for {
		if sc.Verify('}') {
			break
		}
		u, ok := sc.NextItem()
		if !ok || u == 0 || !sc.Verify('[') {
			return nil, 0, 0, 0, ErrParse
		}
		if u > maxIn {
			maxIn = u
		}
		for {
			if sc.Verify(']') {
				break
			}
			if !sc.Verify('(') {
				return nil, 0, 0, 0, ErrParse
			}
			pg := parsedGroup{input: u}
			for {
				if sc.Verify(')') {
					break
				}
				v, ok := sc.NextItem()
				if !ok || v == 0 {
					return nil, 0, 0, 0, ErrParse
				}
				if minOut == 0 || v < minOut {
					minOut = v
				}
				if v > maxOut {
					maxOut = v
				}
				pg.outs = append(pg.outs, v)
			}
			if len(pg.outs) == 0 {
				return nil, 0, 0, 0, ErrParse
			}
			pg.id, _ = sc.NextGroup() // identifier letters are optional
			groups = append(groups, pg)
		}
	}
	if !sc.Done() {
		return nil, 0, 0, 0, ErrParse
	}
	if len(groups) > 0 && minOut <= maxIn {
		return nil, 0, 0, 0, ErrParse
	}

	return groups, maxIn, minOut, maxOut, nil
}

// FromString replaces both the grouping and its private copy of the graph
// with the instance encoded in s: every output mentioned becomes one edge
// of the rebuilt graph, grouped per its clause. Explicit group letters are
// honored; unlettered clauses get fresh ids. On failure the receiver is
// left unchanged.
//
// The rebuilt graph's bipartition follows the receiver's when the content
// fits it, and is inferred (inputs 1..smallest-output-1) otherwise.
func (eg *EdgeGroups) FromString(s string) error {
	groups, maxIn, minOut, maxOut, err := parseGroups(s)
	if err != nil {
		return err
	}

	ni, no := eg.g.Ni(), eg.g.No()
	if maxIn > ni || maxOut > ni+no {
		ni = minOut - 1
		no = maxOut - ni
	}
	// Resolve ids up front so implicit clauses can never collide with an
	// explicit letter appearing later.
	m := 0
	usedID := make(map[int]bool)
	for _, pg := range groups {
		m += len(pg.outs)
		if pg.id != 0 {
			if usedID[pg.id] {
				return ErrParse
			}
			usedID[pg.id] = true
		}
	}
	next := 1
	maxID := 0
	for i := range groups {
		if groups[i].id == 0 {
			for usedID[next] {
				next++
			}
			groups[i].id = next
			usedID[next] = true
		}
		if groups[i].id > maxID {
			maxID = groups[i].id
		}
	}
	ng := eg.ng
	if ng < maxID {
		ng = maxID
	}

	graph := bigraph.New(ni, no, m)
	fresh := New(graph, ng)
	for _, pg := range groups {
		for _, v := range pg.outs {
			e, err := graph.AddEdge(pg.input, v)
			if err != nil {
				return ErrParse
			}
			if _, err = fresh.Add(e, pg.id); err != nil {
				return ErrParse
			}
		}
	}
	*eg = *fresh

	return nil
}
