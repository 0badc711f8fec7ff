package egcolor

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// String renders the canonical form "{1[a(f . h)A] 2[a(. g)B b(f)C]}":
// one block per color, listing every group whose palette holds that color;
// inside the parentheses the group's edges appear in list order, showing
// the output letter when the edge carries the block's color and "." when
// it does not.
func (egc *EdgeGroupColors) String() string {
	g, eg := egc.g, egc.eg
	var b strings.Builder
	b.WriteByte('{')
	sepBlock := false
	for c := 1; c <= egc.c; c++ {
		var clauses []string
		for u := 1; u <= g.Ni(); u++ {
			grp := egc.owner[u][c]
			if grp == 0 {
				continue
			}
			var cb strings.Builder
			cb.WriteString(adt.ItemString(u, g.N()))
			cb.WriteByte('(')
			for e := eg.FirstEdge(grp); e != 0; e = eg.NextEdge(grp, e) {
				if e != eg.FirstEdge(grp) {
					cb.WriteByte(' ')
				}
				if egc.color[e] == c {
					cb.WriteString(adt.ItemString(g.Output(e), g.N()))
				} else {
					cb.WriteByte('.')
				}
			}
			cb.WriteByte(')')
			cb.WriteString(adt.GroupString(grp, eg.Ng()))
			clauses = append(clauses, cb.String())
		}
		if len(clauses) == 0 {
			continue
		}
		if sepBlock {
			b.WriteByte(' ')
		}
		sepBlock = true
		b.WriteString(strconv.Itoa(c))
		b.WriteByte('[')
		b.WriteString(strings.Join(clauses, " "))
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// colorClause is one "input(tokens)Group" clause under a color block.
type colorClause struct {
	color  int
	input  int
	tokens []int // output indices, 0 for "."
	grp    int   // 0 when no explicit identifier
}

// parseClauses reads the full grammar.
func parseClauses(s string) ([]colorClause, int, error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return nil, 0, ErrParse
	}
	var clauses []colorClause
	maxColor := 0
	for {
		if sc.Verify('}') {
			break
		}
		c, ok := sc.NextInt()
		if !ok || c < 1 || !sc.Verify('[') {
			return nil, 0, ErrParse
		}
		if c > maxColor {
			maxColor = c
		}
		for {
			if sc.Verify(']') {
				break
			}
			u, ok := sc.NextItem()
			if !ok || u == 0 || !sc.Verify('(') {
				return nil, 0, ErrParse
			}
			cl := colorClause{color: c, input: u}
			for {
				if sc.Verify(')') {
					break
				}
				if sc.Verify('.') {
					cl.tokens = append(cl.tokens, 0)

					continue
				}
				v, ok := sc.NextItem()
				if !ok || v == 0 {
					return nil, 0, ErrParse
				}
				cl.tokens = append(cl.tokens, v)
			}
			cl.grp, _ = sc.NextGroup()
			clauses = append(clauses, cl)
		}
	}
	if !sc.Done() {
		return nil, 0, ErrParse
	}

	return clauses, maxColor, nil
}

// resolveGroup maps a clause onto a live group of eg: an explicit letter
// wins; otherwise the first group at the clause's input whose fanout
// matches the token count and which covers every named output.
func (egc *EdgeGroupColors) resolveGroup(cl colorClause) int {
	eg := egc.eg
	if cl.grp != 0 {
		if eg.Hub(cl.grp) != cl.input {
			return 0
		}

		return cl.grp
	}
	for grp := eg.FirstGroupAt(cl.input); grp != 0; grp = eg.NextGroupAt(cl.input, grp) {
		if eg.Fanout(grp) != len(cl.tokens) {
			continue
		}
		all := true
		for _, v := range cl.tokens {
			if v != 0 && eg.FindEdge(v, grp) == 0 {
				all = false

				break
			}
		}
		if all {
			return grp
		}
	}

	return 0
}

// FromString replaces the coloring with the one encoded in s, interpreted
// against the receiver's existing grouping: every clause binds its block's
// color to the clause's group and colors the named outputs' edges. The
// color universe widens to the largest color mentioned if needed.
// On failure the receiver is left unchanged.
func (egc *EdgeGroupColors) FromString(s string) error {
	clauses, maxColor, err := parseClauses(s)
	if err != nil {
		return err
	}
	c := egc.c
	if maxColor > c {
		c = maxColor
	}

	fresh := New(egc.eg, c)
	for _, cl := range clauses {
		grp := fresh.resolveGroup(cl)
		if grp == 0 {
			return ErrParse
		}
		u := egc.eg.Hub(grp)
		if fresh.Owner(u, cl.color) != grp {
			if fresh.Owner(u, cl.color) != 0 {
				return ErrParse // two groups at one hub claim the color
			}
			if err := fresh.Bind(cl.color, grp); err != nil {
				return ErrParse
			}
		}
		for _, v := range cl.tokens {
			if v == 0 {
				continue
			}
			e := egc.eg.FindEdge(v, grp)
			if e == 0 {
				return ErrParse
			}
			if err := fresh.Color(e, cl.color); err != nil {
				return ErrParse
			}
		}
	}
	*egc = *fresh

	return nil
}
