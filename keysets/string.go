package keysets

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// String renders the canonical form "{[a:5 c:7] [b:2]}": one bracket per
// tree, items in key order, trees ordered by root.
func (ks *KeySets) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := false
	for t := 1; t <= ks.n; t++ {
		if !ks.IsRoot(t) {
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		b.WriteByte('[')
		for u := ks.First(t); u != 0; u = ks.Next(u) {
			if u != ks.First(t) {
				b.WriteByte(' ')
			}
			b.WriteString(adt.ItemString(u, ks.n))
			b.WriteByte(':')
			if ks.byString {
				b.WriteByte('"')
				b.WriteString(ks.skey[u])
				b.WriteByte('"')
			} else {
				b.WriteString(strconv.FormatFloat(ks.key[u], 'g', -1, 64))
			}
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// FromString replaces the forest with the one encoded in s: each bracket
// becomes one tree, built by successive insertion. Items absent from s
// remain singletons with zero keys. On failure the receiver is unchanged.
func (ks *KeySets) FromString(s string) error {
	type pair struct {
		item int
		num  float64
		str  string
	}
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return ErrParse
	}
	var trees [][]pair
	maxItem := 0
	seen := make(map[int]bool)
	for {
		if sc.Verify('}') {
			break
		}
		if !sc.Verify('[') {
			return ErrParse
		}
		var items []pair
		for {
			if sc.Verify(']') {
				break
			}
			i, ok := sc.NextItem()
			if !ok || i == 0 || seen[i] || !sc.Verify(':') {
				return ErrParse
			}
			seen[i] = true
			if i > maxItem {
				maxItem = i
			}
			p := pair{item: i}
			if ks.byString {
				if p.str, ok = sc.NextQuoted(); !ok {
					return ErrParse
				}
			} else {
				if p.num, ok = sc.NextFloat(); !ok {
					return ErrParse
				}
				// An optional ":rank" annotation is accepted and ignored:
				// balance is an implementation detail, not part of equality.
				if sc.Verify(':') {
					if _, ok = sc.NextInt(); !ok {
						return ErrParse
					}
				}
			}
			items = append(items, p)
		}
		if len(items) == 0 {
			return ErrParse
		}
		trees = append(trees, items)
	}
	if !sc.Done() {
		return ErrParse
	}

	n := ks.n
	if maxItem > n {
		n = maxItem
	}
	var opts []Option
	if ks.byString {
		opts = append(opts, WithStringKeys())
	}
	if ks.refresh != nil {
		opts = append(opts, WithRefresh(ks.refresh))
	}
	fresh := New(n, opts...)
	for _, items := range trees {
		t := 0
		for _, p := range items {
			if ks.byString {
				if err := fresh.SetStringKey(p.item, p.str); err != nil {
					return ErrParse
				}
			} else {
				if err := fresh.SetKey(p.item, p.num); err != nil {
					return ErrParse
				}
			}
			var err error
			if t, err = fresh.Insert(p.item, t); err != nil {
				return ErrParse
			}
		}
	}
	*ks = *fresh

	return nil
}
