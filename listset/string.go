package listset

import (
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// String renders the canonical form "{[a c] [b g] [h]}": every list of the
// partition, singletons included, ordered by first item.
func (ls *ListSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := false
	for i := 1; i <= ls.n; i++ {
		if !ls.IsFirst(i) {
			continue
		}
		if sep {
			b.WriteByte(' ')
		}
		sep = true
		b.WriteByte('[')
		for j := i; j != 0; j = ls.next[j] {
			if j != i {
				b.WriteByte(' ')
			}
			b.WriteString(adt.ItemString(j, ls.n))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}

// FromString replaces the partition with the one encoded in s. Items absent
// from s become singletons. On failure the receiver is left unchanged and
// ErrParse is returned.
func (ls *ListSet) FromString(s string) error {
	lists, maxItem, err := parseLists(s)
	if err != nil {
		return err
	}
	n := ls.n
	if maxItem > n {
		n = maxItem
	}
	fresh := New(n)
	for _, items := range lists {
		f := items[0]
		for _, i := range items[1:] {
			if f, err = fresh.Join(f, i); err != nil {
				return ErrParse
			}
		}
	}
	*ls = *fresh

	return nil
}

// parseLists validates the full grammar before any mutation happens.
// Every item may appear at most once across all lists.
func parseLists(s string) ([][]int, int, error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return nil, 0, ErrParse
	}
	var lists [][]int
	maxItem := 0
	seen := make(map[int]bool)
	for {
		if sc.Verify('}') {
			break
		}
		if !sc.Verify('[') {
			return nil, 0, ErrParse
		}
		var items []int
		for {
			if sc.Verify(']') {
				break
			}
			i, ok := sc.NextItem()
			if !ok || i == 0 || seen[i] {
				return nil, 0, ErrParse
			}
			seen[i] = true
			if i > maxItem {
				maxItem = i
			}
			items = append(items, i)
		}
		if len(items) == 0 {
			return nil, 0, ErrParse
		}
		lists = append(lists, items)
	}
	if !sc.Done() {
		return nil, 0, ErrParse
	}

	return lists, maxItem, nil
}
