package list

import (
	"strings"

	"github.com/katalvlaran/grafix/adt"
)

// String renders the canonical form "[a b c]".
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := l.first; i != 0; i = l.next[i] {
		if i != l.first {
			b.WriteByte(' ')
		}
		b.WriteString(adt.ItemString(i, l.n))
	}
	b.WriteByte(']')

	return b.String()
}

// FromString replaces the list's contents with the sequence encoded in s.
// On failure the receiver is left unchanged and ErrParse is returned.
// The domain expands to admit the largest parsed item.
func (l *List) FromString(s string) error {
	items, err := parseItems(s)
	if err != nil {
		return err
	}
	l.Clear()
	for _, i := range items {
		_ = l.Enq(i) // items pre-validated: in range after Expand, distinct
	}

	return nil
}

// parseItems validates the full grammar, duplicates included, before any
// mutation happens.
func parseItems(s string) ([]int, error) {
	sc := adt.NewScanner(s)
	if !sc.Verify('[') {
		return nil, ErrParse
	}
	var items []int
	seen := make(map[int]bool)
	for {
		if sc.Verify(']') {
			break
		}
		i, ok := sc.NextItem()
		if !ok || i == 0 || seen[i] {
			return nil, ErrParse
		}
		seen[i] = true
		items = append(items, i)
	}
	if !sc.Done() {
		return nil, ErrParse
	}

	return items, nil
}
