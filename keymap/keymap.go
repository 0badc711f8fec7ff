// Package keymap implements Map: a keyed associative container layered on
// a keysets forest.
//
// A Map(n) can hold up to n key→value pairs. Active pairs occupy pair ids
// from 1..n and form a single keysets tree ordered by key; unused pair ids
// wait on a free list. When the free list runs dry the container expands
// by at least 50%, so Put never fails for lack of room.
//
// Keys are float64 (WithStringKeys switches to string keys); values are
// float64. Iteration with First/Next visits pairs in ascending key order.
//
// Complexity: Put/Get/GetPair/Delete O(log n); iteration O(log n) per
// step; String/FromString O(n log n).
package keymap

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafix/adt"
	"github.com/katalvlaran/grafix/keysets"
	"github.com/katalvlaran/grafix/list"
)

// Sentinel errors for keymap operations.
var (
	// ErrKeyMode indicates a numeric operation on a string-keyed map or
	// the reverse.
	ErrKeyMode = errors.New("keymap: wrong key mode")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("keymap: malformed input")
)

// Map stores key→value pairs over a pair-id domain 1..n.
type Map struct {
	keys     *keysets.KeySets
	top      int // root of the active-pairs tree, 0 when empty
	value    []float64
	free     *list.List
	size     int
	byString bool
}

// Option configures a Map at construction time.
type Option func(*Map)

// WithStringKeys switches the map to string keys.
func WithStringKeys() Option {
	return func(m *Map) { m.byString = true }
}

// New creates an empty Map with room for n pairs. Complexity: O(n).
func New(n int, opts ...Option) *Map {
	m := &Map{value: make([]float64, n+1), free: list.New(n)}
	for _, opt := range opts {
		opt(m)
	}
	if m.byString {
		m.keys = keysets.New(n, keysets.WithStringKeys())
	} else {
		m.keys = keysets.New(n)
	}
	for p := 1; p <= n; p++ {
		_ = m.free.Enq(p)
	}

	return m
}

// Size returns the number of active pairs.
func (m *Map) Size() int { return m.size }

// N returns the current pair-id capacity.
func (m *Map) N() int { return m.keys.N() }

// Key returns the key of active pair p.
func (m *Map) Key(p int) float64 { return m.keys.Key(p) }

// StringKey returns the key of active pair p in string mode.
func (m *Map) StringKey(p int) string { return m.keys.StringKey(p) }

// Value returns the value of active pair p.
func (m *Map) Value(p int) float64 {
	if p < 1 || p > m.keys.N() {
		return 0
	}

	return m.value[p]
}

// First returns the pair id with the smallest key, or 0 when empty.
func (m *Map) First() int {
	if m.top == 0 {
		return 0
	}

	return m.keys.First(m.top)
}

// Next returns the pair id following p in key order, or 0.
func (m *Map) Next(p int) int { return m.keys.Next(p) }

// expand grows the pair-id domain by at least 50% and refills the free
// list with the new ids.
func (m *Map) expand() {
	old := m.keys.N()
	n := adt.Grow(old, old+1)
	m.keys.Expand(n)
	n = m.keys.N()
	value := make([]float64, n+1)
	copy(value, m.value)
	m.value = value
	m.free.Expand(n)
	for p := old + 1; p <= n; p++ {
		_ = m.free.Enq(p)
	}
}

// alloc takes a free pair id, expanding when none remains.
func (m *Map) alloc() int {
	if m.free.Empty() {
		m.expand()
	}

	return m.free.Deq()
}

// Put stores k → v, overwriting any existing value at k. Returns the pair
// id used. Complexity: O(log n).
func (m *Map) Put(k, v float64) (int, error) {
	if m.byString {
		return 0, ErrKeyMode
	}
	if p := m.keys.Search(k, m.top); p != 0 {
		m.value[p] = v

		return p, nil
	}
	p := m.alloc()
	if err := m.keys.SetKey(p, k); err != nil {
		return 0, err
	}
	top, err := m.keys.Insert(p, m.top)
	if err != nil {
		return 0, err
	}
	m.top = top
	m.value[p] = v
	m.size++

	return p, nil
}

// PutString is Put for string-key mode.
func (m *Map) PutString(k string, v float64) (int, error) {
	if !m.byString {
		return 0, ErrKeyMode
	}
	if p := m.keys.SearchString(k, m.top); p != 0 {
		m.value[p] = v

		return p, nil
	}
	p := m.alloc()
	if err := m.keys.SetStringKey(p, k); err != nil {
		return 0, err
	}
	top, err := m.keys.Insert(p, m.top)
	if err != nil {
		return 0, err
	}
	m.top = top
	m.value[p] = v
	m.size++

	return p, nil
}

// GetPair returns the pair id holding key k, or 0.
func (m *Map) GetPair(k float64) int { return m.keys.Search(k, m.top) }

// GetPairString is GetPair for string-key mode.
func (m *Map) GetPairString(k string) int { return m.keys.SearchString(k, m.top) }

// Get returns the value stored at key k.
func (m *Map) Get(k float64) (float64, bool) {
	p := m.GetPair(k)
	if p == 0 {
		return 0, false
	}

	return m.value[p], true
}

// GetString is Get for string-key mode.
func (m *Map) GetString(k string) (float64, bool) {
	p := m.GetPairString(k)
	if p == 0 {
		return 0, false
	}

	return m.value[p], true
}

// deletePair removes an active pair id and recycles it.
func (m *Map) deletePair(p int) bool {
	if p == 0 {
		return false
	}
	top, err := m.keys.Delete(p)
	if err != nil {
		return false
	}
	m.top = top
	m.value[p] = 0
	_ = m.free.Push(p)
	m.size--

	return true
}

// Delete removes the pair with key k and reports whether one existed.
// Complexity: O(log n).
func (m *Map) Delete(k float64) bool { return m.deletePair(m.GetPair(k)) }

// DeleteString is Delete for string-key mode.
func (m *Map) DeleteString(k string) bool { return m.deletePair(m.GetPairString(k)) }

// Equals reports whether both maps hold the same key→value set.
// Pair-id assignment is irrelevant. Complexity: O(n log n).
func (m *Map) Equals(o *Map) bool {
	if m.byString != o.byString || m.size != o.size {
		return false
	}
	for p := m.First(); p != 0; p = m.Next(p) {
		if m.byString {
			v, ok := o.GetString(m.StringKey(p))
			if !ok || v != m.value[p] {
				return false
			}
		} else {
			v, ok := o.Get(m.Key(p))
			if !ok || v != m.value[p] {
				return false
			}
		}
	}

	return true
}

// String renders the canonical form "{1:10 2.5:20}" in ascending key order
// (string keys are double-quoted).
func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for p := m.First(); p != 0; p = m.Next(p) {
		if p != m.First() {
			b.WriteByte(' ')
		}
		if m.byString {
			b.WriteByte('"')
			b.WriteString(m.StringKey(p))
			b.WriteByte('"')
		} else {
			b.WriteString(strconv.FormatFloat(m.Key(p), 'g', -1, 64))
		}
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(m.value[p], 'g', -1, 64))
	}
	b.WriteByte('}')

	return b.String()
}

// FromString replaces the map contents with the pairs encoded in s.
// On failure the receiver is left unchanged.
func (m *Map) FromString(s string) error {
	type pair struct {
		num float64
		str string
		val float64
	}
	sc := adt.NewScanner(s)
	if !sc.Verify('{') {
		return ErrParse
	}
	var pairs []pair
	seenNum := make(map[float64]bool)
	seenStr := make(map[string]bool)
	for {
		if sc.Verify('}') {
			break
		}
		var p pair
		var ok bool
		if m.byString {
			if p.str, ok = sc.NextQuoted(); !ok || seenStr[p.str] {
				return ErrParse
			}
			seenStr[p.str] = true
		} else {
			if p.num, ok = sc.NextFloat(); !ok || seenNum[p.num] {
				return ErrParse
			}
			seenNum[p.num] = true
		}
		if !sc.Verify(':') {
			return ErrParse
		}
		if p.val, ok = sc.NextFloat(); !ok {
			return ErrParse
		}
		pairs = append(pairs, p)
	}
	if !sc.Done() {
		return ErrParse
	}

	n := m.keys.N()
	if len(pairs) > n {
		n = len(pairs)
	}
	var opts []Option
	if m.byString {
		opts = append(opts, WithStringKeys())
	}
	fresh := New(n, opts...)
	for _, p := range pairs {
		var err error
		if m.byString {
			_, err = fresh.PutString(p.str, p.val)
		} else {
			_, err = fresh.Put(p.num, p.val)
		}
		if err != nil {
			return ErrParse
		}
	}
	*m = *fresh

	return nil
}
