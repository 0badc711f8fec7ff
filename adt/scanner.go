package adt

import "strconv"

// Scanner is a cursor over a canonical container string. All FromString
// implementations in the repo parse through it, so the grammar in one place
// stays the grammar everywhere.
//
// Scanner never backtracks past a consumed token; a failed Next* leaves the
// cursor where it was, so callers can probe for alternatives.
type Scanner struct {
	s   string
	pos int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner { return &Scanner{s: s} }

// SkipSpace advances past spaces, tabs and newlines.
func (sc *Scanner) SkipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

// Done reports whether all input has been consumed (ignoring whitespace).
func (sc *Scanner) Done() bool {
	sc.SkipSpace()

	return sc.pos >= len(sc.s)
}

// Peek returns the next non-space byte without consuming it, or 0 at the end.
func (sc *Scanner) Peek() byte {
	sc.SkipSpace()
	if sc.pos >= len(sc.s) {
		return 0
	}

	return sc.s[sc.pos]
}

// Verify consumes c if it is the next non-space byte and reports success.
func (sc *Scanner) Verify(c byte) bool {
	if sc.Peek() != c {
		return false
	}
	sc.pos++

	return true
}

// NextItem parses an item token: "-" (0), a lowercase letter ('a' = 1) or a
// nonnegative decimal.
func (sc *Scanner) NextItem() (int, bool) {
	c := sc.Peek()
	switch {
	case c == '-':
		sc.pos++

		return 0, true
	case c >= 'a' && c <= 'z':
		sc.pos++

		return int(c-'a') + 1, true
	case c >= '0' && c <= '9':
		return sc.NextInt()
	default:
		return 0, false
	}
}

// NextGroup parses a group token: an uppercase letter ('A' = 1) or "*"
// followed by a decimal. Returns (0, false) when no group token is present,
// which is a legal absence, not an error.
func (sc *Scanner) NextGroup() (int, bool) {
	c := sc.Peek()
	switch {
	case c >= 'A' && c <= 'Z':
		sc.pos++

		return int(c-'A') + 1, true
	case c == '*':
		start := sc.pos
		sc.pos++
		g, ok := sc.NextInt()
		if !ok {
			sc.pos = start // restore the '*'

			return 0, false
		}

		return g, true
	default:
		return 0, false
	}
}

// NextInt parses an optionally-signed decimal integer.
func (sc *Scanner) NextInt() (int, bool) {
	sc.SkipSpace()
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	j := i
	for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	v, err := strconv.Atoi(sc.s[sc.pos:j])
	if err != nil {
		return 0, false
	}
	sc.pos = j

	return v, true
}

// NextFloat parses a decimal number with optional sign, fraction and
// exponent.
func (sc *Scanner) NextFloat() (float64, bool) {
	sc.SkipSpace()
	i := sc.pos
	j := i
	if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
		j++
	}
	digits := false
	for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
		j++
		digits = true
	}
	if j < len(sc.s) && sc.s[j] == '.' {
		j++
		for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
			j++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	if j < len(sc.s) && (sc.s[j] == 'e' || sc.s[j] == 'E') {
		k := j + 1
		if k < len(sc.s) && (sc.s[k] == '-' || sc.s[k] == '+') {
			k++
		}
		expDigits := false
		for k < len(sc.s) && sc.s[k] >= '0' && sc.s[k] <= '9' {
			k++
			expDigits = true
		}
		if expDigits {
			j = k
		}
	}
	v, err := strconv.ParseFloat(sc.s[i:j], 64)
	if err != nil {
		return 0, false
	}
	sc.pos = j

	return v, true
}

// NextQuoted parses a double-quoted string (no escapes inside).
func (sc *Scanner) NextQuoted() (string, bool) {
	if sc.Peek() != '"' {
		return "", false
	}
	start := sc.pos + 1
	for j := start; j < len(sc.s); j++ {
		if sc.s[j] == '"' {
			v := sc.s[start:j]
			sc.pos = j + 1

			return v, true
		}
	}

	return "", false
}
