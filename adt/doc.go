// Package adt holds the index-domain conventions shared by every container
// in grafix.
//
// What:
//
//   - Items are integers in 1..n; 0 is the "no item" sentinel.
//   - Canonical text form: when n ≤ 26 an item prints as a lowercase letter
//     ('a' = 1 … 'z' = 26), otherwise as a decimal integer; 0 prints as "-".
//     Group identifiers print uppercase ('A' = 1 …).
//   - Scanner: a small cursor over a canonical string, used by every
//     FromString implementation in the repo.
//   - Grow: the shared expansion policy (at least 1.5× the current size).
//
// Why:
//
//	Keeping formatting, parsing and growth in one place guarantees that all
//	containers round-trip through the same grammar and expand compatibly, so
//	an item id stays valid across every structure it participates in.
//
// Complexity: all helpers are O(1) except Scanner methods, which consume
// input left to right in O(length).
package adt
