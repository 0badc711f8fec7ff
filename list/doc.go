// Package list implements List: an ordered sequence of distinct integers
// drawn from the index domain 1..n.
//
// What:
//
//   - O(1) First/Last/Length/Contains/Next, O(1) insertion and head/tail
//     queue-stack operations (Push, Pop, Enq, Deq).
//   - Reverse links (Prev, Delete at arbitrary position, PopLast, negative
//     At indices) are opt-in via WithPrev, and otherwise materialized
//     lazily in O(n) on first need.
//   - Per-item float64 values are opt-in via WithValues, and otherwise
//     materialized lazily on first SetValue.
//   - Canonical text form "[a b c]" (letters when n ≤ 26, decimals above)
//     with a String/FromString round-trip.
//
// Why:
//
//	A List is the repo's workhorse sequence: free-id pools, BFS queues,
//	sorted slots all reuse it, and because items are plain ints one item can
//	sit in a List and in any other container at the same time.
//
// Membership is encoded in next itself: next[i] == -1 means "not on the
// list", next[i] == 0 means "last item", so Contains is a single array read.
//
// Complexity:
//
//   - All mutators O(1) (amortized O(1) when Expand is triggered).
//   - At(k) walks |k| links; Equals is O(length).
//   - First Prev-dependent call after plain construction pays O(n) once.
//
// Errors:
//
//   - ErrItemRange  — item outside 1..n (where the operation cannot expand)
//   - ErrDuplicate  — inserting an item already on the list
//   - ErrNotMember  — operation requires membership the item does not have
//   - ErrParse      — FromString input malformed; receiver unchanged
package list
