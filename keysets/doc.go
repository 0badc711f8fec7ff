// Package keysets implements KeySets: a forest of height-balanced binary
// search trees partitioning the index domain 1..n, with a per-item key and
// an optional string-key ordering, plus DualKeySets, a specialization that
// maintains a secondary key and a subtree-minimum aggregate.
//
// What:
//
//   - Every item is always in exactly one tree; a free item is a singleton
//     tree. Find(u) returns the root identifying u's tree.
//   - Search(k, t), Insert(u, t), Delete(u) — standard BST operations under
//     AVL-style rank balancing (rank = height).
//   - Join(t1, u, t2) — precondition max-key(t1) ≤ key(u) ≤ min-key(t2);
//     Split(u) — separates u's tree into the items ordered before u and
//     after u, leaving u a singleton.
//   - A refresh hook fires on every node whose subtree changes (rotations,
//     splices, joins), bottom-up, so subclasses can maintain aggregates.
//   - DualKeySets adds key2 and min2 = min of key2 over the subtree, and
//     FindMin(t, limit): the item with smallest key2 among items with
//     primary key ≤ limit, in O(log n).
//
// Why:
//
//	KeySets is the ordered-set backbone: the keyed Map sits directly on it,
//	and DualKeySets is the classic structure behind deadline/priority scans
//	where two orderings must coexist.
//
// The in-order traversal of any tree visits keys in non-decreasing order;
// the balancing policy guarantees O(log n) height, so every operation above
// is O(log n) (Split amortizes its chain of joins to the same bound).
//
// Errors:
//
//   - ErrItemRange     — item outside 1..n
//   - ErrNotSingleton  — Insert/Join middle item is not a free singleton
//   - ErrNotRoot       — a tree argument is not a root
//   - ErrKeyMode       — numeric operation on a string-keyed forest or
//     vice versa
//   - ErrParse         — malformed FromString input; receiver unchanged
package keysets
