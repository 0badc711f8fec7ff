// Package listset implements ListSet: a partition of the index domain 1..n
// into disjoint doubly-linked lists, each identified by its first item.
//
// What:
//
//   - Every item starts as a singleton list; Join/Delete/Split/Rotate
//     rearrange the partition in O(1) per operation.
//   - Lists are cyclic in the prev direction: prev[first] == last, which is
//     how Last and IsFirst stay O(1) without extra arrays.
//   - SortList/SortAll reorder lists by a caller-supplied comparator.
//   - Canonical text form "{[a c] [b g] [h]}" with String/FromString
//     round-trip; singletons are printed too.
//
// Why:
//
//	ListSet is the partition primitive behind the graph layer: adjacency
//	lists, group membership and per-color edge lists are all ListSet lists
//	over a shared edge or color domain.
//
// Contract discipline: constant-time preconditions (index range, firstness)
// are checked on every call and reported as sentinel errors; membership of
// an item in a specific list is the caller's responsibility, since checking
// it would cost a walk.
//
// Complexity: all operations O(1) except FindList (O(list length)),
// SortList (O(k log k)) and the string round-trip (O(n)).
package listset
