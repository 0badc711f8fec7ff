// Package egroups implements EdgeGroups: a partition of the edges of a
// bipartite graph into groups, each anchored at one input (the group's
// hub), with at most one edge per output inside any group.
//
// What:
//
//   - Add(e, g) seeds a new group (g == 0 allocates a free group id),
//     revives a named free id, or extends a live group; Delete(e) returns
//     an emptied group's id to the free pool.
//   - Merge(g1, g2) folds g2 into g1 (same hub); an edge of g2 whose
//     output is already covered by g1 is deleted from the underlying
//     graph, keeping groups collision-free.
//   - Per-input group lists, per-group edge lists, fanouts, and
//     SortGroups ordering groups by decreasing fanout.
//   - Canonical text form "{a[(f g h)A (g i)B] b[(f h)C]}" with a
//     String/FromString round-trip.
//
// Why:
//
//	Grouping is the combinatorial object the coloring layer prices: a
//	group's edges must share palette colors, and groups at one hub compete
//	for them. Everything here is bookkeeping that must stay O(1) per
//	mutation so the coloring strategies can churn through instances.
//
// The group-id pool, the per-group edge lists and the per-hub group lists
// are a listpair and two listsets over shared id domains; the graph itself
// is referenced, not owned, and must not be mutated behind this structure's
// back (Merge is the one place the structure itself reaches down into it).
//
// Complexity: Add/Delete O(1) plus the collision probe (O(fanout));
// Merge O(fanout(g1) + fanout(g2)); SortGroups O(k log k).
//
// Errors:
//
//   - ErrEdgeRange    — unknown edge id
//   - ErrGroupRange   — unknown group id
//   - ErrEdgeGrouped  — edge already belongs to a group
//   - ErrHubMismatch  — edge's input differs from the group's hub
//   - ErrOutputClash  — group already has an edge at that output
//   - ErrParse        — malformed FromString input; receiver unchanged
package egroups
