// Package egcolor implements EdgeGroupColors — per-edge colors and
// per-group palettes over an egroups.EdgeGroups — together with the family
// of coloring strategies that drive it.
//
// What:
//
//   - A color universe 1..C. Each edge holds one color (0 = uncolored);
//     per output, a color appears on at most one edge (proper at outputs);
//     per input, each color is owned by at most one group (its palette).
//   - Bind/Release move colors between an input's unused pool and a
//     group's palette; Color places a color on an edge, enforcing the
//     availability contract and binding implicitly when the color is
//     unowned at the hub (a documented convenience: Color then mutates
//     palettes as well as edge colors).
//   - ColorFromPalettes builds, per output, a small bipartite palette
//     graph (groups × usable palette colors) and lets a maximum matching
//     assign distinct colors to the output's edges.
//   - Strategies: GreedyBounded, Layered, RandomPalettes and FlowPalettes
//     (palette expansion priced by a min-cost flow per output), plus a
//     binary search over C bracketed by LowerBound and a 10× safety limit.
//
// Availability: color c is available for edge e (input u, output v, group
// g) iff c == 0, or usage[v][c] == 0 and owner[u][c] ∈ {0, g}.
//
// Infeasibility is a result, not an error: strategies and
// ColorFromPalettes report false and leave unfinished edges uncolored;
// callers widen C and retry.
//
// Ownership: the EdgeGroups and its graph are referenced and must not be
// mutated by others for this structure's lifetime; all color, palette and
// usage state is owned here.
//
// Complexity: Bind/Release/Color O(1); ColorFromPalettes O(√V·E) per
// output on its palette graph; memory O((Ni+No)·C).
//
// Errors:
//
//   - ErrColorRange  — color outside 1..C
//   - ErrEdgeRange   — unknown edge
//   - ErrUngrouped   — coloring an edge that belongs to no group
//   - ErrOwned       — Bind of a color already owned at that hub (or
//     Release by a non-owner)
//   - ErrUnavailable — Color with an unavailable color
//   - ErrParse       — malformed FromString input; receiver unchanged
package egcolor
