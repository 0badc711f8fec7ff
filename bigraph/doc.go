// Package bigraph implements Graph: a bipartite graph over the shared
// index domain, with inputs 1..Ni and outputs Ni+1..Ni+No, and edges
// identified by integer ids from 1..MaxEdge.
//
// What:
//
//   - AddEdge/DelEdge in O(1): edge ids are recycled through an internal
//     free/in-use list pair, and each vertex's incident edges form one
//     list of a listset partition over edge ids.
//   - FirstAt/NextAt iterate a vertex's incident edges; Mate crosses an
//     edge from either endpoint; Degree is O(1).
//   - Canonical text form "{a[f h] b[g]}" listing each non-isolated input
//     with the outputs of its edges in adjacency order.
//
// Why:
//
//	This is the substrate the edge-group layer anchors to: groups are sets
//	of edge ids, so the graph must hand out dense ids and keep them stable
//	across unrelated mutations.
//
// Dimension inference: FromString keeps the receiver's dimensions when the
// parsed content fits them; otherwise inputs run 1..(min output - 1) and
// outputs up to the largest output mentioned.
//
// Complexity: all mutators and point queries O(1); String/FromString O(n+m).
//
// Errors:
//
//   - ErrVertexRange — endpoint not an input/output of this graph
//   - ErrEdgeRange   — edge id unknown or not in use
//   - ErrParse       — malformed FromString input; receiver unchanged
package bigraph
