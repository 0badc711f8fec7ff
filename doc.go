// Package grafix is a library of combinatorial-optimization building blocks
// layered over integer-indexed data structures.
//
// 🚀 What is grafix?
//
//	A pure-Go toolkit where every container shares one index domain 1..n:
//
//	  • Container layer: List, ListSet, ListPair, ReverseLists, MergeSets,
//	    balanced-forest KeySets and the keyed Map built on them
//	  • Graph layer: a bipartite Graph, EdgeGroups (edges partitioned into
//	    groups anchored at inputs) and EdgeGroupColors (palette-based
//	    group coloring)
//	  • Algorithm layer: bipartite matching, min-cost flow, set cover and
//	    a family of edge-group coloring strategies
//
// ✨ Why choose grafix?
//
//   - Index-first         — items are ints in 1..n, so one item can sit in
//     many structures at once with no boxing and no pointer chasing
//   - O(1) where it counts — dense arrays, constant-time list surgery,
//     amortized near-constant disjoint sets
//   - Deterministic       — seeded generators, reproducible solvers
//   - Pure Go             — no cgo, no hidden dependencies
//
// Under the hood, the packages stack bottom-up:
//
//	adt/        — shared index-domain conventions (item formatting, scanning)
//	list/ …     — the container layer (list, listset, listpair, revlist,
//	              mergesets, keysets, keymap, dheap)
//	bigraph/    — bipartite graphs over the same index domain
//	egroups/    — edge groups on a bipartite graph
//	egcolor/    — palettes, colors and the coloring strategies
//	matching/   — Hopcroft-Karp bipartite matching
//	mcflow/     — min-cost max-flow on small auxiliary networks
//	setcover/   — greedy and primal-dual set cover
//	builder/    — deterministic random instance constructors
//
//	go get github.com/katalvlaran/grafix
package grafix
