// Package connex reconstructs a coherent visitation order from an
// unordered edge list: given N points and edges between them, it walks
// edge adjacency to produce a path-like ordering of the points plus the
// edges reindexed into that ordering.
//
// 🚀 Why a traversal, not a sort?
//
//	A polyline loaded from an unordered source has no usable coordinate
//	key: consecutive points on the curve may sit anywhere in the input.
//	The only reliable ordering signal is connectivity itself, so the
//	builder walks the edges, one at a time, always continuing from the
//	endpoint it just arrived at.
//
// Algorithm Outline:
//  1. Build per-point incidence lists (edge index + which endpoint the
//     point occupies), in ascending edge order.
//  2. If limit detection is on, collect every degree-1 point — a "limit",
//     i.e. a path endpoint — in ascending point order.
//  3. Start at the first limit's edge, oriented so the limit point is
//     emitted first; with no limits (or detection off), start at edge 0
//     in its stored orientation.
//  4. Consume the current edge, emit its endpoints (skipping points
//     already emitted), then continue with the lowest-index unconsumed
//     edge incident to the arrival point, preferring edges that hold it
//     as endpoint 0.
//  5. On a dead end with edges left: restart from the first remaining
//     limit whose point is still unvisited; if none (or detection off),
//     restart from the lowest-index unconsumed edge. This stitches
//     disjoint segments into one combined order.
//  6. When every edge is consumed, append the degree-0 points in their
//     input order; they never appear in the reindexed edges.
//
// Points of degree ≥ 3 are tolerated but handled best-effort: the walk
// consumes two of their edges, leftover incident edges become restart
// material. The output order is still a permutation; only the claim of
// being path-like weakens.
//
// Determinism: every choice above is index-ordered, so equal inputs
// always produce equal outputs.
//
// Complexity:
//
//	Time   = O(N + E) for degree-bounded inputs
//	Memory = O(N + E)
//
// Errors:
//   - ErrUnknownIndex — an edge references a point outside [0, N).
package connex
