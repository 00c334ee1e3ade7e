// Package reorder computes orderings of unordered 3D point collections
// and consistently re-indexes any connectivity that came with them.
//
// 🚀 What is reorder?
//
//	A small, deterministic geometry library with one job: given points
//	(optionally with edges and faces), pick a strategy, get back the
//	points in a meaningful order plus edges, faces and an item-order
//	trace rewritten to match:
//	  • XYZ           — world-axis sort with per-axis reversal
//	  • Distance      — nearest-first from a reference point
//	  • Axial         — height along an explicit axis, then angle about it
//	  • Connections   — rebuild a path by walking the edge list
//	  • AutoXYZ       — axis sort in an auto-detected reference frame
//	  • AutoDirection — along the auto-detected dominant direction
//	  • AutoCylinder  — angular order on the auto-detected plane
//	  • UserKey       — caller-supplied scalar per point
//
// ✨ Why choose reorder?
//
//   - Deterministic — every tie-break is index-ordered; equal inputs
//     give equal outputs, always
//   - Stateless — each call re-derives frames, degrees and limits from
//     its own input; calls parallelize trivially from the caller side
//   - Consistent outputs — whatever the strategy, edges, faces and the
//     item-order trace always agree with the reordered points
//
// Everything is organized in focused subpackages, with this root
// package as the single dispatch point:
//
//	frame/  — centroid + best-fit plane/line via principal components
//	sortby/ — geometric sort keys and stable multi-key permutations
//	connex/ — connectivity walk: limits, restarts, reindexed edges
//	remap/  — permutation application and inverse-lookup rewriting
//
// Quick ASCII example:
//
//	input points:  2───3   0───1     edges: (2,3) (0,1) (1,2)
//
//	Connections mode walks 0→1→2→3 and returns the chain as
//	points [p0 p1 p2 p3], edges [(0,1) (1,2) (2,3)], order [0 1 2 3].
//
// See each subpackage's doc.go for algorithms, complexity and errors.
package reorder
