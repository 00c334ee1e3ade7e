// Package sortby builds point permutations from geometric sort keys.
//
// Every function takes the point cloud (plus a strategy-specific
// context) and returns a permutation of {0..N-1}: original indices in
// their new order. Nothing is mutated; applying the permutation to
// points, edges or parallel data is the remap package's job.
//
// Strategies:
//
//   - ByAxes     — world X/Y/Z sort as three successive stable passes,
//     each with an independent reverse flag. Passes run X, then Y,
//     then Z, so the last pass is the primary key; a reversed pass
//     leaves ties exactly as the earlier passes ordered them.
//   - ByFrame    — lexicographic sort on frame-local (x, y, z), each
//     axis independently negatable.
//   - ByDirection — scalar projection onto a direction; reverse negates
//     the key (ties keep input order).
//   - ByCylinder — (azimuth, height, radius) in a fitted cylindrical
//     frame; reverse flips the whole sequence after sorting.
//   - ByAxial    — height along an explicit axis first, then signed
//     angle about it.
//   - ByDistance — squared Euclidean distance to a reference point
//     (no square root; monotonicity is all a sort needs).
//   - ByKeys     — caller-supplied scalar per point, taken verbatim.
//
// All sorts are stable: points with equal keys keep their original
// relative order, which makes every strategy deterministic and makes
// sorting an already-sorted cloud the identity permutation.
//
// Complexity: O(N log N) per strategy, O(N) extra memory.
//
// Errors:
//   - ErrKeyCount — ByKeys received a key slice whose length differs
//     from the point count.
package sortby
