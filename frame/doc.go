// Package frame fits a linear reference frame to a 3D point cloud:
// the centroid, the best-fit plane and the best-fit line, derived in a
// single principal-component analysis of the centered points.
//
// 🚀 What is a reference frame?
//
//	Many ordering strategies need a coordinate system that follows the
//	shape of the data instead of the world axes: sorting along the
//	dominant direction of a scattered polyline, or walking points in
//	angular order around the plane they roughly lie in. Fit derives
//	exactly that:
//	  • Center    — arithmetic mean of the points
//	  • X, Y      — in-plane basis, the two directions of greatest variance
//	  • Normal    — plane normal, the direction of least variance
//	  • Direction — best-fit line direction (first principal component, == X)
//
// Algorithm Outline:
//  1. Center the points on their centroid.
//  2. Accumulate the 3×3 covariance matrix (symmetric).
//  3. Eigendecompose it (gonum mat.EigenSym); eigenvalues ascend, so the
//     first eigenvector is the normal and the last the principal direction.
//  4. Canonicalize signs (largest-magnitude component positive) and
//     recompute Y = Normal × X so the basis is right-handed.
//
// Degenerate inputs degrade, they never fail: coincident or collinear
// clouds still yield a valid orthonormal basis (the eigensolver returns
// one for repeated eigenvalues), and a single point yields a
// zero-variance frame on a fixed basis. Only an empty slice is an error.
//
// Complexity:
//
//	Time   = O(N) accumulation + O(1) 3×3 eigendecomposition
//	Memory = O(1)
//
// Errors:
//   - ErrNoPoints    — no points supplied; no frame exists.
//   - ErrEigenFailed — the eigensolver did not converge (not expected
//     for finite inputs; surfaced rather than swallowed).
package frame
