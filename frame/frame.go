package frame

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for frame fitting.
var (
	// ErrNoPoints is returned when Fit receives an empty point slice.
	ErrNoPoints = errors.New("frame: at least one point is required")

	// ErrEigenFailed is returned when the covariance eigendecomposition
	// does not converge. Finite inputs are not expected to trigger it.
	ErrEigenFailed = errors.New("frame: covariance eigendecomposition failed")
)

// Frame is a linear approximation of a point cloud: a centroid plus an
// orthonormal, right-handed basis aligned with the cloud's variance.
//
//   - X, Y span the best-fit plane (greatest and middle variance).
//   - Normal is the plane normal (least variance).
//   - Direction is the best-fit line direction through Center; it equals
//     X, the first principal component.
//
// A Frame is valid only for the point set it was fitted from; it is a
// plain value and is recomputed per input batch, never cached.
type Frame struct {
	Center    r3.Vec
	X, Y      r3.Vec
	Normal    r3.Vec
	Direction r3.Vec
}

// World returns the trivial frame: origin center, world axes, Normal and
// Direction along +Z. Used as the fallback axis for axial sorting when
// the caller supplies none.
func World() *Frame {
	return &Frame{
		X:         r3.Vec{X: 1},
		Y:         r3.Vec{Y: 1},
		Normal:    r3.Vec{Z: 1},
		Direction: r3.Vec{Z: 1},
	}
}

// Fit computes the reference frame of points via principal-component
// analysis of the centered cloud.
//
// Degenerate clouds (single point, coincident or collinear points) still
// produce a valid orthonormal basis; only an empty input returns
// ErrNoPoints.
//
// Time: O(N) accumulation + constant-size eigendecomposition.
func Fit(points []r3.Vec) (*Frame, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	var center r3.Vec
	for _, p := range points {
		center = r3.Add(center, p)
	}
	invN := 1 / float64(len(points))
	center = r3.Scale(invN, center)

	// Upper triangle of the 3x3 covariance of centered points.
	var cov [3][3]float64
	for _, p := range points {
		d := r3.Sub(p, center)
		e := [3]float64{d.X, d.Y, d.Z}
		for i := 0; i < 3; i++ {
			for j := i; j < 3; j++ {
				cov[i][j] += e[i] * e[j]
			}
		}
	}
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, cov[i][j]*invN)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, ErrEigenFailed
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues ascend: column 0 is the least-variance axis (normal),
	// column 2 the greatest-variance axis (principal direction).
	normal := canonical(column(&vecs, 0))
	x := canonical(column(&vecs, 2))
	y := r3.Cross(normal, x) // right-handed: X x Y == Normal

	return &Frame{
		Center:    center,
		X:         x,
		Y:         y,
		Normal:    normal,
		Direction: x,
	}, nil
}

// Local expresses p in the frame's plane coordinates:
// (along X, along Y, along Normal), relative to Center.
func (f *Frame) Local(p r3.Vec) r3.Vec {
	d := r3.Sub(p, f.Center)
	return r3.Vec{
		X: r3.Dot(d, f.X),
		Y: r3.Dot(d, f.Y),
		Z: r3.Dot(d, f.Normal),
	}
}

// Cylindrical expresses p in the frame's cylindrical coordinates:
// azimuth phi in (-π, π] about Normal measured from X, height z along
// Normal, and in-plane radius rho.
func (f *Frame) Cylindrical(p r3.Vec) (phi, z, rho float64) {
	l := f.Local(p)
	return math.Atan2(l.Y, l.X), l.Z, math.Hypot(l.X, l.Y)
}

// column extracts column j of a 3x3 matrix as a vector.
func column(m *mat.Dense, j int) r3.Vec {
	return r3.Vec{X: m.At(0, j), Y: m.At(1, j), Z: m.At(2, j)}
}

// canonical fixes the arbitrary sign of an eigenvector: the component
// with the largest magnitude is made positive, so fitting the same cloud
// in any input order yields the same basis.
func canonical(v r3.Vec) r3.Vec {
	lead := v.X
	if math.Abs(v.Y) > math.Abs(lead) {
		lead = v.Y
	}
	if math.Abs(v.Z) > math.Abs(lead) {
		lead = v.Z
	}
	if lead < 0 {
		return r3.Scale(-1, v)
	}
	return v
}
