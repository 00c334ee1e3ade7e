package sortby

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/geomcraft/reorder/frame"
)

// ErrKeyCount is returned by ByKeys when the key slice and the point
// slice disagree in length.
var ErrKeyCount = errors.New("sortby: one key per point is required")

// identity returns the permutation [0, 1, ..., n-1].
func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// stablePass re-sorts perm in place by one scalar key. A reversed pass
// compares strictly descending, so tied entries keep the relative order
// established by earlier passes — reversing one axis never perturbs the
// tie order of another.
func stablePass(perm []int, key func(orig int) float64, reverse bool) {
	if reverse {
		sort.SliceStable(perm, func(a, b int) bool { return key(perm[a]) > key(perm[b]) })
		return
	}
	sort.SliceStable(perm, func(a, b int) bool { return key(perm[a]) < key(perm[b]) })
}

// lessTuple is a lexicographic strict-less on 3-tuples.
func lessTuple(a, b [3]float64) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

// byTuple sorts the identity permutation stably by precomputed 3-tuples.
func byTuple(keys [][3]float64) []int {
	perm := identity(len(keys))
	sort.SliceStable(perm, func(a, b int) bool { return lessTuple(keys[perm[a]], keys[perm[b]]) })
	return perm
}

// reverseInPlace flips a permutation end to end.
func reverseInPlace(perm []int) {
	for i, j := 0, len(perm)-1; i < j; i, j = i+1, j-1 {
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// ByAxes sorts points by world coordinates as three successive stable
// passes (X, then Y, then Z — the Z pass ends up primary), with an
// independent reverse flag per axis.
func ByAxes(points []r3.Vec, reverseX, reverseY, reverseZ bool) []int {
	perm := identity(len(points))
	stablePass(perm, func(i int) float64 { return points[i].X }, reverseX)
	stablePass(perm, func(i int) float64 { return points[i].Y }, reverseY)
	stablePass(perm, func(i int) float64 { return points[i].Z }, reverseZ)
	return perm
}

// ByFrame sorts points lexicographically by their coordinates in the
// fitted frame's plane basis; each local axis can be negated.
func ByFrame(points []r3.Vec, f *frame.Frame, reverseX, reverseY, reverseZ bool) []int {
	keys := make([][3]float64, len(points))
	for i, p := range points {
		l := f.Local(p)
		if reverseX {
			l.X = -l.X
		}
		if reverseY {
			l.Y = -l.Y
		}
		if reverseZ {
			l.Z = -l.Z
		}
		keys[i] = [3]float64{l.X, l.Y, l.Z}
	}
	return byTuple(keys)
}

// ByDirection sorts points by their scalar projection onto dir.
// Reverse negates the key, so tied points keep their input order.
func ByDirection(points []r3.Vec, dir r3.Vec, reverse bool) []int {
	perm := identity(len(points))
	stablePass(perm, func(i int) float64 { return r3.Dot(points[i], dir) }, reverse)
	return perm
}

// ByCylinder sorts points by (azimuth, height, radius) in the frame's
// cylindrical coordinates. Reverse flips the entire resulting order,
// ties included.
func ByCylinder(points []r3.Vec, f *frame.Frame, reverse bool) []int {
	keys := make([][3]float64, len(points))
	for i, p := range points {
		phi, z, rho := f.Cylindrical(p)
		keys[i] = [3]float64{phi, z, rho}
	}
	perm := byTuple(keys)
	if reverse {
		reverseInPlace(perm)
	}
	return perm
}

// ByAxial sorts points along an explicit axis: primary key is the
// height along f.Normal, secondary the signed angle about it measured
// from f.X, tertiary the distance from the axis.
func ByAxial(points []r3.Vec, f *frame.Frame) []int {
	keys := make([][3]float64, len(points))
	for i, p := range points {
		phi, z, rho := f.Cylindrical(p)
		keys[i] = [3]float64{z, phi, rho}
	}
	return byTuple(keys)
}

// ByDistance sorts points by squared Euclidean distance to ref.
func ByDistance(points []r3.Vec, ref r3.Vec) []int {
	perm := identity(len(points))
	stablePass(perm, func(i int) float64 { return r3.Norm2(r3.Sub(points[i], ref)) }, false)
	return perm
}

// ByKeys sorts points by a caller-supplied scalar per point, taken
// verbatim. Returns ErrKeyCount unless exactly one key per point is
// given.
func ByKeys(points []r3.Vec, keys []float64) ([]int, error) {
	if len(keys) != len(points) {
		return nil, fmt.Errorf("%w: %d keys for %d points", ErrKeyCount, len(keys), len(points))
	}
	perm := identity(len(points))
	stablePass(perm, func(i int) float64 { return keys[i] }, false)
	return perm, nil
}
