package remap

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for permutation application.
var (
	// ErrBadPermutation is returned when order is not a bijection on
	// {0..N-1} for the supplied point count.
	ErrBadPermutation = errors.New("remap: order is not a permutation of the point indices")

	// ErrUnknownIndex is returned when connectivity references an
	// original index absent from the permutation.
	ErrUnknownIndex = errors.New("remap: connectivity references an index absent from the permutation")
)

// Remapped is a fully re-indexed result set.
//
// Edges and Faces are nil whenever the corresponding input was nil —
// requesting a subset of outputs is a no-op, not an error. Order holds
// original indices in new-position order, ready to reapply to parallel
// data the remapper never saw.
type Remapped struct {
	Points []r3.Vec
	Edges  [][2]int
	Faces  [][]int
	Order  []int
}

// Inverse builds the reverse lookup of a permutation: inv[original
// index] = new position. The order must be a valid permutation; Apply
// validates, this helper assumes.
func Inverse(order []int) []int {
	inv := make([]int, len(order))
	for newPos, orig := range order {
		inv[orig] = newPos
	}
	return inv
}

// Apply reorders points into order and rewrites edges and faces through
// the inverse lookup. The order must be a bijection on the point
// indices; every connectivity reference must fall inside it.
func Apply(order []int, points []r3.Vec, edges [][2]int, faces [][]int) (*Remapped, error) {
	n := len(points)
	if len(order) != n {
		return nil, fmt.Errorf("%w: %d entries for %d points", ErrBadPermutation, len(order), n)
	}
	seen := make([]bool, n)
	for _, orig := range order {
		if orig < 0 || orig >= n || seen[orig] {
			return nil, fmt.Errorf("%w: index %d", ErrBadPermutation, orig)
		}
		seen[orig] = true
	}

	inv := Inverse(order)
	lookup := func(orig int) (int, error) {
		if orig < 0 || orig >= n {
			return 0, fmt.Errorf("%w: index %d with %d points", ErrUnknownIndex, orig, n)
		}
		return inv[orig], nil
	}

	out := &Remapped{Order: order}

	out.Points = make([]r3.Vec, n)
	for newPos, orig := range order {
		out.Points[newPos] = points[orig]
	}

	if edges != nil {
		out.Edges = make([][2]int, len(edges))
		for i, e := range edges {
			a, err := lookup(e[0])
			if err != nil {
				return nil, err
			}
			b, err := lookup(e[1])
			if err != nil {
				return nil, err
			}
			out.Edges[i] = [2]int{a, b}
		}
	}

	if faces != nil {
		out.Faces = make([][]int, len(faces))
		for i, face := range faces {
			rewritten := make([]int, len(face))
			for j, orig := range face {
				newPos, err := lookup(orig)
				if err != nil {
					return nil, err
				}
				rewritten[j] = newPos
			}
			out.Faces[i] = rewritten
		}
	}

	return out, nil
}
