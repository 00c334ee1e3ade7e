package reorder

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/geomcraft/reorder/connex"
	"github.com/geomcraft/reorder/frame"
	"github.com/geomcraft/reorder/remap"
	"github.com/geomcraft/reorder/sortby"
)

// ErrUnknownMode is returned when Options.Mode is not one of the
// declared strategies.
var ErrUnknownMode = errors.New("reorder: unknown sort mode")

// Mode selects the ordering strategy. The strategies form a closed set;
// Sort dispatches on the mode exactly once and shares no state between
// branches.
type Mode int

const (
	// XYZ sorts by world coordinates with independent per-axis reversal.
	XYZ Mode = iota

	// Distance sorts by squared distance to Options.Reference.
	Distance

	// Axial sorts by height along Options.Axis, then angle about it.
	// A nil Axis means the world Z axis.
	Axial

	// Connections rebuilds a path order by walking the edge list; see
	// the connex package. Faces, if given without edges, contribute
	// their perimeter edges.
	Connections

	// AutoXYZ sorts by coordinates in the auto-fitted reference frame.
	AutoXYZ

	// AutoDirection sorts along the auto-fitted dominant direction.
	AutoDirection

	// AutoCylinder sorts by (azimuth, height, radius) in the auto-fitted
	// cylindrical frame.
	AutoCylinder

	// UserKey sorts by Options.Keys, one scalar per point, verbatim.
	UserKey
)

// Options carries the strategy selector and its parameters. Zero value
// is a valid plain XYZ sort.
type Options struct {
	// Mode selects the strategy; parameters below apply per mode.
	Mode Mode

	// ReverseX, ReverseY, ReverseZ flip individual axes in XYZ and
	// AutoXYZ modes without disturbing tie order on the other axes.
	ReverseX, ReverseY, ReverseZ bool

	// Reverse flips the order in AutoDirection (key negation) and
	// AutoCylinder (whole-sequence reversal) modes.
	Reverse bool

	// Reference is the base point for Distance mode.
	Reference r3.Vec

	// Axis is the explicit frame for Axial mode; nil means world axes.
	Axis *frame.Frame

	// Keys are the per-point scalars for UserKey mode.
	Keys []float64

	// DetectLimits makes Connections mode seed the walk (and its
	// restarts) at degree-1 points, so open chains start at an endpoint.
	DetectLimits bool
}

// DefaultOptions returns Options for a forward world-XYZ sort.
func DefaultOptions() Options {
	return Options{Mode: XYZ}
}

// Mesh is the plain geometric input: points, plus optional connectivity
// expressed in point indices. Edges and Faces may be nil independently;
// absent inputs produce absent outputs.
type Mesh struct {
	Points []r3.Vec
	Edges  [][2]int
	Faces  [][]int
}

// Result is the reordered output. Order holds original indices in new
// order — the permutation to reapply to any parallel per-point data.
// Edges and Faces are nil when the corresponding input was nil.
type Result struct {
	Points []r3.Vec
	Edges  [][2]int
	Faces  [][]int
	Order  []int
}

// Sort computes the point order for m under opts and re-indexes the
// mesh to match. It is a pure function: no state survives the call, and
// the same input always yields the same output.
//
// Errors: frame.ErrNoPoints for auto modes on empty input,
// sortby.ErrKeyCount for UserKey length mismatches,
// connex.ErrUnknownIndex / remap.ErrUnknownIndex for connectivity that
// references points outside the input, ErrUnknownMode otherwise.
func Sort(m Mesh, opts Options) (*Result, error) {
	switch opts.Mode {
	case XYZ:
		return finish(m, sortby.ByAxes(m.Points, opts.ReverseX, opts.ReverseY, opts.ReverseZ))

	case Distance:
		return finish(m, sortby.ByDistance(m.Points, opts.Reference))

	case Axial:
		axis := opts.Axis
		if axis == nil {
			axis = frame.World()
		}
		return finish(m, sortby.ByAxial(m.Points, axis))

	case Connections:
		return sortByConnections(m, opts.DetectLimits)

	case AutoXYZ:
		f, err := frame.Fit(m.Points)
		if err != nil {
			return nil, err
		}
		return finish(m, sortby.ByFrame(m.Points, f, opts.ReverseX, opts.ReverseY, opts.ReverseZ))

	case AutoDirection:
		f, err := frame.Fit(m.Points)
		if err != nil {
			return nil, err
		}
		return finish(m, sortby.ByDirection(m.Points, f.Direction, opts.Reverse))

	case AutoCylinder:
		f, err := frame.Fit(m.Points)
		if err != nil {
			return nil, err
		}
		return finish(m, sortby.ByCylinder(m.Points, f, opts.Reverse))

	case UserKey:
		perm, err := sortby.ByKeys(m.Points, opts.Keys)
		if err != nil {
			return nil, err
		}
		return finish(m, perm)

	default:
		return nil, ErrUnknownMode
	}
}

// finish routes every sorting strategy through the remapper, so points,
// edges, faces and the item-order trace always agree.
func finish(m Mesh, order []int) (*Result, error) {
	out, err := remap.Apply(order, m.Points, m.Edges, m.Faces)
	if err != nil {
		return nil, err
	}
	return &Result{Points: out.Points, Edges: out.Edges, Faces: out.Faces, Order: out.Order}, nil
}

// sortByConnections runs the connectivity walk. The walk itself emits
// the reindexed edges; faces (and points) still go through the
// remapper. Faces supplied without edges contribute their perimeter
// edges to the walk but stay a face-only output.
func sortByConnections(m Mesh, detectLimits bool) (*Result, error) {
	edges := m.Edges
	if edges == nil && len(m.Faces) > 0 {
		edges = FacesToEdges(m.Faces, true)
	}

	order, reindexed, err := connex.Build(len(m.Points), edges, detectLimits)
	if err != nil {
		return nil, err
	}

	out, err := remap.Apply(order, m.Points, nil, m.Faces)
	if err != nil {
		return nil, err
	}

	res := &Result{Points: out.Points, Faces: out.Faces, Order: out.Order}
	if m.Edges != nil {
		res.Edges = reindexed
	}
	return res, nil
}
