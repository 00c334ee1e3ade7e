package connex

import (
	"errors"
	"fmt"
)

// ErrUnknownIndex is returned when an edge references a point index
// outside the supplied point range. It indicates caller data corruption
// and is never recovered from.
var ErrUnknownIndex = errors.New("connex: edge references a point outside the input range")

// halfEdge records one incidence: which edge touches a point and which
// endpoint of that edge the point occupies.
type halfEdge struct {
	edge int // index into the input edge list
	side int // 0 or 1: endpoint slot the point occupies
}

// limit is a degree-1 point, a path endpoint usable to seed or restart
// the traversal.
type limit struct {
	point int
	side  int
	edge  int
}

// Build walks the edge list of n points and returns the visitation
// order (original indices, one per output position) together with the
// edges reindexed into that order, in traversal order and orientation.
//
// With detectLimits set, degree-1 points seed the walk and its restarts,
// so open chains start at an endpoint and discontinuities resume at the
// next endpoint. Points untouched by any edge are appended at the end in
// input order.
//
// The returned order is always a permutation of {0..n-1}; every edge is
// consumed exactly once.
func Build(n int, edges [][2]int, detectLimits bool) (order []int, reindexed [][2]int, err error) {
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, nil, fmt.Errorf("%w: edge (%d,%d) with %d points", ErrUnknownIndex, e[0], e[1], n)
		}
	}

	// Incidence lists end up in ascending edge order per point, which is
	// what makes every later choice deterministic.
	incident := make([][]halfEdge, n)
	for i, e := range edges {
		incident[e[0]] = append(incident[e[0]], halfEdge{edge: i, side: 0})
		incident[e[1]] = append(incident[e[1]], halfEdge{edge: i, side: 1})
	}

	var limits []limit
	if detectLimits {
		limits = findLimits(incident)
	}

	order = make([]int, 0, n)
	newIndex := make([]int, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	visit := func(orig int) int {
		if newIndex[orig] < 0 {
			newIndex[orig] = len(order)
			order = append(order, orig)
		}
		return newIndex[orig]
	}

	consumed := make([]bool, len(edges))
	reindexed = make([][2]int, 0, len(edges))
	remaining := len(edges)

	// Walk state: current edge and which endpoint we enter it from.
	cur, side := -1, 0
	nextLimit := 0
	if len(limits) > 0 {
		cur, side = limits[0].edge, limits[0].side
		nextLimit = 1
	} else if len(edges) > 0 {
		cur, side = 0, 0
	}
	lowest := 0 // cursor for the lowest-index unconsumed edge

	for remaining > 0 {
		if cur < 0 {
			// Dead end with edges left: prefer an unvisited limit point,
			// fall back to the lowest-index unconsumed edge.
			for nextLimit < len(limits) {
				lim := limits[nextLimit]
				nextLimit++
				if newIndex[lim.point] < 0 {
					cur, side = lim.edge, lim.side
					break
				}
			}
			if cur < 0 {
				for consumed[lowest] {
					lowest++
				}
				cur, side = lowest, 0
			}
		}

		consumed[cur] = true
		remaining--

		from, to := edges[cur][0], edges[cur][1]
		if side == 1 {
			from, to = to, from
		}
		a := visit(from)
		b := visit(to)
		reindexed = append(reindexed, [2]int{a, b})

		cur, side = nextEdge(incident[to], consumed)
	}

	// Degree-0 points come last, in input order, and stay out of the
	// reindexed edges.
	for i := 0; i < n; i++ {
		if newIndex[i] < 0 {
			visit(i)
		}
	}

	return order, reindexed, nil
}

// findLimits collects every degree-1 point in ascending point order,
// tagged with its single incident edge and the endpoint slot it holds.
func findLimits(incident [][]halfEdge) []limit {
	var limits []limit
	for p, hes := range incident {
		if len(hes) == 1 {
			limits = append(limits, limit{point: p, side: hes[0].side, edge: hes[0].edge})
		}
	}
	return limits
}

// nextEdge picks the continuation out of a point's incident edges: the
// lowest-index unconsumed edge holding the point as endpoint 0, else
// the lowest holding it as endpoint 1. Returns (-1, 0) on a dead end.
func nextEdge(hes []halfEdge, consumed []bool) (edge, side int) {
	fallback := -1
	for _, he := range hes {
		if consumed[he.edge] {
			continue
		}
		if he.side == 0 {
			return he.edge, 0
		}
		if fallback < 0 {
			fallback = he.edge
		}
	}
	if fallback < 0 {
		return -1, 0
	}
	return fallback, 1
}
