package reorder_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/geomcraft/reorder"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Sort (Distance mode)
////////////////////////////////////////////////////////////////////////////////

// ExampleSort orders scattered points by distance to the origin and
// reapplies the resulting item order to the edge that came with them.
func ExampleSort() {
	m := reorder.Mesh{
		Points: []r3.Vec{{X: 3}, {X: 1}, {X: 2}},
		Edges:  [][2]int{{0, 1}},
	}

	out, _ := reorder.Sort(m, reorder.Options{Mode: reorder.Distance})
	fmt.Println("order:", out.Order)
	fmt.Println("edges:", out.Edges)

	// Output:
	// order: [1 2 0]
	// edges: [[2 0]]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Sort (Connections mode)
////////////////////////////////////////////////////////////////////////////////

// ExampleSort_connections reassembles a polyline from an unordered edge
// list. Limit detection starts the walk at the chain's open end.
func ExampleSort_connections() {
	m := reorder.Mesh{
		Points: []r3.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}},
		Edges:  [][2]int{{2, 3}, {1, 2}, {0, 1}},
	}

	out, _ := reorder.Sort(m, reorder.Options{Mode: reorder.Connections, DetectLimits: true})
	fmt.Println("order:", out.Order)
	fmt.Println("edges:", out.Edges)

	// Output:
	// order: [0 1 2 3]
	// edges: [[0 1] [1 2] [2 3]]
}
