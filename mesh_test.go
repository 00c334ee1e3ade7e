package reorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geomcraft/reorder"
)

// TestFacesToEdges_Perimeter verifies each face contributes its closed
// perimeter, in vertex order.
func TestFacesToEdges_Perimeter(t *testing.T) {
	edges := reorder.FacesToEdges([][]int{{0, 1, 2}}, false)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, edges)
}

// TestFacesToEdges_Unique verifies shared edges between faces collapse
// to the first-seen copy, regardless of orientation.
func TestFacesToEdges_Unique(t *testing.T) {
	faces := [][]int{{0, 1, 2}, {2, 1, 3}} // edge 1-2 shared, reversed

	edges := reorder.FacesToEdges(faces, true)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 2}}, edges)
}

// TestFacesToEdges_DegenerateFaces verifies faces with fewer than two
// vertices contribute nothing.
func TestFacesToEdges_DegenerateFaces(t *testing.T) {
	assert.Nil(t, reorder.FacesToEdges([][]int{{7}, {}}, true))
}
