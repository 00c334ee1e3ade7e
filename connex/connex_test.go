package connex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomcraft/reorder/connex"
)

// assertPermutation checks that order is a bijection on {0..n-1}.
func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	require.Len(t, order, n, "order must cover every point")
	seen := make([]bool, n)
	for _, idx := range order {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
		require.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
}

// TestBuild_OpenChain verifies the round-trip contract on a simple
// open chain: the walk starts at an endpoint, visits every point once,
// and the reindexed edges form the same chain in new indices.
func TestBuild_OpenChain(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}

	order, re, err := connex.Build(4, edges, true)
	require.NoError(t, err)

	assertPermutation(t, order, 4)
	assert.Contains(t, []int{0, 3}, order[0], "walk must start at a chain endpoint")
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, re,
		"reindexed edges must form the chain in new indices")
}

// TestBuild_ScrambledChain verifies the walk reassembles a chain whose
// edges arrive in arbitrary order and orientation.
func TestBuild_ScrambledChain(t *testing.T) {
	// Chain 0-1-2-3 presented out of order.
	edges := [][2]int{{2, 3}, {0, 1}, {1, 2}}

	order, re, err := connex.Build(4, edges, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, order, "limit at point 0 seeds the walk")
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, re)
}

// TestBuild_NoLimitDetection verifies the detection-off behavior: the
// walk starts at edge 0 as stored and restarts from the lowest
// unconsumed edge.
func TestBuild_NoLimitDetection(t *testing.T) {
	edges := [][2]int{{1, 2}, {0, 1}, {2, 3}}

	order, re, err := connex.Build(4, edges, false)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 0}, order,
		"edge 0 seeds the walk, edge (0,1) is reached by restart")
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {3, 0}}, re)
}

// TestBuild_DisjointSegments verifies that two disconnected segments
// come out consecutively, nothing lost, nothing duplicated.
func TestBuild_DisjointSegments(t *testing.T) {
	edges := [][2]int{{0, 1}, {2, 3}}

	order, re, err := connex.Build(4, edges, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, order)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, re,
		"second segment restarts from its own limit")
}

// TestBuild_IsolatedPoint verifies a degree-0 point lands exactly once
// at the end of the order and never inside a reindexed edge.
func TestBuild_IsolatedPoint(t *testing.T) {
	edges := [][2]int{{0, 2}}

	order, re, err := connex.Build(3, edges, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1}, order, "isolated point 1 appended last")
	assert.Equal(t, [][2]int{{0, 1}}, re)
	for _, e := range re {
		assert.NotEqual(t, 2, e[0], "isolated point must stay out of edges")
		assert.NotEqual(t, 2, e[1], "isolated point must stay out of edges")
	}
}

// TestBuild_ClosedLoop verifies a cycle (no limits to detect) walks
// around and closes on the start point.
func TestBuild_ClosedLoop(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}

	order, re, err := connex.Build(3, edges, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, re,
		"last edge must close back onto the start")
}

// TestBuild_HighDegreeBestEffort verifies the documented best-effort
// behavior for a degree-3 point: the walk consumes two incident edges,
// the third is reached by a limit restart, and every edge is consumed
// exactly once.
func TestBuild_HighDegreeBestEffort(t *testing.T) {
	// Point 1 touches three edges.
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}}

	order, re, err := connex.Build(4, edges, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, order)
	require.Len(t, re, len(edges), "every edge consumed exactly once")
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {3, 1}}, re,
		"the leftover spoke restarts from its limit, oriented from the limit point")
}

// TestBuild_LimitModeFallback verifies termination when limits exist
// but every remaining limit point is already visited: the builder must
// still consume all edges via the lowest-edge fallback.
func TestBuild_LimitModeFallback(t *testing.T) {
	// Open chain 0-1-2 plus a separate closed triangle 3-4-5: the
	// triangle has no limit points, so after the chain the walk can only
	// resume through the fallback.
	edges := [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}}

	order, re, err := connex.Build(6, edges, true)
	require.NoError(t, err)

	assertPermutation(t, order, 6)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, order)
	require.Len(t, re, len(edges), "fallback must consume the loop edges")
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {5, 3}}, re)
}

// TestBuild_NoEdges verifies edge-free input: order is the identity and
// no edges come back.
func TestBuild_NoEdges(t *testing.T) {
	order, re, err := connex.Build(3, nil, true)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Empty(t, re)
}

// TestBuild_UnknownIndex verifies that an out-of-range endpoint is
// surfaced immediately as ErrUnknownIndex.
func TestBuild_UnknownIndex(t *testing.T) {
	_, _, err := connex.Build(3, [][2]int{{0, 5}}, true)
	assert.ErrorIs(t, err, connex.ErrUnknownIndex)

	_, _, err = connex.Build(3, [][2]int{{-1, 1}}, false)
	assert.ErrorIs(t, err, connex.ErrUnknownIndex)
}

// TestBuild_DuplicateEdges verifies parallel edges are tolerated: each
// copy is consumed once and the order stays a permutation.
func TestBuild_DuplicateEdges(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 1}, {1, 2}}

	order, re, err := connex.Build(3, edges, false)
	require.NoError(t, err)

	assertPermutation(t, order, 3)
	require.Len(t, re, 3, "both parallel copies consumed")
}
