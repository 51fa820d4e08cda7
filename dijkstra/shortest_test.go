// Package dijkstra_test contains unit tests for the shortest-path
// engine: validation, distance correctness, path reconstruction, and
// unreachable destinations.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/questgrid/dijkstra"
	"github.com/stretchr/testify/require"
)

// undirected appends the symmetric pair of entries for an a-b edge.
func undirected(adj [][]dijkstra.Edge, a, b int, w float64) {
	adj[a] = append(adj[a], dijkstra.Edge{To: b, Weight: w})
	adj[b] = append(adj[b], dijkstra.Edge{To: a, Weight: w})
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestShortestPath_Validation(t *testing.T) {
	cases := []struct {
		name     string
		adj      [][]dijkstra.Edge
		src, dst int
		err      error
	}{
		{"EmptyAdjacency", nil, 0, 0, dijkstra.ErrEmptyAdjacency},
		{"SourceNegative", make([][]dijkstra.Edge, 3), -1, 2, dijkstra.ErrVertexRange},
		{"SourceTooLarge", make([][]dijkstra.Edge, 3), 3, 0, dijkstra.ErrVertexRange},
		{"DestinationTooLarge", make([][]dijkstra.Edge, 3), 0, 5, dijkstra.ErrVertexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.ShortestPath(tc.adj, tc.src, tc.dst)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestShortestPath_NegativeWeightRejected(t *testing.T) {
	adj := make([][]dijkstra.Edge, 2)
	undirected(adj, 0, 1, -5)

	_, err := dijkstra.ShortestPath(adj, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

//----------------------------------------------------------------------------//
// Correctness
//----------------------------------------------------------------------------//

// TestShortestPath_DiamondGraph is the canonical four-vertex diamond:
// edges (0-1,4), (0-2,1), (2-1,2), (1-3,1), (2-3,5). The cheapest route
// to 3 threads 0→2→1→3 for a total of 4.
func TestShortestPath_DiamondGraph(t *testing.T) {
	adj := make([][]dijkstra.Edge, 4)
	undirected(adj, 0, 1, 4)
	undirected(adj, 0, 2, 1)
	undirected(adj, 2, 1, 2)
	undirected(adj, 1, 3, 1)
	undirected(adj, 2, 3, 5)

	res, err := dijkstra.ShortestPath(adj, 0, 3)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 3, 1, 4}, res.Distances)
	require.Equal(t, []int{0, 2, 1, 3}, res.Path)
}

// TestShortestPath_DistancesNonDecreasingAlongPath checks the ordering
// property: distances recorded along a returned path never decrease.
func TestShortestPath_DistancesNonDecreasingAlongPath(t *testing.T) {
	adj := make([][]dijkstra.Edge, 6)
	undirected(adj, 0, 1, 2)
	undirected(adj, 1, 2, 2)
	undirected(adj, 0, 3, 1)
	undirected(adj, 3, 4, 1)
	undirected(adj, 4, 2, 1)
	undirected(adj, 2, 5, 3)

	res, err := dijkstra.ShortestPath(adj, 0, 5)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	require.Equal(t, 0, res.Path[0])
	require.Equal(t, 5, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		require.LessOrEqual(t, res.Distances[res.Path[i-1]], res.Distances[res.Path[i]])
	}
}

func TestShortestPath_SourceIsDestination(t *testing.T) {
	adj := make([][]dijkstra.Edge, 2)
	undirected(adj, 0, 1, 1)

	res, err := dijkstra.ShortestPath(adj, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distances[0])
	require.Equal(t, []int{0}, res.Path)
}

func TestShortestPath_UnreachableDestination(t *testing.T) {
	// Two disconnected pairs: 0-1 and 2-3.
	adj := make([][]dijkstra.Edge, 4)
	undirected(adj, 0, 1, 1)
	undirected(adj, 2, 3, 1)

	res, err := dijkstra.ShortestPath(adj, 0, 3)
	require.NoError(t, err)
	require.Equal(t, dijkstra.Inf, res.Distances[3])
	require.Empty(t, res.Path)
}

// TestShortestPath_ZeroWeightEdges verifies zero-cost edges are legal
// and traversed.
func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	adj := make([][]dijkstra.Edge, 3)
	undirected(adj, 0, 1, 0)
	undirected(adj, 1, 2, 0)

	res, err := dijkstra.ShortestPath(adj, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distances[2])
	require.Equal(t, []int{0, 1, 2}, res.Path)
}

// TestShortestPath_StaleEntriesRetired builds a graph where vertex 2 is
// first reached expensively (pushing a stale heap entry) and then
// cheaply; the stale duplicate must not corrupt the result.
func TestShortestPath_StaleEntriesRetired(t *testing.T) {
	adj := make([][]dijkstra.Edge, 4)
	undirected(adj, 0, 2, 10)
	undirected(adj, 0, 1, 1)
	undirected(adj, 1, 2, 1)
	undirected(adj, 2, 3, 1)

	res, err := dijkstra.ShortestPath(adj, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distances[2])
	require.Equal(t, 3.0, res.Distances[3])
	require.Equal(t, []int{0, 1, 2, 3}, res.Path)
}
