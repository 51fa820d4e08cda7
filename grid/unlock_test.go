package grid_test

import (
	"testing"

	"github.com/katalvlaran/questgrid/dijkstra"
	"github.com/katalvlaran/questgrid/grid"
	"github.com/stretchr/testify/require"
)

// appliedSet is a minimal AppliedSet for tests.
type appliedSet map[int]bool

func (s appliedSet) Contains(code int) bool { return s[code] }

// gatedCorridors builds a 5×3 graph with two disjoint hidden corridors
// from (1,1) to (4,1): the top one gated by code 7 (total cost 10), the
// bottom one by code 8 (total cost 3). Both corridors are revealed, so
// their live edges are quarantined.
func gatedCorridors(t *testing.T) *grid.Graph {
	t.Helper()
	g, err := grid.NewGraph(5, 3)
	require.NoError(t, err)

	for x := 0; x < 5; x++ {
		for y := 0; y < 3; y++ {
			g.AddNode(x, y, grid.TypeBlocked)
		}
	}
	g.AddNode(0, 1, grid.TypePassable)
	g.AddNode(1, 1, grid.TypePassable)
	g.AddNode(4, 1, grid.TypePassable)
	g.AddNode(2, 0, 7)
	g.AddNode(3, 0, 7)
	g.AddNode(2, 2, 8)
	g.AddNode(3, 2, 8)

	g.AddEdge(0, 1, 1, 1, 1)
	// Corridor 7: cost 4+4+2 = 10.
	g.AddEdge(1, 1, 2, 0, 4)
	g.AddEdge(2, 0, 3, 0, 4)
	g.AddEdge(3, 0, 4, 1, 2)
	// Corridor 8: cost 1+1+1 = 3.
	g.AddEdge(1, 1, 2, 2, 1)
	g.AddEdge(2, 2, 3, 2, 1)
	g.AddEdge(3, 2, 4, 1, 1)

	for _, c := range [][2]int{{2, 0}, {3, 0}, {2, 2}, {3, 2}} {
		g.RevealNode(c[0], c[1])
	}

	return g
}

//----------------------------------------------------------------------------//
// UnlockType
//----------------------------------------------------------------------------//

// TestUnlockType_RestoresQuarantinedEdges unlocks one corridor and
// verifies its nodes turn passable with edges back, while the other
// corridor stays gated.
func TestUnlockType_RestoresQuarantinedEdges(t *testing.T) {
	g := gatedCorridors(t)

	g.UnlockType(8)

	require.Equal(t, grid.TypePassable, g.NodeAt(2, 2).BaselineType())
	require.Equal(t, grid.TypePassable, g.NodeAt(3, 2).BaselineType())
	require.Len(t, g.Adjacency()[g.Index(2, 2)], 2)
	require.Len(t, g.Adjacency()[g.Index(3, 2)], 2)

	// Corridor 7 remains untouched and quarantined.
	require.Equal(t, 7, g.NodeAt(2, 0).BaselineType())
	require.Empty(t, g.Adjacency()[g.Index(2, 0)])

	res, err := dijkstra.ShortestPath(g.Adjacency(), g.Index(1, 1), g.Index(4, 1))
	require.NoError(t, err)
	require.Equal(t, 3.0, res.Distances[g.Index(4, 1)])
}

// TestUnlockType_DoubleApplyIsIdempotent: the second application finds
// no matching baseline and must leave the state identical.
func TestUnlockType_DoubleApplyIsIdempotent(t *testing.T) {
	g := gatedCorridors(t)

	g.UnlockType(8)
	edgesAfterFirst := len(g.Adjacency()[g.Index(2, 2)])
	count := g.Unrevealed()

	g.UnlockType(8)
	require.Len(t, g.Adjacency()[g.Index(2, 2)], edgesAfterFirst)
	require.Equal(t, count, g.Unrevealed())
}

// TestUnlockType_UnknownCode is a no-op.
func TestUnlockType_UnknownCode(t *testing.T) {
	g := gatedCorridors(t)
	g.UnlockType(42)
	require.Equal(t, 7, g.NodeAt(2, 0).BaselineType())
	require.Equal(t, 8, g.NodeAt(2, 2).BaselineType())
}

//----------------------------------------------------------------------------//
// EvaluateUnlockOptions
//----------------------------------------------------------------------------//

// TestEvaluateUnlockOptions_PicksCheapest scores both corridors and must
// choose code 8 (cost 3 over cost 10) without mutating the live graph.
func TestEvaluateUnlockOptions_PicksCheapest(t *testing.T) {
	g := gatedCorridors(t)

	best, err := g.EvaluateUnlockOptions([]int{7, 8}, g.Index(1, 1), g.Index(4, 1), nil)
	require.NoError(t, err)
	require.Equal(t, 8, best)

	// Lookahead must not leak into the live graph.
	require.Equal(t, 7, g.NodeAt(2, 0).BaselineType())
	require.Equal(t, 8, g.NodeAt(2, 2).BaselineType())
	require.Empty(t, g.Adjacency()[g.Index(2, 2)])
}

// TestEvaluateUnlockOptions_FirstWinsOnTie gives both corridors equal
// cost; strict < keeps the first-seen candidate.
func TestEvaluateUnlockOptions_FirstWinsOnTie(t *testing.T) {
	g, err := grid.NewGraph(4, 3)
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			g.AddNode(x, y, grid.TypeBlocked)
		}
	}
	g.AddNode(0, 1, grid.TypePassable)
	g.AddNode(3, 1, grid.TypePassable)
	g.AddNode(1, 0, 5)
	g.AddNode(1, 2, 6)
	g.AddEdge(0, 1, 1, 0, 2)
	g.AddEdge(1, 0, 3, 1, 2)
	g.AddEdge(0, 1, 1, 2, 2)
	g.AddEdge(1, 2, 3, 1, 2)
	g.RevealNode(1, 0)
	g.RevealNode(1, 2)

	best, err := g.EvaluateUnlockOptions([]int{6, 5}, g.Index(0, 1), g.Index(3, 1), nil)
	require.NoError(t, err)
	require.Equal(t, 6, best)
}

// TestEvaluateUnlockOptions_SkipsApplied: an applied candidate is never
// re-evaluated; with only applied candidates the sentinel comes back.
func TestEvaluateUnlockOptions_SkipsApplied(t *testing.T) {
	g := gatedCorridors(t)
	applied := appliedSet{8: true}

	best, err := g.EvaluateUnlockOptions([]int{7, 8}, g.Index(1, 1), g.Index(4, 1), applied)
	require.NoError(t, err)
	require.Equal(t, 7, best)

	best, err = g.EvaluateUnlockOptions([]int{8}, g.Index(1, 1), g.Index(4, 1), applied)
	require.NoError(t, err)
	require.Equal(t, grid.NoOption, best)
}

// TestEvaluateUnlockOptions_AllUnreachable: candidates whose unlock
// still leaves the destination unreachable yield the sentinel.
func TestEvaluateUnlockOptions_AllUnreachable(t *testing.T) {
	g := gatedCorridors(t)

	// Code 9 matches no node; the corridors stay quarantined.
	best, err := g.EvaluateUnlockOptions([]int{9}, g.Index(1, 1), g.Index(4, 1), nil)
	require.NoError(t, err)
	require.Equal(t, grid.NoOption, best)
}

// TestEvaluateUnlockOptions_NoCandidates returns the sentinel.
func TestEvaluateUnlockOptions_NoCandidates(t *testing.T) {
	g := gatedCorridors(t)

	best, err := g.EvaluateUnlockOptions(nil, g.Index(1, 1), g.Index(4, 1), nil)
	require.NoError(t, err)
	require.Equal(t, grid.NoOption, best)
}
