package grid

import (
	"github.com/katalvlaran/questgrid/dijkstra"
)

// Clone returns a fully independent deep copy of the graph for
// lookahead evaluation.
//
// Nodes are copied with their current baseline types baked in as the
// starting type, but with reveal state reset to the constructor
// default: the clone starts fully unrevealed. Both adjacency lists are
// deep-copied, so no slice is shared with the live graph.
// Complexity: O(W×H + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		width:      g.width,
		height:     g.height,
		nodes:      make([]Node, len(g.nodes)),
		live:       cloneAdjacency(g.live),
		original:   cloneAdjacency(g.original),
		unrevealed: g.width * g.height,
	}

	for idx, n := range g.nodes {
		c.nodes[idx] = Node{X: n.X, Y: n.Y, baseline: n.baseline}
		if n.baseline >= 2 {
			c.hasHidden = true
		}
	}

	return c
}

// cloneAdjacency deep-copies an adjacency list; nil entries stay nil.
func cloneAdjacency(adj [][]dijkstra.Edge) [][]dijkstra.Edge {
	out := make([][]dijkstra.Edge, len(adj))
	for i, edges := range adj {
		if edges == nil {
			continue
		}
		out[i] = make([]dijkstra.Edge, len(edges))
		copy(out[i], edges)
	}

	return out
}
