package grid

import (
	"fmt"
	"strings"
)

// String renders the grid row by row with each node's baseline type.
// Intended for debugging and log dumps only.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Grid Representation:\n")
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprintf(&sb, "%d ", g.nodes[g.Index(x, y)].baseline)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// AdjacencyString renders the live adjacency list, one node per line.
// Intended for debugging only.
func (g *Graph) AdjacencyString() string {
	var sb strings.Builder
	sb.WriteString("Adjacency List:\n")
	for idx, edges := range g.live {
		fmt.Fprintf(&sb, "Node %d:", idx)
		for _, e := range edges {
			fmt.Fprintf(&sb, " %d(%g)", e.To, e.Weight)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
