package grid

import (
	"github.com/katalvlaran/questgrid/dijkstra"
)

// Graph is a width×height grid of Nodes with two adjacency
// representations: the live list the path engine queries, and the
// original snapshot captured at construction that restores edges on
// unlock. Dimensions are immutable after construction.
//
// Adjacency entries are keyed by the linear index y + x*height.
type Graph struct {
	width, height int
	nodes         []Node
	live          [][]dijkstra.Edge
	original      [][]dijkstra.Edge
	unrevealed    int  // nodes not yet revealed
	hasHidden     bool // any node constructed with baseline ≥ 2
	allRevealed   bool // latched once unrevealed hits zero
}

// NewGraph allocates an empty graph of the given dimensions.
// Returns ErrBadDimensions when either is non-positive.
// Complexity: O(W×H) time and memory.
func NewGraph(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	n := width * height

	return &Graph{
		width:      width,
		height:     height,
		nodes:      make([]Node, n),
		live:       make([][]dijkstra.Edge, n),
		original:   make([][]dijkstra.Edge, n),
		unrevealed: n,
	}, nil
}

// Width returns the grid width.
func (g *Graph) Width() int { return g.width }

// Height returns the grid height.
func (g *Graph) Height() int { return g.height }

// Index maps (x, y) to the linear adjacency index y + x*height.
// Complexity: O(1).
func (g *Graph) Index(x, y int) int {
	return y + x*g.height
}

// Coordinates converts a linear index back to (x, y).
// Complexity: O(1).
func (g *Graph) Coordinates(idx int) (x, y int) {
	return idx / g.height, idx % g.height
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// NodeAt returns the node at (x, y). Coordinates are a caller
// invariant: they must be in bounds.
func (g *Graph) NodeAt(x, y int) *Node {
	return &g.nodes[g.Index(x, y)]
}

// AddNode places a node at (x, y) with the given baseline type.
// A type ≥ 2 flags the graph as containing hidden nodes, which gates
// all reveal work.
func (g *Graph) AddNode(x, y, baselineType int) {
	g.nodes[g.Index(x, y)] = Node{X: x, Y: y, baseline: baselineType}
	if baselineType >= 2 {
		g.hasHidden = true
	}
}

// AddEdge records an undirected edge between (ax, ay) and (bx, by) with
// the given non-negative weight, appending symmetric entries to both
// the live and the original adjacency lists.
func (g *Graph) AddEdge(ax, ay, bx, by int, weight float64) {
	a, b := g.Index(ax, ay), g.Index(bx, by)

	g.live[a] = append(g.live[a], dijkstra.Edge{To: b, Weight: weight})
	g.live[b] = append(g.live[b], dijkstra.Edge{To: a, Weight: weight})

	g.original[a] = append(g.original[a], dijkstra.Edge{To: b, Weight: weight})
	g.original[b] = append(g.original[b], dijkstra.Edge{To: a, Weight: weight})
}

// MarkImpassableEdge removes the symmetric edge between (ax, ay) and
// (bx, by) from the live list only; the original snapshot retains it.
// Used for edges touching a baseline-blocked endpoint.
func (g *Graph) MarkImpassableEdge(ax, ay, bx, by int) {
	a, b := g.Index(ax, ay), g.Index(bx, by)
	g.live[a] = dropEdgesTo(g.live[a], b)
	g.live[b] = dropEdgesTo(g.live[b], a)
}

// Adjacency returns the live adjacency list. Callers treat it as a
// read-only snapshot for path queries; it stays valid until the next
// reveal or unlock mutation.
func (g *Graph) Adjacency() [][]dijkstra.Edge { return g.live }

// OriginalAdjacency returns the immutable construction-time snapshot.
func (g *Graph) OriginalAdjacency() [][]dijkstra.Edge { return g.original }

// HasHiddenNodes reports whether any node was constructed with a
// baseline type ≥ 2. When false, reveal work can be skipped entirely.
func (g *Graph) HasHiddenNodes() bool { return g.hasHidden }

// AllRevealed reports whether every node has been revealed, as latched
// by CheckAllRevealed.
func (g *Graph) AllRevealed() bool { return g.allRevealed }

// Unrevealed returns the count of nodes not yet revealed.
func (g *Graph) Unrevealed() int { return g.unrevealed }

// CheckAllRevealed latches the all-revealed flag once the unrevealed
// counter reaches zero.
func (g *Graph) CheckAllRevealed() {
	if g.unrevealed == 0 {
		g.allRevealed = true
	}
}

// dropEdgesTo returns edges with every entry targeting the given index
// removed, filtering in place.
func dropEdgesTo(edges []dijkstra.Edge, to int) []dijkstra.Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.To != to {
			kept = append(kept, e)
		}
	}

	return kept
}
