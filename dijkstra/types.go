// Package dijkstra defines the core types and sentinel errors for the
// shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptyAdjacency indicates the adjacency snapshot contains no vertices.
	ErrEmptyAdjacency = errors.New("dijkstra: adjacency list must contain at least one vertex")

	// ErrVertexRange indicates a source or destination id outside [0, V).
	ErrVertexRange = errors.New("dijkstra: vertex id out of range")

	// ErrNegativeWeight indicates a negative edge weight in the snapshot.
	// Dijkstra's relaxation order is only valid for non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Inf marks an unreachable vertex in Result.Distances.
var Inf = math.Inf(1)

// Edge is one adjacency entry: the target vertex id and the non-negative
// traversal weight. Undirected connections appear as two symmetric
// entries, one in each endpoint's edge list.
type Edge struct {
	To     int     // target vertex id
	Weight float64 // travel cost, ≥ 0
}

// Result carries the outcome of one ShortestPath run.
//
// Distances is indexed by vertex id: Inf for unreachable vertices,
// 0 at the source. Path is the vertex sequence from source to
// destination inclusive, or empty when the destination is unreachable.
type Result struct {
	Distances []float64
	Path      []int
}
