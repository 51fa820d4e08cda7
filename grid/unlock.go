package grid

import (
	"github.com/katalvlaran/questgrid/dijkstra"
)

// UnlockType permanently reclassifies every node whose baseline equals
// code: the baseline becomes TypePassable and the node's live adjacency
// entry is replaced with a fresh copy of its original entry, restoring
// all quarantined or never-granted edges.
//
// Applying the same code twice is a no-op the second time: no node
// matches anymore, so no edges are doubled.
// Complexity: O(W×H + restored edges).
func (g *Graph) UnlockType(code int) {
	for idx := range g.nodes {
		n := &g.nodes[idx]
		if n.baseline != code {
			continue
		}
		n.baseline = TypePassable

		restored := make([]dijkstra.Edge, len(g.original[idx]))
		copy(restored, g.original[idx])
		g.live[idx] = restored
	}
}

// EvaluateUnlockOptions scores each candidate unlock code not already
// applied: the graph is deep-cloned, the candidate is unlocked on the
// clone, and the shortest-path engine is re-run from source to
// destination on the clone's live adjacency.
//
// The candidate with the strictly smallest destination distance wins;
// ties keep the first-seen candidate. When no candidate was evaluated,
// or every clone leaves the destination unreachable, the result is
// NoOption. The live graph is never mutated.
//
// applied may be nil, meaning no code has been committed yet.
func (g *Graph) EvaluateUnlockOptions(candidates []int, source, destination int, applied AppliedSet) (int, error) {
	best := NoOption
	shortest := dijkstra.Inf

	for _, code := range candidates {
		if applied != nil && applied.Contains(code) {
			continue
		}

		tmp := g.Clone()
		tmp.UnlockType(code)

		res, err := dijkstra.ShortestPath(tmp.Adjacency(), source, destination)
		if err != nil {
			return NoOption, err
		}

		if d := res.Distances[destination]; d < shortest {
			shortest = d
			best = code
		}
	}

	return best, nil
}
