// Package dijkstra provides a single-source shortest-path engine over a
// plain adjacency-list snapshot, built on a lazy-deletion binary min-heap.
//
// Overview:
//
//   - ShortestPath computes minimum travel costs from a source vertex to
//     every reachable vertex in a graph with non-negative edge weights,
//     and reconstructs the vertex sequence to one destination.
//   - The input is a value snapshot: a slice of edge lists indexed by a
//     dense integer vertex id. The engine never mutates it, so callers
//     may pass the live adjacency of a mutable graph between mutations.
//   - MinHeap is the priority queue backing the engine: a 1-indexed
//     array binary heap keyed by float64 with no decrease-key operation.
//     Improving a vertex's distance pushes a brand-new entry; outdated
//     duplicates are discarded at extraction time by comparing against
//     the best-known distance ("lazy deletion").
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex relaxation may push one heap entry: up to E pushes.
//   - Each heap Insert/ExtractMin costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor arrays.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyAdjacency: the adjacency snapshot has no vertices.
//   - ErrVertexRange:    source or destination id is outside [0, V).
//   - ErrNegativeWeight: a negative edge weight was detected by the
//     upfront O(E) pre-scan. Correctness is only guaranteed for
//     non-negative weights, so the engine fails fast instead.
//
// Tie-breaking between equal heap keys follows the heap's structural
// order and is not specified; callers must only rely on "a minimum-key
// entry is returned".
package dijkstra
