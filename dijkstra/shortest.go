package dijkstra

// ShortestPath computes minimum travel costs from source to every vertex
// reachable in adj, and reconstructs the vertex sequence to destination.
//
// adj is a read-only snapshot: adj[v] lists the edges leaving vertex v.
// Vertices with no edges are simply unreachable (unless they are the
// source); a nil edge list is valid.
//
// Returns:
//
//   - Result.Distances: per-vertex cost from source, Inf if unreachable.
//   - Result.Path: source..destination inclusive, empty when destination
//     is unreachable.
//   - err: ErrEmptyAdjacency, ErrVertexRange, or ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(adj [][]Edge, source, destination int) (Result, error) {
	// 1) Validate the snapshot and the endpoint ids.
	n := len(adj)
	if n == 0 {
		return Result{}, ErrEmptyAdjacency
	}
	if source < 0 || source >= n || destination < 0 || destination >= n {
		return Result{}, ErrVertexRange
	}

	// 2) Pre-scan all edges for negative weights.
	for _, edges := range adj {
		for _, e := range edges {
			if e.Weight < 0 {
				return Result{}, ErrNegativeWeight
			}
		}
	}

	// 3) dist[v] = +Inf for all v, 0 at the source; prev[v] = -1 (none).
	dist := make([]float64, n)
	prev := make([]int, n)
	for v := range dist {
		dist[v] = Inf
		prev[v] = -1
	}
	dist[source] = 0

	// 4) Seed the heap with the source at key 0.
	h := NewMinHeap(n)
	h.Insert(source, 0)

	// 5) Main loop: extract the minimum entry and relax its edges.
	for !h.IsEmpty() {
		u, d, _ := h.ExtractMin()

		// A key strictly above the recorded best means this entry was
		// superseded by a later Insert: retire it and move on.
		if d > dist[u] {
			continue
		}

		for _, e := range adj[u] {
			if nd := d + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
				h.Insert(e.To, nd)
			}
		}
	}

	// 6) Reconstruct the path by walking predecessor links backwards.
	return Result{Distances: dist, Path: buildPath(prev, dist, destination)}, nil
}

// buildPath walks prev links from destination back to the source (the
// one vertex whose prev is -1 on the chain) and reverses the sequence.
// Returns an empty slice when destination was never reached.
func buildPath(prev []int, dist []float64, destination int) []int {
	if dist[destination] == Inf {
		return []int{}
	}
	path := make([]int, 0, 8)
	for v := destination; v != -1; v = prev[v] {
		path = append(path, v)
	}
	// Reverse in place so the sequence runs source → destination.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
