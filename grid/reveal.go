package grid

// RevealNode reveals the node at (x, y). It is idempotent: revealing an
// already-revealed node changes nothing and returns false.
//
// On a first reveal the unrevealed counter drops, and a hidden node
// (baseline ≥ 2) is quarantined: its outgoing entries are cleared from
// the live adjacency list until an unlock restores them. Entries held
// by its neighbours are left in place; with the node's own list empty
// it is a dead end for the path engine.
func (g *Graph) RevealNode(x, y int) bool {
	idx := g.Index(x, y)
	n := &g.nodes[idx]
	if n.revealed {
		return false
	}
	n.revealed = true
	g.unrevealed--

	if n.baseline >= 2 {
		g.live[idx] = nil
	}

	return true
}

// RevealInCircle reveals every in-bounds node whose squared Euclidean
// distance to (cx, cy) is at most radius², boundary inclusive.
// Complexity: O(radius²).
func (g *Graph) RevealInCircle(cx, cy, radius int) {
	for x := cx - radius; x <= cx+radius; x++ {
		for y := cy - radius; y <= cy+radius; y++ {
			if g.InBounds(x, y) && g.WithinCircle(cx, cy, x, y, radius) {
				g.RevealNode(x, y)
			}
		}
	}
}

// WithinCircle reports whether (x, y) lies within the disc of the given
// radius centred at (cx, cy), boundary inclusive.
func (g *Graph) WithinCircle(cx, cy, x, y, radius int) bool {
	dx, dy := x-cx, y-cy

	return dx*dx+dy*dy <= radius*radius
}
