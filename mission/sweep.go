package mission

// sweepCircle reveals the full visibility circle around the current
// position and reports whether any newly revealed node invalidates the
// plan. Used on the first step after a (re)plan, when the whole circle
// may contain cells the previous position never exposed.
func (r *Runner) sweepCircle(radius int, path []int) bool {
	needed := false
	for x := r.curX - radius; x <= r.curX+radius; x++ {
		for y := r.curY - radius; y <= r.curY+radius; y++ {
			if r.g.InBounds(x, y) && r.g.WithinCircle(r.curX, r.curY, x, y, radius) {
				needed = r.revealAndCheck(x, y, path) || needed
			}
		}
	}

	return needed
}

// sweepDirectional reveals only the sliver of the circle newly exposed
// by the last unit movement, bounding the scan on the axis of movement
// between the previous and current coordinate extended by radius.
func (r *Runner) sweepDirectional(prevX, prevY, radius int, path []int) bool {
	needed := false
	dx, dy := r.curX-prevX, r.curY-prevY

	switch {
	case dx == 1: // moved right
		for x := prevX; x <= r.curX+radius; x++ {
			for y := r.curY - radius; y <= r.curY+radius; y++ {
				if r.g.InBounds(x, y) && r.g.WithinCircle(r.curX, r.curY, x, y, radius) {
					needed = r.revealAndCheck(x, y, path) || needed
				}
			}
		}
	case dx == -1: // moved left
		for x := r.curX - radius; x <= prevX; x++ {
			for y := r.curY - radius; y <= r.curY+radius; y++ {
				if r.g.InBounds(x, y) && r.g.WithinCircle(r.curX, r.curY, x, y, radius) {
					needed = r.revealAndCheck(x, y, path) || needed
				}
			}
		}
	case dy == 1: // moved down the y axis
		for x := r.curX - radius; x <= r.curX+radius; x++ {
			for y := prevY; y <= r.curY+radius; y++ {
				if r.g.InBounds(x, y) && r.g.WithinCircle(r.curX, r.curY, x, y, radius) {
					needed = r.revealAndCheck(x, y, path) || needed
				}
			}
		}
	case dy == -1: // moved up the y axis
		for x := r.curX - radius; x <= r.curX+radius; x++ {
			for y := r.curY - radius; y <= prevY; y++ {
				if r.g.InBounds(x, y) && r.g.WithinCircle(r.curX, r.curY, x, y, radius) {
					needed = r.revealAndCheck(x, y, path) || needed
				}
			}
		}
	}

	return needed
}

// revealAndCheck reveals (x, y) if still hidden and reports true when
// the node both lies on the planned path and carries a baseline type
// ≥ 1 (permanently blocked or still-gated): the plan threaded through
// terrain that just turned out to be impassable.
func (r *Runner) revealAndCheck(x, y int, path []int) bool {
	if !r.g.RevealNode(x, y) {
		return false
	}

	idx := r.g.Index(x, y)
	if r.g.NodeAt(x, y).BaselineType() >= 1 && containsIndex(path, idx) {
		return true
	}

	return false
}

// containsIndex reports whether idx occurs in path.
func containsIndex(path []int, idx int) bool {
	for _, v := range path {
		if v == idx {
			return true
		}
	}

	return false
}
