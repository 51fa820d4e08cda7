// Package grid defines core types, terrain codes, and sentinel errors
// for the mutable grid graph.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
)

// Terrain codes stored in Node baselines. Values ≥ 2 are hidden-and-gated;
// the value itself is the unlock code.
const (
	// TypePassable marks freely traversable terrain.
	TypePassable = 0
	// TypeBlocked marks permanently impassable terrain.
	TypeBlocked = 1
)

// NoOption is the sentinel returned by EvaluateUnlockOptions when no
// candidate was evaluated or none of them makes the destination
// reachable.
const NoOption = -1

// AppliedSet reports whether an unlock code has already been committed.
// EvaluateUnlockOptions skips applied candidates entirely. A nil
// AppliedSet means nothing has been applied yet.
type AppliedSet interface {
	Contains(code int) bool
}

// Node is a single grid cell: its coordinates, its baseline terrain
// type, and whether it has been revealed. The baseline is write-once
// except through an unlock event, which resets it to TypePassable.
type Node struct {
	X, Y     int
	baseline int
	revealed bool
}

// BaselineType returns the node's true terrain code regardless of
// reveal state.
func (n *Node) BaselineType() int { return n.baseline }

// Revealed reports whether the node has been revealed.
func (n *Node) Revealed() bool { return n.revealed }

// EffectiveType is the terrain code visible to the path engine:
// blocked nodes always report TypeBlocked; any other node reports
// TypePassable until revealed, after which it reports its baseline.
func (n *Node) EffectiveType() int {
	if n.revealed {
		return n.baseline
	}
	if n.baseline == TypeBlocked {
		return TypeBlocked
	}

	return TypePassable
}
