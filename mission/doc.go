// Package mission drives a sequence of waypoints across a progressively
// revealed grid: reveal-before-plan, path-follow with incremental
// revelation, recalculation when a revealed obstacle invalidates the
// plan, objective detection, and wizard-assisted unlock decisions
// between missions.
//
// The Runner owns the live grid.Graph exclusively for the duration of a
// run. Per mission it repeats: reveal a circle around the current
// position, query the shortest-path engine on the live adjacency, and
// walk the result node by node. The first step after a (re)plan reveals
// the full visibility circle; each subsequent step only sweeps the half
// of the circle newly exposed by the last unit movement, bounded on the
// axis of movement. Whenever a sweep reveals a node that sits on the planned
// path with a baseline type ≥ 1, the walk aborts and planning restarts.
//
// A mission carrying wizard options triggers a lookahead after its
// objective is reached: each candidate unlock code not yet applied is
// scored on a throwaway clone against the next mission's target, the
// winner is committed to the live graph, and the Memo remembers it so
// no later mission re-evaluates or re-applies it.
//
// Events flow synchronously, in strict chronological order, into the
// caller-supplied Sink.
//
// An impassable objective makes the loop replan forever by default,
// emitting PathImpassable each round. WithMaxReplans bounds the
// consecutive fruitless replans for callers that need guaranteed
// termination.
package mission
