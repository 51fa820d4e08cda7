// Package mission defines the waypoint type, the event sink contract,
// runner options, and sentinel errors.
package mission

import "errors"

// Sentinel errors returned by the runner.
var (
	// ErrNilGraph indicates a nil grid was passed to NewRunner.
	ErrNilGraph = errors.New("mission: graph is nil")

	// ErrNilSink indicates a nil event sink was passed to NewRunner.
	ErrNilSink = errors.New("mission: event sink is nil")

	// ErrNoMissions indicates an empty mission sequence; at least the
	// starting entry is required.
	ErrNoMissions = errors.New("mission: mission sequence is empty")

	// ErrNoRoute indicates the replan bound was exhausted while an
	// objective stayed unreachable.
	ErrNoRoute = errors.New("mission: objective unreachable within replan bound")

	// ErrBadMaxReplans indicates a negative replan bound.
	ErrBadMaxReplans = errors.New("mission: MaxReplans must be non-negative")
)

// Mission is one waypoint: a target coordinate, the visibility radius,
// and optional ordered unlock candidates offered on completion. The
// first mission of a sequence designates the starting position and
// carries no target semantics of its own.
type Mission struct {
	X, Y          int
	Radius        int
	WizardOptions []int
}

// HasWizardOptions reports whether this mission offers unlock
// candidates.
func (m Mission) HasWizardOptions() bool { return len(m.WizardOptions) > 0 }

// Sink consumes runner events synchronously, in strict chronological
// order. Implementations decide durability and formatting.
type Sink interface {
	// Move reports arrival at (x, y).
	Move(x, y int)
	// PathImpassable reports that the current plan is void: either no
	// path exists, or a revealed obstacle invalidated the one in use.
	PathImpassable()
	// ObjectiveReached reports mission completion; ordinal is 1-based.
	ObjectiveReached(ordinal int)
	// WizardChoice reports the unlock decision; code may be
	// grid.NoOption when no viable candidate existed.
	WizardChoice(code int)
}

// Options configures a Runner.
//
// MaxReplans caps consecutive planning attempts that produce no
// movement toward an objective; any Move resets the count. Zero (the
// default) means unbounded, preserving the replan-forever behavior.
type Options struct {
	MaxReplans int
}

// Option is a functional option for NewRunner.
type Option func(*Options)

// DefaultOptions returns the runner defaults: unbounded replanning.
func DefaultOptions() Options {
	return Options{MaxReplans: 0}
}

// WithMaxReplans bounds consecutive fruitless replans per objective.
// The runner returns ErrNoRoute once the bound is hit. Must be
// non-negative; negative values cause ErrBadMaxReplans.
func WithMaxReplans(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxReplans.Error())
		}
		o.MaxReplans = n
	}
}
