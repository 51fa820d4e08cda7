package mission

import (
	"fmt"

	"github.com/katalvlaran/questgrid/dijkstra"
	"github.com/katalvlaran/questgrid/grid"
)

// Runner executes a mission sequence over a live grid.Graph it owns
// exclusively. Conceptual per-mission state machine:
//
//	Idle → Revealing → Planning → Moving → {Recalculating | ObjectiveReached}
//
// Recalculating loops back to Revealing; ObjectiveReached hands over to
// the wizard consultation and then the next mission.
type Runner struct {
	g        *grid.Graph
	missions []Mission
	sink     Sink
	memo     *Memo
	opts     Options

	curX, curY int
}

// NewRunner builds a runner over g and the ordered mission sequence.
// missions[0] is the starting position. Returns ErrNilGraph, ErrNilSink,
// or ErrNoMissions on invalid input.
func NewRunner(g *grid.Graph, missions []Mission, sink Sink, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	if len(missions) == 0 {
		return nil, ErrNoMissions
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		g:        g,
		missions: missions,
		sink:     sink,
		memo:     NewMemo(),
		opts:     cfg,
	}, nil
}

// Memo exposes the applied-unlock set, mainly for inspection after a
// run.
func (r *Runner) Memo() *Memo { return r.memo }

// Position returns the current coordinates.
func (r *Runner) Position() (x, y int) { return r.curX, r.curY }

// Run executes the whole sequence. The first mission is consumed as the
// starting position without producing events; each subsequent mission
// runs to its objective (ordinals are 1-based) and may be followed by a
// wizard consultation. The only error paths are ErrNoRoute under a
// replan bound and propagated engine failures.
func (r *Runner) Run() error {
	start := r.missions[0]
	r.curX, r.curY = start.X, start.Y

	for i := 1; i < len(r.missions); i++ {
		if err := r.runMission(i); err != nil {
			return err
		}
		if err := r.consultWizard(i); err != nil {
			return err
		}
	}

	return nil
}

// runMission repeats reveal → plan → walk until the exact target of
// missions[ordinal] is reached.
func (r *Runner) runMission(ordinal int) error {
	m := r.missions[ordinal]
	target := r.g.Index(m.X, m.Y)
	prevX, prevY := r.curX, r.curY
	replans := 0

	for {
		// 1) Reveal around the current position unless the map is fully
		//    known or carries no hidden terrain at all.
		if !r.g.AllRevealed() && r.g.HasHiddenNodes() {
			r.g.RevealInCircle(r.curX, r.curY, m.Radius)
		}

		// 2) Plan on the live adjacency.
		res, err := dijkstra.ShortestPath(r.g.Adjacency(), r.g.Index(r.curX, r.curY), target)
		if err != nil {
			return err
		}
		path := res.Path

		// 3) No route right now. Nothing moved since the last attempt,
		//    so without a bound this repeats until something external
		//    changes the graph.
		if len(path) == 0 {
			r.sink.PathImpassable()
			replans++
			if r.opts.MaxReplans > 0 && replans >= r.opts.MaxReplans {
				return fmt.Errorf("%w: objective %d at (%d,%d)", ErrNoRoute, ordinal, m.X, m.Y)
			}

			continue
		}

		// 4) Walk the plan node by node.
		recalc := false
		first := true
		for _, idx := range path {
			r.g.CheckAllRevealed()
			x, y := r.g.Coordinates(idx)
			if x == r.curX && y == r.curY {
				continue // leading node equal to the current position
			}

			r.curX, r.curY = x, y
			r.sink.Move(x, y)
			replans = 0

			if !r.g.AllRevealed() && r.g.HasHiddenNodes() {
				if first {
					first = false
					recalc = r.sweepCircle(m.Radius, path)
				} else {
					recalc = r.sweepDirectional(prevX, prevY, m.Radius, path)
				}
			}

			// A sweep revealed an obstacle on the plan: abandon the walk
			// and restart from revelation.
			if recalc {
				r.sink.PathImpassable()
				replans++
				break
			}

			if r.curX == m.X && r.curY == m.Y {
				r.sink.ObjectiveReached(ordinal)
				break
			}

			prevX, prevY = r.curX, r.curY
		}

		if r.curX == m.X && r.curY == m.Y {
			return nil
		}
	}
}

// consultWizard runs the unlock lookahead after missions[i] completed,
// scoring candidates from the current position toward the next target.
// The winner (if any) is committed to the live graph and memoized; the
// choice event fires even for the NoOption sentinel. The last mission's
// options are never consulted: there is no next target to score
// against.
func (r *Runner) consultWizard(i int) error {
	m := r.missions[i]
	if !m.HasWizardOptions() || i >= len(r.missions)-1 {
		return nil
	}

	next := r.missions[i+1]
	best, err := r.g.EvaluateUnlockOptions(
		m.WizardOptions,
		r.g.Index(r.curX, r.curY),
		r.g.Index(next.X, next.Y),
		r.memo,
	)
	if err != nil {
		return err
	}

	r.sink.WizardChoice(best)
	if best != grid.NoOption {
		r.g.UnlockType(best)
		r.memo.Insert(best)
	}

	return nil
}
