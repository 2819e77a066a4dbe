package bnbsolver

import (
	"math"

	"github.com/katalvlaran/bapbnb/bnb"
)

// engine holds all search data and policies for one Solve call. As in
// the teacher's bbEngine, a dedicated struct keeps dependencies explicit
// instead of threading them through anonymous closures, and keeps
// recursive calls cheap (a single pointer receiver, no captured state).
type engine struct {
	inst   *Instance
	bound  Bound
	branch Branch

	timelines []*bnb.BerthTimeline[Time]
	state     *bnb.SearchState[Time, Index, Cost]
	stack     *bnb.SearchStack[Move]
	trail     *bnb.SearchTrail[undoEntry]

	bestAssignment []Index
	bestStartTimes []Time
	bestCost       Cost
	foundAny       bool

	stats Stats
}

// commit records the current, fully assigned state as the new incumbent.
func (e *engine) commit() {
	e.bestCost = e.state.CurrentObjective
	e.foundAny = true
	for v := 0; v < e.inst.NumVessels(); v++ {
		vi := Index(v)
		e.bestAssignment[v] = e.state.GetAssignedBerth(vi)
		e.bestStartTimes[v] = e.state.GetStartTime(vi)
	}
}

// dfs descends one vessel at a time: it asks Branch for every feasible
// placement of the vessel at this depth, applies each in turn, recurses,
// and backtracks via the trail before trying the next sibling. This is
// the depth-first traversal spec.md §2 describes, with BerthTimeline and
// SearchState standing in for the domain model and the bounding provider
// reading SearchState between the prune check and the branch.
func (e *engine) dfs(depth int) {
	e.stats.NodesVisited++
	if depth > e.stats.PeakDepth {
		e.stats.PeakDepth = depth
	}

	if depth == e.inst.NumVessels() {
		if e.state.CurrentObjective < e.bestCost {
			e.commit()
		}

		return
	}

	if e.bound != nil {
		if lb := e.bound(e.state, depth); lb >= e.bestCost {
			return
		}
	}

	vessel := Index(depth)
	moves := e.branch(e.inst, e.timelines, e.state, vessel)
	if len(moves) == 0 {
		return
	}

	e.stack.FillFrom(moves...)
	candidates := e.stack.CurrentFrameEntries()

	for _, mv := range candidates {
		e.trail.PushFrame()

		u := undoEntry{
			vessel:        mv.Vessel,
			berth:         mv.Berth,
			oldBerthFree:  e.state.BerthFreeTimes[mv.Berth],
			oldObjective:  e.state.CurrentObjective,
			oldLastVessel: e.state.LastAssignedVessel,
		}
		e.state.ApplyMove(mv.Vessel, mv.Berth, mv.Start, mv.Finish, mv.CostDelta)
		e.trail.Push(u)

		e.dfs(depth + 1)

		e.trail.Backtrack(func(u undoEntry) {
			e.state.BacktrackMove(u.vessel, u.berth, u.oldBerthFree, u.oldObjective, u.oldLastVessel)
		})
		e.stats.Backtracks++
	}

	e.stack.PopFrame()
}

// Solve runs an exact depth-first Branch-and-Bound search over inst,
// branching vessels in index order and bounding with the caller-supplied
// Bound (pass nil to disable pruning, e.g. for testing). It returns the
// best complete assignment among the moves Branch generates, or
// ErrInfeasible if the search reaches no complete assignment.
func Solve(inst *Instance, bound Bound, branch Branch) (Result, Stats, error) {
	if err := inst.validate(); err != nil {
		return Result{}, Stats{}, err
	}
	if branch == nil {
		return Result{}, Stats{}, ErrInvalidInstance
	}

	numVessels, numBerths := inst.NumVessels(), inst.NumBerths()

	timelines := make([]*bnb.BerthTimeline[Time], numBerths)
	for b := 0; b < numBerths; b++ {
		timelines[b] = bnb.NewBerthTimelineCarved(inst.Availability[b], inst.FixedAssignments[b])
	}

	e := &engine{
		inst:           inst,
		bound:          bound,
		branch:         branch,
		timelines:      timelines,
		state:          bnb.NewSearchState[Time, Index, Cost](numBerths, numVessels),
		stack:          bnb.NewSearchStack[Move](numVessels*numBerths, numVessels+1),
		trail:          bnb.NewSearchTrail[undoEntry](numVessels, numVessels+1),
		bestAssignment: make([]Index, numVessels),
		bestStartTimes: make([]Time, numVessels),
		bestCost:       Cost(math.Inf(1)),
	}

	e.dfs(0)

	if !e.foundAny {
		return Result{}, e.stats, ErrInfeasible
	}

	return Result{
		Assignment: e.bestAssignment,
		StartTimes: e.bestStartTimes,
		Cost:       e.bestCost,
	}, e.stats, nil
}
