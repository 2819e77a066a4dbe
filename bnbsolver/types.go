package bnbsolver

import (
	"errors"

	"github.com/katalvlaran/bapbnb/bnb"
	"github.com/katalvlaran/lvlath/matrix"
)

// ErrInvalidInstance is returned when an Instance's shape is internally
// inconsistent (mismatched berth/vessel counts against Duration).
var ErrInvalidInstance = errors.New("bnbsolver: invalid instance")

// ErrInfeasible is returned when no complete, feasible assignment of
// every vessel to a berth exists for the given instance.
var ErrInfeasible = errors.New("bnbsolver: no feasible assignment exists")

// ErrNoBranches names the case of a Branch callback producing zero
// candidate moves for a vessel that still needs assignment. Solve does
// not return it: when no branch reaches a complete assignment, Solve
// returns ErrInfeasible.
var ErrNoBranches = errors.New("bnbsolver: branching produced no candidates")

// Instance is the problem data a Loader collaborator would otherwise
// hand the search: per-vessel ready times, a vessel x berth duration
// table, a per-assignment cost function, and per-berth availability and
// already-fixed windows used to build each berth's BerthTimeline via
// BerthTimeline.AssignCarved.
type Instance struct {
	// ReadyTime[v] is the earliest time vessel v may begin service on
	// any berth.
	ReadyTime []Time

	// Duration is a dense NumVessels x NumBerths table: Duration.At(v, b)
	// is how long vessel v occupies berth b once started. Reused from
	// the teacher's matrix.Matrix abstraction exactly as tsp.bbEngine
	// prefetches its distance table.
	Duration matrix.Matrix

	// WeightFn computes the objective contribution of assigning vessel v
	// to berth b starting at the given time. DefaultBranch calls it once
	// for every candidate move it generates, before any candidate is
	// applied.
	WeightFn func(v, b int, start Time) Cost

	// Availability[b] and FixedAssignments[b] are carving inputs for
	// berth b's BerthTimeline, per BerthTimeline.AssignCarved's
	// preconditions (each slice sorted ascending, pairwise disjoint).
	Availability     [][]bnb.AvailableWindow[Time]
	FixedAssignments [][]bnb.AvailableWindow[Time]
}

// NumVessels returns the vessel count implied by ReadyTime.
func (inst *Instance) NumVessels() int { return len(inst.ReadyTime) }

// NumBerths returns the berth count implied by Availability.
func (inst *Instance) NumBerths() int { return len(inst.Availability) }

// validate checks the instance's shape against itself, the minimal
// sanity pass a Loader collaborator would run before handing data to the
// search (spec.md §6 documents validation as the Loader's job, not the
// core's).
func (inst *Instance) validate() error {
	numV, numB := inst.NumVessels(), inst.NumBerths()
	if numV == 0 || numB == 0 {
		return ErrInvalidInstance
	}
	if inst.Duration == nil || inst.Duration.Rows() != numV || inst.Duration.Cols() != numB {
		return ErrInvalidInstance
	}
	if len(inst.FixedAssignments) != numB {
		return ErrInvalidInstance
	}
	if inst.WeightFn == nil {
		return ErrInvalidInstance
	}

	return nil
}

// Move is a single branch-and-bound candidate: assign vessel Vessel to
// berth Berth, occupying it over [Start, Finish), contributing CostDelta
// to the running objective. It is the flat record type instantiating
// bnb.SearchStack[Move] and feeding bnb.SearchState.ApplyMove.
type Move struct {
	Vessel    Index
	Berth     Index
	Start     Time
	Finish    Time
	CostDelta Cost
}

// undoEntry is the flat record type instantiating bnb.SearchTrail,
// mirroring Move with the pre-mutation values SearchState.BacktrackMove
// needs. It is unexported: only Solve ever constructs or consumes one.
type undoEntry struct {
	vessel, berth Index
	oldBerthFree  Time
	oldObjective  Cost
	oldLastVessel Index
}

// Bound is the lower-bound collaborator: given the current SearchState
// and search depth, it returns an admissible lower bound on the cost of
// any completion. Bound must treat state as read-only; the driver passes
// its live search state, so any mutation would be seen by the rest of the
// search, and Go's type system cannot enforce that — it is a documented contract,
// matching spec.md §6 exactly.
type Bound func(state *bnb.SearchState[Time, Index, Cost], depth int) Cost

// Branch is the candidate-generation collaborator: given the instance,
// each berth's BerthTimeline, the current state and the vessel about to
// be branched on, it returns every feasible Move worth exploring, in the
// order they should be tried. An empty result means vessel has no
// feasible placement in the current state.
type Branch func(inst *Instance, timelines []*bnb.BerthTimeline[Time], state *bnb.SearchState[Time, Index, Cost], vessel Index) []Move

// Result is the outcome of a completed Solve call: the final
// vessel-to-berth assignment, each vessel's start time, and the
// objective value achieved.
type Result struct {
	Assignment []Index
	StartTimes []Time
	Cost       Cost
}

// Stats reports search diagnostics gathered during a Solve call — the Go
// analog of the system_info-style capacity/activity accounting the
// original carries alongside its search core, supplementing spec.md's
// core operations rather than changing any of them.
type Stats struct {
	NodesVisited int
	Backtracks   int
	PeakDepth    int
}
