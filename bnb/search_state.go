package bnb

import "golang.org/x/exp/constraints"

// Unassigned returns the sentinel index value used throughout this
// package to mark an unfilled vessel/berth slot. It is generic because
// IndexType is caller-chosen (int32, int64, ...); a single untyped -1
// constant cannot serve every instantiation inside a generic struct
// literal, so callers and this package alike should call Unassigned[I]()
// rather than hand-write -1.
func Unassigned[IndexType constraints.Signed]() IndexType {
	return IndexType(-1)
}

// SearchState is the mutable assignment state of a branch-and-bound
// search over the Berth Allocation Problem: which berth (if any) each
// vessel is assigned to, each assigned vessel's start time, each berth's
// free time, and the running objective.
//
// SearchState owns its three parallel slices exclusively; it is
// constructed once per problem instance and mutated only through
// ApplyMove / BacktrackMove for the lifetime of a search. It is never
// copied wholesale during descent — that is the defining design choice of
// this package: copying a full state at every node is O(B+V) per descent,
// while SearchTrail-based undo is O(1) per applied move.
type SearchState[TimeType constraints.Signed, IndexType constraints.Signed, CostType constraints.Integer | constraints.Float] struct {
	// BerthFreeTimes[b] is the earliest time berth b is free again.
	BerthFreeTimes []TimeType

	// VesselAssignments[v] is the berth index assigned to vessel v, or
	// Unassigned[IndexType]() if v is not yet assigned.
	VesselAssignments []IndexType

	// VesselStartTimes[v] is the berth-local start time of vessel v's
	// service. Defined only when v is assigned.
	VesselStartTimes []TimeType

	// LastAssignedVessel is the index of the most recently assigned
	// vessel, or Unassigned[IndexType]() initially. There is no general
	// way to recover this value from the rest of the state alone once it
	// changes (an earlier decision may have touched a different berth),
	// so SearchTrail must capture and restore it explicitly on backtrack.
	LastAssignedVessel IndexType

	// CurrentObjective is the running objective value accumulated by
	// applied moves.
	CurrentObjective CostType
}

// NewSearchState constructs a SearchState for a problem with numBerths
// berths and numVessels vessels. All berths start free at time zero and
// all vessels start unassigned.
func NewSearchState[TimeType constraints.Signed, IndexType constraints.Signed, CostType constraints.Integer | constraints.Float](numBerths, numVessels int) *SearchState[TimeType, IndexType, CostType] {
	st := &SearchState[TimeType, IndexType, CostType]{
		BerthFreeTimes:     make([]TimeType, numBerths),
		VesselAssignments:  make([]IndexType, numVessels),
		VesselStartTimes:   make([]TimeType, numVessels),
		LastAssignedVessel: Unassigned[IndexType](),
	}
	unassigned := Unassigned[IndexType]()
	for v := range st.VesselAssignments {
		st.VesselAssignments[v] = unassigned
	}

	return st
}

// IsAssigned reports whether vessel v currently has a berth assignment.
func (st *SearchState[TimeType, IndexType, CostType]) IsAssigned(v IndexType) bool {
	return st.VesselAssignments[v] != Unassigned[IndexType]()
}

// GetStartTime returns the start time of vessel v's assigned berth.
// Precondition: v is assigned (IsAssigned(v) == true); this is checked
// only when Debug is enabled.
func (st *SearchState[TimeType, IndexType, CostType]) GetStartTime(v IndexType) TimeType {
	assertf(st.IsAssigned(v), "bnb: GetStartTime(%v): vessel is not assigned", v)

	return st.VesselStartTimes[v]
}

// GetAssignedBerth returns the index of the berth assigned to vessel v.
// Precondition: v is assigned; checked only when Debug is enabled.
func (st *SearchState[TimeType, IndexType, CostType]) GetAssignedBerth(v IndexType) IndexType {
	assertf(st.IsAssigned(v), "bnb: GetAssignedBerth(%v): vessel is not assigned", v)

	return st.VesselAssignments[v]
}

// ApplyMove assigns vessel v to berth b, starting at startTime and
// occupying the berth until finishTime, and folds costDelta into the
// running objective.
//
// Preconditions: v and b are in range, v is not already assigned, and
// startTime < finishTime. Correctness beyond the debug-only re-assignment
// check below is the responsibility of whoever owns the SearchTrail that
// will undo this call (see SearchTrail.Backtrack).
func (st *SearchState[TimeType, IndexType, CostType]) ApplyMove(v, b IndexType, startTime, finishTime TimeType, costDelta CostType) {
	assertf(!st.IsAssigned(v), "bnb: ApplyMove(%v): vessel already assigned", v)

	st.BerthFreeTimes[b] = finishTime
	st.VesselAssignments[v] = b
	st.VesselStartTimes[v] = startTime
	st.CurrentObjective += costDelta
	st.LastAssignedVessel = v
}

// BacktrackMove reverses an earlier ApplyMove(v, b, ...), restoring berth
// b's free time, vessel v's assignment, the objective, and
// LastAssignedVessel to the values captured before that ApplyMove ran.
// Callers obtain those captured values from the SearchTrail entry that
// recorded the move, never by inspecting the state itself (the prior
// LastAssignedVessel in particular cannot be reconstructed after the
// fact).
func (st *SearchState[TimeType, IndexType, CostType]) BacktrackMove(v, b IndexType, oldBerthFreeTime TimeType, oldObjective CostType, oldLastVessel IndexType) {
	st.BerthFreeTimes[b] = oldBerthFreeTime
	st.VesselAssignments[v] = Unassigned[IndexType]()
	st.CurrentObjective = oldObjective
	st.LastAssignedVessel = oldLastVessel
}
