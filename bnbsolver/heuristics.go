package bnbsolver

import (
	"sort"

	"github.com/katalvlaran/bapbnb/bnb"
)

// DefaultBound is the weakest admissible lower bound: the running
// objective itself, with no lookahead over the vessels still unassigned.
// It prunes only once the partial objective has already reached the
// incumbent's cost, which is still
// enough to cut dominated branches once one complete assignment has been
// found. Callers with domain knowledge of a tighter bound (e.g. a
// per-vessel minimum achievable cost, summed over unassigned vessels)
// should supply their own Bound instead — this exists so Solve has a
// usable default and so tests can exercise bound-gated pruning without
// hand-rolling one.
func DefaultBound(state *bnb.SearchState[Time, Index, Cost], depth int) Cost {
	return state.CurrentObjective
}

// DefaultBranch generates, for the given vessel, one candidate Move per
// berth: the earliest start at that berth honoring both the berth's
// static availability (via its BerthTimeline) and its current dynamic
// free time (state.BerthFreeTimes), skipping berths with no feasible
// start. Candidates are returned sorted by ascending CostDelta, then by
// berth index, the same deterministic-cheapest-first branching order
// tsp.bbEngine uses when sorting neighbors by edge weight — trying the
// locally cheapest option first tightens the incumbent early, which is
// what makes the bound start pruning at all.
func DefaultBranch(inst *Instance, timelines []*bnb.BerthTimeline[Time], state *bnb.SearchState[Time, Index, Cost], vessel Index) []Move {
	moves := make([]Move, 0, len(timelines))

	for b, timeline := range timelines {
		duration, err := inst.Duration.At(int(vessel), b)
		if err != nil || duration <= 0 {
			continue
		}

		ready := inst.ReadyTime[vessel]
		if free := state.BerthFreeTimes[b]; free > ready {
			ready = free
		}

		start, ok := timeline.FindEarliestStart(ready, Time(duration))
		if !ok {
			continue
		}

		berth := Index(b)
		finish := start + Time(duration)
		moves = append(moves, Move{
			Vessel:    vessel,
			Berth:     berth,
			Start:     start,
			Finish:    finish,
			CostDelta: inst.WeightFn(int(vessel), b, start),
		})
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].CostDelta != moves[j].CostDelta {
			return moves[i].CostDelta < moves[j].CostDelta
		}

		return moves[i].Berth < moves[j].Berth
	})

	return moves
}
