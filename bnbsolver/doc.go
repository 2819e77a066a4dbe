// Package bnbsolver is a worked depth-first Branch-and-Bound driver over
// the Berth Allocation Problem, composing bnb's four core components
// (BerthTimeline, SearchState, SearchStack, SearchTrail) the way the
// core's own documentation describes its external collaborators: a
// loader that builds the problem instance, a bounding provider that
// reads SearchState read-only, and a branching provider that generates
// candidate moves per vessel.
//
// bnbsolver fixes the core's generic type parameters to int64 ticks,
// int32 indices and float64 costs — a concrete instantiation, the same
// way tsp.TSPBranchAndBound is a concrete float64/int solver built on
// top of the generic matrix.Matrix abstraction.
package bnbsolver

// Time, Index and Cost fix bnb's generic type parameters to the numeric
// types this solver operates on. They exist so bnbsolver's own exported
// signatures stay readable without repeating the underlying primitive
// types everywhere.
type (
	Time  = int64
	Index = int32
	Cost  = float64
)
