// Package bnb provides the depth-first Branch-and-Bound search scaffolding
// shared by Berth Allocation Problem (BAP) solvers: the composable,
// allocation-free data structures that make tree descent, backtracking,
// and candidate enumeration both correct and fast inside a solver's hot
// loop.
//
// Four tightly coupled components live here:
//
//	BerthTimeline — per-berth availability index; carves fixed
//	                assignments out of availability and answers
//	                earliest-feasible-start queries in logarithmic time.
//	SearchState   — the mutable assignment state: berth free times,
//	                vessel→berth mapping, per-vessel start times, and
//	                the running objective.
//	SearchStack   — a frame-structured decision tape holding the
//	                candidate moves generated at each search depth.
//	SearchTrail   — a delta-based undo log recording applied state
//	                mutations so backtracking restores prior state
//	                without copying it.
//
// Everything in this package is monomorphic over caller-chosen numeric
// types — Time and Index are constrained to signed integers, Cost to any
// integer or floating type — so callers pick widths (32-bit index, 64-bit
// time, float64 cost, etc.) without paying for interface dispatch in the
// hot path. SearchStack and SearchTrail are generic over an arbitrary
// payload type instead, since a branch-and-bound move or undo record is
// solver-defined, not numeric.
//
// bnb does not prescribe a bounding function, a branching rule, domain
// model loading, incumbent tracking, or any user-facing surface: those
// live in a solver built on top (see github.com/katalvlaran/bapbnb/bnbsolver)
// and interact with this package purely through the operations documented
// on each type.
//
// Contract violations — popping an empty frame, mutating without an open
// frame — are bugs in the caller, not runtime conditions to recover from.
// They panic when the package-level Debug flag is true and are undefined
// behavior (silently incorrect, not trapped) when it is false, the closest
// Go analog to "debug-only assertion, omitted in release builds" available
// without a second build of the package.
package bnb
