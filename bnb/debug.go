package bnb

import "fmt"

// Debug gates the package's contract-violation assertions (popping an
// empty frame, pushing without an open frame, and similar programmer
// errors). It defaults to false so the hot search loop pays no cost for
// them; flip it to true in tests or during development to turn violations
// into panics instead of silently undefined behavior.
//
// Debug is a plain package variable, not a build tag: Go has no standard
// NDEBUG-style release/debug split, so a boolean check is the idiomatic
// stand-in. The branch is cheap and predictable (always false in
// production), matching spec's "negligible overhead" expectation for the
// sparse checks it guards.
var Debug = false

// assertf panics with a formatted message if Debug is enabled and cond is
// false. It is a no-op otherwise.
func assertf(cond bool, format string, args ...any) {
	if !Debug || cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}
