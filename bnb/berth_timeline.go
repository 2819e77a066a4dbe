package bnb

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// AvailableWindow is a half-open [StartInclusive, EndExclusive) interval
// during which a berth is available for service.
//
// Invariant: StartInclusive < EndExclusive. Zero-length windows must never
// be stored; construction helpers in this package elide them rather than
// store them.
type AvailableWindow[TimeType constraints.Signed] struct {
	StartInclusive TimeType
	EndExclusive   TimeType
}

// before reports whether the window ends at or before t, the predicate
// used to binary-search for the first window that could possibly contain
// a start time >= t.
func (w AvailableWindow[TimeType]) before(t TimeType) bool {
	return w.EndExclusive <= t
}

// BerthTimeline is a per-berth availability index: an ordered, disjoint
// sequence of AvailableWindow answering earliest-feasible-start queries in
// O(log n) amortized time.
//
// Invariants: windows are strictly ascending and pairwise non-overlapping,
// and no stored window is empty. BerthTimeline is a static constraint — it
// is built once per berth (or re-assigned between solver runs) and is
// never mutated by the search itself.
type BerthTimeline[TimeType constraints.Signed] struct {
	windows []AvailableWindow[TimeType]
}

// NewBerthTimelineRange constructs a timeline with a single availability
// window [open, close). If open >= close the timeline is empty, matching
// the zero-length-interval elision rule from the package invariants.
func NewBerthTimelineRange[TimeType constraints.Signed](open, close TimeType) *BerthTimeline[TimeType] {
	bt := &BerthTimeline[TimeType]{}
	bt.AssignRange(open, close)

	return bt
}

// NewBerthTimelineWindows constructs a timeline from an already-sorted,
// disjoint list of windows, copied verbatim. The caller guarantees the
// ordering and disjointness invariants; this constructor performs no
// validation (BerthTimeline is a performance-sensitive leaf that defers
// validation to the loader, per the package's failure model).
func NewBerthTimelineWindows[TimeType constraints.Signed](windows []AvailableWindow[TimeType]) *BerthTimeline[TimeType] {
	bt := &BerthTimeline[TimeType]{}
	bt.AssignWindows(windows)

	return bt
}

// NewBerthTimelineCarved constructs a timeline by carving fixed
// assignments out of availability windows. Both availability and fixed
// must be pre-sorted ascending by StartInclusive and pairwise
// non-overlapping within each slice; see AssignCarved for the algorithm.
func NewBerthTimelineCarved[TimeType constraints.Signed](availability, fixed []AvailableWindow[TimeType]) *BerthTimeline[TimeType] {
	bt := &BerthTimeline[TimeType]{}
	bt.AssignCarved(availability, fixed)

	return bt
}

// AssignRange reuses the timeline's backing storage for a single
// availability window [open, close), discarding prior contents. Empty
// ranges (open >= close) produce an empty timeline.
func (bt *BerthTimeline[TimeType]) AssignRange(open, close TimeType) {
	bt.windows = bt.windows[:0]
	if open < close {
		bt.windows = append(bt.windows, AvailableWindow[TimeType]{StartInclusive: open, EndExclusive: close})
	}
}

// AssignWindows reuses the timeline's backing storage for a direct list of
// windows, copied verbatim. See NewBerthTimelineWindows for the
// invariants the caller must uphold.
func (bt *BerthTimeline[TimeType]) AssignWindows(windows []AvailableWindow[TimeType]) {
	bt.windows = append(bt.windows[:0], windows...)
}

// AssignCarved reuses the timeline's backing storage, carving the union of
// fixed assignments out of availability and clipping the result to
// availability.
//
// Both availability and fixed must be sorted ascending by StartInclusive
// and pairwise non-overlapping within each slice (spec invariant for the
// carve operation; unsorted input is undefined behavior, not a checked
// error — see the package doc).
//
// Algorithm (ported from original_source/leviathan/bnb/berth_timeline.h):
// for each availability window A, advance a cursor from A.StartInclusive,
// consuming fixed windows that end before the cursor, emitting a free gap
// whenever a fixed window starts after the cursor, and pushing the cursor
// forward past each fixed window's end. A fixed window that straddles two
// availability windows (ends beyond the current A but starts inside it) is
// not advanced past, so the next A can still see it.
func (bt *BerthTimeline[TimeType]) AssignCarved(availability, fixed []AvailableWindow[TimeType]) {
	bt.windows = bt.windows[:0]

	fi := 0
	for _, avail := range availability {
		cursor := avail.StartInclusive

		for fi < len(fixed) && fixed[fi].StartInclusive < avail.EndExclusive {
			f := fixed[fi]

			if f.EndExclusive <= cursor {
				fi++
				continue
			}

			if f.StartInclusive > cursor {
				bt.windows = append(bt.windows, AvailableWindow[TimeType]{StartInclusive: cursor, EndExclusive: f.StartInclusive})
			}

			cursor = max(cursor, f.EndExclusive)
			if cursor >= avail.EndExclusive {
				break
			}

			if f.EndExclusive < avail.EndExclusive {
				fi++
			} else {
				break
			}
		}

		if cursor < avail.EndExclusive {
			bt.windows = append(bt.windows, AvailableWindow[TimeType]{StartInclusive: cursor, EndExclusive: avail.EndExclusive})
		}
	}
}

// Clear empties the timeline while retaining its backing capacity.
func (bt *BerthTimeline[TimeType]) Clear() {
	bt.windows = bt.windows[:0]
}

// FindEarliestStart returns the smallest start time s >= readyTime such
// that some window can host a service of the given duration starting at
// s, i.e. a window W with W.StartInclusive <= s and
// W.EndExclusive - s >= duration. ok is false if no such start exists
// (infeasibility is a normal search outcome here, not an error).
//
// Complexity: O(log n) to locate the first candidate window via binary
// search, then O(k) to scan forward past windows too short to host the
// service; O(n) worst case, O(log n) amortized for typical instance
// shapes.
func (bt *BerthTimeline[TimeType]) FindEarliestStart(readyTime, duration TimeType) (start TimeType, ok bool) {
	if len(bt.windows) == 0 {
		return start, false
	}

	i := sort.Search(len(bt.windows), func(i int) bool {
		return !bt.windows[i].before(readyTime)
	})

	for ; i < len(bt.windows); i++ {
		w := bt.windows[i]
		actualStart := readyTime
		if w.StartInclusive > actualStart {
			actualStart = w.StartInclusive
		}
		if w.EndExclusive-actualStart >= duration {
			return actualStart, true
		}
	}

	return start, false
}

// Windows returns the timeline's current window sequence, sorted and
// disjoint by construction. The returned slice is backed directly by the
// timeline's storage and must not be retained across a call that mutates
// the timeline (AssignRange/AssignWindows/AssignCarved/Clear).
func (bt *BerthTimeline[TimeType]) Windows() []AvailableWindow[TimeType] {
	return bt.windows
}

// Len returns the number of windows currently held by the timeline.
func (bt *BerthTimeline[TimeType]) Len() int {
	return len(bt.windows)
}

// Empty reports whether the timeline holds no windows.
func (bt *BerthTimeline[TimeType]) Empty() bool {
	return len(bt.windows) == 0
}
