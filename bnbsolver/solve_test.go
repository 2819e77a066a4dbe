package bnbsolver_test

import (
	"testing"

	"github.com/katalvlaran/bapbnb/bnb"
	"github.com/katalvlaran/bapbnb/bnbsolver"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// durationMatrix builds a dense NumVessels x NumBerths duration table from
// a literal row-major table, the same shape tsp.bbEngine prefetches its
// distance matrix into.
func durationMatrix(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()

	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for v, row := range rows {
		for b, d := range row {
			require.NoError(t, m.Set(v, b, d))
		}
	}

	return m
}

// openAll builds a fully-open [0, horizon) availability window per berth
// with no fixed assignments, for tests that only care about branching
// order, not carving.
func openAll(numBerths int, horizon int64) ([][]bnb.AvailableWindow[bnbsolver.Time], [][]bnb.AvailableWindow[bnbsolver.Time]) {
	avail := make([][]bnb.AvailableWindow[bnbsolver.Time], numBerths)
	fixed := make([][]bnb.AvailableWindow[bnbsolver.Time], numBerths)
	for b := range avail {
		avail[b] = []bnb.AvailableWindow[bnbsolver.Time]{{StartInclusive: 0, EndExclusive: horizon}}
	}

	return avail, fixed
}

func TestSolve_SmallInstance_BoundMatchesExhaustive(t *testing.T) {
	durations := durationMatrix(t, [][]float64{
		{5, 9},
		{3, 4},
		{6, 2},
	})
	avail, fixed := openAll(2, 100)

	weight := func(v, b int, start bnbsolver.Time) bnbsolver.Cost {
		d, err := durations.At(v, b)
		require.NoError(t, err)

		return bnbsolver.Cost(start) + bnbsolver.Cost(d)
	}

	inst := &bnbsolver.Instance{
		ReadyTime:        []bnbsolver.Time{0, 0, 0},
		Duration:         durations,
		WeightFn:         weight,
		Availability:     avail,
		FixedAssignments: fixed,
	}

	exhaustive, statsExhaustive, err := bnbsolver.Solve(inst, nil, bnbsolver.DefaultBranch)
	require.NoError(t, err)

	bounded, statsBounded, err := bnbsolver.Solve(inst, bnbsolver.DefaultBound, bnbsolver.DefaultBranch)
	require.NoError(t, err)

	assert.Equal(t, exhaustive.Cost, bounded.Cost, "bounding must not change the optimal objective")
	assert.Equal(t, exhaustive.Assignment, bounded.Assignment)
	assert.LessOrEqual(t, statsBounded.NodesVisited, statsExhaustive.NodesVisited,
		"an admissible bound must not visit more nodes than exhaustive search")
	assert.Greater(t, statsExhaustive.NodesVisited, 0)

	for v, berth := range bounded.Assignment {
		require.NotEqual(t, bnb.Unassigned[bnbsolver.Index](), berth, "vessel %d left unassigned", v)
		assert.GreaterOrEqual(t, bounded.StartTimes[v], inst.ReadyTime[v])
	}
}

func TestSolve_Infeasible_WhenNoBerthFitsAnyVessel(t *testing.T) {
	durations := durationMatrix(t, [][]float64{
		{1000},
		{1000},
	})
	avail, fixed := openAll(1, 10)

	inst := &bnbsolver.Instance{
		ReadyTime:        []bnbsolver.Time{0, 0},
		Duration:         durations,
		WeightFn:         func(v, b int, start bnbsolver.Time) bnbsolver.Cost { return 0 },
		Availability:     avail,
		FixedAssignments: fixed,
	}

	_, _, err := bnbsolver.Solve(inst, bnbsolver.DefaultBound, bnbsolver.DefaultBranch)
	assert.ErrorIs(t, err, bnbsolver.ErrInfeasible)
}

func TestSolve_InvalidInstance(t *testing.T) {
	_, _, err := bnbsolver.Solve(&bnbsolver.Instance{}, nil, bnbsolver.DefaultBranch)
	assert.ErrorIs(t, err, bnbsolver.ErrInvalidInstance)
}

func TestSolve_CarvedAvailabilityExcludesFixedWindow(t *testing.T) {
	durations := durationMatrix(t, [][]float64{{10}})

	inst := &bnbsolver.Instance{
		ReadyTime: []bnbsolver.Time{0},
		Duration:  durations,
		WeightFn:  func(v, b int, start bnbsolver.Time) bnbsolver.Cost { return bnbsolver.Cost(start) },
		Availability: [][]bnb.AvailableWindow[bnbsolver.Time]{
			{{StartInclusive: 0, EndExclusive: 50}},
		},
		FixedAssignments: [][]bnb.AvailableWindow[bnbsolver.Time]{
			{{StartInclusive: 0, EndExclusive: 15}},
		},
	}

	result, _, err := bnbsolver.Solve(inst, bnbsolver.DefaultBound, bnbsolver.DefaultBranch)
	require.NoError(t, err)
	assert.Equal(t, bnbsolver.Time(15), result.StartTimes[0], "fixed window must carve the earliest start forward")
}
