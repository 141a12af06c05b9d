package montecarlo_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/paulrodriguez/percolation/montecarlo"
	"github.com/paulrodriguez/percolation/percolation"
)

// scriptedSource replays a fixed sequence of values, cycling at the end,
// and counts how many draws were made.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// constSource always returns v.
type constSource int

func (c constSource) Intn(int) int { return int(c) }

// TestRun_RejectsFewTrials verifies that trials ≤ 1 is rejected before any
// random draw is made.
func TestRun_RejectsFewTrials(t *testing.T) {
	for _, trials := range []int{1, 0, -3} {
		src := &scriptedSource{values: []int{0}}
		st, err := montecarlo.Run(context.Background(), 5, trials, montecarlo.WithSource(src))
		assert.Nil(t, st)
		assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument, "trials=%d", trials)
		assert.Zero(t, src.calls, "no trial may run for trials=%d", trials)
	}
}

// TestRun_RejectsBadSide checks that a non-positive side, or one whose n²
// overflows int, matches both the driver's and the grid's sentinel before
// any draw is made.
func TestRun_RejectsBadSide(t *testing.T) {
	overflow := int(math.Sqrt(float64(math.MaxInt))) + 1
	for _, n := range []int{0, -3, overflow, math.MaxInt} {
		src := &scriptedSource{values: []int{0}}
		_, err := montecarlo.Run(context.Background(), n, 10, montecarlo.WithSource(src))
		assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument, "n=%d", n)
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "n=%d", n)
		assert.Zero(t, src.calls, "n=%d", n)
	}
}

// TestRun_ScriptedDraws drives a 2×2 grid with a known draw sequence:
// (1,1), (1,1) again, then (2,1). The repeated draw must not be counted,
// so each trial opens 2 of 4 sites.
func TestRun_ScriptedDraws(t *testing.T) {
	src := &scriptedSource{values: []int{0, 0, 0, 0, 1, 0}}
	st, err := montecarlo.Run(context.Background(), 2, 3, montecarlo.WithSource(src))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.5, 0.5}, st.Fractions())
	assert.Equal(t, 3, st.Trials())
	assert.Equal(t, 2, st.Side())
	assert.Equal(t, 18, src.calls)
	assert.InDelta(t, 0.5, st.Mean(), 1e-12)
	assert.InDelta(t, 0.0, st.StdDev(), 1e-12)
}

// TestRun_SingleSite checks that every N=1 trial opens the only site.
func TestRun_SingleSite(t *testing.T) {
	st, err := montecarlo.Run(context.Background(), 1, 4, montecarlo.WithSeed(3))
	require.NoError(t, err)
	for _, f := range st.Fractions() {
		assert.Equal(t, 1.0, f)
	}
	assert.Equal(t, st.Mean(), st.ConfidenceLo())
	assert.Equal(t, st.Mean(), st.ConfidenceHi())
}

// TestRun_SeedDeterminism checks that a seed fully determines the result.
func TestRun_SeedDeterminism(t *testing.T) {
	a, err := montecarlo.Run(context.Background(), 10, 8, montecarlo.WithSeed(42))
	require.NoError(t, err)
	b, err := montecarlo.Run(context.Background(), 10, 8, montecarlo.WithSeed(42))
	require.NoError(t, err)
	c, err := montecarlo.Run(context.Background(), 10, 8, montecarlo.WithSeed(43))
	require.NoError(t, err)

	assert.Equal(t, a.Fractions(), b.Fractions())
	assert.NotEqual(t, a.Fractions(), c.Fractions())
}

// TestRun_TrialsIndependentOfCount checks that trial i's draws depend only
// on the seed and i: a shorter run is a prefix of a longer one.
func TestRun_TrialsIndependentOfCount(t *testing.T) {
	short, err := montecarlo.Run(context.Background(), 8, 3, montecarlo.WithSeed(9))
	require.NoError(t, err)
	long, err := montecarlo.Run(context.Background(), 8, 6, montecarlo.WithSeed(9))
	require.NoError(t, err)

	assert.Equal(t, short.Fractions(), long.Fractions()[:3])
}

// TestRun_ThresholdEstimate sanity-checks the estimate against the known
// threshold p* ≈ 0.5927.
func TestRun_ThresholdEstimate(t *testing.T) {
	st, err := montecarlo.Run(context.Background(), 20, 40, montecarlo.WithSeed(2014))
	require.NoError(t, err)

	assert.InDelta(t, 0.593, st.Mean(), 0.06)
	assert.Greater(t, st.StdDev(), 0.0)
	assert.Less(t, st.ConfidenceLo(), st.Mean())
	assert.Greater(t, st.ConfidenceHi(), st.Mean())
	for _, f := range st.Fractions() {
		assert.True(t, f > 0 && f <= 1, "fraction %g out of (0,1]", f)
	}
}

// TestRun_BadSource verifies that out-of-range draws are reported rather
// than passed to the grid.
func TestRun_BadSource(t *testing.T) {
	_, err := montecarlo.Run(context.Background(), 3, 2, montecarlo.WithSource(constSource(3)))
	assert.ErrorIs(t, err, montecarlo.ErrBadSource)

	_, err = montecarlo.Run(context.Background(), 3, 2, montecarlo.WithSource(constSource(-1)))
	assert.ErrorIs(t, err, montecarlo.ErrBadSource)
}

// TestRun_Cancelled checks that a cancelled context stops the run.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := montecarlo.Run(ctx, 5, 10)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_StuckSourceHonoursContext uses a source that keeps drawing the
// same site forever; cancellation must still end the trial.
func TestRun_StuckSourceHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &cancelAfter{limit: 10_000, cancel: cancel}

	_, err := montecarlo.Run(ctx, 4, 2, montecarlo.WithSource(src))
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelAfter returns 0 on every draw and cancels its context after limit draws.
type cancelAfter struct {
	n      int
	limit  int
	cancel context.CancelFunc
}

func (c *cancelAfter) Intn(int) int {
	c.n++
	if c.n == c.limit {
		c.cancel()
	}
	return 0
}

// TestRun_Logging checks the per-trial debug entries and the run summary.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := montecarlo.Run(context.Background(), 5, 3,
		montecarlo.WithSeed(1), montecarlo.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("trial complete").Len())
	summary := logs.FilterMessage("percolation run complete").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	assert.EqualValues(t, 3, summary[0].ContextMap()["trials"])
}

// TestRun_NilLogger checks that an explicit nil logger is tolerated.
func TestRun_NilLogger(t *testing.T) {
	_, err := montecarlo.Run(context.Background(), 3, 2, montecarlo.WithLogger(nil))
	assert.NoError(t, err)
}
