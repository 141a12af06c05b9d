package montecarlo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/paulrodriguez/percolation/percolation"
)

// ctxCheckEvery bounds how many draws a trial makes between context checks.
const ctxCheckEvery = 1 << 12

// Run performs trials independent percolation experiments on an n×n grid
// and returns the recorded open fractions.
//
// Error Conditions:
//   - ErrInvalidArgument: trials ≤ 1, or n rejected by percolation.CheckSide
//     (n ≤ 0, or n² overflows int). No trial is performed.
//   - ErrBadSource:       an injected Source returned a value outside [0, n).
//   - ctx.Err():          the context was cancelled; partial results are dropped.
//
// Steps (per trial i):
//  1. Build a fresh percolation.Grid(n) owned by this iteration only.
//  2. Draw (row, col) uniformly in [1,n]×[1,n]; if the site is closed, open it.
//  3. Repeat until the grid percolates.
//  4. Record OpenCount()/n² as fractions[i].
//
// Complexity: O(T·n²·α(n²)) expected time, O(n²) memory per trial.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Stats, error) {
	if trials <= 1 {
		return nil, fmt.Errorf("%w: trials must be greater than 1, got %d", ErrInvalidArgument, trials)
	}
	if err := percolation.CheckSide(n); err != nil {
		return nil, fmt.Errorf("%w: grid side %d: %w", ErrInvalidArgument, n, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	fractions := make([]float64, trials)
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("montecarlo: trial %d: %w", i, err)
		}

		src := o.Source
		if src == nil {
			src = trialSource(o.Seed, i)
		}
		opened, err := runTrial(ctx, n, src)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: trial %d: %w", i, err)
		}
		fractions[i] = float64(opened) / float64(n*n)

		o.Logger.Debug("trial complete",
			zap.Int("trial", i),
			zap.Int("opened", opened),
			zap.Float64("fraction", fractions[i]),
		)
	}

	st := &Stats{side: n, fractions: fractions}
	o.Logger.Info("percolation run complete",
		zap.Int("side", n),
		zap.Int("trials", trials),
		zap.Float64("mean", st.Mean()),
		zap.Float64("stddev", st.StdDev()),
	)

	return st, nil
}

// runTrial opens random closed sites on a fresh n×n grid until it
// percolates and returns how many sites were opened.
func runTrial(ctx context.Context, n int, src Source) (int, error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}

	for draws := 1; !g.Percolates(); draws++ {
		if draws%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		row, err := draw(src, n)
		if err != nil {
			return 0, err
		}
		col, err := draw(src, n)
		if err != nil {
			return 0, err
		}
		// Open is a no-op on open sites, so OpenCount counts only closed draws.
		if err := g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return g.OpenCount(), nil
}

// draw maps one Source value in [0, n) to a coordinate in [1, n].
func draw(src Source, n int) (int, error) {
	v := src.Intn(n)
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: Intn(%d) returned %d", ErrBadSource, n, v)
	}

	return v + 1, nil
}
