package montecarlo

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewStats wraps pre-computed open fractions of an n×n grid.
// Returns ErrInvalidArgument if n ≤ 0 or fewer than two fractions are given.
// The slice is copied.
func NewStats(n int, fractions []float64) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid side %d", ErrInvalidArgument, n)
	}
	if len(fractions) <= 1 {
		return nil, fmt.Errorf("%w: need at least 2 fractions, got %d", ErrInvalidArgument, len(fractions))
	}

	return &Stats{side: n, fractions: append([]float64(nil), fractions...)}, nil
}

// Side returns the grid dimension N the trials ran on.
func (s *Stats) Side() int {
	return s.side
}

// Trials returns T, the number of recorded fractions.
func (s *Stats) Trials() int {
	return len(s.fractions)
}

// Fractions returns a copy of the per-trial open fractions.
func (s *Stats) Fractions() []float64 {
	return append([]float64(nil), s.fractions...)
}

// Mean returns the arithmetic mean of the open fractions.
func (s *Stats) Mean() float64 {
	return stat.Mean(s.fractions, nil)
}

// StdDev returns the sample standard deviation (divisor T-1).
func (s *Stats) StdDev() float64 {
	_, std := stat.MeanStdDev(s.fractions, nil)
	return std
}

// ConfidenceLo returns mean - 1.96·s/√T.
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - s.halfWidth(Z95)
}

// ConfidenceHi returns mean + 1.96·s/√T.
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + s.halfWidth(Z95)
}

// Interval returns the two-sided normal confidence interval at the given
// level, e.g. 0.99. The critical value is the standard normal quantile
// at (1+level)/2, so Interval(0.95) differs from the ConfidenceLo/Hi pair
// only in the rounding of 1.96.
// Returns ErrInvalidArgument if level ∉ (0, 1).
func (s *Stats) Interval(level float64) (lo, hi float64, err error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("%w: confidence level %g not in (0,1)", ErrInvalidArgument, level)
	}
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	m, h := s.Mean(), s.halfWidth(z)

	return m - h, m + h, nil
}

// Summary returns min, quartiles, median and max of the open fractions.
func (s *Stats) Summary() (Summary, error) {
	data := stats.Float64Data(s.fractions)
	lo, err := stats.Min(data)
	if err != nil {
		return Summary{}, fmt.Errorf("montecarlo: summary: %w", err)
	}
	hi, err := stats.Max(data)
	if err != nil {
		return Summary{}, fmt.Errorf("montecarlo: summary: %w", err)
	}
	q, err := stats.Quartile(data)
	if err != nil {
		return Summary{}, fmt.Errorf("montecarlo: summary: %w", err)
	}

	return Summary{Min: lo, Q1: q.Q1, Median: q.Q2, Q3: q.Q3, Max: hi}, nil
}

// halfWidth returns z·s/√T.
func (s *Stats) halfWidth(z float64) float64 {
	return z * s.StdDev() / math.Sqrt(float64(len(s.fractions)))
}
