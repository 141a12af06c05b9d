// Package montecarlo defines options, result types and sentinel errors
// for threshold estimation.
package montecarlo

import (
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidArgument indicates a non-positive grid side, fewer than two
// trials, or a confidence level outside (0, 1).
var ErrInvalidArgument = errors.New("montecarlo: invalid argument")

// ErrBadSource indicates that a Source produced a value outside [0, n).
var ErrBadSource = errors.New("montecarlo: random source out of range")

// Z95 is the two-sided 95% normal critical value used by ConfidenceLo and
// ConfidenceHi.
const Z95 = 1.96

// Source draws uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it. A Source need not be safe for concurrent use.
type Source interface {
	Intn(n int) int
}

// Options configures Run.
//
// Fields:
//   - Seed   — base seed for the built-in generator; 0 selects a fixed default.
//   - Source — if non-nil, used for every draw of every trial; Seed is ignored.
//   - Logger — receives per-trial debug and per-run info entries; nil ⇒ no-op.
type Options struct {
	Seed   int64
	Source Source
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets the base seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource injects a random source shared by all trials.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with Seed=0 (fixed default seed),
// no injected Source and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Seed:   0,
		Source: nil,
		Logger: zap.NewNop(),
	}
}

// Stats holds the per-trial open fractions of a completed run. All
// statistics are derived from them on demand.
type Stats struct {
	side      int
	fractions []float64
}

// Summary holds descriptive statistics of the open fractions.
type Summary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}
