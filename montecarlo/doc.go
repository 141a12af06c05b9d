// Package montecarlo estimates the site-percolation threshold p* of an
// N×N grid by repeated random experiments.
//
// 🚀 What it does
//
//	Each trial builds a fresh percolation.Grid, opens uniformly random
//	closed sites until the grid percolates, and records the fraction of
//	sites that were open at that moment. After T trials the fractions are
//	reduced to:
//	  • mean            x̄ = Σxᵢ / T
//	  • sample stddev   s = √(Σ(xᵢ-x̄)² / (T-1))
//	  • 95% interval    x̄ ∓ 1.96·s/√T
//
// ⚙️ Usage:
//
//	st, err := montecarlo.Run(ctx, 200, 100, montecarlo.WithSeed(42))
//	if err != nil {
//	  // handle ErrInvalidArgument
//	}
//	fmt.Println(st.Mean(), st.StdDev(), st.ConfidenceLo(), st.ConfidenceHi())
//
// Randomness:
//
//   - The driver draws coordinates from a Source (math/rand.*Rand fits).
//   - WithSeed gives reproducible runs: every trial gets its own stream
//     derived from the seed and the trial index.
//   - WithSource injects an arbitrary Source shared by all trials in order.
//
// Trials run sequentially; a Grid never outlives its trial.
package montecarlo
