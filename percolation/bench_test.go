package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/paulrodriguez/percolation/percolation"
)

// BenchmarkOpenUntilPercolates measures a full trial on a 200×200 grid:
// sites are opened in a deterministic random order until percolation.
// Complexity: O(N²·α(N²)) per trial.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	perm := rand.New(rand.NewSource(42)).Perm(n * n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := percolation.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for _, p := range perm {
			_ = g.Open(p/n+1, p%n+1)
			if g.Percolates() {
				break
			}
		}
	}
}
