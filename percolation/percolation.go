package percolation

import (
	"fmt"
	"math"

	"github.com/paulrodriguez/percolation/unionfind"
)

// CheckSide reports whether n is a usable grid side: positive, and small
// enough that N²+2 node indices fit in an int.
// Returns ErrInvalidArgument otherwise.
func CheckSide(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}
	if n > (math.MaxInt-2)/n {
		return fmt.Errorf("%w: side %d overflows N²+2 sites", ErrInvalidArgument, n)
	}

	return nil
}

// New creates an N×N grid with every site closed.
// Returns ErrInvalidArgument if CheckSide rejects n; no Grid is produced
// and nothing is allocated in that case.
// Complexity: O(N²) time and memory.
func New(n int) (*Grid, error) {
	if err := CheckSide(n); err != nil {
		return nil, err
	}
	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: percolation forest: %w", err)
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, fmt.Errorf("percolation: fullness forest: %w", err)
	}
	g := &Grid{
		side:        n,
		open:        make([]bool, sites+2),
		percolation: perc,
		fullness:    full,
	}
	g.open[top] = true
	g.open[g.bottom()] = true

	return g, nil
}

// Side returns the grid dimension N.
func (g *Grid) Side() int {
	return g.side
}

// Sites returns the number of physical sites, N².
func (g *Grid) Sites() int {
	return g.side * g.side
}

// OpenCount returns the number of open sites.
func (g *Grid) OpenCount() int {
	return g.openCount
}

// OpenFraction returns OpenCount()/N².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(g.Sites())
}

// InBounds reports whether (row, col) lies within [1, N]×[1, N].
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.side && col >= 1 && col <= g.side
}

// Open opens the site at (row, col) and connects it to every open
// neighbour. Opening an already open site is a no-op.
//
// Steps:
//  1. Validate (row, col); on failure nothing is mutated.
//  2. Mark the site open and count it.
//  3. Row 1: join with top in both forests.
//  4. Row N: join with bottom in the percolation forest only.
//  5. Join with each open in-bounds 4-neighbour in both forests.
//
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.open[site] {
		return nil
	}

	g.open[site] = true
	g.openCount++

	if row == 1 {
		g.join(site, top)
	}
	if row == g.side {
		// The fullness forest has no bottom node.
		_ = g.percolation.Union(site, g.bottom())
	}
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		if n := g.index(nr, nc); g.open[n] {
			g.join(site, n)
		}
	}

	return nil
}

// IsOpen reports whether the site at (row, col) is open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether the site at (row, col) is open and connected to
// row 1 through open sites. A closed site is never full.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	site := g.index(row, col)
	if !g.open[site] {
		return false, nil
	}
	full, _ := g.fullness.Connected(site, top)

	return full, nil
}

// Percolates reports whether an open path connects row 1 to row N.
// It is a pure query; once true it stays true for the life of the Grid.
// Complexity: O(α(N²)) amortized.
func (g *Grid) Percolates() bool {
	if g.openCount == 0 {
		return false
	}
	ok, _ := g.percolation.Connected(top, g.bottom())

	return ok
}

// join unions a and b in both forests. Neither index may be the bottom node.
func (g *Grid) join(a, b int) {
	_ = g.percolation.Union(a, b)
	_ = g.fullness.Union(a, b)
}

// index maps 1-indexed (row, col) to its node index: (row-1)*N + col.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.side + col
}

// bottom returns the index of the virtual bottom node, N²+1.
func (g *Grid) bottom() int {
	return g.side*g.side + 1
}

// validate checks that (row, col) lies on the grid.
func (g *Grid) validate(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]×[1,%d]", ErrOutOfRange, row, col, g.side, g.side)
	}

	return nil
}
