// Package percolation defines the Grid type and its fixed neighbourhood.
package percolation

import "github.com/paulrodriguez/percolation/unionfind"

// top is the index of the virtual node standing for all of row 1.
const top = 0

// neighborOffsets lists the 4-neighbourhood as (dRow, dCol): up, right,
// down, left.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an N×N percolation system. Sites start closed and, once
// opened, never close again.
//
// open has N²+2 entries: open[0] is the virtual top, open[N²+1] the virtual
// bottom, and open[(row-1)*N+col] the site at (row, col). The virtual nodes
// are marked open at construction.
//
// percolation spans all N²+2 indices; fullness spans only the first N²+1
// (no bottom). Both agree on connectivity among sites and top.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	side        int
	open        []bool
	openCount   int
	percolation *unionfind.Forest
	fullness    *unionfind.Forest
}
