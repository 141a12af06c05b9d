// Package percolation models site percolation on an N×N grid as an
// incrementally growing graph.
//
// What:
//
//   - Grid holds the open/closed state of N² sites, addressed by 1-indexed
//     (row, col) pairs.
//   - Open marks a site open and joins it with its open 4-neighbours
//     (up, down, left, right).
//   - IsFull reports whether an open site is connected to row 1.
//   - Percolates reports whether row 1 is connected to row N.
//
// How:
//
//	Two virtual nodes stand in for "all of row 1" (top, index 0) and
//	"all of row N" (bottom, index N²+1). Site (row, col) has index
//	(row-1)*N + col. Two union-find forests are kept:
//
//	  percolation forest: top + N² sites + bottom → answers Percolates
//	  fullness forest:    top + N² sites          → answers IsFull
//
//	The fullness forest never contains the bottom node. Otherwise an open
//	bottom-row site that only touches other bottom-row sites would appear
//	connected to top through bottom once the system percolates
//	("backwash").
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Open:       O(α(N²)) amortized.
//   - IsOpen:     O(1).
//   - IsFull:     O(α(N²)) amortized.
//   - Percolates: O(α(N²)) amortized.
//
// Errors:
//
//   - ErrInvalidArgument: N ≤ 0, or N²+2 overflows int, at construction.
//   - ErrOutOfRange:      row or col outside [1, N]; the grid is left unchanged.
package percolation
