// Package percolation is a toolkit for studying the site-percolation phase
// transition on square grids.
//
// 🚀 What is in the box?
//
//	• unionfind/   — weighted disjoint-set forest with path halving
//	• percolation/ — N×N grid with incremental Open, IsFull and Percolates,
//	                 free of the backwash defect
//	• montecarlo/  — threshold estimation: mean, sample stddev, confidence interval
//	• cmd/percolationstats — command-line front end
//
// Quick ASCII example (N=3, X = open):
//
//	X . .
//	X X .
//	. X .
//
// The system percolates: an open path links row 1 to row 3.
// Repeating random experiments like this one converges on p* ≈ 0.5927.
//
//	go install github.com/paulrodriguez/percolation/cmd/percolationstats@latest
//	percolationstats 200 100
package percolation
