// Package unionfind provides a disjoint-set (union-find) forest over the
// integer elements 0..n-1.
//
// What:
//
//   - Forest partitions n elements into components.
//   - Union merges two components (union by size).
//   - Find returns the canonical root of an element (path halving).
//   - Connected reports whether two elements share a component.
//
// Why:
//
//   - Incremental connectivity: grids that only ever gain edges
//     (percolation, Kruskal MST, island merging) need no graph search.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Union:     O(α(n)) amortized.
//   - Find:      O(α(n)) amortized.
//   - Connected: O(α(n)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: n ≤ 0 at construction.
//   - ErrOutOfRange:  element index outside [0, n).
//
// The tree shape produced by Union is an implementation detail; only the
// connectivity relation is part of the contract.
package unionfind
