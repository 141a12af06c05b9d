// Package unionfind defines the Forest type and sentinel errors.
package unionfind

import "errors"

// ErrInvalidSize indicates that a forest was requested with n ≤ 0 elements.
var ErrInvalidSize = errors.New("unionfind: element count must be positive")

// ErrOutOfRange indicates that an element index is outside [0, n).
var ErrOutOfRange = errors.New("unionfind: element index out of range")

// Forest is a weighted disjoint-set forest over the elements 0..n-1.
//
// parent[i] is the parent of i; i is a root iff parent[i] == i.
// size[r] is the number of elements in the tree rooted at r and is only
// meaningful for roots. count tracks the number of components.
//
// A Forest is not safe for concurrent use.
type Forest struct {
	parent []int
	size   []int
	count  int
}
