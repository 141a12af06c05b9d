package percolation

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive grid side, or one whose
	// N²+2 node count overflows int.
	ErrInvalidArgument = errors.New("percolation: invalid grid side")
	// ErrOutOfRange indicates a row or column outside [1, N].
	ErrOutOfRange = errors.New("percolation: index out of range")
)
