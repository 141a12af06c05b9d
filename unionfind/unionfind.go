package unionfind

import "fmt"

// New creates a Forest of n singleton components.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the number of disjoint components.
func (f *Forest) Count() int {
	return f.count
}

// Find returns the root of the component containing p.
// Path halving points every other node on the walk at its grandparent.
// Returns ErrOutOfRange if p ∉ [0, Len()).
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(p int) (int, error) {
	if err := f.validate(p); err != nil {
		return 0, err
	}

	return f.root(p), nil
}

// Connected reports whether p and q belong to the same component.
// Returns ErrOutOfRange if either index is invalid.
// Complexity: O(α(n)) amortized.
func (f *Forest) Connected(p, q int) (bool, error) {
	if err := f.validate(p); err != nil {
		return false, err
	}
	if err := f.validate(q); err != nil {
		return false, err
	}

	return f.root(p) == f.root(q), nil
}

// Union merges the components containing p and q.
// The root of the smaller tree is attached under the root of the larger one;
// on a tie q's root goes under p's root. Joining two already-connected
// elements is a no-op. Both indices are validated before any mutation.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(p, q int) error {
	if err := f.validate(p); err != nil {
		return err
	}
	if err := f.validate(q); err != nil {
		return err
	}

	rootP, rootQ := f.root(p), f.root(q)
	if rootP == rootQ {
		return nil
	}
	if f.size[rootP] < f.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	f.parent[rootQ] = rootP
	f.size[rootP] += f.size[rootQ]
	f.count--

	return nil
}

// root walks to the root of p, halving the path as it goes.
// p must already be validated.
func (f *Forest) root(p int) int {
	for f.parent[p] != p {
		f.parent[p] = f.parent[f.parent[p]]
		p = f.parent[p]
	}

	return p
}

// validate checks that p is a valid element index.
func (f *Forest) validate(p int) error {
	if p < 0 || p >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, p, len(f.parent))
	}

	return nil
}
