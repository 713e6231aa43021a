package parameter

import "fmt"

// Order maps threshold positions to out-edge indices: Order[p] = k places
// the threshold of the k-th out-edge at position p.
type Order []int

// Identity returns the order 0, 1, ..., n-1.
func Identity(n int) Order {
	o := make(Order, n)
	for i := range o {
		o[i] = i
	}
	return o
}

// Inverse returns the position of out-edge k, or -1 when k is absent.
func (o Order) Inverse(k int) int {
	for p, v := range o {
		if v == k {
			return p
		}
	}
	return -1
}

// Validate checks that o is a permutation of 0..n-1.
func (o Order) Validate(n int) error {
	if len(o) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidOrder, len(o), n)
	}
	seen := make([]bool, n)
	for _, v := range o {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, []int(o))
		}
		seen[v] = true
	}

	return nil
}

// Label packs wall flags into a labelling value: left[d] sets bit d and
// right[d] sets bit D+d.
func Label(left, right []bool) (uint64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d != %d", ErrWallLength, len(left), len(right))
	}
	if len(left) > MaxDimension {
		return 0, fmt.Errorf("%w: %d", ErrTooManyDimensions, len(left))
	}
	dim := len(left)
	var label uint64
	for d := 0; d < dim; d++ {
		if left[d] {
			label |= 1 << d
		}
		if right[d] {
			label |= 1 << (dim + d)
		}
	}

	return label, nil
}

// Walls unpacks a labelling value for dimension dim.
func Walls(label uint64, dim int) (left, right []bool) {
	left = make([]bool, dim)
	right = make([]bool, dim)
	for d := 0; d < dim; d++ {
		left[d] = label&(1<<d) != 0
		right[d] = label&(1<<(dim+d)) != 0
	}
	return left, right
}
