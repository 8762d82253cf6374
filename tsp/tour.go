// Package tsp - tour value type and structural helpers.
//
// A Tour is an open visiting order over city ids {0..n-1}; the virtual origin
// is never stored in Nodes. Helpers here work on index sequences only and do
// not look at coordinates.
//
// Complexity: O(n) time for every helper.
package tsp

import (
	"fmt"
	"time"
)

// Tour is one solver result.
type Tour struct {
	Name    string        // instance name
	Method  string        // solver label, e.g. LabelNearestNeighbor
	Nodes   []int         // visiting order, a permutation of 0..n-1
	Length  float64       // total length, origin legs included unless NoZero
	Elapsed time.Duration // wall time spent by the solver
}

// Clone returns a deep copy of t.
func (t Tour) Clone() Tour {
	c := t
	if t.Nodes != nil {
		c.Nodes = make([]int, len(t.Nodes))
		copy(c.Nodes, t.Nodes)
	}

	return c
}

// Dimension returns the number of cities visited.
func (t Tour) Dimension() int { return len(t.Nodes) }

// Validate checks that Nodes is a permutation of {0..n-1}.
func (t Tour) Validate(n int) error {
	return ValidatePermutation(t.Nodes, n)
}

// String renders the tour compactly for logs and test failures.
func (t Tour) String() string {
	return fmt.Sprintf("%s len=%.4f %v", t.Method, t.Length, t.Nodes)
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// The empty permutation is valid for n == 0.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n < 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// identity returns [0, 1, …, n-1].
func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}

// reverseArcInPlace reverses the inclusive segment nodes[i..k] in place.
//
// Contracts:
//   - 0 ≤ i ≤ k < len(nodes).
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(nodes []int, i, k int) {
	for i < k {
		nodes[i], nodes[k] = nodes[k], nodes[i]
		i++
		k--
	}
}
