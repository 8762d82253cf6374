// Package tsp - tour length utilities shared by every solver.
//
// A tour of n cities has n−1 inner legs. Unless Options.NoZero is set, two
// more legs join the virtual origin (0,0) to the first city and the last city
// back to the origin, making the tour a closed loop anchored at the depot.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import "github.com/katalvlaran/salesman/geom"

// Length computes the length of the visiting order nodes on in.
// Cached distances are used when opts.UseDistanceCache is set (the cache must
// be built), coordinates otherwise.
//
// Errors: ErrNilInstance, ErrDimensionMismatch (len(nodes) != Dimension() or not
// a permutation), ErrNoDistances.
func Length(in *Instance, nodes []int, opts Options) (float64, error) {
	if err := validateInstance(in); err != nil {
		return 0, err
	}
	if err := ValidatePermutation(nodes, in.Dimension()); err != nil {
		return 0, err
	}
	if opts.UseDistanceCache && !in.HasDistances() {
		return 0, ErrNoDistances
	}

	return pathLength(in, nodes, opts.UseDistanceCache, opts.NoZero), nil
}

// Evaluate recomputes t.Length from coordinates.
func Evaluate(in *Instance, t *Tour, opts Options) error {
	opts.UseDistanceCache = false
	l, err := Length(in, t.Nodes, opts)
	if err != nil {
		return err
	}
	t.Length = l

	return nil
}

// pathLength sums the legs of nodes without validation.
// With useCache the cache must be current.
func pathLength(in *Instance, nodes []int, useCache, noZero bool) float64 {
	var (
		total float64
		leg   = in.legFunc(useCache)
		n     = len(nodes)
		i     int
	)
	if n == 0 {
		return 0
	}
	if !noZero {
		total = geom.Distance(geom.Origin, in.nodes[nodes[0]])
	}
	for i = 0; i < n-1; i++ {
		total += leg(nodes[i], nodes[i+1])
	}
	if !noZero {
		total += geom.Distance(in.nodes[nodes[n-1]], geom.Origin)
	}

	return total
}
