package tsp

import (
	"slices"
	"time"
)

// RandomWalk builds a uniformly random tour: it repeatedly draws one of the
// remaining ids, appends it and removes it from the working set. The length
// is evaluated afterwards from coordinates.
//
// Complexity: O(n²) time (slice deletion), O(n) space.
func RandomWalk(in *Instance, opts Options) (Tour, error) {
	if err := validateInstance(in); err != nil {
		return Tour{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Tour{}, err
	}
	start := time.Now()
	t := randomWalk(in, opts, opts.rng())
	t.Elapsed = time.Since(start)

	return t, nil
}

func randomWalk(in *Instance, opts Options, rng Rand) Tour {
	var (
		n     = in.Dimension()
		left  = identity(n)
		order = make([]int, 0, n)
		k     int
	)
	for len(left) > 0 {
		k = rng.Intn(len(left))
		order = append(order, left[k])
		left = slices.Delete(left, k, k+1)
	}

	return Tour{
		Name:   in.Name,
		Method: LabelRandomWalk,
		Nodes:  order,
		Length: pathLength(in, order, false, opts.NoZero),
	}
}
