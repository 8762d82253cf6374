// Package tsp - exhaustive search.
//
// BruteForce enumerates every permutation of the city ids in lexicographic
// order, starting from (and including) the identity, and keeps both the
// shortest and the longest tour. Lengths come from the distance cache when
// Options.UseDistanceCache is set, from coordinates otherwise.
//
// Complexity: O(n!·n) time, O(n) extra space. Only small instances are
// tractable; bound the run with Options.TimeLimit.
package tsp

import "time"

// BruteForce returns the best and the worst tour of in.
// Ties keep the lexicographically first permutation.
func BruteForce(in *Instance, opts Options) (best, worst Tour, err error) {
	if err = validateInstance(in); err != nil {
		return Tour{}, Tour{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Tour{}, Tour{}, err
	}
	began := time.Now()
	if opts.UseDistanceCache {
		if err = in.ensureDistances(); err != nil {
			return Tour{}, Tour{}, err
		}
	}

	var (
		b     = newBudget(opts.TimeLimit)
		perm  = identity(in.Dimension())
		l     float64
		first = pathLength(in, perm, opts.UseDistanceCache, opts.NoZero)
	)
	best = Tour{Name: in.Name, Method: LabelBruteForceBest, Nodes: append([]int(nil), perm...), Length: first}
	worst = Tour{Name: in.Name, Method: LabelBruteForceWorst, Nodes: append([]int(nil), perm...), Length: first}

	for NextPermutation(perm) {
		if b.expired() {
			return Tour{}, Tour{}, ErrTimeLimit
		}
		l = pathLength(in, perm, opts.UseDistanceCache, opts.NoZero)
		if l < best.Length {
			copy(best.Nodes, perm)
			best.Length = l
		}
		if l > worst.Length {
			copy(worst.Nodes, perm)
			worst.Length = l
		}
	}
	elapsed := time.Since(began)
	best.Elapsed, worst.Elapsed = elapsed, elapsed

	return best, worst, nil
}
