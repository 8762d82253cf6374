// Package tsp - nearest-neighbour construction (PPV).
//
// From the virtual origin, repeatedly step to the closest unvisited city.
// The first step measures straight from the origin; later steps scan the
// cache row of the previous city, the cache being built on demand. Ties go to the lowest id, so the
// result is fully deterministic.
//
// Complexity: O(n²) time, O(n) extra space (plus the O(n²) cache).
package tsp

import (
	"math"
	"time"

	"github.com/katalvlaran/salesman/geom"
)

// NearestNeighbor builds the PPV tour of in.
func NearestNeighbor(in *Instance, opts Options) (Tour, error) {
	if err := validateInstance(in); err != nil {
		return Tour{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Tour{}, err
	}
	start := time.Now()
	if err := in.ensureDistances(); err != nil {
		return Tour{}, err
	}
	t, err := nearestNeighbor(in, opts, newBudget(opts.TimeLimit))
	if err != nil {
		return Tour{}, err
	}
	t.Elapsed = time.Since(start)

	return t, nil
}

// nearestNeighbor assumes a current cache.
func nearestNeighbor(in *Instance, opts Options, b *budget) (Tour, error) {
	var (
		n       = in.Dimension()
		visited = make([]bool, n)
		order   = make([]int, 0, n)
		row     []float64
		total   float64
		prev    = -1
		best    int
		bestD   float64
		d       float64
		i, v    int
		err     error
	)
	for i = 0; i < n; i++ {
		if b.expired() {
			return Tour{}, ErrTimeLimit
		}
		if prev >= 0 {
			if row, err = in.dist.Row(prev, row); err != nil {
				return Tour{}, err
			}
		}
		best, bestD = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if prev < 0 {
				d = geom.Distance(geom.Origin, in.nodes[v])
			} else {
				d = row[v]
			}
			if d < bestD {
				best, bestD = v, d
			}
		}
		visited[best] = true
		order = append(order, best)
		// The origin leg only counts when the tour is anchored at the depot.
		if prev >= 0 || !opts.NoZero {
			total += bestD
		}
		prev = best
	}
	if n > 0 && !opts.NoZero {
		total += geom.Distance(in.nodes[prev], geom.Origin)
	}

	return Tour{
		Name:   in.Name,
		Method: LabelNearestNeighbor,
		Nodes:  order,
		Length: total,
	}, nil
}
