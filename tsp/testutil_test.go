// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for lengths computed along different summation orders.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for stochastic solvers.
	seedDet = int64(42)

	// timeTiny is a wall-clock budget used to exercise deadline behaviour.
	timeTiny = time.Nanosecond
)

// -----------------------------------------------------------------------------
// Scripted randomness
// -----------------------------------------------------------------------------

// scriptedRand replays fixed draws, cycling when exhausted. An empty script
// yields 0 for both methods.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

var _ tsp.Rand = (*scriptedRand)(nil)

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++

	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++

	return v % n
}

// -----------------------------------------------------------------------------
// Instance builders
// -----------------------------------------------------------------------------

// circleInstance places n cities on a circle of radius r centred at (cx, cy),
// listed in a scrambled order so constructions have work to do.
func circleInstance(n int, cx, cy, r float64) *tsp.Instance {
	in := tsp.NewInstance("circle")
	var (
		i, k int
		th   float64
	)
	for i = 0; i < n; i++ {
		k = (i * 7) % n
		if n%7 == 0 {
			k = i
		}
		th = 2 * math.Pi * float64(k) / float64(n)
		in.AddNode(geom.Node{X: cx + r*math.Cos(th), Y: cy + r*math.Sin(th)})
	}

	return in
}

// gridInstance returns a deterministic pseudo-scattered instance of n cities.
func gridInstance(n int) *tsp.Instance {
	in := tsp.NewInstance("scatter")
	for i := 0; i < n; i++ {
		in.AddNode(geom.Node{
			X: float64((i*37)%101) + 0.5*float64(i%3),
			Y: float64((i*61)%89) + 0.25*float64(i%5),
		})
	}

	return in
}

// directLength sums consecutive Euclidean distances of nodes, plus origin legs
// unless noZero. It is the reference every solver length is compared against.
func directLength(in *tsp.Instance, nodes []int, noZero bool) float64 {
	if len(nodes) == 0 {
		return 0
	}
	pts := in.Nodes()
	var total float64
	if !noZero {
		total += geom.Distance(geom.Origin, pts[nodes[0]])
		total += geom.Distance(pts[nodes[len(nodes)-1]], geom.Origin)
	}
	for i := 0; i+1 < len(nodes); i++ {
		total += geom.Distance(pts[nodes[i]], pts[nodes[i+1]])
	}

	return total
}

// requireTour asserts the permutation invariant and the reported length.
func requireTour(t *testing.T, in *tsp.Instance, tour tsp.Tour, noZero bool) {
	t.Helper()
	require.NoError(t, tour.Validate(in.Dimension()), "tour %v", tour.Nodes)
	require.InDelta(t, directLength(in, tour.Nodes, noZero), tour.Length, epsTiny)
}
