package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

// -----------------------------------------------------------------------------
// Instance & distance cache
// -----------------------------------------------------------------------------

func TestInstance_AddNodeDropsCache(t *testing.T) {
	in := tsp.NewInstance("tri", geom.Node{X: 1}, geom.Node{Y: 1})
	require.Equal(t, 2, in.Dimension())
	require.False(t, in.HasDistances())

	_, err := in.Leg(0, 1)
	require.ErrorIs(t, err, tsp.ErrNoDistances)

	require.NoError(t, in.BuildDistances())
	require.True(t, in.HasDistances())
	d, err := in.Leg(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, d, epsTiny)
	assert.Equal(t, in.Dimension(), in.Distances().Size())

	id := in.AddNode(geom.Node{X: 3, Y: 4})
	assert.Equal(t, 2, id)
	assert.False(t, in.HasDistances())
	assert.Nil(t, in.Distances())
	_, err = in.Leg(0, 2)
	assert.ErrorIs(t, err, tsp.ErrNoDistances)
}

func TestInstance_CacheSymmetric(t *testing.T) {
	in := gridInstance(9)
	require.NoError(t, in.BuildDistances())
	pts := in.Nodes()
	for i := 0; i < in.Dimension(); i++ {
		for j := 0; j < in.Dimension(); j++ {
			dij, err := in.Leg(i, j)
			require.NoError(t, err)
			dji, err := in.Leg(j, i)
			require.NoError(t, err)
			require.Equal(t, dij, dji)
			require.Equal(t, geom.Distance(pts[i], pts[j]), dij)
		}
	}
	_, err := in.Leg(0, 9)
	assert.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}

func TestInstance_NodeBounds(t *testing.T) {
	in := tsp.NewInstance("one", geom.Node{X: 2, Y: 3})
	n, err := in.Node(0)
	require.NoError(t, err)
	assert.Equal(t, geom.Node{X: 2, Y: 3}, n)
	_, err = in.Node(1)
	assert.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
	_, err = in.Node(-1)
	assert.ErrorIs(t, err, tsp.ErrIndexOutOfRange)

	// Nodes returns a copy.
	pts := in.Nodes()
	pts[0].X = 99
	n, _ = in.Node(0)
	assert.Equal(t, 2.0, n.X)
}

// -----------------------------------------------------------------------------
// Tour helpers
// -----------------------------------------------------------------------------

func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name string
		perm []int
		n    int
		ok   bool
	}{
		{"empty", []int{}, 0, true},
		{"identity", []int{0, 1, 2}, 3, true},
		{"shuffled", []int{2, 0, 1}, 3, true},
		{"duplicate", []int{0, 0, 1}, 3, false},
		{"out of range", []int{0, 1, 3}, 3, false},
		{"negative", []int{-1, 0, 1}, 3, false},
		{"short", []int{0, 1}, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidatePermutation(tc.perm, tc.n)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
		})
	}
}

func TestTour_CloneIsDeep(t *testing.T) {
	a := tsp.Tour{Method: tsp.LabelRandomWalk, Nodes: []int{0, 1, 2}, Length: 3}
	b := a.Clone()
	b.Nodes[0] = 2
	assert.Equal(t, []int{0, 1, 2}, a.Nodes)
	assert.Equal(t, 3, b.Dimension())
	assert.Contains(t, a.String(), "RW")
}

// -----------------------------------------------------------------------------
// Length
// -----------------------------------------------------------------------------

func TestLength_OriginLegs(t *testing.T) {
	// Unit square corners visited counter-clockwise from (1,0).
	in := tsp.NewInstance("square",
		geom.Node{X: 1, Y: 0}, geom.Node{X: 1, Y: 1}, geom.Node{X: 0, Y: 1})
	opts := tsp.DefaultOptions()

	l, err := tsp.Length(in, []int{0, 1, 2}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, l, epsTiny)

	opts.NoZero = true
	l, err = tsp.Length(in, []int{0, 1, 2}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, l, epsTiny)
}

func TestLength_CacheMatchesCoordinates(t *testing.T) {
	in := gridInstance(12)
	perm := []int{3, 1, 4, 0, 5, 9, 2, 6, 8, 7, 11, 10}
	opts := tsp.DefaultOptions()

	opts.UseDistanceCache = true
	_, err := tsp.Length(in, perm, opts)
	require.ErrorIs(t, err, tsp.ErrNoDistances)

	require.NoError(t, in.BuildDistances())
	cached, err := tsp.Length(in, perm, opts)
	require.NoError(t, err)
	opts.UseDistanceCache = false
	direct, err := tsp.Length(in, perm, opts)
	require.NoError(t, err)
	assert.Equal(t, direct, cached)
}

func TestLength_Errors(t *testing.T) {
	_, err := tsp.Length(nil, nil, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrNilInstance)

	in := gridInstance(3)
	_, err = tsp.Length(in, []int{0, 1}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestLength_Degenerate(t *testing.T) {
	opts := tsp.DefaultOptions()
	l, err := tsp.Length(tsp.NewInstance("empty"), []int{}, opts)
	require.NoError(t, err)
	assert.Zero(t, l)

	single := tsp.NewInstance("single", geom.Node{X: 3, Y: 4})
	l, err = tsp.Length(single, []int{0}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, l, epsTiny)

	opts.NoZero = true
	l, err = tsp.Length(single, []int{0}, opts)
	require.NoError(t, err)
	assert.Zero(t, l)
}

func TestEvaluate(t *testing.T) {
	in := gridInstance(5)
	tour := tsp.Tour{Nodes: []int{4, 3, 2, 1, 0}}
	require.NoError(t, tsp.Evaluate(in, &tour, tsp.DefaultOptions()))
	assert.InDelta(t, directLength(in, tour.Nodes, false), tour.Length, epsTiny)
}

// -----------------------------------------------------------------------------
// NextPermutation
// -----------------------------------------------------------------------------

func TestNextPermutation_Lexicographic(t *testing.T) {
	a := []int{0, 1, 2}
	want := [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, w := range want {
		require.True(t, tsp.NextPermutation(a))
		require.Equal(t, w, a)
	}
	require.False(t, tsp.NextPermutation(a))
	assert.Equal(t, []int{2, 1, 0}, a, "last permutation stays untouched")
}

func TestNextPermutation_CountsFactorial(t *testing.T) {
	a := []int{0, 1, 2, 3, 4}
	count := 1
	for tsp.NextPermutation(a) {
		count++
	}
	assert.Equal(t, 120, count)
}

func TestNextPermutation_Trivial(t *testing.T) {
	assert.False(t, tsp.NextPermutation(nil))
	assert.False(t, tsp.NextPermutation([]int{0}))
}
