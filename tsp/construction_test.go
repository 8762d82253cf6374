package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

// lineInstance: cities on the positive x axis, listed out of order.
func lineInstance() *tsp.Instance {
	return tsp.NewInstance("line",
		geom.Node{X: 5}, geom.Node{X: 1}, geom.Node{X: 2}, geom.Node{X: 10})
}

func TestNearestNeighbor_Greedy(t *testing.T) {
	in := lineInstance()
	opts := tsp.DefaultOptions()

	tour, err := tsp.NearestNeighbor(in, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3}, tour.Nodes)
	assert.InDelta(t, 20.0, tour.Length, epsTiny)
	assert.Equal(t, tsp.LabelNearestNeighbor, tour.Method)
	assert.Equal(t, "line", tour.Name)
	assert.True(t, in.HasDistances(), "PPV builds the cache")

	opts.NoZero = true
	tour, err = tsp.NearestNeighbor(in, opts)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, tour.Length, epsTiny)
}

func TestNearestNeighbor_TiesPickLowestID(t *testing.T) {
	in := tsp.NewInstance("tie", geom.Node{X: 1}, geom.Node{Y: 1}, geom.Node{X: -1})
	tour, err := tsp.NearestNeighbor(in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, tour.Nodes[0])
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	in := gridInstance(60)
	a, err := tsp.NearestNeighbor(in, tsp.DefaultOptions())
	require.NoError(t, err)
	b, err := tsp.NearestNeighbor(in, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Equal(t, a.Length, b.Length)
	requireTour(t, in, a, false)
}

func TestNearestNeighbor_Degenerate(t *testing.T) {
	tour, err := tsp.NearestNeighbor(tsp.NewInstance("empty"), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, tour.Nodes)
	assert.Zero(t, tour.Length)

	single := tsp.NewInstance("single", geom.Node{X: 3, Y: 4})
	tour, err = tsp.NearestNeighbor(single, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tour.Nodes)
	assert.InDelta(t, 10.0, tour.Length, epsTiny)

	_, err = tsp.NearestNeighbor(nil, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrNilInstance)
}

func TestRandomWalk_Permutation(t *testing.T) {
	in := gridInstance(40)
	opts := tsp.DefaultOptions()
	opts.Rand = tsp.NewRand(seedDet)
	for i := 0; i < 20; i++ {
		tour, err := tsp.RandomWalk(in, opts)
		require.NoError(t, err)
		assert.Equal(t, tsp.LabelRandomWalk, tour.Method)
		requireTour(t, in, tour, false)
	}
	assert.False(t, in.HasDistances(), "RW evaluates from coordinates")
}

func TestRandomWalk_ScriptedDraws(t *testing.T) {
	in := gridInstance(4)
	opts := tsp.DefaultOptions()
	// Working set [0 1 2 3]: take idx 2 → 2, [0 1 3]: idx 0 → 0, [1 3]: idx 1 → 3, [1].
	opts.Rand = &scriptedRand{ints: []int{2, 0, 1, 0}}
	tour, err := tsp.RandomWalk(in, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, tour.Nodes)
}

func TestRandomWalk_SeedDeterminism(t *testing.T) {
	in := gridInstance(30)
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	a, err := tsp.RandomWalk(in, opts)
	require.NoError(t, err)
	b, err := tsp.RandomWalk(in, opts)
	require.NoError(t, err)
	assert.Equal(t, a.Nodes, b.Nodes)
}
