package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/metrics"
	"github.com/katalvlaran/salesman/tsp"
)

func TestRecorder_WriteFile(t *testing.T) {
	r := metrics.New()
	r.ObserveRun(tsp.MethodNearestNeighbor, 3*time.Millisecond)
	r.ObserveTour(tsp.Tour{Method: tsp.LabelNearestNeighbor, Length: 42.5})
	r.ObserveRun(tsp.MethodNearestNeighbor, time.Millisecond)
	r.ObserveTour(tsp.Tour{Method: tsp.LabelNearestNeighbor, Length: 40})
	r.ObserveError(tsp.MethodGenetic)
	r.ObserveGeneration(tsp.PopulationStats{Best: 10, Mean: 12.5})
	r.ObserveGeneration(tsp.PopulationStats{Best: 9, Mean: 11})

	out := dump(t, r)
	assert.Contains(t, out, `salesman_solver_runs_total{method="ppv",status="ok"} 2`)
	assert.Contains(t, out, `salesman_solver_runs_total{method="ga",status="error"} 1`)
	assert.Contains(t, out, `salesman_tour_length{method="PPV"} 40`)
	assert.Contains(t, out, `salesman_solver_duration_seconds_count{method="ppv"} 2`)
	assert.Contains(t, out, "salesman_ga_generations_total 2")
	assert.Contains(t, out, "salesman_ga_population_best_length 9")
	assert.Contains(t, out, "salesman_ga_population_mean_length 11")
}

// dump writes r to a temporary textfile and returns its content.
func dump(t *testing.T, r *metrics.Recorder) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesman.prom")
	require.NoError(t, r.WriteFile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(raw)
}

func TestRecorder_SameSeriesForSuccessAndFailure(t *testing.T) {
	r := metrics.New()
	r.ObserveRun(tsp.MethodNearestNeighbor, time.Millisecond)
	r.ObserveTour(tsp.Tour{Method: tsp.LabelNearestNeighbor, Length: 7})
	r.ObserveError(tsp.MethodNearestNeighbor)

	out := dump(t, r)
	assert.Contains(t, out, `salesman_solver_runs_total{method="ppv",status="ok"} 1`)
	assert.Contains(t, out, `salesman_solver_runs_total{method="ppv",status="error"} 1`)
	assert.NotContains(t, out, `salesman_solver_runs_total{method="PPV"`)
}

func TestRecorder_BruteForceCountsOneRun(t *testing.T) {
	r := metrics.New()
	r.ObserveRun(tsp.MethodBruteForce, 5*time.Millisecond)
	r.ObserveTour(tsp.Tour{Method: tsp.LabelBruteForceBest, Length: 10})
	r.ObserveTour(tsp.Tour{Method: tsp.LabelBruteForceWorst, Length: 20})

	out := dump(t, r)
	assert.Contains(t, out, `salesman_solver_runs_total{method="bruteforce",status="ok"} 1`)
	assert.Contains(t, out, `salesman_solver_duration_seconds_count{method="bruteforce"} 1`)
	assert.Contains(t, out, `salesman_tour_length{method="BF (meilleur)"} 10`)
	assert.Contains(t, out, `salesman_tour_length{method="BF (pire)"} 20`)
}

func TestRecorder_WriteFileBadPath(t *testing.T) {
	r := metrics.New()
	assert.Error(t, r.WriteFile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
