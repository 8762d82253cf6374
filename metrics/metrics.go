// Package metrics records solver runs in a dedicated Prometheus registry and
// dumps it in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/salesman/tsp"
)

const namespace = "salesman"

// Run outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder owns the registry and the solver collectors.
type Recorder struct {
	Registry *prometheus.Registry

	// SolverRuns counts solver jobs by method name and status.
	SolverRuns *prometheus.CounterVec
	// SolverDuration records solver job wall time in seconds, by method name.
	SolverDuration *prometheus.HistogramVec
	// TourLength holds the last tour length per tour label; brute force
	// reports its best and worst tours separately.
	TourLength *prometheus.GaugeVec
	// Generations counts GA generations.
	Generations prometheus.Counter
	// PopulationBest holds the best length of the latest GA generation.
	PopulationBest prometheus.Gauge
	// PopulationMean holds the mean length of the latest GA generation.
	PopulationMean prometheus.Gauge
}

// New builds a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		SolverRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "solver_runs_total", Help: "Solver runs by method and status."},
			[]string{"method", "status"},
		),
		SolverDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solver_duration_seconds",
				Help:      "Solver wall time in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 10, 9),
			},
			[]string{"method"},
		),
		TourLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tour_length", Help: "Length of the last tour per method."},
			[]string{"method"},
		),
		Generations: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "ga_generations_total", Help: "Genetic algorithm generations."},
		),
		PopulationBest: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "ga_population_best_length", Help: "Best length in the latest GA generation."},
		),
		PopulationMean: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "ga_population_mean_length", Help: "Mean length in the latest GA generation."},
		),
	}
	r.Registry.MustRegister(
		r.SolverRuns,
		r.SolverDuration,
		r.TourLength,
		r.Generations,
		r.PopulationBest,
		r.PopulationMean,
		collectors.NewGoCollector(),
	)

	return r
}

// ObserveRun records one successful solver job, whatever the number of
// tours it returned.
func (r *Recorder) ObserveRun(method tsp.Method, elapsed time.Duration) {
	r.SolverRuns.WithLabelValues(method.String(), StatusOK).Inc()
	r.SolverDuration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
}

// ObserveTour records the length of one returned tour under its label.
func (r *Recorder) ObserveTour(t tsp.Tour) {
	r.TourLength.WithLabelValues(t.Method).Set(t.Length)
}

// ObserveError records a failed job of method.
func (r *Recorder) ObserveError(method tsp.Method) {
	r.SolverRuns.WithLabelValues(method.String(), StatusError).Inc()
}

// ObserveGeneration records one GA generation summary.
func (r *Recorder) ObserveGeneration(s tsp.PopulationStats) {
	r.Generations.Inc()
	r.PopulationBest.Set(s.Best)
	r.PopulationMean.Set(s.Mean)
}

// WriteFile dumps the registry to path in the textfile format.
func (r *Recorder) WriteFile(path string) error {
	return errors.WithMessagef(prometheus.WriteToTextfile(path, r.Registry), "write metrics %s", path)
}
