package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/salesman/draw"
	"github.com/katalvlaran/salesman/export"
	"github.com/katalvlaran/salesman/internal/config"
	"github.com/katalvlaran/salesman/metrics"
	"github.com/katalvlaran/salesman/report"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/katalvlaran/salesman/tsplib"
)

// generationLogEvery throttles per-generation debug logs.
const generationLogEvery = 100

// Animation frame names, drawn in verbose mode under --draw.
const (
	twoOptFrame  = "2opt_%04d.png"
	geneticFrame = "ga_e%04d.png"
)

// job is one solver invocation and the drawings of its tours.
type job struct {
	method tsp.Method
	opts   tsp.Options
	images []string
}

// runner carries the per-run state shared by every job.
type runner struct {
	cfg     config.Config
	logger  *log.Logger
	out     io.Writer
	// verbose receives raw dumps; nil unless verbose.
	verbose io.Writer
	dumped  bool
	in      *tsp.Instance
	csv     *export.Writer
	metrics *metrics.Recorder
	best    *tsp.Tour
}

// Run executes one benchmark run described by cfg.
func (c *CLI) Run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		logger  = c.Logger
		verbose io.Writer
	)
	if cfg.Verbose {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		logger = newLogger(f, LogDebug)
		verbose = f
	}
	logger = logger.With("run", uuid.New().String())
	ctx = withLogger(ctx, logger)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("configuration", "seed", cfg.Seed, "no_zero", cfg.NoZero, "time_limit", cfg.TimeLimit)

	p := newProgress(logger)
	in, err := tsplib.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	p.done("instance loaded", "name", in.Name, "dimension", in.Dimension())
	if in.EdgeWeightType != "" && in.EdgeWeightType != tsplib.EdgeWeightEuclidean {
		logger.Warn("only planar Euclidean distances are modelled; ignoring edge weight type", "type", in.EdgeWeightType)
	}

	r := &runner{
		cfg:     cfg,
		logger:  logger,
		out:     c.Out,
		verbose: verbose,
		in:      in,
		metrics: metrics.New(),
	}
	if cfg.Verbose {
		report.Instance(c.Out, in)
	}
	if cfg.CSVFile != "" {
		f, err := os.Create(cfg.CSVFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()
		r.csv = export.NewWriter(f, cfg.NoZero)
		if err := r.csv.WriteInstance(in); err != nil {
			return err
		}
	}
	if cfg.DrawDir != "" {
		if err := os.MkdirAll(cfg.DrawDir, 0o755); err != nil {
			return errors.WithStack(err)
		}
	}

	for _, j := range r.plan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.execute(ctx, j); err != nil {
			return err
		}
	}

	if cfg.TourFile != "" && r.best != nil {
		if err := tsplib.WriteTourFile(cfg.TourFile, *r.best); err != nil {
			return err
		}
		logger.Info("tour written", "path", cfg.TourFile, "method", r.best.Method)
	}
	if cfg.MetricsFile != "" {
		if err := r.metrics.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

// plan lists the jobs in the fixed reporting order.
func (r *runner) plan() []job {
	var (
		m    = r.cfg.Methods
		base = r.cfg.Options()
		jobs []job
	)
	base.Rand = tsp.NewRand(r.cfg.Seed)

	if m.BruteForce || m.BruteForceMatrix {
		o := base
		o.UseDistanceCache = m.BruteForceMatrix
		jobs = append(jobs, job{method: tsp.MethodBruteForce, opts: o, images: []string{"bf_best.png", "bf_worst.png"}})
	}
	if m.NearestNeighbor {
		jobs = append(jobs, job{method: tsp.MethodNearestNeighbor, opts: base, images: []string{"ppv.png"}})
	}
	if m.RandomWalk {
		jobs = append(jobs, job{method: tsp.MethodRandomWalk, opts: base, images: []string{"rw.png"}})
	}
	if m.TwoOpt {
		o := base
		if r.frames() {
			o.OnPass = func(pass int, t tsp.Tour) { r.saveFrame(twoOptFrame, pass, t) }
		}
		jobs = append(jobs, job{method: tsp.MethodTwoOpt, opts: o, images: []string{"2opt.png"}})
	}
	if m.Genetic {
		o := base
		o.OnGeneration = r.observeGeneration
		jobs = append(jobs, job{method: tsp.MethodGenetic, opts: o, images: []string{"ga.png"}})
	}

	return jobs
}

func (r *runner) observeGeneration(gen int, pop []tsp.Tour) {
	s := tsp.SummarizePopulation(pop)
	r.metrics.ObserveGeneration(s)
	if gen%generationLogEvery == 0 {
		r.logger.Debug("generation", "n", gen, "best", s.Best, "mean", s.Mean, "stddev", s.StdDev)
	}
	if r.frames() && len(pop) > 0 {
		r.saveFrame(geneticFrame, gen, pop[0])
	}
}

// frames reports whether solver progress is drawn frame by frame.
func (r *runner) frames() bool {
	return r.cfg.Verbose && r.cfg.DrawDir != ""
}

func (r *runner) drawOptions() draw.Options {
	opts := draw.DefaultOptions()
	opts.NoZero = r.cfg.NoZero

	return opts
}

// saveFrame draws t as frame k. Drawing errors are logged, not returned.
func (r *runner) saveFrame(pattern string, k int, t tsp.Tour) {
	path := filepath.Join(r.cfg.DrawDir, fmt.Sprintf(pattern, k))
	if err := draw.SaveTour(path, r.in, t, r.drawOptions()); err != nil {
		r.logger.Warn("frame not drawn", "path", path, "err", err)
	}
}

// dumpDistances writes the distance cache to the verbose log once per run,
// after a solver that reads it has built it.
func (r *runner) dumpDistances(j job) {
	if r.verbose == nil || r.dumped {
		return
	}
	if j.method != tsp.MethodNearestNeighbor && !(j.method == tsp.MethodBruteForce && j.opts.UseDistanceCache) {
		return
	}
	d := r.in.Distances()
	if d == nil {
		return
	}
	r.logger.Debug("distance matrix", "size", d.Size())
	fmt.Fprint(r.verbose, d.String())
	r.dumped = true
}

// execute runs one job and publishes its tours. A time budget overrun is
// logged and skipped; any other solver error ends the run.
func (r *runner) execute(ctx context.Context, j job) error {
	logger := loggerFromContext(ctx).With("method", j.method.String())
	logger.Debug("solver started")

	began := time.Now()
	tours, err := tsp.Solve(r.in, j.method, j.opts)
	if errors.Is(err, tsp.ErrTimeLimit) {
		r.metrics.ObserveError(j.method)
		logger.Warn("time limit reached, no result", "limit", j.opts.TimeLimit)
		return nil
	}
	if err != nil {
		r.metrics.ObserveError(j.method)
		return errors.WithMessagef(err, "%s", j.method)
	}
	r.metrics.ObserveRun(j.method, time.Since(began))
	r.dumpDistances(j)

	for i, t := range tours {
		report.Tour(r.out, t)
		if j.method == tsp.MethodGenetic {
			report.GeneticParams(r.out, j.opts)
		}
		r.metrics.ObserveTour(t)
		if crossings, err := tsp.Crossings(r.in, t); err == nil {
			logger.Debug("tour", "label", t.Method, "length", t.Length, "crossings", crossings, "elapsed", t.Elapsed)
		}
		if r.csv != nil {
			if err := r.csv.WriteTour(t); err != nil {
				return err
			}
		}
		if r.cfg.DrawDir != "" && i < len(j.images) {
			path := filepath.Join(r.cfg.DrawDir, j.images[i])
			if err := draw.SaveTour(path, r.in, t, r.drawOptions()); err != nil {
				return err
			}
			logger.Debug("tour drawn", "path", path)
		}
		// The worst brute-force tour never competes for the tour file.
		if t.Method != tsp.LabelBruteForceWorst && (r.best == nil || t.Length < r.best.Length) {
			b := t.Clone()
			r.best = &b
		}
	}

	return nil
}
