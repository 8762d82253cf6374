// Package cli implements the salesman command-line interface.
//
// One root command loads a TSPLIB instance, runs the selected solvers in a
// fixed order (brute force, PPV, random walk, 2-opt, genetic algorithm) and
// reports each tour on the console, and optionally to a CSV report, a TSPLIB
// tour file, PNG drawings and a Prometheus textfile.
package cli

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/salesman/internal/buildinfo"
	"github.com/katalvlaran/salesman/internal/config"
)

const appName = "salesman"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	// Out receives the console report.
	Out io.Writer
	// Err receives log output unless verbose logging goes to a file.
	Err io.Writer
}

// New creates a CLI writing the report to out and logs to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
	}
}

// flagValues holds raw flag targets before they are merged into a Config.
type flagValues struct {
	configFile string
	cfg        config.Config
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	fv := &flagValues{cfg: config.Default()}

	root := &cobra.Command{
		Use:   appName + " -f FILE [flags] [--ga [POPULATION [GENERATIONS [MUTATION]]]]",
		Short: "Salesman compares TSP heuristics on a TSPLIB instance",
		Long: `Salesman reads a planar TSPLIB instance and runs the selected solvers:
brute force (--bf, or --bfm with the distance matrix), nearest neighbour (--ppv),
random walk (--rw), 2-opt seeded by --ppv or --rw (--2opt) and a genetic
algorithm (--ga, optionally refined with --ga-2opt).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fv.resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return c.Run(cmd.Context(), cfg)
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	bindFlags(root.Flags(), fv)

	return root
}

func bindFlags(fs *pflag.FlagSet, fv *flagValues) {
	cfg := &fv.cfg

	fs.StringVar(&fv.configFile, "config", "", "YAML or TOML run configuration; flags override it")
	fs.StringVarP(&cfg.Input, "file", "f", "", "TSPLIB instance (required)")
	fs.StringVarP(&cfg.TourFile, "tour", "t", "", "write the shortest tour found as a TSPLIB tour file")
	fs.StringVarP(&cfg.CSVFile, "output", "o", "", "export results to a semicolon separated report")
	fs.StringVarP(&cfg.LogFile, "verbose", "v", "", "verbose mode, logging into FILE (-v=FILE or -v FILE; default "+config.DefaultLogFile+")")
	fs.Lookup("verbose").NoOptDefVal = config.DefaultLogFile
	fs.BoolVar(&cfg.NoZero, "nz", false, "do not anchor tours at the origin (0,0)")

	fs.BoolVar(&cfg.Methods.BruteForce, "bf", false, "brute force")
	fs.BoolVar(&cfg.Methods.BruteForceMatrix, "bfm", false, "brute force using the distance matrix")
	fs.BoolVar(&cfg.Methods.NearestNeighbor, "ppv", false, "nearest neighbour")
	fs.BoolVar(&cfg.Methods.RandomWalk, "rw", false, "random walk")
	fs.BoolVar(&cfg.Methods.TwoOpt, "2opt", false, "2-opt local search, seeded by --ppv or --rw")
	fs.BoolVar(&cfg.Methods.Genetic, "ga", false, "genetic algorithm; optional positional POPULATION GENERATIONS MUTATION")
	fs.BoolVar(&cfg.Genetic.TwoOpt, "ga-2opt", false, "run 2-opt on every genetic child")

	fs.IntVar(&cfg.Genetic.Population, "population", cfg.Genetic.Population, "genetic population size")
	fs.IntVar(&cfg.Genetic.Generations, "generations", cfg.Genetic.Generations, "genetic generation count")
	fs.Float64Var(&cfg.Genetic.MutationRate, "mutation", cfg.Genetic.MutationRate, "genetic mutation rate in [0,1]")

	fs.StringVar(&cfg.DrawDir, "draw", "", "write one PNG per tour into this directory")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.DurationVar(&cfg.TimeLimit, "time-limit", 0, "per-solver time budget (0 = unlimited)")
	fs.IntVar(&cfg.MaxPasses, "max-passes", 0, "2-opt pass cap (0 = until a local optimum)")
}

// resolve layers Default, the optional config file and the changed flags.
func (fv *flagValues) resolve(fs *pflag.FlagSet, args []string) (config.Config, error) {
	cfg := fv.cfg
	if fv.configFile != "" {
		fileCfg, err := config.Load(fv.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = overlay(fileCfg, fv.cfg, fs)
	}
	// "-v FILE" leaves FILE as the only positional argument.
	if len(args) == 1 && !cfg.Methods.Genetic && fs.Changed("verbose") && fv.cfg.LogFile == config.DefaultLogFile {
		cfg.LogFile = args[0]
		args = nil
	}
	if len(args) > 0 && !cfg.Methods.Genetic {
		return cfg, errors.Errorf("unexpected arguments %v: positional values belong to --ga", args)
	}
	if err := parseGeneticArgs(&cfg.Genetic, args); err != nil {
		return cfg, err
	}
	if cfg.Verbose && cfg.LogFile == "" {
		cfg.LogFile = config.DefaultLogFile
	}
	cfg.Verbose = cfg.LogFile != ""

	return cfg, nil
}

// overlay copies every flag the user set explicitly onto base.
func overlay(base, flags config.Config, fs *pflag.FlagSet) config.Config {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("file", func() { base.Input = flags.Input })
	set("tour", func() { base.TourFile = flags.TourFile })
	set("output", func() { base.CSVFile = flags.CSVFile })
	set("verbose", func() { base.LogFile = flags.LogFile })
	set("nz", func() { base.NoZero = flags.NoZero })
	set("bf", func() { base.Methods.BruteForce = flags.Methods.BruteForce })
	set("bfm", func() { base.Methods.BruteForceMatrix = flags.Methods.BruteForceMatrix })
	set("ppv", func() { base.Methods.NearestNeighbor = flags.Methods.NearestNeighbor })
	set("rw", func() { base.Methods.RandomWalk = flags.Methods.RandomWalk })
	set("2opt", func() { base.Methods.TwoOpt = flags.Methods.TwoOpt })
	set("ga", func() { base.Methods.Genetic = flags.Methods.Genetic })
	set("ga-2opt", func() { base.Genetic.TwoOpt = flags.Genetic.TwoOpt })
	set("population", func() { base.Genetic.Population = flags.Genetic.Population })
	set("generations", func() { base.Genetic.Generations = flags.Genetic.Generations })
	set("mutation", func() { base.Genetic.MutationRate = flags.Genetic.MutationRate })
	set("draw", func() { base.DrawDir = flags.DrawDir })
	set("metrics-file", func() { base.MetricsFile = flags.MetricsFile })
	set("seed", func() { base.Seed = flags.Seed })
	set("time-limit", func() { base.TimeLimit = flags.TimeLimit })
	set("max-passes", func() { base.MaxPasses = flags.MaxPasses })

	return base
}

// parseGeneticArgs reads the optional POPULATION GENERATIONS MUTATION values.
func parseGeneticArgs(g *config.Genetic, args []string) error {
	var err error
	if len(args) > 0 {
		if g.Population, err = strconv.Atoi(args[0]); err != nil {
			return errors.Wrapf(err, "population %q", args[0])
		}
	}
	if len(args) > 1 {
		if g.Generations, err = strconv.Atoi(args[1]); err != nil {
			return errors.Wrapf(err, "generations %q", args[1])
		}
	}
	if len(args) > 2 {
		if g.MutationRate, err = strconv.ParseFloat(args[2], 64); err != nil {
			return errors.Wrapf(err, "mutation %q", args[2])
		}
	}

	return nil
}
