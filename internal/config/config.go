// Package config holds the run configuration of the salesman command: which
// solvers to run, their parameters and the output files. Values come from
// Default, an optional YAML or TOML file, then command-line flags.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/salesman/tsp"
)

var (
	// ErrUnknownFormat is returned for a config file that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid configuration")
)

// DefaultLogFile is the verbose log destination when none is given.
const DefaultLogFile = "log.txt"

// Methods selects the solvers to run. They run in declaration order.
type Methods struct {
	BruteForce       bool `yaml:"bruteforce" toml:"bruteforce"`
	BruteForceMatrix bool `yaml:"bruteforce_matrix" toml:"bruteforce_matrix"`
	NearestNeighbor  bool `yaml:"ppv" toml:"ppv"`
	RandomWalk       bool `yaml:"rw" toml:"rw"`
	TwoOpt           bool `yaml:"two_opt" toml:"two_opt"`
	Genetic          bool `yaml:"ga" toml:"ga"`
}

// Any reports whether at least one solver is selected.
func (m Methods) Any() bool {
	return m.BruteForce || m.BruteForceMatrix || m.NearestNeighbor || m.RandomWalk || m.TwoOpt || m.Genetic
}

// Genetic holds the GA parameters.
type Genetic struct {
	Population    int     `yaml:"population" toml:"population"`
	Generations   int     `yaml:"generations" toml:"generations"`
	MutationRate  float64 `yaml:"mutation_rate" toml:"mutation_rate"`
	SelectionBias float64 `yaml:"selection_bias" toml:"selection_bias"`
	TwoOpt        bool    `yaml:"two_opt" toml:"two_opt"`
}

// Config is the full run configuration.
type Config struct {
	Input       string `yaml:"input" toml:"input"`
	TourFile    string `yaml:"tour_file" toml:"tour_file"`
	CSVFile     string `yaml:"csv_file" toml:"csv_file"`
	LogFile     string `yaml:"log_file" toml:"log_file"`
	DrawDir     string `yaml:"draw_dir" toml:"draw_dir"`
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file"`

	Verbose bool `yaml:"verbose" toml:"verbose"`
	NoZero  bool `yaml:"no_zero" toml:"no_zero"`

	Methods Methods `yaml:"methods" toml:"methods"`
	Genetic Genetic `yaml:"genetic" toml:"genetic"`

	// Seed 0 means "seed from the clock".
	Seed      int64         `yaml:"seed" toml:"seed"`
	TimeLimit time.Duration `yaml:"time_limit" toml:"time_limit"`
	MaxPasses int           `yaml:"max_passes" toml:"max_passes"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Genetic: Genetic{
			Population:    tsp.DefaultPopulation,
			Generations:   tsp.DefaultGenerations,
			MutationRate:  tsp.DefaultMutationRate,
			SelectionBias: tsp.DefaultSelectionBias,
		},
	}
}

// Load decodes path over Default. The format follows the extension:
// .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithStack(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
	if err != nil {
		return cfg, errors.WithMessagef(err, "decode %s", path)
	}

	return cfg, nil
}

// Validate checks the configuration before any work starts.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.Wrap(ErrInvalid, "an input file is required")
	case !c.Methods.Any():
		return errors.Wrap(ErrInvalid, "no solver selected")
	case c.Methods.TwoOpt && !c.Methods.NearestNeighbor && !c.Methods.RandomWalk:
		return errors.Wrap(ErrInvalid, "2-opt needs a starting construction: ppv or rw")
	case c.Genetic.Population < 2:
		return errors.Wrapf(ErrInvalid, "population %d < 2", c.Genetic.Population)
	case c.Genetic.Generations < 0:
		return errors.Wrapf(ErrInvalid, "generations %d < 0", c.Genetic.Generations)
	case math.IsNaN(c.Genetic.MutationRate) || c.Genetic.MutationRate < 0 || c.Genetic.MutationRate > 1:
		return errors.Wrapf(ErrInvalid, "mutation rate %v outside [0,1]", c.Genetic.MutationRate)
	case c.Genetic.SelectionBias < 0:
		return errors.Wrapf(ErrInvalid, "selection bias %v < 0", c.Genetic.SelectionBias)
	case c.TimeLimit < 0:
		return errors.Wrapf(ErrInvalid, "time limit %v < 0", c.TimeLimit)
	case c.MaxPasses < 0:
		return errors.Wrapf(ErrInvalid, "max passes %d < 0", c.MaxPasses)
	}

	return nil
}

// TwoOptStart returns the construction seeding 2-opt: PPV wins when both
// constructions are selected.
func (c Config) TwoOptStart() tsp.Construction {
	if c.Methods.NearestNeighbor {
		return tsp.FromNearestNeighbor
	}

	return tsp.FromRandomWalk
}

// Options converts the configuration into solver options. Rand is left nil;
// the caller chooses the seed.
func (c Config) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.NoZero = c.NoZero
	opts.TwoOptStart = c.TwoOptStart()
	opts.TwoOptMaxPasses = c.MaxPasses
	opts.Population = c.Genetic.Population
	opts.Generations = c.Genetic.Generations
	opts.MutationRate = c.Genetic.MutationRate
	opts.SelectionBias = c.Genetic.SelectionBias
	opts.GeneticTwoOpt = c.Genetic.TwoOpt
	opts.TimeLimit = c.TimeLimit
	opts.Seed = c.Seed

	return opts
}
