package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/internal/config"
	"github.com/katalvlaran/salesman/tsp"
)

func TestLoad_YAML(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data/berlin52.tsp", cfg.Input)
	assert.Equal(t, "out.csv", cfg.CSVFile)
	assert.True(t, cfg.NoZero)
	assert.True(t, cfg.Methods.NearestNeighbor)
	assert.True(t, cfg.Methods.TwoOpt)
	assert.Equal(t, 50, cfg.Genetic.Population)
	assert.Equal(t, 0.1, cfg.Genetic.MutationRate)
	assert.Equal(t, tsp.DefaultGenerations, cfg.Genetic.Generations, "unset keys keep defaults")
	assert.Equal(t, 30*time.Second, cfg.TimeLimit)
	require.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.MaxPasses)
	assert.Equal(t, time.Minute, cfg.TimeLimit)
	assert.True(t, cfg.Methods.RandomWalk)
	assert.True(t, cfg.Methods.Genetic)
	assert.Equal(t, 20, cfg.Genetic.Generations)
	assert.True(t, cfg.Genetic.TwoOpt)
	assert.Equal(t, tsp.DefaultPopulation, cfg.Genetic.Population)
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, tsp.FromRandomWalk, opts.TwoOptStart)
	assert.Equal(t, 3, opts.TwoOptMaxPasses)
	assert.True(t, opts.GeneticTwoOpt)
	assert.Equal(t, int64(7), opts.Seed)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	_, err = config.Load(path)
	assert.True(t, errors.Is(err, config.ErrUnknownFormat))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("genetic: [1, 2"), 0o600))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		c := config.Default()
		c.Input = "x.tsp"
		c.Methods.NearestNeighbor = true
		return c
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *config.Config){
		"no input":        func(c *config.Config) { c.Input = "" },
		"no method":       func(c *config.Config) { c.Methods = config.Methods{} },
		"2opt alone":      func(c *config.Config) { c.Methods = config.Methods{TwoOpt: true} },
		"tiny population": func(c *config.Config) { c.Genetic.Population = 1 },
		"negative gens":   func(c *config.Config) { c.Genetic.Generations = -1 },
		"mutation > 1":    func(c *config.Config) { c.Genetic.MutationRate = 2 },
		"negative bias":   func(c *config.Config) { c.Genetic.SelectionBias = -1 },
		"negative limit":  func(c *config.Config) { c.TimeLimit = -time.Second },
		"negative passes": func(c *config.Config) { c.MaxPasses = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.True(t, errors.Is(c.Validate(), config.ErrInvalid))
		})
	}
}

func TestTwoOptStart_PrefersPPV(t *testing.T) {
	c := config.Default()
	c.Methods.NearestNeighbor = true
	c.Methods.RandomWalk = true
	assert.Equal(t, tsp.FromNearestNeighbor, c.TwoOptStart())
}
