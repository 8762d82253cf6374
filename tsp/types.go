package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrNilInstance is returned when a solver receives a nil *Instance.
	ErrNilInstance = errors.New("tsp: nil instance")

	// ErrDimensionMismatch signals a tour whose length differs from the instance
	// dimension, or a sequence that is not a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrIndexOutOfRange signals a city id or tour position outside [0..n-1].
	ErrIndexOutOfRange = errors.New("tsp: index out of range")

	// ErrNoDistances is returned when cached distances are read before
	// BuildDistances, or after a mutation dropped the cache.
	ErrNoDistances = errors.New("tsp: distance cache not built")

	// ErrInvalidOptions signals an inconsistent Options value.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedMethod is returned by Solve for an unknown Method.
	ErrUnsupportedMethod = errors.New("tsp: unsupported method")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before completion.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")
)

// Method labels stored in Tour.Method.
const (
	LabelNearestNeighbor = "PPV"
	LabelRandomWalk      = "RW"
	LabelTwoOptPPV       = "2-OPT (w/ PPV)"
	LabelTwoOptRW        = "2-OPT (w/ RW)"
	LabelGenetic         = "GA"
	LabelGeneticTwoOpt   = "GA + 2OPT"
	LabelBruteForceBest  = "BF (meilleur)"
	LabelBruteForceWorst = "BF (pire)"
)

// Defaults for the genetic algorithm.
const (
	DefaultPopulation    = 200
	DefaultGenerations   = 1000
	DefaultMutationRate  = 0.3
	DefaultSelectionBias = 10.0
)

// Method selects a solver in Solve.
type Method uint8

const (
	// MethodBruteForce enumerates every permutation (best and worst tours).
	MethodBruteForce Method = iota
	// MethodNearestNeighbor runs the greedy PPV construction.
	MethodNearestNeighbor
	// MethodRandomWalk builds a uniformly random tour.
	MethodRandomWalk
	// MethodTwoOpt runs 2-opt seeded as configured by Options.TwoOptStart.
	MethodTwoOpt
	// MethodGenetic runs the genetic algorithm.
	MethodGenetic
)

// String returns a short lowercase name, used as a metrics/log label.
func (m Method) String() string {
	switch m {
	case MethodBruteForce:
		return "bruteforce"
	case MethodNearestNeighbor:
		return "ppv"
	case MethodRandomWalk:
		return "rw"
	case MethodTwoOpt:
		return "2opt"
	case MethodGenetic:
		return "ga"
	default:
		return "unknown"
	}
}

// Construction selects how the 2-opt driver builds its starting tour.
type Construction uint8

const (
	// FromNearestNeighbor seeds 2-opt with the PPV tour.
	FromNearestNeighbor Construction = iota
	// FromRandomWalk seeds 2-opt with a random walk.
	FromRandomWalk
)

// Options configures every solver. Use DefaultOptions() and override fields.
//
// Fields:
//
//	NoZero            drop the origin legs: tours become open paths.
//	UseDistanceCache  evaluate brute-force lengths through the cache, and
//	                   pre-build it in Solve.
//	TwoOptStart       construction used to seed MethodTwoOpt.
//	TwoOptMaxPasses   0 ⇒ run passes until a local optimum.
//	Population        GA population size (≥ 2).
//	Generations       GA generation count (≥ 0).
//	MutationRate      GA mutation probability in [0,1].
//	SelectionBias     exponent sharpening fitness-proportional selection.
//	GeneticTwoOpt     run 2-opt to convergence on every GA child.
//	TimeLimit         0 ⇒ unlimited; otherwise ErrTimeLimit once elapsed.
//	Seed, Rand        randomness; Rand wins when non-nil.
//	OnGeneration      optional hook observing the sorted GA population.
//	OnPass            optional hook observing each improving 2-opt pass.
type Options struct {
	NoZero           bool
	UseDistanceCache bool

	TwoOptStart     Construction
	TwoOptMaxPasses int

	Population    int
	Generations   int
	MutationRate  float64
	SelectionBias float64
	GeneticTwoOpt bool

	TimeLimit time.Duration

	Seed int64
	Rand Rand

	// OnGeneration is called after each generation with its 1-based index and
	// the population sorted by ascending length. The slice must not be retained.
	OnGeneration func(generation int, population []Tour)

	// OnPass is called after every 2-opt pass that shortened the tour, with
	// the 1-based pass index and the current tour. It fires for TwoOpt and
	// Optimize2Opt only, not for the refinement of GA children. The tour's
	// Nodes must not be retained.
	OnPass func(pass int, t Tour)
}

// DefaultOptions returns the reference configuration: origin legs included,
// coordinate-based brute force, PPV-seeded 2-opt without a pass cap, and a GA
// of 200 individuals over 1000 generations with a 0.3 mutation rate.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		TwoOptStart:   FromNearestNeighbor,
		Population:    DefaultPopulation,
		Generations:   DefaultGenerations,
		MutationRate:  DefaultMutationRate,
		SelectionBias: DefaultSelectionBias,
	}
}
