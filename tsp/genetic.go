// Package tsp - genetic algorithm.
//
// Generation loop:
//  1. Weights p_i ∝ (maxLen − len_i)^SelectionBias, normalised to sum to 1
//     (uniform when every individual has the same length).
//  2. Population/2 children, each bred by Crossover from two distinct parents
//     drawn with RandProb.
//  3. Mutation with probability MutationRate: one 2-opt move at two
//     independently drawn positions.
//  4. Optional 2-opt to convergence on each child (Options.GeneticTwoOpt).
//  5. Children replace the weakest half; the population is stably re-sorted.
//
// After Generations rounds the first individual is returned.
//
// Complexity: O(G·P·n) without 2-opt; each 2-opt convergence adds O(passes·n²).
package tsp

import (
	"cmp"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Genetic evolves a population of random walks and returns its best tour,
// labelled LabelGenetic or LabelGeneticTwoOpt.
func Genetic(in *Instance, opts Options) (Tour, error) {
	if err := validateInstance(in); err != nil {
		return Tour{}, err
	}
	if err := validateGeneticOptions(opts); err != nil {
		return Tour{}, err
	}
	began := time.Now()
	opts.OnPass = nil
	if opts.GeneticTwoOpt {
		if err := in.ensureDistances(); err != nil {
			return Tour{}, err
		}
	}

	var (
		rng      = opts.rng()
		b        = newBudget(opts.TimeLimit)
		size     = opts.Population
		half     = size / 2
		n        = in.Dimension()
		pop      = make([]Tour, size)
		children = make([]Tour, half)
		weights  = make([]float64, size)
		label    = LabelGenetic
		gen, k   int
		pa, pb   int
		err      error
	)
	if opts.GeneticTwoOpt {
		label = LabelGeneticTwoOpt
	}
	for k = 0; k < size; k++ {
		pop[k] = randomWalk(in, opts, rng)
		pop[k].Method = label
	}
	sortPopulation(pop)

	for gen = 1; gen <= opts.Generations; gen++ {
		selectionWeights(pop, opts.SelectionBias, weights)
		for k = 0; k < half; k++ {
			if b.expired() {
				return Tour{}, ErrTimeLimit
			}
			pa, pb = pickParents(weights, rng)
			child := Tour{
				Name:   in.Name,
				Method: label,
				Nodes:  crossover(pop[pa].Nodes, pop[pb].Nodes, rng),
			}
			if n >= 2 && rng.Float64() < opts.MutationRate {
				swap2Opt(child.Nodes, rng.Intn(n), rng.Intn(n))
			}
			child.Length = pathLength(in, child.Nodes, false, opts.NoZero)
			if opts.GeneticTwoOpt {
				if err = optimize2Opt(in, &child, opts, b); err != nil {
					return Tour{}, err
				}
			}
			children[k] = child
		}
		for k = 0; k < half; k++ {
			pop[size-1-k] = children[k]
		}
		sortPopulation(pop)
		if opts.OnGeneration != nil {
			opts.OnGeneration(gen, pop)
		}
	}

	best := pop[0].Clone()
	best.Elapsed = time.Since(began)

	return best, nil
}

// sortPopulation orders by ascending length, keeping ties in place.
func sortPopulation(pop []Tour) {
	slices.SortStableFunc(pop, func(x, y Tour) int {
		return cmp.Compare(x.Length, y.Length)
	})
}

// selectionWeights fills w (len(pop)) with the normalised selection vector.
// Lengths are rescaled into [0,1] before the power so large instances do not
// overflow; the distribution is unchanged.
func selectionWeights(pop []Tour, bias float64, w []float64) {
	var (
		best  = pop[0].Length
		worst = pop[len(pop)-1].Length
		span  = worst - best
		i     int
	)
	if !(span > 0) {
		for i = range w {
			w[i] = 1 / float64(len(w))
		}
		return
	}
	for i = range pop {
		w[i] = math.Pow((worst-pop[i].Length)/span, bias)
	}
	floats.Scale(1/floats.Sum(w), w)
}

// pickParents draws two distinct population indices. A repeated draw is
// nudged to a neighbour: 0→1, last→last−1, otherwise ±1 at random.
func pickParents(w []float64, rng Rand) (int, int) {
	var (
		last = len(w) - 1
		i    = RandProb(w, rng)
		j    = RandProb(w, rng)
	)
	if i != j {
		return i, j
	}
	switch i {
	case 0:
		j = 1
	case last:
		j = last - 1
	default:
		j = either(rng, i-1, i+1)
	}

	return i, j
}

// PopulationStats summarises the lengths of a GA population.
type PopulationStats struct {
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64
}

// SummarizePopulation computes PopulationStats over pop, which must be
// sorted (as handed to Options.OnGeneration). Empty input yields zeros.
func SummarizePopulation(pop []Tour) PopulationStats {
	if len(pop) == 0 {
		return PopulationStats{}
	}
	lengths := make([]float64, len(pop))
	for i := range pop {
		lengths[i] = pop[i].Length
	}
	s := PopulationStats{
		Best:  lengths[0],
		Worst: lengths[len(lengths)-1],
	}
	if len(lengths) == 1 {
		s.Mean = lengths[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(lengths, nil)

	return s
}
