// Package tsp - RNG utilities shared by the stochastic solvers.
//
// Goals:
//   - Injection: every stochastic step draws from Options.Rand, so tests can
//     substitute a scripted source.
//   - Determinism: with Rand==nil, the same Seed yields the same results.
//   - No hidden time-based sources; the CLI decides whether to seed from the clock.
//
// Concurrency:
//   - Rand implementations are not assumed goroutine-safe. Solvers are
//     single-threaded and never share a Rand across goroutines.
package tsp

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Rand is the randomness surface used by the solvers.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n); n > 0.
	Intn(n int) int
}

// NewRand returns a deterministic PCG-backed Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) Rand {
	return rngFromSeed(seed)
}

func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(uint64(s)))
}

// rng resolves the Rand a solver call should draw from.
func (o Options) rng() Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// either returns a or b with equal probability.
func either(rng Rand, a, b int) int {
	if rng.Float64() > 0.5 {
		return a
	}

	return b
}
