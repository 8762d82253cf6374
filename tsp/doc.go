// Package tsp provides planar symmetric Travelling Salesman Problem solvers.
//
// An Instance holds 2D nodes (index = city id) and a lazily built symmetric
// distance cache. Solvers read an Instance and return fresh Tour values:
//
//   - NearestNeighbor (PPV)  greedy construction from the origin, O(n²).
//   - RandomWalk (RW)        uniformly random visiting order, O(n²).
//   - TwoOpt                 2-opt local search seeded by PPV or RW,
//     O(n²) per pass, passes until a local optimum (bounded by
//     Options.TwoOptMaxPasses / Options.TimeLimit when set).
//   - Genetic (GA)           fitness-proportional selection, order-preserving
//     crossover with repair, 2-opt mutation, optional 2-opt refinement.
//   - BruteForce (BF)        exhaustive lexicographic enumeration, O(n·n!).
//     Only tractable for n ≲ 11.
//
// Tours are closed loops anchored at the virtual origin (0,0) unless
// Options.NoZero is set, in which case they are open paths.
//
// Randomness is injected through Options.Rand (anything with Float64 and Intn);
// when nil, a deterministic stream is derived from Options.Seed.
//
// The package performs no logging and never panics on user input; it returns
// the sentinel errors declared in types.go. Instances are not safe for
// concurrent mutation: run one writer at a time.
package tsp
