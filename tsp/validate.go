// Package tsp - validation and budget utilities shared by the solvers.
//
// Design principles:
//   - Deterministic, side-effect free checks returning sentinels from types.go.
//   - Budget checks are throttled so hot loops pay almost nothing for them.
package tsp

import (
	"math"
	"time"
)

// validateOptions checks fields every solver relies on.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined.
	if opts.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	// Pass cap must be non-negative (0 ⇒ unlimited).
	if opts.TwoOptMaxPasses < 0 {
		return ErrInvalidOptions
	}
	switch opts.TwoOptStart {
	case FromNearestNeighbor, FromRandomWalk:
		// ok
	default:
		return ErrInvalidOptions
	}

	return nil
}

// validateGeneticOptions checks the GA-specific knobs on top of validateOptions.
//
// Complexity: O(1).
func validateGeneticOptions(opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	// Parent selection needs two distinct individuals.
	if opts.Population < 2 {
		return ErrInvalidOptions
	}
	if opts.Generations < 0 {
		return ErrInvalidOptions
	}
	if math.IsNaN(opts.MutationRate) || opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrInvalidOptions
	}
	if math.IsNaN(opts.SelectionBias) || math.IsInf(opts.SelectionBias, 0) || opts.SelectionBias < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// validateInstance rejects nil instances.
func validateInstance(in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}

	return nil
}

// budget is a soft wall-clock deadline checked sparsely in hot loops.
type budget struct {
	useDeadline bool
	deadline    time.Time
	step        int
}

// newBudget returns an unlimited budget for limit==0.
func newBudget(limit time.Duration) *budget {
	b := &budget{}
	if limit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(limit)
	}

	return b
}

// expired reports whether the deadline passed. The clock is read once every
// 1024 calls to keep overhead negligible.
func (b *budget) expired() bool {
	b.step++
	if !b.useDeadline || (b.step&1023) != 0 {
		return false
	}

	return time.Now().After(b.deadline)
}
