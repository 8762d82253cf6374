// Package tsp - 2-opt local search.
//
// A 2-opt move at positions (i, j), i < j, replaces the legs
// (T[i],T[i+1]) and (T[j],T[j+1]) with (T[i],T[j]) and (T[i+1],T[j+1]) by
// reversing T[i+1..j]. The pass only considers edge starts 0..n-2, so the
// first and last cities stay in place and the origin legs never change.
//
// Acceptance:
//   - Candidate when d(a,b)+d(c,d) > d(a,c)+d(b,d) on the current tour.
//   - The move is applied to a scratch copy and committed only when the
//     recomputed total is strictly smaller, so every committed move strictly
//     lowers the length and the driver always terminates.
//
// Options.OnPass observes every pass that shortened the tour.
//
// Budgets:
//   - Options.TwoOptMaxPasses caps the number of passes (0 ⇒ until converged).
//   - Options.TimeLimit aborts with ErrTimeLimit.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(n) per accepted move.
package tsp

import "time"

// Swap2Opt applies the 2-opt move at positions i and j (in either order) to t
// and recomputes t.Length: the segment between min(i,j)+1 and max(i,j) is
// reversed, prefix and suffix untouched.
//
// Example: [0,1,2,3,4] with (1,3) becomes [0,1,3,2,4].
//
// Errors: ErrNilInstance, ErrDimensionMismatch, ErrIndexOutOfRange and the
// permutation errors of Tour.Validate.
func Swap2Opt(in *Instance, t *Tour, i, j int, opts Options) error {
	if err := validateInstance(in); err != nil {
		return err
	}
	if t == nil {
		return ErrDimensionMismatch
	}
	if err := t.Validate(in.Dimension()); err != nil {
		return err
	}
	n := len(t.Nodes)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrIndexOutOfRange
	}
	swap2Opt(t.Nodes, i, j)
	t.Length = pathLength(in, t.Nodes, in.HasDistances(), opts.NoZero)

	return nil
}

// swap2Opt reverses nodes[min(i,j)+1 .. max(i,j)] without any checks.
func swap2Opt(nodes []int, i, j int) {
	if i > j {
		i, j = j, i
	}
	reverseArcInPlace(nodes, i+1, j)
}

// ImproveTwoOpt runs one improvement pass over t and reports whether any
// move was committed. The distance cache is built when absent.
func ImproveTwoOpt(in *Instance, t *Tour, opts Options) (bool, error) {
	if err := checkTwoOptInput(in, t, opts); err != nil {
		return false, err
	}

	return improveTwoOpt(in, t, opts, newBudget(opts.TimeLimit))
}

// Optimize2Opt runs improvement passes on t until a pass changes nothing,
// TwoOptMaxPasses is reached, or TimeLimit elapses (ErrTimeLimit; t then holds
// the best tour found so far).
func Optimize2Opt(in *Instance, t *Tour, opts Options) error {
	if err := checkTwoOptInput(in, t, opts); err != nil {
		return err
	}

	return optimize2Opt(in, t, opts, newBudget(opts.TimeLimit))
}

// TwoOpt builds a starting tour with the requested construction and drives it
// to a 2-opt local optimum. The method label records the construction used.
func TwoOpt(in *Instance, start Construction, opts Options) (Tour, error) {
	if err := validateInstance(in); err != nil {
		return Tour{}, err
	}
	opts.TwoOptStart = start
	if err := validateOptions(opts); err != nil {
		return Tour{}, err
	}
	began := time.Now()
	b := newBudget(opts.TimeLimit)
	if err := in.ensureDistances(); err != nil {
		return Tour{}, err
	}

	var (
		t   Tour
		err error
	)
	switch start {
	case FromRandomWalk:
		t = randomWalk(in, opts, opts.rng())
		t.Method = LabelTwoOptRW
	default:
		if t, err = nearestNeighbor(in, opts, b); err != nil {
			return Tour{}, err
		}
		t.Method = LabelTwoOptPPV
	}
	if err = optimize2Opt(in, &t, opts, b); err != nil {
		return Tour{}, err
	}
	t.Elapsed = time.Since(began)

	return t, nil
}

func checkTwoOptInput(in *Instance, t *Tour, opts Options) error {
	if err := validateInstance(in); err != nil {
		return err
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	if t == nil {
		return ErrDimensionMismatch
	}
	if err := t.Validate(in.Dimension()); err != nil {
		return err
	}

	return in.ensureDistances()
}

// optimize2Opt assumes validated input and a current cache.
func optimize2Opt(in *Instance, t *Tour, opts Options, b *budget) error {
	var (
		passes  int
		changed bool
		err     error
	)
	for {
		if changed, err = improveTwoOpt(in, t, opts, b); err != nil {
			return err
		}
		passes++
		if changed && opts.OnPass != nil {
			opts.OnPass(passes, *t)
		}
		if !changed || (opts.TwoOptMaxPasses > 0 && passes >= opts.TwoOptMaxPasses) {
			return nil
		}
	}
}

// improveTwoOpt is one pass over all non-adjacent position pairs.
func improveTwoOpt(in *Instance, t *Tour, opts Options, b *budget) (bool, error) {
	var (
		n       = len(t.Nodes)
		leg     = in.legFunc(true)
		scratch = make([]int, n)
		changed bool
		cand    float64
		i, j    int
		a, c    int
		nd      = t.Nodes
	)
	t.Length = pathLength(in, t.Nodes, true, opts.NoZero)

	for i = 0; i < n-1; i++ {
		for j = 0; j < n-1; j++ {
			if j >= i-1 && j <= i+1 {
				continue
			}
			if b.expired() {
				return changed, ErrTimeLimit
			}
			a, c = nd[i], nd[j]
			if leg(a, nd[i+1])+leg(c, nd[j+1]) <= leg(a, c)+leg(nd[i+1], nd[j+1]) {
				continue
			}
			copy(scratch, nd)
			swap2Opt(scratch, i, j)
			cand = pathLength(in, scratch, true, opts.NoZero)
			if cand < t.Length {
				copy(t.Nodes, scratch)
				t.Length = cand
				changed = true
			}
		}
	}

	return changed, nil
}
