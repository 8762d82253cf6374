// Package tsp - unified dispatcher.
//
// Solve validates the options once, pre-builds the distance cache when
// Options.UseDistanceCache is set, and routes to the requested solver.
// Brute force yields two tours (best, worst); every other method yields one.
package tsp

// Solve runs method on in.
//
// Errors: ErrNilInstance, ErrInvalidOptions, ErrUnsupportedMethod, ErrTimeLimit
// and whatever the chosen solver returns.
func Solve(in *Instance, method Method, opts Options) ([]Tour, error) {
	if err := validateInstance(in); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if opts.UseDistanceCache {
		if err := in.ensureDistances(); err != nil {
			return nil, err
		}
	}

	var (
		t   Tour
		err error
	)
	switch method {
	case MethodBruteForce:
		best, worst, err := BruteForce(in, opts)
		if err != nil {
			return nil, err
		}
		return []Tour{best, worst}, nil
	case MethodNearestNeighbor:
		t, err = NearestNeighbor(in, opts)
	case MethodRandomWalk:
		t, err = RandomWalk(in, opts)
	case MethodTwoOpt:
		t, err = TwoOpt(in, opts.TwoOptStart, opts)
	case MethodGenetic:
		t, err = Genetic(in, opts)
	default:
		return nil, ErrUnsupportedMethod
	}
	if err != nil {
		return nil, err
	}

	return []Tour{t}, nil
}
