package tsp

// Crossover breeds one child from parents a and b, position by position.
//
// Gene choice at each position, given genes ga, gb and the set already placed:
//   - ga == gb                 → ga
//   - ga placed, gb free       → gb
//   - gb placed, ga free       → ga
//   - otherwise (both or none) → uniform pick between ga and gb
//
// A chosen gene that is already placed leaves a hole. Holes are then filled
// left to right with the missing ids, in the order they appear in a. The
// child is therefore always a permutation.
//
// Errors: ErrDimensionMismatch when a and b are not permutations of the same size.
//
// Complexity: O(n) time and space.
func Crossover(a, b []int, rng Rand) ([]int, error) {
	n := len(a)
	if err := ValidatePermutation(a, n); err != nil {
		return nil, err
	}
	if err := ValidatePermutation(b, n); err != nil {
		return nil, err
	}

	return crossover(a, b, rng), nil
}

// crossover assumes two valid permutations of equal size.
func crossover(a, b []int, rng Rand) []int {
	const hole = -1

	var (
		n      = len(a)
		child  = make([]int, n)
		placed = make([]bool, n)
		holes  int
		ga, gb int
		g      int
		i      int
	)
	for i = 0; i < n; i++ {
		ga, gb = a[i], b[i]
		switch {
		case ga == gb:
			g = ga
		case placed[ga] && !placed[gb]:
			g = gb
		case placed[gb] && !placed[ga]:
			g = ga
		default:
			g = either(rng, ga, gb)
		}
		if placed[g] {
			child[i] = hole
			holes++
			continue
		}
		child[i] = g
		placed[g] = true
	}
	if holes == 0 {
		return child
	}

	// Repair.
	var k int
	for i = 0; i < n; i++ {
		if child[i] != hole {
			continue
		}
		for placed[a[k]] {
			k++
		}
		child[i] = a[k]
		placed[a[k]] = true
	}

	return child
}
