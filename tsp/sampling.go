package tsp

// RandProb draws an index from the normalised probability vector p by
// inverse-CDF sampling. The walk stops at the last index so rounding in p
// can never overrun it. An empty vector yields 0.
//
// For p = [0.5, 0.5]: a uniform draw below 0.5 returns 0, otherwise 1.
//
// Complexity: O(len(p)).
func RandProb(p []float64, rng Rand) int {
	var (
		s = rng.Float64()
		n = len(p)
		i int
	)
	for i < n-1 {
		s -= p[i]
		if s < 0 {
			break
		}
		i++
	}

	return i
}
