package tsp

// NextPermutation rearranges a into the lexicographically next permutation
// and reports true. When a is already the last permutation (non-increasing),
// it returns false and leaves a untouched.
//
// Steps:
//  1. Find the longest non-increasing suffix; the element before it is the pivot.
//  2. Find the rightmost suffix element strictly greater than the pivot.
//  3. Swap them, then reverse the suffix.
//
// Complexity: O(n) worst case, O(1) amortised over a full enumeration.
func NextPermutation(a []int) bool {
	var (
		n = len(a)
		i = n - 2
		j int
	)
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j = n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverseArcInPlace(a, i+1, n-1)

	return true
}
