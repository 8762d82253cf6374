// Package matrix provides the symmetric distance cache used by the TSP solvers.
//
// The cache stores pairwise Euclidean distances between the nodes of one
// instance. It is backed by gonum's mat.SymDense, so symmetry holds by
// construction: D[i][j] and D[j][i] are the same cell.
//
// Build once per instance in O(n²) with NewDistances, then read in O(1) with
// At, or a whole row in O(n) with Row. String renders the upper triangle for
// verbose dumps.
//
// Public indexers never panic on bad input; they return ErrOutOfRange.
package matrix
