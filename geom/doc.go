// Package geom provides the 2D point primitive used by the TSP solvers.
//
// A Node is an immutable pair of float64 coordinates. The package offers:
//   - Distance: Euclidean distance between two nodes.
//   - Equal: coordinate-wise comparison within Epsilon (1e-10).
//   - Orientation / OnSegment / SegmentsIntersect: classic orientation tests used
//     to detect crossing legs in a tour.
//
// All functions are pure and allocation-free.
package geom
