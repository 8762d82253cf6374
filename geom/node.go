package geom

import (
	"fmt"
	"math"
)

// Epsilon is the absolute coordinate difference considered insignificant.
const Epsilon = 1e-10

// Origin is the virtual depot (0,0) tours are anchored to by default.
var Origin = Node{}

// Node is a city location in the plane.
type Node struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Node) float64 {
	var dx, dy float64
	dx = b.X - a.X
	dy = b.Y - a.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports whether both coordinates differ by less than Epsilon.
func Equal(a, b Node) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}

// String renders the node as "(x, y)" with two decimals.
func (n Node) String() string { return fmt.Sprintf("(%.2f, %.2f)", n.X, n.Y) }
