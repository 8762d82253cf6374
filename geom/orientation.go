package geom

import "math"

// Turn is the orientation of an ordered point triplet.
type Turn uint8

const (
	// Collinear means the three points lie on one line (within Epsilon).
	Collinear Turn = iota
	// Clockwise means p→q→r turns right.
	Clockwise
	// CounterClockwise means p→q→r turns left.
	CounterClockwise
)

// Orientation classifies the turn p→q→r from the sign of the cross product.
//
// Complexity: O(1).
func Orientation(p, q, r Node) Turn {
	var val float64
	val = (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if math.Abs(val) < Epsilon {
		return Collinear
	}
	if val > 0 {
		return Clockwise
	}

	return CounterClockwise
}

// OnSegment reports whether q lies inside the bounding box of segment pr.
// Callers use it only for triplets already known to be collinear.
func OnSegment(p, q, r Node) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segments a1a2 and b1b2 share at least one point,
// including touching endpoints and collinear overlaps.
//
// Complexity: O(1).
func SegmentsIntersect(a1, a2, b1, b2 Node) bool {
	var o1, o2, o3, o4 Turn
	o1 = Orientation(a1, a2, b1)
	o2 = Orientation(a1, a2, b2)
	o3 = Orientation(b1, b2, a1)
	o4 = Orientation(b1, b2, a2)

	// General case: endpoints of each segment straddle the other.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Special cases: a collinear endpoint lying on the other segment.
	if o1 == Collinear && OnSegment(a1, b1, a2) {
		return true
	}
	if o2 == Collinear && OnSegment(a1, b2, a2) {
		return true
	}
	if o3 == Collinear && OnSegment(b1, a1, b2) {
		return true
	}
	if o4 == Collinear && OnSegment(b1, a2, b2) {
		return true
	}

	return false
}
