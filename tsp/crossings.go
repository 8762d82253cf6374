package tsp

import "github.com/katalvlaran/salesman/geom"

// Crossings counts pairs of non-adjacent legs of t that intersect. Only the
// inner legs are considered; the origin legs are ignored.
//
// Complexity: O(n²).
func Crossings(in *Instance, t Tour) (int, error) {
	if err := validateInstance(in); err != nil {
		return 0, err
	}
	if err := t.Validate(in.Dimension()); err != nil {
		return 0, err
	}

	var (
		nodes = in.nodes
		p     = t.Nodes
		count int
		i, j  int
	)
	for i = 0; i < len(p)-1; i++ {
		for j = i + 2; j < len(p)-1; j++ {
			if geom.SegmentsIntersect(nodes[p[i]], nodes[p[i+1]], nodes[p[j]], nodes[p[j+1]]) {
				count++
			}
		}
	}

	return count, nil
}
