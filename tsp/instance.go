package tsp

import (
	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
)

// TypeTSP is the only problem type accepted by loaders.
const TypeTSP = "TSP"

// Instance is a problem definition: an ordered node set plus metadata and a
// lazily built distance cache.
//
// Invariants:
//   - While the cache is present, its size equals Dimension().
//   - AddNode drops the cache; BuildDistances must be called again before
//     cached reads (Leg) succeed.
type Instance struct {
	Name           string
	Type           string
	EdgeWeightType string

	nodes []geom.Node
	dist  *matrix.Symmetric
}

// NewInstance returns an instance named name holding a copy of nodes.
// Call it without nodes for the empty instance loaders fill via AddNode.
func NewInstance(name string, nodes ...geom.Node) *Instance {
	in := &Instance{Name: name, Type: TypeTSP}
	if len(nodes) > 0 {
		in.nodes = make([]geom.Node, len(nodes))
		copy(in.nodes, nodes)
	}

	return in
}

// AddNode appends a city; its id is the previous Dimension().
// Any existing distance cache is dropped.
func (in *Instance) AddNode(n geom.Node) int {
	in.nodes = append(in.nodes, n)
	in.dist = nil

	return len(in.nodes) - 1
}

// Dimension returns the number of cities.
func (in *Instance) Dimension() int { return len(in.nodes) }

// Node returns city i.
func (in *Instance) Node(i int) (geom.Node, error) {
	if i < 0 || i >= len(in.nodes) {
		return geom.Node{}, ErrIndexOutOfRange
	}

	return in.nodes[i], nil
}

// Nodes returns a copy of the node sequence.
func (in *Instance) Nodes() []geom.Node {
	out := make([]geom.Node, len(in.nodes))
	copy(out, in.nodes)

	return out
}

// BuildDistances (re)builds the symmetric distance cache.
//
// Complexity: O(n²) time and memory.
func (in *Instance) BuildDistances() error {
	d, err := matrix.NewDistances(len(in.nodes), func(i, j int) float64 {
		return geom.Distance(in.nodes[i], in.nodes[j])
	})
	if err != nil {
		return err
	}
	in.dist = d

	return nil
}

// HasDistances reports whether the cache is built and current.
func (in *Instance) HasDistances() bool {
	return in.dist != nil && in.dist.Size() == len(in.nodes)
}

// Distances returns the cache, or nil when it is not built.
func (in *Instance) Distances() *matrix.Symmetric {
	if !in.HasDistances() {
		return nil
	}

	return in.dist
}

// Leg returns the cached distance between cities i and j.
// Returns ErrNoDistances before BuildDistances, ErrIndexOutOfRange on bad ids.
//
// Complexity: O(1).
func (in *Instance) Leg(i, j int) (float64, error) {
	if !in.HasDistances() {
		return 0, ErrNoDistances
	}
	if i < 0 || i >= len(in.nodes) || j < 0 || j >= len(in.nodes) {
		return 0, ErrIndexOutOfRange
	}

	return in.dist.At(i, j)
}

// ensureDistances builds the cache when it is absent or stale.
func (in *Instance) ensureDistances() error {
	if in.HasDistances() {
		return nil
	}

	return in.BuildDistances()
}

// legFunc returns an unchecked distance accessor for hot loops. It reads the
// cache when useCache is set (the caller guarantees it is built), coordinates
// otherwise. Callers validate ids beforehand.
func (in *Instance) legFunc(useCache bool) func(i, j int) float64 {
	if useCache {
		d := in.dist
		return func(i, j int) float64 {
			v, _ := d.At(i, j)
			return v
		}
	}
	nodes := in.nodes

	return func(i, j int) float64 { return geom.Distance(nodes[i], nodes[j]) }
}
