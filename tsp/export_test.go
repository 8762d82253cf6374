package tsp

// Internal hooks for tsp_test.
var (
	PickParents      = pickParents
	SelectionWeights = selectionWeights
)
