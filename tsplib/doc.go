// Package tsplib reads TSPLIB problem files into tsp.Instance values and
// writes/reads TOUR files.
//
// Supported problem header keys (case-insensitive, "KEY : VALUE"):
// NAME, TYPE (must be TSP), DIMENSION, EDGE_WEIGHT_TYPE. COMMENT and unknown
// keys are ignored. Coordinates follow NODE_COORD_SECTION as "<id> <x> <y>"
// lines until EOF or end of stream. Node ids in the file are not used: cities
// are numbered in reading order.
package tsplib
