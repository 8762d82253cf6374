package tsplib

import "github.com/pkg/errors"

var (
	// ErrUnsupportedType is returned for a TYPE other than TSP (or TOUR for tour files).
	ErrUnsupportedType = errors.New("tsplib: unsupported problem type")

	// ErrDimensionMismatch is returned when the node count differs from DIMENSION.
	ErrDimensionMismatch = errors.New("tsplib: node count differs from DIMENSION")

	// ErrMalformedLine is returned for a header or data line that cannot be parsed.
	ErrMalformedLine = errors.New("tsplib: malformed line")
)
