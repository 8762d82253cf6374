package tsplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	keyName           = "NAME"
	keyType           = "TYPE"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"

	sectionNodeCoord = "NODE_COORD_SECTION"
	sectionTour      = "TOUR_SECTION"
	markerEOF        = "EOF"

	// EdgeWeightEuclidean is the only edge weight type the solvers model.
	EdgeWeightEuclidean = "EUC_2D"
)

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (*tsp.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	in, err := Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", path)
	}

	return in, nil
}

// Read decodes a TSPLIB problem. A file without DIMENSION must have no nodes.
func Read(r io.Reader) (*tsp.Instance, error) {
	var (
		in       = tsp.NewInstance("")
		sc       = bufio.NewScanner(r)
		expected int
		lineNo   int
		inCoords bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, markerEOF) {
			break
		}
		if inCoords {
			n, err := parseNode(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			in.AddNode(n)
			continue
		}
		if strings.HasPrefix(line, sectionNodeCoord) {
			inCoords = true
			continue
		}

		key, value, ok := splitHeader(line)
		if !ok {
			continue
		}
		switch key {
		case keyName:
			in.Name = value
		case keyType:
			if value != tsp.TypeTSP {
				return nil, errors.Wrapf(ErrUnsupportedType, "TYPE %q", value)
			}
			in.Type = value
		case keyDimension:
			d, err := strconv.Atoi(value)
			if err != nil || d < 0 {
				return nil, errors.Wrapf(ErrMalformedLine, "line %d: DIMENSION %q", lineNo, value)
			}
			expected = d
		case keyEdgeWeightType:
			in.EdgeWeightType = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if in.Dimension() != expected {
		return nil, errors.Wrapf(ErrDimensionMismatch, "declared %d, read %d", expected, in.Dimension())
	}

	return in, nil
}

// splitHeader parses "KEY : VALUE"; the key is upper-cased.
func splitHeader(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	key = strings.ToUpper(strings.TrimSpace(k))
	value = strings.TrimSpace(v)
	if key == "" || value == "" {
		return "", "", false
	}

	return key, value, true
}

// parseNode parses "<id> <x> <y>"; the id is checked but discarded.
func parseNode(line string) (geom.Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return geom.Node{}, errors.Wrapf(ErrMalformedLine, "%q", line)
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return geom.Node{}, errors.Wrapf(ErrMalformedLine, "node id %q", fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Node{}, errors.Wrapf(ErrMalformedLine, "x %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.Node{}, errors.Wrapf(ErrMalformedLine, "y %q", fields[2])
	}

	return geom.Node{X: x, Y: y}, nil
}
