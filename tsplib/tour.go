package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/salesman/tsp"
)

// TypeTour is the TYPE value of tour files.
const TypeTour = "TOUR"

// WriteTour writes t as a TSPLIB tour: 1-indexed ids terminated by -1.
func WriteTour(w io.Writer, t tsp.Tour) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s : %s\n", keyName, t.Name)
	fmt.Fprintf(bw, "%s : %s\n", keyType, TypeTour)
	fmt.Fprintf(bw, "COMMENT : %s, length %f\n", t.Method, t.Length)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(t.Nodes))
	fmt.Fprintln(bw, sectionTour)
	for _, id := range t.Nodes {
		fmt.Fprintln(bw, id+1)
	}
	fmt.Fprintln(bw, -1)
	fmt.Fprintln(bw, markerEOF)

	return errors.WithStack(bw.Flush())
}

// WriteTourFile creates path and writes t into it.
func WriteTourFile(path string, t tsp.Tour) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err = WriteTour(f, t); err != nil {
		f.Close()
		return err
	}

	return errors.WithStack(f.Close())
}

// ReadTour parses a tour written by WriteTour (or any TSPLIB TOUR file) and
// returns 0-based ids. Name is taken from NAME; other metadata is ignored.
func ReadTour(r io.Reader) (tsp.Tour, error) {
	var (
		t        tsp.Tour
		sc       = bufio.NewScanner(r)
		expected = -1
		lineNo   int
		inTour   bool
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
		if inTour {
			for _, f := range strings.Fields(line) {
				id, err := strconv.Atoi(f)
				if err != nil || id == 0 || id < -1 {
					return tsp.Tour{}, errors.Wrapf(ErrMalformedLine, "line %d: %q", lineNo, f)
				}
				if id == -1 {
					inTour = false
					break
				}
				t.Nodes = append(t.Nodes, id-1)
			}
			continue
		}
		if strings.HasPrefix(line, sectionTour) {
			inTour = true
			continue
		}

		key, value, ok := splitHeader(line)
		if !ok {
			continue
		}
		switch key {
		case keyName:
			t.Name = value
		case keyType:
			if value != TypeTour {
				return tsp.Tour{}, errors.Wrapf(ErrUnsupportedType, "TYPE %q", value)
			}
		case keyDimension:
			d, err := strconv.Atoi(value)
			if err != nil || d < 0 {
				return tsp.Tour{}, errors.Wrapf(ErrMalformedLine, "line %d: DIMENSION %q", lineNo, value)
			}
			expected = d
		}
	}
	if err := sc.Err(); err != nil {
		return tsp.Tour{}, errors.WithStack(err)
	}
	if expected >= 0 && len(t.Nodes) != expected {
		return tsp.Tour{}, errors.Wrapf(ErrDimensionMismatch, "declared %d, read %d", expected, len(t.Nodes))
	}
	if t.Nodes == nil {
		t.Nodes = []int{}
	}

	return t, nil
}
