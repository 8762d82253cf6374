// Package export writes instances and solver results in the semicolon
// separated report format, and reads tour rows back.
//
// Layout:
//
//	Nom de l'instance; <name>
//	Nombre de villes; <n>
//	Type; <type>
//	Point; Abscisse; Ordonnée;
//	0;     0;     0              (omitted with NoZero)
//	1; <x>; <y>
//	…
//
//	Méthode; Longueur; Temps CPU (s); Tour
//	<method>; <length>; <seconds>; [0, 3, 1, 2]
//
// Tour ids are 1-indexed; the leading 0 stands for the origin and is omitted
// with NoZero.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/salesman/tsp"
)

// TourHeader is the header line preceding every tour row.
const TourHeader = "Méthode; Longueur; Temps CPU (s); Tour"

// Writer formats instances and tours onto W.
type Writer struct {
	W      io.Writer
	NoZero bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, noZero bool) *Writer {
	return &Writer{W: w, NoZero: noZero}
}

// WriteInstance writes the instance block.
func (w *Writer) WriteInstance(in *tsp.Instance) error {
	if in == nil {
		return tsp.ErrNilInstance
	}
	bw := bufio.NewWriter(w.W)
	fmt.Fprintf(bw, "Nom de l'instance; %s\n", in.Name)
	fmt.Fprintf(bw, "Nombre de villes; %d\n", in.Dimension())
	fmt.Fprintf(bw, "Type; %s\n", in.Type)
	fmt.Fprintln(bw, "Point; Abscisse; Ordonnée;")
	if !w.NoZero {
		fmt.Fprintln(bw, "0;     0;     0")
	}
	for i, n := range in.Nodes() {
		fmt.Fprintf(bw, "%d; %3.2f; %3.2f\n", i+1, n.X, n.Y)
	}

	return errors.WithStack(bw.Flush())
}

// WriteTour writes a blank separator line, the tour header and one row.
func (w *Writer) WriteTour(t tsp.Tour) error {
	bw := bufio.NewWriter(w.W)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, TourHeader)
	fmt.Fprintf(bw, "%s; %f; %f; %s\n", t.Method, t.Length, t.Elapsed.Seconds(), FormatNodes(t.Nodes, w.NoZero))

	return errors.WithStack(bw.Flush())
}

// FormatNodes renders ids 1-indexed in brackets, prefixed by the origin 0
// unless noZero.
func FormatNodes(nodes []int, noZero bool) string {
	buf := make([]byte, 0, 2+4*len(nodes))
	buf = append(buf, '[')
	if !noZero {
		buf = append(buf, '0')
	}
	for i, id := range nodes {
		if i > 0 || !noZero {
			buf = append(buf, ", "...)
		}
		buf = fmt.Appendf(buf, "%d", id+1)
	}

	return string(append(buf, ']'))
}
