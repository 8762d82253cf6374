package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrMalformedRow is returned for a tour row that cannot be parsed.
var ErrMalformedRow = errors.New("export: malformed tour row")

// Row is one parsed tour row. Nodes are 0-based city ids.
type Row struct {
	Method  string
	Length  float64
	Elapsed time.Duration
	Nodes   []int
}

// ParseNodes parses a bracketed id list written by FormatNodes back to
// 0-based ids. The origin entry 0 is dropped wherever it appears.
func ParseNodes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, errors.Wrapf(ErrMalformedRow, "node list %q", s)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	nodes := []int{}
	if body == "" {
		return nodes, nil
	}
	for _, f := range strings.Split(body, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || id < 0 {
			return nil, errors.Wrapf(ErrMalformedRow, "node id %q", f)
		}
		if id == 0 {
			continue
		}
		nodes = append(nodes, id-1)
	}

	return nodes, nil
}

// ParseTourRow parses "<method>; <length>; <seconds>; [ids]".
func ParseTourRow(line string) (Row, error) {
	rec, err := newCSVReader(strings.NewReader(line)).Read()
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedRow, "%q: %v", line, err)
	}

	return rowFromRecord(rec)
}

// ReadTours returns every tour row of an exported report, in order.
func ReadTours(r io.Reader) ([]Row, error) {
	var (
		cr      = newCSVReader(r)
		rows    []Row
		pending bool
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if pending {
			row, err := rowFromRecord(rec)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			pending = false
			continue
		}
		pending = len(rec) > 0 && rec[0] == "Méthode"
	}

	return rows, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return cr
}

func rowFromRecord(rec []string) (Row, error) {
	if len(rec) != 4 {
		return Row{}, errors.Wrapf(ErrMalformedRow, "want 4 fields, got %d", len(rec))
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedRow, "length %q", rec[1])
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return Row{}, errors.Wrapf(ErrMalformedRow, "time %q", rec[2])
	}
	nodes, err := ParseNodes(rec[3])
	if err != nil {
		return Row{}, err
	}

	return Row{
		Method:  strings.TrimSpace(rec[0]),
		Length:  length,
		Elapsed: time.Duration(secs * float64(time.Second)),
		Nodes:   nodes,
	}, nil
}
