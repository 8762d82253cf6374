package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Symmetric is a non-negative symmetric matrix with a zero diagonal.
// Only the upper triangle is meaningful in the gonum backing store; reads of
// (i,j) and (j,i) resolve to the same cell.
//
// The zero value is an empty 0×0 matrix.
type Symmetric struct {
	n   int
	sym *mat.SymDense // nil when n == 0 (gonum rejects zero-length matrices)
}

// NewSymmetric allocates an n×n zero matrix.
// Returns ErrBadShape for n < 0.
//
// Complexity: O(n²) zero-init.
func NewSymmetric(n int) (*Symmetric, error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	s := &Symmetric{n: n}
	if n > 0 {
		s.sym = mat.NewSymDense(n, nil)
	}

	return s, nil
}

// NewDistances builds the pairwise distance matrix for `size` points, asking
// dist(i, j) once per unordered pair i<j. The diagonal stays 0.
//
// Contract:
//   - dist must return finite, non-negative values (else ErrNaNInf / ErrNegativeWeight).
//
// Complexity: O(n²) calls to dist.
func NewDistances(size int, dist func(i, j int) float64) (*Symmetric, error) {
	s, err := NewSymmetric(size)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for j = 0; j < size; j++ {
		for i = j + 1; i < size; i++ {
			d = dist(i, j)
			if err = checkValue(d); err != nil {
				return nil, fmt.Errorf("distance (%d,%d): %w", i, j, err)
			}
			s.sym.SetSym(i, j, d)
		}
	}

	return s, nil
}

// Size returns the matrix order n.
func (s *Symmetric) Size() int { return s.n }

// At returns D[i][j] (== D[j][i]).
//
// Complexity: O(1).
func (s *Symmetric) At(i, j int) (float64, error) {
	if !s.inRange(i) || !s.inRange(j) {
		return 0, ErrOutOfRange
	}

	return s.sym.At(i, j), nil
}

// Row copies row i into dst (allocating when dst is too short) and returns it.
//
// Complexity: O(n).
func (s *Symmetric) Row(i int, dst []float64) ([]float64, error) {
	if !s.inRange(i) {
		return nil, ErrOutOfRange
	}
	if cap(dst) < s.n {
		dst = make([]float64, s.n)
	}
	dst = dst[:s.n]

	var j int
	for j = 0; j < s.n; j++ {
		dst[j] = s.sym.At(i, j)
	}

	return dst, nil
}

// String renders the upper triangle, one row per line, blanking the lower part
// the way distance tables are usually printed.
func (s *Symmetric) String() string {
	var (
		out  []byte
		x, y int
	)
	for y = 0; y < s.n; y++ {
		for x = 0; x < s.n; x++ {
			if x < y {
				out = append(out, "         "...)
				continue
			}
			out = fmt.Appendf(out, "% 8.2f ", s.sym.At(x, y))
		}
		out = append(out, '\n')
	}

	return string(out)
}

func (s *Symmetric) inRange(i int) bool { return i >= 0 && i < s.n }

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeWeight
	}

	return nil
}
