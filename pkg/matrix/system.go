package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Options configures the underlying sparse solver. It mirrors the literal
// sparse.Configuration the teacher repository builds inline in
// matrix.NewMatrix, exported here since this module is a library rather
// than a leaf program.
type Options struct {
	Expandable     bool
	TiesMultiplier int
	PrinterWidth   int
}

// DefaultOptions returns the configuration the teacher repository hardcodes
// for its complex (AC analysis) matrices.
func DefaultOptions() Options {
	return Options{
		Expandable:     true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}
}

// System is a sparse complex linear system LHS*X = RHS, built by repeated
// additive stamps at (row, col) / (row) coordinates and solved once via a
// sparse direct LU factorisation. Dimension and entity offsets are owned by
// the caller (pkg/network); System only ever sees 1-based row/column
// indices up to Size.
type System struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	rhsImag  []float64
	solution []float64
	solImag  []float64
	config   *sparse.Configuration
}

var _ Stamper = (*System)(nil)

// New creates a System of the given dimension (spec.md §4.2: n = 3(Np+Nq+Nn)).
func New(size int, opts Options) (*System, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: false,
		Expandable:              opts.Expandable,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          opts.TiesMultiplier,
		PrinterWidth:            opts.PrinterWidth,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("matrix: create size %d: %w", size, err)
	}

	vectorSize := 2 * (size + 1) // real/imag interleaved, 1-based indexing

	return &System{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, vectorSize),
		rhsImag:  make([]float64, 1),
		solution: make([]float64, vectorSize),
		solImag:  make([]float64, 1),
		config:   config,
	}, nil
}

// AddElement accumulates value into LHS[i][j]. Duplicate stamps at the same
// coordinate are summed, matching the additive semantics spec.md §5 requires
// of the coordinate-list to CSC conversion.
func (s *System) AddElement(i, j int, value complex128) {
	if i <= 0 || j <= 0 || i > s.Size || j > s.Size {
		panic(fmt.Sprintf("matrix: index out of bounds (i=%d, j=%d, size=%d)", i, j, s.Size))
	}
	element := s.matrix.GetElement(int64(i), int64(j))
	element.Real += real(value)
	element.Imag += imag(value)
}

// AddRHS accumulates value into RHS[i].
func (s *System) AddRHS(i int, value complex128) {
	if i <= 0 || i > s.Size {
		panic(fmt.Sprintf("matrix: RHS index out of bounds (i=%d, size=%d)", i, s.Size))
	}
	s.rhs[2*i] += real(value)
	s.rhs[2*i+1] += imag(value)
}

// Clear zeroes the matrix and RHS in place, releasing no memory, so the
// System can be reassembled for a new fault scenario without reallocation.
func (s *System) Clear() {
	s.matrix.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
}

// Solve factorises LHS and solves for X, returning it 1-indexed (X[0] is
// unused, matching the sparse library's convention).
func (s *System) Solve() ([]complex128, error) {
	if err := s.matrix.Factor(); err != nil {
		return nil, fmt.Errorf("matrix: factorization failed: %w", err)
	}

	var err error
	s.solution, s.solImag, err = s.matrix.SolveComplex(s.rhs, s.rhsImag)
	if err != nil {
		return nil, fmt.Errorf("matrix: solve failed: %w", err)
	}

	x := make([]complex128, s.Size+1)
	for i := 1; i <= s.Size; i++ {
		x[i] = complex(s.solution[i], s.solution[i+s.Size])
	}
	return x, nil
}

// Destroy releases the sparse factorisation workspace. Safe to call once,
// after which the System must not be used again.
func (s *System) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
		s.matrix = nil
	}
}
