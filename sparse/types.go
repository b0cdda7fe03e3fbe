// Package sparse defines the CSR matrix type, the triplet assembly record and
// the sentinel errors shared by all operations in this package.
package sparse

import "errors"

// Sentinel errors for sparse matrix construction and operations.
var (
	// ErrBadDimension indicates a negative number of rows or columns.
	ErrBadDimension = errors.New("sparse: matrix dimensions must be non-negative")
	// ErrIndexOutOfRange indicates a triplet whose row or column index falls
	// outside the declared matrix dimensions.
	ErrIndexOutOfRange = errors.New("sparse: triplet index out of range")
	// ErrDimensionMismatch indicates operands whose shapes are incompatible
	// with the requested operation.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)

// Triplet is one (row, column, value) entry of a matrix under assembly.
// Duplicate (Row, Col) pairs are summed by NewFromTriplets.
type Triplet struct {
	Row, Col int
	Val      float64
}

// CSR is an immutable sparse matrix in compressed sparse row form.
//
// rowStart has length rows+1; the entries of row i occupy the half-open range
// [rowStart[i], rowStart[i+1]) of colIdx and values, with strictly increasing
// column indices inside each row. A zero-value CSR is an empty 0×0 matrix.
type CSR struct {
	rows, cols int
	rowStart   []int
	colIdx     []int
	values     []float64
}

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.colIdx) }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *CSR) IsSquare() bool { return m.rows == m.cols }

// Row returns the column indices and values of row i. Both slices alias the
// internal storage and must be treated as read-only.
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	lo, hi := m.rowStart[i], m.rowStart[i+1]
	return m.colIdx[lo:hi], m.values[lo:hi]
}

// At returns the entry at (i, j), or zero if it is not stored. Intended for
// tests and diagnostics; it scans the row linearly.
func (m *CSR) At(i, j int) float64 {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
	}
	return 0
}
