package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Transpose returns Mᵀ as a new CSR matrix using a counting sort over the
// stored entries, so column order inside each transposed row is preserved
// automatically.
//
// Complexity: O(rows + cols + nnz).
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		rows:     m.cols,
		cols:     m.rows,
		rowStart: make([]int, m.cols+1),
		colIdx:   make([]int, len(m.colIdx)),
		values:   make([]float64, len(m.values)),
	}
	for _, j := range m.colIdx {
		t.rowStart[j+1]++
	}
	for j := 0; j < m.cols; j++ {
		t.rowStart[j+1] += t.rowStart[j]
	}
	next := append([]int(nil), t.rowStart...)
	for i := 0; i < m.rows; i++ {
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			j := m.colIdx[k]
			p := next[j]
			t.colIdx[p] = i
			t.values[p] = m.values[k]
			next[j]++
		}
	}
	return t
}

// Mul returns the sparse product M·B. It returns ErrDimensionMismatch when the
// inner dimensions differ. Each result row is gathered through a dense
// accumulator and emitted with sorted column indices.
//
// Complexity: O(Σ_i nnz(M_i)·nnz(B_row)) time, O(cols(B)) scratch space.
func (m *CSR) Mul(b *CSR) (*CSR, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	out := &CSR{
		rows:     m.rows,
		cols:     b.cols,
		rowStart: make([]int, 1, m.rows+1),
	}
	acc := make([]float64, b.cols)
	marked := make([]bool, b.cols)
	touched := make([]int, 0, b.cols)
	for i := 0; i < m.rows; i++ {
		touched = touched[:0]
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			j := m.colIdx[k]
			v := m.values[k]
			for kb := b.rowStart[j]; kb < b.rowStart[j+1]; kb++ {
				c := b.colIdx[kb]
				if !marked[c] {
					marked[c] = true
					touched = append(touched, c)
					acc[c] = 0
				}
				acc[c] += v * b.values[kb]
			}
		}
		sort.Ints(touched)
		for _, c := range touched {
			out.colIdx = append(out.colIdx, c)
			out.values = append(out.values, acc[c])
			marked[c] = false
		}
		out.rowStart = append(out.rowStart, len(out.colIdx))
	}
	return out, nil
}

// Galerkin computes the coarse-grid operator Pᵀ·A·P from a prolongation matrix
// p and a fine-grid operator a. This is the standard Galerkin triple product
// of algebraic multigrid. Dimension mismatches surface as
// ErrDimensionMismatch from the underlying products.
func Galerkin(p, a *CSR) (*CSR, error) {
	ap, err := a.Mul(p)
	if err != nil {
		return nil, err
	}
	return p.Transpose().Mul(ap)
}

// ToSym densifies a square matrix into a gonum *mat.SymDense, reading the
// upper triangle of the stored entries. It returns ErrDimensionMismatch for a
// non-square receiver. Intended for the coarsest multigrid level, which is
// factorized directly.
func (m *CSR) ToSym() (*mat.SymDense, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d is not square", ErrDimensionMismatch, m.rows, m.cols)
	}
	s := mat.NewSymDense(m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			if j := m.colIdx[k]; j >= i {
				s.SetSym(i, j, m.values[k])
			}
		}
	}
	return s, nil
}
