package sparse

import (
	"fmt"
	"sort"
)

// NewFromTriplets assembles a rows×cols CSR matrix from the given triplets.
// Triplets may appear in any order; duplicate (row, col) pairs are summed,
// matching the usual triplet-assembly semantics of sparse libraries.
//
// Returns ErrBadDimension for negative dimensions and ErrIndexOutOfRange for a
// triplet outside the declared shape.
//
// Complexity: O(nnz log nnz) time, O(nnz) space.
func NewFromTriplets(rows, cols int, triplets []Triplet) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimension, rows, cols)
	}
	for _, t := range triplets {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, t.Row, t.Col, rows, cols)
		}
	}

	// 1) Bucket triplets by row with a counting sort.
	count := make([]int, rows+1)
	for _, t := range triplets {
		count[t.Row+1]++
	}
	for i := 0; i < rows; i++ {
		count[i+1] += count[i]
	}
	bucketCol := make([]int, len(triplets))
	bucketVal := make([]float64, len(triplets))
	next := append([]int(nil), count...)
	for _, t := range triplets {
		p := next[t.Row]
		bucketCol[p] = t.Col
		bucketVal[p] = t.Val
		next[t.Row]++
	}

	// 2) Sort each row by column and merge duplicates while emitting.
	m := &CSR{
		rows:     rows,
		cols:     cols,
		rowStart: make([]int, 1, rows+1),
		colIdx:   make([]int, 0, len(triplets)),
		values:   make([]float64, 0, len(triplets)),
	}
	for i := 0; i < rows; i++ {
		lo, hi := count[i], count[i+1]
		rc, rv := bucketCol[lo:hi], bucketVal[lo:hi]
		sort.Sort(&rowSorter{cols: rc, vals: rv})
		for k := 0; k < len(rc); k++ {
			if n := len(m.colIdx); n > m.rowStart[i] && m.colIdx[n-1] == rc[k] {
				m.values[n-1] += rv[k]
				continue
			}
			m.colIdx = append(m.colIdx, rc[k])
			m.values = append(m.values, rv[k])
		}
		m.rowStart = append(m.rowStart, len(m.colIdx))
	}
	return m, nil
}

// rowSorter sorts one row's column/value pair in lockstep by column index.
type rowSorter struct {
	cols []int
	vals []float64
}

func (s *rowSorter) Len() int           { return len(s.cols) }
func (s *rowSorter) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s *rowSorter) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// MulVec computes dst = M·x. It panics with ErrDimensionMismatch if len(x)
// differs from the column count or len(dst) from the row count.
//
// Complexity: O(nnz).
func (m *CSR) MulVec(dst, x []float64) {
	if len(x) != m.cols || len(dst) != m.rows {
		panic(ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			sum += m.values[k] * x[m.colIdx[k]]
		}
		dst[i] = sum
	}
}

// AddMulVec computes dst += M·x, the prolong-and-correct update of a V-cycle.
// Shape requirements match MulVec.
func (m *CSR) AddMulVec(dst, x []float64) {
	if len(x) != m.cols || len(dst) != m.rows {
		panic(ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			sum += m.values[k] * x[m.colIdx[k]]
		}
		dst[i] += sum
	}
}

// MulTransVec computes dst = Mᵀ·x without materializing the transpose; it is
// the restriction operator of a V-cycle. It panics with ErrDimensionMismatch
// if len(x) differs from the row count or len(dst) from the column count.
//
// Complexity: O(nnz).
func (m *CSR) MulTransVec(dst, x []float64) {
	if len(x) != m.rows || len(dst) != m.cols {
		panic(ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			dst[m.colIdx[k]] += m.values[k] * xi
		}
	}
}
