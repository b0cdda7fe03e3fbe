package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multigrid/sparse"
)

// asDense expands a CSR into a gonum dense matrix for comparison.
func asDense(m *sparse.CSR) *mat.Dense {
	rows, cols := m.Dims()
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}

func mustCSR(t *testing.T, rows, cols int, ts []sparse.Triplet) *sparse.CSR {
	t.Helper()
	m, err := sparse.NewFromTriplets(rows, cols, ts)
	require.NoError(t, err)
	return m
}

// TestTranspose_Roundtrip checks (Mᵀ)ᵀ == M entry by entry.
func TestTranspose_Roundtrip(t *testing.T) {
	m := mustCSR(t, 3, 2, []sparse.Triplet{
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 2},
		{Row: 2, Col: 0, Val: 3},
		{Row: 2, Col: 1, Val: 4},
	})
	tt := m.Transpose().Transpose()
	require.Equal(t, asDense(m), asDense(tt))

	tr := m.Transpose()
	rows, cols := tr.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 2.0, tr.At(0, 1))
	require.Equal(t, 4.0, tr.At(1, 2))
}

// TestMul compares the sparse product against the gonum dense product.
func TestMul(t *testing.T) {
	a := mustCSR(t, 2, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: -1},
	})
	b := mustCSR(t, 3, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 3},
		{Row: 1, Col: 1, Val: 4},
		{Row: 2, Col: 0, Val: 5}, {Row: 2, Col: 1, Val: 6},
	})

	got, err := a.Mul(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(asDense(a), asDense(b))
	require.Equal(t, &want, asDense(got))
}

// TestMul_Mismatch verifies the error on incompatible inner dimensions.
func TestMul_Mismatch(t *testing.T) {
	a := mustCSR(t, 2, 3, nil)
	b := mustCSR(t, 2, 2, nil)
	_, err := a.Mul(b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestGalerkin checks PᵀAP against the dense triple product.
func TestGalerkin(t *testing.T) {
	a := mustCSR(t, 3, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 1, Val: -1},
		{Row: 1, Col: 0, Val: -1}, {Row: 1, Col: 1, Val: 2}, {Row: 1, Col: 2, Val: -1},
		{Row: 2, Col: 1, Val: -1}, {Row: 2, Col: 2, Val: 2},
	})
	p := mustCSR(t, 3, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 0, Val: 0.5}, {Row: 1, Col: 1, Val: 0.5},
		{Row: 2, Col: 1, Val: 1},
	})

	got, err := sparse.Galerkin(p, a)
	require.NoError(t, err)
	rows, cols := got.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)

	var ap, want mat.Dense
	ap.Mul(asDense(a), asDense(p))
	want.Mul(asDense(p).T(), &ap)
	require.InDeltaf(t, want.At(0, 0), got.At(0, 0), 1e-15, "entry (0,0)")
	require.InDeltaf(t, want.At(0, 1), got.At(0, 1), 1e-15, "entry (0,1)")
	require.InDeltaf(t, want.At(1, 0), got.At(1, 0), 1e-15, "entry (1,0)")
	require.InDeltaf(t, want.At(1, 1), got.At(1, 1), 1e-15, "entry (1,1)")
}

// TestToSym verifies densification and the non-square rejection.
func TestToSym(t *testing.T) {
	a := mustCSR(t, 2, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 4}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 3},
	})
	s, err := a.ToSym()
	require.NoError(t, err)
	require.Equal(t, 4.0, s.At(0, 0))
	require.Equal(t, 1.0, s.At(0, 1))
	require.Equal(t, 1.0, s.At(1, 0))
	require.Equal(t, 3.0, s.At(1, 1))

	rect := mustCSR(t, 2, 3, nil)
	_, err = rect.ToSym()
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
