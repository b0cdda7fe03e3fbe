package sparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multigrid/sparse"
)

// TestNewFromTriplets_Basic verifies assembly order, per-row sorting and Dims.
func TestNewFromTriplets_Basic(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, 3, []sparse.Triplet{
		{Row: 1, Col: 2, Val: 5},
		{Row: 0, Col: 1, Val: 2},
		{Row: 1, Col: 0, Val: 3},
		{Row: 0, Col: 0, Val: 1},
	})
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 4, m.NNZ())

	rc, rv := m.Row(0)
	require.Equal(t, []int{0, 1}, rc)
	require.Equal(t, []float64{1, 2}, rv)
	rc, rv = m.Row(1)
	require.Equal(t, []int{0, 2}, rc)
	require.Equal(t, []float64{3, 5}, rv)
}

// TestNewFromTriplets_Duplicates verifies that duplicate entries are summed.
func TestNewFromTriplets_Duplicates(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 0, Val: 2.5},
		{Row: 1, Col: 1, Val: -1},
		{Row: 0, Col: 0, Val: 0.5},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 4.0, m.At(0, 0))
	require.Equal(t, -1.0, m.At(1, 1))
	require.Equal(t, 0.0, m.At(0, 1))
}

// TestNewFromTriplets_Errors verifies input validation.
func TestNewFromTriplets_Errors(t *testing.T) {
	cases := []struct {
		name     string
		rows     int
		cols     int
		triplets []sparse.Triplet
		want     error
	}{
		{"NegativeRows", -1, 2, nil, sparse.ErrBadDimension},
		{"NegativeCols", 2, -1, nil, sparse.ErrBadDimension},
		{"RowOutOfRange", 2, 2, []sparse.Triplet{{Row: 2, Col: 0, Val: 1}}, sparse.ErrIndexOutOfRange},
		{"ColOutOfRange", 2, 2, []sparse.Triplet{{Row: 0, Col: 2, Val: 1}}, sparse.ErrIndexOutOfRange},
		{"NegativeIndex", 2, 2, []sparse.Triplet{{Row: -1, Col: 0, Val: 1}}, sparse.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewFromTriplets(tc.rows, tc.cols, tc.triplets)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewFromTriplets error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestMulVec checks y = Ax against a hand-computed product.
func TestMulVec(t *testing.T) {
	// A = [2 1 0; 0 3 0; 1 0 4]
	m, err := sparse.NewFromTriplets(3, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 1, Val: 3},
		{Row: 2, Col: 0, Val: 1}, {Row: 2, Col: 2, Val: 4},
	})
	require.NoError(t, err)

	x := []float64{1, 2, 3}
	y := make([]float64, 3)
	m.MulVec(y, x)
	require.Equal(t, []float64{4, 6, 13}, y)

	y = []float64{1, 1, 1}
	m.AddMulVec(y, x)
	require.Equal(t, []float64{5, 7, 14}, y)
}

// TestMulTransVec checks y = Aᵀx against the explicit transpose.
func TestMulTransVec(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: 3},
	})
	require.NoError(t, err)

	x := []float64{2, 5}
	got := make([]float64, 3)
	m.MulTransVec(got, x)

	want := make([]float64, 3)
	m.Transpose().MulVec(want, x)
	require.Equal(t, want, got)
	require.Equal(t, []float64{2, 15, 4}, got)
}

// TestMulVec_ShapePanics verifies the documented panic on shape misuse.
func TestMulVec_ShapePanics(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, 2, []sparse.Triplet{{Row: 0, Col: 0, Val: 1}})
	require.NoError(t, err)
	require.Panics(t, func() { m.MulVec(make([]float64, 2), make([]float64, 3)) })
	require.Panics(t, func() { m.MulTransVec(make([]float64, 3), make([]float64, 2)) })
}
