package amg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildProlongation(t *testing.T) {
	// Incoming connections: node 1 interpolates from nodes 0 and 2, node 3
	// from node 2 alone.
	transposed := buildList([][]int{
		{},
		{0, 2},
		{},
		{2},
	})
	classification := []grade{gradeCoarse, gradeFine, gradeCoarse, gradeFine}

	p, err := buildProlongation(transposed, classification)
	require.NoError(t, err)

	rows, cols := p.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)

	require.Equal(t, 1.0, p.At(0, 0))
	require.Equal(t, 0.5, p.At(1, 0))
	require.Equal(t, 0.5, p.At(1, 1))
	require.Equal(t, 1.0, p.At(2, 1))
	require.Equal(t, 1.0, p.At(3, 1))

	// Every row distributes a total weight of one.
	for i := 0; i < rows; i++ {
		_, vals := p.Row(i)
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-15)
	}
}

func TestBuildProlongation_SkipsFineSources(t *testing.T) {
	// Fine incoming neighbors contribute nothing to the weights: node 1 sees
	// both node 0 (coarse) and node 2 (fine) but interpolates from 0 alone.
	transposed := buildList([][]int{
		{},
		{0, 2},
		{0},
	})
	classification := []grade{gradeCoarse, gradeFine, gradeFine}

	p, err := buildProlongation(transposed, classification)
	require.NoError(t, err)

	require.Equal(t, 1.0, p.At(1, 0))
}

func TestBuildProlongation_NoSource(t *testing.T) {
	transposed := buildList([][]int{
		{},
		{},
	})
	classification := []grade{gradeCoarse, gradeFine}

	_, err := buildProlongation(transposed, classification)
	require.ErrorIs(t, err, ErrNoInterpolationSource)
}
