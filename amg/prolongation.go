package amg

import (
	"fmt"

	"github.com/katalvlaran/multigrid/sparse"
)

// buildProlongation assembles the sparse interpolation operator P from a
// tuned classification: one row per fine-level node, one column per coarse
// node, with coarse nodes renumbered densely in their original relative
// order.
//
// A coarse row i carries the single entry P[i, idx(i)] = 1. A fine row i
// averages its coarse neighbors (via the transposed connections) with equal
// weights 1/|C|, so every row sums to exactly 1. A fine row with no coarse
// neighbor violates the tuning contract and yields ErrNoInterpolationSource.
func buildProlongation(transposed *connectionList, classification []grade) (*sparse.CSR, error) {
	n := len(classification)

	coarseIndex := make([]int, n)
	numCoarse := 0
	for i, g := range classification {
		if g == gradeCoarse {
			coarseIndex[i] = numCoarse
			numCoarse++
		} else {
			coarseIndex[i] = n // out of range; only coarse entries are read
		}
	}

	triplets := make([]sparse.Triplet, 0, n)
	for i, g := range classification {
		if g == gradeCoarse {
			triplets = append(triplets, sparse.Triplet{Row: i, Col: coarseIndex[i], Val: 1})
			continue
		}
		count := 0
		for _, j := range transposed.connectedTo(i) {
			if classification[j] == gradeCoarse {
				count++
			}
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: node %d", ErrNoInterpolationSource, i)
		}
		weight := 1 / float64(count)
		for _, j := range transposed.connectedTo(i) {
			if classification[j] == gradeCoarse {
				triplets = append(triplets, sparse.Triplet{Row: i, Col: coarseIndex[j], Val: weight})
			}
		}
	}

	return sparse.NewFromTriplets(n, numCoarse, triplets)
}
