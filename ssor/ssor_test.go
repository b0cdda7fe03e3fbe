package ssor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multigrid/gridlap"
	"github.com/katalvlaran/multigrid/sparse"
	"github.com/katalvlaran/multigrid/ssor"
)

// laplacianProblem builds the 3×3 grid Laplacian with the polynomial solution
// u(x, y) = x² + y², mirroring the canonical smoother test problem.
func laplacianProblem(t *testing.T) (a *sparse.CSR, rhs, trueSol []float64) {
	t.Helper()
	const gridSize = 3
	const gridWidth = 0.1
	g, err := gridlap.New(gridSize, gridSize, gridWidth)
	require.NoError(t, err)

	trueSol = make([]float64, g.Size())
	for i := 0; i < gridSize; i++ {
		x := gridWidth * float64(i)
		for j := 0; j < gridSize; j++ {
			y := gridWidth * float64(j)
			trueSol[g.Index(i, j)] = x*x + y*y
		}
	}
	rhs = make([]float64, g.Size())
	g.Mat().MulVec(rhs, trueSol)
	return g.Mat(), rhs, trueSol
}

// residualRate computes ‖Ax−b‖/‖b‖ directly for verification.
func residualRate(a *sparse.CSR, x, b []float64) float64 {
	r := make([]float64, len(b))
	a.MulVec(r, x)
	floats.Sub(r, b)
	return floats.Norm(r, 2) / floats.Norm(b, 2)
}

// TestSolver_OneSweepReducesResidual verifies that a single symmetric sweep
// strictly reduces the residual, in both execution modes.
func TestSolver_OneSweepReducesResidual(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		name := "Sequential"
		if parallel {
			name = "Parallel"
		}
		t.Run(name, func(t *testing.T) {
			a, rhs, _ := laplacianProblem(t)
			s := ssor.New(
				ssor.WithMaxIterations(1),
				ssor.WithParallel(parallel),
				ssor.WithWorkers(3),
			)
			require.NoError(t, s.Compute(a))

			sol, err := s.Solve(rhs)
			require.NoError(t, err)
			require.Equal(t, 1, s.Iterations())
			require.Less(t, residualRate(a, sol, rhs), 1.0)
		})
	}
}

// TestSolver_SolveToTolerance verifies full convergence in both modes.
func TestSolver_SolveToTolerance(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		name := "Sequential"
		if parallel {
			name = "Parallel"
		}
		t.Run(name, func(t *testing.T) {
			a, rhs, trueSol := laplacianProblem(t)
			s := ssor.New(ssor.WithParallel(parallel), ssor.WithWorkers(3))
			require.NoError(t, s.Compute(a))

			sol, err := s.Solve(rhs)
			require.NoError(t, err)
			require.Greater(t, s.Iterations(), 1)
			require.Less(t, s.ResidualRate(), 1e-10)
			for i := range sol {
				require.InDelta(t, trueSol[i], sol[i], 1e-8)
			}
		})
	}
}

// TestSolver_ExactGuessStopsImmediately checks that seeding the solve with the
// exact solution is detected within the first sweep.
func TestSolver_ExactGuessStopsImmediately(t *testing.T) {
	a, rhs, trueSol := laplacianProblem(t)
	s := ssor.New()
	require.NoError(t, s.Compute(a))

	sol := append([]float64(nil), trueSol...)
	require.NoError(t, s.SolveInPlace(rhs, sol))
	require.Equal(t, 1, s.Iterations())
}

// TestSolver_ParallelDeterminism runs the same parallel solve twice and
// requires bit-identical results: the static block partition has no
// scheduling-dependent arithmetic.
func TestSolver_ParallelDeterminism(t *testing.T) {
	a, rhs, _ := laplacianProblem(t)
	s := ssor.New(ssor.WithParallel(true), ssor.WithWorkers(3))
	require.NoError(t, s.Compute(a))

	first, err := s.Solve(rhs)
	require.NoError(t, err)
	second, err := s.Solve(rhs)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestSolver_Relaxation verifies that over-relaxation still converges on the
// model problem.
func TestSolver_Relaxation(t *testing.T) {
	a, rhs, trueSol := laplacianProblem(t)
	s := ssor.New(ssor.WithRelaxation(1.2))
	require.NoError(t, s.Compute(a))

	sol, err := s.Solve(rhs)
	require.NoError(t, err)
	for i := range sol {
		require.InDelta(t, trueSol[i], sol[i], 1e-8)
	}
}

// TestCompute_Errors verifies matrix validation at Compute time.
func TestCompute_Errors(t *testing.T) {
	t.Run("NonSquare", func(t *testing.T) {
		m, err := sparse.NewFromTriplets(2, 3, nil)
		require.NoError(t, err)
		require.ErrorIs(t, ssor.New().Compute(m), ssor.ErrNonSquareMatrix)
	})

	t.Run("ZeroDiagonal", func(t *testing.T) {
		m, err := sparse.NewFromTriplets(2, 2, []sparse.Triplet{
			{Row: 0, Col: 0, Val: 1},
			{Row: 0, Col: 1, Val: 1},
			{Row: 1, Col: 0, Val: 1},
		})
		require.NoError(t, err)
		require.ErrorIs(t, ssor.New().Compute(m), ssor.ErrZeroDiagonal)
	})
}

// TestSolve_Errors verifies solve-time validation.
func TestSolve_Errors(t *testing.T) {
	t.Run("NotComputed", func(t *testing.T) {
		_, err := ssor.New().Solve([]float64{1})
		require.ErrorIs(t, err, ssor.ErrNotComputed)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		a, _, _ := laplacianProblem(t)
		s := ssor.New()
		require.NoError(t, s.Compute(a))
		err := s.SolveInPlace(make([]float64, 4), make([]float64, 9))
		require.ErrorIs(t, err, ssor.ErrDimensionMismatch)
	})
}

// TestOptions_Panics verifies option validation.
func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, ssor.ErrBadMaxIterations, func() { ssor.New(ssor.WithMaxIterations(0)) })
	require.PanicsWithValue(t, ssor.ErrBadTolerance, func() { ssor.New(ssor.WithTolerance(0)) })
	require.PanicsWithValue(t, ssor.ErrBadRelaxation, func() { ssor.New(ssor.WithRelaxation(2)) })
	require.PanicsWithValue(t, ssor.ErrBadRelaxation, func() { ssor.New(ssor.WithRelaxation(-0.1)) })
	require.PanicsWithValue(t, ssor.ErrBadWorkers, func() { ssor.New(ssor.WithWorkers(0)) })
}
