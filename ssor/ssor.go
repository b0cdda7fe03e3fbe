package ssor

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multigrid/sparse"
)

// Solver performs symmetric successive over-relaxation sweeps over a sparse
// symmetric positive-definite matrix. A Solver is reusable: Compute rebinds it
// to a new matrix and resets all derived state. It must not be used from
// multiple goroutines concurrently; the parallelism is internal to a sweep.
type Solver struct {
	opts Options

	mat     *sparse.CSR
	diag    []float64
	invDiag []float64
	// intermediate holds the half-updated solution between the forward and
	// backward passes of a sweep.
	intermediate []float64
	partials     []float64

	runParallel bool
	workers     int

	iterations   int
	residual     float64
	residualRate float64
}

// New constructs an SSOR solver with the given options applied on top of
// DefaultOptions. Option constructors panic on invalid values.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{opts: cfg}
}

// Compute binds the solver to a coefficient matrix: it extracts the diagonal
// and its inverse, allocates the intermediate-solution scratch and decides
// whether sweeps run in parallel.
//
// Returns ErrNonSquareMatrix for a rectangular matrix and ErrZeroDiagonal if
// any diagonal entry is zero or non-finite.
func (s *Solver) Compute(m *sparse.CSR) error {
	rows, cols := m.Dims()
	if rows != cols {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquareMatrix, rows, cols)
	}

	s.mat = m
	s.diag = resize(s.diag, rows)
	s.invDiag = resize(s.invDiag, rows)
	s.intermediate = resize(s.intermediate, rows)
	for i := 0; i < rows; i++ {
		d := m.At(i, i)
		s.diag[i] = d
		s.invDiag[i] = 1 / d
		if math.IsInf(s.invDiag[i], 0) || math.IsNaN(s.invDiag[i]) {
			return fmt.Errorf("%w: row %d has diagonal %v", ErrZeroDiagonal, i, d)
		}
	}

	s.workers = s.opts.Workers
	if s.workers == 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	if s.workers > rows && rows > 0 {
		s.workers = rows
	}
	s.partials = resize(s.partials, s.workers)

	if s.opts.Parallel != nil {
		s.runParallel = *s.opts.Parallel
	} else {
		s.runParallel = m.NNZ()/s.workers > parallelGrainSize
	}

	s.iterations = 0
	s.residual = 0
	s.residualRate = 0
	return nil
}

// resize returns a slice of length n, reusing buf's backing array when large
// enough.
func resize(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// SetParallel overrides the parallelism decision made in Compute. The
// automatic choice is restored only by reconfiguring with WithParallel(nil
// semantics) and calling Compute again.
func (s *Solver) SetParallel(on bool) { s.runParallel = on }

// Iterations returns the number of sweeps performed by the last solve.
func (s *Solver) Iterations() int { return s.iterations }

// ResidualRate returns ‖Ax−b‖/‖b‖ as accounted during the last sweep.
// Meaningful only after a successful solve.
func (s *Solver) ResidualRate() float64 { return s.residualRate }

// Solve allocates a zero initial guess and solves M·x = rhs, returning x.
func (s *Solver) Solve(rhs []float64) ([]float64, error) {
	sol := make([]float64, len(rhs))
	if err := s.SolveInPlace(rhs, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

// SolveInPlace runs symmetric sweeps on sol (used as the initial guess and
// overwritten with the improved solution) until the residual rate drops below
// the tolerance or MaxIterations sweeps have run.
//
// Returns ErrNotComputed before Compute, ErrDimensionMismatch on vector-size
// mismatches and ErrDiverged when the accumulated residual is non-finite.
func (s *Solver) SolveInPlace(rhs, sol []float64) error {
	if s.mat == nil {
		return ErrNotComputed
	}
	rows, _ := s.mat.Dims()
	if len(rhs) != rows || len(sol) != rows {
		return fmt.Errorf("%w: matrix is %dx%d, len(rhs)=%d, len(sol)=%d",
			ErrDimensionMismatch, rows, rows, len(rhs), len(sol))
	}

	s.iterations = 0
	rightNorm := floats.Dot(rhs, rhs)
	for s.iterations < s.opts.MaxIterations {
		if s.runParallel {
			s.iterateParallel(rhs, sol)
		} else {
			s.iterateSequential(rhs, sol)
		}
		if math.IsInf(s.residual, 0) || math.IsNaN(s.residual) {
			return ErrDiverged
		}
		s.iterations++
		s.residualRate = math.Sqrt(s.residual / rightNorm)
		if s.residualRate < s.opts.Tolerance {
			break
		}
	}
	return nil
}

// iterateSequential runs one symmetric sweep on a single goroutine.
func (s *Solver) iterateSequential(rhs, sol []float64) {
	rows, _ := s.mat.Dims()
	s.residual = 0
	for i := 0; i < rows; i++ {
		s.residual += s.rowForward(rhs, sol, i, 0)
	}
	for i := rows - 1; i >= 0; i-- {
		s.rowBackward(rhs, sol, i, rows)
	}
}

// iterateParallel runs one symmetric sweep with rows statically partitioned
// into contiguous blocks, one goroutine per block. The join between the
// forward and backward phases is the barrier required by the block-local
// look-back rule; per-block squared residuals are combined after it.
func (s *Solver) iterateParallel(rhs, sol []float64) {
	rows, _ := s.mat.Dims()
	perBlock := (rows + s.workers - 1) / s.workers

	if s.iterations == 0 {
		s.opts.Logger.Trace().
			Int("rows", rows).
			Int("workers", s.workers).
			Int("rows_per_block", perBlock).
			Msg("ssor parallel sweep partition")
	}

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		start := min(w*perBlock, rows)
		end := min(start+perBlock, rows)
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			sum := 0.0
			for i := start; i < end; i++ {
				sum += s.rowForward(rhs, sol, i, start)
			}
			s.partials[w] = sum
		}(w, start, end)
	}
	wg.Wait()

	for w := 0; w < s.workers; w++ {
		start := min(w*perBlock, rows)
		end := min(start+perBlock, rows)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := end - 1; i >= start; i-- {
				s.rowBackward(rhs, sol, i, end)
			}
		}(start, end)
	}
	wg.Wait()

	s.residual = 0
	for _, p := range s.partials {
		s.residual += p
	}
}

// rowForward applies the forward relaxation update to row i and returns the
// squared residual of the incoming solution at that row. Rows in [startRow, i)
// read the intermediate solution (already updated by this block); all other
// columns read the previous solution.
func (s *Solver) rowForward(rhs, sol []float64, i, startRow int) float64 {
	cols, vals := s.mat.Row(i)
	numerator := rhs[i]
	for k, j := range cols {
		switch {
		case startRow <= j && j < i:
			numerator -= vals[k] * s.intermediate[j]
		case j != i:
			numerator -= vals[k] * sol[j]
		}
	}
	rowResidual := numerator - s.diag[i]*sol[i]
	s.intermediate[i] = s.opts.Relaxation*numerator*s.invDiag[i] +
		(1-s.opts.Relaxation)*sol[i]
	return rowResidual * rowResidual
}

// rowBackward applies the mirrored backward update to row i. Rows in
// (i, endRow) read the solution (already updated by this block's backward
// pass); all other columns read the intermediate solution.
func (s *Solver) rowBackward(rhs, sol []float64, i, endRow int) {
	cols, vals := s.mat.Row(i)
	numerator := rhs[i]
	for k, j := range cols {
		switch {
		case i < j && j < endRow:
			numerator -= vals[k] * sol[j]
		case j != i:
			numerator -= vals[k] * s.intermediate[j]
		}
	}
	sol[i] = s.opts.Relaxation*numerator*s.invDiag[i] +
		(1-s.opts.Relaxation)*s.intermediate[i]
}
