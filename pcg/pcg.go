package pcg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multigrid/sparse"
)

// Solver runs preconditioned conjugate gradients against one coefficient
// matrix bound by Compute. A Solver must not be shared across goroutines.
type Solver struct {
	opts Options
	mat  *sparse.CSR

	// Work vectors sized by Compute and reused across solves.
	residual     []float64
	direction    []float64
	matDirection []float64
	precondRes   []float64

	iterations   int
	residualRate float64
}

// New constructs a conjugate gradient solver with the given options applied
// on top of DefaultOptions. Option constructors panic on invalid values.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Preconditioner == nil {
		cfg.Preconditioner = Identity{}
	}
	return &Solver{opts: cfg}
}

// Compute binds the coefficient matrix and sizes the work vectors. The
// preconditioner must have been prepared for the same matrix by the caller.
func (s *Solver) Compute(m *sparse.CSR) error {
	rows, cols := m.Dims()
	if rows != cols {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquareMatrix, rows, cols)
	}
	s.mat = m
	s.residual = make([]float64, rows)
	s.direction = make([]float64, rows)
	s.matDirection = make([]float64, rows)
	s.precondRes = make([]float64, rows)
	s.iterations = 0
	s.residualRate = 0
	return nil
}

// Iterations returns the number of steps taken by the last solve.
func (s *Solver) Iterations() int { return s.iterations }

// ResidualRate returns ‖b−Ax‖/‖b‖ of the last solve.
func (s *Solver) ResidualRate() float64 { return s.residualRate }

// Solve allocates a zero initial guess, solves A·x = rhs and returns x.
func (s *Solver) Solve(rhs []float64) ([]float64, error) {
	sol := make([]float64, len(rhs))
	if err := s.SolveInPlace(rhs, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

// SolveWithGuess copies guess, solves A·x = rhs starting from it and returns
// the improved solution.
func (s *Solver) SolveWithGuess(rhs, guess []float64) ([]float64, error) {
	sol := append([]float64(nil), guess...)
	if err := s.SolveInPlace(rhs, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

// SolveInPlace solves A·x = rhs with sol as the initial guess, overwriting it
// with the solution. Iteration stops when the relative residual drops below
// the tolerance or MaxIterations steps have run.
func (s *Solver) SolveInPlace(rhs, sol []float64) error {
	if s.mat == nil {
		return ErrNotComputed
	}
	rows, _ := s.mat.Dims()
	if len(rhs) != rows || len(sol) != rows {
		return fmt.Errorf("%w: matrix is %dx%d, len(rhs)=%d, len(sol)=%d",
			ErrDimensionMismatch, rows, rows, len(rhs), len(sol))
	}

	rhsNorm := floats.Norm(rhs, 2)
	if rhsNorm == 0 {
		// Homogeneous system: the unique SPD solution is zero.
		for i := range sol {
			sol[i] = 0
		}
		s.iterations = 0
		s.residualRate = 0
		return nil
	}

	s.mat.MulVec(s.residual, sol)
	floats.SubTo(s.residual, rhs, s.residual)
	if err := s.opts.Preconditioner.Apply(s.precondRes, s.residual); err != nil {
		return err
	}
	copy(s.direction, s.precondRes)
	resDot := floats.Dot(s.residual, s.precondRes)

	s.iterations = 0
	s.residualRate = floats.Norm(s.residual, 2) / rhsNorm
	for s.iterations < s.opts.MaxIterations && s.residualRate >= s.opts.Tolerance {
		s.mat.MulVec(s.matDirection, s.direction)
		curvature := floats.Dot(s.direction, s.matDirection)
		if curvature <= 0 || math.IsInf(curvature, 0) || math.IsNaN(curvature) {
			return fmt.Errorf("%w: step %d curvature %g", ErrBreakdown, s.iterations, curvature)
		}
		alpha := resDot / curvature
		floats.AddScaled(sol, alpha, s.direction)
		floats.AddScaled(s.residual, -alpha, s.matDirection)
		s.iterations++
		s.residualRate = floats.Norm(s.residual, 2) / rhsNorm
		if s.residualRate < s.opts.Tolerance {
			break
		}

		if err := s.opts.Preconditioner.Apply(s.precondRes, s.residual); err != nil {
			return err
		}
		nextResDot := floats.Dot(s.residual, s.precondRes)
		if nextResDot == 0 || math.IsNaN(nextResDot) {
			return fmt.Errorf("%w: step %d stalled", ErrBreakdown, s.iterations)
		}
		beta := nextResDot / resDot
		for i := range s.direction {
			s.direction[i] = s.precondRes[i] + beta*s.direction[i]
		}
		resDot = nextResDot
	}

	s.opts.Logger.Debug().
		Int("iterations", s.iterations).
		Float64("residual_rate", s.residualRate).
		Msg("pcg solve finished")
	return nil
}
