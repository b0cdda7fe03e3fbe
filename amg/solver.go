package amg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multigrid/sparse"
	"github.com/katalvlaran/multigrid/ssor"
)

// level is one smoothed entry of the hierarchy: its coefficient matrix (the
// caller's matrix on the finest level, an owned Galerkin product below), the
// prolongation from the next coarser level and a one-sweep smoother.
type level struct {
	mat          *sparse.CSR
	prolongation *sparse.CSR
	smoother     *ssor.Solver
}

// Solver solves sparse symmetric positive-definite systems with the algebraic
// multigrid method. Compute builds the level hierarchy for one coefficient
// matrix; Solve and its variants then run V-cycles against it. A Solver owns
// its hierarchy exclusively and must not be shared across goroutines.
type Solver struct {
	opts Options

	mat    *sparse.CSR
	levels []*level
	chol   mat.Cholesky

	// scratch[k] holds the level-k residual before restriction; rhsBuf[k] and
	// solBuf[k] hold the right-hand side and solution of level k+1. All are
	// rebuilt by Compute and reused across cycles.
	scratch [][]float64
	rhsBuf  [][]float64
	solBuf  [][]float64

	iterations int
}

// New constructs an AMG solver with the given options applied on top of
// DefaultOptions. Option constructors panic on invalid values.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{opts: cfg}
}

// Compute builds the full level hierarchy for the coefficient matrix m:
// repeated coarsening with Galerkin products while the operator exceeds
// MaxDirectSize, then a dense Cholesky factorization of the coarsest
// operator. Any previously computed hierarchy is discarded.
//
// Returns ErrNonSquareMatrix for a rectangular matrix, ErrCoarseningStalled
// when a coarsening step cannot reduce the unknown count,
// ErrNoInterpolationSource on a broken classification, ssor.ErrZeroDiagonal
// for a level with a zero or non-finite diagonal and ErrNotPositiveDefinite
// when the coarsest factorization fails.
func (s *Solver) Compute(m *sparse.CSR) error {
	rows, cols := m.Dims()
	if rows != cols {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquareMatrix, rows, cols)
	}

	s.mat = m
	s.levels = s.levels[:0]
	s.iterations = 0

	cur := m
	for {
		_, size := cur.Dims()
		if size <= s.opts.MaxDirectSize {
			break
		}
		s.opts.Logger.Debug().
			Int("level", len(s.levels)).
			Int("size", size).
			Msg("amg assembling smoothed level")

		p, err := s.prolongationFor(cur)
		if err != nil {
			return err
		}
		if _, coarse := p.Dims(); coarse >= size {
			return fmt.Errorf("%w: level %d kept %d of %d unknowns", ErrCoarseningStalled, len(s.levels), coarse, size)
		}

		smoother := s.newSmoother()
		if err := smoother.Compute(cur); err != nil {
			return err
		}
		s.levels = append(s.levels, &level{mat: cur, prolongation: p, smoother: smoother})

		next, err := sparse.Galerkin(p, cur)
		if err != nil {
			return err
		}
		cur = next
	}

	_, size := cur.Dims()
	s.opts.Logger.Debug().
		Int("level", len(s.levels)).
		Int("size", size).
		Msg("amg assembling direct level")
	sym, err := cur.ToSym()
	if err != nil {
		return err
	}
	if !s.chol.Factorize(sym) {
		return fmt.Errorf("%w: coarsest level is %dx%d", ErrNotPositiveDefinite, size, size)
	}

	s.allocateBuffers()
	return nil
}

// prolongationFor runs the coarsening pipeline on one operator: strong
// connections, greedy classification, tuning, prolongation assembly.
func (s *Solver) prolongationFor(m *sparse.CSR) (*sparse.CSR, error) {
	connections := strongConnections(m, s.opts.StrongThreshold)
	transposed := connections.transpose()
	classification := classifyNodes(connections, transposed)
	tuneClassification(connections, transposed, classification)
	return buildProlongation(transposed, classification)
}

// newSmoother builds a per-level smoother with the solver's relaxation and
// parallelism settings and the fixed one-sweep budget.
func (s *Solver) newSmoother() *ssor.Solver {
	opts := []ssor.Option{
		ssor.WithMaxIterations(smootherSweeps),
		ssor.WithRelaxation(s.opts.Relaxation),
		ssor.WithLogger(s.opts.Logger),
	}
	if s.opts.Parallel != nil {
		opts = append(opts, ssor.WithParallel(*s.opts.Parallel))
	}
	return ssor.New(opts...)
}

// allocateBuffers sizes the per-level work vectors to the hierarchy built by
// Compute.
func (s *Solver) allocateBuffers() {
	n := len(s.levels)
	s.scratch = make([][]float64, n)
	s.rhsBuf = make([][]float64, n)
	s.solBuf = make([][]float64, n)
	for k, lv := range s.levels {
		rows, _ := lv.mat.Dims()
		_, coarse := lv.prolongation.Dims()
		s.scratch[k] = make([]float64, rows)
		s.rhsBuf[k] = make([]float64, coarse)
		s.solBuf[k] = make([]float64, coarse)
	}
}

// Iterations returns the number of V-cycles run by the last solve.
func (s *Solver) Iterations() int { return s.iterations }

// ResidualRate returns ‖Ax−b‖/‖b‖ as accounted by the finest-level smoother
// during its last sweep. When the hierarchy consists of the direct level
// alone the solve is exact and the rate is machine epsilon. Meaningful only
// after a successful solve.
func (s *Solver) ResidualRate() float64 {
	if len(s.levels) == 0 {
		return math.Nextafter(1, 2) - 1
	}
	return s.levels[0].smoother.ResidualRate()
}

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

// SolveInPlace runs V-cycles on sol (used as the initial guess and
// overwritten with the solution) until the residual rate drops below the
// tolerance or MaxIterations cycles have run.
//
// Returns ErrNotComputed before Compute, ErrDimensionMismatch on vector-size
// mismatches and ssor.ErrDiverged when smoothing hits a non-finite residual.
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
	for s.iterations < s.opts.MaxIterations {
		if err := s.iterate(rhs, sol); err != nil {
			return err
		}
		s.iterations++
		if s.ResidualRate() < s.opts.Tolerance {
			break
		}
	}

	s.opts.Logger.Debug().
		Int("iterations", s.iterations).
		Float64("residual_rate", s.ResidualRate()).
		Msg("amg solve finished")
	return nil
}

// iterate runs one full V-cycle: descend with pre-smoothing and residual
// restriction, solve the coarsest level directly, ascend with prolongation
// corrections and post-smoothing.
func (s *Solver) iterate(rhs, sol []float64) error {
	if len(s.levels) == 0 {
		return s.solveDirect(rhs, sol)
	}

	b, x := rhs, sol
	for k, lv := range s.levels {
		if err := lv.smoother.SolveInPlace(b, x); err != nil {
			return err
		}
		lv.mat.MulVec(s.scratch[k], x)
		floats.SubTo(s.scratch[k], b, s.scratch[k])
		lv.prolongation.MulTransVec(s.rhsBuf[k], s.scratch[k])
		zero(s.solBuf[k])
		b, x = s.rhsBuf[k], s.solBuf[k]
	}

	if err := s.solveDirect(b, x); err != nil {
		return err
	}

	for k := len(s.levels) - 1; k >= 0; k-- {
		lv := s.levels[k]
		bUp, xUp := rhs, sol
		if k > 0 {
			bUp, xUp = s.rhsBuf[k-1], s.solBuf[k-1]
		}
		lv.prolongation.AddMulVec(xUp, s.solBuf[k])
		if err := lv.smoother.SolveInPlace(bUp, xUp); err != nil {
			return err
		}
	}
	return nil
}

// solveDirect solves the coarsest level exactly through the Cholesky
// factorization, overwriting sol.
func (s *Solver) solveDirect(rhs, sol []float64) error {
	dst := mat.NewVecDense(len(sol), sol)
	if err := s.chol.SolveVecTo(dst, mat.NewVecDense(len(rhs), rhs)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}
	return nil
}

// zero clears a work vector between cycles.
func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
