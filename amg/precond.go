package amg

import (
	"fmt"

	"github.com/katalvlaran/multigrid/sparse"
)

// Preconditioner wraps a Solver as a preconditioner for Krylov methods: each
// application runs exactly one V-cycle from a zero initial guess, which
// approximates A⁻¹·rhs. It satisfies interfaces of the form
//
//	Apply(dst, rhs []float64) error
//
// such as pcg.Preconditioner.
type Preconditioner struct {
	solver *Solver
}

// NewPreconditioner constructs an AMG preconditioner. The options are the
// Solver's; MaxIterations and Tolerance are ignored since an application is
// always a single cycle.
func NewPreconditioner(opts ...Option) *Preconditioner {
	return &Preconditioner{solver: New(opts...)}
}

// Compute builds the level hierarchy for the coefficient matrix m. Must be
// called before Apply.
func (p *Preconditioner) Compute(m *sparse.CSR) error {
	return p.solver.Compute(m)
}

// Apply overwrites dst with the result of one V-cycle for rhs started from
// zero. dst and rhs may not alias.
func (p *Preconditioner) Apply(dst, rhs []float64) error {
	if p.solver.mat == nil {
		return ErrNotComputed
	}
	rows, _ := p.solver.mat.Dims()
	if len(rhs) != rows || len(dst) != rows {
		return fmt.Errorf("%w: matrix is %dx%d, len(rhs)=%d, len(dst)=%d",
			ErrDimensionMismatch, rows, rows, len(rhs), len(dst))
	}
	zero(dst)
	return p.solver.iterate(rhs, dst)
}
