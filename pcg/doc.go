// Package pcg implements the preconditioned conjugate gradient method for
// sparse symmetric positive-definite linear systems.
//
// # Overview
//
// Conjugate gradients build the solution in a Krylov subspace, minimizing the
// energy norm of the error at every step. A preconditioner M ≈ A⁻¹ applied to
// each residual compresses the spectrum of the iteration and can cut the step
// count by orders of magnitude; the amg package's Preconditioner is the
// natural companion here, making the pair a textbook AMG-PCG solver.
//
// The solver follows the package-wide configuration idiom: functional options
// over DefaultOptions, panics with sentinel error values on invalid settings,
// Compute to bind a matrix and Solve variants to run against it.
//
//	solver := pcg.New(pcg.WithPreconditioner(precond))
//	if err := solver.Compute(matrix); err != nil { ... }
//	sol, err := solver.Solve(rhs)
//
// Without an explicit preconditioner the solver runs plain conjugate
// gradients through the identity preconditioner.
//
// # Complexity
//
// Each step costs one matrix-vector product, one preconditioner application
// and a handful of vector operations, so O(nnz) plus the preconditioner per
// step.
package pcg
