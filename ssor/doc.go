// Package ssor implements symmetric successive over-relaxation (SSOR) for
// sparse symmetric positive-definite systems, with an optional thread-parallel
// sweep. It serves two roles in this module: a standalone iterative solver,
// and the per-level smoother of the algebraic multigrid solver in package amg
// (which runs it with MaxIterations = 1).
//
// Algorithm:
//
//   - One iteration is a symmetric sweep: a forward Gauss–Seidel-like pass
//     over all rows followed by a mirrored backward pass, each row update
//     blended with the previous value through a relaxation coefficient
//     ω ∈ (0, 2) (ω = 1 reduces to symmetric Gauss–Seidel).
//   - In parallel mode, rows are statically partitioned into contiguous
//     blocks, one goroutine per block. The forward pass of a block reads the
//     intermediate solution for rows already updated inside the same block and
//     the previous solution elsewhere; a barrier separates the forward and
//     backward passes; the backward pass mirrors the same rule. Each block
//     accumulates a squared-residual partial sum, combined after the barrier.
//   - Parallel execution is enabled automatically when the work per thread is
//     large enough (nonzeros/GOMAXPROCS > 1000) and can be forced either way
//     with WithParallel.
//
// Convergence accounting:
//
//   - Every sweep accumulates Σᵢ rᵢ² over the rows; the residual rate is
//     √(Σ rᵢ² / ‖b‖²), checked against the tolerance after each sweep.
//   - A non-finite accumulated residual aborts the solve with ErrDiverged.
//
// Requirements:
//
//   - The coefficient matrix must be square with non-zero finite diagonal
//     entries (checked in Compute, ErrZeroDiagonal otherwise).
//   - Row-major storage (sparse.CSR) is required by the sweeps.
//
// Complexity per sweep: O(nnz) work, O(n) scratch; parallel speedup is
// bounded by the block partition since blocks only look back locally.
package ssor
