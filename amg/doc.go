// Package amg implements an algebraic multigrid (AMG) solver for large sparse
// symmetric positive-definite systems, such as discretized elliptic operators.
//
// Unlike geometric multigrid, AMG derives its coarse levels purely from the
// coefficient structure of the matrix: no mesh information is required. The
// setup phase (Compute) builds a hierarchy of successively smaller operators;
// the solve phase runs V-cycles that combine cheap local smoothing on every
// level with an exact Cholesky solve on the small coarsest level.
//
// Hierarchy construction, per level:
//
//  1. Strong connections: an off-diagonal entry (i, j) is strong when
//     |a_ij| ≥ θ·max_k |a_ik| over the off-diagonals of row i (θ = 0.25 by
//     default).
//  2. Coarse/fine classification: a greedy selection repeatedly picks the
//     unclassified node with the most incoming strong connections (ties to the
//     lowest index), makes it coarse, demotes its unclassified in-neighbors to
//     fine and adjusts the scores of the surrounding nodes.
//  3. Tuning: a forward sweep enforces the Ruge–Stüben interpolation
//     condition — every fine node keeps at least one coarse neighbor, and
//     every fine neighbor of a fine node shares a coarse neighbor with it,
//     promoting nodes to coarse where the condition fails.
//  4. Prolongation: coarse nodes interpolate themselves with weight 1; fine
//     nodes average their coarse neighbors with equal weights, so every row of
//     the prolongation matrix sums to exactly 1.
//  5. Galerkin product: the next operator is Pᵀ·A·P.
//
// Construction stops once the operator is at most MaxDirectSize unknowns
// (500 by default); that operator is densified and factorized with a Cholesky
// decomposition.
//
// One V-cycle at level k: smooth once, restrict the residual r = Pᵀ(b − Ax)
// to level k+1, recurse with a zero initial guess, prolong the correction
// x += P·x_{k+1}, and smooth once more against the original right-hand side.
// The smoother is the parallel symmetric successive over-relaxation of
// package ssor, limited to one sweep per visit.
//
// The Solver drives V-cycles until the relative residual ‖Ax−b‖/‖b‖ drops
// below the tolerance or the iteration limit is reached. A Preconditioner
// adapter exposes a single fixed V-cycle for use inside outer Krylov solvers
// such as package pcg.
//
// Typical usage:
//
//	s := amg.New(amg.WithTolerance(1e-8))
//	if err := s.Compute(a); err != nil {
//	    log.Fatal(err)
//	}
//	x, err := s.Solve(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.Iterations(), s.ResidualRate())
//
// A Solver instance owns its hierarchy exclusively; Compute invalidates and
// rebuilds all internal state and must not race with Solve on the same
// instance.
package amg
