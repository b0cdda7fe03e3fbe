// Package multigrid is your in-memory toolkit for solving large sparse
// symmetric positive-definite linear systems — from raw CSR primitives to a
// full algebraic multigrid solver with a parallel smoother.
//
// 🚀 What is multigrid?
//
//	A focused, deterministic linear-algebra library that brings together:
//		• Sparse primitives: triplet assembly, CSR storage, products & Galerkin triples
//		• Smoothing: parallel symmetric SOR with block-local look-back
//		• Coarsening: strong connections, greedy selection, interpolation tuning
//		• Solving: V-cycles over an automatically built level hierarchy
//		• Acceleration: preconditioned conjugate gradients with AMG as M⁻¹
//		• Problems: 2D grid Laplacians for quick experiments and tests
//
// ✨ Why choose multigrid?
//
//   - Grid-size-independent convergence – cycle counts stay flat as problems grow
//   - Deterministic down to the bit – parallel smoothing reproduces sequential results
//   - Explicit configuration – functional options over safe defaults, loud on misuse
//   - Structured logging – zerolog hooks into every setup and solve phase
//
// Everything is organized under five subpackages:
//
//	sparse/  — CSR matrices: assembly, products, transpose, Galerkin, dense export
//	ssor/    — the symmetric successive over-relaxation smoother, sequential & parallel
//	amg/     — the algebraic multigrid solver and its preconditioner adapter
//	pcg/     — (preconditioned) conjugate gradients over the same matrices
//	gridlap/ — 2D grid Laplacian generators for tests and examples
//
// Quick start:
//
//	grid, _ := gridlap.New(100, 100, 0.01)
//	solver := amg.New()
//	if err := solver.Compute(grid.Mat()); err != nil {
//		log.Fatal(err)
//	}
//	sol, err := solver.Solve(rhs)
//
// See examples/ for complete narrated programs.
//
//	go get github.com/katalvlaran/multigrid
package multigrid
