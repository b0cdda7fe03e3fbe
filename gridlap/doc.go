// Package gridlap builds the sparse coefficient matrix of a discretized 2D
// Laplacian on a rectangular grid of interior points with a nine-point
// finite-element stencil.
//
// The resulting matrix is symmetric positive-definite, which makes it the
// canonical test and benchmark problem for the iterative solvers in this
// module (ssor, amg, pcg): solving ∇²u = f on a square with Dirichlet
// boundaries reduces to one linear system with this matrix.
//
// Discretization:
//
//   - The grid has Rows×Cols interior points spaced Width apart.
//   - Unknowns are numbered row-major: Index(x, y) = x + Cols·y.
//   - Every point couples to its 3×3 neighborhood; the diagonal coefficient is
//     8/(3·Width²) and every off-diagonal coefficient is −1/(3·Width²),
//     the standard bilinear finite-element stencil of the Laplacian.
//
// Example usage:
//
//	g, err := gridlap.New(9, 9, 0.1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a := g.Mat() // 81×81 SPD matrix, ready for amg.Solver.Compute
//
// The grid is immutable once constructed.
package gridlap
