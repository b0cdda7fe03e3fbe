// Package sparse provides a compressed sparse row (CSR) matrix tailored to the
// needs of the multigrid solvers in this module: triplet-based assembly,
// row-major traversal, matrix-vector kernels, transposition, sparse products
// and the Galerkin triple product used to build coarse-level operators.
//
// Overview:
//
//   - CSR is immutable once assembled; all algorithms in this module treat it
//     as a read-only coefficient structure.
//   - Assembly follows triplet semantics: duplicate (row, col) entries are
//     summed, and each row is stored with strictly increasing column indices.
//   - Row-major storage is a hard requirement of the relaxation smoothers,
//     which sweep rows forward and backward in place.
//
// Key operations:
//
//   - NewFromTriplets: assemble a CSR from (row, col, value) triplets.
//   - MulVec / AddMulVec / MulTransVec: y = Ax, y += Ax, y = Aᵀx without
//     materializing the transpose.
//   - Transpose: counting-sort transposition in O(nnz).
//   - Mul: CSR×CSR product with a dense accumulator per row.
//   - Galerkin: Pᵀ·A·P, the coarse-grid operator of algebraic multigrid.
//   - ToSym: densification into a gonum *mat.SymDense for direct factorization
//     of the coarsest level.
//
// Error handling:
//
//   - Constructors and matrix-level operations return sentinel errors
//     (ErrBadDimension, ErrIndexOutOfRange, ErrDimensionMismatch).
//   - The hot vector kernels (MulVec and friends) panic on shape misuse the way
//     gonum/mat does; shapes are fixed at assembly time, so a mismatch there is
//     a programming error, not an input condition.
//
// Complexity:
//
//   - Assembly: O(nnz log nnz) dominated by per-row sorting.
//   - MulVec / MulTransVec / Transpose: O(nnz).
//   - Mul: O(Σ_i nnz(A_i·B)) with O(cols) scratch.
package sparse
