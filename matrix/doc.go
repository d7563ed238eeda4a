// Package matrix provides the dense matrix and vector primitives used by the
// calculation engine.
//
// The matrix package provides:
//
//   - Dense: a row-major, bounds-checked, finite-only float64 matrix.
//   - Vector: an ordered, non-empty sequence of float64 cells.
//   - Element-wise kernels (Add, Sub, Scale) and products (Mul, MatVec, Dot).
//   - Elimination kernels (RowReduce, Rank, Inverse) with an epsilon policy.
//   - Converters from caller-supplied string grids (ParseGrid, ParseCells).
//
// Every kernel is pure: inputs are read-only and a fresh result is returned.
// Loop orders are fixed (row-major, ascending summation index) so that the
// same inputs always produce bit-identical floating-point results.
//
// Errors are package sentinels (errors.go) matched with errors.Is; kernels
// wrap them with an operation tag, e.g. "Mul: matrix: dimension mismatch".
package matrix
