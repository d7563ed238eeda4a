// SPDX-License-Identifier: MIT

// Package determinant computes square-matrix determinants with the classical
// strategies taught alongside hand calculation.
//
// Strategies:
//
//   - Cofactor:    Laplace expansion along the first row. 1×1 returns the
//     cell, 2×2 returns ad−bc, larger sizes recurse on minors. The
//     cost is O(n!), so sizes above Options.MaxSize (default 8) are
//     rejected with ErrInvalidDimension.
//   - Sarrus:      the rule of Sarrus, valid for exactly 3×3 inputs.
//   - Elimination: Gaussian elimination with partial pivoting, O(n³). Used
//     by Compute once a matrix is too large for cofactor expansion.
//
// Every strategy returns a *Result carrying the value, the strategy used and
// a Singular flag (|value| < Options.Epsilon). Expansion exposes the first-row
// cofactor terms so that callers can render the working.
//
// Non-square input always yields ErrInvalidDimension; inputs are never mutated.
//
//	m, _ := matrix.FromRows([][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}})
//	r, _ := determinant.Cofactor(m, determinant.DefaultOptions())
//	fmt.Println(r.Value) // 6
package determinant
