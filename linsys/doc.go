// SPDX-License-Identifier: MIT

// Package linsys solves small linear systems the way they are taught:
//
//   - Cramer:      x_i = det(A_i) / det(A) with cofactor determinants. A
//     determinant below Options.Epsilon fails with ErrSingularSystem.
//   - Combination: coefficients c with Σ c_i·v_i = t. The outcome is decided by
//     rank(A) against rank([A | t]) and the number of vectors k:
//     rank(A) < rank([A|t]) → NoSolution; equal ranks = k → Unique;
//     equal ranks < k → Infinite. Square nonsingular systems use Cramer.
//   - Dependent:   a set is dependent iff its elimination rank is below its
//     size. A nontrivial null combination is returned as a witness.
//   - GaussJordan: classifies an augmented matrix [A | b] from its RREF and
//     reports pivots, free variables and a particular solution.
//
// Results are returned together with an error for the non-unique outcomes,
// so callers can both render the working and branch on errors.Is.
package linsys
