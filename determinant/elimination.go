// SPDX-License-Identifier: MIT

package determinant

import (
	"math"

	"github.com/katalvlaran/calcengine/matrix"
)

// Elimination returns det(m) as the signed product of the pivots produced by
// Gaussian elimination with partial pivoting. An all-zero pivot column yields 0.
//
// Complexity: O(n³) time, O(n²) memory (one working copy).
func Elimination(m matrix.Matrix, opts Options) (*Result, error) {
	opts.normalize()
	d, err := squareDense(m, "Elimination")
	if err != nil {
		return nil, err
	}

	n := d.Rows()
	a := d.ToRows() // working copy
	det := 1.0
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > math.Abs(a[p][k]) {
				p = i
			}
		}
		if a[p][k] == 0 {
			return newResult(0, StrategyElimination, opts), nil
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			det = -det
		}
		det *= a[k][k]
		for i := k + 1; i < n; i++ {
			f := a[i][k] / a[k][k]
			for j := k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
		}
	}

	return newResult(det, StrategyElimination, opts), nil
}

// Compute picks cofactor expansion up to opts.MaxSize and elimination above it.
func Compute(m matrix.Matrix, opts Options) (*Result, error) {
	opts.normalize()
	if matrix.ValidateNotNil(m) == nil && m.Rows() > opts.MaxSize && m.Rows() == m.Cols() {
		return Elimination(m, opts)
	}

	return Cofactor(m, opts)
}
