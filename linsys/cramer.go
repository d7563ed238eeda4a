// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/matrix"
)

// Cramer solves A·x = b by Cramer's rule with cofactor determinants.
//
// Errors:
//   - determinant.ErrInvalidDimension: A not square, or n > opts.MaxCofactorSize.
//   - ErrDimensionMismatch: len(b) ≠ n.
//   - ErrSingularSystem: |det(A)| < opts.Epsilon. The returned result then
//     carries the determinant and the rank classification, but no Values.
func Cramer(a matrix.Matrix, b matrix.Vector, opts Options) (*Result, error) {
	opts.normalize()
	dopts := opts.determinant()
	det, err := determinant.Cofactor(a, dopts)
	if err != nil {
		return nil, fmt.Errorf("Cramer: %w", err)
	}
	n := a.Rows()
	if err = matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("Cramer: %w", err)
	}

	res := &Result{Determinant: det.Value, HasDeterminant: true, Unknowns: n}
	if math.Abs(det.Value) < opts.Epsilon {
		aug, err := augment(a, b)
		if err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		if _, err = classify(aug, opts, res); err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		res.Values = nil
		return res, fmt.Errorf("Cramer: det(A)=%g: %w", det.Value, ErrSingularSystem)
	}

	res.Outcome, res.Rank, res.AugmentedRank = OutcomeUnique, n, n
	res.Values = make(matrix.Vector, n)
	res.ColumnDeterminants = make([]float64, n)
	for i := 0; i < n; i++ {
		ai, err := matrix.WithColumn(a, i, b)
		if err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		di, err := determinant.Cofactor(ai, dopts)
		if err != nil {
			return nil, fmt.Errorf("Cramer: %w", err)
		}
		res.ColumnDeterminants[i] = di.Value
		res.Values[i] = di.Value / det.Value
	}

	return res, nil
}

// augment returns [A | b].
func augment(a matrix.Matrix, b matrix.Vector) (*matrix.Dense, error) {
	d, err := matrix.AsDense(a)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateVecLen(b, d.Rows()); err != nil {
		return nil, err
	}
	cols := make([]matrix.Vector, 0, d.Cols()+1)
	for j := 0; j < d.Cols(); j++ {
		c, err := d.Column(j)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}

	return matrix.FromColumns(append(cols, b))
}
