// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/calcengine/matrix"
)

// GaussJordan reduces the augmented matrix [A | b] (last column = b) and
// classifies the system. The error is nil for a unique solution and
// ErrNoSolution / ErrInfiniteSolutions otherwise; the Reduction is returned
// in every classified case.
//
// Errors (nil Reduction): matrix.ErrNilMatrix, ErrDimensionMismatch when the
// matrix has fewer than two columns.
func GaussJordan(augmented matrix.Matrix, opts Options) (*Reduction, error) {
	opts.normalize()
	if err := matrix.ValidateNotNil(augmented); err != nil {
		return nil, fmt.Errorf("GaussJordan: %w", err)
	}
	if augmented.Cols() < 2 {
		return nil, fmt.Errorf("GaussJordan: augmented matrix needs at least 2 columns: %w", ErrDimensionMismatch)
	}

	red := &Reduction{}
	ech, err := classify(augmented, opts, &red.Result)
	if err != nil {
		return nil, fmt.Errorf("GaussJordan: %w", err)
	}
	red.RREF = ech.RREF
	for j := 0; j < red.Unknowns; j++ {
		if ech.IsPivot(j) {
			red.Pivots = append(red.Pivots, j)
		} else {
			red.Free = append(red.Free, j)
		}
	}

	return red, red.Err()
}

// classify row-reduces [A | b] and fills the outcome, ranks, unknown count and
// (for consistent systems) the particular solution with free variables at 0.
func classify(aug matrix.Matrix, opts Options, res *Result) (*matrix.Echelon, error) {
	ech, err := matrix.RowReduce(aug, matrix.WithEpsilon(opts.Epsilon))
	if err != nil {
		return nil, err
	}
	k := aug.Cols() - 1
	res.Unknowns = k
	res.AugmentedRank = ech.Rank()
	res.Rank = ech.Rank()
	if ech.IsPivot(k) {
		res.Rank--
		res.Outcome = OutcomeNoSolution
		return ech, nil
	}

	res.Values = make(matrix.Vector, k)
	for row, col := range ech.Pivots {
		res.Values[col], _ = ech.RREF.At(row, k)
	}
	if res.Rank == k {
		res.Outcome = OutcomeUnique
	} else {
		res.Outcome = OutcomeInfinite
	}

	return ech, nil
}
