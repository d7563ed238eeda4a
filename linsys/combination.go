// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/matrix"
)

// Combination finds c with Σ c_i·vectors[i] = target.
//
// The result is always returned once the inputs are well-formed; the error is
// Result.Err() (nil, ErrNoSolution or ErrInfiniteSolutions).
//
// Errors (nil result): matrix.ErrEmpty for no vectors, ErrDimensionMismatch
// when lengths differ from each other or from target.
func Combination(vectors []matrix.Vector, target matrix.Vector, opts Options) (*Result, error) {
	opts.normalize()
	if len(vectors) == 0 {
		return nil, fmt.Errorf("Combination: %w", matrix.ErrEmpty)
	}
	a, err := matrix.FromColumns(vectors)
	if err != nil {
		return nil, fmt.Errorf("Combination: %w", err)
	}
	aug, err := augment(a, target)
	if err != nil {
		return nil, fmt.Errorf("Combination: %w", err)
	}

	res := &Result{}
	if _, err = classify(aug, opts, res); err != nil {
		return nil, fmt.Errorf("Combination: %w", err)
	}
	if a.IsSquare() && a.Rows() <= opts.MaxCofactorSize {
		if d, err := determinant.Cofactor(a, opts.determinant()); err == nil {
			res.Determinant, res.HasDeterminant = d.Value, true
		}
		if res.Outcome == OutcomeUnique {
			cr, err := Cramer(a, target, opts)
			switch {
			case err == nil:
				res.Values, res.ColumnDeterminants = cr.Values, cr.ColumnDeterminants
			case !errors.Is(err, ErrSingularSystem):
				return nil, fmt.Errorf("Combination: %w", err)
			}
		}
	}

	return res, res.Err()
}

// Dependent reports whether vectors are linearly dependent: their elimination
// rank is below their count. For dependent sets Witness is a nontrivial
// combination with Σ w_i·v_i = 0 built from the first free column of the RREF.
//
// Errors: matrix.ErrEmpty for no vectors, ErrDimensionMismatch for mixed lengths.
func Dependent(vectors []matrix.Vector, opts Options) (*Dependency, error) {
	opts.normalize()
	a, err := matrix.FromColumns(vectors)
	if err != nil {
		return nil, fmt.Errorf("Dependent: %w", err)
	}
	ech, err := matrix.RowReduce(a, matrix.WithEpsilon(opts.Epsilon))
	if err != nil {
		return nil, fmt.Errorf("Dependent: %w", err)
	}

	k := len(vectors)
	dep := &Dependency{Rank: ech.Rank(), Count: k, Dependent: ech.Rank() < k}
	if a.IsSquare() {
		if d, err := determinant.Compute(a, opts.determinant()); err == nil {
			dep.Determinant, dep.HasDeterminant = d.Value, true
		}
	}
	if !dep.Dependent {
		return dep, nil
	}

	free := 0
	for ech.IsPivot(free) {
		free++
	}
	dep.Witness = make(matrix.Vector, k)
	dep.Witness[free] = 1
	for row, col := range ech.Pivots {
		v, _ := ech.RREF.At(row, free)
		dep.Witness[col] = -v
	}

	return dep, nil
}
