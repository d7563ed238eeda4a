// SPDX-License-Identifier: MIT

// Package matrix: Gauss-Jordan elimination kernels.
//
// Purpose:
//   - Reduce any r×c matrix to reduced row echelon form (RREF) with partial pivoting.
//   - Derive the rank from the number of pivots rather than from a determinant,
//     so rectangular systems are handled the same way as square ones.
//
// Numeric policy:
//   - A candidate pivot counts as zero when |p| ≤ eps·max(1, max|a_ij|), eps from
//     WithEpsilon (DefaultEpsilon otherwise). Entries that fall under the same
//     threshold after elimination are flushed to exact zero.

package matrix

import "math"

const (
	opRowReduce = "RowReduce"
	opRank      = "Rank"
)

// Echelon is the outcome of RowReduce.
type Echelon struct {
	// RREF is the reduced row echelon form of the input (fresh allocation).
	RREF *Dense
	// Pivots lists pivot columns in ascending order; len(Pivots) is the rank.
	Pivots []int
}

// Rank returns the number of pivots.
func (e *Echelon) Rank() int { return len(e.Pivots) }

// IsPivot reports whether column j holds a pivot.
func (e *Echelon) IsPivot(j int) bool {
	for _, p := range e.Pivots {
		if p == j {
			return true
		}
	}

	return false
}

// RowReduce computes the RREF of m by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Scans columns left to right; each column either yields a pivot (normalized
//     to 1, eliminated above and below) or is skipped as free.
//
// Implementation:
//   - Stage 1: validate; copy m into a working *Dense; compute the scaled threshold.
//   - Stage 2: for col = 0..c-1 while pivotRow < r: choose the largest |a[i,col]|
//     for i ≥ pivotRow (lowest index on ties); skip the column when below threshold;
//     otherwise swap, normalize and eliminate.
//   - Stage 3: flush sub-threshold residue to 0.
//
// Inputs:
//   - m: any non-nil matrix, not necessarily square. Augmented systems [A | b]
//     are reduced as a whole; a pivot in the last column signals inconsistency.
//
// Returns:
//   - *Echelon with the RREF and the ascending pivot columns.
//
// Errors:
//   - ErrNilMatrix (validation).
//
// Determinism:
//   - Fixed scan order and deterministic tie-breaking.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func RowReduce(m Matrix, opts ...Option) (*Echelon, error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}
	cfg := gatherOptions(opts...)
	work := src.clone()
	rows, cols := work.r, work.c
	threshold := cfg.eps * math.Max(1, work.MaxAbs())

	pivots := make([]int, 0, min(rows, cols))
	pivotRow := 0
	var i, j, best int
	var mag, bestMag, factor, pivot float64
	for col := 0; col < cols && pivotRow < rows; col++ {
		best, bestMag = pivotRow, math.Abs(work.data[pivotRow*cols+col])
		for i = pivotRow + 1; i < rows; i++ {
			if mag = math.Abs(work.data[i*cols+col]); mag > bestMag {
				best, bestMag = i, mag
			}
		}
		if bestMag <= threshold {
			continue // free column
		}
		if best != pivotRow {
			swapRows(work, best, pivotRow)
		}

		pivot = work.data[pivotRow*cols+col]
		for j = 0; j < cols; j++ {
			work.data[pivotRow*cols+j] /= pivot
		}
		for i = 0; i < rows; i++ {
			if i == pivotRow {
				continue
			}
			factor = work.data[i*cols+col]
			if factor == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				work.data[i*cols+j] -= factor * work.data[pivotRow*cols+j]
			}
		}
		pivots = append(pivots, col)
		pivotRow++
	}

	for idx, v := range work.data {
		if math.Abs(v) <= threshold {
			work.data[idx] = 0
		}
	}

	return &Echelon{RREF: work, Pivots: pivots}, nil
}

// Rank returns the rank of m computed by elimination (see RowReduce).
func Rank(m Matrix, opts ...Option) (int, error) {
	e, err := RowReduce(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return e.Rank(), nil
}
