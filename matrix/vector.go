// SPDX-License-Identifier: MIT

// Package matrix: Vector kernels.
//
// Purpose:
//   - Elementwise vector arithmetic mirroring the matrix kernels (Add/Sub/Scale).
//   - Explicit inner product (Dot) and Euclidean norm (Norm).
//
// Contract:
//   - Inputs are read-only; every result is a fresh Vector.
//   - Empty vectors are rejected with ErrEmpty, length mismatch with ErrDimensionMismatch.

package matrix

import "math"

const (
	opAddVec   = "AddVec"
	opSubVec   = "SubVec"
	opScaleVec = "ScaleVec"
	opDot      = "Dot"
	opNorm     = "Norm"
)

// addSubVec computes u + sign*v for sign ∈ {+1, -1}.
func addSubVec(u, v Vector, sign float64, opTag string) (Vector, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := make(Vector, len(u))
	for i := range u {
		out[i] = u[i] + sign*v[i]
	}

	return out, nil
}

// AddVec returns u + v.
func AddVec(u, v Vector) (Vector, error) { return addSubVec(u, v, +1, opAddVec) }

// SubVec returns u - v.
func SubVec(u, v Vector) (Vector, error) { return addSubVec(u, v, -1, opSubVec) }

// ScaleVec returns alpha·v.
// Errors: ErrEmpty for an empty v, ErrNaNInf for a non-finite alpha.
func ScaleVec(v Vector, alpha float64) (Vector, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opScaleVec, ErrEmpty)
	}
	if err := ValidateFinite(alpha); err != nil {
		return nil, matrixErrorf(opScaleVec, err)
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = alpha * x
	}

	return out, nil
}

// Dot returns Σ u[i]·v[i], summed with i ascending.
//
// Notes:
//   - This is the only vector·vector product; the evaluator never infers it from `*`.
func Dot(u, v Vector) (float64, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := ZeroSum
	for i := range u {
		acc += u[i] * v[i]
	}

	return acc, nil
}

// Norm returns the Euclidean length ‖v‖₂ computed with math.Hypot accumulation
// to avoid intermediate overflow.
func Norm(v Vector) (float64, error) {
	if len(v) == 0 {
		return 0, matrixErrorf(opNorm, ErrEmpty)
	}
	acc := 0.0
	for _, x := range v {
		acc = math.Hypot(acc, x)
	}

	return acc, nil
}

// IsZero reports whether every component satisfies |v[i]| ≤ eps.
func (v Vector) IsZero(eps float64) bool {
	for _, x := range v {
		if math.Abs(x) > eps {
			return false
		}
	}

	return true
}
