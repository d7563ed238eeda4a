// SPDX-License-Identifier: MIT

package expr

import (
	"math"

	"github.com/katalvlaran/calcengine/matrix"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindVector
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "invalid"
	}
}

// Value is a tagged variant: exactly one of scalar, vector or matrix.
// The zero Value is invalid; use the constructors.
type Value struct {
	kind Kind
	s    float64
	v    matrix.Vector
	m    *matrix.Dense
}

// Env binds names to values for one evaluation. It is never mutated.
type Env map[string]Value

// Scalar wraps a float64.
func Scalar(x float64) Value { return Value{kind: KindScalar, s: x} }

// VectorOf wraps a vector (not copied; kernels never write into it).
func VectorOf(v matrix.Vector) Value { return Value{kind: KindVector, v: v} }

// MatrixOf wraps a matrix (not copied; kernels never write into it).
func MatrixOf(m *matrix.Dense) Value { return Value{kind: KindMatrix, m: m} }

// Kind reports the held variant.
func (v Value) Kind() Kind { return v.kind }

// Float returns the scalar and true when v is a scalar.
func (v Value) Float() (float64, bool) { return v.s, v.kind == KindScalar }

// Vector returns the vector and true when v is a vector.
func (v Value) Vector() (matrix.Vector, bool) { return v.v, v.kind == KindVector }

// Matrix returns the matrix and true when v is a matrix.
func (v Value) Matrix() (*matrix.Dense, bool) { return v.m, v.kind == KindMatrix }

// finite reports whether every number held by v is finite.
func (v Value) finite() bool {
	switch v.kind {
	case KindScalar:
		return !math.IsNaN(v.s) && !math.IsInf(v.s, 0)
	case KindVector:
		return matrix.ValidateFinite(v.v...) == nil
	case KindMatrix:
		ok := true
		v.m.Do(func(_, _ int, x float64) bool {
			ok = !math.IsNaN(x) && !math.IsInf(x, 0)
			return ok
		})
		return ok
	default:
		return false
	}
}
