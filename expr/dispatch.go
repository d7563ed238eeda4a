// SPDX-License-Identifier: MIT

package expr

import (
	"math"

	"github.com/katalvlaran/calcengine/matrix"
)

// opKey selects a binary kernel by operator and operand kinds.
type opKey struct {
	op   byte
	l, r Kind
}

type binaryFunc func(l, r Value, o Options) (Value, error)

// dispatch is the complete table of supported operand pairings. Any pair not
// listed is a dimension mismatch; in particular V*V is rejected in favour of dot.
var dispatch = map[opKey]binaryFunc{
	{'+', KindScalar, KindScalar}: func(l, r Value, _ Options) (Value, error) { return Scalar(l.s + r.s), nil },
	{'-', KindScalar, KindScalar}: func(l, r Value, _ Options) (Value, error) { return Scalar(l.s - r.s), nil },
	{'*', KindScalar, KindScalar}: func(l, r Value, _ Options) (Value, error) { return Scalar(l.s * r.s), nil },
	{'/', KindScalar, KindScalar}: divScalar,
	{'^', KindScalar, KindScalar}: powScalar,

	{'+', KindVector, KindVector}: vecKernel("+", matrix.AddVec),
	{'-', KindVector, KindVector}: vecKernel("-", matrix.SubVec),
	{'*', KindScalar, KindVector}: func(l, r Value, _ Options) (Value, error) { return scaleVec("*", r.v, l.s) },
	{'*', KindVector, KindScalar}: func(l, r Value, _ Options) (Value, error) { return scaleVec("*", l.v, r.s) },
	{'/', KindVector, KindScalar}: divVecScalar,

	{'+', KindMatrix, KindMatrix}: matKernel("+", func(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Add(a, b) }),
	{'-', KindMatrix, KindMatrix}: matKernel("-", func(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Sub(a, b) }),
	{'*', KindMatrix, KindMatrix}: matKernel("*", func(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Mul(a, b) }),
	{'*', KindScalar, KindMatrix}: func(l, r Value, _ Options) (Value, error) { return scaleMat("*", r.m, l.s) },
	{'*', KindMatrix, KindScalar}: func(l, r Value, _ Options) (Value, error) { return scaleMat("*", l.m, r.s) },
	{'*', KindMatrix, KindVector}: mulMatVec,
	{'/', KindMatrix, KindScalar}: divMatScalar,
	{'/', KindMatrix, KindMatrix}: divMatMat,
	{'/', KindScalar, KindMatrix}: divScalarMat,
}

func divScalar(l, r Value, o Options) (Value, error) {
	if math.Abs(r.s) < o.eps {
		return Value{}, domain("/", "division by near-zero %g", r.s)
	}
	return Scalar(l.s / r.s), nil
}

func powScalar(l, r Value, _ Options) (Value, error) {
	if l.s == 0 && r.s < 0 {
		return Value{}, domain("^", "0 raised to negative power %g", r.s)
	}
	return Scalar(math.Pow(l.s, r.s)), nil
}

func vecKernel(op string, fn func(u, v matrix.Vector) (matrix.Vector, error)) binaryFunc {
	return func(l, r Value, _ Options) (Value, error) {
		out, err := fn(l.v, r.v)
		if err != nil {
			return Value{}, kernelError(op, err)
		}
		return VectorOf(out), nil
	}
}

func matKernel(op string, fn func(a, b *matrix.Dense) (*matrix.Dense, error)) binaryFunc {
	return func(l, r Value, _ Options) (Value, error) {
		out, err := fn(l.m, r.m)
		if err != nil {
			return Value{}, kernelError(op, err)
		}
		return MatrixOf(out), nil
	}
}

func scaleVec(op string, v matrix.Vector, s float64) (Value, error) {
	out, err := matrix.ScaleVec(v, s)
	if err != nil {
		return Value{}, kernelError(op, err)
	}
	return VectorOf(out), nil
}

func scaleMat(op string, m *matrix.Dense, s float64) (Value, error) {
	out, err := matrix.Scale(m, s)
	if err != nil {
		return Value{}, kernelError(op, err)
	}
	return MatrixOf(out), nil
}

func mulMatVec(l, r Value, _ Options) (Value, error) {
	out, err := matrix.MatVec(l.m, r.v)
	if err != nil {
		return Value{}, kernelError("*", err)
	}
	return VectorOf(out), nil
}

func divVecScalar(l, r Value, o Options) (Value, error) {
	if math.Abs(r.s) < o.eps {
		return Value{}, domain("/", "division by near-zero %g", r.s)
	}
	return scaleVec("/", l.v, 1/r.s)
}

func divMatScalar(l, r Value, o Options) (Value, error) {
	if math.Abs(r.s) < o.eps {
		return Value{}, domain("/", "division by near-zero %g", r.s)
	}
	return scaleMat("/", l.m, 1/r.s)
}

// divMatMat computes A·B⁻¹.
func divMatMat(l, r Value, _ Options) (Value, error) {
	inv, err := matrix.Inverse(r.m)
	if err != nil {
		return Value{}, kernelError("/", err)
	}
	out, err := matrix.Mul(l.m, inv)
	if err != nil {
		return Value{}, kernelError("/", err)
	}
	return MatrixOf(out), nil
}

// divScalarMat computes s·B⁻¹.
func divScalarMat(l, r Value, _ Options) (Value, error) {
	inv, err := matrix.Inverse(r.m)
	if err != nil {
		return Value{}, kernelError("/", err)
	}
	return scaleMat("/", inv, l.s)
}

// maxMatrixPower bounds |k| in M^k; Pow multiplies k times.
const maxMatrixPower = 10000

// matrixPower handles M^k: k ≥ 0 is a repeated product, k < 0 inverts first.
func matrixPower(m *matrix.Dense, k float64) (Value, error) {
	if k != math.Trunc(k) {
		return Value{}, domain("^", "matrix exponent %g is not an integer", k)
	}
	if math.Abs(k) > maxMatrixPower {
		return Value{}, domain("^", "matrix exponent %g exceeds %d", k, maxMatrixPower)
	}
	base := m
	if k < 0 {
		inv, err := matrix.Inverse(m)
		if err != nil {
			return Value{}, kernelError("^", err)
		}
		base, k = inv, -k
	}
	out, err := matrix.Pow(base, int(k))
	if err != nil {
		return Value{}, kernelError("^", err)
	}
	return MatrixOf(out), nil
}
