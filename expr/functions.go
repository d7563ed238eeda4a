// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/matrix"
)

// function is a built-in callable with a fixed arity.
type function struct {
	name  string
	arity int
	apply func(args []Value, o Options) (Value, error)
}

var functions = map[string]function{
	"sin":       scalarFn("sin", math.Sin, nil),
	"cos":       scalarFn("cos", math.Cos, nil),
	"tan":       scalarFn("tan", math.Tan, nil),
	"asin":      scalarFn("asin", math.Asin, unitInterval),
	"acos":      scalarFn("acos", math.Acos, unitInterval),
	"atan":      scalarFn("atan", math.Atan, nil),
	"sinh":      scalarFn("sinh", math.Sinh, nil),
	"cosh":      scalarFn("cosh", math.Cosh, nil),
	"tanh":      scalarFn("tanh", math.Tanh, nil),
	"exp":       scalarFn("exp", math.Exp, nil),
	"ln":        scalarFn("ln", math.Log, positive),
	"log":       scalarFn("log", math.Log10, positive),
	"sqrt":      scalarFn("sqrt", math.Sqrt, nonNegative),
	"sign":      scalarFn("sign", signum, nil),
	"abs":       {name: "abs", arity: 1, apply: applyAbs},
	"root":      {name: "root", arity: 2, apply: applyRoot},
	"det":       {name: "det", arity: 1, apply: applyDet},
	"inv":       {name: "inv", arity: 1, apply: applyInv},
	"rank":      {name: "rank", arity: 1, apply: applyRank},
	"norm":      {name: "norm", arity: 1, apply: applyNorm},
	"dot":       {name: "dot", arity: 2, apply: applyDot},
	"transpose": {name: "transpose", arity: 1, apply: applyTranspose},
}

// aliases maps alternative spellings onto canonical function names.
var aliases = map[string]string{
	"arcsin": "asin",
	"arccos": "acos",
	"arctan": "atan",
	"log10":  "log",
}

// lookupFunc resolves a (possibly aliased) function name.
func lookupFunc(name string) (function, bool) {
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	fn, ok := functions[name]
	return fn, ok
}

// Functions lists the callable names accepted by the parser, sorted.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for _, fn := range functions {
		names = append(names, fn.name)
	}
	sort.Strings(names)
	return names
}

func argMismatch(fn string, args ...Value) error {
	kinds := make([]string, len(args))
	for i, a := range args {
		kinds[i] = a.kind.String()
	}
	return &EvalError{Op: fn, Err: fmt.Errorf("%w: %s(%s)", ErrDimensionMismatch, fn, strings.Join(kinds, ", "))}
}

func scalarFn(name string, f func(float64) float64, check func(float64) bool) function {
	return function{name: name, arity: 1, apply: func(args []Value, _ Options) (Value, error) {
		x, ok := args[0].Float()
		if !ok {
			return Value{}, argMismatch(name, args...)
		}
		if check != nil && !check(x) {
			return Value{}, domain(name, "%s(%g) is undefined", name, x)
		}
		return Scalar(f(x)), nil
	}}
}

func unitInterval(x float64) bool { return x >= -1 && x <= 1 }
func positive(x float64) bool     { return x > 0 }
func nonNegative(x float64) bool  { return x >= 0 }

func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// applyAbs: |x| for scalars, the Euclidean norm for vectors, det for matrices.
func applyAbs(args []Value, o Options) (Value, error) {
	switch args[0].kind {
	case KindScalar:
		return Scalar(math.Abs(args[0].s)), nil
	case KindVector:
		return applyNorm(args, o)
	default:
		return applyDet(args, o)
	}
}

// applyRoot: the real n-th root; odd integer roots of negatives are allowed.
func applyRoot(args []Value, o Options) (Value, error) {
	x, ok1 := args[0].Float()
	n, ok2 := args[1].Float()
	if !ok1 || !ok2 {
		return Value{}, argMismatch("root", args...)
	}
	if math.Abs(n) < o.eps {
		return Value{}, domain("root", "zeroth root")
	}
	if x >= 0 {
		return Scalar(math.Pow(x, 1/n)), nil
	}
	if n == math.Trunc(n) && math.Mod(n, 2) != 0 {
		return Scalar(-math.Pow(-x, 1/n)), nil
	}

	return Value{}, domain("root", "even root of negative %g", x)
}

func applyDet(args []Value, _ Options) (Value, error) {
	m, ok := args[0].Matrix()
	if !ok {
		return Value{}, argMismatch("det", args...)
	}
	r, err := determinant.Compute(m, determinant.DefaultOptions())
	if err != nil {
		return Value{}, kernelError("det", err)
	}
	return Scalar(r.Value), nil
}

func applyInv(args []Value, _ Options) (Value, error) {
	m, ok := args[0].Matrix()
	if !ok {
		return Value{}, argMismatch("inv", args...)
	}
	inv, err := matrix.Inverse(m)
	if err != nil {
		return Value{}, kernelError("inv", err)
	}
	return MatrixOf(inv), nil
}

func applyRank(args []Value, _ Options) (Value, error) {
	var (
		r   int
		err error
	)
	switch args[0].kind {
	case KindMatrix:
		r, err = matrix.Rank(args[0].m)
	case KindVector:
		r = 1
		if args[0].v.IsZero(0) {
			r = 0
		}
	default:
		return Value{}, argMismatch("rank", args...)
	}
	if err != nil {
		return Value{}, kernelError("rank", err)
	}
	return Scalar(float64(r)), nil
}

func applyNorm(args []Value, _ Options) (Value, error) {
	v, ok := args[0].Vector()
	if !ok {
		return Value{}, argMismatch("norm", args...)
	}
	n, err := matrix.Norm(v)
	if err != nil {
		return Value{}, kernelError("norm", err)
	}
	return Scalar(n), nil
}

func applyDot(args []Value, _ Options) (Value, error) {
	u, ok1 := args[0].Vector()
	v, ok2 := args[1].Vector()
	if !ok1 || !ok2 {
		return Value{}, argMismatch("dot", args...)
	}
	d, err := matrix.Dot(u, v)
	if err != nil {
		return Value{}, kernelError("dot", err)
	}
	return Scalar(d), nil
}

func applyTranspose(args []Value, _ Options) (Value, error) {
	return transpose("transpose", args[0])
}

// transpose flips a matrix; a vector becomes a 1×n row matrix.
func transpose(op string, v Value) (Value, error) {
	switch v.kind {
	case KindMatrix:
		t, err := matrix.Transpose(v.m)
		if err != nil {
			return Value{}, kernelError(op, err)
		}
		return MatrixOf(t), nil
	case KindVector:
		row, err := matrix.FromRows([][]float64{v.v})
		if err != nil {
			return Value{}, kernelError(op, err)
		}
		return MatrixOf(row), nil
	default:
		return Value{}, argMismatch(op, v)
	}
}
