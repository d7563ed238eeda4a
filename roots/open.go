// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/expr"
)

// NewtonRaphson iterates x ← x − f(x)/f′(x) from x0.
//
// The derivative is symbolic unless opts.Derivative is
// DerivativeFiniteDifference or the expression has no symbolic derivative.
// When f is undefined at the new iterate, the step is halved toward x up to
// ten times before the run fails with ErrDomain.
//
// Errors: compile errors (nil result), ErrZeroDerivative, ErrDomain,
// convergence.ErrInvalidTolerance, and evaluation errors at x0.
func NewtonRaphson(src string, x0 float64, opts Options) (*MethodResult, error) {
	opts.normalize()
	f, err := expr.NewFunction(src, opts.Variable, opts.Expr...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewtonRaphson, err)
	}
	res := newResult(MethodNewtonRaphson, f, opts)
	if err = convergence.ValidateTolerance(opts.Tolerance); err != nil {
		return res, fmt.Errorf("%s: %w", MethodNewtonRaphson, err)
	}

	deriv := func(x float64) (float64, error) { return centralDifference(f, x) }
	if opts.Derivative == DerivativeSymbolic {
		df, err := f.Derivative()
		switch {
		case err == nil:
			res.Derivative = df
			deriv = df.Eval
		case !errors.Is(err, expr.ErrNoDerivative):
			return res, fmt.Errorf("%s: derivative: %w", MethodNewtonRaphson, err)
		}
	}

	x := x0
	fx, err := f.Eval(x)
	if err != nil {
		return res, fmt.Errorf("%s: f(%g): %w", MethodNewtonRaphson, x, err)
	}
	if fx == 0 {
		res.exact(x)
		return res, nil
	}

	out, err := convergence.Run(func(int) (convergence.Step, error) {
		slope, err := deriv(x)
		if err != nil {
			return convergence.Step{}, fmt.Errorf("f'(%g): %w", x, err)
		}
		if math.Abs(slope) < opts.Epsilon {
			return convergence.Step{}, fmt.Errorf("f'(%g)=%g: %w", x, slope, ErrZeroDerivative)
		}

		next, fnext, err := damp(f, x, x-fx/slope)
		if err != nil {
			return convergence.Step{}, err
		}
		s := convergence.Step{
			X: next, Lower: x, Upper: x, FLower: fx, FUpper: fx,
			FX: fnext, Slope: slope, Error: math.Abs(next - x),
		}
		x, fx = next, fnext
		return s, nil
	}, opts.Tolerance, opts.MaxIterations)
	res.finish(out)
	if err != nil {
		return res, fmt.Errorf("%s: %w", MethodNewtonRaphson, err)
	}

	return res, nil
}

// damp evaluates f at next; while that fails with a domain error it moves next
// halfway back toward x, at most maxDampings times.
func damp(f *expr.Function, x, next float64) (float64, float64, error) {
	for k := 0; ; k++ {
		fnext, err := f.Eval(next)
		if err == nil {
			return next, fnext, nil
		}
		if !errors.Is(err, expr.ErrDomain) {
			return 0, 0, fmt.Errorf("f(%g): %w", next, err)
		}
		if k == maxDampings {
			return 0, 0, fmt.Errorf("f(%g) after %d dampings: %w", next, maxDampings, err)
		}
		next = x + (next-x)/2
	}
}

// centralDifference approximates f′(x) with h = 1e-6·max(1, |x|).
func centralDifference(f *expr.Function, x float64) (float64, error) {
	h := 1e-6 * math.Max(1, math.Abs(x))
	hi, err := f.Eval(x + h)
	if err != nil {
		return 0, err
	}
	lo, err := f.Eval(x - h)
	if err != nil {
		return 0, err
	}
	return (hi - lo) / (2 * h), nil
}

// Secant iterates x2 = x1 − f(x1)(x1 − x0)/(f(x1) − f(x0)) from the pair (x0, x1).
//
// Errors: compile errors (nil result), ErrDegenerateSecant when
// |f(x1) − f(x0)| < opts.Epsilon, convergence.ErrInvalidTolerance, and
// evaluation errors of f.
func Secant(src string, x0, x1 float64, opts Options) (*MethodResult, error) {
	opts.normalize()
	f, err := expr.NewFunction(src, opts.Variable, opts.Expr...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSecant, err)
	}
	res := newResult(MethodSecant, f, opts)
	if err = convergence.ValidateTolerance(opts.Tolerance); err != nil {
		return res, fmt.Errorf("%s: %w", MethodSecant, err)
	}

	f0, err := f.Eval(x0)
	if err != nil {
		return res, fmt.Errorf("%s: f(%g): %w", MethodSecant, x0, err)
	}
	f1, err := f.Eval(x1)
	if err != nil {
		return res, fmt.Errorf("%s: f(%g): %w", MethodSecant, x1, err)
	}
	if f1 == 0 {
		res.exact(x1)
		return res, nil
	}

	out, err := convergence.Run(func(int) (convergence.Step, error) {
		if math.Abs(f1-f0) < opts.Epsilon {
			return convergence.Step{}, fmt.Errorf("f(%g)=f(%g)=%g: %w", x0, x1, f1, ErrDegenerateSecant)
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		f2, err := f.Eval(x2)
		if err != nil {
			return convergence.Step{}, fmt.Errorf("f(%g): %w", x2, err)
		}
		s := convergence.Step{X: x2, Lower: x0, Upper: x1, FLower: f0, FUpper: f1, FX: f2, Error: math.Abs(x2 - x1)}
		x0, f0, x1, f1 = x1, f1, x2, f2
		return s, nil
	}, opts.Tolerance, opts.MaxIterations)
	res.finish(out)
	if err != nil {
		return res, fmt.Errorf("%s: %w", MethodSecant, err)
	}

	return res, nil
}
