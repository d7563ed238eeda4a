// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/expr"
)

// Bisection halves [a, b] until the bisected width drops below opts.Tolerance.
// The reported midpoint is then within width/2 of a root.
//
// Errors:
//   - *expr.ParseError / expr.ErrUndefinedSymbol when src does not compile (nil result).
//   - ErrInvalidBracket when f(a)·f(b) > 0.
//   - ErrDomain when f is undefined or non-finite at a or b.
//   - convergence.ErrInvalidTolerance for a negative or NaN tolerance.
//   - any evaluation error of f at a midpoint.
func Bisection(src string, a, b float64, opts Options) (*MethodResult, error) {
	return bracket(MethodBisection, src, a, b, opts, func(a, b, _, _ float64) float64 {
		return (a + b) / 2
	}, func(a, b, _ float64) float64 {
		return math.Abs(b - a)
	})
}

// FalsePosition (regula falsi) replaces the midpoint with the x-intercept of
// the chord through (a, f(a)) and (b, f(b)); its error metric is |f(c)|.
// Errors are those of Bisection.
func FalsePosition(src string, a, b float64, opts Options) (*MethodResult, error) {
	return bracket(MethodFalsePosition, src, a, b, opts, func(a, b, fa, fb float64) float64 {
		return (a*fb - b*fa) / (fb - fa)
	}, func(_, _, fc float64) float64 {
		return math.Abs(fc)
	})
}

// bracket runs a bracketing method: next picks the new point inside [a, b],
// metric scores the step from the bracket and f at the new point.
func bracket(
	method, src string, a, b float64, opts Options,
	next func(a, b, fa, fb float64) float64,
	metric func(a, b, fc float64) float64,
) (*MethodResult, error) {
	opts.normalize()
	f, err := expr.NewFunction(src, opts.Variable, opts.Expr...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	res := newResult(method, f, opts)
	if err = convergence.ValidateTolerance(opts.Tolerance); err != nil {
		return res, fmt.Errorf("%s: %w", method, err)
	}
	if a > b {
		a, b = b, a
	}

	fa, err := f.Eval(a)
	if err != nil {
		return res, fmt.Errorf("%s: f(%g): %w", method, a, err)
	}
	fb, err := f.Eval(b)
	if err != nil {
		return res, fmt.Errorf("%s: f(%g): %w", method, b, err)
	}
	switch {
	case fa == 0:
		res.exact(a)
		return res, nil
	case fb == 0:
		res.exact(b)
		return res, nil
	case sameSign(fa, fb):
		return res, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", method, a, fa, b, fb, ErrInvalidBracket)
	}

	out, err := convergence.Run(func(int) (convergence.Step, error) {
		c := next(a, b, fa, fb)
		fc, err := f.Eval(c)
		if err != nil {
			return convergence.Step{}, fmt.Errorf("f(%g): %w", c, err)
		}
		s := convergence.Step{X: c, Lower: a, Upper: b, FLower: fa, FUpper: fb, FX: fc, Error: metric(a, b, fc)}
		if sameSign(fc, fa) {
			a, fa = c, fc
		} else {
			b, fb = c, fc
		}
		return s, nil
	}, opts.Tolerance, opts.MaxIterations)
	res.finish(out)
	if err != nil {
		return res, fmt.Errorf("%s: %w", method, err)
	}

	return res, nil
}

// sameSign reports whether x and y are both positive or both negative.
// Zero is never the same sign as anything.
func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}
