// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/notation"
	"github.com/katalvlaran/calcengine/roots"
)

// rootOptions resolves the per-request tolerance and cap. A blank tolerance
// takes the engine default; a cap ≤ 0 takes the engine default; every cap is
// clamped to the iteration ceiling.
func (e *Engine) rootOptions(tol string, maxIter int) (roots.Options, error) {
	o := roots.DefaultOptions()
	o.Tolerance = e.opts.tolerance
	if strings.TrimSpace(tol) != "" {
		t, err := e.scalar(tol)
		if err != nil {
			return o, fmt.Errorf("tolerance: %w", err)
		}
		o.Tolerance = t
	}
	if maxIter <= 0 {
		maxIter = e.opts.maxIter
	}
	o.MaxIterations, o.Ceiling = maxIter, e.opts.ceiling
	o.Variable = e.opts.variable
	o.Expr = e.exprOptions()

	return o, nil
}

// method runs a root finder whose seeds are given as text.
func (e *Engine) method(op Operation, seeds []string, tol string, maxIter int,
	solve func(x []float64, o roots.Options) (*roots.MethodResult, error)) (*Response, error) {
	return e.run(op, func(resp *Response) error {
		x := make([]float64, len(seeds))
		for i, s := range seeds {
			v, err := e.scalar(s)
			if err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
			x[i] = v
		}
		o, err := e.rootOptions(tol, maxIter)
		if err != nil {
			return err
		}
		r, err := solve(x, o)
		if r != nil {
			r.Notation = notation.Method(r)
			resp.Kind, resp.Method, resp.Notation = ResultMethod, r, r.Notation
		}
		return err
	})
}

// Bisection brackets a root of f in [a, b].
func (e *Engine) Bisection(f, a, b, tol string, maxIter int) (*Response, error) {
	return e.method(OpBisection, []string{a, b}, tol, maxIter, func(x []float64, o roots.Options) (*roots.MethodResult, error) {
		return roots.Bisection(f, x[0], x[1], o)
	})
}

// FalsePosition brackets a root of f in [a, b] by regula falsi.
func (e *Engine) FalsePosition(f, a, b, tol string, maxIter int) (*Response, error) {
	return e.method(OpFalsePosition, []string{a, b}, tol, maxIter, func(x []float64, o roots.Options) (*roots.MethodResult, error) {
		return roots.FalsePosition(f, x[0], x[1], o)
	})
}

// NewtonRaphson iterates from x0 with the symbolic derivative of f.
func (e *Engine) NewtonRaphson(f, x0, tol string, maxIter int) (*Response, error) {
	return e.method(OpNewtonRaphson, []string{x0}, tol, maxIter, func(x []float64, o roots.Options) (*roots.MethodResult, error) {
		return roots.NewtonRaphson(f, x[0], o)
	})
}

// Secant iterates from the seeds x0 and x1.
func (e *Engine) Secant(f, x0, x1, tol string, maxIter int) (*Response, error) {
	return e.method(OpSecant, []string{x0, x1}, tol, maxIter, func(x []float64, o roots.Options) (*roots.MethodResult, error) {
		return roots.Secant(f, x[0], x[1], o)
	})
}

// Plot samples f at n evenly spaced points of [xmin, xmax], endpoints
// included. Points where f is undefined are skipped. n ≤ 0 takes
// DefaultSamples and n is clamped to the iteration ceiling.
func (e *Engine) Plot(f, xmin, xmax string, n int) (*Response, error) {
	return e.run(OpPlot, func(resp *Response) error {
		fn, err := expr.NewFunction(f, e.opts.variable, e.exprOptions()...)
		if err != nil {
			return err
		}
		lo, err := e.scalar(xmin)
		if err != nil {
			return fmt.Errorf("xmin: %w", err)
		}
		hi, err := e.scalar(xmax)
		if err != nil {
			return fmt.Errorf("xmax: %w", err)
		}
		if !(lo < hi) {
			return fmt.Errorf("plot range [%g, %g] is empty: %w", lo, hi, ErrInvalidRequest)
		}
		switch {
		case n <= 0:
			n = DefaultSamples
		case n < 2:
			n = 2
		case n > e.opts.ceiling:
			n = e.opts.ceiling
		}

		step := (hi - lo) / float64(n-1)
		points := make([]Point, 0, n)
		for i := 0; i < n; i++ {
			x := lo + float64(i)*step
			if i == n-1 {
				x = hi
			}
			y, err := fn.Eval(x)
			if err != nil {
				if errors.Is(err, expr.ErrEvaluation) {
					continue
				}
				return err
			}
			points = append(points, Point{X: x, Y: y})
		}
		resp.Kind, resp.Points = ResultPlot, points
		resp.Notation = "f(" + fn.Variable() + ") = " + fn.LaTeX()
		return nil
	})
}
