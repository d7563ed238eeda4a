// SPDX-License-Identifier: MIT

package roots

import (
	"errors"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/expr"
)

var (
	// ErrInvalidBracket indicates f(a) and f(b) of the same sign.
	ErrInvalidBracket = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative indicates |f′(x)| below epsilon in Newton's method.
	ErrZeroDerivative = errors.New("roots: derivative is zero")

	// ErrDegenerateSecant indicates |f(x1) − f(x0)| below epsilon.
	ErrDegenerateSecant = errors.New("roots: secant through equal function values")

	// ErrDomain is shared with package expr: an iterate left the domain of f.
	ErrDomain = expr.ErrDomain
)

// Method names, as reported in MethodResult.Method.
const (
	MethodBisection     = "bisection"
	MethodFalsePosition = "false_position"
	MethodNewtonRaphson = "newton_raphson"
	MethodSecant        = "secant"
)

// DerivativeMode selects how Newton's method obtains f′.
type DerivativeMode uint8

const (
	// DerivativeSymbolic differentiates the expression tree; functions without a
	// rule fall back to finite differences.
	DerivativeSymbolic DerivativeMode = iota
	// DerivativeFiniteDifference always uses the central difference
	// (f(x+h) − f(x−h)) / 2h with h = 1e-6·max(1, |x|).
	DerivativeFiniteDifference
)

const (
	DefaultTolerance = 1e-6
	DefaultEpsilon   = 1e-12
	DefaultVariable  = expr.DefaultVariable

	// maxDampings bounds the halvings applied to a Newton step outside the domain.
	maxDampings = 10
)

// Options configures every method. Zero fields take defaults; a negative or
// NaN Tolerance is rejected with convergence.ErrInvalidTolerance.
type Options struct {
	Tolerance     float64        // stop when the error metric drops below this (1e-6)
	MaxIterations int            // ≤ 0 means convergence.DefaultMaxIterations (50)
	Ceiling       int            // upper clamp for MaxIterations (10 000)
	Epsilon       float64        // zero-derivative / degenerate-secant threshold (1e-12)
	Derivative    DerivativeMode // Newton only
	Variable      string         // free variable of the expression ("x")
	Expr          []expr.Option  // forwarded to expr.NewFunction
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: convergence.DefaultMaxIterations,
		Ceiling:       convergence.DefaultCeiling,
		Epsilon:       DefaultEpsilon,
		Derivative:    DerivativeSymbolic,
		Variable:      DefaultVariable,
	}
}

func (o *Options) normalize() {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	o.MaxIterations = convergence.Clamp(o.MaxIterations, o.Ceiling)
	if !(o.Epsilon > 0) {
		o.Epsilon = DefaultEpsilon
	}
	if o.Variable == "" {
		o.Variable = DefaultVariable
	}
}

// MethodResult is the full record of one root-finding run.
type MethodResult struct {
	Method        string
	Function      *expr.Function
	Root          float64 // last approximation; meaningful when HasRoot
	HasRoot       bool
	FRoot         float64 // f(Root)
	Converged     bool
	Iterations    int
	Steps         []convergence.Step
	Tolerance     float64
	MaxIterations int            // after clamping
	Derivative    *expr.Function // Newton with a symbolic derivative; nil otherwise
	Notation      string         // filled by callers that render the result
}

func newResult(method string, f *expr.Function, o Options) *MethodResult {
	return &MethodResult{Method: method, Function: f, Tolerance: o.Tolerance, MaxIterations: o.MaxIterations}
}

// finish copies the outcome into r.
func (r *MethodResult) finish(out convergence.Outcome) {
	r.Steps = out.Steps
	r.Iterations = len(out.Steps)
	r.Converged = out.Converged
	if last, ok := out.Last(); ok {
		r.Root, r.FRoot, r.HasRoot = last.X, last.FX, true
	}
}

// exact records a root found on an input point without iterating.
func (r *MethodResult) exact(x float64) {
	r.Root, r.FRoot, r.HasRoot, r.Converged = x, 0, true, true
}
