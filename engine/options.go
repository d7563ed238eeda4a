// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/roots"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance applies when a root-finding request leaves the tolerance blank.
	DefaultTolerance = roots.DefaultTolerance

	// DefaultMaxIterations applies when a request passes a cap ≤ 0.
	DefaultMaxIterations = convergence.DefaultMaxIterations

	// DefaultIterationCeiling is the hard upper clamp for any requested cap.
	DefaultIterationCeiling = convergence.DefaultCeiling

	// DefaultEpsilon is the singular-determinant and rank threshold.
	DefaultEpsilon = 1e-10

	// DefaultMaxCofactorSize bounds cofactor expansion (and thus Cramer's rule).
	DefaultMaxCofactorSize = determinant.DefaultMaxSize

	// DefaultMaxDepth caps expression nesting.
	DefaultMaxDepth = expr.DefaultMaxDepth

	// DefaultVariable is the free variable of root-finding and plotting functions.
	DefaultVariable = expr.DefaultVariable

	// DefaultSamples is the number of plot points when a request passes n ≤ 0.
	DefaultSamples = 200
)

const (
	panicToleranceInvalid   = "engine: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid     = "engine: WithMaxIterations: n must be >= 1"
	panicCeilingInvalid     = "engine: WithIterationCeiling: n must be >= 1"
	panicEpsilonInvalid     = "engine: WithEpsilon: eps must be finite and > 0"
	panicMaxCofactorInvalid = "engine: WithMaxCofactorSize: n must be >= 1"
	panicMaxDepthInvalid    = "engine: WithMaxDepth: depth must be >= 1"
	panicVariableInvalid    = "engine: WithVariable: name must be a non-empty run of ASCII letters"
)

// Option configures an Engine. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved Engine configuration.
type Options struct {
	tolerance   float64
	maxIter     int
	ceiling     int
	eps         float64
	maxCofactor int
	maxDepth    int
	variable    string
}

func (o Options) Tolerance() float64 { return o.tolerance }
func (o Options) MaxIterations() int { return o.maxIter }
func (o Options) IterationCeiling() int { return o.ceiling }
func (o Options) Epsilon() float64 { return o.eps }
func (o Options) MaxCofactorSize() int { return o.maxCofactor }
func (o Options) MaxDepth() int { return o.maxDepth }
func (o Options) Variable() string { return o.variable }

// WithTolerance sets the tolerance used when a request leaves it blank.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the cap used when a request passes n ≤ 0.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithIterationCeiling sets the hard clamp applied to every cap.
func WithIterationCeiling(n int) Option {
	if n < 1 {
		panic(panicCeilingInvalid)
	}
	return func(o *Options) { o.ceiling = n }
}

// WithEpsilon sets the singularity and rank threshold of the linear-algebra operations.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithMaxCofactorSize sets the largest n accepted by cofactor expansion and Cramer's rule.
func WithMaxCofactorSize(n int) Option {
	if n < 1 {
		panic(panicMaxCofactorInvalid)
	}
	return func(o *Options) { o.maxCofactor = n }
}

// WithMaxDepth sets the expression nesting cap.
func WithMaxDepth(depth int) Option {
	if depth < 1 {
		panic(panicMaxDepthInvalid)
	}
	return func(o *Options) { o.maxDepth = depth }
}

// WithVariable sets the free variable name of root-finding and plotting functions.
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableInvalid)
	}
	for _, r := range name {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			panic(panicVariableInvalid)
		}
	}
	return func(o *Options) { o.variable = name }
}

// gatherOptions applies setters over the defaults; later setters win.
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:   DefaultTolerance,
		maxIter:     DefaultMaxIterations,
		ceiling:     DefaultIterationCeiling,
		eps:         DefaultEpsilon,
		maxCofactor: DefaultMaxCofactorSize,
		maxDepth:    DefaultMaxDepth,
		variable:    DefaultVariable,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
