// SPDX-License-Identifier: MIT

package expr

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDepth caps parser nesting (groups, unary chains, powers).
	DefaultMaxDepth = 256

	// DefaultMaxEvalDepth caps evaluator recursion. It exceeds DefaultMaxDepth
	// so that trees produced by Diff from parser-bounded input still evaluate.
	DefaultMaxEvalDepth = 1024

	// DefaultEpsilon is the magnitude below which a scalar divisor is treated as zero.
	DefaultEpsilon = 1e-12
)

const (
	panicMaxDepthInvalid     = "expr: WithMaxDepth: depth must be >= 1"
	panicMaxEvalDepthInvalid = "expr: WithMaxEvalDepth: depth must be >= 1"
	panicEpsilonInvalid      = "expr: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved parser/evaluator configuration.
type Options struct {
	maxDepth     int
	maxEvalDepth int
	eps          float64
}

// MaxDepth returns the parser nesting cap.
func (o Options) MaxDepth() int { return o.maxDepth }

// MaxEvalDepth returns the evaluator recursion cap.
func (o Options) MaxEvalDepth() int { return o.maxEvalDepth }

// Epsilon returns the near-zero divisor threshold.
func (o Options) Epsilon() float64 { return o.eps }

// WithMaxDepth sets the parser nesting cap.
func WithMaxDepth(depth int) Option {
	if depth < 1 {
		panic(panicMaxDepthInvalid)
	}
	return func(o *Options) { o.maxDepth = depth }
}

// WithMaxEvalDepth sets the evaluator recursion cap.
func WithMaxEvalDepth(depth int) Option {
	if depth < 1 {
		panic(panicMaxEvalDepthInvalid)
	}
	return func(o *Options) { o.maxEvalDepth = depth }
}

// WithEpsilon sets the near-zero divisor threshold.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves setters on top of the defaults; later setters win.
func NewOptions(opts ...Option) Options {
	o := Options{
		maxDepth:     DefaultMaxDepth,
		maxEvalDepth: DefaultMaxEvalDepth,
		eps:          DefaultEpsilon,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
