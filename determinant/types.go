// SPDX-License-Identifier: MIT

package determinant

import "errors"

// ErrInvalidDimension indicates a non-square input, a size the chosen strategy
// does not support, or a cofactor request above Options.MaxSize.
var ErrInvalidDimension = errors.New("determinant: invalid dimension")

// Strategy identifies the algorithm that produced a Result.
type Strategy uint8

const (
	// StrategyCofactor is first-row Laplace expansion.
	StrategyCofactor Strategy = iota + 1
	// StrategySarrus is the 3×3 diagonal rule.
	StrategySarrus
	// StrategyElimination is Gaussian elimination with partial pivoting.
	StrategyElimination
)

func (s Strategy) String() string {
	switch s {
	case StrategyCofactor:
		return "cofactor"
	case StrategySarrus:
		return "sarrus"
	case StrategyElimination:
		return "elimination"
	default:
		return "unknown"
	}
}

const (
	// DefaultMaxSize bounds cofactor expansion (8! leaf products).
	DefaultMaxSize = 8
	// DefaultEpsilon is the magnitude below which a determinant is reported singular.
	DefaultEpsilon = 1e-10
)

// Options configures every strategy.
//   - MaxSize: largest n accepted by Cofactor; Compute switches to elimination above it.
//   - Epsilon: |det| below this sets Result.Singular.
//
// Zero or negative fields fall back to their defaults.
type Options struct {
	MaxSize int
	Epsilon float64
}

// DefaultOptions returns Options{MaxSize: 8, Epsilon: 1e-10}.
func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize, Epsilon: DefaultEpsilon}
}

func (o *Options) normalize() {
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if !(o.Epsilon > 0) {
		o.Epsilon = DefaultEpsilon
	}
}

// Result is the outcome of one determinant computation.
type Result struct {
	Value    float64
	Strategy Strategy
	Singular bool
}

// Term is one summand of a first-row cofactor expansion:
// Sign · Entry · Minor, where Minor is det of the matrix without row 0 and column Col.
type Term struct {
	Col   int
	Sign  float64
	Entry float64
	Minor float64
}

// Value returns Sign·Entry·Minor.
func (t Term) Value() float64 { return t.Sign * t.Entry * t.Minor }

func newResult(v float64, s Strategy, opts Options) *Result {
	return &Result{Value: v, Strategy: s, Singular: abs(v) < opts.Epsilon}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
