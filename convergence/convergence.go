// SPDX-License-Identifier: MIT

package convergence

import (
	"errors"
	"math"
)

const (
	// DefaultMaxIterations replaces caps ≤ 0.
	DefaultMaxIterations = 50
	// DefaultCeiling bounds every iteration cap.
	DefaultCeiling = 10000
)

// ErrInvalidTolerance indicates a tolerance that is NaN, infinite or not positive.
var ErrInvalidTolerance = errors.New("convergence: tolerance must be finite and > 0")

// Step records one iteration.
//   - Index: 0-based iteration number.
//   - X:     the approximation produced by this iteration.
//   - Lower, Upper: the inputs of this iteration. Bracketing methods store the
//     bracket, the secant method the two previous iterates, and Newton's
//     method stores x_i in both.
//   - FLower, FUpper: f at Lower and Upper.
//   - FX:    f(X).
//   - Slope: f′(x_i) for Newton's method, zero otherwise.
//   - Error: the method's error metric for this iteration.
type Step struct {
	Index  int
	X      float64
	Lower  float64
	Upper  float64
	FLower float64
	FUpper float64
	FX     float64
	Slope  float64
	Error  float64
}

// StepFunc performs iteration i. A non-nil error aborts the run.
type StepFunc func(i int) (Step, error)

// Outcome is the result of Run.
type Outcome struct {
	Steps     []Step
	Converged bool
}

// Last returns the final recorded step and false when no step was recorded.
func (o Outcome) Last() (Step, bool) {
	if len(o.Steps) == 0 {
		return Step{}, false
	}
	return o.Steps[len(o.Steps)-1], true
}

// Iterations is the number of recorded steps.
func (o Outcome) Iterations() int { return len(o.Steps) }

// Run executes step until convergence, error or maxIter steps.
// maxIter must already be clamped; values < 1 run a single step.
//
// Errors: ErrInvalidTolerance before any step, otherwise the step's own error.
func Run(step StepFunc, tol float64, maxIter int) (Outcome, error) {
	if err := ValidateTolerance(tol); err != nil {
		return Outcome{}, err
	}
	if maxIter < 1 {
		maxIter = 1
	}

	out := Outcome{Steps: make([]Step, 0, min(maxIter, 64))}
	for i := 0; i < maxIter; i++ {
		s, err := step(i)
		if err != nil {
			return out, err
		}
		s.Index = i
		out.Steps = append(out.Steps, s)
		if s.Error < tol || s.FX == 0 {
			out.Converged = true
			return out, nil
		}
	}

	return out, nil
}

// ValidateTolerance rejects NaN, ±Inf and non-positive tolerances.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return ErrInvalidTolerance
	}
	return nil
}

// Clamp maps a requested cap into [1, ceiling]: values ≤ 0 become
// DefaultMaxIterations (itself clamped), larger values are cut at ceiling.
// A ceiling ≤ 0 means DefaultCeiling.
func Clamp(maxIter, ceiling int) int {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if maxIter > ceiling {
		return ceiling
	}
	return maxIter
}
