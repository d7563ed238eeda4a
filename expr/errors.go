// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/matrix"
)

var (
	// ErrParse marks every *ParseError.
	ErrParse = errors.New("expr: parse error")

	// ErrEvaluation marks every *EvalError.
	ErrEvaluation = errors.New("expr: evaluation error")

	// ErrUndefinedSymbol indicates an unbound variable or an unknown function.
	ErrUndefinedSymbol = errors.New("expr: undefined symbol")

	// ErrDimensionMismatch is shared with package matrix so that a single
	// errors.Is check covers both operator dispatch and kernel failures.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrDomain indicates a value outside an operation's domain: division by a
	// near-zero scalar, ln of a non-positive value, a singular inverse, or a
	// non-finite result.
	ErrDomain = errors.New("expr: domain error")

	// ErrTooDeep indicates that parser nesting or evaluator recursion exceeded its cap.
	ErrTooDeep = errors.New("expr: nesting too deep")

	// ErrNoDerivative indicates that Diff has no rule for a node (e.g. det).
	ErrNoDerivative = errors.New("expr: no symbolic derivative")
)

// ParseError reports malformed input at a byte offset.
type ParseError struct {
	Pos int    // byte offset into the source
	Msg string // human-readable reason
	Err error  // optional cause (e.g. ErrTooDeep)
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expr: parse error at offset %d: %s: %v", e.Pos, e.Msg, e.Err)
	}
	return fmt.Sprintf("expr: parse error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap exposes ErrParse and the cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// EvalError reports a failure while evaluating a parsed expression.
// Err always wraps one of ErrUndefinedSymbol, ErrDimensionMismatch, ErrDomain
// or ErrTooDeep.
type EvalError struct {
	Op  string // operator, function or symbol being evaluated
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("expr: %s: %v", e.Op, e.Err)
}

// Unwrap exposes ErrEvaluation and the cause to errors.Is/As.
func (e *EvalError) Unwrap() []error { return []error{ErrEvaluation, e.Err} }

func undefined(name string) error {
	return &EvalError{Op: name, Err: fmt.Errorf("%w %q", ErrUndefinedSymbol, name)}
}

func mismatch(op string, l, r Kind) error {
	return &EvalError{Op: op, Err: fmt.Errorf("%w: %s %s %s", ErrDimensionMismatch, l, op, r)}
}

func domain(op, format string, args ...any) error {
	return &EvalError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{ErrDomain}, args...)...)}
}

// kernelError classifies a failure from package matrix (or determinant) into
// the evaluator taxonomy: shape problems are dimension mismatches, anything
// numeric is a domain error.
func kernelError(op string, err error) error {
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrEmpty),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, determinant.ErrInvalidDimension):
		return &EvalError{Op: op, Err: fmt.Errorf("%w: %w", ErrDimensionMismatch, err)}
	default:
		return &EvalError{Op: op, Err: fmt.Errorf("%w: %w", ErrDomain, err)}
	}
}
