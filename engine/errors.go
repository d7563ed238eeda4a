// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
	"github.com/katalvlaran/calcengine/roots"
)

var (
	// ErrUnknownOperation indicates a Request naming no known Operation.
	ErrUnknownOperation = errors.New("engine: unknown operation")

	// ErrInvalidRequest indicates missing operands or parameters out of range.
	ErrInvalidRequest = errors.New("engine: invalid request")
)

// ErrorKind is the failure taxonomy reported to callers.
type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindParse
	KindDimensionMismatch
	KindInvalidBracket
	KindZeroDerivative
	KindDegenerateSecant
	KindSingularSystem
	KindNoSolution
	KindInfiniteSolutions
	KindInvalidDimension
	KindDomain
	KindUndefinedSymbol
	KindInvalidRequest
	KindUnknownOperation
	KindInternal
)

var kindNames = [...]string{
	KindNone:              "None",
	KindParse:             "ParseError",
	KindDimensionMismatch: "DimensionMismatch",
	KindInvalidBracket:    "InvalidBracket",
	KindZeroDerivative:    "ZeroDerivative",
	KindDegenerateSecant:  "DegenerateSecant",
	KindSingularSystem:    "SingularSystem",
	KindNoSolution:        "NoSolution",
	KindInfiniteSolutions: "InfiniteSolutions",
	KindInvalidDimension:  "InvalidDimension",
	KindDomain:            "DomainError",
	KindUndefinedSymbol:   "UndefinedSymbol",
	KindInvalidRequest:    "InvalidRequest",
	KindUnknownOperation:  "UnknownOperation",
	KindInternal:          "Internal",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// classification is checked in order; the first sentinel matched wins, so
// parse failures take priority over anything they wrap.
var classification = []struct {
	target error
	kind   ErrorKind
}{
	{expr.ErrParse, KindParse},
	{matrix.ErrParse, KindParse},
	{expr.ErrUndefinedSymbol, KindUndefinedSymbol},
	{roots.ErrInvalidBracket, KindInvalidBracket},
	{roots.ErrZeroDerivative, KindZeroDerivative},
	{roots.ErrDegenerateSecant, KindDegenerateSecant},
	{linsys.ErrSingularSystem, KindSingularSystem},
	{linsys.ErrNoSolution, KindNoSolution},
	{linsys.ErrInfiniteSolutions, KindInfiniteSolutions},
	{expr.ErrDomain, KindDomain},
	{expr.ErrTooDeep, KindDomain},
	{matrix.ErrNaNInf, KindDomain},
	{matrix.ErrSingular, KindDomain},
	{matrix.ErrDimensionMismatch, KindDimensionMismatch},
	{matrix.ErrRagged, KindDimensionMismatch},
	{determinant.ErrInvalidDimension, KindInvalidDimension},
	{matrix.ErrNonSquare, KindInvalidDimension},
	{matrix.ErrEmpty, KindInvalidDimension},
	{matrix.ErrInvalidDimensions, KindInvalidDimension},
	{matrix.ErrOutOfRange, KindInvalidDimension},
	{convergence.ErrInvalidTolerance, KindInvalidRequest},
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrUnknownOperation, KindUnknownOperation},
}

// KindOf places err in the taxonomy. nil maps to KindNone and anything
// unrecognised to KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, c := range classification {
		if errors.Is(err, c.target) {
			return c.kind
		}
	}

	return KindInternal
}

// Error is the failure of one engine operation.
type Error struct {
	Op   Operation
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op Operation, err error) *Error {
	return &Error{Op: op, Kind: KindOf(err), Err: err}
}
