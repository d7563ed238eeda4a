// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/matrix"
)

var (
	// ErrSingularSystem indicates |det(A)| < epsilon in Cramer's rule.
	ErrSingularSystem = errors.New("linsys: singular system")

	// ErrNoSolution indicates an inconsistent system: rank(A) < rank([A|b]).
	ErrNoSolution = errors.New("linsys: no solution")

	// ErrInfiniteSolutions indicates a consistent system with free variables.
	ErrInfiniteSolutions = errors.New("linsys: infinitely many solutions")

	// ErrDimensionMismatch is shared with package matrix.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Outcome classifies a linear system.
type Outcome uint8

const (
	OutcomeUnique Outcome = iota + 1
	OutcomeNoSolution
	OutcomeInfinite
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnique:
		return "unique"
	case OutcomeNoSolution:
		return "no solution"
	case OutcomeInfinite:
		return "infinite solutions"
	default:
		return "undetermined"
	}
}

const (
	DefaultEpsilon         = 1e-10
	DefaultMaxCofactorSize = determinant.DefaultMaxSize
)

// Options configures every solver. Zero fields take defaults.
//   - Epsilon: singular-determinant and rank threshold (1e-10).
//   - MaxCofactorSize: largest n solved with cofactor determinants (8).
type Options struct {
	Epsilon         float64
	MaxCofactorSize int
}

// DefaultOptions returns Options{Epsilon: 1e-10, MaxCofactorSize: 8}.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, MaxCofactorSize: DefaultMaxCofactorSize}
}

func (o *Options) normalize() {
	if !(o.Epsilon > 0) {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxCofactorSize <= 0 {
		o.MaxCofactorSize = DefaultMaxCofactorSize
	}
}

func (o Options) determinant() determinant.Options {
	return determinant.Options{MaxSize: o.MaxCofactorSize, Epsilon: o.Epsilon}
}

// Result describes a solved (or classified) system.
type Result struct {
	Outcome Outcome
	// Values is the unique solution, or the particular solution with every
	// free variable set to 0 when Outcome is OutcomeInfinite.
	Values matrix.Vector
	// Determinant of the coefficient matrix, when it is square.
	Determinant    float64
	HasDeterminant bool
	// ColumnDeterminants holds det(A_i) for Cramer's rule.
	ColumnDeterminants []float64
	Rank               int
	AugmentedRank      int
	Unknowns           int
}

// Err maps the outcome onto its sentinel; a unique solution yields nil.
func (r *Result) Err() error {
	switch r.Outcome {
	case OutcomeUnique:
		return nil
	case OutcomeNoSolution:
		return ErrNoSolution
	case OutcomeInfinite:
		return ErrInfiniteSolutions
	default:
		return ErrSingularSystem
	}
}

// Dependency is the outcome of Dependent.
type Dependency struct {
	Dependent bool
	Rank      int
	Count     int
	// Witness holds coefficients of a nontrivial combination equal to the zero
	// vector; nil when the set is independent.
	Witness matrix.Vector
	// Determinant of the square matrix of vectors, when Count equals their length.
	Determinant    float64
	HasDeterminant bool
}

// Reduction is the outcome of GaussJordan.
type Reduction struct {
	Result
	RREF   *matrix.Dense
	Pivots []int // pivot columns among the unknowns
	Free   []int // free unknowns
}
