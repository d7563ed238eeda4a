// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// The Matrix interface and the Vector type; errors and options live in
// errors.go and options.go.
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Rationale:
//   - Kernels accept the interface and fast-path *Dense.
//   - Tests wrap a *Dense to hide its concrete type and exercise the fallback.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Vector is an ordered sequence of numeric cells (a column vector).
// A valid Vector has Len() >= 1; kernels reject empty vectors with ErrEmpty.
// Vectors are values: kernels never write into a Vector they received.
type Vector []float64

// Len reports the dimension of v.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
