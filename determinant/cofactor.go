// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/calcengine/matrix"
)

// Cofactor returns det(m) by first-row Laplace expansion.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrInvalidDimension when m is not square or n > opts.MaxSize.
//
// Complexity: O(n!) time, O(n²) memory per recursion level.
func Cofactor(m matrix.Matrix, opts Options) (*Result, error) {
	opts.normalize()
	d, err := squareDense(m, "Cofactor")
	if err != nil {
		return nil, err
	}
	if d.Rows() > opts.MaxSize {
		return nil, fmt.Errorf("Cofactor: %d×%d exceeds max size %d: %w", d.Rows(), d.Cols(), opts.MaxSize, ErrInvalidDimension)
	}

	return newResult(cofactor(d), StrategyCofactor, opts), nil
}

// Expansion returns the first-row cofactor terms of m; their Values sum to det(m).
// A 1×1 matrix yields a single term with Minor 1.
func Expansion(m matrix.Matrix, opts Options) ([]Term, error) {
	opts.normalize()
	d, err := squareDense(m, "Expansion")
	if err != nil {
		return nil, err
	}
	n := d.Rows()
	if n > opts.MaxSize {
		return nil, fmt.Errorf("Expansion: %d×%d exceeds max size %d: %w", n, n, opts.MaxSize, ErrInvalidDimension)
	}
	if n == 1 {
		v, _ := d.At(0, 0)
		return []Term{{Col: 0, Sign: 1, Entry: v, Minor: 1}}, nil
	}

	terms := make([]Term, n)
	for j := 0; j < n; j++ {
		entry, _ := d.At(0, j)
		minor, err := d.Minor(0, j)
		if err != nil {
			return nil, fmt.Errorf("Expansion: %w", err)
		}
		terms[j] = Term{Col: j, Sign: sign(j), Entry: entry, Minor: cofactor(minor)}
	}

	return terms, nil
}

// cofactor expands along row 0; d is square and non-empty.
func cofactor(d *matrix.Dense) float64 {
	n := d.Rows()
	switch n {
	case 1:
		v, _ := d.At(0, 0)
		return v
	case 2:
		a, _ := d.At(0, 0)
		b, _ := d.At(0, 1)
		c, _ := d.At(1, 0)
		e, _ := d.At(1, 1)
		return a*e - b*c
	}

	var sum float64
	for j := 0; j < n; j++ {
		entry, _ := d.At(0, j)
		minor, _ := d.Minor(0, j) // n ≥ 3, indices in range
		sum += sign(j) * entry * cofactor(minor)
	}

	return sum
}

func sign(j int) float64 {
	if j%2 == 0 {
		return 1
	}
	return -1
}

// squareDense validates m and returns a dense view of it.
func squareDense(m matrix.Matrix, tag string) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %d×%d is not square: %w", tag, m.Rows(), m.Cols(), ErrInvalidDimension)
	}

	return matrix.AsDense(m)
}
