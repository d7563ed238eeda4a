// SPDX-License-Identifier: MIT

package determinant

import (
	"fmt"

	"github.com/katalvlaran/calcengine/matrix"
)

// Sarrus returns det(m) for a 3×3 matrix: the three down-right diagonal
// products minus the three up-right ones. Any other shape is ErrInvalidDimension.
func Sarrus(m matrix.Matrix, opts Options) (*Result, error) {
	opts.normalize()
	d, err := squareDense(m, "Sarrus")
	if err != nil {
		return nil, err
	}
	if d.Rows() != 3 {
		return nil, fmt.Errorf("Sarrus: requires 3×3, got %d×%d: %w", d.Rows(), d.Cols(), ErrInvalidDimension)
	}

	var down, up float64
	for k := 0; k < 3; k++ {
		down += at(d, 0, k) * at(d, 1, (k+1)%3) * at(d, 2, (k+2)%3)
		up += at(d, 2, k) * at(d, 1, (k+1)%3) * at(d, 0, (k+2)%3)
	}

	return newResult(down-up, StrategySarrus, opts), nil
}

func at(d *matrix.Dense, i, j int) float64 {
	v, _ := d.At(i, j)
	return v
}
