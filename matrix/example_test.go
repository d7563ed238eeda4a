// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/calcengine/matrix"
)

// ExampleParseGrid shows blank cells read as zero and fractions accepted.
func ExampleParseGrid() {
	m, err := matrix.ParseGrid([][]string{
		{"1", "1/2"},
		{" ", "4"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// [1, 0.5]
	// [0, 4]
}

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleRank reports the rank of a matrix with a repeated row.
func ExampleRank() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}, {0, 1}})
	r, _ := matrix.Rank(m)
	fmt.Println(r)
	// Output:
	// 2
}
