// SPDX-License-Identifier: MIT

// Package matrix provides converters between caller-supplied grids
// (decimal strings or float rows) and the Dense/Vector representations.
//
// Cells arrive as text. Blank or whitespace-only cells are read as 0 (the
// additive identity); anything else must be a finite decimal number or a
// simple fraction "p/q". Malformed text yields ErrParse wrapped with the
// cell coordinates.
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	opParseGrid   = "ParseGrid"
	opParseCells  = "ParseCells"
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opWithColumn  = "WithColumn"

	fractionSep = "/"
)

// ParseNumber converts one cell of text into a finite float64.
//
// Accepted forms: "" or whitespace (→ 0), decimal literals understood by
// strconv.ParseFloat ("1", "-2.5", ".5", "1e-3"), and a fraction "p/q" of two
// such literals with q ≠ 0. NaN and ±Inf spellings are rejected.
//
// Errors:
//   - ErrParse for malformed text, a zero denominator or a non-finite value.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}
	if num, den, ok := strings.Cut(s, fractionSep); ok {
		p, err := parseFinite(num)
		if err != nil {
			return 0, fmt.Errorf("ParseNumber(%q): %w", text, err)
		}
		q, err := parseFinite(den)
		if err != nil {
			return 0, fmt.Errorf("ParseNumber(%q): %w", text, err)
		}
		if q == 0 {
			return 0, fmt.Errorf("ParseNumber(%q): %w", text, ErrParse)
		}

		return p / q, nil
	}
	v, err := parseFinite(s)
	if err != nil {
		return 0, fmt.Errorf("ParseNumber(%q): %w", text, err)
	}

	return v, nil
}

// parseFinite parses a trimmed decimal literal and rejects NaN/±Inf.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrParse
	}

	return v, nil
}

// CellParser converts one cell of text into a number.
// ParseNumber is the default; callers may plug in a richer parser
// (e.g. one that accepts constant expressions such as "pi/4").
type CellParser func(text string) (float64, error)

// ParseGrid builds a Dense from rows of cell text using ParseNumber.
//
// Implementation:
//   - Stage 1: reject an empty grid (ErrEmpty) and ragged rows (ErrRagged).
//   - Stage 2: parse each cell in row-major order; the first failing cell
//     aborts the conversion.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrParse (wrapped with "cell(i,j)").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ParseGrid(grid [][]string) (*Dense, error) { return ParseGridFunc(grid, ParseNumber) }

// ParseGridFunc is ParseGrid with a caller-supplied cell parser.
// Blank cells never reach parse: they are read as 0 before it is called.
// Non-finite values returned by parse are rejected with ErrNaNInf.
func ParseGridFunc(grid [][]string, parse CellParser) (*Dense, error) {
	rows, cols, err := gridShape(len(grid), func(i int) int { return len(grid[i]) })
	if err != nil {
		return nil, matrixErrorf(opParseGrid, err)
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opParseGrid, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = parseCell(grid[i][j], parse); err != nil {
				return nil, matrixErrorf(opParseGrid, fmt.Errorf("cell(%d,%d): %w", i, j, err))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// ParseCells builds a Vector from cell text; same rules as ParseGrid.
func ParseCells(cells []string) (Vector, error) { return ParseCellsFunc(cells, ParseNumber) }

// ParseCellsFunc is ParseCells with a caller-supplied cell parser.
func ParseCellsFunc(cells []string, parse CellParser) (Vector, error) {
	if len(cells) == 0 {
		return nil, matrixErrorf(opParseCells, ErrEmpty)
	}
	out := make(Vector, len(cells))
	var err error
	for i, cell := range cells {
		if out[i], err = parseCell(cell, parse); err != nil {
			return nil, matrixErrorf(opParseCells, fmt.Errorf("cell(%d): %w", i, err))
		}
	}

	return out, nil
}

// parseCell applies the blank-cell rule, then parse, then the finite-value policy.
func parseCell(text string, parse CellParser) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	v, err := parse(text)
	if err != nil {
		return 0, err
	}
	if err = ValidateFinite(v); err != nil {
		return 0, err
	}

	return v, nil
}

// FromRows builds a Dense from float rows (copied).
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrNaNInf.
func FromRows(rows [][]float64) (*Dense, error) {
	r, c, err := gridShape(len(rows), func(i int) int { return len(rows[i]) })
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if err = ValidateFinite(row...); err != nil {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i, err))
		}
		copy(out.data[i*c:(i+1)*c], row)
	}

	return out, nil
}

// FromColumns builds the n×k matrix whose columns are the given vectors.
//
// Errors:
//   - ErrEmpty (no vectors or an empty vector), ErrDimensionMismatch (lengths differ), ErrNaNInf.
func FromColumns(cols []Vector) (*Dense, error) {
	k := len(cols)
	if k == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opFromColumns, ErrEmpty)
	}
	n := len(cols[0])
	out, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	for j, col := range cols {
		if len(col) != n {
			return nil, matrixErrorf(opFromColumns, fmt.Errorf("column %d: %w", j, ErrDimensionMismatch))
		}
		if err = ValidateFinite(col...); err != nil {
			return nil, matrixErrorf(opFromColumns, fmt.Errorf("column %d: %w", j, err))
		}
		for i, v := range col {
			out.data[i*k+j] = v
		}
	}

	return out, nil
}

// WithColumn returns a copy of m whose column j is replaced by col.
// This is the A_i construction of Cramer's rule.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad j), ErrDimensionMismatch (len(col) != rows).
func WithColumn(m Matrix, j int, col Vector) (*Dense, error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}
	if j < 0 || j >= src.c {
		return nil, matrixErrorf(opWithColumn, ErrOutOfRange)
	}
	if err = ValidateVecLen(col, src.r); err != nil {
		return nil, matrixErrorf(opWithColumn, err)
	}
	out := src.clone()
	for i, v := range col {
		out.data[i*out.c+j] = v
	}

	return out, nil
}

// ToRows returns the matrix contents as freshly allocated rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// gridShape validates a row count plus per-row lengths and returns (rows, cols).
func gridShape(rows int, rowLen func(i int) int) (int, int, error) {
	if rows == 0 {
		return 0, 0, ErrEmpty
	}
	cols := rowLen(0)
	if cols == 0 {
		return 0, 0, ErrEmpty
	}
	for i := 1; i < rows; i++ {
		if rowLen(i) != cols {
			return 0, 0, fmt.Errorf("row %d: %w", i, ErrRagged)
		}
	}

	return rows, cols, nil
}
