// SPDX-License-Identifier: MIT

package notation

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/matrix"
)

// Newline separates display lines.
const Newline = `\\ `

// Precision is the number of decimals printed by Number.
const Precision = 8

var textEscaper = strings.NewReplacer(
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`~`, `\~{}`,
	`_`, `\_`,
	`^`, `\^{}`,
	`{`, `\{`,
	`}`, `\}`,
	`>`, `$>$`,
	`<`, `$<$`,
	`\`, `$\backslash$`,
)

// Number formats x with Precision decimals, trimming trailing zeros.
// Negative zero prints as 0; NaN and ±Inf print as \text{NaN} and ±\infty.
func Number(x float64) string {
	switch {
	case math.IsNaN(x):
		return `\text{NaN}`
	case math.IsInf(x, 1):
		return `\infty`
	case math.IsInf(x, -1):
		return `-\infty`
	}
	s := strconv.FormatFloat(x, 'f', Precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}

// paren wraps negative numbers in \left( \right) so they read as factors.
func paren(x float64) string {
	s := Number(x)
	if strings.HasPrefix(s, "-") {
		return `\left(` + s + `\right)`
	}
	return s
}

// Text escapes msg and wraps each of its lines in \text{}.
func Text(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, l := range lines {
		lines[i] = `\text{` + textEscaper.Replace(l) + `}`
	}

	return strings.Join(lines, Newline)
}

// Matrix renders m as a bracketed array.
func Matrix(m matrix.Matrix) string { return Augmented(m, -1) }

// Augmented renders m with a vertical rule after column split (an augmented
// matrix [A | b] uses split = cols(A)). A split outside (0, cols) draws no rule.
func Augmented(m matrix.Matrix, split int) string {
	if m == nil {
		return `\left[\right]`
	}
	r, c := m.Rows(), m.Cols()
	var b strings.Builder
	b.WriteString(`\left[\begin{array}{`)
	if split > 0 && split < c {
		b.WriteString(strings.Repeat("c", split) + "|" + strings.Repeat("c", c-split))
	} else {
		b.WriteString(strings.Repeat("c", c))
	}
	b.WriteString("}")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				b.WriteString(" & ")
			}
			v, _ := m.At(i, j)
			b.WriteString(Number(v))
		}
		b.WriteString(`\\`)
	}
	b.WriteString(`\end{array}\right]`)

	return b.String()
}

// Vector renders v as a column bmatrix.
func Vector(v matrix.Vector) string {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = Number(x)
	}

	return `\begin{bmatrix}` + strings.Join(cells, ` \\ `) + `\end{bmatrix}`
}

// Value renders an evaluated expression result.
func Value(v expr.Value) string {
	switch v.Kind() {
	case expr.KindScalar:
		x, _ := v.Float()
		return Number(x)
	case expr.KindVector:
		x, _ := v.Vector()
		return Vector(x)
	case expr.KindMatrix:
		x, _ := v.Matrix()
		return Matrix(x)
	default:
		return Text("invalid value")
	}
}

// Equation renders "n = v" for an evaluated expression.
func Equation(n expr.Node, v expr.Value) string {
	if n == nil {
		return Value(v)
	}
	return expr.LaTeX(n) + " = " + Value(v)
}

// lines accumulates display lines.
type lines []string

func (l *lines) add(parts ...string) { *l = append(*l, strings.Join(parts, "")) }

func (l lines) String() string { return strings.Join(l, Newline) }
