// SPDX-License-Identifier: MIT

package notation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/roots"
)

// column is one table column of an iteration trace.
type column struct {
	head string
	cell func(s convergence.Step) string
}

func num(f func(s convergence.Step) float64) func(convergence.Step) string {
	return func(s convergence.Step) string { return Number(f(s)) }
}

var (
	bracketColumns = []column{
		{"x_l", num(func(s convergence.Step) float64 { return s.Lower })},
		{"x_u", num(func(s convergence.Step) float64 { return s.Upper })},
		{"x_r", num(func(s convergence.Step) float64 { return s.X })},
		{"E_a", num(func(s convergence.Step) float64 { return s.Error })},
		{"f(x_l)", num(func(s convergence.Step) float64 { return s.FLower })},
		{"f(x_u)", num(func(s convergence.Step) float64 { return s.FUpper })},
		{"f(x_r)", num(func(s convergence.Step) float64 { return s.FX })},
	}
	newtonColumns = []column{
		{"x_i", num(func(s convergence.Step) float64 { return s.Lower })},
		{"x_{i+1}", num(func(s convergence.Step) float64 { return s.X })},
		{"E_a", num(func(s convergence.Step) float64 { return s.Error })},
		{"f(x_i)", num(func(s convergence.Step) float64 { return s.FLower })},
		{"f'(x_i)", num(func(s convergence.Step) float64 { return s.Slope })},
	}
	secantColumns = []column{
		{"x_{i-1}", num(func(s convergence.Step) float64 { return s.Lower })},
		{"x_i", num(func(s convergence.Step) float64 { return s.Upper })},
		{"f(x_{i-1})", num(func(s convergence.Step) float64 { return s.FLower })},
		{"f(x_i)", num(func(s convergence.Step) float64 { return s.FUpper })},
		{"x_{i+1}", num(func(s convergence.Step) float64 { return s.X })},
		{"E_a", num(func(s convergence.Step) float64 { return s.Error })},
	}
)

var methodTitles = map[string]string{
	roots.MethodBisection:     "Bisection method",
	roots.MethodFalsePosition: "False position method (regula falsi)",
	roots.MethodNewtonRaphson: "Newton-Raphson method",
	roots.MethodSecant:        "Secant method",
}

func methodColumns(method string) []column {
	switch method {
	case roots.MethodNewtonRaphson:
		return newtonColumns
	case roots.MethodSecant:
		return secantColumns
	default:
		return bracketColumns
	}
}

// Title returns the display title of a root-finding method.
func Title(method string) string {
	if t, ok := methodTitles[method]; ok {
		return t
	}
	return method
}

// Method renders a root-finding run: title, f(x), the derivative for Newton,
// the iteration table, the root line, the stop criterion and the
// convergence status "k/max". Iterations are numbered from 1.
func Method(r *roots.MethodResult) string {
	if r == nil {
		return ""
	}
	var out lines
	out.add(Text(Title(r.Method)))
	if r.Function != nil {
		out.add(Text("f("+r.Function.Variable()+") = "), r.Function.LaTeX())
	}
	if r.Derivative != nil {
		out.add(Text("f'("+r.Derivative.Variable()+") = "), r.Derivative.LaTeX())
	}
	if len(r.Steps) > 0 {
		out.add(table(methodColumns(r.Method), r.Steps))
	}

	if r.HasRoot {
		out.add(Text("Approximate root: "), `x \approx `, Number(r.Root), `, |f(x)| \approx `, Number(abs(r.FRoot)))
	} else {
		out.add(Text("No approximation was computed."))
	}
	last := 0.0
	if n := len(r.Steps); n > 0 {
		last = r.Steps[n-1].Error
	}
	out.add(Text("Stop criterion: tolerance = "), Number(r.Tolerance), Text(", error = "), Number(last))
	status := "no"
	if r.Converged {
		status = "yes"
	}
	out.add(Text("Converged: "+status+", iterations used = "), strconv.Itoa(r.Iterations)+"/"+strconv.Itoa(r.MaxIterations))

	return out.String()
}

// table renders steps as a ruled array with a leading 1-based "i" column.
func table(cols []column, steps []convergence.Step) string {
	var b strings.Builder
	b.WriteString(`\begin{array}{|c|`)
	for range cols {
		b.WriteString("c|")
	}
	b.WriteString(`}\hline i`)
	for _, c := range cols {
		b.WriteString(" & " + c.head)
	}
	b.WriteString(` \\\hline `)
	for _, s := range steps {
		b.WriteString(strconv.Itoa(s.Index + 1))
		for _, c := range cols {
			b.WriteString(" & " + c.cell(s))
		}
		b.WriteString(` \\ `)
	}
	b.WriteString(`\hline\end{array}`)

	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
