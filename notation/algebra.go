// SPDX-License-Identifier: MIT

package notation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
)

// Determinant renders det(m) = value. When terms are given (see
// determinant.Expansion) the first-row cofactor expansion is shown too.
func Determinant(m matrix.Matrix, r *determinant.Result, terms []determinant.Term) string {
	if r == nil {
		return ""
	}
	var out lines
	out.add(Text("Determinant by "+r.Strategy.String()+":"))
	lhs := `\det ` + Matrix(m)
	if len(terms) > 1 {
		out.add(lhs, " = ", expansion(terms))
		lhs = ""
	}
	out.add(lhs, " = ", Number(r.Value))
	if r.Singular {
		out.add(Text("The matrix is singular."))
	}

	return out.String()
}

// expansion renders Σ (−1)^j · a_0j · M_0j.
func expansion(terms []determinant.Term) string {
	var b strings.Builder
	for i, t := range terms {
		switch {
		case t.Sign < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(paren(t.Entry) + ` \cdot ` + paren(t.Minor))
	}

	return b.String()
}

func unknown(i int) string { return "x_{" + strconv.Itoa(i+1) + "}" }

// System renders a classified linear system: the coefficient determinant,
// Cramer quotients when present, and the outcome.
func System(r *linsys.Result) string {
	if r == nil {
		return ""
	}
	var out lines
	system(&out, r)
	return out.String()
}

func system(out *lines, r *linsys.Result) {
	if r.HasDeterminant {
		out.add(`\det(A) = `, Number(r.Determinant))
	}
	switch r.Outcome {
	case linsys.OutcomeUnique:
		out.add(Text("Unique solution:"))
		for i, v := range r.Values {
			if i < len(r.ColumnDeterminants) {
				out.add(unknown(i), ` = \frac{\det(A_{`, strconv.Itoa(i+1), `})}{\det(A)} = \frac{`,
					Number(r.ColumnDeterminants[i]), "}{", Number(r.Determinant), "} = ", Number(v))
				continue
			}
			out.add(unknown(i), " = ", Number(v))
		}
	case linsys.OutcomeNoSolution:
		out.add(Text("No solution: rank(A) = "+strconv.Itoa(r.Rank)+
			" < rank([A|b]) = "+strconv.Itoa(r.AugmentedRank)+"."))
	case linsys.OutcomeInfinite:
		out.add(Text("Infinitely many solutions: rank " + strconv.Itoa(r.Rank) +
			" with " + strconv.Itoa(r.Unknowns) + " unknowns."))
		if len(r.Values) > 0 {
			out.add(Text("Particular solution (free variables = 0): "), Vector(r.Values))
		}
	default:
		out.add(Text("The system is singular."))
	}
}

// Reduction renders the RREF of an augmented system followed by its
// classification and free variables.
func Reduction(r *linsys.Reduction) string {
	if r == nil {
		return ""
	}
	var out lines
	out.add(Text("Reduced row echelon form:"))
	out.add(Augmented(r.RREF, r.Unknowns))
	system(&out, &r.Result)
	if len(r.Free) > 0 {
		free := make([]string, len(r.Free))
		for i, j := range r.Free {
			free[i] = unknown(j)
		}
		out.add(Text("Free variables: "), strings.Join(free, ", "))
	}

	return out.String()
}

// Dependency renders a dependency test: rank against count and, for dependent
// sets, the null combination found.
func Dependency(d *linsys.Dependency) string {
	if d == nil {
		return ""
	}
	var out lines
	if d.HasDeterminant {
		out.add(`\det(A) = `, Number(d.Determinant))
	}
	out.add(Text("rank = "+strconv.Itoa(d.Rank)+", vectors = "+strconv.Itoa(d.Count)))
	if !d.Dependent {
		out.add(Text("The vectors are linearly independent."))
		return out.String()
	}
	out.add(Text("The vectors are linearly dependent:"))
	terms := make([]string, 0, len(d.Witness))
	for i, w := range d.Witness {
		if w == 0 {
			continue
		}
		terms = append(terms, paren(w)+` \cdot v_{`+strconv.Itoa(i+1)+`}`)
	}
	out.add(strings.Join(terms, " + "), ` = \vec{0}`)

	return out.String()
}
