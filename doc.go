// Package calcengine is the computational core of an educational math tool:
// it evaluates expressions, finds roots of single-variable functions and
// works through small linear-algebra problems, returning every result with a
// LaTeX notation string that shows the working.
//
// 🚀 What is inside?
//
//	• Expressions: scalars, vectors and matrices, LaTeX-style input, derivatives
//	• Roots: bisection, false position, Newton-Raphson, secant, with full traces
//	• Determinants: cofactor expansion and Sarrus's rule (which must agree)
//	• Linear systems: Cramer's rule, Gauss-Jordan, combination and dependency
//	• Notation: LaTeX strings for every result, ready for MathJax or KaTeX
//
// ✨ Why this shape?
//
//   - Pure and synchronous – every call builds its own state and returns it
//   - Bounded – iteration caps, expression depth and cofactor size are clamped
//   - Typed failures – sentinel errors per package, one taxonomy in engine
//
// Packages, leaves first:
//
//	matrix/      — Dense matrices, vectors, elimination, cell parsing
//	expr/        — lexer, parser, evaluator, symbolic derivative
//	determinant/ — cofactor, Sarrus, elimination
//	convergence/ — bounded iteration driver and step trace
//	roots/       — the four root-finding methods
//	linsys/      — Cramer, Gauss-Jordan, combination, dependency
//	notation/    — LaTeX rendering of every result type
//	engine/      — request dispatch, text operands, error taxonomy, logging
//
// Quick example:
//
//	e := engine.New()
//	r, _ := e.Bisection("x^2 - 2", "0", "2", "1e-6", 100)
//	fmt.Println(r.Method.Root) // ≈ 1.41421356
//
//	go run ./cmd/calcengine -op bisection -f "x^2-2" -a 0 -b 2
package calcengine
