// SPDX-License-Identifier: MIT

// Package expr tokenizes, parses and evaluates infix math expressions over
// scalar, vector and matrix bindings.
//
// Syntax (informal):
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/" | \cdot | \times | \div | <implicit>) unary }
//	unary   := ("-" | "+") unary | power
//	power   := primary [ "^" unary ]            (right-associative)
//	primary := number | name | name "(" args ")" | "(" expr ")" | "{" expr "}"
//	         | "[" expr "]" | \frac A B | \left( expr \right) | \left| expr \right|
//	         | \sqrt[n]{x} | \sin x | ...
//
// Implicit multiplication applies between adjacent operands: 2x, 3(x+1),
// (a)(b), 2\sin(x). Identifiers are maximal runs of letters and digits
// (xy is one name), optionally followed by a subscript (x_1, x_{12}).
//
// Evaluation is a post-order walk. Binary operators are resolved through a
// table keyed by (operator, left kind, right kind); a missing entry is a
// dimension mismatch. In particular vector*vector is rejected: use dot(u, v).
//
// Special powers: A^T and A^t transpose a matrix or vector, A^{-1} inverts a
// square matrix, A^k (integer k) is a repeated product.
//
// Failures are *ParseError (with byte offset) and *EvalError; both match the
// package sentinels through errors.Is (ErrParse, ErrUndefinedSymbol,
// ErrDimensionMismatch, ErrDomain, ErrTooDeep).
//
// Diff and Simplify provide symbolic differentiation over the same AST; a
// Function bundles a compiled single-variable expression with its derivative.
package expr
