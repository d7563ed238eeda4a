// SPDX-License-Identifier: MIT

// Package engine is the synchronous entry point of calcengine.
//
// A caller either uses the typed methods of *Engine (Evaluate, Cramer,
// Bisection, ...) or sends a Request naming an Operation to Engine.Call.
// Operands arrive as text exactly as a form would submit them: matrices as
// rectangular grids of cells, vectors as cell lists, scalars as strings.
// Blank cells read as 0; any cell or scalar may also be a constant
// expression such as "\frac12" or "pi/4".
//
// Every successful call yields a *Response carrying the typed result and a
// LaTeX notation string. Failures are *Error values whose Kind places them in
// the engine taxonomy (see ErrorKind and KindOf). Some failures still carry a
// Response: a root-finder that stopped on a zero derivative returns the trace
// recorded so far, and a linear system without a unique solution returns its
// classification.
//
// Iteration caps are clamped to the configured ceiling, expression nesting is
// bounded, and cofactor expansion is limited to small matrices, so no request
// can run away. An Engine holds only immutable configuration and is safe for
// concurrent use.
package engine
