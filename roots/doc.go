// SPDX-License-Identifier: MIT

// Package roots finds roots of single-variable functions with the four
// classical iterative methods:
//
//	Method          Inputs   Next approximation                    Error metric
//	Bisection       [a, b]   c = (a+b)/2                           |b − a| of the bisected bracket
//	FalsePosition   [a, b]   c = (a·f(b) − b·f(a)) / (f(b) − f(a)) |f(c)|
//	NewtonRaphson   x0       x − f(x)/f′(x)                        |x_{n+1} − x_n|
//	Secant          x0, x1   x1 − f(x1)(x1 − x0)/(f(x1) − f(x0))   |x_{n+1} − x_n|
//
// Every method compiles the expression text with package expr, then hands a
// step closure to convergence.Run. The run stops when the error metric drops
// below Options.Tolerance, when f is exactly zero at the new approximation,
// or after Options.MaxIterations steps (clamped to Options.Ceiling).
//
// Bracketing methods require f(a) and f(b) of opposite sign (ErrInvalidBracket
// otherwise); an endpoint where f is exactly 0 is returned immediately with
// zero steps. Newton's method fails with ErrZeroDerivative when |f′(x)| falls
// below Options.Epsilon, and damps a step that leaves the domain of f by
// halving it toward x_n up to ten times. The secant method fails with
// ErrDegenerateSecant when the two function values coincide.
//
// Once the expression compiles, every method returns a non-nil *MethodResult,
// also alongside an error, carrying the steps recorded so far.
package roots
