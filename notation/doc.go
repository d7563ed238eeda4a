// SPDX-License-Identifier: MIT

// Package notation renders engine results as LaTeX-flavoured strings for a
// MathJax/KaTeX display. Lines are separated by `\\ ` and free text is wrapped
// in escaped \text{} groups. Numbers print with at most eight decimals and no
// trailing zeros.
//
// Every renderer is a pure function of its input; none of them logs or fails.
package notation
