// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/calcengine/matrix"
)

// DefaultVariable is the free variable of a Function when none is given.
const DefaultVariable = "x"

// Function is a compiled single-variable scalar function f(variable).
// It is immutable and safe for concurrent use.
type Function struct {
	src      string
	variable string
	node     Node
	opts     []Option
}

// NewFunction parses src and checks that every free symbol is either variable
// or a constant (pi, e). Unknown symbols are reported here as an *EvalError
// wrapping ErrUndefinedSymbol, before any evaluation happens.
func NewFunction(src, variable string, opts ...Option) (*Function, error) {
	if variable == "" {
		variable = DefaultVariable
	}
	n, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}

	return newFunction(src, variable, n, opts)
}

func newFunction(src, variable string, n Node, opts []Option) (*Function, error) {
	for _, name := range Symbols(n) {
		if name == variable {
			continue
		}
		if _, ok := constants[name]; !ok {
			return nil, undefined(name)
		}
	}

	return &Function{src: src, variable: variable, node: n, opts: opts}, nil
}

// Eval returns f(x). A non-scalar result is a dimension mismatch.
func (f *Function) Eval(x float64) (float64, error) {
	v, err := Eval(f.node, Env{f.variable: Scalar(x)}, f.opts...)
	if err != nil {
		return 0, err
	}
	s, ok := v.Float()
	if !ok {
		return 0, &EvalError{Op: f.variable, Err: fmt.Errorf("%w: function yields a %s", ErrDimensionMismatch, v.kind)}
	}

	return s, nil
}

// Derivative returns f′ by symbolic differentiation followed by Simplify.
// Expressions that use a function without a rule yield ErrNoDerivative.
func (f *Function) Derivative() (*Function, error) {
	d, err := Diff(f.node, f.variable)
	if err != nil {
		return nil, err
	}
	d = Simplify(d)

	return newFunction(d.String(), f.variable, d, f.opts)
}

// Node returns the parsed tree.
func (f *Function) Node() Node { return f.node }

// Source returns the text the function was compiled from.
func (f *Function) Source() string { return f.src }

// Variable returns the free variable name.
func (f *Function) Variable() string { return f.variable }

// String renders the tree as infix text.
func (f *Function) String() string { return f.node.String() }

// LaTeX renders the tree as LaTeX.
func (f *Function) LaTeX() string { return LaTeX(f.node) }

// Symbols returns the distinct identifiers referenced by n, sorted.
func Symbols(n Node) []string {
	seen := make(map[string]struct{})
	collectSymbols(n, seen)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func collectSymbols(n Node, seen map[string]struct{}) {
	switch t := n.(type) {
	case *Ident:
		seen[t.Name] = struct{}{}
	case *Unary:
		collectSymbols(t.X, seen)
	case *Binary:
		collectSymbols(t.L, seen)
		// The T in A^T is an operator, not a symbol.
		if id, ok := t.R.(*Ident); !(ok && t.Op == '^' && (id.Name == "T" || id.Name == "t")) {
			collectSymbols(t.R, seen)
		}
	case *Call:
		for _, a := range t.Args {
			collectSymbols(a, seen)
		}
	}
}

// ParseScalar reads a scalar parameter. Plain decimals and p/q fractions are
// accepted directly; anything else must be a constant expression such as
// \frac{1}{2} or pi/4. Every failure is a *ParseError.
func ParseScalar(text string, opts ...Option) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &ParseError{Pos: 0, Msg: "empty scalar"}
	}
	if v, err := matrix.ParseNumber(text); err == nil {
		return v, nil
	}

	n, err := Parse(text, opts...)
	if err != nil {
		return 0, err
	}
	v, err := Eval(n, nil, opts...)
	if err != nil {
		return 0, &ParseError{Pos: 0, Msg: fmt.Sprintf("%q is not a constant", text), Err: err}
	}
	s, ok := v.Float()
	if !ok {
		return 0, &ParseError{Pos: 0, Msg: fmt.Sprintf("%q is a %s, not a scalar", text, v.kind)}
	}

	return s, nil
}
