// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"strings"
)

// Node is an immutable AST node. String renders re-parsable infix text.
type Node interface {
	String() string
	node()
}

// Number is a numeric literal.
type Number struct{ Value float64 }

// Ident is a variable or constant reference.
type Ident struct{ Name string }

// Unary is a prefix negation; Op is always '-'.
type Unary struct {
	Op byte
	X  Node
}

// Binary is an infix operation; Op is one of + - * / ^.
type Binary struct {
	Op   byte
	L, R Node
}

// Call is a built-in function application.
type Call struct {
	Fn   string
	Args []Node
}

func (*Number) node() {}
func (*Ident) node()  {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}

// Binding strengths used by the printers.
const (
	precSum   = 1
	precProd  = 2
	precUnary = 3
	precPow   = 4
	precAtom  = 5
)

func precedence(n Node) int {
	switch t := n.(type) {
	case *Number:
		if t.Value < 0 {
			return precUnary
		}
		return precAtom
	case *Unary:
		return precUnary
	case *Binary:
		return opPrecedence(t.Op)
	default:
		return precAtom
	}
}

func opPrecedence(op byte) int {
	switch op {
	case '+', '-':
		return precSum
	case '*', '/':
		return precProd
	default:
		return precPow
	}
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (n *Number) String() string { return formatNumber(n.Value) }
func (n *Ident) String() string  { return n.Name }

func (n *Unary) String() string {
	return string(n.Op) + wrapIf(n.X.String(), precedence(n.X) < precUnary)
}

func (n *Binary) String() string {
	p := opPrecedence(n.Op)
	lp, rp := precedence(n.L), precedence(n.R)
	left := wrapIf(n.L.String(), lp < p || (n.Op == '^' && lp <= p))
	right := wrapIf(n.R.String(), rp < p || rp == precUnary || (rp == p && n.Op != '^' && n.Op != '+' && n.Op != '*'))
	if n.Op == '^' {
		return left + "^" + right
	}
	return left + " " + string(n.Op) + " " + right
}

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return n.Fn + "(" + strings.Join(args, ", ") + ")"
}

func wrapIf(s string, cond bool) string {
	if cond {
		return "(" + s + ")"
	}
	return s
}

// LaTeX renders n as display LaTeX.
func LaTeX(n Node) string {
	switch t := n.(type) {
	case *Number:
		return formatNumber(t.Value)
	case *Ident:
		switch t.Name {
		case "pi":
			return `\pi`
		default:
			if name, sub, ok := strings.Cut(t.Name, "_"); ok {
				return name + "_{" + sub + "}"
			}
			return t.Name
		}
	case *Unary:
		return "-" + latexWrapIf(LaTeX(t.X), precedence(t.X) < precUnary)
	case *Binary:
		return binaryLaTeX(t)
	case *Call:
		return callLaTeX(t)
	default:
		return ""
	}
}

func binaryLaTeX(b *Binary) string {
	p := opPrecedence(b.Op)
	lp, rp := precedence(b.L), precedence(b.R)
	switch b.Op {
	case '/':
		return `\frac{` + LaTeX(b.L) + `}{` + LaTeX(b.R) + `}`
	case '^':
		return latexWrapIf(LaTeX(b.L), lp <= p) + "^{" + LaTeX(b.R) + "}"
	case '*':
		return latexWrapIf(LaTeX(b.L), lp < p) + ` \cdot ` + latexWrapIf(LaTeX(b.R), rp < p || rp == precUnary)
	default:
		right := latexWrapIf(LaTeX(b.R), rp < p || rp == precUnary || (rp == p && b.Op == '-'))
		return LaTeX(b.L) + " " + string(b.Op) + " " + right
	}
}

func callLaTeX(c *Call) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = LaTeX(a)
	}
	switch c.Fn {
	case "sqrt":
		return `\sqrt{` + args[0] + `}`
	case "root":
		return `\sqrt[` + args[1] + `]{` + args[0] + `}`
	case "abs":
		return `\left|` + args[0] + `\right|`
	case "sin", "cos", "tan", "sinh", "cosh", "tanh", "exp", "ln", "log", "det":
		return `\` + c.Fn + `\left(` + args[0] + `\right)`
	case "asin", "acos", "atan":
		return `\arc` + c.Fn[1:] + `\left(` + args[0] + `\right)`
	default:
		return `\operatorname{` + c.Fn + `}\left(` + strings.Join(args, ", ") + `\right)`
	}
}

func latexWrapIf(s string, cond bool) string {
	if cond {
		return `\left(` + s + `\right)`
	}
	return s
}
