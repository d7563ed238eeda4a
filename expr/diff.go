// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// Diff returns d(n)/d(variable) as a new tree; n is not modified.
// Functions without a rule (det, inv, dot, …) yield ErrNoDerivative.
// The result is not simplified; pass it through Simplify for display.
func Diff(n Node, variable string) (Node, error) {
	switch t := n.(type) {
	case *Number:
		return num(0), nil
	case *Ident:
		if t.Name == variable {
			return num(1), nil
		}
		return num(0), nil
	case *Unary:
		d, err := Diff(t.X, variable)
		if err != nil {
			return nil, err
		}
		return neg(d), nil
	case *Binary:
		return diffBinary(t, variable)
	case *Call:
		return diffCall(t, variable)
	default:
		return nil, fmt.Errorf("%w: %T", ErrNoDerivative, n)
	}
}

func diffBinary(b *Binary, x string) (Node, error) {
	du, err := Diff(b.L, x)
	if err != nil {
		return nil, err
	}
	dv, err := Diff(b.R, x)
	if err != nil {
		return nil, err
	}
	u, v := b.L, b.R

	switch b.Op {
	case '+', '-':
		return bin(b.Op, du, dv), nil
	case '*':
		return bin('+', bin('*', du, v), bin('*', u, dv)), nil
	case '/':
		return bin('/', bin('-', bin('*', du, v), bin('*', u, dv)), bin('^', v, num(2))), nil
	}

	// '^'
	switch {
	case !dependsOn(v, x):
		// d(u^c) = c·u^(c-1)·u'
		return bin('*', bin('*', v, bin('^', u, bin('-', v, num(1)))), du), nil
	case !dependsOn(u, x):
		// d(a^v) = a^v·ln(a)·v'
		return bin('*', bin('*', b, call("ln", u)), dv), nil
	default:
		// d(u^v) = u^v·(v'·ln(u) + v·u'/u)
		return bin('*', b, bin('+', bin('*', dv, call("ln", u)), bin('/', bin('*', v, du), u))), nil
	}
}

func diffCall(c *Call, x string) (Node, error) {
	if c.Fn == "sign" {
		return num(0), nil
	}
	if len(c.Args) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDerivative, c.Fn)
	}
	u := c.Args[0]
	du, err := Diff(u, x)
	if err != nil {
		return nil, err
	}

	var outer Node
	switch c.Fn {
	case "sin":
		outer = call("cos", u)
	case "cos":
		outer = neg(call("sin", u))
	case "tan":
		outer = bin('/', num(1), bin('^', call("cos", u), num(2)))
	case "asin":
		outer = bin('/', num(1), call("sqrt", bin('-', num(1), bin('^', u, num(2)))))
	case "acos":
		outer = neg(bin('/', num(1), call("sqrt", bin('-', num(1), bin('^', u, num(2))))))
	case "atan":
		outer = bin('/', num(1), bin('+', num(1), bin('^', u, num(2))))
	case "sinh":
		outer = call("cosh", u)
	case "cosh":
		outer = call("sinh", u)
	case "tanh":
		outer = bin('/', num(1), bin('^', call("cosh", u), num(2)))
	case "exp":
		outer = c
	case "ln":
		outer = bin('/', num(1), u)
	case "log":
		outer = bin('/', num(1), bin('*', u, call("ln", num(10))))
	case "sqrt":
		outer = bin('/', num(1), bin('*', num(2), c))
	case "abs":
		outer = call("sign", u)
	case "root":
		if dependsOn(c.Args[1], x) {
			return nil, fmt.Errorf("%w: root with variable index", ErrNoDerivative)
		}
		outer = bin('/', c, bin('*', c.Args[1], u))
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoDerivative, c.Fn)
	}

	return bin('*', outer, du), nil
}

// dependsOn reports whether n references variable.
func dependsOn(n Node, variable string) bool {
	switch t := n.(type) {
	case *Ident:
		return t.Name == variable
	case *Unary:
		return dependsOn(t.X, variable)
	case *Binary:
		return dependsOn(t.L, variable) || dependsOn(t.R, variable)
	case *Call:
		for _, a := range t.Args {
			if dependsOn(a, variable) {
				return true
			}
		}
	}
	return false
}

func num(v float64) Node                { return &Number{Value: v} }
func neg(x Node) Node                   { return &Unary{Op: '-', X: x} }
func bin(op byte, l, r Node) Node       { return &Binary{Op: op, L: l, R: r} }
func call(fn string, args ...Node) Node { return &Call{Fn: fn, Args: args} }

// Simplify folds constant subtrees and applies the identities
// x+0, x-0, 0-x, x·1, x·0, x/1, 0/x, x^1, x^0 and --x. Scalar algebra is assumed.
func Simplify(n Node) Node {
	switch t := n.(type) {
	case *Unary:
		x := Simplify(t.X)
		switch xt := x.(type) {
		case *Number:
			return num(-xt.Value)
		case *Unary:
			return xt.X
		}
		return neg(x)
	case *Binary:
		return simplifyBinary(t.Op, Simplify(t.L), Simplify(t.R))
	case *Call:
		args := make([]Node, len(t.Args))
		for i, a := range t.Args {
			args[i] = Simplify(a)
		}
		return &Call{Fn: t.Fn, Args: args}
	default:
		return n
	}
}

func simplifyBinary(op byte, l, r Node) Node {
	ln, lok := l.(*Number)
	rn, rok := r.(*Number)
	if lok && rok {
		if v, ok := fold(op, ln.Value, rn.Value); ok {
			return num(v)
		}
	}
	is := func(ok bool, n *Number, v float64) bool { return ok && n.Value == v }

	switch op {
	case '+':
		if is(lok, ln, 0) {
			return r
		}
		if is(rok, rn, 0) {
			return l
		}
	case '-':
		if is(rok, rn, 0) {
			return l
		}
		if is(lok, ln, 0) {
			return Simplify(neg(r))
		}
	case '*':
		if is(lok, ln, 0) || is(rok, rn, 0) {
			return num(0)
		}
		if is(lok, ln, 1) {
			return r
		}
		if is(rok, rn, 1) {
			return l
		}
		if is(lok, ln, -1) {
			return Simplify(neg(r))
		}
	case '/':
		if is(rok, rn, 1) {
			return l
		}
		if is(lok, ln, 0) && !is(rok, rn, 0) {
			return num(0)
		}
	case '^':
		if is(rok, rn, 1) {
			return l
		}
		if is(rok, rn, 0) {
			return num(1)
		}
	}

	return bin(op, l, r)
}

// fold evaluates a numeric binary node, refusing non-finite results.
func fold(op byte, a, b float64) (float64, bool) {
	var v float64
	switch op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b == 0 {
			return 0, false
		}
		v = a / b
	case '^':
		v = math.Pow(a, b)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
