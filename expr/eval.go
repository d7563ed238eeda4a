// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// constants are resolved after the environment, so a binding may shadow them.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Evaluate parses src and evaluates it against env.
func Evaluate(src string, env Env, opts ...Option) (Value, error) {
	n, err := Parse(src, opts...)
	if err != nil {
		return Value{}, err
	}
	return Eval(n, env, opts...)
}

// Eval evaluates n post-order against env. env is only read.
//
// Errors are *EvalError wrapping ErrUndefinedSymbol, ErrDimensionMismatch,
// ErrDomain or ErrTooDeep. A result containing NaN or ±Inf is a domain error.
func Eval(n Node, env Env, opts ...Option) (Value, error) {
	e := &evaluator{env: env, o: NewOptions(opts...)}
	return e.eval(n)
}

type evaluator struct {
	env   Env
	o     Options
	depth int
}

func (e *evaluator) eval(n Node) (Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.o.maxEvalDepth {
		return Value{}, &EvalError{Op: "eval", Err: fmt.Errorf("%w: recursion exceeds %d", ErrTooDeep, e.o.maxEvalDepth)}
	}

	v, op, err := e.evalNode(n)
	if err != nil {
		return Value{}, err
	}
	if !v.finite() {
		return Value{}, domain(op, "non-finite result")
	}

	return v, nil
}

func (e *evaluator) evalNode(n Node) (Value, string, error) {
	switch t := n.(type) {
	case *Number:
		return Scalar(t.Value), "number", nil
	case *Ident:
		v, err := e.lookup(t.Name)
		return v, t.Name, err
	case *Unary:
		v, err := e.negate(t)
		return v, "-", err
	case *Binary:
		v, err := e.binary(t)
		return v, string(t.Op), err
	case *Call:
		v, err := e.call(t)
		return v, t.Fn, err
	default:
		return Value{}, "eval", &EvalError{Op: "eval", Err: fmt.Errorf("%w: unknown node %T", ErrEvaluation, n)}
	}
}

func (e *evaluator) lookup(name string) (Value, error) {
	if v, ok := e.env[name]; ok {
		if v.kind == 0 {
			return Value{}, undefined(name)
		}
		return v, nil
	}
	if c, ok := constants[name]; ok {
		return Scalar(c), nil
	}
	return Value{}, undefined(name)
}

func (e *evaluator) negate(u *Unary) (Value, error) {
	x, err := e.eval(u.X)
	if err != nil {
		return Value{}, err
	}
	switch x.kind {
	case KindScalar:
		return Scalar(-x.s), nil
	case KindVector:
		return scaleVec("-", x.v, -1)
	default:
		return scaleMat("-", x.m, -1)
	}
}

func (e *evaluator) binary(b *Binary) (Value, error) {
	l, err := e.eval(b.L)
	if err != nil {
		return Value{}, err
	}

	// A^T and A^t transpose any non-scalar, whatever T is bound to.
	if b.Op == '^' && l.kind != KindScalar {
		if id, ok := b.R.(*Ident); ok && (id.Name == "T" || id.Name == "t") {
			return transpose("^T", l)
		}
	}

	r, err := e.eval(b.R)
	if err != nil {
		return Value{}, err
	}
	if b.Op == '^' && l.kind == KindMatrix && r.kind == KindScalar {
		return matrixPower(l.m, r.s)
	}

	fn, ok := dispatch[opKey{op: b.Op, l: l.kind, r: r.kind}]
	if !ok {
		return Value{}, mismatch(string(b.Op), l.kind, r.kind)
	}

	return fn(l, r, e.o)
}

func (e *evaluator) call(c *Call) (Value, error) {
	fn, ok := lookupFunc(c.Fn)
	if !ok {
		return Value{}, undefined(c.Fn)
	}
	if len(c.Args) != fn.arity {
		return Value{}, &EvalError{Op: c.Fn, Err: fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrDimensionMismatch, c.Fn, fn.arity, len(c.Args))}
	}
	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, err := e.eval(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	return fn.apply(args, e.o)
}
