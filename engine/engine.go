// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
	"github.com/katalvlaran/calcengine/notation"
)

var log = logging.Logger("engine")

// Engine runs operations under a fixed configuration.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts over the package defaults.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (e *Engine) Options() Options { return e.opts }

// run executes fn for op, logging the dispatch and any failure. The Response
// survives a failure only when fn already stored a result in it.
func (e *Engine) run(op Operation, fn func(resp *Response) error) (*Response, error) {
	log.Debugf("dispatch %s", op)
	resp := &Response{Operation: op}
	if err := fn(resp); err != nil {
		ee := newError(op, err)
		log.Warnf("%s failed (%s): %s", op, ee.Kind, err)
		if resp.Kind == ResultNone {
			return nil, ee
		}
		return resp, ee
	}

	return resp, nil
}

func (e *Engine) exprOptions() []expr.Option {
	return []expr.Option{expr.WithMaxDepth(e.opts.maxDepth)}
}

func (e *Engine) linsysOptions() linsys.Options {
	return linsys.Options{Epsilon: e.opts.eps, MaxCofactorSize: e.opts.maxCofactor}
}

func (e *Engine) determinantOptions() determinant.Options {
	return determinant.Options{MaxSize: e.opts.maxCofactor, Epsilon: e.opts.eps}
}

// scalar parses a scalar parameter or cell: a decimal, a fraction or a
// constant expression.
func (e *Engine) scalar(text string) (float64, error) {
	return expr.ParseScalar(text, e.exprOptions()...)
}

func (e *Engine) grid(name string, g [][]string) (*matrix.Dense, error) {
	m, err := matrix.ParseGridFunc(g, e.scalar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func (e *Engine) cells(name string, c []string) (matrix.Vector, error) {
	v, err := matrix.ParseCellsFunc(c, e.scalar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func (e *Engine) cellLists(name string, lists [][]string) ([]matrix.Vector, error) {
	out := make([]matrix.Vector, len(lists))
	for i, c := range lists {
		v, err := e.cells(fmt.Sprintf("%s[%d]", name, i), c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *Engine) operand(name string, op Operand) (expr.Value, error) {
	switch {
	case op.Matrix != nil:
		m, err := e.grid(name, op.Matrix)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.MatrixOf(m), nil
	case op.Vector != nil:
		v, err := e.cells(name, op.Vector)
		if err != nil {
			return expr.Value{}, err
		}
		return expr.VectorOf(v), nil
	default:
		x, err := e.scalar(op.Scalar)
		if err != nil {
			return expr.Value{}, fmt.Errorf("%s: %w", name, err)
		}
		return expr.Scalar(x), nil
	}
}

func (r *Response) setValue(v expr.Value, text string) {
	r.Kind, r.Value, r.Notation = ResultValue, &v, text
}

// Evaluate parses src and evaluates it over vars.
func (e *Engine) Evaluate(src string, vars map[string]Operand) (*Response, error) {
	return e.run(OpEvaluate, func(resp *Response) error {
		env := make(expr.Env, len(vars))
		for name, op := range vars {
			v, err := e.operand(name, op)
			if err != nil {
				return err
			}
			env[name] = v
		}
		n, err := expr.Parse(src, e.exprOptions()...)
		if err != nil {
			return err
		}
		v, err := expr.Eval(n, env, e.exprOptions()...)
		if err != nil {
			return err
		}
		resp.setValue(v, notation.Equation(n, v))
		return nil
	})
}
