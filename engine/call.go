// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sort"
)

type handler func(e *Engine, req Request) (*Response, error)

var handlers = map[Operation]handler{
	OpEvaluate: func(e *Engine, req Request) (*Response, error) {
		return e.Evaluate(req.Expression, req.Bindings)
	},
	OpAddMatrices: func(e *Engine, req Request) (*Response, error) {
		return e.AddMatrices(req.Matrices[0], req.Matrices[1])
	},
	OpSubtractMatrices: func(e *Engine, req Request) (*Response, error) {
		return e.SubtractMatrices(req.Matrices[0], req.Matrices[1])
	},
	OpMultiplyMatrices: func(e *Engine, req Request) (*Response, error) {
		return e.MultiplyMatrices(req.Matrices[0], req.Matrices[1])
	},
	OpDeterminantCofactor: func(e *Engine, req Request) (*Response, error) {
		return e.DeterminantCofactor(req.Matrices[0])
	},
	OpDeterminantSarrus: func(e *Engine, req Request) (*Response, error) {
		return e.DeterminantSarrus(req.Matrices[0])
	},
	OpAddVectors: func(e *Engine, req Request) (*Response, error) {
		return e.AddVectors(req.Vectors[0], req.Vectors[1])
	},
	OpSubtractVectors: func(e *Engine, req Request) (*Response, error) {
		return e.SubtractVectors(req.Vectors[0], req.Vectors[1])
	},
	OpScaleVector: func(e *Engine, req Request) (*Response, error) {
		return e.ScaleVector(req.Vectors[0], req.Scalars[0])
	},
	OpMatrixVector: func(e *Engine, req Request) (*Response, error) {
		return e.MatrixVector(req.Matrices[0], req.Vectors[0])
	},
	OpLinearCombination: func(e *Engine, req Request) (*Response, error) {
		return e.LinearCombination(req.Vectors, req.Target)
	},
	OpLinearDependency: func(e *Engine, req Request) (*Response, error) {
		return e.LinearDependency(req.Vectors)
	},
	OpCramer: func(e *Engine, req Request) (*Response, error) {
		return e.Cramer(req.Matrices[0], req.Target)
	},
	OpGaussJordan: func(e *Engine, req Request) (*Response, error) {
		return e.GaussJordan(req.Matrices[0])
	},
	OpBisection: func(e *Engine, req Request) (*Response, error) {
		return e.Bisection(req.Expression, req.Scalars[0], req.Scalars[1], req.Tolerance, req.MaxIterations)
	},
	OpFalsePosition: func(e *Engine, req Request) (*Response, error) {
		return e.FalsePosition(req.Expression, req.Scalars[0], req.Scalars[1], req.Tolerance, req.MaxIterations)
	},
	OpNewtonRaphson: func(e *Engine, req Request) (*Response, error) {
		return e.NewtonRaphson(req.Expression, req.Scalars[0], req.Tolerance, req.MaxIterations)
	},
	OpSecant: func(e *Engine, req Request) (*Response, error) {
		return e.Secant(req.Expression, req.Scalars[0], req.Scalars[1], req.Tolerance, req.MaxIterations)
	},
	OpPlot: func(e *Engine, req Request) (*Response, error) {
		return e.Plot(req.Expression, req.Scalars[0], req.Scalars[1], req.Samples)
	},
}

// arity is the number of matrices, vectors and scalars each operation reads.
var arity = map[Operation][3]int{
	OpAddMatrices:         {2, 0, 0},
	OpSubtractMatrices:    {2, 0, 0},
	OpMultiplyMatrices:    {2, 0, 0},
	OpDeterminantCofactor: {1, 0, 0},
	OpDeterminantSarrus:   {1, 0, 0},
	OpAddVectors:          {0, 2, 0},
	OpSubtractVectors:     {0, 2, 0},
	OpScaleVector:         {0, 1, 1},
	OpMatrixVector:        {1, 1, 0},
	OpCramer:              {1, 0, 0},
	OpGaussJordan:         {1, 0, 0},
	OpBisection:           {0, 0, 2},
	OpFalsePosition:       {0, 0, 2},
	OpNewtonRaphson:       {0, 0, 1},
	OpSecant:              {0, 0, 2},
	OpPlot:                {0, 0, 2},
}

// Operations lists every operation Call accepts, sorted.
func Operations() []Operation {
	ops := make([]Operation, 0, len(handlers))
	for op := range handlers {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	return ops
}

// Call dispatches req by its Operation name. Missing operands fail with
// ErrInvalidRequest before any parsing; an unknown name fails with
// ErrUnknownOperation.
func (e *Engine) Call(req Request) (*Response, error) {
	h, ok := handlers[req.Operation]
	if !ok {
		log.Warnf("unknown operation %q", req.Operation)
		return nil, newError(req.Operation, fmt.Errorf("%q: %w", req.Operation, ErrUnknownOperation))
	}
	if want, ok := arity[req.Operation]; ok {
		got := [3]int{len(req.Matrices), len(req.Vectors), len(req.Scalars)}
		for i, name := range [3]string{"matrices", "vectors", "scalars"} {
			if got[i] < want[i] {
				log.Warnf("%s: missing operands", req.Operation)
				return nil, newError(req.Operation, fmt.Errorf("%s needs %d %s, got %d: %w",
					req.Operation, want[i], name, got[i], ErrInvalidRequest))
			}
		}
	}

	return h(e, req)
}
