// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
	"github.com/katalvlaran/calcengine/notation"
)

type matrixKernel func(a, b matrix.Matrix) (*matrix.Dense, error)

func (e *Engine) matrices(op Operation, symbol string, a, b [][]string, kernel matrixKernel) (*Response, error) {
	return e.run(op, func(resp *Response) error {
		ma, err := e.grid("A", a)
		if err != nil {
			return err
		}
		mb, err := e.grid("B", b)
		if err != nil {
			return err
		}
		c, err := kernel(ma, mb)
		if err != nil {
			return err
		}
		resp.setValue(expr.MatrixOf(c), notation.Matrix(ma)+symbol+notation.Matrix(mb)+" = "+notation.Matrix(c))
		return nil
	})
}

// AddMatrices returns A + B.
func (e *Engine) AddMatrices(a, b [][]string) (*Response, error) {
	return e.matrices(OpAddMatrices, " + ", a, b, matrix.Add)
}

// SubtractMatrices returns A − B.
func (e *Engine) SubtractMatrices(a, b [][]string) (*Response, error) {
	return e.matrices(OpSubtractMatrices, " - ", a, b, matrix.Sub)
}

// MultiplyMatrices returns A·B.
func (e *Engine) MultiplyMatrices(a, b [][]string) (*Response, error) {
	return e.matrices(OpMultiplyMatrices, ` \cdot `, a, b, matrix.Mul)
}

// DeterminantCofactor returns det(M) by first-row cofactor expansion; the
// notation shows the expansion terms.
func (e *Engine) DeterminantCofactor(m [][]string) (*Response, error) {
	return e.run(OpDeterminantCofactor, func(resp *Response) error {
		d, err := e.grid("M", m)
		if err != nil {
			return err
		}
		opts := e.determinantOptions()
		r, err := determinant.Cofactor(d, opts)
		if err != nil {
			return err
		}
		terms, err := determinant.Expansion(d, opts)
		if err != nil {
			return err
		}
		resp.Kind, resp.Determinant, resp.Notation = ResultDeterminant, r, notation.Determinant(d, r, terms)
		return nil
	})
}

// DeterminantSarrus returns det(M) of a 3×3 matrix by Sarrus's rule.
func (e *Engine) DeterminantSarrus(m [][]string) (*Response, error) {
	return e.run(OpDeterminantSarrus, func(resp *Response) error {
		d, err := e.grid("M", m)
		if err != nil {
			return err
		}
		r, err := determinant.Sarrus(d, e.determinantOptions())
		if err != nil {
			return err
		}
		resp.Kind, resp.Determinant, resp.Notation = ResultDeterminant, r, notation.Determinant(d, r, nil)
		return nil
	})
}

func (e *Engine) vectors(op Operation, symbol string, u, v []string, kernel func(u, v matrix.Vector) (matrix.Vector, error)) (*Response, error) {
	return e.run(op, func(resp *Response) error {
		a, err := e.cells("u", u)
		if err != nil {
			return err
		}
		b, err := e.cells("v", v)
		if err != nil {
			return err
		}
		c, err := kernel(a, b)
		if err != nil {
			return err
		}
		resp.setValue(expr.VectorOf(c), notation.Vector(a)+symbol+notation.Vector(b)+" = "+notation.Vector(c))
		return nil
	})
}

// AddVectors returns u + v.
func (e *Engine) AddVectors(u, v []string) (*Response, error) {
	return e.vectors(OpAddVectors, " + ", u, v, matrix.AddVec)
}

// SubtractVectors returns u − v.
func (e *Engine) SubtractVectors(u, v []string) (*Response, error) {
	return e.vectors(OpSubtractVectors, " - ", u, v, matrix.SubVec)
}

// ScaleVector returns k·v.
func (e *Engine) ScaleVector(v []string, k string) (*Response, error) {
	return e.run(OpScaleVector, func(resp *Response) error {
		a, err := e.cells("v", v)
		if err != nil {
			return err
		}
		s, err := e.scalar(k)
		if err != nil {
			return err
		}
		c, err := matrix.ScaleVec(a, s)
		if err != nil {
			return err
		}
		resp.setValue(expr.VectorOf(c), notation.Number(s)+` \cdot `+notation.Vector(a)+" = "+notation.Vector(c))
		return nil
	})
}

// MatrixVector returns M·v.
func (e *Engine) MatrixVector(m [][]string, v []string) (*Response, error) {
	return e.run(OpMatrixVector, func(resp *Response) error {
		d, err := e.grid("M", m)
		if err != nil {
			return err
		}
		x, err := e.cells("v", v)
		if err != nil {
			return err
		}
		c, err := matrix.MatVec(d, x)
		if err != nil {
			return err
		}
		resp.setValue(expr.VectorOf(c), notation.Matrix(d)+` \cdot `+notation.Vector(x)+" = "+notation.Vector(c))
		return nil
	})
}

// LinearCombination solves Σ c_i·vectors[i] = target. A system without a
// unique solution fails with NoSolution or InfiniteSolutions but still
// returns its classification.
func (e *Engine) LinearCombination(vectors [][]string, target []string) (*Response, error) {
	return e.run(OpLinearCombination, func(resp *Response) error {
		vs, err := e.cellLists("vectors", vectors)
		if err != nil {
			return err
		}
		t, err := e.cells("target", target)
		if err != nil {
			return err
		}
		r, err := linsys.Combination(vs, t, e.linsysOptions())
		if r != nil {
			resp.Kind, resp.System, resp.Notation = ResultSystem, r, notation.System(r)
		}
		return err
	})
}

// LinearDependency reports whether vectors are linearly dependent.
func (e *Engine) LinearDependency(vectors [][]string) (*Response, error) {
	return e.run(OpLinearDependency, func(resp *Response) error {
		vs, err := e.cellLists("vectors", vectors)
		if err != nil {
			return err
		}
		d, err := linsys.Dependent(vs, e.linsysOptions())
		if err != nil {
			return err
		}
		resp.Kind, resp.Dependency, resp.Notation = ResultDependency, d, notation.Dependency(d)
		return nil
	})
}

// Cramer solves A·x = b by Cramer's rule. A singular A fails with
// SingularSystem; the response then still carries det(A) and the rank
// classification.
func (e *Engine) Cramer(a [][]string, b []string) (*Response, error) {
	return e.run(OpCramer, func(resp *Response) error {
		m, err := e.grid("A", a)
		if err != nil {
			return err
		}
		v, err := e.cells("b", b)
		if err != nil {
			return err
		}
		r, err := linsys.Cramer(m, v, e.linsysOptions())
		if r != nil {
			resp.Kind, resp.System, resp.Notation = ResultSystem, r, notation.System(r)
		}
		return err
	})
}

// GaussJordan reduces the augmented matrix [A | b] and classifies the system.
func (e *Engine) GaussJordan(augmented [][]string) (*Response, error) {
	return e.run(OpGaussJordan, func(resp *Response) error {
		m, err := e.grid("[A|b]", augmented)
		if err != nil {
			return err
		}
		r, err := linsys.GaussJordan(m, e.linsysOptions())
		if r != nil {
			resp.Kind, resp.Reduction, resp.Notation = ResultReduction, r, notation.Reduction(r)
		}
		return err
	})
}
