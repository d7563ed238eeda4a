// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/roots"
)

// Operation names an engine entry point.
type Operation string

const (
	OpEvaluate            Operation = "evaluate"
	OpAddMatrices         Operation = "add_matrices"
	OpSubtractMatrices    Operation = "subtract_matrices"
	OpMultiplyMatrices    Operation = "multiply_matrices"
	OpDeterminantCofactor Operation = "determinant_cofactor"
	OpDeterminantSarrus   Operation = "determinant_sarrus"
	OpAddVectors          Operation = "add_vectors"
	OpSubtractVectors     Operation = "subtract_vectors"
	OpScaleVector         Operation = "scale_vector"
	OpMatrixVector        Operation = "matrix_vector"
	OpLinearCombination   Operation = "linear_combination"
	OpLinearDependency    Operation = "linear_dependency"
	OpCramer              Operation = "cramer"
	OpGaussJordan         Operation = "gauss_jordan"
	OpBisection           Operation = roots.MethodBisection
	OpFalsePosition       Operation = roots.MethodFalsePosition
	OpNewtonRaphson       Operation = roots.MethodNewtonRaphson
	OpSecant              Operation = roots.MethodSecant
	OpPlot                Operation = "plot"
)

// ResultKind tells which field of a Response holds the result.
type ResultKind uint8

const (
	ResultNone ResultKind = iota
	ResultValue
	ResultMethod
	ResultDeterminant
	ResultSystem
	ResultReduction
	ResultDependency
	ResultPlot
)

// Point is one sample of a plotted function.
type Point struct {
	X, Y float64
}

// Response is the outcome of one operation. Exactly the field named by Kind
// is set; Notation renders it.
type Response struct {
	Operation   Operation
	Kind        ResultKind
	Value       *expr.Value
	Method      *roots.MethodResult
	Determinant *determinant.Result
	System      *linsys.Result
	Reduction   *linsys.Reduction
	Dependency  *linsys.Dependency
	Points      []Point
	Notation    string
}

// Operand is a binding for Evaluate. Matrix wins over Vector, Vector over Scalar.
type Operand struct {
	Scalar string
	Vector []string
	Matrix [][]string
}

// Request is the operation-name form of a call, as sent by a form-driven UI.
// Which fields are read depends on Operation:
//
//	evaluate                          Expression, Bindings
//	add/subtract/multiply_matrices    Matrices[0], Matrices[1]
//	determinant_cofactor/sarrus       Matrices[0]
//	add/subtract_vectors              Vectors[0], Vectors[1]
//	scale_vector                      Vectors[0], Scalars[0]
//	matrix_vector                     Matrices[0], Vectors[0]
//	linear_combination                Vectors, Target
//	linear_dependency                 Vectors
//	cramer                            Matrices[0], Target
//	gauss_jordan                      Matrices[0] (augmented)
//	bisection, false_position, secant Expression, Scalars[0..1], Tolerance, MaxIterations
//	newton_raphson                    Expression, Scalars[0], Tolerance, MaxIterations
//	plot                              Expression, Scalars[0..1], Samples
type Request struct {
	Operation     Operation
	Expression    string
	Bindings      map[string]Operand
	Matrices      [][][]string
	Vectors       [][]string
	Target        []string
	Scalars       []string
	Tolerance     string
	MaxIterations int
	Samples       int
}
