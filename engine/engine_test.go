// SPDX-License-Identifier: MIT

package engine_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/calcengine/convergence"
	"github.com/katalvlaran/calcengine/engine"
	"github.com/katalvlaran/calcengine/expr"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
)

func requireKind(t *testing.T, err error, kind engine.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, engine.KindOf(err), "error: %v", err)
	var ee *engine.Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, kind, ee.Kind)
}

func scalarOf(t *testing.T, r *engine.Response) float64 {
	t.Helper()
	require.NotNil(t, r)
	require.Equal(t, engine.ResultValue, r.Kind)
	x, ok := r.Value.Float()
	require.True(t, ok, "value is a %s", r.Value.Kind())
	return x
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	e := engine.New()

	r, err := e.Evaluate("2x+1", map[string]engine.Operand{"x": {Scalar: "3"}})
	require.NoError(t, err)
	assert.Equal(t, 7.0, scalarOf(t, r))
	assert.Equal(t, engine.OpEvaluate, r.Operation)
	assert.Equal(t, `2 \cdot x + 1 = 7`, r.Notation)

	r, err = e.Evaluate("A v", map[string]engine.Operand{
		"A": {Matrix: [][]string{{"1", "2"}, {"3", "4"}}},
		"v": {Vector: []string{"1", ""}},
	})
	require.NoError(t, err)
	v, ok := r.Value.Vector()
	require.True(t, ok)
	assert.Equal(t, matrix.Vector{1, 3}, v)

	r, err = e.Evaluate(`\frac{1}{2} + k`, map[string]engine.Operand{"k": {Scalar: `\frac12`}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, scalarOf(t, r))
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()
	e := engine.New()
	vars := map[string]engine.Operand{
		"A": {Matrix: [][]string{{"1", "2"}, {"3", "4"}}},
		"v": {Vector: []string{"1", "2", "3"}},
	}
	cases := []struct {
		src  string
		vars map[string]engine.Operand
		kind engine.ErrorKind
	}{
		{"(1+", nil, engine.KindParse},
		{"2 $ 3", nil, engine.KindParse},
		{"y + 1", nil, engine.KindUndefinedSymbol},
		{"foo(2)", nil, engine.KindUndefinedSymbol},
		{"A + v", vars, engine.KindDimensionMismatch},
		{"A v", vars, engine.KindDimensionMismatch},
		{"ln(0)", nil, engine.KindDomain},
		{"1/0", nil, engine.KindDomain},
		{"x", map[string]engine.Operand{"x": {Scalar: "abc"}}, engine.KindParse},
		{"x", map[string]engine.Operand{"x": {Matrix: [][]string{{"1"}, {"1", "2"}}}}, engine.KindDimensionMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			r, err := e.Evaluate(tc.src, tc.vars)
			assert.Nil(t, r)
			requireKind(t, err, tc.kind)
		})
	}
}

func TestEvaluate_MaxDepth(t *testing.T) {
	t.Parallel()
	src := ""
	for i := 0; i < 10; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 10; i++ {
		src += ")"
	}
	_, err := engine.New(engine.WithMaxDepth(4)).Evaluate(src, nil)
	requireKind(t, err, engine.KindParse)
	assert.ErrorIs(t, err, expr.ErrTooDeep)

	_, err = engine.New().Evaluate(src, nil)
	require.NoError(t, err)
}

func TestMatrixOperations(t *testing.T) {
	t.Parallel()
	e := engine.New()
	a := [][]string{{"1", "2"}, {"3", " "}}
	b := [][]string{{"1", "1"}, {"1", `\frac12`}}

	r, err := e.AddMatrices(a, b)
	require.NoError(t, err)
	m, ok := r.Value.Matrix()
	require.True(t, ok)
	assert.Equal(t, [][]float64{{2, 3}, {4, 0.5}}, m.ToRows())
	assert.Contains(t, r.Notation, " + ")

	r, err = e.SubtractMatrices(a, b)
	require.NoError(t, err)
	m, _ = r.Value.Matrix()
	assert.Equal(t, [][]float64{{0, 1}, {2, -0.5}}, m.ToRows())

	r, err = e.MultiplyMatrices(a, b)
	require.NoError(t, err)
	m, _ = r.Value.Matrix()
	assert.Equal(t, [][]float64{{3, 2}, {3, 3}}, m.ToRows())
	assert.Contains(t, r.Notation, `\cdot`)

	_, err = e.MultiplyMatrices([][]string{{"1", "2", "3"}}, [][]string{{"1", "2"}})
	requireKind(t, err, engine.KindDimensionMismatch)
	_, err = e.AddMatrices(a, [][]string{{"1"}})
	requireKind(t, err, engine.KindDimensionMismatch)
	_, err = e.AddMatrices([][]string{{"1", "2"}, {"3"}}, a)
	requireKind(t, err, engine.KindDimensionMismatch)
	_, err = e.AddMatrices([][]string{{"1", "x1"}}, [][]string{{"1", "2"}})
	requireKind(t, err, engine.KindParse)
	_, err = e.AddMatrices(nil, a)
	requireKind(t, err, engine.KindInvalidDimension)
}

func TestDeterminants(t *testing.T) {
	t.Parallel()
	e := engine.New()
	m := [][]string{{"2", "-3", "1"}, {"2", "0", "-1"}, {"1", "4", "5"}}

	c, err := e.DeterminantCofactor(m)
	require.NoError(t, err)
	require.Equal(t, engine.ResultDeterminant, c.Kind)
	s, err := e.DeterminantSarrus(m)
	require.NoError(t, err)
	assert.InDelta(t, 49, c.Determinant.Value, 1e-12)
	assert.InDelta(t, c.Determinant.Value, s.Determinant.Value, 1e-9)
	assert.Contains(t, c.Notation, "cofactor")
	assert.Contains(t, s.Notation, "sarrus")

	_, err = e.DeterminantSarrus([][]string{{"1", "2"}, {"3", "4"}})
	requireKind(t, err, engine.KindInvalidDimension)
	_, err = e.DeterminantCofactor([][]string{{"1", "2"}})
	requireKind(t, err, engine.KindInvalidDimension)

	big := make([][]string, 9)
	for i := range big {
		big[i] = make([]string, 9)
		big[i][i] = "1"
	}
	_, err = e.DeterminantCofactor(big)
	requireKind(t, err, engine.KindInvalidDimension)

	_, err = engine.New(engine.WithMaxCofactorSize(2)).DeterminantCofactor(m)
	requireKind(t, err, engine.KindInvalidDimension)
}

func TestVectorOperations(t *testing.T) {
	t.Parallel()
	e := engine.New()
	u, v := []string{"1", "2", "3"}, []string{"4", "", "-1"}

	r, err := e.AddVectors(u, v)
	require.NoError(t, err)
	got, _ := r.Value.Vector()
	assert.Equal(t, matrix.Vector{5, 2, 2}, got)

	r, err = e.SubtractVectors(u, v)
	require.NoError(t, err)
	got, _ = r.Value.Vector()
	assert.Equal(t, matrix.Vector{-3, 2, 4}, got)

	r, err = e.ScaleVector(u, "-2")
	require.NoError(t, err)
	got, _ = r.Value.Vector()
	assert.Equal(t, matrix.Vector{-2, -4, -6}, got)

	r, err = e.MatrixVector([][]string{{"1", "0", "1"}, {"0", "1", "0"}}, u)
	require.NoError(t, err)
	got, _ = r.Value.Vector()
	assert.Equal(t, matrix.Vector{4, 2}, got)

	_, err = e.AddVectors(u, []string{"1"})
	requireKind(t, err, engine.KindDimensionMismatch)
	_, err = e.ScaleVector(u, "")
	requireKind(t, err, engine.KindParse)
	_, err = e.MatrixVector([][]string{{"1", "2"}}, u)
	requireKind(t, err, engine.KindDimensionMismatch)
	_, err = e.AddVectors(nil, nil)
	requireKind(t, err, engine.KindInvalidDimension)
}

func TestLinearAlgebra(t *testing.T) {
	t.Parallel()
	e := engine.New()

	r, err := e.LinearCombination([][]string{{"1", "0"}, {"1", "1"}}, []string{"3", "2"})
	require.NoError(t, err)
	require.Equal(t, engine.ResultSystem, r.Kind)
	assert.InDeltaSlice(t, []float64{1, 2}, []float64(r.System.Values), 1e-12)

	r, err = e.LinearCombination([][]string{{"1", "2"}, {"2", "4"}}, []string{"1", "0"})
	requireKind(t, err, engine.KindNoSolution)
	require.NotNil(t, r)
	assert.Equal(t, linsys.OutcomeNoSolution, r.System.Outcome)

	r, err = e.LinearCombination([][]string{{"1", "0"}, {"0", "1"}, {"1", "1"}}, []string{"1", "1"})
	requireKind(t, err, engine.KindInfiniteSolutions)
	assert.Equal(t, linsys.OutcomeInfinite, r.System.Outcome)

	_, err = e.LinearCombination([][]string{{"1", "0"}, {"1"}}, []string{"1", "1"})
	requireKind(t, err, engine.KindDimensionMismatch)

	r, err = e.LinearDependency([][]string{{"1", "2", "3"}, {"0", "0", "0"}})
	require.NoError(t, err)
	require.Equal(t, engine.ResultDependency, r.Kind)
	assert.True(t, r.Dependency.Dependent)

	r, err = e.LinearDependency([][]string{{"1", "0"}, {"0", "1"}})
	require.NoError(t, err)
	assert.False(t, r.Dependency.Dependent)

	r, err = e.Cramer([][]string{{"2", "1"}, {"1", "-1"}}, []string{"5", "1"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1}, []float64(r.System.Values), 1e-12)
	assert.Contains(t, r.Notation, `\frac{\det(A_{1})}{\det(A)}`)

	r, err = e.Cramer([][]string{{"1", "2"}, {"2", "4"}}, []string{"1", "2"})
	requireKind(t, err, engine.KindSingularSystem)
	require.NotNil(t, r)
	assert.Equal(t, 0.0, r.System.Determinant)

	_, err = e.Cramer([][]string{{"1", "2", "3"}, {"4", "5", "6"}}, []string{"1", "2"})
	requireKind(t, err, engine.KindInvalidDimension)

	r, err = e.GaussJordan([][]string{{"1", "1", "1", "6"}, {"0", "2", "5", "-4"}, {"2", "5", "-1", "27"}})
	require.NoError(t, err)
	require.Equal(t, engine.ResultReduction, r.Kind)
	assert.InDeltaSlice(t, []float64{5, 3, -2}, []float64(r.Reduction.Values), 1e-12)
}

func TestPlot(t *testing.T) {
	t.Parallel()
	e := engine.New()

	r, err := e.Plot("x^2", "-1", "1", 5)
	require.NoError(t, err)
	require.Equal(t, engine.ResultPlot, r.Kind)
	assert.Equal(t, []engine.Point{{-1, 1}, {-0.5, 0.25}, {0, 0}, {0.5, 0.25}, {1, 1}}, r.Points)
	assert.Equal(t, "f(x) = x^{2}", r.Notation)

	r, err = e.Plot("ln(x)", "-1", "1", 5)
	require.NoError(t, err)
	require.Len(t, r.Points, 2)
	assert.Equal(t, 0.5, r.Points[0].X)
	assert.Equal(t, 1.0, r.Points[1].X)

	r, err = e.Plot("sin(x)", "0", "pi", 0)
	require.NoError(t, err)
	assert.Len(t, r.Points, engine.DefaultSamples)

	r, err = engine.New(engine.WithIterationCeiling(10)).Plot("x", "0", "1", 1000)
	require.NoError(t, err)
	assert.Len(t, r.Points, 10)

	_, err = e.Plot("x", "1", "1", 10)
	requireKind(t, err, engine.KindInvalidRequest)
	_, err = e.Plot("y", "0", "1", 10)
	requireKind(t, err, engine.KindUndefinedSymbol)
	_, err = e.Plot("x", "a", "1", 10)
	requireKind(t, err, engine.KindParse)
}

// RootsSuite drives the four root-finding operations through the engine.
type RootsSuite struct {
	suite.Suite
	e *engine.Engine
}

func (s *RootsSuite) SetupTest() { s.e = engine.New() }

func (s *RootsSuite) TestBisectionConverges() {
	r, err := s.e.Bisection("x^2-2", "0", "2", "1e-6", 100)
	s.Require().NoError(err)
	s.Require().Equal(engine.ResultMethod, r.Kind)
	m := r.Method
	s.True(m.Converged)
	s.InDelta(math.Sqrt2, m.Root, 1e-6)
	s.Less(math.Abs(m.FRoot), 1e-6)
	s.Equal(100, m.MaxIterations)
	s.Equal(m.Notation, r.Notation)
	s.Contains(r.Notation, `\text{Bisection method}`)
}

func (s *RootsSuite) TestFalsePosition() {
	r, err := s.e.FalsePosition("x^2-2", "0", "2", "", 0)
	s.Require().NoError(err)
	s.True(r.Method.Converged)
	s.InDelta(math.Sqrt2, r.Method.Root, 1e-5)
	s.Equal(engine.DefaultMaxIterations, r.Method.MaxIterations)
	s.Equal(engine.DefaultTolerance, r.Method.Tolerance)
}

func (s *RootsSuite) TestNewtonRaphson() {
	r, err := s.e.NewtonRaphson("x^2-2", "1", "", 0)
	s.Require().NoError(err)
	s.True(r.Method.Converged)
	s.Less(r.Method.Iterations, 10)
	s.InDelta(math.Sqrt2, r.Method.Root, 1e-9)

	r, err = s.e.NewtonRaphson("x^2-2", "0", "", 0)
	requireKind(s.T(), err, engine.KindZeroDerivative)
	s.Require().NotNil(r)
	s.Empty(r.Method.Steps)
	s.False(r.Method.Converged)
}

func (s *RootsSuite) TestSecant() {
	r, err := s.e.Secant("x^2-2", "1", "2", "", 0)
	s.Require().NoError(err)
	s.True(r.Method.Converged)
	s.InDelta(math.Sqrt2, r.Method.Root, 1e-9)

	r, err = s.e.Secant("x^2-2", "-1", "1", "", 0)
	requireKind(s.T(), err, engine.KindDegenerateSecant)
	s.Require().NotNil(r)
	s.Empty(r.Method.Steps)
}

func (s *RootsSuite) TestInvalidBracket() {
	r, err := s.e.Bisection("x^2-2", "2", "3", "", 0)
	requireKind(s.T(), err, engine.KindInvalidBracket)
	s.Require().NotNil(r)
	s.Empty(r.Method.Steps)

	_, err = s.e.FalsePosition("x^2+1", "-1", "1", "", 0)
	requireKind(s.T(), err, engine.KindInvalidBracket)
}

func (s *RootsSuite) TestParameters() {
	_, err := s.e.Bisection("x^2-2", "0", "2", "abc", 0)
	requireKind(s.T(), err, engine.KindParse)

	// Well-formed but non-positive tolerances are bad requests, not bad text.
	_, err = s.e.Bisection("x^2-2", "0", "2", "-1", 0)
	requireKind(s.T(), err, engine.KindInvalidRequest)
	s.ErrorIs(err, convergence.ErrInvalidTolerance)

	_, err = s.e.NewtonRaphson("x^2-2", "1", "-1e-3", 0)
	requireKind(s.T(), err, engine.KindInvalidRequest)

	_, err = s.e.Bisection("x^2-2", "zero", "2", "", 0)
	requireKind(s.T(), err, engine.KindParse)

	_, err = s.e.Bisection("x^2-", "0", "2", "", 0)
	requireKind(s.T(), err, engine.KindParse)

	r, err := s.e.Bisection("x^2-2", "0", `\frac{4}{2}`, "1e-6", 0)
	s.Require().NoError(err)
	s.True(r.Method.Converged)
}

func (s *RootsSuite) TestIterationCeiling() {
	e := engine.New(engine.WithIterationCeiling(5))
	r, err := e.Bisection("x^2-2", "0", "2", "1e-12", 1_000_000)
	s.Require().NoError(err)
	s.Equal(5, r.Method.MaxIterations)
	s.Equal(5, r.Method.Iterations)
	s.False(r.Method.Converged)
	s.Contains(r.Notation, "5/5")
}

func (s *RootsSuite) TestVariable() {
	e := engine.New(engine.WithVariable("t"), engine.WithTolerance(1e-10))
	r, err := e.NewtonRaphson("t^3-8", "3", "", 0)
	s.Require().NoError(err)
	s.InDelta(2, r.Method.Root, 1e-9)
	s.Equal(1e-10, r.Method.Tolerance)
}

func TestRootsSuite(t *testing.T) {
	suite.Run(t, new(RootsSuite))
}

func TestCall(t *testing.T) {
	t.Parallel()
	e := engine.New()

	r, err := e.Call(engine.Request{
		Operation:     engine.OpBisection,
		Expression:    "x^2-2",
		Scalars:       []string{"0", "2"},
		Tolerance:     "1e-6",
		MaxIterations: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, engine.OpBisection, r.Operation)
	assert.True(t, r.Method.Converged)

	r, err = e.Call(engine.Request{Operation: engine.OpEvaluate, Expression: "1+2"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, scalarOf(t, r))

	r, err = e.Call(engine.Request{
		Operation: engine.OpCramer,
		Matrices:  [][][]string{{{"2", "1"}, {"1", "-1"}}},
		Target:    []string{"5", "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, engine.OpCramer, r.Operation)

	r, err = e.Call(engine.Request{Operation: engine.OpLinearDependency, Vectors: [][]string{{"1", "1"}, {"2", "2"}}})
	require.NoError(t, err)
	assert.True(t, r.Dependency.Dependent)

	_, err = e.Call(engine.Request{Operation: "integrate"})
	requireKind(t, err, engine.KindUnknownOperation)
	assert.ErrorIs(t, err, engine.ErrUnknownOperation)

	_, err = e.Call(engine.Request{Operation: engine.OpAddMatrices, Matrices: [][][]string{{{"1"}}}})
	requireKind(t, err, engine.KindInvalidRequest)

	_, err = e.Call(engine.Request{Operation: engine.OpNewtonRaphson, Expression: "x"})
	requireKind(t, err, engine.KindInvalidRequest)
}

func TestCall_EveryOperation(t *testing.T) {
	t.Parallel()
	e := engine.New()
	reqs := map[engine.Operation]engine.Request{
		engine.OpEvaluate:            {Expression: "2"},
		engine.OpAddMatrices:         {Matrices: [][][]string{{{"1"}}, {{"2"}}}},
		engine.OpSubtractMatrices:    {Matrices: [][][]string{{{"1"}}, {{"2"}}}},
		engine.OpMultiplyMatrices:    {Matrices: [][][]string{{{"1"}}, {{"2"}}}},
		engine.OpDeterminantCofactor: {Matrices: [][][]string{{{"1", "2"}, {"3", "4"}}}},
		engine.OpDeterminantSarrus:   {Matrices: [][][]string{{{"1", "0", "0"}, {"0", "1", "0"}, {"0", "0", "1"}}}},
		engine.OpAddVectors:          {Vectors: [][]string{{"1"}, {"2"}}},
		engine.OpSubtractVectors:     {Vectors: [][]string{{"1"}, {"2"}}},
		engine.OpScaleVector:         {Vectors: [][]string{{"1"}}, Scalars: []string{"3"}},
		engine.OpMatrixVector:        {Matrices: [][][]string{{{"2"}}}, Vectors: [][]string{{"3"}}},
		engine.OpLinearCombination:   {Vectors: [][]string{{"1"}}, Target: []string{"4"}},
		engine.OpLinearDependency:    {Vectors: [][]string{{"1"}}},
		engine.OpCramer:              {Matrices: [][][]string{{{"2"}}}, Target: []string{"4"}},
		engine.OpGaussJordan:         {Matrices: [][][]string{{{"2", "4"}}}},
		engine.OpBisection:           {Expression: "x-1", Scalars: []string{"0", "3"}},
		engine.OpFalsePosition:       {Expression: "x-1", Scalars: []string{"0", "3"}},
		engine.OpNewtonRaphson:       {Expression: "x-1", Scalars: []string{"0"}},
		engine.OpSecant:              {Expression: "x-1", Scalars: []string{"0", "3"}},
		engine.OpPlot:                {Expression: "x", Scalars: []string{"0", "1"}, Samples: 3},
	}
	ops := engine.Operations()
	require.Len(t, ops, len(reqs))
	assert.IsIncreasing(t, ops)
	for _, op := range ops {
		req, ok := reqs[op]
		require.True(t, ok, "no request for %s", op)
		req.Operation = op
		r, err := e.Call(req)
		require.NoError(t, err, "%s", op)
		assert.Equal(t, op, r.Operation)
		assert.NotEqual(t, engine.ResultNone, r.Kind, "%s", op)
		assert.NotEmpty(t, r.Notation, "%s", op)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, engine.KindNone, engine.KindOf(nil))
	assert.Equal(t, engine.KindInternal, engine.KindOf(errors.New("boom")))
	assert.Equal(t, engine.KindSingularSystem, engine.KindOf(fmt.Errorf("wrapped: %w", linsys.ErrSingularSystem)))
	assert.Equal(t, engine.KindDimensionMismatch, engine.KindOf(matrix.ErrDimensionMismatch))
	assert.Equal(t, engine.KindParse, engine.KindOf(&expr.ParseError{Msg: "x", Err: expr.ErrTooDeep}))
	assert.Equal(t, engine.KindDomain, engine.KindOf(expr.ErrTooDeep))

	assert.Equal(t, "ParseError", engine.KindParse.String())
	assert.Equal(t, "DomainError", engine.KindDomain.String())
	assert.Equal(t, "ErrorKind(200)", engine.ErrorKind(200).String())

	err := &engine.Error{Op: engine.OpCramer, Kind: engine.KindSingularSystem, Err: linsys.ErrSingularSystem}
	assert.Equal(t, "engine: cramer: SingularSystem: linsys: singular system", err.Error())
	assert.ErrorIs(t, err, linsys.ErrSingularSystem)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	o := engine.New().Options()
	assert.Equal(t, 1e-6, o.Tolerance())
	assert.Equal(t, 50, o.MaxIterations())
	assert.Equal(t, 10000, o.IterationCeiling())
	assert.Equal(t, 1e-10, o.Epsilon())
	assert.Equal(t, 8, o.MaxCofactorSize())
	assert.Equal(t, 256, o.MaxDepth())
	assert.Equal(t, "x", o.Variable())

	o = engine.New(engine.WithEpsilon(1e-6), engine.WithMaxIterations(7), nil).Options()
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.Equal(t, 7, o.MaxIterations())

	assert.Panics(t, func() { engine.WithTolerance(0) })
	assert.Panics(t, func() { engine.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { engine.WithMaxIterations(0) })
	assert.Panics(t, func() { engine.WithIterationCeiling(-1) })
	assert.Panics(t, func() { engine.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { engine.WithMaxCofactorSize(0) })
	assert.Panics(t, func() { engine.WithMaxDepth(0) })
	assert.Panics(t, func() { engine.WithVariable("") })
	assert.Panics(t, func() { engine.WithVariable("x1") })
}

func TestEpsilonOption(t *testing.T) {
	t.Parallel()
	// det = 1e-8: singular under a loose epsilon, solvable under the default.
	a := [][]string{{"1", "0"}, {"0", "1e-8"}}
	_, err := engine.New(engine.WithEpsilon(1e-6)).Cramer(a, []string{"1", "1"})
	requireKind(t, err, engine.KindSingularSystem)

	r, err := engine.New().Cramer(a, []string{"1", "1"})
	require.NoError(t, err)
	assert.InDelta(t, 1e8, r.System.Values[1], 1e-3)
}
