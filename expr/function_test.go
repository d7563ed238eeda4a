// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcengine/expr"
)

func TestFunction_Eval(t *testing.T) {
	t.Parallel()
	f, err := expr.NewFunction("x^2 - 2", "x")
	require.NoError(t, err)
	y, err := f.Eval(3)
	require.NoError(t, err)
	assert.Equal(t, 7.0, y)
	assert.Equal(t, "x^2 - 2", f.Source())
	assert.Equal(t, "x", f.Variable())
	assert.Equal(t, "x^2 - 2", f.String())
	assert.Equal(t, "x^{2} - 2", f.LaTeX())
	assert.NotNil(t, f.Node())
}

func TestFunction_Variables(t *testing.T) {
	t.Parallel()
	f, err := expr.NewFunction(`t^2 + \pi`, "t")
	require.NoError(t, err)
	y, err := f.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, 4+math.Pi, y, 1e-12)

	g, err := expr.NewFunction("x + e", "")
	require.NoError(t, err)
	assert.Equal(t, expr.DefaultVariable, g.Variable())
}

func TestFunction_Errors(t *testing.T) {
	t.Parallel()
	_, err := expr.NewFunction("y + 1", "x")
	require.ErrorIs(t, err, expr.ErrUndefinedSymbol)

	_, err = expr.NewFunction("x +", "x")
	require.ErrorIs(t, err, expr.ErrParse)

	f, err := expr.NewFunction(`\ln(x)`, "x")
	require.NoError(t, err)
	_, err = f.Eval(-1)
	require.ErrorIs(t, err, expr.ErrDomain)

	_, err = f.Eval(math.NaN())
	require.ErrorIs(t, err, expr.ErrDomain)
}

func TestFunction_Derivative(t *testing.T) {
	t.Parallel()
	f, err := expr.NewFunction("x^2 - 2", "x")
	require.NoError(t, err)
	df, err := f.Derivative()
	require.NoError(t, err)
	assert.Equal(t, "2 * x", df.String())
	y, err := df.Eval(1.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, y)

	g, err := expr.NewFunction("det(x)", "x")
	require.NoError(t, err)
	_, err = g.Derivative()
	require.ErrorIs(t, err, expr.ErrNoDerivative)
}

func TestSymbols(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"A", "pi", "x", "y"}, expr.Symbols(expr.MustParse(`A^T x + y \sin(\pi x)`)))
	assert.Empty(t, expr.Symbols(expr.MustParse("1 + 2")))
}

func TestParseScalar(t *testing.T) {
	t.Parallel()
	ok := map[string]float64{
		"1.5":          1.5,
		" -2 ":         -2,
		"1/4":          0.25,
		`\frac{1}{2}`:  0.5,
		`\frac12`:      0.5,
		"pi/4":         math.Pi / 4,
		"2e-3":         0.002,
		`\sqrt{2}`:     math.Sqrt2,
		"-(3 + 1) * 2": -8,
	}
	for src, want := range ok {
		got, err := expr.ParseScalar(src)
		require.NoError(t, err, src)
		assert.InDelta(t, want, got, 1e-15, src)
	}

	for _, src := range []string{"", "  ", "abc", "1/0", "x + 1", "(", "inf", "NaN"} {
		_, err := expr.ParseScalar(src)
		require.ErrorIs(t, err, expr.ErrParse, src)
	}

	_, err := expr.ParseScalar("abc")
	require.ErrorIs(t, err, expr.ErrUndefinedSymbol)
}
