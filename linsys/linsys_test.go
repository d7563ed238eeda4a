// SPDX-License-Identifier: MIT

package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calcengine/determinant"
	"github.com/katalvlaran/calcengine/linsys"
	"github.com/katalvlaran/calcengine/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestCramer(t *testing.T) {
	t.Parallel()
	// 2x + y = 5, x − y = 1 → (2, 1)
	a := mustRows(t, [][]float64{{2, 1}, {1, -1}})
	r, err := linsys.Cramer(a, matrix.Vector{5, 1}, linsys.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, r.Err())
	assert.Equal(t, linsys.OutcomeUnique, r.Outcome)
	assert.InDeltaSlice(t, []float64{2, 1}, []float64(r.Values), 1e-12)
	assert.Equal(t, -3.0, r.Determinant)
	assert.True(t, r.HasDeterminant)
	assert.Equal(t, []float64{-6, -3}, r.ColumnDeterminants)
}

// TestCramer_RoundTrip checks A·x ≈ b and agreement with gonum's LU solve.
func TestCramer_RoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		n := 1 + trial%6
		rows := make([][]float64, n)
		data := make([]float64, 0, n*n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = rng.Float64()*4 - 2
			}
			rows[i][i] += float64(n) * 2 // diagonally dominant, so nonsingular
			data = append(data, rows[i]...)
		}
		b := make(matrix.Vector, n)
		for i := range b {
			b[i] = rng.Float64()*10 - 5
		}
		a := mustRows(t, rows)

		r, err := linsys.Cramer(a, b, linsys.DefaultOptions())
		require.NoError(t, err)
		ax, err := matrix.MatVec(a, r.Values)
		require.NoError(t, err)
		ok, err := matrix.VecAllClose(b, ax, 1e-9, 1e-9)
		require.NoError(t, err)
		assert.True(t, ok, "A·x = %v, b = %v", ax, b)

		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...))))
		assert.InDeltaSlice(t, want.RawVector().Data, []float64(r.Values), 1e-9)
	}
}

func TestCramer_Errors(t *testing.T) {
	t.Parallel()
	singular := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	r, err := linsys.Cramer(singular, matrix.Vector{1, 2}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrSingularSystem)
	require.NotNil(t, r)
	assert.Nil(t, r.Values)
	assert.Equal(t, linsys.OutcomeInfinite, r.Outcome)

	r, err = linsys.Cramer(singular, matrix.Vector{1, 3}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrSingularSystem)
	assert.Equal(t, linsys.OutcomeNoSolution, r.Outcome)

	_, err = linsys.Cramer(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), matrix.Vector{1, 2}, linsys.DefaultOptions())
	require.ErrorIs(t, err, determinant.ErrInvalidDimension)

	_, err = linsys.Cramer(mustRows(t, [][]float64{{1, 0}, {0, 1}}), matrix.Vector{1, 2, 3}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	big, err := matrix.NewIdentity(9)
	require.NoError(t, err)
	_, err = linsys.Cramer(big, make(matrix.Vector, 9), linsys.DefaultOptions())
	require.ErrorIs(t, err, determinant.ErrInvalidDimension)
}

func TestCombination(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		vectors []matrix.Vector
		target  matrix.Vector
		outcome linsys.Outcome
		values  []float64
		err     error
	}{
		{"square unique", []matrix.Vector{{1, 0}, {1, 1}}, matrix.Vector{3, 2}, linsys.OutcomeUnique, []float64{1, 2}, nil},
		{"tall unique", []matrix.Vector{{1, 0, 0}, {0, 1, 0}}, matrix.Vector{2, 3, 0}, linsys.OutcomeUnique, []float64{2, 3}, nil},
		{"tall inconsistent", []matrix.Vector{{1, 0, 0}, {0, 1, 0}}, matrix.Vector{2, 3, 1}, linsys.OutcomeNoSolution, nil, linsys.ErrNoSolution},
		{"wide", []matrix.Vector{{1, 0}, {0, 1}, {1, 1}}, matrix.Vector{1, 1}, linsys.OutcomeInfinite, []float64{1, 1, 0}, linsys.ErrInfiniteSolutions},
		{"parallel inconsistent", []matrix.Vector{{1, 2}, {2, 4}}, matrix.Vector{1, 0}, linsys.OutcomeNoSolution, nil, linsys.ErrNoSolution},
		{"parallel consistent", []matrix.Vector{{1, 2}, {2, 4}}, matrix.Vector{3, 6}, linsys.OutcomeInfinite, []float64{3, 0}, linsys.ErrInfiniteSolutions},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := linsys.Combination(tc.vectors, tc.target, linsys.DefaultOptions())
			require.NotNil(t, r)
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, tc.outcome, r.Outcome)
			assert.Equal(t, len(tc.vectors), r.Unknowns)
			if tc.values != nil {
				assert.InDeltaSlice(t, tc.values, []float64(r.Values), 1e-12)
			}
		})
	}
}

func TestCombination_SquareUsesCramer(t *testing.T) {
	t.Parallel()
	r, err := linsys.Combination([]matrix.Vector{{2, 1}, {1, -1}}, matrix.Vector{5, 1}, linsys.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, r.HasDeterminant)
	assert.Equal(t, -3.0, r.Determinant)
	assert.Len(t, r.ColumnDeterminants, 2)
	assert.Equal(t, 2, r.Rank)
	assert.Equal(t, 2, r.AugmentedRank)
}

func TestCombination_Errors(t *testing.T) {
	t.Parallel()
	_, err := linsys.Combination(nil, matrix.Vector{1}, linsys.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = linsys.Combination([]matrix.Vector{{1, 2}, {1}}, matrix.Vector{1, 2}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.Combination([]matrix.Vector{{1, 2}}, matrix.Vector{1, 2, 3}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

func TestDependent(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		vectors []matrix.Vector
		dep     bool
		rank    int
	}{
		{"standard basis", []matrix.Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, false, 3},
		{"zero vector", []matrix.Vector{{1, 2, 3}, {0, 0, 0}}, true, 1},
		{"duplicate", []matrix.Vector{{1, 2}, {3, 4}, {1, 2}}, true, 2},
		{"duplicate pair", []matrix.Vector{{4, -1, 2}, {4, -1, 2}}, true, 1},
		{"too many", []matrix.Vector{{1, 0}, {0, 1}, {5, 7}}, true, 2},
		{"square dependent", []matrix.Vector{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, true, 2},
		{"single nonzero", []matrix.Vector{{0, 3}}, false, 1},
		{"single zero", []matrix.Vector{{0, 0}}, true, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := linsys.Dependent(tc.vectors, linsys.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.dep, d.Dependent)
			assert.Equal(t, tc.rank, d.Rank)
			assert.Equal(t, len(tc.vectors), d.Count)
			if !tc.dep {
				assert.Nil(t, d.Witness)
				return
			}
			// The witness is nontrivial and combines the vectors to zero.
			require.Len(t, d.Witness, len(tc.vectors))
			assert.False(t, d.Witness.IsZero(0))
			sum := make(matrix.Vector, len(tc.vectors[0]))
			for i, v := range tc.vectors {
				scaled, err := matrix.ScaleVec(v, d.Witness[i])
				require.NoError(t, err)
				sum, err = matrix.AddVec(sum, scaled)
				require.NoError(t, err)
			}
			assert.True(t, sum.IsZero(1e-9), "Σ w_i·v_i = %v", sum)
		})
	}
}

func TestDependent_Determinant(t *testing.T) {
	t.Parallel()
	d, err := linsys.Dependent([]matrix.Vector{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, linsys.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, d.HasDeterminant)
	assert.InDelta(t, 0, d.Determinant, 1e-12)

	d, err = linsys.Dependent([]matrix.Vector{{1, 0}, {0, 1}, {1, 1}}, linsys.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, d.HasDeterminant)

	_, err = linsys.Dependent([]matrix.Vector{{1, 2}, {1, 2, 3}}, linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)

	_, err = linsys.Dependent(nil, linsys.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestGaussJordan(t *testing.T) {
	t.Parallel()
	// x + y + z = 6, 2y + 5z = −4, 2x + 5y − z = 27 → (5, 3, −2)
	aug := mustRows(t, [][]float64{{1, 1, 1, 6}, {0, 2, 5, -4}, {2, 5, -1, 27}})
	red, err := linsys.GaussJordan(aug, linsys.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, linsys.OutcomeUnique, red.Outcome)
	assert.InDeltaSlice(t, []float64{5, 3, -2}, []float64(red.Values), 1e-12)
	assert.Equal(t, []int{0, 1, 2}, red.Pivots)
	assert.Empty(t, red.Free)
	assert.Equal(t, 3, red.Rank)

	// x + 2y = 3 twice → y free.
	red, err = linsys.GaussJordan(mustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}}), linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrInfiniteSolutions)
	require.NotNil(t, red)
	assert.Equal(t, []int{0}, red.Pivots)
	assert.Equal(t, []int{1}, red.Free)
	assert.InDeltaSlice(t, []float64{3, 0}, []float64(red.Values), 1e-12)

	red, err = linsys.GaussJordan(mustRows(t, [][]float64{{1, 2, 3}, {2, 4, 7}}), linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrNoSolution)
	assert.Equal(t, 1, red.Rank)
	assert.Equal(t, 2, red.AugmentedRank)

	_, err = linsys.GaussJordan(mustRows(t, [][]float64{{1}, {2}}), linsys.DefaultOptions())
	require.ErrorIs(t, err, linsys.ErrDimensionMismatch)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "unique", linsys.OutcomeUnique.String())
	assert.Equal(t, "no solution", linsys.OutcomeNoSolution.String())
	assert.Equal(t, "infinite solutions", linsys.OutcomeInfinite.String())
	assert.Equal(t, "undetermined", linsys.Outcome(0).String())
	assert.ErrorIs(t, (&linsys.Result{}).Err(), linsys.ErrSingularSystem)
}
