package solve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyroots/internal/poly"
	"polyroots/internal/solve"
)

// Tolerance used by the reference test vectors.
var eps = 100 * (math.Nextafter(1, 2) - 1)

// requireClose checks relative closeness, falling back to an absolute check
// around zero where a relative tolerance is meaningless.
func requireClose(t *testing.T, want, got float64) {
	t.Helper()
	if want == 0 {
		require.InDelta(t, want, got, eps)
		return
	}
	require.InEpsilon(t, want, got, eps)
}

func TestQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 4, -20, 21, []float64{3.5, 1.5}},
		{"double root", 4, -20, 25, []float64{2.5}},
		{"root at zero", 4, 7, 0, []float64{0, -1.75}},
		{"no linear term", 5, 0, -20, []float64{2, -2}},
		{"degenerate linear", 0, 3, -21, []float64{7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := solve.Quadratic(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				requireClose(t, tc.want[i], got[i])
			}
		})
	}
}

func TestQuadratic_NoRealRoots(t *testing.T) {
	_, err := solve.Quadratic(4, -20, 26)
	assert.ErrorIs(t, err, poly.ErrNoRealRoots)
}

func TestQuadratic_Constant(t *testing.T) {
	_, err := solve.Quadratic(0, 0, 1)
	assert.ErrorIs(t, err, poly.ErrConstant)
}

func TestLinear(t *testing.T) {
	x, err := solve.Linear(3, -21)
	require.NoError(t, err)
	requireClose(t, 7, x)

	_, err = solve.Linear(0, 1)
	assert.ErrorIs(t, err, poly.ErrConstant)
}

func TestReal_Dispatch(t *testing.T) {
	t.Run("quadratic coefficients ascending", func(t *testing.T) {
		// 26 - 20x + 4x² has no real roots.
		p := poly.New([]float64{26, -20, 4})
		_, err := solve.Real(p)
		assert.ErrorIs(t, err, poly.ErrNoRealRoots)
	})

	t.Run("trailing zeros reduce the degree", func(t *testing.T) {
		// -21 + 3x + 0x² is linear after trimming.
		p := poly.New([]float64{-21, 3, 0})
		roots, err := solve.Real(p)
		require.NoError(t, err)
		require.Len(t, roots, 1)
		requireClose(t, 7, roots[0])
	})

	t.Run("constant", func(t *testing.T) {
		p := poly.New([]float64{1, 0, 0})
		_, err := solve.Real(p)
		assert.ErrorIs(t, err, poly.ErrConstant)
	})

	t.Run("degree too high", func(t *testing.T) {
		p := poly.New([]float64{1, 2, 3, 4, 5})
		_, err := solve.Real(p)
		var degErr *poly.DegreeError
		require.ErrorAs(t, err, &degErr)
		assert.Equal(t, 3, degErr.Want)
	})

	t.Run("non-monic cubic is normalized", func(t *testing.T) {
		// 2(x³ - 27) = -54 + 2x³.
		p := poly.New([]float64{-54, 0, 0, 2})
		roots, err := solve.Real(p)
		require.NoError(t, err)
		require.Len(t, roots, 1)
		requireClose(t, 3, roots[0])
	})
}
