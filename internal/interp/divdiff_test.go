package interp_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyroots/internal/interp"
	"polyroots/internal/poly"
)

var approx = cmpopts.EquateApprox(1e-12, 1e-12)

func TestNew_ReproducesPolynomial(t *testing.T) {
	// Sample 1 + 2x + 3x² at three points; the interpolant must agree with
	// the polynomial everywhere.
	p := poly.New([]float64{1, 2, 3})
	xs := []float64{0, 1, 2}
	ys := []float64{p.Eval(0), p.Eval(1), p.Eval(2)}

	dd, err := interp.New(xs, ys)
	require.NoError(t, err)

	for _, x := range []float64{-1.5, 0.5, 3.25, 10} {
		require.InEpsilon(t, p.Eval(x), dd.Eval(x), 1e-12)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := interp.New([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, interp.ErrMismatchedPoints)

	_, err = interp.New(nil, nil)
	assert.ErrorIs(t, err, interp.ErrNoPoints)

	_, err = interp.New([]float64{1, 2, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, interp.ErrRepeatedAbscissa)
}

func TestCoefficients(t *testing.T) {
	// For y = 1 + 2x + 3x² through {0,1,2} the Newton coefficients are
	// [1, 5, 3]: 1 + 5(x-0) + 3(x-0)(x-1).
	dd, err := interp.New([]float64{0, 1, 2}, []float64{1, 6, 17})
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{1, 5, 3}, dd.Coefficients(), approx); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

func TestTaylor(t *testing.T) {
	dd, err := interp.New([]float64{0, 1, 2}, []float64{1, 6, 17})
	require.NoError(t, err)

	t.Run("about zero recovers ascending coefficients", func(t *testing.T) {
		got := dd.Taylor(0)
		if diff := cmp.Diff([]float64{1, 2, 3}, got.Coef, approx); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("about one", func(t *testing.T) {
		// p(1+t) = 6 + 8t + 3t².
		got := dd.Taylor(1)
		if diff := cmp.Diff([]float64{6, 8, 3}, got.Coef, approx); diff != "" {
			t.Fatalf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNewHermite_ReproducesCubic(t *testing.T) {
	// f(x) = x³ with values and derivatives at {1, 2}; the Hermite
	// interpolant of degree three must be exactly x³.
	xs := []float64{1, 2}
	ys := []float64{1, 8}
	dys := []float64{3, 12}

	dd, err := interp.NewHermite(xs, ys, dys)
	require.NoError(t, err)

	for _, x := range []float64{0, 1.5, 3, -2} {
		assert.InDelta(t, x*x*x, dd.Eval(x), 1e-10, "at x=%v", x)
	}

	got := dd.Taylor(0)
	if diff := cmp.Diff([]float64{0, 0, 0, 1}, got.Coef, approx); diff != "" {
		t.Fatalf("Taylor mismatch (-want +got):\n%s", diff)
	}
}

func TestNewHermite_Errors(t *testing.T) {
	_, err := interp.NewHermite([]float64{1}, []float64{1}, nil)
	assert.ErrorIs(t, err, interp.ErrMismatchedPoints)

	_, err = interp.NewHermite([]float64{1, 1}, []float64{1, 2}, []float64{0, 0})
	assert.ErrorIs(t, err, interp.ErrRepeatedAbscissa)
}

func TestEval_SinglePoint(t *testing.T) {
	dd, err := interp.New([]float64{2}, []float64{5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, dd.Eval(100))
}

func TestAbscissae_Copies(t *testing.T) {
	dd, err := interp.New([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	xs := dd.Abscissae()
	xs[0] = math.Pi
	assert.Equal(t, 0.0, dd.Abscissae()[0])
}
