package poly_test

import (
	"errors"
	"math"
	"testing"

	"polyroots/internal/poly"
)

// Tolerance used by the reference test vectors.
var eps = 100 * (math.Nextafter(1, 2) - 1)

func closeRel(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= eps*math.Max(math.Abs(a), math.Abs(b))
}

func TestEval(t *testing.T) {
	p := poly.New([]float64{1.0, 0.5, 0.3})
	x := 0.5

	if got, want := p.Eval(x), 1.0+0.5*x+0.3*x*x; !closeRel(got, want) {
		t.Fatalf("Eval(%v) = %v, want %v", x, got, want)
	}
}

func TestEval_AlternatingAtOne(t *testing.T) {
	p := poly.New([]float64{1, -1, 1, -1, 1, -1, 1, -1, 1, -1, 1})

	if got := p.Eval(1.0); !closeRel(got, 1.0) {
		t.Fatalf("Eval(1) = %v, want 1", got)
	}
	if got := p.Degree(); got != 10 {
		t.Fatalf("Degree = %d, want 10", got)
	}
}

func TestEvalDerivs(t *testing.T) {
	p := poly.New([]float64{1.0, -2.0, 3.0, -4.0, 5.0, -6.0})
	x := -0.5

	got := p.EvalDerivs(x, 6)
	want := []float64{3.75, -12.375, 48.0, -174.0, 480.0, -720.0}

	if len(got) != len(want) {
		t.Fatalf("EvalDerivs returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if !closeRel(got[i], want[i]) {
			t.Fatalf("derivative %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEvalDerivs_BeyondDegree(t *testing.T) {
	p := poly.New([]float64{1.0, 2.0, 3.0})

	got := p.EvalDerivs(1.0, 4)
	want := []float64{6.0, 8.0, 6.0, 0.0}

	for i := range want {
		if !closeRel(got[i], want[i]) {
			t.Fatalf("derivative %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEvalComplex(t *testing.T) {
	cases := []struct {
		name string
		coef []float64
		z    complex128
		want complex128
	}{
		{"constant", []float64{0.3}, complex(0.75, 1.2), complex(0.3, 0)},
		{"cubic", []float64{2.1, -1.34, 0.76, 0.45}, complex(0.49, 0.95), complex(0.3959143, -0.6433305)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := poly.New(tc.coef).EvalComplex(tc.z)
			if !closeRel(real(got), real(tc.want)) || !closeRel(imag(got), imag(tc.want)) {
				t.Fatalf("EvalComplex(%v) = %v, want %v", tc.z, got, tc.want)
			}
		})
	}
}

func TestComplexPolynomialEval(t *testing.T) {
	p := poly.NewComplex([]complex128{
		complex(-2.31, 0.44),
		complex(4.21, -3.19),
		complex(0.93, 1.04),
		complex(-0.42, 0.68),
	})
	z := complex(0.49, 0.95)

	got := p.Eval(z)
	if !closeRel(real(got), 1.82462012) || !closeRel(imag(got), 2.30389412) {
		t.Fatalf("Eval(%v) = %v, want (1.82462012+2.30389412i)", z, got)
	}
}

func TestComplexPolynomialEval_Constant(t *testing.T) {
	p := poly.NewComplex([]complex128{complex(0.674, -1.423)})

	got := p.Eval(complex(-1.44, 9.55))
	if real(got) != 0.674 || imag(got) != -1.423 {
		t.Fatalf("constant eval = %v", got)
	}
}

func TestBuild(t *testing.T) {
	if _, err := poly.Build(nil); err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if _, err := poly.Build([]float64{1.0, 2.0, 3.0}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := poly.Build([]float64{1.0, 2.0, math.NaN()}); !errors.Is(err, poly.ErrInvalidCoefficients) {
		t.Fatalf("Build with NaN: err = %v", err)
	}
	if _, err := poly.Build([]float64{1.0, 2.0, math.Inf(1)}); !errors.Is(err, poly.ErrInvalidCoefficients) {
		t.Fatalf("Build with Inf: err = %v", err)
	}
}

func TestBuildComplex(t *testing.T) {
	if _, err := poly.BuildComplex([]complex128{complex(1, 2)}); err != nil {
		t.Fatalf("BuildComplex: %v", err)
	}
	bad := []complex128{complex(1, math.NaN())}
	if _, err := poly.BuildComplex(bad); !errors.Is(err, poly.ErrInvalidCoefficients) {
		t.Fatalf("BuildComplex with NaN: err = %v", err)
	}
}

func TestTrim(t *testing.T) {
	cases := []struct {
		in, want []float64
	}{
		{[]float64{0}, []float64{0}},
		{[]float64{0, 1, 2}, []float64{0, 1, 2}},
		{[]float64{0, 1, 2, 0, 0}, []float64{0, 1, 2}},
		{[]float64{1, 2}, []float64{1, 2}},
		{[]float64{1, 2, 0, 0}, []float64{1, 2}},
		{[]float64{1, 0, 2}, []float64{1, 0, 2}},
	}
	for _, tc := range cases {
		got := poly.New(tc.in).Trim().Coef
		if len(got) != len(tc.want) {
			t.Fatalf("Trim(%v) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Trim(%v) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestEval_NaNAndInf(t *testing.T) {
	p := poly.New([]float64{1.0, 0.5, 0.3})

	if got := p.Eval(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Eval(+Inf) = %v", got)
	}
	if got := p.Eval(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("Eval(NaN) = %v", got)
	}
}

func TestReal_RejectsComplexCoefficients(t *testing.T) {
	p := poly.NewComplex([]complex128{complex(1, 1), complex(2, 2)})

	if _, err := p.Real(); !errors.Is(err, poly.ErrNotRealCoefficients) {
		t.Fatalf("Real: err = %v", err)
	}

	q := poly.NewComplex([]complex128{complex(1, 0), complex(2, 0)})
	r, err := q.Real()
	if err != nil {
		t.Fatalf("Real: %v", err)
	}
	if r.Coef[0] != 1 || r.Coef[1] != 2 {
		t.Fatalf("Real = %v", r.Coef)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		coef []float64
		want string
	}{
		{nil, "0"},
		{[]float64{0}, "0"},
		{[]float64{2.5}, "2.5"},
		{[]float64{1, 2, 3}, "1 + 2x + 3x^2"},
		{[]float64{0, -1}, "-x"},
		{[]float64{-27, 0, 0, 1}, "-27 + x^3"},
	}
	for _, tc := range cases {
		if got := poly.New(tc.coef).String(); got != tc.want {
			t.Fatalf("String(%v) = %q, want %q", tc.coef, got, tc.want)
		}
	}
}
