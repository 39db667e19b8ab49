package poly

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is a univariate polynomial with real coefficients in ascending
// degree order. The zero value is the zero polynomial.
type Polynomial struct {
	Coef []float64
}

// New constructs a Polynomial without validating the coefficients.
func New(coef []float64) Polynomial {
	return Polynomial{Coef: append([]float64(nil), coef...)}
}

// Build constructs a Polynomial, rejecting NaN and infinite coefficients.
func Build(coef []float64) (Polynomial, error) {
	for _, c := range coef {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Polynomial{}, ErrInvalidCoefficients
		}
	}
	return New(coef), nil
}

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p.Coef) - 1; i >= 0; i-- {
		if p.Coef[i] != 0 {
			return i
		}
	}
	return -1
}

// Trim returns a copy with trailing (highest-degree) zero coefficients
// removed. A single-element polynomial is returned unchanged, so the
// canonical zero polynomial [0] survives trimming.
func (p Polynomial) Trim() Polynomial {
	if len(p.Coef) <= 1 {
		return New(p.Coef)
	}
	n := len(p.Coef)
	for n > 1 && p.Coef[n-1] == 0 {
		n--
	}
	return New(p.Coef[:n])
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	if len(p.Coef) == 0 {
		return 0
	}
	res := p.Coef[len(p.Coef)-1]
	for i := len(p.Coef) - 2; i >= 0; i-- {
		res = res*x + p.Coef[i]
	}
	return res
}

// EvalComplex evaluates the real-coefficient polynomial at a complex point.
func (p Polynomial) EvalComplex(z complex128) complex128 {
	if len(p.Coef) == 0 {
		return 0
	}
	res := complex(p.Coef[len(p.Coef)-1], 0)
	for i := len(p.Coef) - 2; i >= 0; i-- {
		res = res*z + complex(p.Coef[i], 0)
	}
	return res
}

// EvalDerivs evaluates the polynomial and its derivatives at x, returning
// [P(x), P'(x), P''(x), ...] of length n. Derivatives beyond the degree are
// zero.
//
// Single Horner-style sweep over the coefficients; each pass accumulates one
// further derivative, and a factorial scaling at the end converts the
// repeated-differentiation terms into true derivative values.
func (p Polynomial) EvalDerivs(x float64, n int) []float64 {
	res := make([]float64, n)
	if n == 0 || len(p.Coef) == 0 {
		return res
	}

	lastIdx := len(p.Coef) - 1
	nmax := min(len(p.Coef), n) - 1

	for j := 0; j <= nmax; j++ {
		res[j] = p.Coef[lastIdx]
	}
	for i := 0; i < lastIdx; i++ {
		k := lastIdx - i
		res[0] = x*res[0] + p.Coef[k-1]
		jmax := nmax
		if k <= nmax {
			jmax = k - 1
		}
		for j := 1; j <= jmax; j++ {
			res[j] = x*res[j] + res[j-1]
		}
	}

	f := 1.0
	for i := 2; i <= nmax; i++ {
		f *= float64(i)
		res[i] *= f
	}
	return res
}

// String renders the polynomial in conventional ascending form, e.g.
// "1 + 2x + 3x^2".
func (p Polynomial) String() string {
	t := p.Trim()
	if t.Degree() <= 0 {
		if len(t.Coef) == 0 {
			return "0"
		}
		return fmt.Sprintf("%g", t.Coef[0])
	}

	var b strings.Builder
	first := true
	for i, c := range t.Coef {
		if c == 0 {
			continue
		}
		if first {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		abs := math.Abs(c)
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%g", abs)
		case i == 1:
			if abs == 1 {
				b.WriteString("x")
			} else {
				fmt.Fprintf(&b, "%gx", abs)
			}
		default:
			if abs == 1 {
				fmt.Fprintf(&b, "x^%d", i)
			} else {
				fmt.Fprintf(&b, "%gx^%d", abs, i)
			}
		}
		first = false
	}
	if first {
		return "0"
	}
	return b.String()
}
