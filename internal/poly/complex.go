package poly

import "math/cmplx"

// ComplexPolynomial is a univariate polynomial with complex128 coefficients
// in ascending degree order.
type ComplexPolynomial struct {
	Coef []complex128
}

// NewComplex constructs a ComplexPolynomial without validation.
func NewComplex(coef []complex128) ComplexPolynomial {
	return ComplexPolynomial{Coef: append([]complex128(nil), coef...)}
}

// BuildComplex constructs a ComplexPolynomial, rejecting coefficients whose
// real or imaginary part is NaN or Inf.
func BuildComplex(coef []complex128) (ComplexPolynomial, error) {
	for _, c := range coef {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return ComplexPolynomial{}, ErrInvalidCoefficients
		}
	}
	return NewComplex(coef), nil
}

// Degree returns the index of the highest nonzero coefficient, or -1 for the
// zero polynomial.
func (p ComplexPolynomial) Degree() int {
	for i := len(p.Coef) - 1; i >= 0; i-- {
		if p.Coef[i] != 0 {
			return i
		}
	}
	return -1
}

// Trim returns a copy with trailing zero coefficients removed, keeping a
// single-element polynomial as is.
func (p ComplexPolynomial) Trim() ComplexPolynomial {
	if len(p.Coef) <= 1 {
		return NewComplex(p.Coef)
	}
	n := len(p.Coef)
	for n > 1 && p.Coef[n-1] == 0 {
		n--
	}
	return NewComplex(p.Coef[:n])
}

// Eval evaluates the polynomial at z using Horner's method.
func (p ComplexPolynomial) Eval(z complex128) complex128 {
	if len(p.Coef) == 0 {
		return 0
	}
	res := p.Coef[len(p.Coef)-1]
	for i := len(p.Coef) - 2; i >= 0; i-- {
		res = res*z + p.Coef[i]
	}
	return res
}

// Real converts to a real-coefficient Polynomial. It fails with
// ErrNotRealCoefficients if any imaginary part is nonzero.
func (p ComplexPolynomial) Real() (Polynomial, error) {
	coef := make([]float64, len(p.Coef))
	for i, c := range p.Coef {
		if imag(c) != 0 {
			return Polynomial{}, ErrNotRealCoefficients
		}
		coef[i] = real(c)
	}
	return Polynomial{Coef: coef}, nil
}

// Complexify lifts a real Polynomial into a ComplexPolynomial.
func (p Polynomial) Complexify() ComplexPolynomial {
	coef := make([]complex128, len(p.Coef))
	for i, c := range p.Coef {
		coef[i] = complex(c, 0)
	}
	return ComplexPolynomial{Coef: coef}
}

// IsReal reports whether every coefficient has zero imaginary part.
func (p ComplexPolynomial) IsReal() bool {
	for _, c := range p.Coef {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}
