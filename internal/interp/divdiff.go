package interp

import (
	"errors"

	"polyroots/internal/poly"
)

var (
	// ErrMismatchedPoints is returned when input slices differ in length.
	ErrMismatchedPoints = errors.New("interp: point slices must have equal length")

	// ErrNoPoints is returned when no interpolation points are given.
	ErrNoPoints = errors.New("interp: at least one point is required")

	// ErrRepeatedAbscissa is returned when two x values coincide; Hermite
	// interpolation handles repeated abscissae via NewHermite.
	ErrRepeatedAbscissa = errors.New("interp: repeated x value")
)

// DividedDifference is a polynomial in Newton form: the divided-difference
// coefficients dd[i] over the abscissae xs, representing
//
//	p(x) = dd[0] + dd[1](x-xs[0]) + dd[2](x-xs[0])(x-xs[1]) + ...
type DividedDifference struct {
	xs []float64
	dd []float64
}

// New computes the divided-difference representation of the polynomial
// interpolating the points (xs[i], ys[i]).
func New(xs, ys []float64) (*DividedDifference, error) {
	if len(xs) != len(ys) {
		return nil, ErrMismatchedPoints
	}
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] {
				return nil, ErrRepeatedAbscissa
			}
		}
	}

	size := len(xs)
	dd := make([]float64, size)
	dd[0] = ys[0]
	for j := size - 1; j >= 1; j-- {
		dd[j] = (ys[j] - ys[j-1]) / (xs[j] - xs[j-1])
	}
	for i := 2; i < size; i++ {
		for j := size - 1; j >= i; j-- {
			dd[j] = (dd[j] - dd[j-1]) / (xs[j] - xs[j-i])
		}
	}

	return &DividedDifference{
		xs: append([]float64(nil), xs...),
		dd: dd,
	}, nil
}

// NewHermite computes the divided-difference representation of the Hermite
// interpolating polynomial matching values ys and first derivatives dys at
// the abscissae xs. Each abscissa is doubled, so the result has degree
// 2·len(xs)-1.
func NewHermite(xs, ys, dys []float64) (*DividedDifference, error) {
	if len(xs) != len(ys) || len(xs) != len(dys) {
		return nil, ErrMismatchedPoints
	}
	if len(xs) == 0 {
		return nil, ErrNoPoints
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] {
				return nil, ErrRepeatedAbscissa
			}
		}
	}

	n := 2 * len(xs)
	zs := make([]float64, n)
	dd := make([]float64, n)
	for i := range xs {
		zs[2*i] = xs[i]
		zs[2*i+1] = xs[i]
	}

	// First-order differences, using the derivative where abscissae repeat.
	prev := make([]float64, n)
	for i := range xs {
		prev[2*i] = ys[i]
		prev[2*i+1] = ys[i]
	}
	dd[0] = prev[0]
	cur := make([]float64, n)
	for j := n - 1; j >= 1; j-- {
		if zs[j] == zs[j-1] {
			cur[j] = dys[j/2]
		} else {
			cur[j] = (prev[j] - prev[j-1]) / (zs[j] - zs[j-1])
		}
	}
	copy(dd[1:], cur[1:])

	for i := 2; i < n; i++ {
		for j := n - 1; j >= i; j-- {
			dd[j] = (dd[j] - dd[j-1]) / (zs[j] - zs[j-i])
		}
	}

	return &DividedDifference{xs: zs, dd: dd}, nil
}

// Eval evaluates the Newton form at x by Horner's method.
func (d *DividedDifference) Eval(x float64) float64 {
	n := len(d.dd)
	y := d.dd[n-1]
	for i := n - 1; i >= 1; i-- {
		y = d.dd[i-1] + (x-d.xs[i-1])*y
	}
	return y
}

// Coefficients returns a copy of the divided-difference coefficients.
func (d *DividedDifference) Coefficients() []float64 {
	return append([]float64(nil), d.dd...)
}

// Abscissae returns a copy of the abscissae underlying the Newton form.
func (d *DividedDifference) Abscissae() []float64 {
	return append([]float64(nil), d.xs...)
}

// Taylor re-expands the Newton form about xp, returning coefficients c such
// that p(x) = c[0] + c[1](x-xp) + ... + c[n](x-xp)ⁿ as a poly.Polynomial.
//
// Works from the highest divided difference down, multiplying the running
// polynomial in t = x-xp by (t + xp - xs[k]) and absorbing dd[k] each step.
func (d *DividedDifference) Taylor(xp float64) poly.Polynomial {
	n := len(d.dd)
	c := make([]float64, 1, n)
	c[0] = d.dd[n-1]
	for k := n - 2; k >= 0; k-- {
		shift := xp - d.xs[k]
		c = append(c, 0)
		for i := len(c) - 1; i >= 1; i-- {
			c[i] = c[i-1] + shift*c[i]
		}
		c[0] = shift*c[0] + d.dd[k]
	}
	return poly.New(c)
}
