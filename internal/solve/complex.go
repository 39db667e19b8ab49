package solve

import (
	"math"

	"polyroots/internal/poly"
)

// QuadraticComplex returns the complex roots of ax² + bx + c = 0 with real
// coefficients, ordered by ascending real part (a conjugate pair comes back
// negative-imaginary first). A zero leading coefficient yields the single
// linear root.
func QuadraticComplex(a, b, c float64) ([]complex128, error) {
	if a == 0 {
		x, err := Linear(b, c)
		if err != nil {
			return nil, err
		}
		return []complex128{complex(x, 0)}, nil
	}

	disc := b*b - 4*a*c
	switch {
	case math.IsNaN(disc):
		return nil, poly.ErrNaNDiscriminant
	case disc > 0:
		if b == 0 {
			s := math.Abs(0.5 * math.Sqrt(disc) / a)
			return []complex128{complex(-s, 0), complex(s, 0)}, nil
		}
		// Stable split: compute one root from the large half of the
		// quadratic formula and the other from the product of roots.
		sgn := 1.0
		if b < 0 {
			sgn = -1.0
		}
		temp := -0.5 * (b + sgn*math.Sqrt(disc))
		r1 := temp / a
		r2 := c / temp
		if r1 < r2 {
			return []complex128{complex(r1, 0), complex(r2, 0)}, nil
		}
		return []complex128{complex(r2, 0), complex(r1, 0)}, nil
	case disc == 0:
		x := -0.5 * b / a
		return []complex128{complex(x, 0), complex(x, 0)}, nil
	default:
		re := -0.5 * b / a
		im := math.Abs(0.5 * math.Sqrt(-disc) / a)
		return []complex128{complex(re, -im), complex(re, im)}, nil
	}
}

// CubicComplex returns all three complex roots of the monic cubic
// x³ + ax² + bx + c = 0 with real coefficients, ordered by ascending real
// part with a conjugate pair ordered negative-imaginary first.
func CubicComplex(a, b, c float64) []complex128 {
	q := a*a - 3*b
	r := 2*a*a*a - 9*a*b + 27*c

	Q := q / 9
	R := r / 54
	Q3 := Q * Q * Q
	R2 := R * R

	CR2 := 729 * r * r
	CQ3 := 2916 * q * q * q

	a3 := a / 3

	switch {
	case R == 0 && Q == 0:
		x := complex(-a3, 0)
		return []complex128{x, x, x}

	case CR2 == CQ3:
		sqrtQ := math.Sqrt(Q)
		if R > 0 {
			return []complex128{
				complex(-2*sqrtQ-a3, 0),
				complex(sqrtQ-a3, 0),
				complex(sqrtQ-a3, 0),
			}
		}
		return []complex128{
			complex(-sqrtQ-a3, 0),
			complex(-sqrtQ-a3, 0),
			complex(2*sqrtQ-a3, 0),
		}

	case R2 < Q3:
		sgnR := 1.0
		if R < 0 {
			sgnR = -1.0
		}
		ratio := sgnR * math.Sqrt(R2/Q3)
		theta := math.Acos(ratio)
		norm := -2 * math.Sqrt(Q)
		r0 := norm*math.Cos(theta/3) - a3
		r1 := norm*math.Cos((theta+2*math.Pi)/3) - a3
		r2 := norm*math.Cos((theta-2*math.Pi)/3) - a3
		if r0 > r1 {
			r0, r1 = r1, r0
		}
		if r1 > r2 {
			r1, r2 = r2, r1
			if r0 > r1 {
				r0, r1 = r1, r0
			}
		}
		return []complex128{complex(r0, 0), complex(r1, 0), complex(r2, 0)}

	default:
		sgnR := 1.0
		if R < 0 {
			sgnR = -1.0
		}
		A := -sgnR * math.Cbrt(math.Abs(R)+math.Sqrt(R2-Q3))
		B := 0.0
		if A != 0 {
			B = Q / A
		}
		re := -0.5*(A+B) - a3
		im := math.Sqrt(3) / 2 * math.Abs(A-B)
		if A+B < 0 {
			return []complex128{
				complex(A+B-a3, 0),
				complex(re, -im),
				complex(re, im),
			}
		}
		return []complex128{
			complex(re, -im),
			complex(re, im),
			complex(A+B-a3, 0),
		}
	}
}
