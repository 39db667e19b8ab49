package solve

import (
	"math"
	"sort"
)

// Cubic returns the real roots of the monic cubic x³ + ax² + bx + c = 0 in
// ascending order, with multiple roots repeated. A cubic always has either
// one or three real roots (counting multiplicity), so the result has length
// 1 or 3.
func Cubic(a, b, c float64) []float64 {
	q := a*a - 3*b
	r := 2*a*a*a - 9*a*b + 27*c

	Q := q / 9
	R := r / 54
	Q3 := Q * Q * Q
	R2 := R * R

	// Integer-scaled forms of R² and Q³ so that exact multiple roots are
	// detected exactly rather than through a tolerance.
	CR2 := 729 * r * r
	CQ3 := 2916 * q * q * q

	switch {
	case R == 0 && Q == 0:
		// Triple root.
		x := -a / 3
		return []float64{x, x, x}

	case CR2 == CQ3:
		// One single and one double root. Q must be positive here since
		// R² = Q³ with R ≠ 0.
		sqrtQ := math.Sqrt(Q)
		if R > 0 {
			return []float64{-2*sqrtQ - a/3, sqrtQ - a/3, sqrtQ - a/3}
		}
		return []float64{-sqrtQ - a/3, -sqrtQ - a/3, 2*sqrtQ - a/3}

	case R2 < Q3:
		// Three distinct real roots, by the trigonometric method.
		sgnR := 1.0
		if R < 0 {
			sgnR = -1.0
		}
		ratio := sgnR * math.Sqrt(R2/Q3)
		theta := math.Acos(ratio)
		norm := -2 * math.Sqrt(Q)
		roots := []float64{
			norm*math.Cos(theta/3) - a/3,
			norm*math.Cos((theta+2*math.Pi)/3) - a/3,
			norm*math.Cos((theta-2*math.Pi)/3) - a/3,
		}
		sort.Float64s(roots)
		return roots

	default:
		// One real root, by Cardano's method.
		sgnR := 1.0
		if R < 0 {
			sgnR = -1.0
		}
		A := -sgnR * math.Cbrt(math.Abs(R)+math.Sqrt(R2-Q3))
		B := 0.0
		if A != 0 {
			B = Q / A
		}
		return []float64{A + B - a/3}
	}
}
