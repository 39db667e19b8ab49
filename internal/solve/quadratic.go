package solve

import (
	"math"

	"polyroots/internal/poly"
)

// Quadratic returns the real roots of ax² + bx + c = 0 in the order
// [(-b+√disc)/2a, (-b-√disc)/2a]. A zero leading coefficient falls through
// to the linear solver. A negative discriminant yields ErrNoRealRoots; a
// zero discriminant yields the single root -b/2a.
func Quadratic(a, b, c float64) ([]float64, error) {
	if a == 0 {
		x, err := Linear(b, c)
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	}

	disc := b*b - 4*a*c
	switch {
	case math.IsNaN(disc):
		return nil, poly.ErrNaNDiscriminant
	case disc < 0:
		return nil, poly.ErrNoRealRoots
	case disc == 0:
		return []float64{-b / (2 * a)}, nil
	default:
		s := math.Sqrt(disc)
		return []float64{(-b + s) / (2 * a), (-b - s) / (2 * a)}, nil
	}
}
