package solve

import "polyroots/internal/poly"

// Linear returns the root of ax + b = 0. A zero leading coefficient means
// the equation is constant and has no root to report.
func Linear(a, b float64) (float64, error) {
	if a == 0 {
		return 0, poly.ErrConstant
	}
	return -b / a, nil
}
