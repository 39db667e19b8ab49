package solve

import "polyroots/internal/poly"

// Real returns the real roots of p in ascending order, dispatching on the
// trimmed degree. Degrees above three have no closed-form solver here and
// yield a DegreeError.
func Real(p poly.Polynomial) ([]float64, error) {
	t := p.Trim()
	switch t.Degree() {
	case -1, 0:
		return nil, poly.ErrConstant
	case 1:
		x, err := Linear(t.Coef[1], t.Coef[0])
		if err != nil {
			return nil, err
		}
		return []float64{x}, nil
	case 2:
		return Quadratic(t.Coef[2], t.Coef[1], t.Coef[0])
	case 3:
		// Normalize to monic form for the cubic solver.
		lead := t.Coef[3]
		return Cubic(t.Coef[2]/lead, t.Coef[1]/lead, t.Coef[0]/lead), nil
	default:
		return nil, &poly.DegreeError{Want: 3}
	}
}

// Complex returns the complex roots of p (real coefficients), dispatching on
// the trimmed degree like Real. A degree-n polynomial yields n roots.
func Complex(p poly.Polynomial) ([]complex128, error) {
	t := p.Trim()
	switch t.Degree() {
	case -1, 0:
		return nil, poly.ErrConstant
	case 1:
		x, err := Linear(t.Coef[1], t.Coef[0])
		if err != nil {
			return nil, err
		}
		return []complex128{complex(x, 0)}, nil
	case 2:
		return QuadraticComplex(t.Coef[2], t.Coef[1], t.Coef[0])
	case 3:
		lead := t.Coef[3]
		return CubicComplex(t.Coef[2]/lead, t.Coef[1]/lead, t.Coef[0]/lead), nil
	default:
		return nil, &poly.DegreeError{Want: 3}
	}
}
