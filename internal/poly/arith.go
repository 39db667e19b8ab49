package poly

// Add returns p + q, trimmed.
func Add(p, q Polynomial) Polynomial {
	n := max(len(p.Coef), len(q.Coef))
	out := make([]float64, n)
	for i := range out {
		if i < len(p.Coef) {
			out[i] += p.Coef[i]
		}
		if i < len(q.Coef) {
			out[i] += q.Coef[i]
		}
	}
	return Polynomial{Coef: out}.Trim()
}

// Sub returns p - q, trimmed.
func Sub(p, q Polynomial) Polynomial {
	return Add(p, Scale(q, -1))
}

// Scale returns k·p, trimmed.
func Scale(p Polynomial, k float64) Polynomial {
	out := make([]float64, len(p.Coef))
	for i, c := range p.Coef {
		out[i] = k * c
	}
	return Polynomial{Coef: out}.Trim()
}

// Mul returns p · q, trimmed. The product of two empty polynomials is empty.
func Mul(p, q Polynomial) Polynomial {
	if len(p.Coef) == 0 || len(q.Coef) == 0 {
		return Polynomial{}
	}
	out := make([]float64, len(p.Coef)+len(q.Coef)-1)
	for i, a := range p.Coef {
		if a == 0 {
			continue
		}
		for j, b := range q.Coef {
			out[i+j] += a * b
		}
	}
	return Polynomial{Coef: out}.Trim()
}

// Derivative returns dp/dx, trimmed.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coef) <= 1 {
		return Polynomial{}
	}
	out := make([]float64, len(p.Coef)-1)
	for i := 1; i < len(p.Coef); i++ {
		out[i-1] = float64(i) * p.Coef[i]
	}
	return Polynomial{Coef: out}.Trim()
}
