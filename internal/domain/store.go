package domain

// PolynomialStore persists named coefficient sets in the workspace.
type PolynomialStore interface {
	SavePolynomial(name string, coef []float64) error
	LoadPolynomial(name string) (coef []float64, ok bool, err error)
	ListPolynomials() (map[string][]float64, error)
	DeletePolynomial(name string) error
}

// RunStore keeps the workspace run history.
type RunStore interface {
	AppendRun(rec RunRecord) error
	Runs(limit int) ([]RunRecord, error)
}
