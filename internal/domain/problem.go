package domain

import "time"

// Kind selects the operation a Problem asks for.
type Kind string

const (
	KindEval         Kind = "eval"
	KindDerivs       Kind = "derivs"
	KindSolve        Kind = "solve"
	KindSolveComplex Kind = "solve-complex"
	KindInterp       Kind = "interp"
)

// Point is a single interpolation sample. Dy is only consulted for Hermite
// problems.
type Point struct {
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
	Dy float64 `yaml:"dy,omitempty" json:"dy,omitempty"`
}

// Problem is one unit of work in a batch file.
type Problem struct {
	Name         string    `yaml:"name" json:"name"`
	Kind         Kind      `yaml:"kind" json:"kind"`
	Coefficients []float64 `yaml:"coefficients,omitempty" json:"coefficients,omitempty"`
	Points       []Point   `yaml:"points,omitempty" json:"points,omitempty"`
	At           *float64  `yaml:"at,omitempty" json:"at,omitempty"`
	Derivatives  int       `yaml:"derivatives,omitempty" json:"derivatives,omitempty"`
	Hermite      bool      `yaml:"hermite,omitempty" json:"hermite,omitempty"`
	Save         string    `yaml:"save,omitempty" json:"save,omitempty"`
}

// ComplexValue is a JSON-friendly complex number.
type ComplexValue struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Result is the outcome of one Problem. Exactly one of the value fields is
// populated, matching the problem kind; Err carries a failure message.
type Result struct {
	Name         string         `json:"name"`
	Kind         Kind           `json:"kind"`
	Value        *float64       `json:"value,omitempty"`
	Derivatives  []float64      `json:"derivatives,omitempty"`
	Roots        []float64      `json:"roots,omitempty"`
	ComplexRoots []ComplexValue `json:"complex_roots,omitempty"`
	Err          string         `json:"error,omitempty"`
}

// RunRecord is one entry in the workspace run history.
type RunRecord struct {
	At      time.Time `json:"at"`
	Source  string    `json:"source"` // batch file path or CLI command
	Results []Result  `json:"results"`
}
