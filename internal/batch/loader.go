package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"polyroots/internal/domain"
)

// file is the on-disk shape of a problem set.
type file struct {
	Problems []domain.Problem `yaml:"problems"`
}

// Load reads and validates a YAML problem file.
func Load(path string) ([]domain.Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if len(f.Problems) == 0 {
		return nil, fmt.Errorf("batch: %s contains no problems", path)
	}

	for i := range f.Problems {
		p := &f.Problems[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("problem-%d", i+1)
		}
		if err := validate(*p); err != nil {
			return nil, fmt.Errorf("batch: %s: problem %q: %w", path, p.Name, err)
		}
	}
	return f.Problems, nil
}

func validate(p domain.Problem) error {
	switch p.Kind {
	case domain.KindEval, domain.KindDerivs:
		if len(p.Coefficients) == 0 {
			return fmt.Errorf("coefficients required")
		}
		if p.At == nil {
			return fmt.Errorf("evaluation point (at) required")
		}
		if p.Kind == domain.KindDerivs && p.Derivatives <= 0 {
			return fmt.Errorf("derivatives must be positive")
		}
	case domain.KindSolve, domain.KindSolveComplex:
		if len(p.Coefficients) == 0 {
			return fmt.Errorf("coefficients required")
		}
	case domain.KindInterp:
		if len(p.Points) == 0 {
			return fmt.Errorf("points required")
		}
		if p.At == nil {
			return fmt.Errorf("evaluation point (at) required")
		}
	case "":
		return fmt.Errorf("kind required")
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	return nil
}
