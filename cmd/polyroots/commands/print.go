package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"polyroots/internal/poly"
)

// parseCoefs parses "1,-2,0.5" into ascending coefficients.
func parseCoefs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no coefficients given")
	}
	return out, nil
}

// parseComplexPoint parses "re,im" (or just "re") into a complex128.
func parseComplexPoint(s string) (complex128, error) {
	parts := strings.SplitN(s, ",", 2)
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("bad real part %q: %w", parts[0], err)
	}
	im := 0.0
	if len(parts) == 2 {
		im, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, fmt.Errorf("bad imaginary part %q: %w", parts[1], err)
		}
	}
	return complex(re, im), nil
}

// resolvePoly builds a polynomial from --coefs, or loads a saved one when
// the argument names a workspace entry.
func resolvePoly(coefs, name string) (poly.Polynomial, error) {
	if coefs != "" {
		c, err := parseCoefs(coefs)
		if err != nil {
			return poly.Polynomial{}, err
		}
		return poly.Build(c)
	}
	if name == "" {
		return poly.Polynomial{}, fmt.Errorf("coefficients (-c) or a saved polynomial name required")
	}
	c, ok, err := appWire.Polys.LoadPolynomial(name)
	if err != nil {
		return poly.Polynomial{}, err
	}
	if !ok {
		return poly.Polynomial{}, fmt.Errorf("no polynomial named %q", name)
	}
	return poly.Build(c)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatComplex(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%g", real(z))
	}
	if imag(z) < 0 {
		return fmt.Sprintf("%g - %gi", real(z), -imag(z))
	}
	return fmt.Sprintf("%g + %gi", real(z), imag(z))
}
