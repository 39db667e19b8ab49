package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoefficients is returned when a coefficient is NaN or Inf.
	ErrInvalidCoefficients = errors.New("poly: coefficients must be finite")

	// ErrConstant is returned when a solver is given a constant polynomial.
	ErrConstant = errors.New("poly: polynomial is constant")

	// ErrNoRealRoots is returned when a real solver finds none.
	ErrNoRealRoots = errors.New("poly: polynomial has no real roots")

	// ErrNotRealCoefficients is returned when real coefficients are required
	// but an imaginary part is nonzero.
	ErrNotRealCoefficients = errors.New("poly: polynomial must have real coefficients")

	// ErrNaNDiscriminant is returned when a discriminant computes to NaN.
	ErrNaNDiscriminant = errors.New("poly: discriminant is NaN")
)

// DegreeError reports a polynomial whose degree exceeds what an operation
// supports.
type DegreeError struct {
	Want int // highest supported degree
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("poly: degree must be at most %d", e.Want)
}
