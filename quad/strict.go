package quad

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeRadius is returned by Validate for a radius below zero.
	ErrNegativeRadius = errors.New("quad: negative radius")
	// ErrNonPositiveScale is returned by Validate for c ≤ 0.
	ErrNonPositiveScale = errors.New("quad: non-positive scale")
	// ErrNonFinite is returned by Validate for NaN or infinite input.
	ErrNonFinite = errors.New("quad: non-finite input")
)

// Validate checks the caller contract of Integral: every r[i] finite and
// non-negative, c finite and positive. The first violation is reported.
func Validate(r []float64, c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("scale c=%v: %w", c, ErrNonFinite)
	}
	if c <= 0 {
		return fmt.Errorf("scale c=%v: %w", c, ErrNonPositiveScale)
	}
	for i, x := range r {
		switch {
		case math.IsNaN(x) || math.IsInf(x, 0):
			return fmt.Errorf("r[%d]=%v: %w", i, x, ErrNonFinite)
		case x < 0:
			return fmt.Errorf("r[%d]=%v: %w", i, x, ErrNegativeRadius)
		}
	}
	return nil
}

// IntegralStrict is Integral preceded by Validate.
func IntegralStrict(r []float64, c float64, opts ...Option) ([]float64, error) {
	if err := Validate(r, c); err != nil {
		return nil, err
	}
	return Integral(r, c, opts...), nil
}
