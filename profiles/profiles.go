package profiles

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// RadiusFloor is the smallest radius any formula divides by.
const RadiusFloor = 0.00001

// Profile names as used in model configuration.
const (
	GaussianName = "GAUSSIAN"
	SISName      = "SIS"
)

// ErrUnknownProfile is returned for a profile name not in Names.
var ErrUnknownProfile = errors.New("profiles: unknown profile")

// Names returns the supported profile names in sorted order.
func Names() []string {
	return []string{GaussianName, SISName}
}

// Check returns nil if name is a supported profile, and ErrUnknownProfile
// wrapped with the name otherwise.
func Check(name string) error {
	if slices.Contains(Names(), name) {
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownProfile)
}

func mustSameLen(op string, x, y []float64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("profiles: %s: len(x)=%d != len(y)=%d", op, len(x), len(y)))
	}
}

// radii returns |(x, y) − (cx, cy)| per element.
func radii(x, y []float64, cx, cy float64) []float64 {
	r := make([]float64, len(x))
	for i := range x {
		dx := x[i] - cx
		dy := y[i] - cy
		r[i] = math.Sqrt(dx*dx + dy*dy)
	}
	return r
}

func floorRadius(r float64) float64 {
	return math.Max(r, RadiusFloor)
}
