package lensmodel

import "github.com/ajroetker/go-lens/profiles"

// Component is a single lens profile with its parameters bound.
type Component interface {
	// Name is the profile name, one of profiles.Names().
	Name() string
	Function(x, y []float64) []float64
	Derivatives(x, y []float64) (fx, fy []float64)
	Hessian(x, y []float64) (fxx, fxy, fyx, fyy []float64)
}

type gaussian struct {
	profile profiles.Gaussian
	params  profiles.GaussianParams
}

// NewGaussian binds params to a Gaussian profile.
func NewGaussian(g profiles.Gaussian, params profiles.GaussianParams) Component {
	return gaussian{profile: g, params: params}
}

func (g gaussian) Name() string { return profiles.GaussianName }

func (g gaussian) Function(x, y []float64) []float64 {
	return g.profile.Function(x, y, g.params)
}

func (g gaussian) Derivatives(x, y []float64) ([]float64, []float64) {
	return g.profile.Derivatives(x, y, g.params)
}

func (g gaussian) Hessian(x, y []float64) ([]float64, []float64, []float64, []float64) {
	return g.profile.Hessian(x, y, g.params)
}

type sis struct {
	params profiles.SISParams
}

// NewSIS binds params to a singular isothermal sphere.
func NewSIS(params profiles.SISParams) Component {
	return sis{params: params}
}

func (s sis) Name() string { return profiles.SISName }

func (s sis) Function(x, y []float64) []float64 {
	return profiles.SIS{}.Function(x, y, s.params)
}

func (s sis) Derivatives(x, y []float64) ([]float64, []float64) {
	return profiles.SIS{}.Derivatives(x, y, s.params)
}

func (s sis) Hessian(x, y []float64) ([]float64, []float64, []float64, []float64) {
	return profiles.SIS{}.Hessian(x, y, s.params)
}
