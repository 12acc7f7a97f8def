package profiles

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SIS is the singular isothermal sphere,
//
//	κ(x, y) = θE / (2·√(x² + y²)),
//
// parameterised by its Einstein radius θE.
type SIS struct{}

// SISParams are the lens parameters of an SIS.
type SISParams struct {
	ThetaE  float64
	CenterX float64
	CenterY float64
}

// Function returns θE·r at each point.
func (SIS) Function(x, y []float64, p SISParams) []float64 {
	mustSameLen("SIS.Function", x, y)
	r := radii(x, y, p.CenterX, p.CenterY)
	for i := range r {
		r[i] *= p.ThetaE
	}
	return r
}

// Derivatives returns θE·(x', y')/r.
func (SIS) Derivatives(x, y []float64, p SISParams) (fx, fy []float64) {
	mustSameLen("SIS.Derivatives", x, y)
	fx = make([]float64, len(x))
	fy = make([]float64, len(x))
	for i := range x {
		dx := x[i] - p.CenterX
		dy := y[i] - p.CenterY
		r := floorRadius(math.Sqrt(dx*dx + dy*dy))
		fx[i] = p.ThetaE * dx / r
		fy[i] = p.ThetaE * dy / r
	}
	return fx, fy
}

// Hessian returns f_xx, f_xy, f_yx, f_yy. The mixed partials share a slice.
func (SIS) Hessian(x, y []float64, p SISParams) (fxx, fxy, fyx, fyy []float64) {
	mustSameLen("SIS.Hessian", x, y)
	fxx = make([]float64, len(x))
	fxy = make([]float64, len(x))
	fyy = make([]float64, len(x))
	for i := range x {
		dx := x[i] - p.CenterX
		dy := y[i] - p.CenterY
		r := floorRadius(math.Sqrt(dx*dx + dy*dy))
		r3 := r * r * r
		fxx[i] = p.ThetaE * dy * dy / r3
		fyy[i] = p.ThetaE * dx * dx / r3
		fxy[i] = -p.ThetaE * dx * dy / r3
	}
	return fxx, fxy, fxy, fyy
}

// Rho2Theta converts the 3D density normalisation into an Einstein radius.
func (SIS) Rho2Theta(rho0 float64) float64 { return 2 * math.Pi * rho0 }

// Theta2Rho converts an Einstein radius into the 3D density normalisation.
func (SIS) Theta2Rho(thetaE float64) float64 { return thetaE / (2 * math.Pi) }

// Mass3D returns 4πρ0·r.
func (SIS) Mass3D(r []float64, rho0 float64) []float64 {
	return scaled(r, 4*math.Pi*rho0)
}

// Mass3DLens is Mass3D for an Einstein radius thetaE.
func (s SIS) Mass3DLens(r []float64, thetaE float64) []float64 {
	return s.Mass3D(r, s.Theta2Rho(thetaE))
}

// Mass2D returns the projected mass 2π²ρ0·r.
func (SIS) Mass2D(r []float64, rho0 float64) []float64 {
	return scaled(r, 2*rho0*math.Pi*math.Pi)
}

// Mass2DLens is Mass2D for an Einstein radius thetaE, which is π·θE·r.
func (s SIS) Mass2DLens(r []float64, thetaE float64) []float64 {
	return s.Mass2D(r, s.Theta2Rho(thetaE))
}

// GravPot returns Mass3D(r)/r, modulo 4πG.
func (SIS) GravPot(x, y []float64, rho0, centerX, centerY float64) []float64 {
	mustSameLen("SIS.GravPot", x, y)
	r := radii(x, y, centerX, centerY)
	for i, ri := range r {
		ri = floorRadius(ri)
		r[i] = 4 * math.Pi * rho0 * ri / ri
	}
	return r
}

// Density returns ρ0/r².
func (SIS) Density(r []float64, rho0 float64) []float64 {
	out := make([]float64, len(r))
	for i, ri := range r {
		ri = floorRadius(ri)
		out[i] = rho0 / (ri * ri)
	}
	return out
}

// DensityLens is Density for an Einstein radius thetaE.
func (s SIS) DensityLens(r []float64, thetaE float64) []float64 {
	return s.Density(r, s.Theta2Rho(thetaE))
}

// Density2D returns the projected density πρ0/r.
func (SIS) Density2D(x, y []float64, rho0, centerX, centerY float64) []float64 {
	mustSameLen("SIS.Density2D", x, y)
	r := radii(x, y, centerX, centerY)
	for i, ri := range r {
		r[i] = math.Pi * rho0 / floorRadius(ri)
	}
	return r
}

func scaled(r []float64, k float64) []float64 {
	return floats.ScaleTo(make([]float64, len(r)), k, r)
}
