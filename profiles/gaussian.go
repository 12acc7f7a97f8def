// Copyright 2025 go-lens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package profiles

import (
	"math"

	"gonum.org/v1/gonum/floats"

	hwymath "github.com/ajroetker/go-lens/hwy/contrib/math"
	"github.com/ajroetker/go-lens/quad"
)

// Gaussian is a lens whose convergence is a circular Gaussian,
//
//	κ(r) = amp/(2πσ²) · exp(−r²/(2σ²)),
//
// with amp the 2D (projected) amplitude, equal to the total projected mass.
//
// The potential has no elementary closed form; Function evaluates it with
// quad.Integral. Steps and EndCorrection are passed through to the
// quadrature; their zero values reproduce the 200-step plain trapezoid.
type Gaussian struct {
	Steps         int
	EndCorrection bool
}

// GaussianParams are the lens parameters of a Gaussian.
type GaussianParams struct {
	Amp     float64 // 2D amplitude
	Sigma   float64 // standard deviation
	CenterX float64
	CenterY float64
}

func (g Gaussian) quadOptions() []quad.Option {
	opts := []quad.Option{quad.WithSteps(g.Steps)}
	if g.EndCorrection {
		opts = append(opts, quad.WithEndCorrection())
	}
	return opts
}

// Function returns the lensing potential at each (x[i], y[i]).
func (g Gaussian) Function(x, y []float64, p GaussianParams) []float64 {
	mustSameLen("Gaussian.Function", x, y)
	r := radii(x, y, p.CenterX, p.CenterY)
	sigmaX, sigmaY := p.Sigma, p.Sigma
	c := 1.0 / (2 * sigmaX * sigmaY)

	ampDensity := g.Amp2DTo3D(p.Amp, sigmaX, sigmaY)
	amp2d := ampDensity / (math.Sqrt(math.Pi) * math.Sqrt(sigmaX*sigmaY*2))
	amp2d *= 2 * 1.0 / (2 * c)

	quad.IntegralTo(r, r, c, g.quadOptions()...)
	floats.Scale(amp2d, r)
	return r
}

// Derivatives returns the deflection (∂f/∂x, ∂f/∂y) at each point.
func (g Gaussian) Derivatives(x, y []float64, p GaussianParams) (fx, fy []float64) {
	mustSameLen("Gaussian.Derivatives", x, y)
	fx = make([]float64, len(x))
	fy = make([]float64, len(x))
	for i := range x {
		dx := x[i] - p.CenterX
		dy := y[i] - p.CenterY
		R := floorRadius(math.Sqrt(dx*dx + dy*dy))
		alpha := g.alphaAbs(R, p.Amp, p.Sigma)
		fx[i] = alpha / R * dx
		fy[i] = alpha / R * dy
	}
	return fx, fy
}

// Hessian returns f_xx, f_xy, f_yx, f_yy at each point. The two mixed
// partials are the same slice.
func (g Gaussian) Hessian(x, y []float64, p GaussianParams) (fxx, fxy, fyx, fyy []float64) {
	mustSameLen("Gaussian.Hessian", x, y)
	fxx = make([]float64, len(x))
	fxy = make([]float64, len(x))
	fyy = make([]float64, len(x))
	sigmaX, sigmaY := p.Sigma, p.Sigma
	for i := range x {
		dx := x[i] - p.CenterX
		dy := y[i] - p.CenterY
		r := floorRadius(math.Sqrt(dx*dx + dy*dy))
		dAlpha := -g.dAlphaDR(r, p.Amp, sigmaX, sigmaY)
		alpha := g.alphaAbs(r, p.Amp, p.Sigma)

		k := -(dAlpha/r + alpha/(r*r))
		fxx[i] = k*(dx*dx)/r + alpha/r
		fyy[i] = k*(dy*dy)/r + alpha/r
		fxy[i] = k * dx * dy / r
	}
	return fxx, fxy, fxy, fyy
}

// Density returns the 3D mass density at radius r[i] for a 3D amplitude amp.
func (g Gaussian) Density(r []float64, amp, sigma float64) []float64 {
	return EllipticalGaussian(r, make([]float64, len(r)), amp, sigma, sigma, 0, 0)
}

// Density2D returns the projected density at each point for a 3D amplitude amp.
func (g Gaussian) Density2D(x, y []float64, amp, sigma, centerX, centerY float64) []float64 {
	amp2d := g.Amp3DTo2D(amp, sigma, sigma)
	return EllipticalGaussian(x, y, amp2d, sigma, sigma, centerX, centerY)
}

// Mass2D returns the mass enclosed in a projected circle of radius R[i] for a
// 3D amplitude amp.
func (g Gaussian) Mass2D(R []float64, amp, sigma float64) []float64 {
	out := make([]float64, len(R))
	for i, Ri := range R {
		out[i] = g.mass2D(Ri, amp, sigma)
	}
	return out
}

// Mass2DLens is Mass2D for a 2D amplitude amp. It tends to amp as R → ∞.
func (g Gaussian) Mass2DLens(R []float64, amp, sigma float64) []float64 {
	return g.Mass2D(R, g.Amp2DTo3D(amp, sigma, sigma), sigma)
}

// Mass3D returns the mass enclosed in a sphere of radius R[i] for a 3D
// amplitude amp.
func (g Gaussian) Mass3D(R []float64, amp, sigma float64) []float64 {
	sigmaX, sigmaY := sigma, sigma
	A := amp / (2 * math.Pi * sigmaX * sigmaY)
	c := 1.0 / (2 * sigmaX * sigmaY)

	erf := make([]float64, len(R))
	for i, Ri := range R {
		erf[i] = math.Sqrt(c) * Ri
	}
	hwymath.ErfTransform64(erf, erf)

	out := make([]float64, len(R))
	for i, Ri := range R {
		result := 1.0 / (2 * c) * (-Ri*math.Exp(-c*Ri*Ri) + erf[i]*math.Sqrt(math.Pi/(4*c)))
		out[i] = result * A * 4 * math.Pi
	}
	return out
}

// Mass3DLens is Mass3D for a 2D amplitude amp.
func (g Gaussian) Mass3DLens(R []float64, amp, sigma float64) []float64 {
	return g.Mass3D(R, g.Amp2DTo3D(amp, sigma, sigma), sigma)
}

// AlphaAbs returns the deflection magnitude at projected radius R[i] for a
// 2D amplitude amp. R is used as given; callers clamp it.
func (g Gaussian) AlphaAbs(R []float64, amp, sigma float64) []float64 {
	out := make([]float64, len(R))
	for i, Ri := range R {
		out[i] = g.alphaAbs(Ri, amp, sigma)
	}
	return out
}

// DAlphaDR returns dα/dR at projected radius R[i] for a 2D amplitude amp.
func (g Gaussian) DAlphaDR(R []float64, amp, sigmaX, sigmaY float64) []float64 {
	out := make([]float64, len(R))
	for i, Ri := range R {
		out[i] = g.dAlphaDR(Ri, amp, sigmaX, sigmaY)
	}
	return out
}

// Amp3DTo2D converts a 3D density amplitude into the 2D amplitude.
func (Gaussian) Amp3DTo2D(amp, sigmaX, sigmaY float64) float64 {
	return amp * math.Sqrt(math.Pi) * math.Sqrt(sigmaX*sigmaY*2)
}

// Amp2DTo3D converts a 2D amplitude into the 3D density amplitude.
func (Gaussian) Amp2DTo3D(amp, sigmaX, sigmaY float64) float64 {
	return amp / (math.Sqrt(math.Pi) * math.Sqrt(sigmaX*sigmaY*2))
}

func (g Gaussian) mass2D(R, amp, sigma float64) float64 {
	sigmaX, sigmaY := sigma, sigma
	amp2d := amp / (math.Sqrt(math.Pi) * math.Sqrt(sigmaX*sigmaY*2))
	c := 1.0 / (2 * sigmaX * sigmaY)
	return amp2d * 2 * math.Pi * 1.0 / (2 * c) * -math.Expm1(-c*R*R)
}

func (g Gaussian) alphaAbs(R, amp, sigma float64) float64 {
	ampDensity := g.Amp2DTo3D(amp, sigma, sigma)
	return g.mass2D(R, ampDensity, sigma) / math.Pi / R
}

func (g Gaussian) dAlphaDR(R, amp, sigmaX, sigmaY float64) float64 {
	c := 1.0 / (2 * sigmaX * sigmaY)
	A := g.Amp2DTo3D(amp, sigmaX, sigmaY) * math.Sqrt(2/math.Pi*sigmaX*sigmaY)
	u := c * R * R
	// −1 + (1+2u)·e^{−u}, rearranged to keep precision near the centre
	return 1.0 / (R * R) * (math.Expm1(-u) + 2*u*math.Exp(-u)) * A
}

// EllipticalGaussian returns amp/(2π·σx·σy) · exp(−((Δx/σx)² + (Δy/σy)²)/2)
// at each point. With amp the 2D amplitude this is the convergence of an
// axis-aligned elliptical Gaussian.
func EllipticalGaussian(x, y []float64, amp, sigmaX, sigmaY, centerX, centerY float64) []float64 {
	mustSameLen("EllipticalGaussian", x, y)
	c := amp / (2 * math.Pi * sigmaX * sigmaY)
	out := make([]float64, len(x))
	for i := range x {
		dx := (x[i] - centerX) / sigmaX
		dy := (y[i] - centerY) / sigmaY
		out[i] = c * math.Exp(-(dx*dx+dy*dy)/2)
	}
	return out
}
