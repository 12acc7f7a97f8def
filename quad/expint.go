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

package quad

import "math"

// EulerGamma is the Euler–Mascheroni constant γ.
const EulerGamma = 0.57721566490153286060651209008240243

// seriesLimit is where Ein switches from its power series to E1.
const seriesLimit = 2.0

// Exact returns I(r, c) in closed form. Substituting t = c·x² gives
//
//	I(r, c) = ½ ∫₀^{c·r²} (1 − e^{−t})/t dt = ½·Ein(c·r²).
func Exact(r, c float64) float64 {
	return 0.5 * Ein(c*r*r)
}

// Ein returns the entire exponential integral ∫₀^z (1 − e^{−t})/t dt.
//
// For z ≤ 2 the alternating series Σ (−1)^{k+1} z^k/(k·k!) is summed
// directly; beyond that Ein(z) = E1(z) + ln z + γ avoids the cancellation
// the series suffers for large z.
func Ein(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return math.NaN()
	case z == 0:
		return 0
	case z <= seriesLimit:
		return einSeries(z)
	case math.IsInf(z, 1):
		return math.Inf(1)
	}
	return E1(z) + math.Log(z) + EulerGamma
}

// E1 returns the exponential integral ∫_z^∞ e^{−t}/t dt for z > 0.
// E1(0) = +Inf; negative and NaN arguments return NaN.
func E1(z float64) float64 {
	switch {
	case math.IsNaN(z) || z < 0:
		return math.NaN()
	case z == 0:
		return math.Inf(1)
	case math.IsInf(z, 1):
		return 0
	case z <= seriesLimit:
		return einSeries(z) - math.Log(z) - EulerGamma
	}
	return e1ContinuedFraction(z)
}

func einSeries(z float64) float64 {
	var sum float64
	term := z // z^k / k!
	for k := 1; k < 200; k++ {
		add := term / float64(k)
		if k%2 == 0 {
			add = -add
		}
		sum += add
		if math.Abs(add) <= 1e-17*math.Abs(sum) {
			break
		}
		term *= z / float64(k+1)
	}
	return sum
}

// e1ContinuedFraction evaluates E1 with the modified Lentz algorithm on the
// even form of its continued fraction; it converges quickly for z > 1.
func e1ContinuedFraction(z float64) float64 {
	const (
		tiny    = 1e-300
		eps     = 1e-16
		maxIter = 1000
	)
	b := z + 1
	c := 1 / tiny
	d := 1 / b
	h := d
	for i := 1; i <= maxIter; i++ {
		an := -float64(i * i)
		b += 2
		d = 1 / (an*d + b)
		c = b + an/c
		del := c * d
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return h * math.Exp(-z)
}
