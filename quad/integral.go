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

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-lens/hwy"
	hwymath "github.com/ajroetker/go-lens/hwy/contrib/math"
)

// Parallel tuning parameters
const (
	// MinParallelElems is the batch size below which the kernel runs on the
	// calling goroutine.
	MinParallelElems = 4096

	// StripSize is the number of batch elements a worker integrates at a time.
	// A strip's accumulator and step widths stay in L1/L2 across all steps.
	StripSize = 1024
)

// Integral returns I(r[i], c) for every element of r.
//
// Example:
//
//	// Potential-shaped integral at three radii for a unit Gaussian.
//	v := quad.Integral([]float64{0, 0.5, 1}, 0.5)
func Integral(r []float64, c float64, opts ...Option) []float64 {
	out := make([]float64, len(r))
	IntegralTo(out, r, c, opts...)
	return out
}

// IntegralTo writes I(r[i], c) into dst[i]. It panics if dst is shorter than r.
func IntegralTo(dst, r []float64, c float64, opts ...Option) {
	if len(dst) < len(r) {
		panic("quad: dst shorter than r")
	}
	n := len(r)
	if n == 0 {
		return
	}
	cfg := newConfig(opts)

	if n < MinParallelElems || cfg.workers == 1 {
		s := newStrip(min(n, StripSize))
		for lo := 0; lo < n; lo += StripSize {
			hi := min(lo+StripSize, n)
			s.integrate(dst[lo:hi], r[lo:hi], c, cfg)
		}
		return
	}

	numStrips := (n + StripSize - 1) / StripSize
	numWorkers := min(cfg.workers, numStrips)

	work := make(chan int, numStrips)
	for i := range numStrips {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			s := newStrip(StripSize)
			for i := range work {
				lo := i * StripSize
				hi := min(lo+StripSize, n)
				s.integrate(dst[lo:hi], r[lo:hi], c, cfg)
			}
		})
	}
	wg.Wait()
}

// IntegralDense evaluates Integral over every entry of r and returns a matrix
// of the same shape. An empty matrix yields an empty matrix.
func IntegralDense(r *mat.Dense, c float64, opts ...Option) *mat.Dense {
	if r.IsEmpty() {
		return &mat.Dense{}
	}
	rows, cols := r.Dims()
	flat := make([]float64, rows*cols)
	for i := range rows {
		copy(flat[i*cols:(i+1)*cols], r.RawRowView(i))
	}
	IntegralTo(flat, flat, c, opts...)
	return mat.NewDense(rows, cols, flat)
}

// strip is one worker's scratch: the step widths and left-edge values of up
// to len(dx) elements, plus every working vector of the kernel. A strip is
// allocated once per worker and reused for every strip it integrates.
type strip struct {
	dx   []float64
	prev []float64

	half, one, zero, twelfth   hwy.Vec[float64]
	negC, cv, twoC, steps, idx hwy.Vec[float64]
	h, x, t, e, q, y, yl, acc  hwy.Vec[float64]
	isZero                     hwy.Mask[float64]
}

func newStrip(size int) *strip {
	s := &strip{
		dx:   make([]float64, size),
		prev: make([]float64, size),
	}
	for _, v := range []*hwy.Vec[float64]{
		&s.half, &s.one, &s.zero, &s.twelfth,
		&s.negC, &s.cv, &s.twoC, &s.steps, &s.idx,
		&s.h, &s.x, &s.t, &s.e, &s.q, &s.y, &s.yl, &s.acc,
	} {
		*v = hwy.MakeVec[float64]()
	}
	s.isZero = hwy.MakeMask[float64]()
	hwy.SetTo(&s.half, 0.5)
	hwy.SetTo(&s.one, 1.0)
	hwy.SetTo(&s.twelfth, 1.0/12)
	return s
}

// integrate runs the trapezoid over one contiguous strip of at most len(s.dx)
// elements. dst and r may alias: r is only read before the accumulator is
// seeded.
//
// f at the right edge of step i is f at the left edge of step i+1, so each
// step evaluates the integrand once and carries it over in s.prev. f(0) = 0
// seeds the first step.
func (s *strip) integrate(dst, r []float64, c float64, cfg *config) {
	n := len(r)
	dx := s.dx[:n]
	prev := s.prev[:n]
	steps := float64(cfg.steps)

	for j, rj := range r {
		dx[j] = rj / steps
	}
	out := dst[:n]
	clear(out)
	clear(prev)

	hwy.SetTo(&s.negC, -c)
	lanes := hwy.MaxLanes[float64]()

	for i := range cfg.steps {
		hwy.SetTo(&s.idx, float64(i+1))
		for j := 0; j < n; j += lanes {
			hwy.LoadTo(&s.h, dx[j:])
			hwy.MulTo(&s.x, s.h, s.idx)
			s.integrand()

			hwy.LoadTo(&s.yl, prev[j:])
			hwy.AddTo(&s.acc, s.yl, s.y)
			hwy.MulTo(&s.acc, s.acc, s.half)
			hwy.MulTo(&s.acc, s.acc, s.h)
			hwy.LoadTo(&s.t, out[j:])
			hwy.AddTo(&s.acc, s.t, s.acc)
			hwy.Store(s.acc, out[j:])
			hwy.Store(s.y, prev[j:])
		}
	}

	if cfg.endCorrection {
		s.correct(out, dx, steps, c)
	}
}

// integrand stores (1 − e^{−c·x²})/x for s.x in s.y, with lanes where x == 0
// set to the limit 0. The quotient is computed for every lane and then
// discarded where x is zero.
func (s *strip) integrand() {
	hwy.MulTo(&s.t, s.x, s.x)
	hwy.MulTo(&s.t, s.negC, s.t)
	hwymath.Exp64To(&s.e, s.t)
	hwy.SubTo(&s.q, s.one, s.e)
	hwy.DivTo(&s.q, s.q, s.x)
	hwy.EqualTo(&s.isZero, s.x, s.zero)
	hwy.IfThenElseTo(&s.y, s.isZero, s.zero, s.q)
}

// correct subtracts h²/12·(f'(r) − f'(0)) from out, where f'(0) = c and
// f'(r) = (2c·r²·e^{−c·r²} − (1 − e^{−c·r²}))/r². Lanes with r == 0 are left
// untouched.
func (s *strip) correct(out, dx []float64, steps, c float64) {
	hwy.SetTo(&s.cv, c)
	hwy.SetTo(&s.twoC, 2*c)
	hwy.SetTo(&s.steps, steps)
	lanes := hwy.MaxLanes[float64]()

	for j := 0; j < len(out); j += lanes {
		hwy.LoadTo(&s.h, dx[j:])
		hwy.MulTo(&s.x, s.h, s.steps)
		hwy.MulTo(&s.t, s.x, s.x)
		hwy.MulTo(&s.q, s.negC, s.t)
		hwymath.Exp64To(&s.e, s.q)

		// num = 2c·(r²·e) − (1 − e); f'(r) − c = num/r² − c
		hwy.MulTo(&s.q, s.t, s.e)
		hwy.MulTo(&s.q, s.twoC, s.q)
		hwy.SubTo(&s.y, s.one, s.e)
		hwy.SubTo(&s.q, s.q, s.y)
		hwy.DivTo(&s.q, s.q, s.t)
		hwy.SubTo(&s.q, s.q, s.cv)

		hwy.MulTo(&s.y, s.h, s.h)
		hwy.MulTo(&s.y, s.y, s.twelfth)
		hwy.MulTo(&s.y, s.y, s.q)
		hwy.EqualTo(&s.isZero, s.t, s.zero)
		hwy.IfThenElseTo(&s.y, s.isZero, s.zero, s.y)

		hwy.LoadTo(&s.acc, out[j:])
		hwy.SubTo(&s.acc, s.acc, s.y)
		hwy.Store(s.acc, out[j:])
	}
}
