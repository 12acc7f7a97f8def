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
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// trapezoidScalar is a one-element-at-a-time rendition of the kernel with the
// same operation order, used to check the vector path bit for bit.
func trapezoidScalar(r, c float64, steps int) float64 {
	dx := r / float64(steps)
	f := func(x float64) float64 {
		if x == 0 {
			return 0
		}
		return (1 - math.Exp(-c*(x*x))) / x
	}
	var sum float64
	for i := range steps {
		yl := f(dx * float64(i))
		yr := f(dx * float64(i+1))
		sum += (yl + yr) * 0.5 * dx
	}
	return sum
}

func TestIntegralZeroRadius(t *testing.T) {
	for _, c := range []float64{0.1, 1, 10, 1e4} {
		got := Integral([]float64{0, 0, 0}, c)
		for i, v := range got {
			if v != 0 {
				t.Errorf("Integral(0, %v)[%d] = %v, want 0", c, i, v)
			}
		}
	}
}

func TestIntegralEmpty(t *testing.T) {
	if got := Integral(nil, 1); len(got) != 0 {
		t.Errorf("Integral(nil) has %d elements, want 0", len(got))
	}
}

func TestIntegralMatchesExact(t *testing.T) {
	// The 200-step trapezoid error is ≈ h²·c/12 with h = r/200. Where that
	// stays small (c·r² ≲ 24) results agree to four decimal places; beyond
	// it the bound itself is the tolerance.
	for _, r := range []float64{0.01, 1, 10} {
		for _, c := range []float64{0.1, 1, 10} {
			got := Integral([]float64{r}, c)[0]
			want := Exact(r, c)
			h := r / DefaultSteps
			tol := math.Max(5e-5, 1.1*h*h*c/12)
			if c*r*r <= 24 && tol != 5e-5 {
				t.Fatalf("tolerance for r=%v c=%v unexpectedly loose: %v", r, c, tol)
			}
			if d := math.Abs(got - want); d > tol {
				t.Errorf("Integral(%v, %v) = %v, want %v (|diff| %v > %v)", r, c, got, want, d, tol)
			}
		}
	}
}

func TestIntegralEndCorrection(t *testing.T) {
	for _, r := range []float64{0, 0.01, 1, 10} {
		for _, c := range []float64{0.1, 1, 10} {
			got := Integral([]float64{r}, c, WithEndCorrection())[0]
			want := Exact(r, c)
			if d := math.Abs(got - want); d > 1e-5 {
				t.Errorf("corrected Integral(%v, %v) = %v, want %v (|diff| %v)", r, c, got, want, d)
			}
		}
	}
}

func TestIntegralStepsImproveAccuracy(t *testing.T) {
	r, c := 10.0, 1.0
	want := Exact(r, c)
	prev := math.Inf(1)
	for _, steps := range []int{50, 100, 200, 400, 800} {
		err := math.Abs(Integral([]float64{r}, c, WithSteps(steps))[0] - want)
		if err >= prev {
			t.Errorf("steps=%d error %v did not improve on %v", steps, err, prev)
		}
		prev = err
	}
}

func TestWithStepsNonPositiveUsesDefault(t *testing.T) {
	r := []float64{3}
	want := Integral(r, 0.7)[0]
	for _, n := range []int{0, -5} {
		if got := Integral(r, 0.7, WithSteps(n))[0]; got != want {
			t.Errorf("WithSteps(%d) = %v, want default %v", n, got, want)
		}
	}
}

func TestIntegralMonotonicInRadius(t *testing.T) {
	for _, c := range []float64{0.1, 1, 10} {
		r := make([]float64, 500)
		for i := range r {
			r[i] = float64(i) * 0.03
		}
		got := Integral(r, c)
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				t.Fatalf("c=%v: Integral decreased between r=%v (%v) and r=%v (%v)", c, r[i-1], got[i-1], r[i], got[i])
			}
		}
	}
}

func TestIntegralMatchesScalarFold(t *testing.T) {
	r := []float64{0, 1e-3, 0.25, 1, 2.5, 7, 13}
	c := 0.5
	got := Integral(r, c)
	for i, ri := range r {
		if want := trapezoidScalar(ri, c, DefaultSteps); got[i] != want {
			t.Errorf("Integral(%v)[%d] = %v, want %v bit for bit", ri, i, got[i], want)
		}
	}
}

func TestIntegralWorkerCountDoesNotChangeBits(t *testing.T) {
	n := MinParallelElems + 3*StripSize + 17
	r := make([]float64, n)
	for i := range r {
		r[i] = math.Mod(float64(i)*0.37, 9)
	}

	serial := Integral(r, 1.3, WithWorkers(1))
	parallel := Integral(r, 1.3, WithWorkers(4))
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("element %d: serial %v != parallel %v", i, serial[i], parallel[i])
		}
	}
}

func TestIntegralToInPlace(t *testing.T) {
	r := []float64{0.5, 1, 2}
	want := Integral(r, 2)
	IntegralTo(r, r, 2)
	for i := range r {
		if r[i] != want[i] {
			t.Errorf("in-place[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestStripIntegrateDoesNotAllocate(t *testing.T) {
	r := make([]float64, StripSize)
	for i := range r {
		r[i] = float64(i) * 0.01
	}
	dst := make([]float64, len(r))
	s := newStrip(StripSize)

	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{"plain", []Option{WithSteps(20)}},
		{"end correction", []Option{WithSteps(20), WithEndCorrection()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newConfig(tc.opts)
			allocs := testing.AllocsPerRun(10, func() {
				s.integrate(dst, r, 0.5, cfg)
			})
			if allocs != 0 {
				t.Errorf("strip.integrate allocated %v times per run, want 0", allocs)
			}
		})
	}
}

func TestStripReuseAcrossLengths(t *testing.T) {
	// A strip that integrated a long batch must not leak state into a
	// shorter one that ends mid-vector.
	s := newStrip(StripSize)
	cfg := newConfig(nil)
	long := make([]float64, StripSize)
	for i := range long {
		long[i] = 5 + float64(i)*0.003
	}
	s.integrate(make([]float64, len(long)), long, 0.8, cfg)

	short := []float64{0, 0.3, 2, 11, 4.5}
	got := make([]float64, len(short))
	s.integrate(got, short, 0.8, cfg)
	for i, ri := range short {
		if want := trapezoidScalar(ri, 0.8, DefaultSteps); got[i] != want {
			t.Errorf("reused strip[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestIntegralToPanicsOnShortDst(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IntegralTo with short dst did not panic")
		}
	}()
	IntegralTo(make([]float64, 1), []float64{1, 2}, 1)
}

func TestIntegralDenseKeepsShape(t *testing.T) {
	r := mat.NewDense(2, 3, []float64{0, 0.5, 1, 1.5, 2, 2.5})
	got := IntegralDense(r, 0.5)

	rows, cols := got.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("IntegralDense dims = %dx%d, want 2x3", rows, cols)
	}
	flat := Integral([]float64{0, 0.5, 1, 1.5, 2, 2.5}, 0.5)
	for i := range rows {
		for j := range cols {
			if got.At(i, j) != flat[i*cols+j] {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got.At(i, j), flat[i*cols+j])
			}
		}
	}
	if r.At(1, 2) != 2.5 {
		t.Errorf("input mutated: At(1,2) = %v", r.At(1, 2))
	}
}

func TestIntegralDenseSubmatrix(t *testing.T) {
	full := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	sub := full.Slice(1, 3, 1, 3).(*mat.Dense)
	got := IntegralDense(sub, 0.1)
	want := Integral([]float64{5, 6, 8, 9}, 0.1)
	for i, w := range want {
		if g := got.At(i/2, i%2); g != w {
			t.Errorf("At(%d,%d) = %v, want %v", i/2, i%2, g, w)
		}
	}
}

func TestIntegralDenseEmpty(t *testing.T) {
	if got := IntegralDense(&mat.Dense{}, 1); !got.IsEmpty() {
		t.Error("IntegralDense of empty matrix is not empty")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		r    []float64
		c    float64
		want error
	}{
		{"ok", []float64{0, 1, 2}, 1, nil},
		{"negative radius", []float64{1, -1}, 1, ErrNegativeRadius},
		{"zero scale", []float64{1}, 0, ErrNonPositiveScale},
		{"negative scale", []float64{1}, -2, ErrNonPositiveScale},
		{"nan radius", []float64{math.NaN()}, 1, ErrNonFinite},
		{"inf scale", []float64{1}, math.Inf(1), ErrNonFinite},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.r, tc.c)
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestIntegralStrict(t *testing.T) {
	if _, err := IntegralStrict([]float64{-1}, 1); !errors.Is(err, ErrNegativeRadius) {
		t.Errorf("IntegralStrict(-1) err = %v, want ErrNegativeRadius", err)
	}
	got, err := IntegralStrict([]float64{1}, 1)
	if err != nil {
		t.Fatalf("IntegralStrict(1) err = %v", err)
	}
	if want := Integral([]float64{1}, 1)[0]; got[0] != want {
		t.Errorf("IntegralStrict(1) = %v, want %v", got[0], want)
	}
}

func BenchmarkIntegral(b *testing.B) {
	for _, n := range []int{64, 4096, 65536} {
		r := make([]float64, n)
		for i := range r {
			r[i] = float64(i%1000) * 0.01
		}
		out := make([]float64, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				IntegralTo(out, r, 0.5)
			}
		})
	}
}

func BenchmarkScalarFold(b *testing.B) {
	r := make([]float64, 65536)
	for i := range r {
		r[i] = float64(i%1000) * 0.01
	}
	out := make([]float64, len(r))
	b.ReportAllocs()
	for range b.N {
		for i, ri := range r {
			out[i] = trapezoidScalar(ri, 0.5, DefaultSteps)
		}
	}
}
