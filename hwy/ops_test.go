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

package hwy

import (
	"math"
	"testing"
)

func TestMaxLanes(t *testing.T) {
	if got, want := MaxLanes[float64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want)
	}
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if MaxLanes[float64]() < 1 {
		t.Errorf("MaxLanes[float64]() < 1")
	}
}

func TestDispatchName(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q", DispatchLevel(99).String())
	}
}

func TestNoSimdEnv(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"true", true},
	} {
		t.Setenv("HWY_NO_SIMD", tc.value)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestLoadStoreTail(t *testing.T) {
	n := MaxLanes[float64]()
	src := make([]float64, n+1)
	for i := range src {
		src[i] = float64(i + 1)
	}

	full := Load(src)
	if full.NumLanes() != n {
		t.Fatalf("Load full NumLanes = %d, want %d", full.NumLanes(), n)
	}
	tail := Load(src[n:])
	if tail.NumLanes() != 1 {
		t.Fatalf("Load tail NumLanes = %d, want 1", tail.NumLanes())
	}

	dst := make([]float64, n+1)
	Store(full, dst)
	Store(tail, dst[n:])
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Set(6.0)
	b := Set(3.0)
	cases := []struct {
		name string
		got  Vec[float64]
		want float64
	}{
		{"Add", Add(a, b), 9},
		{"Sub", Sub(a, b), 3},
		{"Mul", Mul(a, b), 18},
		{"Div", Div(a, b), 2},
		{"Min", Min(a, b), 3},
		{"Max", Max(a, b), 6},
		{"Neg", Neg(a), -6},
		{"Abs", Abs(Neg(a)), 6},
		{"Sqrt", Sqrt(Set(16.0)), 4},
		{"MulAdd", MulAdd(a, b, Set(1.0)), 19},
	}
	for _, tc := range cases {
		for i, got := range tc.got.Data() {
			if got != tc.want {
				t.Errorf("%s lane %d = %v, want %v", tc.name, i, got, tc.want)
			}
		}
	}
}

func TestCommonPrefix(t *testing.T) {
	full := Set(1.0)
	short := Load([]float64{2})
	if got := Add(full, short).NumLanes(); got != 1 {
		t.Errorf("Add(full, short).NumLanes() = %d, want 1", got)
	}
}

func TestIota(t *testing.T) {
	v := Iota(10.0)
	for i, x := range v.Data() {
		if x != 10+float64(i) {
			t.Errorf("Iota lane %d = %v, want %v", i, x, 10+float64(i))
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Iota(1.0)
	n := v.NumLanes()
	want := float64(n * (n + 1) / 2)
	if got := ReduceSum(v); got != want {
		t.Errorf("ReduceSum = %v, want %v", got, want)
	}
}

func TestIfThenElseGuardsDivision(t *testing.T) {
	x := Iota(0.0) // lane 0 is exactly zero
	zero := Zero[float64]()
	q := Div(Set(1.0), x)
	if !math.IsInf(q.Data()[0], 1) {
		t.Fatalf("1/0 = %v, want +Inf", q.Data()[0])
	}

	guarded := IfThenElse(Equal(x, zero), zero, q)
	for i, got := range guarded.Data() {
		want := 0.0
		if i > 0 {
			want = 1 / float64(i)
		}
		if got != want {
			t.Errorf("guarded lane %d = %v, want %v", i, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	x := Iota(0.0)
	one := Set(1.0)
	if got := LessThan(x, one).CountTrue(); got != 1 {
		t.Errorf("LessThan count = %d, want 1", got)
	}
	if got := LessEqual(x, one).CountTrue(); got != min(2, x.NumLanes()) {
		t.Errorf("LessEqual count = %d, want %d", got, min(2, x.NumLanes()))
	}
	if got := GreaterThan(x, one).CountTrue(); got != max(0, x.NumLanes()-2) {
		t.Errorf("GreaterThan count = %d, want %d", got, max(0, x.NumLanes()-2))
	}
}

func TestMaskLoadStore(t *testing.T) {
	n := MaxLanes[float64]()
	mask := FirstN[float64](1)
	src := make([]float64, n)
	for i := range src {
		src[i] = 7
	}
	v := MaskLoad(mask, src)
	if v.Data()[0] != 7 {
		t.Errorf("MaskLoad lane 0 = %v, want 7", v.Data()[0])
	}
	for i := 1; i < n; i++ {
		if v.Data()[i] != 0 {
			t.Errorf("MaskLoad lane %d = %v, want 0", i, v.Data()[i])
		}
	}

	dst := make([]float64, n)
	MaskStore(mask, Set(3.0), dst)
	if dst[0] != 3 {
		t.Errorf("MaskStore dst[0] = %v, want 3", dst[0])
	}
	for i := 1; i < n; i++ {
		if dst[i] != 0 {
			t.Errorf("MaskStore dst[%d] = %v, want 0", i, dst[i])
		}
	}
}

func BenchmarkGuardedDivide(b *testing.B) {
	x := make([]float64, 4096)
	out := make([]float64, len(x))
	for i := range x {
		x[i] = float64(i % 7)
	}
	zero := Zero[float64]()
	one := Set(1.0)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < len(x); i += zero.NumLanes() {
			v := Load(x[i:])
			q := IfThenElse(Equal(v, zero), zero, Div(one, v))
			Store(q, out[i:])
		}
	}
}
