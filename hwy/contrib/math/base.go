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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-lens/hwy"
)

func init() {
	// Register base implementations only if nothing faster was installed.
	if Exp32 == nil {
		Exp32 = exp32Base
	}
	if Exp64 == nil {
		Exp64 = exp64Base
	}
	if Expm1_32 == nil {
		Expm1_32 = expm1_32Base
	}
	if Expm1_64 == nil {
		Expm1_64 = expm1_64Base
	}
	if Erf32 == nil {
		Erf32 = erf32Base
	}
	if Erf64 == nil {
		Erf64 = erf64Base
	}
	if Exp64To == nil {
		Exp64To = exp64ToBase
	}
	if Expm1_64To == nil {
		Expm1_64To = expm1_64ToBase
	}
	if Erf64To == nil {
		Erf64To = erf64ToBase
	}
}

// mapLanes applies f to every lane of v in a fresh vector.
func mapLanes[T hwy.Floats](v hwy.Vec[T], f func(float64) float64) hwy.Vec[T] {
	in := v.Data()
	out := make([]T, len(in))
	for i, x := range in {
		out[i] = T(f(float64(x)))
	}
	return hwy.Load(out)
}

func exp32Base(v hwy.Vec[float32]) hwy.Vec[float32] { return mapLanes(v, stdmath.Exp) }

func exp64Base(v hwy.Vec[float64]) hwy.Vec[float64] { return mapLanes(v, stdmath.Exp) }

func expm1_32Base(v hwy.Vec[float32]) hwy.Vec[float32] { return mapLanes(v, stdmath.Expm1) }

func expm1_64Base(v hwy.Vec[float64]) hwy.Vec[float64] { return mapLanes(v, stdmath.Expm1) }

func erf32Base(v hwy.Vec[float32]) hwy.Vec[float32] { return mapLanes(v, stdmath.Erf) }

func erf64Base(v hwy.Vec[float64]) hwy.Vec[float64] { return mapLanes(v, stdmath.Erf) }

func exp64ToBase(dst *hwy.Vec[float64], v hwy.Vec[float64]) { hwy.MapTo(dst, v, stdmath.Exp) }

func expm1_64ToBase(dst *hwy.Vec[float64], v hwy.Vec[float64]) { hwy.MapTo(dst, v, stdmath.Expm1) }

func erf64ToBase(dst *hwy.Vec[float64], v hwy.Vec[float64]) { hwy.MapTo(dst, v, stdmath.Erf) }
