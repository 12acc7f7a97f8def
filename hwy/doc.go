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

// Package hwy provides a portable lane-vector abstraction used by the lens
// kernels in this module.
//
// A kernel is written once against Vec and Mask: it loads a full-width chunk
// of a batch, applies element-wise arithmetic, compares to build a Mask and
// selects with IfThenElse instead of branching per element, then stores the
// chunk back. The width of a vector follows the CPU detected at init time
// (16 bytes for SSE2/NEON, 32 for AVX2, 64 for AVX-512), so the same kernel
// walks a batch in the step size the hardware prefers.
//
// Set HWY_NO_SIMD=1 to force the scalar configuration, which is useful when
// comparing results across machines.
//
// Example:
//
//	zero := hwy.Zero[float64]()
//	for i := 0; i < len(x); i += zero.NumLanes() {
//	    v := hwy.Load(x[i:])
//	    q := hwy.Div(hwy.Set(1.0), v)
//	    q = hwy.IfThenElse(hwy.Equal(v, zero), zero, q)
//	    hwy.Store(q, out[i:])
//	}
package hwy
