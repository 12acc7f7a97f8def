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

// Package math provides lane-wise transcendental functions for hwy vectors.
//
// Each function has a type-specific function variable (Exp64, Erf64, ...)
// initialised with a portable base implementation. An optimised
// implementation may replace the variable before first use; the generic
// wrappers (Exp, Erf, ...) dispatch through the variables so callers never
// need to know which implementation is active.
//
// # Functions
//
//   - Exp: e^x
//   - Expm1: e^x - 1, accurate near zero
//   - Erf: the error function
//
// Slice-at-once transforms (ExpTransform64, ErfTransform64, ...) walk a
// batch in full vector steps followed by a scalar tail.
//
// # Accuracy
//
// The base implementations agree with the standard library to within
// 1 ULP for float64 and are correctly rounded from float64 for float32.
//
// Special cases follow the math package: Exp(+Inf) = +Inf, Exp(-Inf) = 0,
// Erf(±Inf) = ±1, NaN propagates.
package math
