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

import "github.com/ajroetker/go-lens/hwy"

// Destination-passing forms of the float64 functions. They write into dst
// (see hwy.MakeVec) and, in the base implementation, never allocate, which
// makes them the ones to call from a kernel's inner loop.

// Exp64To stores e^v in dst.
var Exp64To func(dst *hwy.Vec[float64], v hwy.Vec[float64])

// Expm1_64To stores e^v - 1 in dst.
var Expm1_64To func(dst *hwy.Vec[float64], v hwy.Vec[float64])

// Erf64To stores erf(v) in dst.
var Erf64To func(dst *hwy.Vec[float64], v hwy.Vec[float64])
