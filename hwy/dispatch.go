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

import "os"

// DispatchLevel identifies the instruction set the vector width was chosen for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set once by the per-architecture init.
var (
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName  = "scalar"
)

// CurrentLevel returns the dispatch level selected at init time.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector width in bytes.
func CurrentWidth() int { return currentWidth }

// CurrentName returns a short name for the dispatch target.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether HWY_NO_SIMD is set to a non-empty value other
// than "0". When set, the scalar 16-byte configuration is used regardless of
// CPU features.
func NoSimdEnv() bool {
	v := os.Getenv("HWY_NO_SIMD")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte vectors so lane counts match SSE2/NEON
	currentName = "scalar"
}
