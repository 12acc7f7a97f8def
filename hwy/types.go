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

import "unsafe"

// Integers is the set of integer element types a Vec may hold.
type Integers interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floats is the set of floating-point element types a Vec may hold.
type Floats interface {
	~float32 | ~float64
}

// Lanes is the set of all element types a Vec may hold.
type Lanes interface {
	Integers | Floats
}

// Vec is a vector of lanes of type T.
//
// In the portable implementation a Vec wraps a slice whose length is at most
// MaxLanes[T](). A Vec loaded from a short tail has fewer lanes; binary
// operations work on the common prefix of their operands, so callers can
// process a batch in full-width steps without a separate tail loop.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of active lanes in v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes of v. The returned slice aliases v.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask is a per-lane predicate produced by comparisons and consumed by
// IfThenElse, MaskLoad and MaskStore.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes covered by m.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Get reports whether lane i is set.
func (m Mask[T]) Get(i int) bool {
	return m.bits[i]
}

// CountTrue returns the number of set lanes.
func (m Mask[T]) CountTrue() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// MaxLanes returns the number of T lanes in a full vector at the current
// dispatch width. It is always at least 1.
func MaxLanes[T Lanes]() int {
	var zero T
	n := currentWidth / int(unsafe.Sizeof(zero))
	if n < 1 {
		return 1
	}
	return n
}
