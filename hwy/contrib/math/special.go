package math

import "github.com/ajroetker/go-lens/hwy"

// Erf32 computes the error function erf(x) for each lane of a float32 vector.
//
// The error function is defined as:
//
//	erf(x) = (2/√π) * ∫[0,x] e^(-t²) dt
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
var Erf32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Erf64 computes the error function for each lane of a float64 vector.
var Erf64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Erf computes the error function for each lane of the input vector.
func Erf[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Erf32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Erf64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("hwy/contrib/math: unsupported float type")
	}
}
