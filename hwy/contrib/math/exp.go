package math

import "github.com/ajroetker/go-lens/hwy"

// Exp32 computes e^x for each lane of a float32 vector.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
var Exp32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Exp64 computes e^x for each lane of a float64 vector.
// Lanes below -745 underflow to 0; lanes above 709.78 overflow to +Inf.
var Exp64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Expm1_32 computes e^x - 1 for each lane of a float32 vector.
var Expm1_32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Expm1_64 computes e^x - 1 for each lane of a float64 vector.
var Expm1_64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Exp computes e^x for each lane of the input vector.
//
// Example:
//
//	v := hwy.Load([]float64{0, 1, -1})
//	r := math.Exp(v) // [1, e, 1/e]
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Exp32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Exp64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("hwy/contrib/math: unsupported float type")
	}
}

// Expm1 computes e^x - 1 for each lane of the input vector.
// Prefer it over Sub(Exp(v), 1) when |x| is small.
func Expm1[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Expm1_32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Expm1_64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("hwy/contrib/math: unsupported float type")
	}
}
