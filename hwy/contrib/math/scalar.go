package math

import stdmath "math"

// Scalar helpers for single elements, used for tails that do not fill a
// vector and by callers that evaluate one point at a time.

// Exp32Scalar computes e^x for a single float32.
func Exp32Scalar(x float32) float32 { return float32(stdmath.Exp(float64(x))) }

// Exp64Scalar computes e^x for a single float64.
func Exp64Scalar(x float64) float64 { return stdmath.Exp(x) }

// Expm1_64Scalar computes e^x - 1 for a single float64.
func Expm1_64Scalar(x float64) float64 { return stdmath.Expm1(x) }

// Erf32Scalar computes erf(x) for a single float32.
func Erf32Scalar(x float32) float32 { return float32(stdmath.Erf(float64(x))) }

// Erf64Scalar computes erf(x) for a single float64.
func Erf64Scalar(x float64) float64 { return stdmath.Erf(x) }
