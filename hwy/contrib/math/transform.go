package math

import "github.com/ajroetker/go-lens/hwy"

// ExpTransform64 applies exp(x) to each element.
// Only min(len(input), len(output)) elements are processed.
func ExpTransform64(input, output []float64) {
	transform64(input, output, Exp64To, Exp64Scalar)
}

// Expm1Transform64 applies exp(x)-1 to each element.
func Expm1Transform64(input, output []float64) {
	transform64(input, output, Expm1_64To, Expm1_64Scalar)
}

// ErfTransform64 applies erf(x) to each element.
func ErfTransform64(input, output []float64) {
	transform64(input, output, Erf64To, Erf64Scalar)
}

// transform64 runs vecFn over full vectors and scalarFn over the tail. The
// two working vectors are reused for every step.
func transform64(input, output []float64, vecFn func(*hwy.Vec[float64], hwy.Vec[float64]), scalarFn func(float64) float64) {
	n := min(len(input), len(output))
	lanes := hwy.MaxLanes[float64]()
	in := hwy.MakeVec[float64]()
	out := hwy.MakeVec[float64]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		hwy.LoadTo(&in, input[i:])
		vecFn(&out, in)
		hwy.Store(out, output[i:])
	}
	for ; i < n; i++ {
		output[i] = scalarFn(input[i])
	}
}
