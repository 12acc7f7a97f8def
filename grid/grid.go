// Package grid builds coordinate grids for evaluating lens models and
// reshapes flat results into matrices.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MakeGrid returns the pixel-centre coordinates of a numPix × numPix grid
// with spacing deltaPix, centred on the origin. x varies fastest.
func MakeGrid(numPix int, deltaPix float64) (x, y []float64) {
	if numPix <= 0 {
		return nil, nil
	}
	n := numPix * numPix
	x = make([]float64, n)
	y = make([]float64, n)
	shift := float64(numPix-1) / 2
	for j := range numPix {
		for i := range numPix {
			k := j*numPix + i
			x[k] = (float64(i) - shift) * deltaPix
			y[k] = (float64(j) - shift) * deltaPix
		}
	}
	return x, y
}

// ToDense reshapes a flat row-major map of numPix × numPix values into a
// matrix whose row index is the y pixel. values is copied.
func ToDense(values []float64, numPix int) *mat.Dense {
	if len(values) != numPix*numPix {
		panic(fmt.Sprintf("grid: %d values do not fill a %d×%d grid", len(values), numPix, numPix))
	}
	if numPix == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(numPix, numPix, append([]float64(nil), values...))
}

// FromDense flattens m row by row into a new slice.
func FromDense(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// Radial returns n points evenly spaced along the positive x axis on
// (0, rMax]. The origin is excluded.
func Radial(rMax float64, n int) (x, y []float64) {
	if n <= 0 {
		return nil, nil
	}
	x = make([]float64, n)
	y = make([]float64, n)
	step := rMax / float64(n)
	for i := range x {
		x[i] = step * float64(i+1)
	}
	return x, y
}
