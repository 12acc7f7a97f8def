package hwy

import "math"

// Portable implementations of the lane operations. Every operation here
// allocates its result; ops_to.go has the variants that write into an
// existing vector. The lane count of the result is the common prefix of the
// operands, which is how short tails flow through a kernel unchanged.

func commonLanes(n int, rest ...int) int {
	for _, m := range rest {
		if m < n {
			n = m
		}
	}
	return n
}

func lanewise[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	n := commonLanes(len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		out[i] = op(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := commonLanes(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = pred(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Load creates a vector from the first MaxLanes[T]() elements of src, or
// fewer if src is shorter.
func Load[T Lanes](src []T) Vec[T] {
	n := commonLanes(MaxLanes[T](), len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the lanes of v to dst, stopping at the end of dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := commonLanes(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Set returns a full vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero returns a full vector of zeros.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota returns a full vector with lane i equal to start+i.
func Iota[T Lanes](start T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = start + T(i)
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division. Division by zero follows IEEE 754.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T { return x / y })
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return lanewise(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = -x
	}
	return Vec[T]{data: out}
}

// Abs computes the absolute value of each lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		out[i] = x
	}
	return Vec[T]{data: out}
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: out}
}

// MulAdd computes a*b + c per lane with a single rounding.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := commonLanes(len(a.data), len(b.data), len(c.data))
	out := make([]T, n)
	for i := range n {
		out[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: out}
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// FirstN returns a full mask with the first n lanes set.
func FirstN[T Lanes](n int) Mask[T] {
	bits := make([]bool, MaxLanes[T]())
	for i := 0; i < n && i < len(bits); i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a[i] where mask is set and b[i] elsewhere.
//
// Both operands are fully evaluated before selection, so a lane of a may hold
// NaN or Inf as long as the mask deselects it.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := commonLanes(len(mask.bits), len(a.data), len(b.data))
	out := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			out[i] = a.data[i]
		} else {
			out[i] = b.data[i]
		}
	}
	return Vec[T]{data: out}
}

// MaskLoad loads src only for lanes where the mask is set; other lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := commonLanes(len(mask.bits), len(src))
	out := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			out[i] = src[i]
		}
	}
	return Vec[T]{data: out}
}

// MaskStore stores v to dst only for lanes where the mask is set.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := commonLanes(len(mask.bits), len(v.data), len(dst))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
