package hwy

// Destination-passing variants of the lane operations. They write into a
// vector made by MakeVec (or MakeMask) instead of allocating, so a kernel can
// hold its working vectors across iterations of a hot loop. The destination
// is resized to the common lane count of the operands and may alias any of
// them.

// MakeVec returns a full-width vector with its own storage, for use as the
// destination of the *To operations.
func MakeVec[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// MakeMask returns a full-width mask with its own storage.
func MakeMask[T Lanes]() Mask[T] {
	return Mask[T]{bits: make([]bool, MaxLanes[T]())}
}

// LoadTo copies the leading lanes of src into dst.
func LoadTo[T Lanes](dst *Vec[T], src []T) {
	n := commonLanes(cap(dst.data), len(src))
	dst.data = dst.data[:n]
	copy(dst.data, src)
}

// SetTo fills every lane of dst with value, restoring it to full width.
func SetTo[T Lanes](dst *Vec[T], value T) {
	dst.data = dst.data[:cap(dst.data)]
	for i := range dst.data {
		dst.data[i] = value
	}
}

func lanewiseTo[T Lanes](dst *Vec[T], a, b Vec[T], op func(x, y T) T) {
	n := commonLanes(cap(dst.data), len(a.data), len(b.data))
	d := dst.data[:n]
	for i := range d {
		d[i] = op(a.data[i], b.data[i])
	}
	dst.data = d
}

// AddTo stores a+b in dst.
func AddTo[T Lanes](dst *Vec[T], a, b Vec[T]) {
	lanewiseTo(dst, a, b, func(x, y T) T { return x + y })
}

// SubTo stores a-b in dst.
func SubTo[T Lanes](dst *Vec[T], a, b Vec[T]) {
	lanewiseTo(dst, a, b, func(x, y T) T { return x - y })
}

// MulTo stores a*b in dst.
func MulTo[T Lanes](dst *Vec[T], a, b Vec[T]) {
	lanewiseTo(dst, a, b, func(x, y T) T { return x * y })
}

// DivTo stores a/b in dst.
func DivTo[T Floats](dst *Vec[T], a, b Vec[T]) {
	lanewiseTo(dst, a, b, func(x, y T) T { return x / y })
}

// MapTo stores f applied to each lane of v in dst. It is the building block
// for lane-wise special functions.
func MapTo[T Lanes](dst *Vec[T], v Vec[T], f func(T) T) {
	n := commonLanes(cap(dst.data), len(v.data))
	d := dst.data[:n]
	for i := range d {
		d[i] = f(v.data[i])
	}
	dst.data = d
}

// EqualTo stores the lane-wise a == b in dst.
func EqualTo[T Lanes](dst *Mask[T], a, b Vec[T]) {
	n := commonLanes(cap(dst.bits), len(a.data), len(b.data))
	d := dst.bits[:n]
	for i := range d {
		d[i] = a.data[i] == b.data[i]
	}
	dst.bits = d
}

// IfThenElseTo stores a[i] where mask is set and b[i] elsewhere in dst.
func IfThenElseTo[T Lanes](dst *Vec[T], mask Mask[T], a, b Vec[T]) {
	n := commonLanes(cap(dst.data), len(mask.bits), len(a.data), len(b.data))
	d := dst.data[:n]
	for i := range d {
		if mask.bits[i] {
			d[i] = a.data[i]
		} else {
			d[i] = b.data[i]
		}
	}
	dst.data = d
}
