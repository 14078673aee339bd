// Package mathutil provides the small numeric helpers shared across the
// module.
package mathutil

// Ordered covers every type the < operator is defined on. It is exported so
// other packages (e.g. skiplist) can constrain their own type parameters
// with it.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// Abs returns the absolute value of n.
func Abs[T signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Clamp limits value to the range [lo, hi]. lo must not exceed hi.
func Clamp[T Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Lerp linearly interpolates between a and b: t=0 yields a, t=1 yields b.
// t is not clamped.
func Lerp[F float](a, b, t F) F {
	return a + (b-a)*t
}

// IsPowerOfTwo reports whether n is a power of two. Zero is not one.
func IsPowerOfTwo[T unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}
