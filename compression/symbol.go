package compression

// Symbol is the element type every codec in this package works on: a
// fixed-width unsigned integer. The bit width of the instantiated type is
// the symbol width W used by both stream formats.
type Symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// symbolWidth returns the number of bits in T's representation.
func symbolWidth[T Symbol]() uint {
	var width uint
	for v := ^T(0); v != 0; v >>= 1 {
		width++
	}
	return width
}
