package compression

import (
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"

	"github.com/TobiasRohner/codekit"
)

// BitBuffer is an append-only bit sequence. Bits are packed MSB-first: the
// first bit appended becomes bit 7 of byte 0. This matches the emission
// order of both codecs in this package, so a buffer's Bytes() can be stored
// and later rewrapped with NewBitBufferFromBytes without any reshuffling.
type BitBuffer struct {
	data    []byte
	numBits int
}

// NewBitBuffer returns an empty bit buffer.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{data: make([]byte, 0, 64)}
}

// NewBitBufferFromBytes wraps the first numBits bits of packed data in a
// buffer, e.g. to feed a previously stored stream back into a decoder. The
// buffer takes ownership of data. Fails with
// [codekit.ErrArgumentOutOfRange] if data is too short to hold numBits bits.
func NewBitBufferFromBytes(data []byte, numBits int) (*BitBuffer, error) {
	if numBits < 0 || numBits > len(data)*8 {
		return nil, codekit.ErrArgumentOutOfRange.WithMessage(
			fmt.Sprintf("%d bits do not fit in %d bytes", numBits, len(data)))
	}

	data = data[:(numBits+7)/8]
	// Appending relies on the bits past numBits being zero.
	if rem := numBits % 8; rem != 0 {
		data[len(data)-1] &= byte(0xff) << (8 - rem)
	}
	return &BitBuffer{data: data, numBits: numBits}, nil
}

// Len returns the number of bits in the buffer.
func (b *BitBuffer) Len() int {
	return b.numBits
}

// Bit returns the i-th bit in append order. Panics if i is out of range.
func (b *BitBuffer) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < b.numBits, "bit index %d out of range [0, %d)", i, b.numBits)
	return b.data[i/8]&(1<<(7-uint(i)%8)) != 0
}

// AppendBit appends a single bit.
func (b *BitBuffer) AppendBit(bit bool) {
	if b.numBits%8 == 0 {
		b.data = append(b.data, 0)
	}
	if bit {
		b.data[b.numBits/8] |= 1 << (7 - uint(b.numBits)%8)
	}
	b.numBits++
}

// AppendUint64 appends the low width bits of value, most significant bit
// first. Appending zero bits is a no-op.
func (b *BitBuffer) AppendUint64(value uint64, width uint) {
	assert.Assertf(width <= 64, "bit width %d exceeds 64", width)
	for i := int(width) - 1; i >= 0; i-- {
		b.AppendBit(value>>uint(i)&1 != 0)
	}
}

// Bytes returns a copy of the packed bits. If Len is not a multiple of
// eight, the unused low bits of the final byte are zero.
func (b *BitBuffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// String renders the buffer as a string of '0' and '1' runes in append
// order. Intended for debugging and test failure output.
func (b *BitBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.numBits)
	for i := 0; i < b.numBits; i++ {
		if b.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BitReader is a forward-only cursor over a BitBuffer. Reads follow the
// usual io conventions: [io.EOF] on a clean end of the buffer,
// [io.ErrUnexpectedEOF] when a multi-bit read is cut short.
type BitReader struct {
	buf *BitBuffer
	pos int
}

// NewBitReader returns a reader positioned at the first bit of buf.
func NewBitReader(buf *BitBuffer) *BitReader {
	return &BitReader{buf: buf}
}

// Position returns the number of bits consumed so far.
func (r *BitReader) Position() int {
	return r.pos
}

// Remaining returns the number of bits left to read.
func (r *BitReader) Remaining() int {
	return r.buf.Len() - r.pos
}

// ReadBit consumes and returns the next bit.
func (r *BitReader) ReadBit() (bool, error) {
	if r.pos >= r.buf.Len() {
		return false, io.EOF
	}
	bit := r.buf.Bit(r.pos)
	r.pos++
	return bit, nil
}

// ReadUint64 consumes width bits and returns them right-aligned, most
// significant bit first. The reader does not advance on failure.
func (r *BitReader) ReadUint64(width uint) (uint64, error) {
	assert.Assertf(width <= 64, "bit width %d exceeds 64", width)
	if r.Remaining() < int(width) {
		return 0, io.ErrUnexpectedEOF
	}

	var value uint64
	for i := uint(0); i < width; i++ {
		value <<= 1
		if r.buf.Bit(r.pos) {
			value |= 1
		}
		r.pos++
	}
	return value, nil
}
