package compression

import (
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/TobiasRohner/codekit"
)

// bitCode is one symbol's codeword: the low length bits of bits, most
// significant bit first, tracing the root-to-leaf path. Descending left
// contributes a 0, descending right a 1.
type bitCode struct {
	bits   uint64
	length uint
}

// buildCodes walks the tree depth-first and records every leaf's path in
// codes. A tree that is a single leaf gets the explicit codeword "0": a
// zero-length codeword would add nothing to the stream and leave the
// decoder with no bits to count symbols by.
func buildCodes[T Symbol](n *node[T], path uint64, depth uint, codes map[T]bitCode) {
	if n.isLeaf() {
		if depth == 0 {
			codes[n.symbol] = bitCode{bits: 0, length: 1}
			return
		}
		codes[n.symbol] = bitCode{bits: path, length: depth}
		return
	}

	// A leaf below 64 bits would require a frequency skew on the order of
	// 2^64 input symbols, which cannot fit in memory.
	assert.Assertf(depth < 64, "codeword length %d exceeds 64 bits", depth+1)
	buildCodes(n.left, path<<1, depth+1, codes)
	buildCodes(n.right, path<<1|1, depth+1, codes)
}

// CompressHuffman Huffman-codes data into a bit sequence: the pre-order
// serialized coding tree, followed by each input symbol's codeword in input
// order. Symbols that occur often receive short codewords.
//
// The stream does not record how many symbols went in. The caller must keep
// len(data) and hand it to [DecompressHuffman]; anything persisting the
// stream has to store the count alongside it.
//
// Encoding never fails. Empty input yields an empty buffer.
func CompressHuffman[T Symbol](data []T) *BitBuffer {
	buf := NewBitBuffer()
	if len(data) == 0 {
		return buf
	}

	root := buildTree(countSymbols(data))
	width := symbolWidth[T]()
	writeTree(buf, root, width)

	codes := make(map[T]bitCode)
	buildCodes(root, 0, 0, codes)
	for _, symbol := range data {
		code := codes[symbol]
		buf.AppendUint64(code.bits, code.length)
	}
	return buf
}

// DecompressHuffman decodes count symbols from a stream produced by
// [CompressHuffman] with the same symbol type. The decoder first rebuilds
// the coding tree from the head of the stream, then walks it once per
// symbol, branching left on 0 bits and right on 1 bits until a leaf is hit.
//
// Fails with [codekit.ErrEmptyInput] when asked for symbols from an empty
// stream, with [codekit.ErrMalformedStream] if the stream ends inside the
// tree description, and with [codekit.ErrTruncatedStream] if the payload
// runs out before count symbols have been decoded.
func DecompressHuffman[T Symbol](buf *BitBuffer, count int) ([]T, error) {
	if count < 0 {
		return nil, codekit.ErrArgumentOutOfRange.WithMessage(
			fmt.Sprintf("cannot decode %d symbols", count))
	}
	if count == 0 {
		return nil, nil
	}
	if buf.Len() == 0 {
		return nil, codekit.ErrEmptyInput.WithMessage(fmt.Sprintf(
			"expected %d symbols but the stream has no bits", count))
	}

	reader := NewBitReader(buf)
	root, err := readTree[T](reader, symbolWidth[T]())
	if err != nil {
		return nil, err
	}

	decoded := make([]T, 0, count)
	for len(decoded) < count {
		n := root
		for !n.isLeaf() {
			bit, err := reader.ReadBit()
			if err != nil {
				return nil, codekit.ErrTruncatedStream.WithMessage(fmt.Sprintf(
					"bit stream ended after %d of %d symbols", len(decoded), count))
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		decoded = append(decoded, n.symbol)
	}
	return decoded, nil
}
