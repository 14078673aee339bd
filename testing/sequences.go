package testing

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TobiasRohner/codekit/compression"
)

// RandomSymbols returns `count` random symbols. It is guaranteed to either
// return a valid slice or fail the test and abort. Random data is close to
// incompressible, which makes it a good worst case for both codecs.
func RandomSymbols[T compression.Symbol](t *testing.T, count int) []T {
	raw := make([]byte, count*8)
	_, err := rand.Read(raw)
	require.NoErrorf(t, err, "failed to generate %d random symbols", count)

	symbols := make([]T, count)
	for i := range symbols {
		symbols[i] = T(binary.BigEndian.Uint64(raw[i*8:]))
	}
	return symbols
}

// AscendingRuns returns `count` symbols arranged as consecutive runs: the
// values 0, 1, 2, ... each repeated runLength times. This is the best case
// for run-length encoding.
func AscendingRuns[T compression.Symbol](count, runLength int) []T {
	symbols := make([]T, count)
	for i := range symbols {
		symbols[i] = T(i / runLength)
	}
	return symbols
}

// RequireRLERoundTrip run-length encodes original, decodes the result, and
// fails the test unless the round trip restores the input exactly.
func RequireRLERoundTrip[T compression.Symbol](t *testing.T, original []T) {
	encoded := compression.CompressRLE(original)
	decoded, err := compression.DecompressRLE(encoded)
	require.NoError(t, err, "decoding a freshly encoded stream failed")
	requireSameSymbols(t, original, decoded)
	t.Logf("rle: %d symbols in, %d words out", len(original), len(encoded))
}

// RequireHuffmanRoundTrip Huffman-codes original, decodes the result, and
// fails the test unless the round trip restores the input exactly.
func RequireHuffmanRoundTrip[T compression.Symbol](t *testing.T, original []T) {
	stream := compression.CompressHuffman(original)
	decoded, err := compression.DecompressHuffman[T](stream, len(original))
	require.NoError(t, err, "decoding a freshly encoded stream failed")
	requireSameSymbols(t, original, decoded)
	t.Logf("huffman: %d symbols in, %d bits out", len(original), stream.Len())
}

// requireSameSymbols compares two symbol slices, treating nil and empty as
// equal since the codecs return nil for empty inputs.
func requireSameSymbols[T compression.Symbol](t *testing.T, expected, actual []T) {
	if len(expected) == 0 {
		require.Empty(t, actual)
		return
	}
	require.Equal(t, expected, actual)
}
