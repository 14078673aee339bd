package compression

import (
	"github.com/TobiasRohner/codekit"
)

// CompressRLE run-length encodes data. The output stays in the symbol
// domain: a word with its MSB set is a repeat counter for the word that
// follows, a word with its MSB clear is a literal. Runs longer than
// 2^(W-1)-1 are split into multiple counter/value pairs.
//
// Encoding never fails. Empty input yields nil.
func CompressRLE[T Symbol](data []T) []T {
	if len(data) == 0 {
		return nil
	}

	msb := T(1) << (symbolWidth[T]() - 1)
	maxCount := ^T(0) >> 1

	encoded := make([]T, 0, len(data))
	last := data[0]
	count := T(0)

	// Emits the run accumulated so far. A single occurrence with a clear
	// MSB is stored verbatim; everything else costs a counter/value pair.
	flush := func() {
		if count == 1 && last&msb == 0 {
			encoded = append(encoded, last)
		} else {
			encoded = append(encoded, msb|count, last)
		}
	}

	for _, value := range data {
		if value != last || count == maxCount {
			flush()
			last = value
			count = 0
		}
		count++
	}
	flush()

	return encoded
}

// DecompressRLE reverses [CompressRLE]. Every word is interpreted on its
// own: counters expand the word after them, literals are copied through.
//
// Fails with [codekit.ErrMalformedStream] if the final word of the stream
// is a counter, since there is no value left for it to repeat.
func DecompressRLE[T Symbol](data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}

	msb := T(1) << (symbolWidth[T]() - 1)

	decoded := make([]T, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i]&msb == 0 {
			decoded = append(decoded, data[i])
			continue
		}

		count := data[i] &^ msb
		i++
		if i == len(data) {
			return nil, codekit.ErrMalformedStream.WithMessage(
				"repeat counter at the end of the stream has no value to repeat")
		}
		for n := T(0); n < count; n++ {
			decoded = append(decoded, data[i])
		}
	}
	return decoded, nil
}
