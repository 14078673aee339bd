package compression_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TobiasRohner/codekit"
	c "github.com/TobiasRohner/codekit/compression"
	kittest "github.com/TobiasRohner/codekit/testing"
)

type RLETestCase struct {
	Input          []uint8
	ExpectedOutput []uint8
	Name           string
}

func repeatSymbols[T c.Symbol](value T, count int) []T {
	out := make([]T, count)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestCompressRLE__Basic(t *testing.T) {
	tests := []RLETestCase{
		{[]uint8{}, nil, "empty"},
		{[]uint8{5}, []uint8{5}, "single literal"},
		{[]uint8{200}, []uint8{0x81, 200}, "single value with MSB set"},
		{[]uint8{0, 1, 2, 3, 4}, []uint8{0, 1, 2, 3, 4}, "no runs"},
		{[]uint8{5, 5, 5, 5, 9}, []uint8{0x84, 5, 9}, "run then literal"},
		{[]uint8{9, 5, 5, 5, 5}, []uint8{9, 0x84, 5}, "literal then run"},
		{[]uint8{4, 4}, []uint8{0x82, 4}, "run of two"},
		{[]uint8{200, 200, 200}, []uint8{0x83, 200}, "run with MSB set"},
		{
			[]uint8{9, 5, 5, 5, 3, 3, 3, 3, 7},
			[]uint8{9, 0x83, 5, 0x84, 3, 7},
			"adjacent runs",
		},
		{
			repeatSymbols(uint8(5), 127),
			[]uint8{0xff, 5},
			"run of exactly max count",
		},
		{
			repeatSymbols(uint8(5), 128),
			[]uint8{0xff, 5, 5},
			"run of max count plus one",
		},
		{
			repeatSymbols(uint8(5), 130),
			[]uint8{0xff, 5, 0x83, 5},
			"run split across two counters",
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				assert.Equal(t, test.ExpectedOutput, c.CompressRLE(test.Input))
			},
		)
	}
}

func TestDecompressRLE__Basic(t *testing.T) {
	tests := []RLETestCase{
		{nil, nil, "empty"},
		{[]uint8{0x84, 5, 9}, []uint8{5, 5, 5, 5, 9}, "counter then literal"},
		{[]uint8{0, 1, 2, 3, 4}, []uint8{0, 1, 2, 3, 4}, "all literals"},
		{[]uint8{0x81, 200}, []uint8{200}, "counter of one"},
		{[]uint8{0xff, 5, 0x83, 5}, repeatSymbols(uint8(5), 130), "split run"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				decoded, err := c.DecompressRLE(test.Input)
				assert.NoError(t, err)
				assert.Equal(t, test.ExpectedOutput, decoded)
			},
		)
	}
}

func TestDecompressRLE__DanglingCounter(t *testing.T) {
	_, err := c.DecompressRLE([]uint8{9, 1, 0x84})
	if err == nil {
		t.Fatal("decoding a stream ending in a counter should've failed but didn't")
	}
	if !errors.Is(err, codekit.ErrMalformedStream) {
		t.Errorf(
			"error type is wrong, doesn't wrap ErrMalformedStream: %s",
			err.Error(),
		)
	}
}

func TestRLERoundTrip__CompletelyRandom(t *testing.T) {
	kittest.RequireRLERoundTrip(t, kittest.RandomSymbols[uint8](t, 1852))
}

func TestRLERoundTrip__EntirelyNulls(t *testing.T) {
	kittest.RequireRLERoundTrip(t, make([]uint8, 571))
}

func TestRLERoundTrip__EntirelyOneRun(t *testing.T) {
	kittest.RequireRLERoundTrip(t, repeatSymbols(uint8(182), 934))
}

func TestRLERoundTrip__AscendingRuns(t *testing.T) {
	kittest.RequireRLERoundTrip(t, kittest.AscendingRuns[uint8](1000, 7))
}

func TestRLERoundTrip__Empty(t *testing.T) {
	kittest.RequireRLERoundTrip(t, []uint8{})
}

// Counters land differently for every symbol width, so the wider types get
// their own round trips.
func TestRLERoundTrip__WideSymbols(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		kittest.RequireRLERoundTrip(t, kittest.RandomSymbols[uint16](t, 973))
		kittest.RequireRLERoundTrip(t, kittest.AscendingRuns[uint16](1024, 32))
	})
	t.Run("uint32", func(t *testing.T) {
		kittest.RequireRLERoundTrip(t, kittest.RandomSymbols[uint32](t, 741))
		kittest.RequireRLERoundTrip(t, repeatSymbols(uint32(0xdeadbeef), 500))
	})
	t.Run("uint64", func(t *testing.T) {
		kittest.RequireRLERoundTrip(t, kittest.RandomSymbols[uint64](t, 612))
		kittest.RequireRLERoundTrip(t, repeatSymbols(uint64(1)<<63, 88))
	})
}

func TestCompressRLE__SixteenBitCounters(t *testing.T) {
	encoded := c.CompressRLE(repeatSymbols(uint16(0x00ab), 40000))
	assert.Equal(t, []uint16{0xffff, 0x00ab, 0x8000 | (40000 - 32767), 0x00ab}, encoded)
}
