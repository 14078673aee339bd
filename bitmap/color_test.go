package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TobiasRohner/codekit/bitmap"
)

func TestColorPackedRoundTrip(t *testing.T) {
	tests := []uint32{0x000000, 0xffffff, 0xff8000, 0x123456, 0xdc143c}
	for _, packed := range tests {
		assert.Equal(t, packed, bitmap.RGB(packed).Packed())
	}
}

func TestColorQuantize(t *testing.T) {
	r, g, b := bitmap.NewColor(1, 0, 0.5).Quantize(5)
	assert.EqualValues(t, 31, r)
	assert.EqualValues(t, 0, g)
	assert.EqualValues(t, 16, b)

	r, g, b = bitmap.NewColor(1, 1, 1).Quantize(10)
	assert.EqualValues(t, 1023, r)
	assert.EqualValues(t, 1023, g)
	assert.EqualValues(t, 1023, b)
}

func TestColorArithmeticSaturates(t *testing.T) {
	sum := bitmap.NewColor(0.8, 0.5, 0).Add(bitmap.NewColor(0.4, 0.2, 0))
	assert.InDelta(t, 1.0, sum.R, 1e-6)
	assert.InDelta(t, 0.7, sum.G, 1e-6)
	assert.InDelta(t, 0.0, sum.B, 1e-6)

	diff := bitmap.NewColor(0.3, 0.5, 1).Sub(bitmap.NewColor(0.5, 0.2, 0.25))
	assert.InDelta(t, 0.0, diff.R, 1e-6)
	assert.InDelta(t, 0.3, diff.G, 1e-6)
	assert.InDelta(t, 0.75, diff.B, 1e-6)

	scaled := bitmap.NewColor(0.5, 0.25, 0.9).Scale(2)
	assert.InDelta(t, 1.0, scaled.R, 1e-6)
	assert.InDelta(t, 0.5, scaled.G, 1e-6)
	assert.InDelta(t, 1.0, scaled.B, 1e-6)
}

func TestColorMul(t *testing.T) {
	product := bitmap.NewColor(0.5, 1, 0).Mul(bitmap.NewColor(0.5, 0.25, 1))
	assert.InDelta(t, 0.25, product.R, 1e-6)
	assert.InDelta(t, 0.25, product.G, 1e-6)
	assert.InDelta(t, 0.0, product.B, 1e-6)
}

func TestColorMix(t *testing.T) {
	black := bitmap.NewColor(0, 0, 0)
	white := bitmap.NewColor(1, 1, 1)

	assert.Equal(t, black, black.Mix(white, 0))
	assert.Equal(t, white, black.Mix(white, 1))

	mid := black.Mix(white, 0.25)
	assert.InDelta(t, 0.25, mid.R, 1e-6)
	assert.InDelta(t, 0.25, mid.G, 1e-6)
	assert.InDelta(t, 0.25, mid.B, 1e-6)
}
