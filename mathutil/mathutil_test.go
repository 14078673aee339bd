package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TobiasRohner/codekit/mathutil"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, mathutil.Abs(-5))
	assert.Equal(t, 5, mathutil.Abs(5))
	assert.Equal(t, 0, mathutil.Abs(0))
	assert.Equal(t, 2.5, mathutil.Abs(-2.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, mathutil.Clamp(3, 0, 10))
	assert.Equal(t, 0, mathutil.Clamp(-4, 0, 10))
	assert.Equal(t, 10, mathutil.Clamp(99, 0, 10))
	assert.Equal(t, float32(1), mathutil.Clamp(float32(1.5), 0, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, mathutil.Lerp(0.0, 10.0, 0.0))
	assert.Equal(t, 10.0, mathutil.Lerp(0.0, 10.0, 1.0))
	assert.Equal(t, 5.0, mathutil.Lerp(0.0, 10.0, 0.5))
	assert.InDelta(t, 0.75, mathutil.Lerp(float32(0.5), 1.0, 0.5), 1e-6)
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, mathutil.IsPowerOfTwo(uint(1)))
	assert.True(t, mathutil.IsPowerOfTwo(uint(64)))
	assert.True(t, mathutil.IsPowerOfTwo(uint64(1)<<63))
	assert.False(t, mathutil.IsPowerOfTwo(uint(0)))
	assert.False(t, mathutil.IsPowerOfTwo(uint(12)))
}
