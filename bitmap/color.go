package bitmap

import (
	"github.com/chronos-tachyon/assert"

	"github.com/TobiasRohner/codekit/mathutil"
)

// Color is an RGB color with float32 channels in [0, 1]. Arithmetic on
// colors saturates, so results always stay inside the valid range. The type
// is comparable and can be used as a map key, which the palette builder in
// this package relies on.
type Color struct {
	R float32
	G float32
	B float32
}

// NewColor returns the color with the given channel values. All three must
// already be within [0, 1].
func NewColor(r, g, b float32) Color {
	assert.Assertf(r >= 0 && r <= 1, "red channel %f outside [0, 1]", r)
	assert.Assertf(g >= 0 && g <= 1, "green channel %f outside [0, 1]", g)
	assert.Assertf(b >= 0 && b <= 1, "blue channel %f outside [0, 1]", b)
	return Color{R: r, G: g, B: b}
}

// RGB unpacks a 0xRRGGBB value into a Color.
func RGB(packed uint32) Color {
	return Color{
		R: float32(packed>>16&0xff) / 255,
		G: float32(packed>>8&0xff) / 255,
		B: float32(packed&0xff) / 255,
	}
}

// Packed returns the color as a 0xRRGGBB value with 8-bit channels.
func (c Color) Packed() uint32 {
	r, g, b := c.Quantize(8)
	return r<<16 | g<<8 | b
}

// Quantize returns the three channels scaled to unsigned integers of the
// given bit width, rounding to nearest.
func (c Color) Quantize(bits uint) (r, g, b uint32) {
	assert.Assertf(bits >= 1 && bits <= 16, "channel width %d outside [1, 16]", bits)
	scale := float32(uint32(1)<<bits - 1)
	r = uint32(mathutil.Clamp(c.R, 0, 1)*scale + 0.5)
	g = uint32(mathutil.Clamp(c.G, 0, 1)*scale + 0.5)
	b = uint32(mathutil.Clamp(c.B, 0, 1)*scale + 0.5)
	return r, g, b
}

// Add returns the channelwise sum of c and other, saturating at 1.
func (c Color) Add(other Color) Color {
	return Color{
		R: mathutil.Clamp(c.R+other.R, 0, 1),
		G: mathutil.Clamp(c.G+other.G, 0, 1),
		B: mathutil.Clamp(c.B+other.B, 0, 1),
	}
}

// Sub returns the channelwise difference of c and other, saturating at 0.
func (c Color) Sub(other Color) Color {
	return Color{
		R: mathutil.Clamp(c.R-other.R, 0, 1),
		G: mathutil.Clamp(c.G-other.G, 0, 1),
		B: mathutil.Clamp(c.B-other.B, 0, 1),
	}
}

// Mul returns the channelwise product of c and other.
func (c Color) Mul(other Color) Color {
	return Color{
		R: mathutil.Clamp(c.R*other.R, 0, 1),
		G: mathutil.Clamp(c.G*other.G, 0, 1),
		B: mathutil.Clamp(c.B*other.B, 0, 1),
	}
}

// Scale multiplies every channel by factor, saturating at the range ends.
func (c Color) Scale(factor float32) Color {
	return Color{
		R: mathutil.Clamp(c.R*factor, 0, 1),
		G: mathutil.Clamp(c.G*factor, 0, 1),
		B: mathutil.Clamp(c.B*factor, 0, 1),
	}
}

// Mix linearly interpolates between c and other: t=0 yields c, t=1 yields
// other.
func (c Color) Mix(other Color, t float32) Color {
	return Color{
		R: mathutil.Clamp(mathutil.Lerp(c.R, other.R, t), 0, 1),
		G: mathutil.Clamp(mathutil.Lerp(c.G, other.G, t), 0, 1),
		B: mathutil.Clamp(mathutil.Lerp(c.B, other.B, t), 0, 1),
	}
}
