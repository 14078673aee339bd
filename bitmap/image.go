package bitmap

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"

	"github.com/TobiasRohner/codekit"
	"github.com/TobiasRohner/codekit/mathutil"
)

// Image is an in-memory RGB raster. Pixel (0, 0) is the first pixel written
// to an encoded file; rows are stored contiguously.
type Image struct {
	width  int
	height int
	pixels []Color
}

// New returns a black image of the given dimensions. Both must be positive.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, codekit.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("image dimensions must be positive, got %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}, nil
}

// NewFilled returns an image of the given dimensions with every pixel set
// to fill.
func NewFilled(width, height int, fill Color) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	img.Fill(fill)
	return img, nil
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.height
}

// At returns the pixel at (x, y). Panics if the coordinates are out of
// bounds.
func (img *Image) At(x, y int) Color {
	img.assertInBounds(x, y)
	return img.pixels[y*img.width+x]
}

// Set overwrites the pixel at (x, y). Panics if the coordinates are out of
// bounds.
func (img *Image) Set(x, y int, color Color) {
	img.assertInBounds(x, y)
	img.pixels[y*img.width+x] = color
}

func (img *Image) assertInBounds(x, y int) {
	assert.Assertf(x >= 0 && x < img.width, "x coordinate %d outside [0, %d)", x, img.width)
	assert.Assertf(y >= 0 && y < img.height, "y coordinate %d outside [0, %d)", y, img.height)
}

// Fill sets every pixel to color.
func (img *Image) Fill(color Color) {
	for i := range img.pixels {
		img.pixels[i] = color
	}
}

// Sample returns the bilinearly interpolated color at the fractional pixel
// position (x, y). Both coordinates must lie within the pixel grid, i.e.
// x in [0, width-1] and y in [0, height-1].
func (img *Image) Sample(x, y float64) Color {
	assert.Assertf(x >= 0 && x <= float64(img.width-1), "x coordinate %f outside [0, %d]", x, img.width-1)
	assert.Assertf(y >= 0 && y <= float64(img.height-1), "y coordinate %f outside [0, %d]", y, img.height-1)

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x)), int(math.Ceil(y))
	tx := float32(x - math.Floor(x))
	ty := float32(y - math.Floor(y))

	top := img.At(x0, y0).Mix(img.At(x1, y0), tx)
	bottom := img.At(x0, y1).Mix(img.At(x1, y1), tx)
	return top.Mix(bottom, ty)
}

// Add adds other to img pixel by pixel, saturating each channel at 1. The
// images must have identical dimensions.
func (img *Image) Add(other *Image) {
	img.assertSameSize(other)
	for i := range img.pixels {
		img.pixels[i] = img.pixels[i].Add(other.pixels[i])
	}
}

// Sub subtracts other from img pixel by pixel, saturating each channel
// at 0. The images must have identical dimensions.
func (img *Image) Sub(other *Image) {
	img.assertSameSize(other)
	for i := range img.pixels {
		img.pixels[i] = img.pixels[i].Sub(other.pixels[i])
	}
}

// Mul multiplies img by other pixel by pixel. The images must have
// identical dimensions.
func (img *Image) Mul(other *Image) {
	img.assertSameSize(other)
	for i := range img.pixels {
		img.pixels[i] = img.pixels[i].Mul(other.pixels[i])
	}
}

// Scale multiplies every channel of every pixel by factor, saturating at
// the range ends.
func (img *Image) Scale(factor float32) {
	for i := range img.pixels {
		img.pixels[i] = img.pixels[i].Scale(factor)
	}
}

func (img *Image) assertSameSize(other *Image) {
	assert.Assertf(
		img.width == other.width && img.height == other.height,
		"image dimensions differ: %dx%d vs %dx%d",
		img.width, img.height, other.width, other.height,
	)
}

// Line draws a straight line from (x0, y0) to (x1, y1) inclusive. Both
// endpoints must be in bounds.
func (img *Image) Line(x0, y0, x1, y1 int, color Color) {
	img.assertInBounds(x0, y0)
	img.assertInBounds(x1, y1)

	dx := mathutil.Abs(x1 - x0)
	dy := -mathutil.Abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		img.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
