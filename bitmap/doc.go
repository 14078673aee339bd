// Package bitmap provides an in-memory RGB raster with float channels, a
// small set of drawing and compositing operations, and a BMP encoder.
//
// The encoder picks the cheapest faithful representation on its own: images
// with few distinct colors are written indexed (1, 4, or 8 bits per pixel
// with a color table), colorful images fall back to truecolor at a
// caller-selected [Quality]. BMPs are written bottom row first, matching
// the format's default row order: row y=0 of an [Image] is the bottom row
// of the displayed picture.
//
// A table of named colors is compiled into the package; see
// [GetPredefinedColor].
package bitmap
