package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/noxer/bytewriter"
	"github.com/xaionaro-go/bytesextra"

	"github.com/TobiasRohner/codekit"
)

// Quality selects the pixel depth used when an image has too many distinct
// colors for a palette.
type Quality int

const (
	// QualityLow stores 5 bits per channel, 16 bits per pixel.
	QualityLow Quality = iota
	// QualityMedium stores 8 bits per channel, 24 bits per pixel.
	QualityMedium
	// QualityHigh stores 10 bits per channel, 32 bits per pixel, written as
	// a bitfield image.
	QualityHigh
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	compressionRGB       = 0
	compressionBitfields = 3

	// Channel masks for the 10-bit bitfield layout used by QualityHigh.
	redMask10   = 0x3ff00000
	greenMask10 = 0x000ffc00
	blueMask10  = 0x000003ff

	// An image with at most this many distinct colors is stored indexed.
	maxPaletteSize = 256
)

// rawFileHeader is the BITMAPFILEHEADER record at the start of a BMP file.
type rawFileHeader struct {
	Magic      [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// rawInfoHeader is the BITMAPINFOHEADER record that follows it.
type rawInfoHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// encodingLayout fixes every size decision for one Encode call.
type encodingLayout struct {
	bitsPerPixel int
	compression  uint32
	// palette is nil for truecolor images. paletteIndex maps a color to its
	// position in palette.
	palette      []Color
	paletteIndex map[Color]int
}

func (l encodingLayout) maskBytes() int {
	if l.compression == compressionBitfields {
		return 12
	}
	return 0
}

func (l encodingLayout) dataOffset() int {
	return fileHeaderSize + infoHeaderSize + l.maskBytes() + len(l.palette)*4
}

// rowSize returns the stride of one pixel row, padded to four bytes.
func (l encodingLayout) rowSize(width int) int {
	return (width*l.bitsPerPixel + 31) / 32 * 4
}

// buildPalette collects the distinct colors of the image in order of first
// use. ok is false when the image has more than maxPaletteSize distinct
// colors and must be stored truecolor.
func (img *Image) buildPalette() (index map[Color]int, palette []Color, ok bool) {
	index = make(map[Color]int)
	for _, pixel := range img.pixels {
		if _, seen := index[pixel]; seen {
			continue
		}
		if len(palette) == maxPaletteSize {
			return nil, nil, false
		}
		index[pixel] = len(palette)
		palette = append(palette, pixel)
	}
	return index, palette, true
}

func (img *Image) layout(quality Quality) (encodingLayout, error) {
	index, palette, ok := img.buildPalette()
	if ok {
		layout := encodingLayout{
			compression:  compressionRGB,
			palette:      palette,
			paletteIndex: index,
		}
		switch {
		case len(palette) <= 2:
			layout.bitsPerPixel = 1
		case len(palette) <= 16:
			layout.bitsPerPixel = 4
		default:
			layout.bitsPerPixel = 8
		}
		return layout, nil
	}

	switch quality {
	case QualityLow:
		return encodingLayout{bitsPerPixel: 16, compression: compressionRGB}, nil
	case QualityMedium:
		return encodingLayout{bitsPerPixel: 24, compression: compressionRGB}, nil
	case QualityHigh:
		return encodingLayout{bitsPerPixel: 32, compression: compressionBitfields}, nil
	}
	return encodingLayout{}, codekit.ErrInvalidArgument.WithMessage(
		fmt.Sprintf("unknown quality level %d", quality))
}

// EncodedSize returns the exact size in bytes of the file Encode writes for
// this image at the given quality.
func (img *Image) EncodedSize(quality Quality) (int, error) {
	layout, err := img.layout(quality)
	if err != nil {
		return 0, err
	}
	return layout.dataOffset() + layout.rowSize(img.width)*img.height, nil
}

// Encode writes the image to stream as a BMP file. Images with at most 256
// distinct colors are written indexed at 1, 4, or 8 bits per pixel,
// whichever is smallest; anything more colorful is stored truecolor at the
// depth selected by quality.
//
// The headers are written last, once the sizes are known, so the stream
// must be seekable. On success the stream is left positioned at the end of
// the file.
func (img *Image) Encode(stream io.WriteSeeker, quality Quality) error {
	layout, err := img.layout(quality)
	if err != nil {
		return err
	}

	// Zero-fill the header slots; patchHeaders overwrites them at the end.
	if _, err := stream.Write(make([]byte, fileHeaderSize+infoHeaderSize)); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}

	writer := bufio.NewWriter(stream)
	if layout.compression == compressionBitfields {
		binary.Write(writer, binary.LittleEndian, uint32(redMask10))
		binary.Write(writer, binary.LittleEndian, uint32(greenMask10))
		binary.Write(writer, binary.LittleEndian, uint32(blueMask10))
	}

	for _, entry := range layout.palette {
		r, g, b := entry.Quantize(8)
		writer.Write([]byte{byte(b), byte(g), byte(r), 0})
	}

	if err := img.writePixelData(writer, layout); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}

	return img.patchHeaders(stream, layout)
}

// EncodeFile creates path, truncating anything already there, and writes
// the image to it.
func (img *Image) EncodeFile(path string, quality Quality) error {
	file, err := os.Create(path)
	if err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	defer file.Close()
	return img.Encode(file, quality)
}

// EncodeBytes encodes the image into an in-memory BMP file.
func (img *Image) EncodeBytes(quality Quality) ([]byte, error) {
	size, err := img.EncodedSize(quality)
	if err != nil {
		return nil, err
	}

	buffer := make([]byte, size)
	if err := img.Encode(bytesextra.NewReadWriteSeeker(buffer), quality); err != nil {
		return nil, err
	}
	return buffer, nil
}

func (img *Image) writePixelData(writer io.Writer, layout encodingLayout) error {
	row := make([]byte, layout.rowSize(img.width))

	for y := 0; y < img.height; y++ {
		switch layout.bitsPerPixel {
		case 1, 4:
			pixelsPerByte := 8 / layout.bitsPerPixel
			usedBytes := (img.width + pixelsPerByte - 1) / pixelsPerByte
			for i := 0; i < usedBytes; i++ {
				var packed byte
				for j := 0; j < pixelsPerByte; j++ {
					x := i*pixelsPerByte + j
					if x >= img.width {
						break
					}
					index := layout.paletteIndex[img.At(x, y)]
					packed |= byte(index) << uint((pixelsPerByte-1-j)*layout.bitsPerPixel)
				}
				row[i] = packed
			}
		case 8:
			for x := 0; x < img.width; x++ {
				row[x] = byte(layout.paletteIndex[img.At(x, y)])
			}
		case 16:
			for x := 0; x < img.width; x++ {
				r, g, b := img.At(x, y).Quantize(5)
				binary.LittleEndian.PutUint16(row[x*2:], uint16(r<<10|g<<5|b))
			}
		case 24:
			for x := 0; x < img.width; x++ {
				r, g, b := img.At(x, y).Quantize(8)
				row[x*3] = byte(b)
				row[x*3+1] = byte(g)
				row[x*3+2] = byte(r)
			}
		case 32:
			for x := 0; x < img.width; x++ {
				r, g, b := img.At(x, y).Quantize(10)
				binary.LittleEndian.PutUint32(row[x*4:], r<<20|g<<10|b)
			}
		}

		if _, err := writer.Write(row); err != nil {
			return codekit.ErrIOFailed.Wrap(err)
		}
	}
	return nil
}

func (img *Image) patchHeaders(stream io.WriteSeeker, layout encodingLayout) error {
	end, err := stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}

	dataOffset := layout.dataOffset()
	headerBytes := make([]byte, fileHeaderSize+infoHeaderSize)
	writer := bytewriter.New(headerBytes)

	binary.Write(writer, binary.LittleEndian, rawFileHeader{
		Magic:      [2]byte{'B', 'M'},
		FileSize:   uint32(end),
		DataOffset: uint32(dataOffset),
	})
	binary.Write(writer, binary.LittleEndian, rawInfoHeader{
		HeaderSize:   infoHeaderSize,
		Width:        int32(img.width),
		Height:       int32(img.height),
		Planes:       1,
		BitsPerPixel: uint16(layout.bitsPerPixel),
		Compression:  layout.compression,
		ImageSize:    uint32(end) - uint32(dataOffset),
		ColorsUsed:   uint32(len(layout.palette)),
	})

	if _, err := stream.Write(headerBytes); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	if _, err := stream.Seek(0, io.SeekEnd); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	return nil
}

// TODO (trohner): Implement decoding BMP files written by Encode.
