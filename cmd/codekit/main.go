package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/TobiasRohner/codekit"
	"github.com/TobiasRohner/codekit/bitmap"
	"github.com/TobiasRohner/codekit/compression"
	"github.com/TobiasRohner/codekit/logging"
)

// Log tag used by every command; enabled with --verbose.
const logTagCLI byte = 1

func main() {
	cli := cli.App{
		Usage: "Compress data files and generate bitmap test images",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log each processing step to stderr",
			},
		},
		Before: func(context *cli.Context) error {
			if context.Bool("verbose") {
				logging.Activate(logTagCLI)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file into a container",
				Action:    compressAction,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"a"},
						Value:   "huffman",
						Usage:   "compression algorithm, either 'rle' or 'huffman'",
					},
					&cli.IntFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Value:   8,
						Usage:   "symbol width in bits: 8, 16, 32, or 64",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Expand a container back into the original file",
				Action:    decompressAction,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "testimage",
				Usage:     "Write a BMP test card",
				Action:    testImageAction,
				ArgsUsage: "OUTPUT_FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Value: 256, Usage: "image width in pixels"},
					&cli.IntFlag{Name: "height", Value: 256, Usage: "image height in pixels"},
					&cli.StringFlag{
						Name:  "quality",
						Value: "medium",
						Usage: "truecolor depth: 'low', 'medium', or 'high'",
					},
					&cli.StringFlag{
						Name:  "background",
						Value: "navy",
						Usage: "background color name (see the colors command)",
					},
					&cli.StringFlag{
						Name:  "foreground",
						Value: "gold",
						Usage: "line color name (see the colors command)",
					},
					&cli.BoolFlag{
						Name:  "gradient",
						Usage: "fill the background with a gradient instead of a flat color",
					},
				},
			},
			{
				Name:   "colors",
				Usage:  "List the built-in color names",
				Action: listColorsAction,
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func compressAction(context *cli.Context) error {
	if context.NArg() != 2 {
		return codekit.ErrInvalidArgument.WithMessage(
			"expected exactly two arguments: INPUT_FILE OUTPUT_FILE")
	}

	algorithm, err := parseAlgorithm(context.String("algorithm"))
	if err != nil {
		return err
	}
	return compressPath(
		context.Args().Get(0),
		context.Args().Get(1),
		algorithm,
		context.Int("width"),
	)
}

func decompressAction(context *cli.Context) error {
	if context.NArg() != 2 {
		return codekit.ErrInvalidArgument.WithMessage(
			"expected exactly two arguments: INPUT_FILE OUTPUT_FILE")
	}
	return decompressPath(context.Args().Get(0), context.Args().Get(1))
}

func parseAlgorithm(name string) (uint8, error) {
	switch name {
	case "rle":
		return algorithmRLE, nil
	case "huffman":
		return algorithmHuffman, nil
	}
	return 0, codekit.ErrInvalidArgument.WithMessage(fmt.Sprintf(
		"unknown algorithm %q, expected 'rle' or 'huffman'", name))
}

func compressPath(inputPath, outputPath string, algorithm uint8, width int) error {
	switch width {
	case 8:
		return compressTyped[uint8](inputPath, outputPath, algorithm)
	case 16:
		return compressTyped[uint16](inputPath, outputPath, algorithm)
	case 32:
		return compressTyped[uint32](inputPath, outputPath, algorithm)
	case 64:
		return compressTyped[uint64](inputPath, outputPath, algorithm)
	}
	return codekit.ErrInvalidSymbolWidth.WithMessage(fmt.Sprintf(
		"symbol width must be 8, 16, 32, or 64 bits, got %d", width))
}

func compressTyped[T compression.Symbol](inputPath, outputPath string, algorithm uint8) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	logging.WriteTagged(
		os.Stderr,
		fmt.Sprintf("read %d bytes from %s", len(raw), inputPath),
		logTagCLI,
	)

	symbols, err := bytesToSymbols[T](raw)
	if err != nil {
		return err
	}

	var payload []byte
	var payloadBits int
	switch algorithm {
	case algorithmRLE:
		encoded := compression.CompressRLE(symbols)
		payload = symbolsToBytes(encoded)
		payloadBits = len(payload) * 8
	case algorithmHuffman:
		stream := compression.CompressHuffman(symbols)
		payload = stream.Bytes()
		payloadBits = stream.Len()
	}
	logging.WriteTagged(
		os.Stderr,
		fmt.Sprintf("%d symbols compressed into %d payload bits", len(symbols), payloadBits),
		logTagCLI,
	)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	defer outFile.Close()

	width := uint8(symbolBytes[T]() * 8)
	header := newContainerHeader(algorithm, width, len(symbols), payloadBits)
	if err := writeContainer(outFile, header, payload); err != nil {
		return err
	}

	fmt.Printf(
		"Compressed %s: %d bytes in, %d bytes out.\n",
		inputPath, len(raw), containerHeaderSize+len(payload),
	)
	return nil
}

func decompressPath(inputPath, outputPath string) error {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	defer inFile.Close()

	header, payload, err := readContainer(inFile)
	if err != nil {
		return err
	}
	logging.WriteTagged(
		os.Stderr,
		fmt.Sprintf(
			"container: algorithm %d, %d-bit symbols, %d symbols, %d payload bits",
			header.Algorithm, header.SymbolWidth, header.SymbolCount, header.PayloadBits,
		),
		logTagCLI,
	)

	switch header.SymbolWidth {
	case 8:
		return decompressTyped[uint8](header, payload, outputPath)
	case 16:
		return decompressTyped[uint16](header, payload, outputPath)
	case 32:
		return decompressTyped[uint32](header, payload, outputPath)
	case 64:
		return decompressTyped[uint64](header, payload, outputPath)
	}
	return codekit.ErrInvalidSymbolWidth.WithMessage(fmt.Sprintf(
		"container declares unsupported symbol width %d", header.SymbolWidth))
}

func decompressTyped[T compression.Symbol](header rawContainerHeader, payload []byte, outputPath string) error {
	var symbols []T
	switch header.Algorithm {
	case algorithmRLE:
		encoded, err := bytesToSymbols[T](payload)
		if err != nil {
			return codekit.ErrMalformedStream.WithMessage(
				"RLE payload is not a whole number of symbols")
		}
		symbols, err = compression.DecompressRLE(encoded)
		if err != nil {
			return err
		}
		if uint64(len(symbols)) != header.SymbolCount {
			return codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
				"container declares %d symbols but the payload decoded to %d",
				header.SymbolCount, len(symbols)))
		}
	case algorithmHuffman:
		stream, err := compression.NewBitBufferFromBytes(payload, int(header.PayloadBits))
		if err != nil {
			return err
		}
		symbols, err = compression.DecompressHuffman[T](stream, int(header.SymbolCount))
		if err != nil {
			return err
		}
	default:
		return codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
			"unknown algorithm tag %d", header.Algorithm))
	}

	raw := symbolsToBytes(symbols)
	if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}

	fmt.Printf("Decompressed %d bytes into %s.\n", len(raw), outputPath)
	return nil
}

func testImageAction(context *cli.Context) error {
	if context.NArg() != 1 {
		return codekit.ErrInvalidArgument.WithMessage(
			"expected exactly one argument: OUTPUT_FILE")
	}

	quality, err := parseQuality(context.String("quality"))
	if err != nil {
		return err
	}
	background, err := bitmap.GetPredefinedColor(context.String("background"))
	if err != nil {
		return err
	}
	foreground, err := bitmap.GetPredefinedColor(context.String("foreground"))
	if err != nil {
		return err
	}

	width := context.Int("width")
	height := context.Int("height")
	img, err := bitmap.New(width, height)
	if err != nil {
		return err
	}

	if context.Bool("gradient") {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, bitmap.NewColor(
					float32(x)/float32(width),
					float32(y)/float32(height),
					0.5,
				))
			}
		}
	} else {
		img.Fill(background)
	}

	// Border plus both diagonals.
	img.Line(0, 0, width-1, 0, foreground)
	img.Line(0, height-1, width-1, height-1, foreground)
	img.Line(0, 0, 0, height-1, foreground)
	img.Line(width-1, 0, width-1, height-1, foreground)
	img.Line(0, 0, width-1, height-1, foreground)
	img.Line(0, height-1, width-1, 0, foreground)

	outputPath := context.Args().Get(0)
	if err := img.EncodeFile(outputPath, quality); err != nil {
		return err
	}

	fmt.Printf("Wrote %dx%d test image to %s.\n", width, height, outputPath)
	return nil
}

func parseQuality(name string) (bitmap.Quality, error) {
	switch name {
	case "low":
		return bitmap.QualityLow, nil
	case "medium":
		return bitmap.QualityMedium, nil
	case "high":
		return bitmap.QualityHigh, nil
	}
	return 0, codekit.ErrInvalidArgument.WithMessage(fmt.Sprintf(
		"unknown quality %q, expected 'low', 'medium', or 'high'", name))
}

func listColorsAction(context *cli.Context) error {
	for _, name := range bitmap.PredefinedColorNames() {
		color, err := bitmap.GetPredefinedColor(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s #%06x\n", name, color.Packed())
	}
	return nil
}
