package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/TobiasRohner/codekit"
	"github.com/TobiasRohner/codekit/compression"
)

// The compressed bit formats deliberately carry no symbol count, so files
// need a thin framing layer around the payload. A container file is a fixed
// header followed by the raw payload bytes, everything big-endian.

const containerMagic = "CKC1"
const containerHeaderSize = 24

const (
	algorithmRLE     = 1
	algorithmHuffman = 2
)

// rawContainerHeader is the record at the start of every container file.
type rawContainerHeader struct {
	Magic       [4]byte
	Algorithm   uint8
	SymbolWidth uint8
	Reserved    [2]byte
	SymbolCount uint64
	PayloadBits uint64
}

func newContainerHeader(algorithm, symbolWidth uint8, symbolCount, payloadBits int) rawContainerHeader {
	header := rawContainerHeader{
		Algorithm:   algorithm,
		SymbolWidth: symbolWidth,
		SymbolCount: uint64(symbolCount),
		PayloadBits: uint64(payloadBits),
	}
	copy(header.Magic[:], containerMagic)
	return header
}

func writeContainer(writer io.Writer, header rawContainerHeader, payload []byte) error {
	if err := binary.Write(writer, binary.BigEndian, &header); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	if _, err := writer.Write(payload); err != nil {
		return codekit.ErrIOFailed.Wrap(err)
	}
	return nil
}

// readContainer reads and validates a container file. The payload is
// returned exactly as stored; interpreting it is the caller's business.
func readContainer(reader io.Reader) (rawContainerHeader, []byte, error) {
	var header rawContainerHeader
	if err := binary.Read(reader, binary.BigEndian, &header); err != nil {
		return header, nil, codekit.ErrMalformedStream.WithMessage(
			"file is too short to be a container")
	}
	if string(header.Magic[:]) != containerMagic {
		return header, nil, codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
			"bad magic number %q", header.Magic))
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return header, nil, codekit.ErrIOFailed.Wrap(err)
	}

	expectedBytes := int(header.PayloadBits+7) / 8
	if len(payload) < expectedBytes {
		return header, nil, codekit.ErrTruncatedStream.WithMessage(fmt.Sprintf(
			"header declares %d payload bytes but only %d are present",
			expectedBytes, len(payload)))
	}
	if len(payload) > expectedBytes {
		return header, nil, codekit.ErrMalformedStream.WithMessage(fmt.Sprintf(
			"%d trailing bytes after the payload", len(payload)-expectedBytes))
	}
	return header, payload, nil
}

// symbolBytes returns the size of T in bytes.
func symbolBytes[T compression.Symbol]() int {
	size := 0
	for v := uint64(^T(0)); v != 0; v >>= 8 {
		size++
	}
	return size
}

// bytesToSymbols reinterprets raw bytes as big-endian symbols. The input
// length must be a multiple of the symbol size.
func bytesToSymbols[T compression.Symbol](data []byte) ([]T, error) {
	size := symbolBytes[T]()
	if len(data)%size != 0 {
		return nil, codekit.ErrInvalidArgument.WithMessage(fmt.Sprintf(
			"data length %d is not a multiple of the %d-byte symbol size",
			len(data), size))
	}

	symbols := make([]T, len(data)/size)
	for i := range symbols {
		var value uint64
		for _, b := range data[i*size : (i+1)*size] {
			value = value<<8 | uint64(b)
		}
		symbols[i] = T(value)
	}
	return symbols, nil
}

// symbolsToBytes is the inverse of bytesToSymbols.
func symbolsToBytes[T compression.Symbol](symbols []T) []byte {
	size := symbolBytes[T]()
	data := make([]byte, len(symbols)*size)
	for i, symbol := range symbols {
		value := uint64(symbol)
		for j := size - 1; j >= 0; j-- {
			data[i*size+j] = byte(value)
			value >>= 8
		}
	}
	return data
}
