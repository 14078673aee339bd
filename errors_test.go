package codekit_test

import (
	"errors"
	"testing"

	"github.com/TobiasRohner/codekit"
	"github.com/stretchr/testify/assert"
)

func TestErrorWithMessage(t *testing.T) {
	newErr := codekit.ErrMalformedStream.WithMessage("asdfqwerty")
	assert.Equal(
		t, "Malformed compressed stream: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, codekit.ErrMalformedStream)
}

func TestErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := codekit.ErrTruncatedStream.Wrap(originalErr)
	expectedMessage := "Compressed stream truncated: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, codekit.ErrTruncatedStream, "codekit error not set as parent")
}

func TestErrorChainedMessages(t *testing.T) {
	first := codekit.ErrInvalidSymbolWidth.WithMessage("stream says 16 bits")
	second := first.WithMessage("decoding as uint8")

	assert.Equal(
		t,
		"Symbol width mismatch: stream says 16 bits: decoding as uint8",
		second.Error())
	assert.ErrorIs(t, second, first)
	assert.ErrorIs(t, second, codekit.ErrInvalidSymbolWidth)
}

func TestErrorSentinelsAreDistinct(t *testing.T) {
	derived := codekit.ErrTruncatedStream.WithMessage("ran out of payload bits")
	assert.NotErrorIs(t, derived, codekit.ErrMalformedStream)
	assert.NotErrorIs(t, codekit.ErrEmptyInput, codekit.ErrInvalidArgument)
}
