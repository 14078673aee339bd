package codekit

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Error is the error type shared by all codekit packages. Every failure kind
// is exposed as a package-level sentinel; use [errors.Is] to test for one.
type Error interface {
	error
	WithMessage(message string) Error
	Wrap(err error) Error
}

type baseError string

const rootError = baseError("")

// Stream decoding errors. A compressed bit stream is self-describing but
// carries no redundancy, so these are the only corruption conditions the
// decoders can detect.
var ErrMalformedStream = rootError.WithMessage("Malformed compressed stream")
var ErrTruncatedStream = rootError.WithMessage("Compressed stream truncated")
var ErrInvalidSymbolWidth = rootError.WithMessage("Symbol width mismatch")
var ErrEmptyInput = rootError.WithMessage("Empty input")

// General argument and environment errors.
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrArgumentOutOfRange = rootError.WithMessage("Numerical argument out of domain")
var ErrIOFailed = rootError.WithMessage("I/O operation failed")

func (e baseError) Error() string {
	return string(e)
}

func (e baseError) WithMessage(message string) Error {
	return wrappedError{
		message:       message,
		originalError: e,
	}
}

func (e baseError) Wrap(err error) Error {
	return wrappedError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type wrappedError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e wrappedError) Error() string {
	return e.message
}

func (e wrappedError) WithMessage(message string) Error {
	return wrappedError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e wrappedError) Wrap(err error) Error {
	return wrappedError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e wrappedError) Unwrap() error {
	return e.originalError
}
