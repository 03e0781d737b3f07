package qdsp

import "errors"

// Sentinel errors returned by transform constructors and methods.
var (
	// ErrInvalidLength is returned when a transform length is not supported.
	// The radix-4 CFFT requires a power-of-4 length between MinLen and MaxLen.
	ErrInvalidLength = errors.New("qdsp: invalid transform length")

	// ErrNilSlice is returned when a nil buffer is passed to Transform.
	ErrNilSlice = errors.New("qdsp: nil slice")

	// ErrLengthMismatch is returned when a buffer's length does not match
	// the descriptor's expected 2*N interleaved layout.
	ErrLengthMismatch = errors.New("qdsp: slice length mismatch")
)
