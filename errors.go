// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when a single-shot call is given a zero-length source.
	ErrEmptyInput = errors.New("lzs: empty input")
	// ErrInputTooLarge is returned when a reader-based call exceeds a configured input limit.
	ErrInputTooLarge = errors.New("lzs: input exceeds MaxInputSize")

	// ErrTruncatedStream is returned when the input ends before a token or the
	// end marker is complete, and no more input will ever arrive.
	ErrTruncatedStream = errors.New("lzs: truncated stream")
	// ErrInvalidOffset is returned when a match token encodes offset 0 in the
	// long-offset form, or references bytes never written to the output.
	ErrInvalidOffset = errors.New("lzs: invalid match offset")

	// ErrInternal is returned when an internal invariant of the bit queue or
	// window is violated (should be unreachable for any valid state block).
	ErrInternal = errors.New("lzs: internal error")
)
