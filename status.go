// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "strings"

// CompressStatus is a bitfield reported by CompressIncremental describing
// why the call returned.
type CompressStatus uint8

// Compressor status flags. Multiple flags may be set simultaneously.
const (
	StatusNone CompressStatus = 0
	// StatusInputStarved means the encoder needs more input bytes (or finish=true)
	// to make forward progress and has suspended mid-state.
	StatusInputStarved CompressStatus = 1 << (iota - 1)
	// StatusInputFinished means the caller's input length reached zero during this call.
	StatusInputFinished
	// StatusEndMarker means the end-marker token was emitted and flushed.
	StatusEndMarker
	// StatusNoOutputSpace means the call stopped because dst had no room for a queued byte.
	StatusNoOutputSpace
	// StatusError means the state block hit an unrecoverable internal or stream error.
	StatusError
)

// Has reports whether all bits in want are set in s.
func (s CompressStatus) Has(want CompressStatus) bool { return s&want == want }

func (s CompressStatus) String() string {
	if s == StatusNone {
		return "NONE"
	}
	var parts []string
	if s.Has(StatusInputStarved) {
		parts = append(parts, "INPUT_STARVED")
	}
	if s.Has(StatusInputFinished) {
		parts = append(parts, "INPUT_FINISHED")
	}
	if s.Has(StatusEndMarker) {
		parts = append(parts, "END_MARKER")
	}
	if s.Has(StatusNoOutputSpace) {
		parts = append(parts, "NO_OUTPUT_BUFFER_SPACE")
	}
	if s.Has(StatusError) {
		parts = append(parts, "ERROR")
	}
	return strings.Join(parts, "|")
}

// DecompressStatus is a bitfield reported by DecompressIncremental describing
// why the call returned. The bit values intentionally mirror CompressStatus.
type DecompressStatus uint8

// Decompressor status flags. Multiple flags may be set simultaneously.
const (
	DStatusNone DecompressStatus = 0
	// DStatusInputStarved means the decoder needs more input bits than the queue
	// currently holds and none remain in src.
	DStatusInputStarved DecompressStatus = 1 << (iota - 1)
	// DStatusInputFinished means src was fully consumed during this call.
	DStatusInputFinished
	// DStatusEndMarker means an end-marker token was decoded.
	DStatusEndMarker
	// DStatusNoOutputSpace means the call stopped because dst had no room for a
	// pending literal or copy byte.
	DStatusNoOutputSpace
	// DStatusError means the stream is malformed; the state block must be
	// reinitialised before further use.
	DStatusError
)

// Has reports whether all bits in want are set in s.
func (s DecompressStatus) Has(want DecompressStatus) bool { return s&want == want }

func (s DecompressStatus) String() string {
	if s == DStatusNone {
		return "NONE"
	}
	var parts []string
	if s.Has(DStatusInputStarved) {
		parts = append(parts, "INPUT_STARVED")
	}
	if s.Has(DStatusInputFinished) {
		parts = append(parts, "INPUT_FINISHED")
	}
	if s.Has(DStatusEndMarker) {
		parts = append(parts, "END_MARKER")
	}
	if s.Has(DStatusNoOutputSpace) {
		parts = append(parts, "NO_OUTPUT_BUFFER_SPACE")
	}
	if s.Has(DStatusError) {
		parts = append(parts, "ERROR")
	}
	return strings.Join(parts, "|")
}
