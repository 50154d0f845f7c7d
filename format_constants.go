// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// LZS wire format constants: window size, offset field widths, and the
// fixed length-prefix code. See ANSI X3.241-1994 / RFC 1967.

// Sliding window / history bounds.
const (
	windowSize       = 0x7FF // W: 2047, the maximum long offset
	shortOffsetBits  = 7
	shortOffsetMax   = (1 << shortOffsetBits) - 1 // 127
	longOffsetBits   = 11
	longOffsetMax    = (1 << longOffsetBits) - 1 // 2047, equals windowSize
	extendedLenBits  = 4
	maxExtendedGroup = (1 << extendedLenBits) - 1 // 15: a group this large means "keep extending"
)

// Match length bounds.
const (
	minMatchLen   = 2 // shortest emittable back-reference
	maxShortLen   = 8 // largest length encoded by the base length-prefix code
	searchMaxLen  = 12 // LZS_SEARCH_MATCH_MAX: bounds the initial candidate search
	maxExtendedLen = maxExtendedGroup // largest single extended-length group value
)

// lengthValue/lengthWidth implement the fixed length-prefix code:
//
//	2 -> 00      (2 bits)
//	3 -> 01      (2 bits)
//	4 -> 10      (2 bits)
//	5 -> 1100    (4 bits)
//	6 -> 1101    (4 bits)
//	7 -> 1110    (4 bits)
//	8 -> 1111    (4 bits, enters extended-length mode)
//
// Index 0 and 1 are unused (minimum match length is 2).
var lengthValue = [maxShortLen + 1]uint8{0, 0, 0x0, 0x1, 0x2, 0xC, 0xD, 0xE, 0xF}
var lengthWidth = [maxShortLen + 1]uint8{0, 0, 2, 2, 2, 4, 4, 4, 4}

// hashIndexSize is the number of buckets in the 2-byte-prefix hash table;
// the hash in hashindex.go always produces a value in [0, hashIndexSize).
const hashIndexSize = 1 << 12 // 4096

// noPosition is the hash chain / head-table sentinel meaning "no entry".
// Any value >= windowSize denotes "none" per spec; using windowSize itself
// keeps the table entries addressable as plain uint16.
const noPosition = windowSize
