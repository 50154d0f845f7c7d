// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// idxIncWrap and idxDecWrap perform circular index arithmetic over an array
// of the given size using a single conditional add/subtract rather than the
// modulo operator, since windowSize (2047) is not a power of two. Both are
// correct for any idx in [0, size) and inc/dec in [0, size].
//
// idxDecWrap relies on the defined wraparound behaviour of Go's unsigned
// integer types: when idx < dec, dec is first pushed negative (wrapping to a
// very large value), and the final subtraction wraps a second time, landing
// back in range. This mirrors lzs_idx_dec_wrap from the reference C
// implementation, which documents the same two-overflow cancellation.
func idxIncWrap(idx, inc, size uint16) uint16 {
	newIdx := idx + inc
	if newIdx >= size {
		newIdx -= size
	}
	return newIdx
}

func idxDecWrap(idx, dec, size uint16) uint16 {
	if idx < dec {
		dec -= size
	}
	return idx - dec
}

// historyRing is the fixed-capacity circular byte buffer described in
// spec component 4.2. It holds the most recently emitted/decoded
// windowSize bytes, addressed by write and readAt.
type historyRing struct {
	buf [windowSize]byte
	pos uint16 // index the next written byte will occupy
	len uint16 // number of valid bytes written so far, saturates at windowSize
}

// reset returns the ring to its empty, freshly-initialised state. The
// backing array is not cleared: len tracks validity, and readAt is only
// ever called with offsets bounded by len by the compressor/decompressor.
func (h *historyRing) reset() {
	h.pos = 0
	h.len = 0
}

// write appends b as the new most-recent byte.
func (h *historyRing) write(b byte) {
	h.buf[h.pos] = b
	h.pos = idxIncWrap(h.pos, 1, windowSize)
	if h.len < windowSize {
		h.len++
	}
}

// readAt returns the byte offset bytes behind the most recently written
// one. offset 1 is the most recent byte; offset must be in [1, h.len].
func (h *historyRing) readAt(offset uint16) byte {
	idx := idxDecWrap(h.pos, offset, windowSize)
	return h.buf[idx]
}

// distanceBack returns the offset o such that idxDecWrap(from, o, windowSize)
// == to, i.e. how many positions back from, the ring walk must travel to
// reach to. Used to turn a hash chain's stored ring position into the
// offset value a match token actually encodes.
func distanceBack(from, to uint16) uint16 {
	if from >= to {
		return from - to
	}
	return from + (windowSize - to)
}
