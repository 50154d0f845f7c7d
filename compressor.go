// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// compressorState tracks which phase of a single logical operation the
// encoder has suspended in. It never re-decides a token once chosen: a
// state transition only happens once the bits for the current step are
// fully queued.
type compressorState uint8

const (
	csScan  compressorState = iota // gathering look-ahead and choosing the next token
	csFlush                        // padding the final partial byte after the end marker
	csDone                         // end marker emitted and flushed; further calls are no-ops
)

// Compressor is a caller-owned, single-tasked LZS encoder state block. It
// holds no heap-allocated buffers beyond its own fields, so it can be
// embedded, pooled, or stack-allocated by the caller. The zero value is not
// ready to use; construct one with NewCompressor.
type Compressor struct {
	opts CompressOptions

	hist historyRing
	hash hashIndex
	look lookahead
	bq   bitQueue

	state compressorState
}

// NewCompressor allocates a Compressor ready for use. A nil opts uses
// DefaultCompressOptions.
func NewCompressor(opts *CompressOptions) *Compressor {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	c := &Compressor{opts: *opts}
	c.Reset()
	return c
}

// Reset returns the Compressor to its initial state, ready to encode a new,
// unrelated stream. It does not change the configured options.
func (c *Compressor) Reset() {
	c.hist.reset()
	if c.opts.InitMode == InitModeFull {
		c.hash.resetFull()
	} else {
		c.hash.resetQuick()
	}
	c.look.reset()
	c.bq.reset()
	c.state = csScan
}

// CompressIncremental advances the encoder by consuming as much of src and
// producing as much of dst as it can in one call, then suspends. Callers
// drive it in a loop, feeding new input and/or draining dst, until the
// returned status no longer demands it: see package doc for the full
// suspend/resume protocol.
//
// finish tells the encoder that src holds the last bytes of the stream; once
// all of src and any buffered look-ahead have been consumed, the encoder
// emits the end marker and reports StatusEndMarker.
func (c *Compressor) CompressIncremental(dst, src []byte, finish bool) (nDst, nSrc int, status CompressStatus) {
	for {
		for c.bq.count >= 8 {
			if nDst >= len(dst) {
				return nDst, nSrc, status | StatusNoOutputSpace
			}
			dst[nDst] = c.bq.drainByte()
			nDst++
		}

		switch c.state {
		case csDone:
			status |= StatusEndMarker
			if finish {
				status |= StatusInputFinished
			}
			return nDst, nSrc, status

		case csFlush:
			c.bq.flushToByte()
			c.state = csDone

		case csScan:
			for !c.look.full() && nSrc < len(src) {
				c.look.push(src[nSrc])
				nSrc++
			}
			inputExhausted := nSrc >= len(src)

			if c.look.len() == 0 {
				if finish {
					c.emitEndMarker()
					c.state = csFlush
					continue
				}
				status |= StatusInputStarved
				if inputExhausted {
					status |= StatusInputFinished
				}
				return nDst, nSrc, status
			}

			if !c.look.full() && !finish && inputExhausted {
				status |= StatusInputStarved | StatusInputFinished
				return nDst, nSrc, status
			}

			c.decideAndEmit()
		}
	}
}

// decideAndEmit chooses and encodes exactly one token (a literal or a
// match) from the front of the look-ahead buffer, then advances history and
// the look-ahead past the consumed bytes.
func (c *Compressor) decideAndEmit() {
	var offset, length int
	if c.look.len() >= 2 {
		offset, length = c.search()
	}
	if length >= minMatchLen {
		if full := c.matchLenAt(offset, c.look.len()); full > length {
			length = full
		}
		c.emitMatch(offset, length)
		c.commit(length)
		return
	}
	c.emitLiteral(c.look.byteAt(0))
	c.commit(1)
}

// search walks the hash chain for the 2-byte prefix at the front of the
// look-ahead and returns the longest match found, bounded by searchMaxLen.
// Chain positions are rejected once their offset is out of range or fails
// to strictly increase, which bounds the walk and discards stale entries
// left over from a quick (uncleared) reset.
func (c *Compressor) search() (offset, length int) {
	a, b := c.look.byteAt(0), c.look.byteAt(1)
	pos := c.hash.chainHead(a, b)

	cap := searchMaxLen
	if c.look.len() < cap {
		cap = c.look.len()
	}

	lastOffset := 0
	for pos != noPosition {
		off := int(distanceBack(c.hist.pos, pos))
		if off < 1 || off > int(c.hist.len) || off <= lastOffset {
			break
		}
		lastOffset = off

		l := c.matchLenAt(off, cap)
		if l > length {
			length = l
			offset = off
			if l >= cap {
				break
			}
		}
		pos = c.hash.chainNext(pos)
	}
	return offset, length
}

// refByte returns the byte offset positions before look-ahead index i. When
// i < offset that byte is already committed history; otherwise it is a byte
// earlier in the same look-ahead run, giving self-overlapping matches (e.g.
// offset 1 against a run of identical bytes) for free.
func (c *Compressor) refByte(offset, i int) byte {
	if i < offset {
		return c.hist.readAt(uint16(offset - i))
	}
	return c.look.byteAt(i - offset)
}

// matchLenAt reports how many consecutive look-ahead bytes starting at
// index 0 equal the corresponding byte offset positions earlier, up to max.
func (c *Compressor) matchLenAt(offset, max int) int {
	n := 0
	for n < max && n < c.look.len() {
		if c.look.byteAt(n) != c.refByte(offset, n) {
			break
		}
		n++
	}
	return n
}

// commit folds the first n look-ahead bytes into history, indexing each
// position's 2-byte prefix for future matches, then drops them from the
// look-ahead.
func (c *Compressor) commit(n int) {
	total := c.look.len()
	for i := 0; i < n; i++ {
		a := c.look.byteAt(i)
		var b byte
		if i+1 < total {
			b = c.look.byteAt(i + 1)
		}
		c.hash.insert(c.hist.pos, a, b)
		c.hist.write(a)
	}
	c.look.advance(n)
}

// emitLiteral queues a literal token: flag bit 0 followed by 8 data bits.
func (c *Compressor) emitLiteral(b byte) {
	c.bq.pushBits(0, 1)
	c.bq.pushBits(uint32(b), 8)
}

// emitMatch queues a back-reference token: flag bit 1, an offset (short or
// long form, preferring short whenever it fits), and a length using the
// fixed length-prefix code with extended-length continuation groups for
// lengths of maxShortLen and above (length 8 itself ends with a group of 0).
func (c *Compressor) emitMatch(offset, length int) {
	c.bq.pushBits(1, 1)
	if offset <= shortOffsetMax {
		c.bq.pushBits(1, 1)
		c.bq.pushBits(uint32(offset), shortOffsetBits)
	} else {
		c.bq.pushBits(0, 1)
		c.bq.pushBits(uint32(offset), longOffsetBits)
	}

	if length < maxShortLen {
		c.bq.pushBits(uint32(lengthValue[length]), lengthWidth[length])
		return
	}
	c.bq.pushBits(uint32(lengthValue[maxShortLen]), lengthWidth[maxShortLen])
	extra := length - maxShortLen
	for extra >= maxExtendedGroup {
		c.bq.pushBits(maxExtendedGroup, extendedLenBits)
		extra -= maxExtendedGroup
	}
	c.bq.pushBits(uint32(extra), extendedLenBits)
}

// emitEndMarker queues the end-of-stream token: a match token with a
// short offset of zero, which carries no length field.
func (c *Compressor) emitEndMarker() {
	c.bq.pushBits(1, 1)
	c.bq.pushBits(1, 1)
	c.bq.pushBits(0, shortOffsetBits)
}
