// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// decompressorState is the decoder's token-parsing phase. Each state reads
// exactly one fixed- or known-width bit field, consumes it, and transitions;
// copying interleaves with length decoding rather than waiting for a whole
// match's length to be known up front; see Decompressor.
type decompressorState uint8

const (
	dsGetTokenType      decompressorState = iota
	dsGetLiteral                          // 8-bit literal value follows
	dsEmitLiteral                         // literal decoded, waiting for dst room
	dsGetOffsetType                       // 1 bit: short (1) or long (0) offset form
	dsGetOffsetShort                      // 7-bit offset, 0 denotes the end marker
	dsGetOffsetLong                       // 11-bit offset, 0 is invalid
	dsGetLength                           // fixed length-prefix code
	dsCopyData                            // copying `length` bytes from `offset` back
	dsGetExtendedLength                   // 4-bit continuation group
	dsError                               // stream is malformed; see lastErr
)

// Decompressor is a caller-owned, single-tasked LZS decoder state block,
// mirroring Compressor. The zero value is not ready to use; construct one
// with NewDecompressor.
type Decompressor struct {
	opts DecompressOptions

	hist historyRing
	bq   bitQueue
	state decompressorState

	offset   int // match offset of the token currently being copied
	length   int // bytes remaining in the current copy burst
	extending bool // true if a GET_EXTENDED_LENGTH group follows this burst

	pendingByte byte // decoded literal awaiting output space

	atBoundary bool // true iff no token is currently in progress

	consumedTotal int // cumulative src bytes consumed across all calls since Reset

	lastErr error
}

// NewDecompressor allocates a Decompressor ready for use. A nil opts uses
// DefaultDecompressOptions.
func NewDecompressor(opts *DecompressOptions) *Decompressor {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	d := &Decompressor{opts: *opts}
	d.Reset()
	return d
}

// Reset returns the Decompressor to its initial state, ready to decode a
// new, unrelated stream.
func (d *Decompressor) Reset() {
	d.hist.reset()
	d.bq.reset()
	d.state = dsGetTokenType
	d.offset = 0
	d.length = 0
	d.extending = false
	d.pendingByte = 0
	d.atBoundary = true
	d.consumedTotal = 0
	d.lastErr = nil
}

// Err returns the error that put the decoder into its error state, or nil.
func (d *Decompressor) Err() error { return d.lastErr }

// atFrameBoundary reports whether the decoder has no token in progress:
// true on construction and again immediately after an end marker has been
// decoded, false from the moment a token-type bit commits it to decoding a
// literal or a match. Used by Reader to tell a clean end of input (no
// further frames follow) apart from a stream truncated mid-token; bit
// alignment alone cannot distinguish the two; since a non-end-marker token
// can coincidentally leave the bit queue byte-aligned too.
func (d *Decompressor) atFrameBoundary() bool {
	return d.atBoundary
}

// ensureBits tops up the bit queue from src until it holds at least n bits
// or src is exhausted, returning false in the latter case.
func (d *Decompressor) ensureBits(n uint8, src []byte, nSrc *int) bool {
	for d.bq.count < n {
		if *nSrc >= len(src) {
			return false
		}
		d.bq.fillByte(src[*nSrc])
		*nSrc++
	}
	return true
}

func (d *Decompressor) fail(err error) {
	d.lastErr = err
	d.state = dsError
}

// DecompressIncremental advances the decoder by consuming as much of src and
// producing as much of dst as it can in one call, then suspends. Callers
// drive it in a loop, feeding new input and/or draining dst, until the
// returned status no longer demands it.
func (d *Decompressor) DecompressIncremental(dst, src []byte) (nDst, nSrc int, status DecompressStatus) {
	defer func() {
		if nSrc >= len(src) {
			status |= DStatusInputFinished
		}
		d.consumedTotal += nSrc
		if d.opts.MaxInputSize > 0 && d.consumedTotal > d.opts.MaxInputSize &&
			!status.Has(DStatusError) && !status.Has(DStatusEndMarker) {
			d.fail(ErrInputTooLarge)
			status |= DStatusError
		}
	}()

	for {
		switch d.state {
		case dsError:
			return nDst, nSrc, status | DStatusError

		case dsGetTokenType:
			if !d.ensureBits(1, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			if d.bq.peek(1) == 0 {
				d.state = dsGetLiteral
			} else {
				d.state = dsGetOffsetType
			}
			d.bq.consume(1)
			d.atBoundary = false

		case dsGetLiteral:
			if !d.ensureBits(8, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			d.pendingByte = byte(d.bq.peek(8))
			d.bq.consume(8)
			d.state = dsEmitLiteral

		case dsEmitLiteral:
			if nDst >= len(dst) {
				return nDst, nSrc, status | DStatusNoOutputSpace
			}
			dst[nDst] = d.pendingByte
			nDst++
			d.hist.write(d.pendingByte)
			d.state = dsGetTokenType

		case dsGetOffsetType:
			if !d.ensureBits(1, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			if d.bq.peek(1) == 1 {
				d.state = dsGetOffsetShort
			} else {
				d.state = dsGetOffsetLong
			}
			d.bq.consume(1)

		case dsGetOffsetShort:
			if !d.ensureBits(shortOffsetBits, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			v := int(d.bq.peek(shortOffsetBits))
			d.bq.consume(shortOffsetBits)
			if v == 0 {
				// End marker: byte-align past the 0-7 padding bits that follow
				// it and return to GET_TOKEN_TYPE, so a caller that keeps
				// feeding input decodes a following, independently-framed
				// stream rather than getting stuck.
				d.bq.byteAlign()
				d.state = dsGetTokenType
				d.atBoundary = true
				return nDst, nSrc, status | DStatusEndMarker
			}
			d.offset = v
			d.state = dsGetLength

		case dsGetOffsetLong:
			if !d.ensureBits(longOffsetBits, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			v := int(d.bq.peek(longOffsetBits))
			d.bq.consume(longOffsetBits)
			if v == 0 {
				d.fail(ErrInvalidOffset)
				continue
			}
			d.offset = v
			d.state = dsGetLength

		case dsGetLength:
			if !d.ensureBits(2, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			switch d.bq.peek(2) {
			case 0x0:
				d.bq.consume(2)
				d.length, d.extending = 2, false
			case 0x1:
				d.bq.consume(2)
				d.length, d.extending = 3, false
			case 0x2:
				d.bq.consume(2)
				d.length, d.extending = 4, false
			default: // 0b11: four-bit code, one of 1100/1101/1110/1111
				if !d.ensureBits(4, src, &nSrc) {
					return nDst, nSrc, status | DStatusInputStarved
				}
				switch d.bq.peek(4) {
				case 0xC:
					d.length, d.extending = 5, false
				case 0xD:
					d.length, d.extending = 6, false
				case 0xE:
					d.length, d.extending = 7, false
				case 0xF:
					d.length, d.extending = 8, true
				}
				d.bq.consume(4)
			}
			if d.offset > int(d.hist.len) {
				d.fail(ErrInvalidOffset)
				continue
			}
			d.state = dsCopyData

		case dsCopyData:
			for d.length > 0 {
				if nDst >= len(dst) {
					return nDst, nSrc, status | DStatusNoOutputSpace
				}
				b := d.hist.readAt(uint16(d.offset))
				dst[nDst] = b
				nDst++
				d.hist.write(b)
				d.length--
			}
			if d.extending {
				d.state = dsGetExtendedLength
			} else {
				d.state = dsGetTokenType
			}

		case dsGetExtendedLength:
			if !d.ensureBits(extendedLenBits, src, &nSrc) {
				return nDst, nSrc, status | DStatusInputStarved
			}
			g := int(d.bq.peek(extendedLenBits))
			d.bq.consume(extendedLenBits)
			d.length = g
			d.extending = g == maxExtendedGroup
			d.state = dsCopyData

		default:
			d.fail(ErrInternal)
		}
	}
}
