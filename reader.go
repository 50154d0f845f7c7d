// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "io"

// Reader is a streaming LZS decompressor: it implements io.Reader, pulling
// compressed bytes from an underlying io.Reader and feeding a Decompressor
// incrementally, so a caller never has to hold a whole compressed stream in
// memory. A source holding several back-to-back LZS frames is decoded as
// their concatenated plaintext, mirroring how the underlying Decompressor
// keeps decoding tokens after an end marker when it is given more input.
type Reader struct {
	src io.Reader
	d   *Decompressor

	in    [4096]byte
	inLen int
	inPos int
	inEOF bool

	done bool
	err  error // sticky error/EOF once done, returned by further Read calls
}

// NewReader wraps src as a decompressing io.Reader using the default options.
func NewReader(src io.Reader) *Reader {
	return NewReaderWithOptions(src, nil)
}

// NewReaderWithOptions wraps src as a decompressing io.Reader. If
// opts.MaxInputSize is positive, Read returns ErrInputTooLarge once more
// than that many compressed bytes have been consumed from src, bounding how much a
// caller will read from an untrusted stream before giving up.
func NewReaderWithOptions(src io.Reader, opts *DecompressOptions) *Reader {
	return &Reader{src: src, d: NewDecompressor(opts)}
}

// Read implements io.Reader. It returns io.EOF once the underlying source is
// exhausted at a clean frame boundary; a stream that ends mid-token is
// reported as ErrTruncatedStream. An end marker alone does not end the
// Read loop: if more input follows, it is decoded as a subsequent frame.
func (r *Reader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}

	total := 0
	for total < len(p) {
		if r.inPos >= r.inLen && !r.inEOF {
			n, err := r.src.Read(r.in[:])
			r.inLen, r.inPos = n, 0
			if err == io.EOF {
				r.inEOF = true
			} else if err != nil {
				r.done, r.err = true, err
				return total, err
			}
		}

		nDst, nSrc, status := r.d.DecompressIncremental(p[total:], r.in[r.inPos:r.inLen])
		r.inPos += nSrc
		total += nDst

		if status.Has(DStatusError) {
			r.done, r.err = true, r.d.Err()
			if total > 0 {
				return total, nil
			}
			return 0, r.err
		}
		if status.Has(DStatusEndMarker) {
			// A frame is complete; the decoder is back at a clean boundary
			// and ready for another one if the source has more to give.
			continue
		}
		if status.Has(DStatusNoOutputSpace) {
			return total, nil
		}
		if status.Has(DStatusInputStarved) {
			if r.inEOF {
				if r.d.atFrameBoundary() {
					r.done, r.err = true, io.EOF
				} else {
					r.done, r.err = true, ErrTruncatedStream
				}
				if total > 0 {
					return total, nil
				}
				return 0, r.err
			}
			if total > 0 {
				return total, nil
			}
			continue
		}
	}
	return total, nil
}
