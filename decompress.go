// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "io"

// DecompressBound returns a generous upper bound on the decompressed size
// of an n-byte compressed input: each 4-bit extended-length group adds 15
// output bytes, about 30 output bytes per compressed byte, so this
// multiplies by a conservative factor rather than trying to bound the true
// worst case precisely.
func DecompressBound(n int) int {
	return n*64 + 64
}

// Decompress decodes a complete LZS stream using the default options and
// returns the original bytes.
func Decompress(src []byte) ([]byte, error) {
	out, _, err := DecompressN(src)
	return out, err
}

// DecompressWithOptions decodes a complete LZS stream under the given
// options (nil for defaults) and returns the original bytes.
func DecompressWithOptions(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := decompressN(src, opts)
	return out, err
}

// DecompressN decodes a complete LZS stream and also reports how many bytes
// of src were consumed through the end marker (any trailing bytes are not
// part of this stream and are left unconsumed, e.g. back-to-back blocks).
func DecompressN(src []byte) ([]byte, int, error) {
	return decompressN(src, nil)
}

func decompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	var d *Decompressor
	if opts == nil {
		d = getDecompressor()
		defer putDecompressor(d)
	} else {
		d = NewDecompressor(opts)
	}

	dst := make([]byte, 0, DecompressBound(len(src)))
	buf := make([]byte, 4096)
	srcPos := 0
	for {
		nDst, nSrc, status := d.DecompressIncremental(buf, src[srcPos:])
		dst = append(dst, buf[:nDst]...)
		srcPos += nSrc

		if status.Has(DStatusError) {
			return nil, 0, d.Err()
		}
		if status.Has(DStatusEndMarker) {
			return dst, srcPos, nil
		}
		if status.Has(DStatusInputStarved) && status.Has(DStatusInputFinished) {
			return nil, 0, ErrTruncatedStream
		}
		// DStatusNoOutputSpace: buf is full but dst grows unbounded, so just
		// loop and drain again.
	}
}

// DecompressFromReader reads a full stream from r and decodes it. If
// opts.MaxInputSize is positive and the stream exceeds it, returns
// ErrInputTooLarge before attempting to decode anything.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src)
}
