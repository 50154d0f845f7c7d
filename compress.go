// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// CompressBound returns a worst-case upper bound on the compressed size of
// an n-byte input: every byte encoded as a 9-bit literal, rounded up to a
// whole byte, plus the 9-bit (padded) end marker.
func CompressBound(n int) int {
	return (n*9+7)/8 + 2
}

// Compress encodes src in full using the default options and returns the
// compressed bytes. It never returns an error: any byte sequence is valid
// LZS input.
func Compress(src []byte) []byte {
	return CompressWithOptions(src, nil)
}

// CompressWithOptions encodes src in full under the given options (nil for
// defaults). A caller that compresses many independent inputs back to back
// should prefer driving a single pooled Compressor directly, since this
// entry point acquires and releases one per call.
func CompressWithOptions(src []byte, opts *CompressOptions) []byte {
	var c *Compressor
	if opts == nil {
		c = getCompressor()
		defer putCompressor(c)
	} else {
		c = NewCompressor(opts)
	}

	dst := make([]byte, 0, CompressBound(len(src)))
	buf := make([]byte, 4096)
	srcPos := 0
	for {
		nDst, nSrc, status := c.CompressIncremental(buf, src[srcPos:], true)
		dst = append(dst, buf[:nDst]...)
		srcPos += nSrc
		if status.Has(StatusEndMarker) {
			return dst
		}
	}
}
