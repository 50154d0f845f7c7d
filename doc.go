// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

/*
Package lzs implements LZS (Lempel-Ziv-Stac) compression and decompression,
as standardised by ANSI X3.241-1994 and RFCs 1967/1974/2395/3943: an LZ77
derived algorithm with an 11-bit (2047-byte) sliding history window and a
fixed-prefix bit-packed code for literals, back-references and match
lengths.

# Single-shot

	out := lzs.Compress(data)
	back, err := lzs.Decompress(out)

# Incremental

Compressor and Decompressor are caller-owned state blocks that suspend at
arbitrary input/output boundaries and resume without losing internal bit
state — useful for embedded and streaming contexts where bytes arrive and
depart in small chunks:

	c := lzs.NewCompressor(nil)
	for {
		nDst, nSrc, status := c.CompressIncremental(dst, src, finish)
		// write dst[:nDst]; advance src by nSrc
		if status.Has(lzs.StatusEndMarker) {
			break
		}
	}

The io.Reader/io.Writer adapters in reader.go and writer.go wrap the
incremental API for callers who don't want to drive the state machine loop
directly.
*/
package lzs
