// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "sync"

// compressorPool recycles Compressor state blocks across single-shot
// Compress calls, avoiding a fresh history/hash-table allocation (a few KB)
// per call under sustained load.
var compressorPool = sync.Pool{
	New: func() any { return NewCompressor(DefaultCompressOptions()) },
}

func getCompressor() *Compressor {
	return compressorPool.Get().(*Compressor)
}

func putCompressor(c *Compressor) {
	c.Reset()
	compressorPool.Put(c)
}

// decompressorPool recycles Decompressor state blocks the same way.
var decompressorPool = sync.Pool{
	New: func() any { return NewDecompressor(DefaultDecompressOptions()) },
}

func getDecompressor() *Decompressor {
	return decompressorPool.Get().(*Decompressor)
}

func putDecompressor(d *Decompressor) {
	d.Reset()
	decompressorPool.Put(d)
}
