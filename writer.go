// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "io"

// Writer is a streaming LZS compressor: it implements io.WriteCloser,
// feeding written bytes to a Compressor incrementally and flushing encoded
// output to an underlying io.Writer. Close must be called to emit the end
// marker; a Writer that is never closed produces an incomplete stream.
type Writer struct {
	dst io.Writer
	c   *Compressor

	out    [4096]byte
	closed bool
}

// NewWriter wraps dst as a compressing io.WriteCloser.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, c: NewCompressor(nil)}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	total := 0
	for total < len(p) {
		nDst, nSrc, status := w.c.CompressIncremental(w.out[:], p[total:], false)
		if nDst > 0 {
			if _, err := w.dst.Write(w.out[:nDst]); err != nil {
				return total, err
			}
		}
		total += nSrc
		if status.Has(StatusInputStarved) {
			return total, nil
		}
	}
	return total, nil
}

// Close flushes the end marker and any buffered output, then closes the
// stream. Further writes are not permitted afterward.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	for {
		nDst, _, status := w.c.CompressIncremental(w.out[:], nil, true)
		if nDst > 0 {
			if _, err := w.dst.Write(w.out[:nDst]); err != nil {
				return err
			}
		}
		if status.Has(StatusEndMarker) {
			return nil
		}
	}
}
