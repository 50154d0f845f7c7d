// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// lookaheadCap bounds the small buffer of not-yet-committed input bytes the
// incremental compressor needs on hand before it can decide how to encode
// the byte at its scan position: enough to confirm an extended-length
// group (maxExtendedLen) plus one, with headroom.
const lookaheadCap = 24

// lookahead is a small FIFO of input bytes the compressor has received but
// not yet folded into history. It is logically distinct from historyRing:
// a byte only leaves the lookahead and enters history once the encoder has
// committed to how it is represented on the wire.
type lookahead struct {
	buf   [lookaheadCap]byte
	start int
	n     int
}

func (l *lookahead) reset() {
	l.start = 0
	l.n = 0
}

func (l *lookahead) len() int { return l.n }

func (l *lookahead) full() bool { return l.n == lookaheadCap }

// byteAt returns the i-th buffered byte, 0 being the oldest (the current
// scan position).
func (l *lookahead) byteAt(i int) byte {
	return l.buf[(l.start+i)%lookaheadCap]
}

// push appends b to the end of the buffer. Precondition: !l.full().
func (l *lookahead) push(b byte) {
	l.buf[(l.start+l.n)%lookaheadCap] = b
	l.n++
}

// advance drops the oldest n buffered bytes, e.g. after they have been
// committed to history as a literal or consumed by a match.
func (l *lookahead) advance(n int) {
	l.start = (l.start + n) % lookaheadCap
	l.n -= n
}
