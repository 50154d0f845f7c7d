// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import "testing"

func TestBitQueue_PushDrainRoundTrip(t *testing.T) {
	var q bitQueue
	q.pushBits(0x3, 2)  // 11
	q.pushBits(0x0, 1)  // 0
	q.pushBits(0x5, 5)  // 00101
	// total 8 bits: 1 1 0 0 0 1 0 1 = 0xC5
	if q.count != 8 {
		t.Fatalf("count = %d, want 8", q.count)
	}
	got := q.drainByte()
	if got != 0xC5 {
		t.Fatalf("drainByte() = %#02x, want 0xC5", got)
	}
	if q.count != 0 {
		t.Fatalf("count after drain = %d, want 0", q.count)
	}
}

func TestBitQueue_FillPeekConsume(t *testing.T) {
	var q bitQueue
	q.fillByte(0xA5) // 1010 0101
	if q.peek(4) != 0xA {
		t.Fatalf("peek(4) = %#x, want 0xA", q.peek(4))
	}
	q.consume(4)
	if q.peek(4) != 0x5 {
		t.Fatalf("peek(4) after consume = %#x, want 0x5", q.peek(4))
	}
	if q.count != 4 {
		t.Fatalf("count = %d, want 4", q.count)
	}
}

func TestBitQueue_ByteAlign(t *testing.T) {
	var q bitQueue
	q.pushBits(1, 1)
	q.pushBits(1, 1)
	q.pushBits(0, 7) // 9 bits total, like an end-marker token
	q.byteAlign()
	if q.count != 8 {
		t.Fatalf("count after byteAlign = %d, want 8", q.count)
	}
}

func TestBitQueue_FlushToByte(t *testing.T) {
	var q bitQueue
	q.pushBits(1, 3)
	q.flushToByte()
	if q.count != 8 {
		t.Fatalf("count after flushToByte = %d, want 8", q.count)
	}
	// the padding bits must read back as zero
	if q.peek(8)&0x1F != 0 {
		t.Fatalf("padding bits not zero: %#08b", q.peek(8))
	}
}

func TestBitQueue_MultiByteToken(t *testing.T) {
	var q bitQueue
	// A long-offset match token: flag(1) + type(0) + offset(11 bits = 0x400) + length 00 (2 bits).
	q.pushBits(1, 1)
	q.pushBits(0, 1)
	q.pushBits(0x400, 11)
	q.pushBits(0x0, 2)
	if q.count != 15 {
		t.Fatalf("count = %d, want 15", q.count)
	}
	b0 := q.drainByte()
	q.fillByte(0) // pad so the remaining 7 bits can be drained for inspection
	b1 := q.drainByte()
	// Reconstruct the 15 pushed bits from the two drained bytes' top 15 bits.
	got := (uint16(b0) << 7) | (uint16(b1) >> 1)
	want := uint16(0b1_0_10000000000_00)
	if got != want {
		t.Fatalf("reconstructed bits = %015b, want %015b", got, want)
	}
}
