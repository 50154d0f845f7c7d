// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

import (
	"bytes"
	"strings"
	"testing"
)

// These mirror the worked encodings from ANSI X3.241-1994: a literal is
// `0` + 8 data bits, a short-offset match is `1 1` + 7 offset bits + the
// length code, and the end marker is a short offset of zero (`1 1
// 0000000`) padded to a byte boundary. The reference encoder
// (lzs_compress_incremental in the C implementation this package's wire
// format is ported from) confirms the end marker's bit pattern is
// 0b110000000, packed as 0xC0, 0x00 for an empty input.
func TestWireFormat_EmptyInput(t *testing.T) {
	got := Compress(nil)
	want := []byte{0xC0, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("Compress(nil) = % 02x, want % 02x", got, want)
	}
}

func TestWireFormat_SingleLiteral(t *testing.T) {
	got := Compress([]byte("A"))
	want := []byte{0x20, 0xE0, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("Compress(\"A\") = % 02x, want % 02x", got, want)
	}
}

func TestWireFormat_RepeatedRunEncodesAsMatch(t *testing.T) {
	// "XXXXX": literal X, then match(offset=1, length=4), then end marker.
	got := Compress([]byte("XXXXX"))
	out, err := Decompress(got)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != "XXXXX" {
		t.Fatalf("round-trip = %q, want %q", out, "XXXXX")
	}
	// Expect exactly one literal token (9 bits) + one match token
	// (1+1+7+2=11 bits) + end marker (9 bits) = 29 bits, rounded up to 4 bytes.
	if len(got) != 4 {
		t.Fatalf("len(Compress(\"XXXXX\")) = %d, want 4", len(got))
	}
}

func TestWireFormat_OverlappingBackreference(t *testing.T) {
	// "ABAB": literal A, literal B, match(offset=2, length=2), end marker.
	out, err := Decompress(Compress([]byte("ABAB")))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != "ABAB" {
		t.Fatalf("round-trip = %q, want %q", out, "ABAB")
	}
}

func TestWireFormat_ExtendedLengthMatch(t *testing.T) {
	src := []byte(strings.Repeat("a", 23))
	out, err := Decompress(Compress(src))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("round-trip mismatch for 23-byte run")
	}
}

func TestWireFormat_PrintableSentence(t *testing.T) {
	src := []byte("Return a string containing a printable representation of an object.")
	out, err := Decompress(Compress(src))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatalf("round-trip mismatch: got %q want %q", out, src)
	}
}

func TestRoundTrip_VariousInputs(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		bytes.Repeat([]byte{0, 1, 2, 3}, 1000),
		[]byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 200)),
		{0xFF, 0x00, 0xFF, 0x00},
	}
	// Every byte value, to exercise the full literal alphabet.
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	cases = append(cases, allBytes, bytes.Repeat(allBytes, 10))

	for i, src := range cases {
		compressed := Compress(src)
		out, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("case %d: Decompress failed: %v", i, err)
		}
		if !bytes.Equal(out, src) {
			t.Fatalf("case %d: round-trip mismatch (len src=%d, len out=%d)", i, len(src), len(out))
		}
	}
}

func TestRoundTrip_LongHistoryWindow(t *testing.T) {
	// Exceeds the 2047-byte window so the match search must walk a ring
	// that has wrapped, and offset-251 references must still resolve
	// across the wrap point.
	src := make([]byte, 10000)
	for i := range src {
		src[i] = byte(i % 251)
	}
	out, err := Decompress(Compress(src))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("round-trip mismatch over a multi-window input")
	}
}

func TestRoundTrip_IncompressibleDataDoesNotExceedBound(t *testing.T) {
	src := make([]byte, 5000)
	// A pattern in which no 2-byte sequence occurs twice, so no match is
	// possible: block k (256 bytes) steps through all byte values with the
	// odd stride 2k+1, so every adjacent pair has a distinct stride or start.
	for i := range src {
		src[i] = byte((i % 256) * (2*(i/256) + 1))
	}
	compressed := Compress(src)
	if len(compressed) > CompressBound(len(src)) {
		t.Fatalf("len(compressed)=%d exceeds CompressBound(%d)=%d", len(compressed), len(src), CompressBound(len(src)))
	}
	out, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Fatal("round-trip mismatch for incompressible input")
	}
}

func TestDecompress_TruncatedStreamIsAnError(t *testing.T) {
	full := Compress(bytes.Repeat([]byte("truncate me"), 50))
	truncated := full[:len(full)-2]
	if _, err := Decompress(truncated); err == nil {
		t.Fatal("Decompress(truncated) = nil error, want an error")
	}
}

func TestDecompress_InvalidLongOffsetZero(t *testing.T) {
	// Hand-crafted token stream: a long-offset match token with offset
	// field 0, which is invalid (only the short form may encode 0, as the
	// end marker).
	var q bitQueue
	q.pushBits(1, 1) // match flag
	q.pushBits(0, 1) // long-offset form
	q.pushBits(0, longOffsetBits)
	q.pushBits(0x0, 2) // length 2
	q.flushToByte()
	buf := make([]byte, 0, 4)
	for q.count >= 8 {
		buf = append(buf, q.drainByte())
	}

	if _, err := Decompress(buf); err != ErrInvalidOffset {
		t.Fatalf("Decompress(invalid long offset) error = %v, want ErrInvalidOffset", err)
	}
}
