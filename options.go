// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

package lzs

// InitMode selects how a Compressor initialises its hash index on Init/Reset.
type InitMode int

const (
	// InitModeQuick skips clearing the hash tables. Safe, since every
	// candidate match is verified by direct byte comparison before use; it
	// only risks a few wasted probes or missed matches in the first
	// windowSize bytes of a freshly reset state block.
	InitModeQuick InitMode = iota
	// InitModeFull clears the hash tables up front, trading a one-time
	// O(windowSize) pass for deterministic, garbage-free matching from the
	// very first byte.
	InitModeFull
)

// CompressOptions configures a Compressor.
type CompressOptions struct {
	// InitMode controls hash-table initialisation. Defaults to InitModeQuick.
	InitMode InitMode
}

// DefaultCompressOptions returns the default compression options: quick
// hash-table initialisation.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{InitMode: InitModeQuick}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// MaxInputSize is the largest compressed input, in bytes, accepted
	// before decoding fails with ErrInputTooLarge (0 = no limit).
	// DecompressFromReader reads the whole source before checking it.
	MaxInputSize int
}

// DefaultDecompressOptions returns the default decompression options.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
