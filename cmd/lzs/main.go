// SPDX-License-Identifier: MIT
// Source: github.com/lzscodec/lzs

// Command lzs compresses and decompresses files using the LZS codec.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lzscodec/lzs"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lzs",
		Short: "Compress or decompress files with the LZS codec (ANSI X3.241-1994)",
	}

	compressCmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args[0], args[1])
		},
	}

	var maxInputSize int
	decompressCmd := &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Decompress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args[0], args[1], maxInputSize)
		},
	}
	decompressCmd.Flags().IntVar(&maxInputSize, "max-input-size", 0, "reject streams larger than this many bytes (0 = no limit)")

	rootCmd.AddCommand(compressCmd, decompressCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return exitErr(2, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return exitErr(3, err)
	}
	defer out.Close()

	w := lzs.NewWriter(out)
	if _, err := io.Copy(w, in); err != nil {
		return exitErr(4, err)
	}
	if err := w.Close(); err != nil {
		return exitErr(4, err)
	}
	return nil
}

func runDecompress(inPath, outPath string, maxInputSize int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return exitErr(2, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return exitErr(3, err)
	}
	defer out.Close()

	decoded, err := lzs.DecompressFromReader(in, &lzs.DecompressOptions{MaxInputSize: maxInputSize})
	if err != nil {
		return exitErr(4, err)
	}
	if _, err := out.Write(decoded); err != nil {
		return exitErr(4, err)
	}
	return nil
}

// exitErr prints err and sets the process exit code, matching the
// argument-file-output exit code convention (1: generic, 2: input error,
// 3: output error, 4: codec error).
func exitErr(code int, err error) error {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
	return nil
}
