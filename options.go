// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

// CompressOptions configures compression.
type CompressOptions struct {
	// WindowBits selects the sliding-window size as 1<<WindowBits bytes (12..20).
	// Zero means DefaultWindowBits; out-of-range values are clamped into range.
	WindowBits int
}

// DefaultCompressOptions returns options with the default window exponent.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{WindowBits: DefaultWindowBits}
}

// DecompressOptions configures decompression.
// The output size comes from the file stamp; the limits below only bound how
// much a hostile stamp or stream can make the decoder allocate or read.
type DecompressOptions struct {
	// MaxOutputSize rejects streams whose stamp declares a larger decompressed
	// size (0 = no limit).
	MaxOutputSize int64
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int64
}

// DefaultDecompressOptions returns options with no size limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// clampWindowBits maps zero to DefaultWindowBits and forces everything else
// into MinWindowBits..MaxWindowBits.
func clampWindowBits(bits int) int {
	switch {
	case bits == 0:
		return DefaultWindowBits
	case bits < MinWindowBits:
		return MinWindowBits
	case bits > MaxWindowBits:
		return MaxWindowBits
	}
	return bits
}
