// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

// Stream format constants: window geometry, match finder bounds and
// bit-stream parameters.

// Window size limits. WindowBits selects a power-of-two ring buffer; the
// look-ahead buffer is always half the window, so the longest possible match
// is 1<<(bits-1) bytes.
const (
	// MinWindowBits is the smallest accepted window exponent (4 KiB window).
	MinWindowBits = 12
	// MaxWindowBits is the largest accepted window exponent (1 MiB window).
	MaxWindowBits = 20
	// DefaultWindowBits is used when CompressOptions.WindowBits is zero (128 KiB window).
	DefaultWindowBits = 17
)

// Match finder parameters.
const (
	minMatchLen    = 4 // shortest match worth a position code; shorter runs go out as literals
	hashContextLen = 4 // bytes of window content hashed per slot

	// Search cost bounds: one search walks at most maxSearchVisits chain
	// nodes and scores at most maxSearchScores improving candidates before
	// settling for the best match found so far.
	maxSearchVisits = 1 << 12
	maxSearchScores = 196

	lzNull = -1 // empty hash chain link
)

// Bit-stream parameters.
const (
	lenFoldBits = 2   // remainder bits kept binary in the folded match length code
	mtfSize     = 256 // move-to-front alphabet size (one entry per byte value)
)
