// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrBadStamp is returned when the input does not start with a valid LZU file stamp.
	ErrBadStamp = errors.New("bad file stamp")
	// ErrWindowBits is returned when a file stamp declares a window exponent outside 12..20.
	ErrWindowBits = errors.New("window bits out of range")
	// ErrCorrupt is returned when the decoder meets a token that no encoder can produce
	// (e.g. a match longer than the look-ahead buffer or past the declared output size).
	ErrCorrupt = errors.New("corrupt stream")
	// ErrUnexpectedEOF is returned when the stream ends before the declared output size is reached.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrTooLarge is returned when the stamp declares an output larger than MaxOutputSize.
	ErrTooLarge = errors.New("output exceeds MaxOutputSize")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
