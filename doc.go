// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

// Package lzhf implements a single-pass lossless compressor: LZSS matching
// over a circular sliding window combined with a folded unary length code and
// adaptive Huffman coded literals.
//
// A compressed stream is a 16-byte little-endian stamp followed by a bit
// stream of tokens:
//
//	stamp:    tag "LZU\x00" | uint64 decompressed size | uint32 window bits
//	token 1:  match, folded unary length code, window position (length > 4)
//	token 01: match of exactly 4 bytes, window position
//	token 00: literal byte, move-to-front rank coded by an FGK Huffman tree
//
// The sliding window holds 1<<bits already-coded bytes (bits is 12..20,
// default 17) and starts zero-filled, so early matches can reference zero
// runs before any input has been seen. Positions are absolute window indexes,
// bits wide. The look-ahead buffer is half the window, which caps the match
// length; the length code spends two bits plus one unary bit per four bytes
// of match beyond the minimum.
//
// Both coders are one-pass and adaptive: no dictionary, statistics table or
// tree shape is ever stored in the stream. The decoder reconstructs the
// window, the move-to-front order and the Huffman tree by replaying exactly
// the updates the encoder made, so compression works on pipes and arbitrary
// readers without a second pass over the input.
//
// In-memory round trip:
//
//	packed, err := lzhf.Compress(data, nil)
//	if err != nil {
//		...
//	}
//	plain, err := lzhf.Decompress(packed, nil)
//
// Files are streamed with CompressTo and DecompressTo; CompressTo needs an
// io.WriteSeeker because the decompressed size is patched into the stamp
// after the input length is known.
package lzhf
