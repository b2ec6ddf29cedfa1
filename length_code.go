// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import "github.com/icza/bitio"

// Folded unary code for match lengths above minMatchLen. The value
// r = length - minMatchLen - 1 is split into a quotient r>>lenFoldBits,
// written as that many 1 bits plus a 0 terminator, and the low lenFoldBits
// bits written in binary. Short matches cost a handful of bits while long
// runs grow linearly, which beats a fixed-width length field on typical data.

// maxLenQuotient bounds the unary run the decoder accepts; the longest legal
// match is one look-ahead buffer, 1<<(MaxWindowBits-1) bytes.
const maxLenQuotient = (1 << (MaxWindowBits - 1)) >> lenFoldBits

// writeMatchLength encodes length (> minMatchLen) onto w.
func writeMatchLength(w *bitio.Writer, length int) error {
	r := length - minMatchLen - 1
	for q := r >> lenFoldBits; q > 0; q-- {
		if err := w.WriteBool(true); err != nil {
			return err
		}
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	return w.WriteBits(uint64(r&(1<<lenFoldBits-1)), lenFoldBits)
}

// readMatchLength decodes a length written by writeMatchLength.
func readMatchLength(r *bitio.Reader) (int, error) {
	q := 0
	for {
		one, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if !one {
			break
		}
		if q++; q > maxLenQuotient {
			return 0, ErrCorrupt
		}
	}
	rem, err := r.ReadBits(lenFoldBits)
	if err != nil {
		return 0, err
	}
	return q<<lenFoldBits + int(rem) + minMatchLen + 1, nil
}
