// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

// mtfTable is a move-to-front recoder over byte values. Encoder and decoder
// keep identical tables: recently seen bytes sit near the front, so literals
// turn into small ranks that the adaptive Huffman coder rewards with short
// codes.
type mtfTable struct {
	order [mtfSize]byte
}

// newMTFTable returns a table in identity order (rank i holds byte i).
func newMTFTable() *mtfTable {
	t := &mtfTable{}
	for i := range t.order {
		t.order[i] = byte(i)
	}
	return t
}

// encode returns the current rank of b and moves b to the front.
func (t *mtfTable) encode(b byte) int {
	rank := 0
	for t.order[rank] != b {
		rank++
	}
	t.moveToFront(rank)
	return rank
}

// decode returns the byte stored at rank and moves it to the front.
func (t *mtfTable) decode(rank int) byte {
	b := t.order[rank]
	t.moveToFront(rank)
	return b
}

func (t *mtfTable) moveToFront(rank int) {
	if rank == 0 {
		return
	}
	b := t.order[rank]
	copy(t.order[1:rank+1], t.order[:rank])
	t.order[0] = b
}
