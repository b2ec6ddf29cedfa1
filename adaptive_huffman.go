// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import "github.com/icza/bitio"

// fgkCoder is an adaptive Huffman coder (FGK variant) over move-to-front
// ranks. The tree starts as a lone NYT (not-yet-transmitted) leaf and grows
// one leaf per distinct rank; after every coded symbol the touched path is
// re-weighted and nodes are swapped to keep the sibling property. Encoder and
// decoder apply identical updates, so both trees stay in lockstep without any
// table ever being transmitted.
//
// Nodes live in fixed arrays and carry an implicit number: numbers descend
// from the root (fgkTopNumber) as the tree grows, stay unique, and order
// nodes by nondecreasing weight. Equal-weight nodes form a contiguous block
// in number order, which makes the block leader a linear scan.
const (
	fgkNodeCount = 2*(mtfSize+1) - 1 // mtfSize symbol leaves plus NYT
	fgkTopNumber = fgkNodeCount - 1
)

type fgkCoder struct {
	weight [fgkNodeCount]int64
	parent [fgkNodeCount]int32
	left   [fgkNodeCount]int32
	right  [fgkNodeCount]int32
	symbol [fgkNodeCount]int32
	num    [fgkNodeCount]int32
	byNum  [fgkNodeCount]int32 // node index by implicit number
	leaf   [mtfSize]int32      // leaf index by symbol, lzNull while unseen

	nyt  int32
	root int32
	used int32
}

// newFGKCoder returns a coder whose tree is a single NYT leaf.
func newFGKCoder() *fgkCoder {
	h := &fgkCoder{}
	for i := range h.leaf {
		h.leaf[i] = lzNull
	}
	h.parent[0] = lzNull
	h.left[0] = lzNull
	h.right[0] = lzNull
	h.symbol[0] = lzNull
	h.num[0] = fgkTopNumber
	h.byNum[fgkTopNumber] = 0
	h.used = 1
	return h
}

// encodeSymbol emits the code for sym and updates the tree. A first
// occurrence is escaped through the NYT path followed by the raw 8-bit
// symbol.
func (h *fgkCoder) encodeSymbol(w *bitio.Writer, sym int) error {
	if q := h.leaf[sym]; q != lzNull {
		if err := h.writePath(w, q); err != nil {
			return err
		}
		h.update(q)
		return nil
	}
	if err := h.writePath(w, h.nyt); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(sym), 8); err != nil {
		return err
	}
	h.update(h.splitNYT(sym))
	return nil
}

// decodeSymbol walks the tree by stream bits until a leaf, resolves the NYT
// escape if needed, and applies the same update the encoder did. An escape
// for a symbol that already has a leaf is rejected as corrupt.
func (h *fgkCoder) decodeSymbol(r *bitio.Reader) (int, error) {
	n := h.root
	for h.left[n] != lzNull {
		right, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		if right {
			n = h.right[n]
		} else {
			n = h.left[n]
		}
	}
	if n == h.nyt {
		raw, err := r.ReadBits(8)
		if err != nil {
			return 0, err
		}
		sym := int(raw)
		if h.leaf[sym] != lzNull {
			// Only a first occurrence takes the escape; a repeat would
			// outgrow the fixed node arena.
			return 0, ErrCorrupt
		}
		h.update(h.splitNYT(sym))
		return sym, nil
	}
	sym := int(h.symbol[n])
	h.update(n)
	return sym, nil
}

// writePath emits the root-to-node code, left edges as 0 and right edges as 1.
// For the very first symbol the NYT is the root and the path is empty.
func (h *fgkCoder) writePath(w *bitio.Writer, node int32) error {
	var path [fgkNodeCount]bool
	depth := 0
	for n := node; n != h.root; n = h.parent[n] {
		path[depth] = h.right[h.parent[n]] == n
		depth++
	}
	for depth > 0 {
		depth--
		if err := w.WriteBool(path[depth]); err != nil {
			return err
		}
	}
	return nil
}

// splitNYT grows the tree for a first-seen symbol: the old NYT becomes an
// internal node with a fresh NYT on the left and the new symbol leaf on the
// right. Both children take the next two numbers below the old NYT, keeping
// the NYT the lowest-numbered node.
func (h *fgkCoder) splitNYT(sym int) int32 {
	z := h.nyt
	nytNew := h.used
	leafNew := h.used + 1
	h.used += 2

	h.left[z] = nytNew
	h.right[z] = leafNew
	h.symbol[z] = lzNull

	h.parent[nytNew] = z
	h.left[nytNew] = lzNull
	h.right[nytNew] = lzNull
	h.symbol[nytNew] = lzNull
	h.weight[nytNew] = 0
	h.num[nytNew] = h.num[z] - 2
	h.byNum[h.num[nytNew]] = nytNew

	h.parent[leafNew] = z
	h.left[leafNew] = lzNull
	h.right[leafNew] = lzNull
	h.symbol[leafNew] = int32(sym)
	h.weight[leafNew] = 0
	h.num[leafNew] = h.num[z] - 1
	h.byNum[h.num[leafNew]] = leafNew

	h.leaf[sym] = leafNew
	h.nyt = nytNew
	return leafNew
}

// update re-weights the path from q to the root. Before each increment the
// node is swapped with its block leader so equal-weight blocks keep the
// sibling property; swapping with the own parent is skipped because that pair
// is about to diverge by the increment anyway.
func (h *fgkCoder) update(q int32) {
	for q != lzNull {
		leader := h.blockLeader(q)
		if leader != q && leader != h.parent[q] {
			h.swapNodes(q, leader)
		}
		h.weight[q]++
		q = h.parent[q]
	}
}

// blockLeader returns the highest-numbered node with the same weight as q.
func (h *fgkCoder) blockLeader(q int32) int32 {
	leader := q
	w := h.weight[q]
	for j := h.num[q] + 1; j <= fgkTopNumber; j++ {
		n := h.byNum[j]
		if h.weight[n] != w {
			break
		}
		leader = n
	}
	return leader
}

// swapNodes exchanges the subtree positions and implicit numbers of a and b.
func (h *fgkCoder) swapNodes(a, b int32) {
	pa := h.parent[a]
	pb := h.parent[b]
	if pa == pb {
		h.left[pa], h.right[pa] = h.right[pa], h.left[pa]
	} else {
		if h.left[pa] == a {
			h.left[pa] = b
		} else {
			h.right[pa] = b
		}
		if h.left[pb] == b {
			h.left[pb] = a
		} else {
			h.right[pb] = a
		}
		h.parent[a] = pb
		h.parent[b] = pa
	}
	h.num[a], h.num[b] = h.num[b], h.num[a]
	h.byNum[h.num[a]] = a
	h.byNum[h.num[b]] = b
}
