// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
)

// streamBufSize is the bufio size for the file-oriented entry points.
const streamBufSize = 1 << 15

// Compress compresses src into a fresh buffer: a 16-byte stamp followed by
// the token bit stream. opts may be nil for defaults.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	bits := clampWindowBits(opts.WindowBits)

	var buf bytes.Buffer
	buf.Grow(stampLen + len(src)/2 + 64)
	if err := writeStamp(&buf, fileStamp{windowBits: uint32(bits)}); err != nil {
		return nil, err
	}
	n, err := encodeBody(&buf, bytes.NewReader(src), bits)
	if err != nil {
		return nil, err
	}
	out := buf.Bytes()
	binary.LittleEndian.PutUint64(out[stampSizeOffset:], uint64(n))
	return out, nil
}

// CompressTo streams r through the compressor into w. The stamp goes out
// first with a zero size and is patched once the input length is known, hence
// the io.WriteSeeker. Returns the total number of bytes written to w.
func CompressTo(w io.WriteSeeker, r io.Reader, opts *CompressOptions) (int64, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	bits := clampWindowBits(opts.WindowBits)

	bw := bufio.NewWriterSize(w, streamBufSize)
	st := fileStamp{windowBits: uint32(bits)}
	if err := writeStamp(bw, st); err != nil {
		return 0, err
	}
	n, err := encodeBody(bw, bufio.NewReaderSize(r, streamBufSize), bits)
	if err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	st.size = uint64(n)
	if err := writeStamp(w, st); err != nil {
		return 0, err
	}
	return w.Seek(0, io.SeekEnd)
}

// compressor couples the match finder with the token writers for one run.
type compressor struct {
	swd  *slidingWindow
	bw   *bitio.Writer
	mtf  *mtfTable
	huff *fgkCoder
}

// encodeBody runs the token loop: find the best match for the look-ahead
// head, emit one token, slide by the bytes the token covered. Returns the
// number of input bytes consumed.
func encodeBody(dst io.Writer, src io.Reader, bits int) (int64, error) {
	swd := acquireSlidingWindow(bits)
	defer releaseSlidingWindow(swd)

	if err := swd.fill(src); err != nil {
		return 0, err
	}

	c := &compressor{
		swd:  swd,
		bw:   bitio.NewWriter(dst),
		mtf:  newMTFTable(),
		huff: newFGKCoder(),
	}

	for swd.bufCnt > 0 {
		length, err := c.emitToken(swd.findBestMatch())
		if err != nil {
			return 0, err
		}
		if err := swd.slide(length, src); err != nil {
			return 0, err
		}
	}

	if err := c.bw.Close(); err != nil {
		return 0, err
	}
	return swd.totalIn, nil
}

// emitToken writes one token for the candidate and returns how many input
// bytes it covered. Prefixes: 1 = match with a length code, 01 = match of
// exactly minMatchLen, 00 = literal coded as an MTF rank through the adaptive
// Huffman tree.
func (c *compressor) emitToken(m matchCandidate) (int, error) {
	switch {
	case m.len > minMatchLen:
		if err := c.bw.WriteBool(true); err != nil {
			return 0, err
		}
		if err := writeMatchLength(c.bw, m.len); err != nil {
			return 0, err
		}
		if err := c.bw.WriteBits(uint64(m.pos), uint8(c.swd.winBits)); err != nil {
			return 0, err
		}
		return m.len, nil

	case m.len == minMatchLen:
		if err := c.bw.WriteBool(false); err != nil {
			return 0, err
		}
		if err := c.bw.WriteBool(true); err != nil {
			return 0, err
		}
		if err := c.bw.WriteBits(uint64(m.pos), uint8(c.swd.winBits)); err != nil {
			return 0, err
		}
		return m.len, nil

	default:
		if err := c.bw.WriteBool(false); err != nil {
			return 0, err
		}
		if err := c.bw.WriteBool(false); err != nil {
			return 0, err
		}
		rank := c.mtf.encode(c.swd.pat[c.swd.patCnt])
		if err := c.huff.encodeSymbol(c.bw, rank); err != nil {
			return 0, err
		}
		return 1, nil
	}
}
