// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// maxPrealloc caps how much Decompress pre-allocates on the stamp's say-so;
// anything larger grows as real tokens arrive, so a lying stamp cannot force
// a huge allocation up front.
const maxPrealloc = 32 << 20

// Decompress decodes a complete compressed stream (stamp plus tokens) and
// returns the original bytes. Bytes past the declared output size are
// ignored. opts may be nil for defaults.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	st, err := parseStamp(src)
	if err != nil {
		return nil, err
	}
	if opts.MaxOutputSize > 0 && st.size > uint64(opts.MaxOutputSize) {
		return nil, ErrTooLarge
	}

	var out bytes.Buffer
	out.Grow(int(min(st.size, maxPrealloc)))
	if _, err := decodeBody(&out, bytes.NewReader(src[stampLen:]), st); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressTo streams a compressed stream from r and writes the decoded
// bytes to w. Returns the number of bytes written. opts may be nil for
// defaults.
func DecompressTo(w io.Writer, r io.Reader, opts *DecompressOptions) (int64, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	br := bufio.NewReaderSize(r, streamBufSize)
	st, err := readStamp(br)
	if err != nil {
		return 0, err
	}
	if opts.MaxOutputSize > 0 && st.size > uint64(opts.MaxOutputSize) {
		return 0, ErrTooLarge
	}

	bw := bufio.NewWriterSize(w, streamBufSize)
	n, err := decodeBody(bw, br, st)
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// decoder mirrors the compressor state without the hash chains: the decoder
// never searches, it only replays window positions.
type decoder struct {
	br   *bitio.Reader
	mtf  *mtfTable
	huff *fgkCoder

	win     []byte
	pat     []byte // linear scratch for one token
	winMask int
	winCnt  int
}

// decodeBody reads tokens until the declared size is reached. Match bytes are
// materialized from the window into scratch before the window advances, so a
// match overlapping the slots it rewrites sees the pre-token content, the
// same content the encoder matched against.
func decodeBody(dst io.Writer, src io.Reader, st fileStamp) (int64, error) {
	winSize := 1 << st.windowBits
	patSize := winSize >> 1
	d := &decoder{
		br:      bitio.NewReader(src),
		mtf:     newMTFTable(),
		huff:    newFGKCoder(),
		win:     make([]byte, winSize),
		pat:     make([]byte, patSize),
		winMask: winSize - 1,
	}

	var written int64
	remaining := st.size
	for remaining > 0 {
		length, err := d.readToken(int(st.windowBits), patSize)
		if err != nil {
			return written, err
		}
		if uint64(length) > remaining {
			return written, ErrCorrupt
		}
		if _, err := dst.Write(d.pat[:length]); err != nil {
			return written, err
		}
		for i := 0; i < length; i++ {
			d.win[(d.winCnt+i)&d.winMask] = d.pat[i]
		}
		d.winCnt = (d.winCnt + length) & d.winMask
		remaining -= uint64(length)
		written += int64(length)
	}
	return written, nil
}

// readToken decodes one token into d.pat and returns its byte length.
func (d *decoder) readToken(posBits, patSize int) (int, error) {
	long, err := d.br.ReadBool()
	if err != nil {
		return 0, eofAs(err)
	}

	length := minMatchLen
	if long {
		length, err = readMatchLength(d.br)
		if err != nil {
			return 0, eofAs(err)
		}
		if length > patSize {
			return 0, ErrCorrupt
		}
	} else {
		exact, err := d.br.ReadBool()
		if err != nil {
			return 0, eofAs(err)
		}
		if !exact {
			rank, err := d.huff.decodeSymbol(d.br)
			if err != nil {
				return 0, eofAs(err)
			}
			d.pat[0] = d.mtf.decode(rank)
			return 1, nil
		}
	}

	posWord, err := d.br.ReadBits(uint8(posBits))
	if err != nil {
		return 0, eofAs(err)
	}
	pos := int(posWord)
	for i := 0; i < length; i++ {
		d.pat[i] = d.win[(pos+i)&d.winMask]
	}
	return length, nil
}

// eofAs maps io EOFs onto the stream sentinel; other errors pass through.
func eofAs(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEOF
	}
	return err
}
