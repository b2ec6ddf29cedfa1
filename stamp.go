// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzhf

package lzhf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// File stamp: the fixed 16-byte little-endian header in front of every stream.
//
//	offset 0   [4]byte  tag "LZU\x00"
//	offset 4   uint64   decompressed size
//	offset 12  uint32   window exponent (12..20)
const (
	stampLen        = 16
	stampSizeOffset = 4
	stampBitsOffset = 12
)

var stampTag = [4]byte{'L', 'Z', 'U', 0}

// fileStamp is the decoded form of the stream header.
type fileStamp struct {
	size       uint64
	windowBits uint32
}

// appendTo appends the 16-byte wire form of the stamp to dst.
func (st fileStamp) appendTo(dst []byte) []byte {
	var b [stampLen]byte
	copy(b[:4], stampTag[:])
	binary.LittleEndian.PutUint64(b[stampSizeOffset:], st.size)
	binary.LittleEndian.PutUint32(b[stampBitsOffset:], st.windowBits)
	return append(dst, b[:]...)
}

// writeStamp writes the 16-byte stamp to w.
func writeStamp(w io.Writer, st fileStamp) error {
	_, err := w.Write(st.appendTo(nil))
	return err
}

// parseStamp decodes and validates the stamp at the front of src.
func parseStamp(src []byte) (fileStamp, error) {
	var st fileStamp
	if len(src) < stampLen || !bytes.Equal(src[:4], stampTag[:]) {
		return st, ErrBadStamp
	}
	st.size = binary.LittleEndian.Uint64(src[stampSizeOffset:])
	st.windowBits = binary.LittleEndian.Uint32(src[stampBitsOffset:])
	if st.windowBits < MinWindowBits || st.windowBits > MaxWindowBits {
		return st, ErrWindowBits
	}
	return st, nil
}

// readStamp reads and validates the 16-byte stamp from r.
func readStamp(r io.Reader) (fileStamp, error) {
	var b [stampLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fileStamp{}, ErrBadStamp
		}
		return fileStamp{}, err
	}
	return parseStamp(b[:])
}
