// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import (
	"bytes"
	"fmt"

	"github.com/mixcode/binarystruct"
)

// brfntHeaderSize is the NW4R binary file header size.
const brfntHeaderSize = 16

// brfntBOM is the byte-order mark of big-endian Wii files.
const brfntBOM = 0xFEFF

// brfntHeader is the NW4R binary file header, big-endian.
type brfntHeader struct {
	Magic        [4]byte
	BOM          uint16
	Version      uint16
	FileSize     uint32
	HeaderSize   uint16
	SectionCount uint16
}

// CheckBRFNT checks a BRFNT font header. Empty input and a missing "RFNT"
// signature are fatal; other oddities are reported as warnings.
func CheckBRFNT(data []byte) (Report, error) {
	var rep Report
	if len(data) == 0 {
		return rep, fmt.Errorf("%w: BRFNT", ErrEmptyFile)
	}

	if len(data) < 4 || !bytes.Equal(data[:4], []byte("RFNT")) {
		return rep, fmt.Errorf("%w: got %q", ErrBRFNTSignature, data[:min(len(data), 4)])
	}

	if len(data) < brfntHeaderSize {
		rep.Warnings.Add(CodeShortHeader, "header is %d bytes, expected %d", len(data), brfntHeaderSize)
		return rep, nil
	}

	var h brfntHeader
	if _, err := binarystruct.Read(bytes.NewReader(data[:brfntHeaderSize]), binarystruct.BigEndian, &h); err != nil {
		rep.Warnings.Add(CodeShortHeader, "read header: %v", err)
		return rep, nil
	}

	if h.BOM != brfntBOM {
		rep.Warnings.Add(CodeByteOrder, "byte-order mark %#04x, expected %#04x", h.BOM, brfntBOM)
	}

	if uint64(h.FileSize) != uint64(len(data)) {
		rep.Warnings.Add(CodeFileSizeMismatch, "header file size %d, actual %d", h.FileSize, len(data))
	}

	if h.SectionCount < minBRFNTSections || h.SectionCount > maxBRFNTSections {
		rep.Warnings.Add(CodeSectionCount, "section count %d outside [%d, %d]", h.SectionCount, minBRFNTSections, maxBRFNTSections)
	}

	return rep, nil
}
