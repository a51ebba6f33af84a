// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package rating

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mixcode/binarystruct"
)

// ReadHeader decodes the table header without checking total length.
func ReadHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: need %d header bytes, got %d", ErrLength, HeaderSize, len(data))
	}

	if _, err := binarystruct.Read(bytes.NewReader(data[:HeaderSize]), binarystruct.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("%w: read header: %w", ErrLength, err)
	}

	return h, nil
}

// Parse decodes a rating table. The length is checked against the header
// count before any record is read.
func Parse(data []byte) (*Table, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	if want := ExpectedSize(h.Count); uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: %d records need %d bytes, got %d", ErrLength, h.Count, want, len(data))
	}

	t := &Table{
		header:  h,
		records: make([]Record, h.Count),
	}
	if h.Count == 0 {
		return t, nil
	}

	if _, err := binarystruct.Read(bytes.NewReader(data[HeaderSize:]), binarystruct.LittleEndian, &t.records); err != nil {
		return nil, fmt.Errorf("%w: read records: %w", ErrLength, err)
	}

	return t, nil
}

// New builds a table from header fields and records. Count is taken from records.
func New(magic [4]byte, version uint32, records []Record) (*Table, error) {
	if uint64(len(records)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d records", ErrSizeOverflow, len(records))
	}

	return &Table{
		header: Header{
			Magic:   magic,
			Version: version,
			Count:   uint32(len(records)), //nolint:gosec // checked above
		},
		records: append([]Record(nil), records...),
	}, nil
}

// Bytes serializes header and records in original order.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(ExpectedSize(t.header.Count)))

	if _, err := binarystruct.Write(&buf, binarystruct.LittleEndian, &t.header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if len(t.records) > 0 {
		if _, err := binarystruct.Write(&buf, binarystruct.LittleEndian, &t.records); err != nil {
			return nil, fmt.Errorf("write records: %w", err)
		}
	}

	return buf.Bytes(), nil
}
