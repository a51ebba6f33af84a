// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/mixcode/binarystruct"
)

// Bytes serializes archive: header, node table, string table, payloads.
// Gaps between payloads are zero-filled.
func (a *Archive) Bytes() ([]byte, error) {
	if a == nil || len(a.nodes) == 0 {
		return nil, fmt.Errorf("%w: empty archive", ErrInvalidHeader)
	}

	out := make([]byte, a.size)

	var head bytes.Buffer
	head.Grow(int(a.header.DataOffset))
	if _, err := binarystruct.Write(&head, binarystruct.BigEndian, &a.header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	copy(out, head.Bytes())

	head.Reset()
	if _, err := binarystruct.Write(&head, binarystruct.BigEndian, &a.raw); err != nil {
		return nil, fmt.Errorf("write node table: %w", err)
	}

	tableStart := int(a.header.RootNodeOffset)
	tableEnd := tableStart + head.Len()
	copy(out[tableStart:], head.Bytes())
	copy(out[tableEnd:], a.strtab)
	copy(out[tableEnd+len(a.strtab):], a.pad)

	for i := range a.nodes {
		if a.nodes[i].IsDir || a.nodes[i].Size == 0 {
			continue
		}

		copy(out[a.nodes[i].Offset:], a.payloads[i])
	}

	return out, nil
}

// WriteTo writes serialized archive to w.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	data, err := a.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	return int64(n), err
}

// relayout recomputes payload offsets in original relative order, keeping
// each non-empty payload aligned and preserving gaps that are not alignment
// padding. Offsets of an unmodified well-formed archive do not change.
func (a *Archive) relayout(sizes map[int]uint32) error {
	order := make([]int, 0, len(a.nodes))
	for i := range a.nodes {
		if !a.nodes[i].IsDir {
			order = append(order, i)
		}
	}

	sort.SliceStable(order, func(x, y int) bool {
		nx, ny := &a.nodes[order[x]], &a.nodes[order[y]]
		if nx.Offset != ny.Offset {
			return nx.Offset < ny.Offset
		}

		return nx.Index < ny.Index
	})

	dataOffset := uint64(a.header.DataOffset)
	cursor := dataOffset
	prevOrigEnd := dataOffset

	for _, i := range order {
		n := &a.nodes[i]
		origOff := uint64(n.Offset)
		origSize := uint64(n.Size)

		newSize := origSize
		if s, ok := sizes[i]; ok {
			newSize = uint64(s)
		}

		if newSize == 0 {
			n.Offset = uint32(min(cursor, math.MaxUint32)) //nolint:gosec // bounded
			n.Size = 0
			a.raw[i].DataOffset = n.Offset
			a.raw[i].Size = 0
			if origSize > 0 {
				prevOrigEnd = max(prevOrigEnd, origOff+origSize)
			}
			continue
		}

		var gap uint64
		if origSize > 0 {
			if slot := alignUp(prevOrigEnd, a.alignment); origOff > slot {
				gap = origOff - slot
			}
		}

		newOff := alignUp(alignUp(cursor, a.alignment)+gap, a.alignment)
		end := newOff + newSize
		if end > math.MaxUint32 {
			return fmt.Errorf("%w: entry %q ends at %d", ErrSizeOverflow, n.Path, end)
		}

		n.Offset = uint32(newOff) //nolint:gosec // checked above
		n.Size = uint32(newSize)  //nolint:gosec // checked above
		a.raw[i].DataOffset = n.Offset
		a.raw[i].Size = n.Size

		cursor = end
		if origSize > 0 {
			prevOrigEnd = max(prevOrigEnd, origOff+origSize)
		}
	}

	size := max(cursor, dataOffset)
	if a.tailAlign {
		size = alignUp(size, a.alignment)
	}
	if size > math.MaxUint32 {
		return fmt.Errorf("%w: archive size %d", ErrSizeOverflow, size)
	}

	a.size = uint32(size) //nolint:gosec // checked above
	return nil
}
