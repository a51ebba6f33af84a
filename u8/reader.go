// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mixcode/binarystruct"
)

// dirFrame tracks one open directory while walking the node table.
type dirFrame struct {
	path  string
	index int
	end   int
}

// Parse reads and validates a U8 archive from raw (decompressed) bytes.
func Parse(data []byte) (*Archive, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: need %d header bytes, got %d", ErrInvalidHeader, headerSize, len(data))
	}

	a := &Archive{}
	if _, err := binarystruct.Read(bytes.NewReader(data[:headerSize]), binarystruct.BigEndian, &a.header); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrInvalidHeader, err)
	}
	if a.header.Magic != Magic {
		return nil, fmt.Errorf("%w: %#08x", ErrInvalidMagic, a.header.Magic)
	}

	size := uint64(len(data))
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, size)
	}

	rootOffset := uint64(a.header.RootNodeOffset)
	if rootOffset < headerSize || rootOffset+nodeSize > size {
		return nil, fmt.Errorf("%w: rootNodeOffset %d outside [%d, %d]", ErrInvalidHeader, rootOffset, headerSize, size-nodeSize)
	}

	count, err := readNodeCount(data, rootOffset)
	if err != nil {
		return nil, err
	}

	tableEnd := rootOffset + uint64(count)*nodeSize
	if tableEnd > size {
		return nil, fmt.Errorf("%w: node table of %d nodes ends at %d past archive size %d", ErrInvalidNode, count, tableEnd, size)
	}

	stringsEnd := rootOffset + uint64(a.header.HeaderSize)
	if stringsEnd < tableEnd || stringsEnd > size {
		return nil, fmt.Errorf("%w: headerSize %d inconsistent with %d nodes and archive size %d", ErrInvalidHeader, a.header.HeaderSize, count, size)
	}

	dataOffset := uint64(a.header.DataOffset)
	if dataOffset < stringsEnd || dataOffset > size {
		return nil, fmt.Errorf("%w: dataOffset %d outside [%d, %d]", ErrInvalidHeader, dataOffset, stringsEnd, size)
	}

	a.raw = make([]rawNode, count)
	if _, err := binarystruct.Read(bytes.NewReader(data[rootOffset:tableEnd]), binarystruct.BigEndian, &a.raw); err != nil {
		return nil, fmt.Errorf("%w: read node table: %w", ErrInvalidNode, err)
	}

	a.strtab = data[tableEnd:stringsEnd]
	a.pad = data[stringsEnd:dataOffset]
	a.size = uint32(size) //nolint:gosec // checked against MaxUint32 above

	if err := a.buildNodes(data); err != nil {
		return nil, err
	}

	a.alignment = a.detectAlignment()
	a.tailAlign = a.detectTailAlignment(size)

	return a, nil
}

// readNodeCount returns node count stored as root subtree end.
func readNodeCount(data []byte, rootOffset uint64) (uint32, error) {
	var root rawNode
	if _, err := binarystruct.Read(bytes.NewReader(data[rootOffset:rootOffset+nodeSize]), binarystruct.BigEndian, &root); err != nil {
		return 0, fmt.Errorf("%w: read root node: %w", ErrInvalidNode, err)
	}

	if !root.isDir() {
		return 0, fmt.Errorf("%w: root node type %#02x is not a directory", ErrInvalidNode, root.TypeName>>24)
	}
	if root.Size == 0 {
		return 0, fmt.Errorf("%w: root node count is zero", ErrInvalidNode)
	}

	return root.Size, nil
}

// buildNodes resolves names, paths, and tree links and validates ranges.
func (a *Archive) buildNodes(data []byte) error {
	count := len(a.raw)
	a.nodes = make([]Node, count)
	a.payloads = make([][]byte, count)

	rootName, err := a.lookupName(0, a.raw[0].nameOffset())
	if err != nil {
		return err
	}

	a.nodes[0] = Node{
		Index:      0,
		IsDir:      true,
		Name:       rootName,
		Parent:     -1,
		End:        count,
		NameOffset: a.raw[0].nameOffset(),
	}

	stack := make([]dirFrame, 1, 8)
	stack[0] = dirFrame{index: 0, end: count}

	for i := 1; i < count; i++ {
		for i >= stack[len(stack)-1].end {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		raw := a.raw[i]
		kind := raw.TypeName >> 24
		if kind != nodeTypeFile && kind != nodeTypeDir {
			return fmt.Errorf("%w: node %d has unknown type %#02x", ErrInvalidNode, i, kind)
		}

		name, err := a.lookupName(i, raw.nameOffset())
		if err != nil {
			return err
		}

		if !validNodeName(name, raw.isDir()) {
			return fmt.Errorf("%w: node %d has invalid name %q under %q", ErrInvalidNode, i, name, parent.path)
		}

		node := Node{
			Index:      i,
			Name:       name,
			Path:       joinNodePath(parent.path, name),
			Parent:     parent.index,
			NameOffset: raw.nameOffset(),
		}

		if raw.isDir() {
			if int(raw.DataOffset) != parent.index {
				return fmt.Errorf("%w: directory %q parent index %d, want %d", ErrInvalidNode, node.Path, raw.DataOffset, parent.index)
			}

			end := int(raw.Size)
			if end <= i || end > parent.end {
				return fmt.Errorf("%w: directory %q subtree end %d outside (%d, %d]", ErrInvalidNode, node.Path, end, i, parent.end)
			}

			node.IsDir = true
			node.End = end
			stack = append(stack, dirFrame{path: node.Path, index: i, end: end})
			a.nodes[i] = node
			continue
		}

		payloadEnd := uint64(raw.DataOffset) + uint64(raw.Size)
		if payloadEnd > uint64(len(data)) {
			return fmt.Errorf("%w: file %q payload [%d, %d) outside archive size %d", ErrInvalidNode, node.Path, raw.DataOffset, payloadEnd, len(data))
		}

		node.Offset = raw.DataOffset
		node.Size = raw.Size
		a.nodes[i] = node
		a.payloads[i] = data[raw.DataOffset:payloadEnd]
	}

	return nil
}

// lookupName reads a NUL-terminated name from the string table.
func (a *Archive) lookupName(index int, offset uint32) (string, error) {
	if uint64(offset) >= uint64(len(a.strtab)) {
		if index == 0 && len(a.strtab) == 0 && offset == 0 {
			return "", nil
		}

		return "", fmt.Errorf("%w: node %d name offset %d outside string table of %d bytes", ErrInvalidNode, index, offset, len(a.strtab))
	}

	rest := a.strtab[offset:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: node %d name at offset %d is not NUL-terminated", ErrInvalidNode, index, offset)
	}

	return string(rest[:end]), nil
}

// detectAlignment returns the largest power of two up to DefaultAlignment
// dividing every non-empty payload offset.
func (a *Archive) detectAlignment() uint32 {
	align := uint32(DefaultAlignment)
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.IsDir || n.Size == 0 {
			continue
		}

		for align > 1 && n.Offset%align != 0 {
			align >>= 1
		}
	}

	return align
}

// detectTailAlignment reports whether archive carries padding after its last payload.
func (a *Archive) detectTailAlignment(size uint64) bool {
	maxEnd := uint64(a.header.DataOffset)
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.IsDir {
			continue
		}

		if end := uint64(n.Offset) + uint64(n.Size); end > maxEnd {
			maxEnd = end
		}
	}

	return size > maxEnd && size%uint64(a.alignment) == 0
}
