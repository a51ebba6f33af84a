// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"encoding/binary"
	"testing"
)

// manualNode describes one node for buildU8.
type manualNode struct {
	name     string
	data     []byte
	children []manualNode
	dir      bool
}

// flatNode is one manualNode placed in table order.
type flatNode struct {
	node   manualNode
	parent int
	end    int
}

// flattenNodes returns nodes in table order with parent and subtree end links.
func flattenNodes(nodes []manualNode, parent int, out []flatNode) []flatNode {
	for _, n := range nodes {
		idx := len(out)
		out = append(out, flatNode{node: n, parent: parent})
		if n.dir {
			out = flattenNodes(n.children, idx, out)
			out[idx].end = len(out)
		}
	}

	return out
}

// buildU8 assembles a well-formed U8 archive with payloads aligned to align
// and the total size padded to align.
func buildU8(t testing.TB, align uint32, nodes []manualNode) []byte {
	t.Helper()

	flat := flattenNodes(nodes, 0, []flatNode{{node: manualNode{dir: true}}})
	flat[0].end = len(flat)

	strtab := []byte{0}
	nameOffsets := make([]uint32, len(flat))
	for i := 1; i < len(flat); i++ {
		nameOffsets[i] = uint32(len(strtab))
		strtab = append(strtab, flat[i].node.name...)
		strtab = append(strtab, 0)
	}

	tableEnd := uint64(headerSize + nodeSize*len(flat))
	stringsEnd := tableEnd + uint64(len(strtab))
	dataOffset := alignUp(stringsEnd, align)

	offsets := make([]uint64, len(flat))
	cursor := dataOffset
	for i := range flat {
		if flat[i].node.dir {
			continue
		}

		if len(flat[i].node.data) == 0 {
			offsets[i] = cursor
			continue
		}

		cursor = alignUp(cursor, align)
		offsets[i] = cursor
		cursor += uint64(len(flat[i].node.data))
	}

	out := make([]byte, alignUp(cursor, align))
	be := binary.BigEndian
	be.PutUint32(out[0:], Magic)
	be.PutUint32(out[4:], headerSize)
	be.PutUint32(out[8:], uint32(stringsEnd-headerSize))
	be.PutUint32(out[12:], uint32(dataOffset))

	for i, f := range flat {
		at := headerSize + nodeSize*i
		if f.node.dir {
			be.PutUint32(out[at:], nodeTypeDir<<24|nameOffsets[i])
			be.PutUint32(out[at+4:], uint32(f.parent))
			be.PutUint32(out[at+8:], uint32(f.end))
			continue
		}

		be.PutUint32(out[at:], nameOffsets[i])
		be.PutUint32(out[at+4:], uint32(offsets[i]))
		be.PutUint32(out[at+8:], uint32(len(f.node.data)))
		copy(out[offsets[i]:], f.node.data)
	}

	copy(out[tableEnd:], strtab)
	return out
}

// putNodeWord overwrites word w (0..2) of node i in a built archive.
func putNodeWord(data []byte, i int, w int, v uint32) {
	binary.BigEndian.PutUint32(data[headerSize+nodeSize*i+4*w:], v)
}

// mustParse parses data or fails the test.
func mustParse(t testing.TB, data []byte) *Archive {
	t.Helper()

	a, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	return a
}

// fileNode returns a manual file node.
func fileNode(name string, data []byte) manualNode {
	return manualNode{name: name, data: data}
}

// dirNode returns a manual directory node.
func dirNode(name string, children ...manualNode) manualNode {
	return manualNode{name: name, dir: true, children: children}
}

// repeatByte returns n copies of b.
func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}
