// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

// Internal binary layout and format limits.
const (
	headerSize = 32 // fixed U8 header size in bytes
	nodeSize   = 12 // node table record size in bytes

	nodeTypeFile = 0x00
	nodeTypeDir  = 0x01
)

// Magic is the U8 signature stored big-endian at offset 0.
const Magic uint32 = 0x55AA382D

// DefaultAlignment is payload alignment used by Nintendo tooling.
const DefaultAlignment = 32

// rawHeader is the on-disk 32-byte header, big-endian.
type rawHeader struct {
	Magic          uint32
	RootNodeOffset uint32
	HeaderSize     uint32
	DataOffset     uint32
	Reserved       [16]byte
}

// rawNode is one on-disk 12-byte node, big-endian.
type rawNode struct {
	// TypeName holds node type in the top byte and name offset in the low 24 bits.
	TypeName uint32
	// DataOffset is payload offset for files, parent index for directories.
	DataOffset uint32
	// Size is payload size for files, subtree end index for directories.
	Size uint32
}

// isDir reports whether node type byte marks a directory.
func (n rawNode) isDir() bool {
	return n.TypeName>>24 == nodeTypeDir
}

// nameOffset returns offset into the string table.
func (n rawNode) nameOffset() uint32 {
	return n.TypeName & 0x00FFFFFF
}

// Header is the public view of the U8 header.
type Header struct {
	// RootNodeOffset is absolute offset of the node table.
	RootNodeOffset uint32 `json:"root_node_offset" yaml:"root_node_offset"`
	// HeaderSize is byte size of node table plus string table.
	HeaderSize uint32 `json:"header_size" yaml:"header_size"`
	// DataOffset is absolute offset of the payload section.
	DataOffset uint32 `json:"data_offset" yaml:"data_offset"`
}

// Node describes one parsed U8 node.
type Node struct {
	// Name is the node name from the string table.
	Name string `json:"name" yaml:"name"`
	// Path is the normalized slash-separated path from root; empty for root.
	Path string `json:"path" yaml:"path"`
	// Index is position in the node table; root is 0.
	Index int `json:"index" yaml:"index"`
	// Parent is the enclosing directory index; -1 for root.
	Parent int `json:"parent" yaml:"parent"`
	// End is one past the last node of a directory subtree; zero for files.
	End int `json:"end,omitempty" yaml:"end,omitempty"`
	// NameOffset is offset of Name in the string table.
	NameOffset uint32 `json:"name_offset" yaml:"name_offset"`
	// Offset is absolute payload offset for files.
	Offset uint32 `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Size is payload size for files.
	Size uint32 `json:"size,omitempty" yaml:"size,omitempty"`
	// IsDir reports whether node is a directory.
	IsDir bool `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
}

// EditResult contains Editor commit statistics.
type EditResult struct {
	// Replaced lists replaced file nodes with their new offsets and sizes.
	Replaced []Node `json:"replaced" yaml:"replaced"`
	// SizeBefore is serialized archive size before commit.
	SizeBefore uint32 `json:"size_before" yaml:"size_before"`
	// SizeAfter is serialized archive size after commit.
	SizeAfter uint32 `json:"size_after" yaml:"size_after"`
}

// Archive is a parsed U8 archive. Payloads of untouched entries reference
// the buffer passed to Parse, which must not be modified while in use.
type Archive struct {
	header    rawHeader
	raw       []rawNode
	nodes     []Node
	payloads  [][]byte
	strtab    []byte
	pad       []byte
	alignment uint32
	size      uint32
	tailAlign bool
}

// Header returns parsed header fields.
func (a *Archive) Header() Header {
	return Header{
		RootNodeOffset: a.header.RootNodeOffset,
		HeaderSize:     a.header.HeaderSize,
		DataOffset:     a.header.DataOffset,
	}
}

// Alignment returns payload alignment detected at parse time.
func (a *Archive) Alignment() uint32 {
	return a.alignment
}

// Size returns serialized archive size in bytes.
func (a *Archive) Size() uint32 {
	return a.size
}

// Len returns node count including root.
func (a *Archive) Len() int {
	return len(a.nodes)
}

// clone returns a copy sharing immutable payload buffers.
func (a *Archive) clone() *Archive {
	c := *a
	c.raw = append([]rawNode(nil), a.raw...)
	c.nodes = append([]Node(nil), a.nodes...)
	c.payloads = append([][]byte(nil), a.payloads...)

	return &c
}

// alignUp rounds v up to a multiple of align (power of two).
func alignUp(v uint64, align uint32) uint64 {
	if align <= 1 {
		return v
	}

	mask := uint64(align) - 1
	return (v + mask) &^ mask
}
