// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package rating

// Binary layout.
const (
	// HeaderSize is the fixed table header size in bytes.
	HeaderSize = 12
	// RecordSize is the fixed record size in bytes.
	RecordSize = 16
)

// MaxKnownVersion is the highest table version seen in shipped files.
const MaxKnownVersion = 1

// FlagActive marks a record as in use.
const FlagActive = 1

// Header is the on-disk table header, little-endian.
type Header struct {
	// Magic is preserved verbatim and never interpreted.
	Magic [4]byte `json:"magic" yaml:"magic"`
	// Version is the table format version.
	Version uint32 `json:"version" yaml:"version"`
	// Count is the number of records following the header.
	Count uint32 `json:"count" yaml:"count"`
}

// Record is one 16-byte player rating entry.
type Record struct {
	// ProfileID identifies the player profile; zero for empty slots.
	ProfileID uint32 `json:"profile_id" yaml:"profile_id"`
	// VR is the versus rating.
	VR float32 `json:"vr" yaml:"vr"`
	// BR is the battle rating.
	BR float32 `json:"br" yaml:"br"`
	// Flags holds record bits; bit 0 marks the slot as active.
	Flags uint32 `json:"flags" yaml:"flags"`
}

// Active reports whether record holds a profile and carries the active bit.
// The codec never enforces this policy.
func (r Record) Active() bool {
	return r.ProfileID > 0 && r.Flags&FlagActive != 0
}

// Table is a parsed rating table with a fixed record count.
type Table struct {
	header  Header
	records []Record
}

// ExpectedSize returns the exact file length for count records.
func ExpectedSize(count uint32) uint64 {
	return HeaderSize + uint64(count)*RecordSize
}
