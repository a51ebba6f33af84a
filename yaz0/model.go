// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package yaz0

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mixcode/binarystruct"
)

// Binary layout and token limits.
const (
	// HeaderSize is the fixed Yaz0 header size in bytes.
	HeaderSize = 16
	// MaxDistance is the largest back-reference distance.
	MaxDistance = 4096
	// MinMatch is the shortest encodable back-reference.
	MinMatch = 3
	// MaxMatch is the longest encodable back-reference.
	MaxMatch = 0xFF + 18

	// maxExpansion bounds output bytes per body byte (3-byte token yielding MaxMatch bytes).
	maxExpansion = MaxMatch/3 + 1
)

// Magic is the 4-byte Yaz0 signature.
var Magic = [4]byte{'Y', 'a', 'z', '0'}

// Header is the parsed 16-byte Yaz0 header.
type Header struct {
	// Magic must equal "Yaz0".
	Magic [4]byte `json:"-" yaml:"-"`
	// UncompressedSize is the exact decoded length.
	UncompressedSize uint32 `json:"uncompressed_size" yaml:"uncompressed_size"`
	// Reserved is zero in every known writer; newer titles store alignment here.
	Reserved [8]byte `json:"-" yaml:"-"`
}

// ReadHeader validates magic and returns the parsed header. Magic is
// checked before anything else is read.
func ReadHeader(src []byte) (Header, error) {
	var h Header

	if len(src) < len(Magic) {
		return h, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(src))
	}
	if !bytes.Equal(src[:len(Magic)], Magic[:]) {
		return h, fmt.Errorf("%w: magic %q", ErrInvalidMagic, src[:len(Magic)])
	}
	if len(src) < HeaderSize {
		return h, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(src))
	}

	if _, err := binarystruct.Read(bytes.NewReader(src[:HeaderSize]), binarystruct.BigEndian, &h); err != nil {
		return h, fmt.Errorf("%w: read header: %w", ErrTruncated, err)
	}

	return h, nil
}

// IsCompressed reports whether src starts with the Yaz0 magic.
func IsCompressed(src []byte) bool {
	return len(src) >= len(Magic) && bytes.Equal(src[:len(Magic)], Magic[:])
}

// appendHeader appends a header for size to dst.
func appendHeader(dst []byte, size uint32) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)

	h := Header{Magic: Magic, UncompressedSize: size}
	if _, err := binarystruct.Write(&buf, binarystruct.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	return append(dst, buf.Bytes()...), nil
}

// Mode selects the compressor strategy.
type Mode uint8

// Compression modes.
const (
	// ModeOptimized searches the window for back-references.
	ModeOptimized Mode = iota
	// ModeLiteralOnly stores every byte as a literal; always valid, no match search.
	ModeLiteralOnly
)

// String returns the mode name used in flags and config files.
func (m Mode) String() string {
	switch m {
	case ModeOptimized:
		return "optimized"
	case ModeLiteralOnly:
		return "literal"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a mode name to Mode. Accepts "optimized"/"opt" and
// "literal"/"literal-only"/"none", case-insensitive.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "optimized", "opt":
		return ModeOptimized, nil
	case "literal", "literal-only", "literal_only", "none":
		return ModeLiteralOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeOptimized && m != ModeLiteralOnly {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
