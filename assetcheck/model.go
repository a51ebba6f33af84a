// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import "github.com/woozymasta/wiiasset/asseterr"

const (
	// DefaultMaxDeclaredSize is the default upper bound for Yaz0 declared size.
	DefaultMaxDeclaredSize = 64 << 20
	// DefaultMinArchiveSize is the decompressed size below which a font
	// archive is reported as unusually small.
	DefaultMinArchiveSize = 1 << 10
	// DefaultExpectedEntry is the default glob for the font entry.
	DefaultExpectedEntry = "*.brfnt"
)

// Warning codes.
const (
	CodeMissingEntry     = "missing_entry"
	CodeSmallArchive     = "small_archive"
	CodeEmptyArchive     = "empty_archive"
	CodeShortHeader      = "short_header"
	CodeByteOrder        = "byte_order"
	CodeFileSizeMismatch = "file_size_mismatch"
	CodeSectionCount     = "section_count"
	CodeVersionRange     = "version_range"
)

// BRFNT section count bounds seen in shipped fonts.
const (
	minBRFNTSections = 3
	maxBRFNTSections = 32
)

// FontOptions controls CheckFontSZS limits.
type FontOptions struct {
	// ExpectedEntry is a glob for the entry that must exist (default: "*.brfnt").
	ExpectedEntry string `json:"expected_entry,omitempty" yaml:"expected_entry,omitempty"`
	// MaxDeclaredSize rejects Yaz0 streams declaring more bytes (default: 64 MiB).
	MaxDeclaredSize uint64 `json:"max_declared_size,omitempty" yaml:"max_declared_size,omitempty"`
	// MinArchiveSize warns below this decompressed size (default: 1 KiB).
	MinArchiveSize uint64 `json:"min_archive_size,omitempty" yaml:"min_archive_size,omitempty"`
}

// applyDefaults fills zero-valued options.
func (o *FontOptions) applyDefaults() {
	if o.ExpectedEntry == "" {
		o.ExpectedEntry = DefaultExpectedEntry
	}

	if o.MaxDeclaredSize == 0 {
		o.MaxDeclaredSize = DefaultMaxDeclaredSize
	}

	if o.MinArchiveSize == 0 {
		o.MinArchiveSize = DefaultMinArchiveSize
	}
}

// Report collects non-fatal findings of one check.
type Report struct {
	// Warnings lists findings in discovery order.
	Warnings asseterr.Warnings `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// OK reports whether no warnings were raised.
func (r Report) OK() bool {
	return len(r.Warnings) == 0
}
