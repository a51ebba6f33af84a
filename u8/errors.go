// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import "github.com/woozymasta/wiiasset/asseterr"

// Sentinel errors for U8 operations. Use errors.Is in callers.
var (
	// ErrInvalidMagic means the first four bytes are not 0x55AA382D.
	ErrInvalidMagic = asseterr.Format("invalid U8 magic")
	// ErrInvalidHeader means a header field points outside the archive.
	ErrInvalidHeader = asseterr.Format("invalid U8 header")
	// ErrInvalidNode means the node table or string table is malformed.
	ErrInvalidNode = asseterr.Format("invalid U8 node")
	// ErrSizeOverflow means serialized archive would exceed uint32 offsets.
	ErrSizeOverflow = asseterr.Format("U8 archive exceeds 4 GiB offset limit")
	// ErrEntryNotFound means the entry is not found.
	ErrEntryNotFound = asseterr.NotFound("U8 entry not found")
	// ErrNotAFile means the path resolves to a directory.
	ErrNotAFile = asseterr.Validation("U8 entry is a directory")
	// ErrInvalidEntryPath means a path is empty after normalization.
	ErrInvalidEntryPath = asseterr.Validation("invalid U8 entry path")
	// ErrInvalidSelectRule means one or more select rules are invalid.
	ErrInvalidSelectRule = asseterr.Validation("invalid U8 select rules")
)
