// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package yaz0

import "github.com/woozymasta/wiiasset/asseterr"

// Sentinel errors for Yaz0 operations. Use errors.Is in callers.
// All of them except ErrUnknownMode are asseterr.ErrFormat errors.
var (
	// ErrInvalidMagic means the first four bytes are not "Yaz0".
	ErrInvalidMagic = asseterr.Format("invalid Yaz0 magic")
	// ErrTruncated means header or token stream ended before uncompressedSize bytes were produced.
	ErrTruncated = asseterr.Format("truncated Yaz0 stream")
	// ErrInvalidBackref means a back-reference points before the start of output.
	ErrInvalidBackref = asseterr.Format("Yaz0 back-reference distance exceeds output position")
	// ErrSizeField means uncompressedSize is inconsistent with the token stream.
	ErrSizeField = asseterr.Format("inconsistent Yaz0 uncompressedSize")
	// ErrSizeOverflow means input exceeds the uint32 size field of the header.
	ErrSizeOverflow = asseterr.Format("input exceeds Yaz0 uint32 size limit")
	// ErrUnknownMode means compression mode is not supported.
	ErrUnknownMode = asseterr.Validation("unknown Yaz0 compression mode")
)
