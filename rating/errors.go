// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package rating

import "github.com/woozymasta/wiiasset/asseterr"

// Sentinel errors for rating table operations. Use errors.Is in callers.
var (
	// ErrLength means input length differs from 12 + count*16.
	ErrLength = asseterr.Validation("rating table length mismatch")
	// ErrIndexOutOfRange means a record index is outside [0, Len()).
	ErrIndexOutOfRange = asseterr.Validation("rating record index out of range")
	// ErrRecordNotFound means no record carries the requested profile id.
	ErrRecordNotFound = asseterr.NotFound("rating record not found")
	// ErrSizeOverflow means the record count does not fit a uint32.
	ErrSizeOverflow = asseterr.Format("rating table exceeds uint32 record count")
)
