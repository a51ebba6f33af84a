// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetpatch

import "github.com/woozymasta/wiiasset/asseterr"

// Sentinel errors for patch flows. Use errors.Is in callers.
var (
	// ErrVerifyMismatch means decoding the produced output did not reproduce
	// the serialized container.
	ErrVerifyMismatch = asseterr.Format("patched output failed verification")
	// ErrNoFontEntry means no entry was named and none matched the expected glob.
	ErrNoFontEntry = asseterr.NotFound("no font entry to replace")
)
