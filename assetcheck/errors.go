// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import "github.com/woozymasta/wiiasset/asseterr"

// Sentinel errors for checks. Use errors.Is in callers.
var (
	// ErrFileName means a file name does not carry an allowed extension.
	ErrFileName = asseterr.Validation("file extension not allowed")
	// ErrDeclaredSize means the Yaz0 declared size is zero or above the limit.
	ErrDeclaredSize = asseterr.Validation("unreasonable declared size")
	// ErrEmptyFile means input has zero length.
	ErrEmptyFile = asseterr.Validation("empty file")
	// ErrBRFNTSignature means BRFNT data does not start with "RFNT".
	ErrBRFNTSignature = asseterr.Format("invalid BRFNT signature")
)
