// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package assetcheck runs read-only sanity checks on asset files before they are
patched: file name extensions, Yaz0-compressed U8 font archives, BRFNT font
headers, and rating tables.

Every check returns a Report and an error. The error is fatal and wraps an
asseterr class; Report.Warnings lists unusual but survivable findings:

	rep, err := assetcheck.CheckFontSZS(raw, assetcheck.FontOptions{})
	if err != nil {
	    return err
	}
	for _, w := range rep.Warnings {
	    log.Warn(w.String())
	}
*/
package assetcheck
