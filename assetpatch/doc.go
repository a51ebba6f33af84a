// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package assetpatch chains the codecs into the two patch flows.

Font flow: validate the ".szs" input, decompress Yaz0, parse U8, replace one
entry, serialize U8, compress Yaz0:

	res, err := assetpatch.PatchFont(szs, "kart_kanji_font.brfnt", brfnt, assetpatch.Options{
	    Mode:   yaz0.ModeLiteralOnly,
	    Verify: true,
	})

Rating flow: validate, parse, apply caller edits, serialize:

	res, err := assetpatch.EditRatings(raw, func(t *rating.Table) error {
	    return t.Set(0, rating.Record{ProfileID: 1, VR: 5000, BR: 5000, Flags: 1})
	}, assetpatch.Options{})

Both flows are synchronous and work on byte slices only.
*/
package assetpatch
