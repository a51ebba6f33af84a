// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import (
	"fmt"

	"github.com/woozymasta/pathrules"
	"github.com/woozymasta/wiiasset/u8"
	"github.com/woozymasta/wiiasset/yaz0"
)

// FontArchive is a decoded font container produced by OpenFontSZS.
type FontArchive struct {
	// Archive is the parsed U8 tree.
	Archive *u8.Archive
	// Raw is the decompressed U8 bytes backing Archive.
	Raw []byte
	// Header is the Yaz0 header of the input.
	Header yaz0.Header
	// Entry is the first file matching FontOptions.ExpectedEntry, if any.
	Entry u8.Node
	// HasEntry reports whether Entry was found.
	HasEntry bool
}

// CheckFontSZS validates a Yaz0-compressed U8 font archive.
func CheckFontSZS(data []byte, opts FontOptions) (Report, error) {
	_, rep, err := OpenFontSZS(data, opts)
	return rep, err
}

// OpenFontSZS validates and decodes a Yaz0-compressed U8 font archive.
// Fatal errors: Yaz0 magic, declared size outside (0, MaxDeclaredSize],
// decompression, U8 magic and structure.
func OpenFontSZS(data []byte, opts FontOptions) (*FontArchive, Report, error) {
	opts.applyDefaults()

	var rep Report
	h, err := yaz0.ReadHeader(data)
	if err != nil {
		return nil, rep, err
	}

	if h.UncompressedSize == 0 || uint64(h.UncompressedSize) > opts.MaxDeclaredSize {
		return nil, rep, fmt.Errorf("%w: declared %d bytes, limit %d", ErrDeclaredSize, h.UncompressedSize, opts.MaxDeclaredSize)
	}

	raw, err := yaz0.Decompress(data)
	if err != nil {
		return nil, rep, err
	}

	a, err := u8.Parse(raw)
	if err != nil {
		return nil, rep, err
	}

	font := &FontArchive{Archive: a, Raw: raw, Header: h}

	if uint64(len(raw)) < opts.MinArchiveSize {
		rep.Warnings.Add(CodeSmallArchive, "archive is %d bytes, expected at least %d", len(raw), opts.MinArchiveSize)
	}

	files := a.Files()
	if len(files) == 0 {
		rep.Warnings.Add(CodeEmptyArchive, "archive has no files")
	}

	matches, err := a.Select([]pathrules.Rule{{Action: pathrules.ActionInclude, Pattern: opts.ExpectedEntry}})
	if err != nil {
		return nil, rep, err
	}

	if len(matches) == 0 {
		rep.Warnings.Add(CodeMissingEntry, "no %s entry", opts.ExpectedEntry)
	} else {
		font.Entry = matches[0]
		font.HasEntry = true
	}

	return font, rep, nil
}
