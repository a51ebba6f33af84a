// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetpatch

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/woozymasta/wiiasset/assetcheck"
	"github.com/woozymasta/wiiasset/u8"
	"github.com/woozymasta/wiiasset/yaz0"
)

// PatchFont replaces one entry of a Yaz0-compressed U8 font archive.
// An empty entry selects the first file matching opts.Font.ExpectedEntry.
// BRFNT payloads are checked before replacement; their warnings join the report.
func PatchFont(src []byte, entry string, payload []byte, opts Options) (*Result, error) {
	opts.applyDefaults()
	started := time.Now()
	log := opts.Logger.WithFields(logrus.Fields{
		"flow":  "font",
		"entry": entry,
		"mode":  opts.Mode.String(),
	})

	font, rep, err := assetcheck.OpenFontSZS(src, opts.Font)
	if err != nil {
		return nil, fmt.Errorf("check input: %w", err)
	}
	log.WithFields(logrus.Fields{
		"compressed":   len(src),
		"decompressed": len(font.Raw),
		"nodes":        font.Archive.Len(),
		"warnings":     len(rep.Warnings),
	}).Debug("input decoded")

	node, err := resolveFontEntry(font, entry)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(pathExt(node.Name), ".brfnt") {
		fontRep, err := assetcheck.CheckBRFNT(payload)
		if err != nil {
			return nil, fmt.Errorf("check payload: %w", err)
		}
		rep.Warnings = append(rep.Warnings, fontRep.Warnings...)
	}

	patched, err := font.Archive.Replace(node.Path, payload)
	if err != nil {
		return nil, err
	}

	container, err := patched.Bytes()
	if err != nil {
		return nil, err
	}

	replaced, _ := patched.Find(node.Path)
	log.WithFields(logrus.Fields{
		"path":        replaced.Path,
		"size_before": node.Size,
		"size_after":  replaced.Size,
		"archive":     len(container),
	}).Debug("entry replaced")

	out, err := yaz0.Compress(container, opts.Mode)
	if err != nil {
		return nil, err
	}
	log.WithField("compressed", len(out)).Debug("output compressed")

	if opts.Verify {
		if err := verifyFont(out, container, replaced.Path, payload); err != nil {
			return nil, err
		}
		log.Debug("output verified")
	}

	return &Result{
		Output:        out,
		Report:        rep,
		Entry:         replaced,
		InputDigest:   sum(src),
		OutputDigest:  sum(out),
		ContainerSize: len(container),
		Duration:      time.Since(started),
	}, nil
}

// resolveFontEntry finds the target node by path, then by base name.
func resolveFontEntry(font *assetcheck.FontArchive, entry string) (u8.Node, error) {
	if strings.TrimSpace(entry) == "" {
		if !font.HasEntry {
			return u8.Node{}, ErrNoFontEntry
		}

		return font.Entry, nil
	}

	if node, ok := font.Archive.Find(entry); ok {
		if node.IsDir {
			return u8.Node{}, fmt.Errorf("%w: %s", u8.ErrNotAFile, entry)
		}

		return node, nil
	}

	if node, ok := font.Archive.FindByName(entry); ok {
		return node, nil
	}

	return u8.Node{}, fmt.Errorf("%w: %s", u8.ErrEntryNotFound, entry)
}

// verifyFont decodes out and compares it with the serialized archive.
func verifyFont(out []byte, container []byte, path string, payload []byte) error {
	back, err := yaz0.Decompress(out)
	if err != nil {
		return fmt.Errorf("%w: decompress: %w", ErrVerifyMismatch, err)
	}

	if !bytes.Equal(back, container) {
		return fmt.Errorf("%w: decompressed %d bytes differ from archive of %d bytes", ErrVerifyMismatch, len(back), len(container))
	}

	a, err := u8.Parse(back)
	if err != nil {
		return fmt.Errorf("%w: reparse: %w", ErrVerifyMismatch, err)
	}

	got, err := a.ReadEntry(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerifyMismatch, err)
	}

	if !bytes.Equal(got, payload) {
		return fmt.Errorf("%w: entry %s payload differs", ErrVerifyMismatch, path)
	}

	return nil
}

// pathExt returns extension of the last path segment including the dot.
func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}

	return ""
}
