// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"path"
	"strings"
)

// NormalizePath converts an archive path to normalized slash-separated form.
// It trims spaces, accepts both "/" and "\", removes leading "./" and "/",
// and cleans "." segments, so a top-level directory named "." collapses.
func NormalizePath(raw string) string {
	raw = normalizePathForMatching(raw)
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePathForMatching normalizes user/input paths for matcher use.
func normalizePathForMatching(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, `\`, `/`)
	p = strings.TrimPrefix(p, "./")
	return p
}

// joinNodePath appends node name to parent path.
func joinNodePath(parent string, name string) string {
	if parent == "" {
		return NormalizePath(name)
	}

	return NormalizePath(parent + "/" + name)
}

// validNodeName reports whether name is a single path segment that resolves
// to its own entry. "." is accepted for directories only.
func validNodeName(name string, isDir bool) bool {
	switch name {
	case "", "..":
		return false
	case ".":
		return isDir
	}

	return !strings.ContainsAny(name, `/\`)
}

// baseName returns last path segment.
func baseName(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}

	return p
}
