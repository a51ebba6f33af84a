// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"fmt"
	"strings"
)

// findEntryIndex resolves one node by normalized path. Exact match wins,
// otherwise the first case-insensitive match is used.
func (a *Archive) findEntryIndex(name string) (int, bool) {
	lookupName := NormalizePath(name)
	fallback := -1
	for i := range a.nodes {
		if a.nodes[i].Path == lookupName {
			return i, true
		}

		if fallback < 0 && strings.EqualFold(a.nodes[i].Path, lookupName) {
			fallback = i
		}
	}

	if fallback >= 0 {
		return fallback, true
	}

	return 0, false
}

// Find resolves a node by path. An empty path resolves to root.
// A missing entry is reported by ok=false, never as an error.
func (a *Archive) Find(name string) (Node, bool) {
	if a == nil {
		return Node{}, false
	}

	i, ok := a.findEntryIndex(name)
	if !ok {
		return Node{}, false
	}

	return a.nodes[i], true
}

// FindByName resolves the first file whose base name matches name,
// case-insensitive, regardless of directory.
func (a *Archive) FindByName(name string) (Node, bool) {
	if a == nil {
		return Node{}, false
	}

	want := baseName(NormalizePath(name))
	if want == "" {
		return Node{}, false
	}

	for i := range a.nodes {
		if !a.nodes[i].IsDir && strings.EqualFold(a.nodes[i].Name, want) {
			return a.nodes[i], true
		}
	}

	return Node{}, false
}

// ReadEntry returns a copy of the named file payload.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	i, err := a.fileIndex(name)
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), a.payloads[i]...), nil
}

// fileIndex resolves a file node or returns ErrEntryNotFound / ErrNotAFile.
func (a *Archive) fileIndex(name string) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	i, ok := a.findEntryIndex(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	if a.nodes[i].IsDir {
		return 0, fmt.Errorf("%w: %s", ErrNotAFile, name)
	}

	return i, nil
}

// Entries returns a copy of all nodes in table order, root first.
func (a *Archive) Entries() []Node {
	if a == nil {
		return nil
	}

	entries := make([]Node, len(a.nodes))
	copy(entries, a.nodes)
	return entries
}

// Files returns file nodes in table order.
func (a *Archive) Files() []Node {
	if a == nil {
		return nil
	}

	files := make([]Node, 0, len(a.nodes))
	for i := range a.nodes {
		if !a.nodes[i].IsDir {
			files = append(files, a.nodes[i])
		}
	}

	return files
}

// Children returns direct children of directory at index dir.
func (a *Archive) Children(dir int) []Node {
	if a == nil || dir < 0 || dir >= len(a.nodes) || !a.nodes[dir].IsDir {
		return nil
	}

	var out []Node
	for i := dir + 1; i < a.nodes[dir].End; {
		out = append(out, a.nodes[i])
		if a.nodes[i].IsDir {
			i = a.nodes[i].End
			continue
		}

		i++
	}

	return out
}

// Walk calls fn for every node in table order, root first. A non-nil error
// from fn stops the walk and is returned as is.
func (a *Archive) Walk(fn func(Node) error) error {
	if a == nil || fn == nil {
		return nil
	}

	for i := range a.nodes {
		if err := fn(a.nodes[i]); err != nil {
			return err
		}
	}

	return nil
}
