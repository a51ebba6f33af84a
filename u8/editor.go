// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"fmt"
	"math"
	"strings"
)

// Replace returns a new archive with the named file payload replaced.
// The receiver is not modified.
func (a *Archive) Replace(name string, payload []byte) (*Archive, error) {
	ed := NewEditor(a)
	if err := ed.Replace(name, payload); err != nil {
		return nil, err
	}

	out, _, err := ed.Commit()
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Editor accumulates replace operations and applies them on Commit.
type Editor struct {
	src *Archive
	ops []replaceOperation
}

// replaceOperation stores one staged payload replacement.
type replaceOperation struct {
	path    string
	payload []byte
}

// NewEditor creates staged editor over a parsed archive.
func NewEditor(a *Archive) *Editor {
	return &Editor{
		src: a,
		ops: make([]replaceOperation, 0, 4),
	}
}

// Replace schedules replacing an existing file payload. Later replacements
// of the same path win. The payload slice is retained until Commit.
func (e *Editor) Replace(name string, payload []byte) error {
	if e == nil || e.src == nil {
		return fmt.Errorf("%w: nil archive", ErrInvalidHeader)
	}

	normalized := NormalizePath(name)
	if normalized == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEntryPath, name)
	}

	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: payload for %q is %d bytes", ErrSizeOverflow, normalized, len(payload))
	}

	e.ops = append(e.ops, replaceOperation{path: normalized, payload: payload})
	return nil
}

// Commit applies staged replacements to a copy of the source archive.
// Missing paths fail with ErrEntryNotFound, directories with ErrNotAFile.
func (e *Editor) Commit() (*Archive, *EditResult, error) {
	if e == nil || e.src == nil {
		return nil, nil, fmt.Errorf("%w: nil archive", ErrInvalidHeader)
	}

	state := make(map[int][]byte, len(e.ops))
	for _, op := range e.ops {
		i, err := e.src.fileIndex(op.path)
		if err != nil {
			return nil, nil, err
		}

		state[i] = op.payload
	}

	out := e.src.clone()
	sizes := make(map[int]uint32, len(state))
	for i, payload := range state {
		sizes[i] = uint32(len(payload)) //nolint:gosec // checked in Replace
		out.payloads[i] = append([]byte(nil), payload...)
	}

	if err := out.relayout(sizes); err != nil {
		return nil, nil, err
	}

	res := &EditResult{
		SizeBefore: e.src.size,
		SizeAfter:  out.size,
		Replaced:   make([]Node, 0, len(state)),
	}
	for i := range out.nodes {
		if _, ok := state[i]; ok {
			res.Replaced = append(res.Replaced, out.nodes[i])
		}
	}

	return out, res, nil
}

// Pending returns normalized paths staged for replacement, in call order.
func (e *Editor) Pending() []string {
	if e == nil {
		return nil
	}

	paths := make([]string, 0, len(e.ops))
	seen := make(map[string]struct{}, len(e.ops))
	for _, op := range e.ops {
		key := strings.ToLower(op.path)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		paths = append(paths, op.path)
	}

	return paths
}
