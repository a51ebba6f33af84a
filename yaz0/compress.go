// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package yaz0

import (
	"fmt"
	"math"
)

// Compress encodes src as a Yaz0 blob using the selected mode.
func Compress(src []byte, mode Mode) ([]byte, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, len(src))
	}

	out := make([]byte, 0, LiteralOnlySize(len(src)))
	out, err := appendHeader(out, uint32(len(src))) //nolint:gosec // bounded above
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeLiteralOnly:
		return encodeLiterals(out, src), nil
	case ModeOptimized:
		return encodeOptimized(out, src), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}
}

// LiteralOnlySize returns exact ModeLiteralOnly output size for n input bytes.
func LiteralOnlySize(n int) int {
	return HeaderSize + (n+7)/8 + n
}

// groupWriter appends tokens and maintains the current control byte.
type groupWriter struct {
	out  []byte
	ctrl int
	used uint8
	// fill is the initial value of every new control byte.
	fill byte
}

// newGroupWriter starts a token body after the bytes already in out.
func newGroupWriter(out []byte, fill byte) *groupWriter {
	return &groupWriter{out: out, used: 8, fill: fill}
}

// slot reserves the next control bit and returns its mask.
func (w *groupWriter) slot() byte {
	if w.used == 8 {
		w.ctrl = len(w.out)
		w.out = append(w.out, w.fill)
		w.used = 0
	}

	mask := byte(0x80) >> w.used
	w.used++

	return mask
}

// literal emits one literal token.
func (w *groupWriter) literal(b byte) {
	mask := w.slot()
	w.out[w.ctrl] |= mask
	w.out = append(w.out, b)
}

// backref emits one back-reference token; caller guarantees limits.
func (w *groupWriter) backref(distance int, length int) {
	w.slot()

	d := distance - 1
	if length >= 18 {
		w.out = append(w.out, byte(d>>8), byte(d), byte(length-18))
		return
	}

	w.out = append(w.out, byte((length-2)<<4|d>>8), byte(d))
}

// encodeLiterals appends a literal-only body: every control byte is 0xFF.
func encodeLiterals(out []byte, src []byte) []byte {
	w := newGroupWriter(out, 0xFF)
	for _, b := range src {
		w.literal(b)
	}

	return w.out
}

// encodeOptimized appends a body produced by greedy hash-chain matching with
// one step of lazy evaluation.
func encodeOptimized(out []byte, src []byte) []byte {
	w := newGroupWriter(out, 0)
	mf := newMatchFinder(src)

	pos := 0
	for pos < len(src) {
		length, distance := mf.longest(pos)
		if length == 0 {
			w.literal(src[pos])
			pos++
			continue
		}

		// Prefer a literal when the next position starts a strictly longer match.
		if length < MaxMatch && pos+1 < len(src) {
			nextLength, nextDistance := mf.longest(pos + 1)
			if nextLength > length {
				w.literal(src[pos])
				pos++
				length, distance = nextLength, nextDistance
			}
		}

		w.backref(distance, length)
		pos += length
	}

	return w.out
}
