// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package yaz0

const (
	hashLog  = 15
	hashSize = 1 << hashLog
	// hashMul is the 32-bit golden ratio multiplier.
	hashMul = 0x9E3779B1
	// noCandidate ends a chain. Positions are below len(src), which Compress
	// caps at MaxUint32, so no real position equals it.
	noCandidate = ^uint32(0)
)

// matchFinder indexes 3-byte prefixes in hash chains ordered from the most
// recent position, so the first candidate of a given length has the smallest
// distance.
type matchFinder struct {
	src  []byte
	head []uint32
	prev []uint32
	// next is the first position not yet inserted.
	next int
}

// newMatchFinder prepares empty chains for src.
func newMatchFinder(src []byte) *matchFinder {
	head := make([]uint32, hashSize)
	for i := range head {
		head[i] = noCandidate
	}

	return &matchFinder{
		src:  src,
		head: head,
		prev: make([]uint32, len(src)),
	}
}

// hash3 hashes the first three bytes of b.
func hash3(b []byte) uint32 {
	v := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	return (v * hashMul) >> (32 - hashLog)
}

// advance inserts every position before pos.
func (m *matchFinder) advance(pos int) {
	for ; m.next < pos; m.next++ {
		if m.next+MinMatch > len(m.src) {
			continue
		}

		h := hash3(m.src[m.next:])
		m.prev[m.next] = m.head[h]
		m.head[h] = uint32(m.next) //nolint:gosec // len(src) <= MaxUint32, checked in Compress
	}
}

// longest returns the longest match for pos within MaxDistance, capped at
// MaxMatch. Returns zero length when no match of MinMatch bytes exists.
func (m *matchFinder) longest(pos int) (length int, distance int) {
	m.advance(pos)

	limit := len(m.src) - pos
	if limit > MaxMatch {
		limit = MaxMatch
	}
	if limit < MinMatch {
		return 0, 0
	}

	cur := m.src[pos : pos+limit]
	for cand := m.head[hash3(cur)]; cand != noCandidate; cand = m.prev[cand] {
		d := pos - int(cand)
		if d > MaxDistance {
			break
		}

		n := commonPrefix(m.src[cand:], cur)
		if n > length {
			length, distance = n, d
			if n == limit {
				break
			}
		}
	}

	if length < MinMatch {
		return 0, 0
	}

	return length, distance
}

// commonPrefix returns the number of leading bytes a and b share.
func commonPrefix(a []byte, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}
