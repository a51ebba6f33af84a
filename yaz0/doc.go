// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package yaz0 implements the Yaz0 LZ77-family compression container used by
Nintendo Wii assets (".szs" files).

A Yaz0 blob is a 16-byte header ("Yaz0", big-endian uncompressed size,
8 reserved bytes) followed by groups of one control byte and up to eight
tokens. Control bits are read MSB first: a set bit copies one literal byte,
a clear bit encodes a back-reference of 3..273 bytes at distance 1..4096.

Decompress a blob:

	raw, err := yaz0.Decompress(szs)
	if err != nil {
	    return err
	}

Compress with the match-finding encoder, or with the literal-only encoder
when a consumer rejects optimized streams:

	out, err := yaz0.Compress(raw, yaz0.ModeOptimized)
	safe, err := yaz0.Compress(raw, yaz0.ModeLiteralOnly)

Both modes satisfy Decompress(Compress(b, mode)) == b.
*/
package yaz0
