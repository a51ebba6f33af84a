// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package yaz0

import "fmt"

// Decompress decodes a complete Yaz0 blob.
func Decompress(src []byte) ([]byte, error) {
	h, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}

	body := src[HeaderSize:]
	if uint64(h.UncompressedSize) > uint64(len(body))*maxExpansion {
		return nil, fmt.Errorf(
			"%w: uncompressedSize %d exceeds what %d body bytes can encode",
			ErrSizeField, h.UncompressedSize, len(body),
		)
	}

	dst := make([]byte, h.UncompressedSize)
	if err := decodeBody(dst, body); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressedSize returns uncompressedSize from header without decoding.
func DecompressedSize(src []byte) (uint32, error) {
	h, err := ReadHeader(src)
	if err != nil {
		return 0, err
	}

	return h.UncompressedSize, nil
}

// decodeBody fills dst from token stream src. Unused bits of the final
// control byte are ignored once dst is full.
func decodeBody(dst []byte, src []byte) error {
	var (
		pos  int
		in   int
		ctrl byte
		bits int
	)

	for pos < len(dst) {
		if bits == 0 {
			if in >= len(src) {
				return fmt.Errorf("%w: control byte at body offset %d (output %d/%d)", ErrTruncated, in, pos, len(dst))
			}

			ctrl = src[in]
			in++
			bits = 8
		}

		bits--
		literal := ctrl&0x80 != 0
		ctrl <<= 1

		if literal {
			if in >= len(src) {
				return fmt.Errorf("%w: literal at body offset %d (output %d/%d)", ErrTruncated, in, pos, len(dst))
			}

			dst[pos] = src[in]
			pos++
			in++
			continue
		}

		if in+2 > len(src) {
			return fmt.Errorf("%w: back-reference at body offset %d", ErrTruncated, in)
		}

		b1, b2 := src[in], src[in+1]
		in += 2

		distance := (int(b1&0x0F)<<8 | int(b2)) + 1
		length := int(b1>>4) + 2
		if b1>>4 == 0 {
			if in >= len(src) {
				return fmt.Errorf("%w: back-reference length byte at body offset %d", ErrTruncated, in)
			}

			length = int(src[in]) + 18
			in++
		}

		if distance > pos {
			return fmt.Errorf("%w: distance %d at output position %d", ErrInvalidBackref, distance, pos)
		}
		if length > len(dst)-pos {
			return fmt.Errorf(
				"%w: back-reference of %d bytes at output position %d overruns uncompressedSize %d",
				ErrSizeField, length, pos, len(dst),
			)
		}

		// Source and destination may overlap when distance < length,
		// later bytes depend on bytes written by this same copy.
		from := pos - distance
		for i := 0; i < length; i++ {
			dst[pos] = dst[from+i]
			pos++
		}
	}

	return nil
}
