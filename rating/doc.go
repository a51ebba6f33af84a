// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package rating parses and serializes the fixed-record player rating table:
a 12-byte little-endian header (4-byte magic, version, record count) followed
by count 16-byte records.

The record count is fixed at parse time. Callers edit records in place with
Set and serialize with Bytes; unchanged tables round-trip byte for byte.

	t, err := rating.Parse(raw)
	if err != nil {
	    return err
	}
	rec, _ := t.Record(0)
	rec.VR = 5000
	_ = t.Set(0, rec)
	out, err := t.Bytes()
*/
package rating
