// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package rating

import "fmt"

// Header returns the parsed header.
func (t *Table) Header() Header {
	return t.header
}

// Version returns the table format version.
func (t *Table) Version() uint32 {
	return t.header.Version
}

// Len returns the fixed record count.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns record at index i.
func (t *Table) Record(i int) (Record, error) {
	if i < 0 || i >= len(t.records) {
		return Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.records))
	}

	return t.records[i], nil
}

// Set overwrites record at index i. The record count never changes.
func (t *Table) Set(i int, rec Record) error {
	if i < 0 || i >= len(t.records) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.records))
	}

	t.records[i] = rec
	return nil
}

// Records returns a copy of all records in file order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Lookup returns index and record of the first entry with profileID.
func (t *Table) Lookup(profileID uint32) (int, Record, error) {
	for i, rec := range t.records {
		if rec.ProfileID == profileID {
			return i, rec, nil
		}
	}

	return -1, Record{}, fmt.Errorf("%w: profile %d", ErrRecordNotFound, profileID)
}

// Active returns indices of active records.
func (t *Table) Active() []int {
	var out []int
	for i, rec := range t.records {
		if rec.Active() {
			out = append(out, i)
		}
	}

	return out
}

// ActiveCount returns number of active records.
func (t *Table) ActiveCount() int {
	n := 0
	for _, rec := range t.records {
		if rec.Active() {
			n++
		}
	}

	return n
}
