// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import "github.com/woozymasta/wiiasset/rating"

// CheckRatingFile checks exact rating table length (fatal) and version range.
func CheckRatingFile(data []byte) (Report, error) {
	_, rep, err := OpenRatingFile(data)
	return rep, err
}

// OpenRatingFile checks and parses a rating table.
func OpenRatingFile(data []byte) (*rating.Table, Report, error) {
	var rep Report
	t, err := rating.Parse(data)
	if err != nil {
		return nil, rep, err
	}

	if v := t.Version(); v < 1 || v > rating.MaxKnownVersion {
		rep.Warnings.Add(CodeVersionRange, "version %d outside [1, %d]", v, rating.MaxKnownVersion)
	}

	return t, rep, nil
}
