// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetpatch

import (
	"bytes"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/woozymasta/wiiasset/assetcheck"
	"github.com/woozymasta/wiiasset/rating"
)

// EditRatings parses a rating table, applies edit, and serializes the result.
// A nil edit re-serializes the table unchanged.
func EditRatings(src []byte, edit func(*rating.Table) error, opts Options) (*Result, error) {
	opts.applyDefaults()
	started := time.Now()
	log := opts.Logger.WithField("flow", "rating")

	table, rep, err := assetcheck.OpenRatingFile(src)
	if err != nil {
		return nil, fmt.Errorf("check input: %w", err)
	}
	log.WithFields(logrus.Fields{
		"version":  table.Version(),
		"records":  table.Len(),
		"active":   table.ActiveCount(),
		"warnings": len(rep.Warnings),
	}).Debug("input decoded")

	if edit != nil {
		if err := edit(table); err != nil {
			return nil, fmt.Errorf("edit ratings: %w", err)
		}
		log.WithField("active", table.ActiveCount()).Debug("records edited")
	}

	out, err := table.Bytes()
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		back, err := rating.Parse(out)
		if err != nil {
			return nil, fmt.Errorf("%w: reparse: %w", ErrVerifyMismatch, err)
		}

		again, err := back.Bytes()
		if err != nil || !bytes.Equal(again, out) || back.Len() != table.Len() {
			return nil, fmt.Errorf("%w: rating table does not round-trip", ErrVerifyMismatch)
		}
		log.Debug("output verified")
	}

	return &Result{
		Output:        out,
		Report:        rep,
		InputDigest:   sum(src),
		OutputDigest:  sum(out),
		ContainerSize: len(out),
		Duration:      time.Since(started),
	}, nil
}
