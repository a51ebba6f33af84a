// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetpatch

import (
	"encoding/hex"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/woozymasta/wiiasset/assetcheck"
	"github.com/woozymasta/wiiasset/u8"
	"github.com/woozymasta/wiiasset/yaz0"
	"github.com/zeebo/blake3"
)

// Options controls patch flows.
type Options struct {
	// Logger receives debug stage logs. Nil discards them.
	Logger logrus.FieldLogger `json:"-" yaml:"-"`
	// Font holds limits for the input font archive check.
	Font assetcheck.FontOptions `json:"font" yaml:"font"`
	// Mode selects Yaz0 compression (default: optimized).
	Mode yaz0.Mode `json:"mode" yaml:"mode"`
	// Verify decodes the produced output and compares it with the serialized container.
	Verify bool `json:"verify" yaml:"verify"`
}

// applyDefaults fills zero-valued options.
func (o *Options) applyDefaults() {
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
}

// Digest is a BLAKE3-256 content digest.
type Digest [32]byte

// sum returns BLAKE3-256 digest of data.
func sum(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// String returns lowercase hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Result describes one patch run.
type Result struct {
	// Output is the patched file.
	Output []byte `json:"-" yaml:"-"`
	// Report holds warnings raised by input checks.
	Report assetcheck.Report `json:"report" yaml:"report"`
	// Entry is the replaced U8 node after relayout; zero for rating edits.
	Entry u8.Node `json:"entry" yaml:"entry"`
	// InputDigest is BLAKE3-256 of the input file.
	InputDigest Digest `json:"input_digest" yaml:"input_digest"`
	// OutputDigest is BLAKE3-256 of Output.
	OutputDigest Digest `json:"output_digest" yaml:"output_digest"`
	// ContainerSize is the serialized U8 or rating table size before compression.
	ContainerSize int `json:"container_size" yaml:"container_size"`
	// Duration is wall time spent in the flow.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
