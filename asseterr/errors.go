// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package asseterr defines the error classes shared by all wiiasset codecs.

Every sentinel exported by the codec packages wraps exactly one class, so
callers can branch on the class without knowing the concrete sentinel:

	if errors.Is(err, asseterr.ErrFormat) {
	    // corrupted input, abort the patch
	}

Suspicious but survivable input is reported as Warning values and never as
an error.
*/
package asseterr

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Use errors.Is in callers.
var (
	// ErrFormat means input bytes violate the container layout (bad magic,
	// truncated stream, inconsistent size fields). Not recoverable.
	ErrFormat = errors.New("format error")
	// ErrNotFound means a requested entry is absent. Callers decide the fallback.
	ErrNotFound = errors.New("not found")
	// ErrValidation means input failed a length or policy check before decoding.
	ErrValidation = errors.New("validation error")
)

// Format returns a sentinel of the format class.
func Format(msg string) error {
	return fmt.Errorf("%w: %s", ErrFormat, msg)
}

// NotFound returns a sentinel of the not-found class.
func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// Validation returns a sentinel of the validation class.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Warning is a non-fatal finding produced by read-only checks.
type Warning struct {
	// Code is a stable machine-readable identifier, e.g. "missing_entry".
	Code string `json:"code" yaml:"code"`
	// Message is a human-readable description naming the offending field.
	Message string `json:"message" yaml:"message"`
}

// String formats warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// Warnings is an ordered list of findings.
type Warnings []Warning

// Add appends a formatted warning.
func (ws *Warnings) Add(code string, format string, args ...any) {
	*ws = append(*ws, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Has reports whether a warning with code is present.
func (ws Warnings) Has(code string) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}

	return false
}

// String joins warnings with "; ".
func (ws Warnings) String() string {
	parts := make([]string, 0, len(ws))
	for _, w := range ws {
		parts = append(parts, w.String())
	}

	return strings.Join(parts, "; ")
}
