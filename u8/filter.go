// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package u8

import (
	"fmt"
	"strings"

	"github.com/woozymasta/pathrules"
)

// DefaultSelectMatcherOptions are used by Select: case-insensitive with
// exclude as default action.
var DefaultSelectMatcherOptions = pathrules.MatcherOptions{
	CaseInsensitive: true,
	DefaultAction:   pathrules.ActionExclude,
}

// entryMatcher holds compiled allow-list rules for entry selection.
type entryMatcher struct {
	matcher *pathrules.Matcher
}

// newEntryMatcher compiles selection path rules.
func newEntryMatcher(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*entryMatcher, error) {
	rules = normalizeSelectRules(rules)
	if len(rules) == 0 {
		return nil, nil
	}

	if opts.DefaultAction == pathrules.ActionUnknown {
		opts.DefaultAction = pathrules.ActionExclude
	}

	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidSelectRule, err)
	}

	return &entryMatcher{matcher: matcher}, nil
}

// normalizeSelectRules normalizes rule patterns and drops empty patterns.
func normalizeSelectRules(rules []pathrules.Rule) []pathrules.Rule {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := normalizePathForMatching(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	return normalized
}

// Match reports whether path is included by rules.
func (m *entryMatcher) Match(p string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}

	candidate := NormalizePath(p)
	if candidate == "" {
		return false
	}

	return m.matcher.Included(candidate, isDir)
}

// Select returns file nodes included by ordered rules, in table order.
// Empty rules select nothing.
func (a *Archive) Select(rules []pathrules.Rule) ([]Node, error) {
	return a.SelectWithOptions(rules, DefaultSelectMatcherOptions)
}

// SelectWithOptions is Select with explicit matcher options.
func (a *Archive) SelectWithOptions(rules []pathrules.Rule, opts pathrules.MatcherOptions) ([]Node, error) {
	matcher, err := newEntryMatcher(rules, opts)
	if err != nil {
		return nil, err
	}

	if a == nil || matcher == nil {
		return nil, nil
	}

	var out []Node
	for i := range a.nodes {
		n := a.nodes[i]
		if n.IsDir {
			continue
		}

		if matcher.Match(n.Path, false) {
			out = append(out, n)
		}
	}

	return out, nil
}

// FilterPrefix returns nodes under prefix (or the exact node if prefix is a file).
func FilterPrefix(entries []Node, prefix string) []Node {
	prefix = NormalizePath(prefix)
	if prefix == "" {
		return entries
	}

	normalizedPrefix := strings.ToLower(prefix) + "/"
	out := make([]Node, 0, len(entries))
	for _, entry := range entries {
		entryPath := strings.ToLower(entry.Path)
		if strings.EqualFold(entry.Path, prefix) || strings.HasPrefix(entryPath, normalizedPrefix) {
			out = append(out, entry)
		}
	}

	return out
}
