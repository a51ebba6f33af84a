// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import (
	"fmt"
	"path"
	"strings"

	"github.com/woozymasta/pathrules"
)

// CheckFileName reports ErrFileName unless name ends with one of allowed
// extensions, compared case-insensitively. Extensions may be given as
// "szs", ".szs" or "*.szs".
func CheckFileName(name string, allowed []string) error {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, `/`))
	if base == "" || base == "." || base == "/" {
		return fmt.Errorf("%w: empty name", ErrFileName)
	}

	rules := extensionRules(allowed)
	if len(rules) == 0 {
		return fmt.Errorf("%w: %q, no extensions allowed", ErrFileName, base)
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: true,
		DefaultAction:   pathrules.ActionExclude,
	})
	if err != nil {
		return fmt.Errorf("%w: compile extension rules: %w", ErrFileName, err)
	}

	if !matcher.Included(base, false) {
		return fmt.Errorf("%w: %q not in %s", ErrFileName, base, strings.Join(allowed, ", "))
	}

	return nil
}

// extensionRules converts extension list to "*.ext" include rules.
func extensionRules(allowed []string) []pathrules.Rule {
	rules := make([]pathrules.Rule, 0, len(allowed))
	for _, ext := range allowed {
		ext = strings.TrimLeft(strings.TrimSpace(ext), "*.")
		if ext == "" || strings.ContainsAny(ext, `/\`) {
			continue
		}

		rules = append(rules, pathrules.Rule{
			Action:  pathrules.ActionInclude,
			Pattern: "*." + ext,
		})
	}

	return rules
}
