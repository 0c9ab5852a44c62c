// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Homepage section IDs are derived from section types with it
// (e.g. "Sci-Fi" becomes "sci-fi").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators matches runs of anything outside [a-z0-9].
var separators = regexp.MustCompile(`[^a-z0-9]+`)

// From converts s into a lowercase, hyphen-separated ASCII slug.
// Accents are stripped after NFD decomposition. Characters with no ASCII
// form become separators.
func From(s string) string {
	chain := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(chain, s)
	if err != nil {
		result = s
	}

	result = separators.ReplaceAllString(strings.ToLower(result), "-")
	return strings.Trim(result, "-")
}

// isMn reports whether r is a Unicode non-spacing mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
