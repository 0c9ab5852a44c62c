// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses loosely formatted list values from query strings,
// form inputs and stored documents.
package query

import "strings"

// StringSlice splits a comma-separated string into trimmed, non-empty entries.
// It returns nil for blank input.
func StringSlice(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}

	var res []string
	for _, v := range strings.Split(val, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Contains reports whether haystack contains needle, ignoring case.
// An empty needle never matches.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// likeEscaper escapes the LIKE metacharacters with a backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching needle as a literal
// substring. Use it with ESCAPE '\'.
func ContainsPattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}
