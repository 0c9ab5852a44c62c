// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package homepage composes the public homepage rows and owns the console
settings that drive them.

# Architecture

  - Section: one orderable, toggleable row. The ordered list is stored as a
    single JSON value under [LayoutKey].
  - Resolve / FilterCategory: turn a section type into items.
  - Service: layout reads and the atomic settings save (layout and Top 10 order).
*/
package homepage

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/ycinema/pkg/slug"
)

// LayoutKey is the configuration key holding the section list.
const LayoutKey = "homepage_sections"

// Preset section types. Any other type is treated as a genre.
const (
	TypeNew     = "new"
	TypePopular = "popular"
	TypeTop10   = "top10"

	// CategoryAll is the category view that lists the whole catalog.
	CategoryAll = "all"
)

// AvailableTypes are the genre rows the console offers to add.
var AvailableTypes = []string{
	"action", "comedy", "drama", "horror", "sci-fi", "romance", "documentary", "thriller", "anime",
}

// Section is one row of the homepage. Its position in the list is its order.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Visible bool   `json:"visible"`
}

// DefaultSections is the layout used when none has been saved.
func DefaultSections() []Section {
	return []Section{
		{ID: TypeNew, Title: "New Releases For You", Type: TypeNew, Visible: true},
		{ID: TypePopular, Title: "Popular Movies", Type: TypePopular, Visible: true},
		{ID: TypeTop10, Title: "Top 10 Movies This Week", Type: TypeTop10, Visible: true},
		{ID: "action", Title: "Action Movies", Type: "action", Visible: true},
	}
}

// NewSectionID derives a unique row ID from the type and creation time.
func NewSectionID(sectionType string, at time.Time) string {
	base := slug.From(sectionType)
	if base == "" {
		base = "section"
	}
	return fmt.Sprintf("%s-%d", base, at.UnixMilli())
}

// DefaultTitle is the title a newly added row starts with.
func DefaultTitle(sectionType string) string {
	if sectionType == TypeTop10 {
		return "Top 10"
	}
	return capitalize(sectionType)
}

// CategoryTitle is the heading of the category view, e.g. "Action Movies".
func CategoryTitle(category string) string {
	return capitalize(category) + " Movies"
}

// Visible returns the sections shown on the homepage, in order.
func Visible(sections []Section) []Section {
	result := make([]Section, 0, len(sections))
	for _, section := range sections {
		if section.Visible {
			result = append(result, section)
		}
	}
	return result
}

func capitalize(text string) string {
	text = strings.TrimSpace(text)
	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:]
}
