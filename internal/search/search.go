// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search matches a free-text query against the loaded catalog.

Matching is a linear, case-insensitive substring scan that fills three buckets
(titles, people, genres) in catalog order. There is no ranking.
*/
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/pkg/query"
	"github.com/taibuivan/ycinema/pkg/slice"
)

// DisplayLimit is how many entries per bucket the search dropdown shows.
const DisplayLimit = 5

// Person roles.
const (
	RoleActor    = "Actor"
	RoleDirector = "Director"
)

// Person is a cast or director match.
type Person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Genre is a category match.
type Genre struct {
	Name string `json:"name"`
}

// ResultSet holds the three result buckets. Buckets are never nil.
type ResultSet struct {
	Titles []*catalog.Item `json:"titles"`
	People []Person        `json:"people"`
	Genres []Genre         `json:"genres"`
}

// Empty returns a result set with empty buckets.
func Empty() ResultSet {
	return ResultSet{
		Titles: []*catalog.Item{},
		People: []Person{},
		Genres: []Genre{},
	}
}

// Truncate caps every bucket at n entries.
func (set ResultSet) Truncate(n int) ResultSet {
	return ResultSet{
		Titles: slice.Take(set.Titles, n),
		People: slice.Take(set.People, n),
		Genres: slice.Take(set.Genres, n),
	}
}

// Total returns the number of entries across all buckets.
func (set ResultSet) Total() int {
	return len(set.Titles) + len(set.People) + len(set.Genres)
}

/*
Run matches text against items and returns the full, untruncated buckets.

  - Titles: items whose title contains the query.
  - People: cast entries (Actor) then the director (Director) containing the
    query. A name appears once, with the role it was first found under.
  - Genres: only for items whose whole category contains the query; each
    comma-separated part containing the query, first letter upper-cased.

A blank query returns empty buckets.
*/
func Run(text string, items []*catalog.Item) ResultSet {
	result := Empty()

	needle := strings.TrimSpace(text)
	if needle == "" {
		return result
	}

	seenPeople := make(map[string]struct{})
	addPerson := func(name, role string) {
		if _, ok := seenPeople[name]; ok {
			return
		}
		seenPeople[name] = struct{}{}
		result.People = append(result.People, Person{Name: name, Role: role})
	}

	for _, item := range items {
		if query.Contains(item.Title, needle) {
			result.Titles = append(result.Titles, item)
		}

		for _, member := range item.Cast {
			if query.Contains(member, needle) {
				addPerson(member, RoleActor)
			}
		}

		if query.Contains(item.Director, needle) {
			addPerson(item.Director, RoleDirector)
		}

		if !query.Contains(item.Category, needle) {
			continue
		}
		for _, genre := range item.Genres() {
			if query.Contains(genre, needle) {
				result.Genres = append(result.Genres, Genre{Name: capitalize(genre)})
			}
		}
	}

	result.Genres = slice.UniqueBy(result.Genres, func(genre Genre) string { return genre.Name })
	return result
}

// capitalize upper-cases the first letter and leaves the rest untouched.
func capitalize(text string) string {
	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:]
}
