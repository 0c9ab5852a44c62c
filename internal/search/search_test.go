// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/search"
)

func fixture(t *testing.T) []*catalog.Item {
	t.Helper()

	document := `[
		{"id": "dune", "title": "Dune", "cast": "Timothée Chalamet, Zendaya", "category": "Sci-Fi, Drama", "director": "Denis Villeneuve"},
		{"id": "dune2", "title": "Dune: Part Two", "cast": ["Timothée Chalamet", "Zendaya", "Austin Butler"], "category": "sci-fi, adventure", "director": "Denis Villeneuve"},
		{"id": "raid", "title": "The Raid", "cast": "[\"Iko Uwais\", \"Joe Taslim\"]", "category": "Action, Thriller", "director": "Gareth Evans"},
		{"id": "dark", "title": "Dark", "cast": ["Louis Hofmann"], "category": "Drama, Mystery", "director": "Baran bo Odar"},
		{"id": "blank", "title": "Untitled"}
	]`

	var items []*catalog.Item
	require.NoError(t, json.Unmarshal([]byte(document), &items))
	return items
}

/*
TestRun_DuneExample matches a cast member only.
*/
func TestRun_DuneExample(t *testing.T) {
	items := []*catalog.Item{{
		Title:    "Dune",
		Cast:     catalog.ParseStringList("Timothée Chalamet, Zendaya"),
		Category: "Sci-Fi, Drama",
	}}

	result := search.Run("zen", items)

	assert.Equal(t, []search.Person{{Name: "Zendaya", Role: search.RoleActor}}, result.People)
	assert.Empty(t, result.Titles)
	assert.Empty(t, result.Genres)
}

/*
TestRun_EmptyQuery returns empty, non-nil buckets.
*/
func TestRun_EmptyQuery(t *testing.T) {
	for _, text := range []string{"", "   "} {
		result := search.Run(text, fixture(t))

		assert.NotNil(t, result.Titles)
		assert.NotNil(t, result.People)
		assert.NotNil(t, result.Genres)
		assert.Zero(t, result.Total())
	}
}

/*
TestRun_Buckets checks each bucket for a set of queries.
*/
func TestRun_Buckets(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		titles []string
		people []search.Person
		genres []string
	}{
		{
			name:   "title_case_insensitive",
			query:  "DUNE",
			titles: []string{"dune", "dune2"},
			people: []search.Person{},
			genres: []string{},
		},
		{
			name:   "people_deduplicated",
			query:  "chalamet",
			titles: []string{},
			people: []search.Person{{Name: "Timothée Chalamet", Role: search.RoleActor}},
			genres: []string{},
		},
		{
			name:   "director_once",
			query:  "villeneuve",
			titles: []string{},
			people: []search.Person{{Name: "Denis Villeneuve", Role: search.RoleDirector}},
			genres: []string{},
		},
		{
			name:   "encoded_cast",
			query:  "taslim",
			titles: []string{},
			people: []search.Person{{Name: "Joe Taslim", Role: search.RoleActor}},
			genres: []string{},
		},
		{
			name:   "genres_capitalized_and_deduplicated",
			query:  "dra",
			titles: []string{},
			people: []search.Person{},
			genres: []string{"Drama"},
		},
		{
			name:   "genre_first_letter_only",
			query:  "sci",
			titles: []string{},
			people: []search.Person{},
			genres: []string{"Sci-Fi", "Sci-fi"},
		},
		{
			name:   "across_buckets",
			query:  "dar",
			titles: []string{"dark"},
			people: []search.Person{{Name: "Baran bo Odar", Role: search.RoleDirector}},
			genres: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := search.Run(tt.query, fixture(t))

			titles := make([]string, 0, len(result.Titles))
			for _, item := range result.Titles {
				titles = append(titles, item.ID)
			}
			genres := make([]string, 0, len(result.Genres))
			for _, genre := range result.Genres {
				genres = append(genres, genre.Name)
			}

			assert.Equal(t, tt.titles, titles)
			assert.Equal(t, tt.people, result.People)
			assert.Equal(t, tt.genres, genres)
		})
	}
}

/*
TestRun_Membership verifies every returned entry contains the query.
*/
func TestRun_Membership(t *testing.T) {
	items := fixture(t)

	for _, text := range []string{"a", "e", "Ti", "o", "ll", "r"} {
		result := search.Run(text, items)
		needle := strings.ToLower(text)

		for _, item := range result.Titles {
			assert.Contains(t, strings.ToLower(item.Title), needle)
		}
		for _, person := range result.People {
			assert.Contains(t, strings.ToLower(person.Name), needle)
		}

		seen := map[string]bool{}
		for _, genre := range result.Genres {
			assert.Contains(t, strings.ToLower(genre.Name), needle)
			assert.False(t, seen[genre.Name], "duplicate genre %s", genre.Name)
			seen[genre.Name] = true
		}

		names := map[string]bool{}
		for _, person := range result.People {
			assert.False(t, names[person.Name], "duplicate person %s", person.Name)
			names[person.Name] = true
		}
	}
}

/*
TestResultSet_Truncate caps buckets without padding.
*/
func TestResultSet_Truncate(t *testing.T) {
	items := make([]*catalog.Item, 0, 8)
	for _, title := range []string{"Star Wars", "Star Trek", "Stardust", "A Star Is Born", "Lone Star", "Starship Troopers", "Star"} {
		items = append(items, &catalog.Item{Title: title})
	}

	full := search.Run("star", items)
	assert.Len(t, full.Titles, 7)

	shown := full.Truncate(search.DisplayLimit)
	assert.Len(t, shown.Titles, search.DisplayLimit)
	assert.Equal(t, "Star Wars", shown.Titles[0].Title)

	few := search.Run("trek", items).Truncate(search.DisplayLimit)
	assert.Len(t, few.Titles, 1)
	assert.NotNil(t, few.People)
	assert.Empty(t, few.People)
}
