// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/importer"
	"github.com/taibuivan/ycinema/internal/platform/apperr"
)

var stamp = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func normalize(t *testing.T, document string) []importer.Entry {
	t.Helper()

	records, err := importer.Decode([]byte(document))
	require.NoError(t, err)

	entries, err := importer.Normalize(records, stamp)
	require.NoError(t, err)
	return entries
}

func valueOf(entry importer.Entry, column string) (any, bool) {
	for i, name := range entry.Columns {
		if name == column {
			return entry.Values[i], true
		}
	}
	return nil, false
}

/*
TestDecode accepts both document shapes and rejects everything else.
*/
func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		document string
		count    int
		valid    bool
	}{
		{"array", `[{"title": "A"}, {"title": "B"}]`, 2, true},
		{"wrapped", `{"movies": [{"title": "A"}]}`, 1, true},
		{"empty_array", `[]`, 0, true},
		{"object_without_movies", `{"items": []}`, 0, false},
		{"scalar", `42`, 0, false},
		{"broken", `[{"title": `, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := importer.Decode([]byte(tt.document))
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.count)
		})
	}
}

/*
TestNormalize_Defaults fills type, status and flags, and stamps updated_at.
*/
func TestNormalize_Defaults(t *testing.T) {
	entries := normalize(t, `[{"id": "dune", "title": " Dune "}]`)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "dune", entry.ID)
	assert.Equal(t, "Dune", entry.Title)
	assert.Equal(t, "id", entry.Columns[0])

	expected := map[string]any{
		"type":           "movie",
		"status":         "published",
		"featured":       false,
		"is_new_release": false,
		"is_popular":     false,
		"top10":          false,
		"updated_at":     stamp,
	}
	for column, want := range expected {
		value, ok := valueOf(entry, column)
		require.True(t, ok, column)
		assert.Equal(t, want, value, column)
	}

	_, ok := valueOf(entry, "rating")
	assert.False(t, ok, "absent fields are not written")
}

/*
TestNormalize_Aliases accepts camelCase and snake_case keys and coerces values.
*/
func TestNormalize_Aliases(t *testing.T) {
	entries := normalize(t, `{"movies": [{
		"title": "The Raid",
		"type": "movie",
		"year": "2011",
		"rating": 7.6,
		"category": ["Action", "Thriller"],
		"front_image": "https://img.example/raid.jpg",
		"watchLink": "https://watch.example/raid",
		"isPopular": "true",
		"top10_order": 3,
		"cast": "Iko Uwais, Joe Taslim",
		"writers": "[\"Gareth Evans\"]",
		"awards": null,
		"seasons": [{"season": 1}],
		"unknown": "ignored"
	}]}`)
	entry := entries[0]

	checks := map[string]any{
		"year":         2011,
		"rating":       7.6,
		"category":     "Action, Thriller",
		"front_image":  "https://img.example/raid.jpg",
		"watch_link":   "https://watch.example/raid",
		"is_popular":   true,
		"top10_order":  3,
		"cast_members": catalog.StringList{"Iko Uwais", "Joe Taslim"},
		"writers":      catalog.StringList{"Gareth Evans"},
	}
	for column, want := range checks {
		value, ok := valueOf(entry, column)
		require.True(t, ok, column)
		assert.Equal(t, want, value, column)
	}

	seasons, ok := valueOf(entry, "seasons")
	require.True(t, ok)
	assert.JSONEq(t, `[{"season": 1}]`, string(seasons.([]byte)))

	_, ok = valueOf(entry, "awards")
	assert.False(t, ok, "null counts as absent")
}

/*
TestNormalize_GeneratesIDs assigns distinct IDs to records without one.
*/
func TestNormalize_GeneratesIDs(t *testing.T) {
	entries := normalize(t, `[{"title": "A"}, {"title": "B", "id": null}]`)

	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

/*
TestNormalize_Rejects reports every invalid field with its record index.
*/
func TestNormalize_Rejects(t *testing.T) {
	records, err := importer.Decode([]byte(`[
		{"title": "Fine"},
		{"year": 2020},
		{"title": "Bad", "rating": "high", "type": "short", "featured": "maybe"},
		{"id": "x", "title": "X"},
		{"id": "x", "title": "Y"}
	]`))
	require.NoError(t, err)

	_, err = importer.Normalize(records, stamp)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	var fields []string
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	joined := strings.Join(fields, " ")

	assert.Contains(t, joined, "movies[1].title")
	assert.Contains(t, joined, "movies[2].rating")
	assert.Contains(t, joined, "movies[2].type")
	assert.Contains(t, joined, "movies[2].featured")
	assert.Contains(t, joined, "movies[4].id")
	assert.NotContains(t, joined, "movies[0]")
}

/*
TestUpsertStatement only updates the columns present.
*/
func TestUpsertStatement(t *testing.T) {
	statement := importer.UpsertStatement([]string{"id", "title", "updated_at"})

	assert.Equal(t,
		"INSERT INTO movies (id, title, updated_at) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, updated_at = EXCLUDED.updated_at;",
		statement,
	)
}
