// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package importer bulk-loads catalog documents into the store.

A document is either an array of items or an object with a "movies" array.
Field names are accepted in camelCase or snake_case. Fields absent from a
record (or null) are left untouched on existing rows; type, status and the
boolean flags are always written with their defaults.
*/
package importer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/platform/apperr"
	"github.com/taibuivan/ycinema/internal/platform/database/schema"
	"github.com/taibuivan/ycinema/pkg/convert"
	"github.com/taibuivan/ycinema/pkg/uuid"
)

// Entry is one normalized record: the columns present in the source and
// their values, in matching order. The first column is always the ID.
type Entry struct {
	ID      string
	Title   string
	Columns []string
	Values  []any
}

type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
	kindBool
	kindList
	kindCategory
	kindJSON
	kindTime
)

type field struct {
	column string
	kind   kind
}

var movies = schema.CatalogMovie

// fields maps every accepted source key to its column.
var fields = map[string]field{
	"title":          {movies.Title, kindText},
	"type":           {movies.Type, kindText},
	"status":         {movies.Status, kindText},
	"year":           {movies.Year, kindInt},
	"rating":         {movies.Rating, kindFloat},
	"category":       {movies.Category, kindCategory},
	"description":    {movies.Description, kindText},
	"frontImage":     {movies.FrontImage, kindText},
	"backImage":      {movies.BackImage, kindText},
	"carouselImage":  {movies.CarouselImage, kindText},
	"watchLink":      {movies.WatchLink, kindText},
	"featured":       {movies.Featured, kindBool},
	"isNewRelease":   {movies.IsNewRelease, kindBool},
	"isPopular":      {movies.IsPopular, kindBool},
	"top10":          {movies.Top10, kindBool},
	"top10Order":     {movies.Top10Order, kindInt},
	"director":       {movies.Director, kindText},
	"cast":           {movies.Cast, kindList},
	"writers":        {movies.Writers, kindList},
	"awards":         {movies.Awards, kindList},
	"certification":  {movies.Certification, kindText},
	"duration":       {movies.Duration, kindText},
	"language":       {movies.Language, kindText},
	"country":        {movies.Country, kindText},
	"releaseDate":    {movies.ReleaseDate, kindText},
	"seasons":        {movies.Seasons, kindJSON},
	"createdAt":      {movies.CreatedAt, kindTime},
	"front_image":    {movies.FrontImage, kindText},
	"back_image":     {movies.BackImage, kindText},
	"carousel_image": {movies.CarouselImage, kindText},
	"watch_link":     {movies.WatchLink, kindText},
	"is_new_release": {movies.IsNewRelease, kindBool},
	"is_popular":     {movies.IsPopular, kindBool},
	"top10_order":    {movies.Top10Order, kindInt},
	"cast_members":   {movies.Cast, kindList},
	"release_date":   {movies.ReleaseDate, kindText},
	"created_at":     {movies.CreatedAt, kindTime},
}

// defaults are written for every record that does not set the column.
var defaults = []struct {
	column string
	value  any
}{
	{movies.Type, string(catalog.TypeMovie)},
	{movies.Status, string(catalog.StatusPublished)},
	{movies.Featured, false},
	{movies.IsNewRelease, false},
	{movies.IsPopular, false},
	{movies.Top10, false},
}

// Decode extracts the item records of a document.
func Decode(data []byte) ([]map[string]json.RawMessage, error) {
	data = bytes.TrimSpace(data)

	var records []map[string]json.RawMessage
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, apperr.BadRequest("Document must be an array of objects: " + err.Error())
		}
		return records, nil
	}

	var document struct {
		Movies []map[string]json.RawMessage `json:"movies"`
	}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, apperr.BadRequest("Document is not valid JSON: " + err.Error())
	}
	if document.Movies == nil {
		return nil, apperr.BadRequest("Document must be an array or an object with a \"movies\" array")
	}
	return document.Movies, nil
}

/*
Normalize converts decoded records into upsert entries stamped with now.

Records without an id receive a generated one. Every problem is reported as a
field error naming the record index, and no entry is returned in that case.

Parameters:
  - records: []map[string]json.RawMessage
  - now: time.Time (written to updated_at)

Returns:
  - []Entry: One entry per record, in document order
  - error: apperr validation error listing every invalid field
*/
func Normalize(records []map[string]json.RawMessage, now time.Time) ([]Entry, error) {
	var problems []apperr.FieldError
	entries := make([]Entry, 0, len(records))
	seen := make(map[string]int, len(records))

	for index, record := range records {
		entry, errs := normalizeRecord(index, record, now)
		if previous, dup := seen[entry.ID]; dup && entry.ID != "" {
			errs = append(errs, apperr.FieldError{
				Field:   fmt.Sprintf("movies[%d].id", index),
				Message: fmt.Sprintf("Duplicates movies[%d]", previous),
			})
		}
		seen[entry.ID] = index

		problems = append(problems, errs...)
		entries = append(entries, entry)
	}

	if len(problems) > 0 {
		return nil, apperr.ValidationError("Import document is invalid", problems...)
	}
	return entries, nil
}

func normalizeRecord(index int, record map[string]json.RawMessage, now time.Time) (Entry, []apperr.FieldError) {
	var problems []apperr.FieldError
	fail := func(key, message string) {
		problems = append(problems, apperr.FieldError{
			Field:   fmt.Sprintf("movies[%d].%s", index, key),
			Message: message,
		})
	}

	entry := Entry{}
	present := make(map[string]bool)

	if raw, ok := record["id"]; ok && !isNull(raw) {
		var value any
		_ = json.Unmarshal(raw, &value)
		id, ok := convert.String(value)
		if !ok || strings.TrimSpace(id) == "" {
			fail("id", "Must be a non-empty string")
		}
		entry.ID = strings.TrimSpace(id)
	}
	if entry.ID == "" {
		entry.ID = uuid.New()
	}
	entry.Columns = append(entry.Columns, movies.ID)
	entry.Values = append(entry.Values, entry.ID)

	for _, key := range slices.Sorted(maps.Keys(record)) {
		raw := record[key]
		spec, known := fields[key]
		if !known || isNull(raw) || present[spec.column] {
			continue
		}

		value, message := coerce(spec.kind, raw)
		if message != "" {
			fail(key, message)
			continue
		}

		switch spec.column {
		case movies.Title:
			entry.Title = strings.TrimSpace(value.(string))
			value = entry.Title
		case movies.Type:
			if value != string(catalog.TypeMovie) && value != string(catalog.TypeSeries) {
				fail(key, "Must be one of: movie, series")
				continue
			}
		case movies.Status:
			if value != string(catalog.StatusDraft) && value != string(catalog.StatusPublished) {
				fail(key, "Must be one of: draft, published")
				continue
			}
		}

		present[spec.column] = true
		entry.Columns = append(entry.Columns, spec.column)
		entry.Values = append(entry.Values, value)
	}

	if entry.Title == "" {
		fail("title", "Required")
	}

	for _, fallback := range defaults {
		if !present[fallback.column] {
			entry.Columns = append(entry.Columns, fallback.column)
			entry.Values = append(entry.Values, fallback.value)
		}
	}

	entry.Columns = append(entry.Columns, movies.UpdatedAt)
	entry.Values = append(entry.Values, now)

	return entry, problems
}

// coerce converts one raw value for a column kind, or returns a message.
func coerce(k kind, raw json.RawMessage) (any, string) {
	switch k {
	case kindList:
		var list catalog.StringList
		if err := list.UnmarshalJSON(raw); err != nil {
			return nil, "Must be a list of strings or a comma-separated string"
		}
		if list == nil {
			list = catalog.StringList{}
		}
		return list, ""

	case kindJSON:
		return []byte(raw), ""

	case kindCategory:
		var parts []string
		if err := json.Unmarshal(raw, &parts); err == nil {
			return strings.Join(parts, ", "), ""
		}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, "Must be valid JSON"
	}

	switch k {
	case kindInt:
		if n, ok := convert.Int(value); ok {
			return n, ""
		}
		return nil, "Must be a whole number"

	case kindFloat:
		if f, ok := convert.Float(value); ok {
			return f, ""
		}
		return nil, "Must be a number"

	case kindBool:
		if b, ok := convert.Bool(value); ok {
			return b, ""
		}
		return nil, "Must be true or false"

	case kindTime:
		text, _ := value.(string)
		at, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, "Must be an RFC 3339 timestamp"
		}
		return at, ""
	}

	if text, ok := convert.String(value); ok {
		return text, ""
	}
	return nil, "Must be a string"
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
