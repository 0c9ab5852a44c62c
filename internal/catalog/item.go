// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the movie and series catalog.

It owns the catalog item model, its PostgreSQL repository, the public read path
with its static fallback document, and the admin content management use cases.

# Architecture

  - Item: one movie or series record, JSON-compatible with the public site.
  - Loader: remote read of published items behind a circuit breaker, falling
    back to a bundled JSON document on error or empty result.
  - Service: admin CRUD, curation toggles and dashboard counts.
*/
package catalog

import (
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/taibuivan/ycinema/pkg/query"
)

// # Enumerations

// Type distinguishes films from episodic content.
type Type string

const (
	TypeMovie  Type = "movie"
	TypeSeries Type = "series"
)

// Status gates public visibility. Drafts are only visible in the console.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// # Domain Entities

// Item is one movie or series record.
//
// JSON names follow the public site's document format, which is also the
// format of the static fallback document and of bulk import files.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        Type    `json:"type"`
	Status      Status  `json:"status"`
	Year        int     `json:"year,omitempty"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`

	FrontImage    string `json:"frontImage,omitempty"`
	BackImage     string `json:"backImage,omitempty"`
	CarouselImage string `json:"carouselImage,omitempty"`
	WatchLink     string `json:"watchLink,omitempty"`

	Featured     bool `json:"featured"`
	IsNewRelease bool `json:"isNewRelease"`
	IsPopular    bool `json:"isPopular"`
	Top10        bool `json:"top10"`
	Top10Order   int  `json:"top10_order"`

	Director string     `json:"director,omitempty"`
	Cast     StringList `json:"cast"`
	Writers  StringList `json:"writers,omitempty"`
	Awards   StringList `json:"awards,omitempty"`

	Certification string          `json:"certification,omitempty"`
	Duration      string          `json:"duration,omitempty"`
	Language      string          `json:"language,omitempty"`
	Country       string          `json:"country,omitempty"`
	ReleaseDate   string          `json:"releaseDate,omitempty"`
	Seasons       json.RawMessage `json:"seasons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Genres splits the comma-joined category string into trimmed, non-empty parts.
func (item *Item) Genres() []string {
	return query.StringSlice(item.Category)
}

// PrimaryGenre returns the first genre lowercased, or "" when the category is empty.
func (item *Item) PrimaryGenre() string {
	genres := item.Genres()
	if len(genres) == 0 {
		return ""
	}
	return strings.ToLower(genres[0])
}

// HasCategory reports whether the category string contains needle, ignoring case.
func (item *Item) HasCategory(needle string) bool {
	return strings.Contains(strings.ToLower(item.Category), strings.ToLower(needle))
}

// IsPublic reports whether the item may be shown on the public site.
// Items without a status (older fallback documents) count as published.
func (item *Item) IsPublic() bool {
	return item.Status != StatusDraft
}

// # Read Models

// Summary is the slim projection used by dashboard and settings lists.
type Summary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Type       Type      `json:"type"`
	Status     Status    `json:"status"`
	Category   string    `json:"category"`
	Featured   bool      `json:"featured"`
	Top10      bool      `json:"top10"`
	Top10Order int       `json:"top10_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// Stats holds the dashboard counters.
type Stats struct {
	Total  int `json:"total"`
	Movies int `json:"movies"`
	Series int `json:"series"`
}

// Dashboard is the admin landing page payload.
type Dashboard struct {
	Stats  Stats      `json:"stats"`
	Recent []*Summary `json:"recent"`
}

// ListFilter narrows the admin content list.
type ListFilter struct {
	// Query is a case-insensitive title substring.
	Query string
	// Type is "all", "movie" or "series". Empty means all.
	Type string
}

// # Field Identifiers

const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldType       = "type"
	FieldStatus     = "status"
	FieldYear       = "year"
	FieldRating     = "rating"
	FieldTop10Order = "top10_order"
	FieldFrontImage = "frontImage"
	FieldBackImage  = "backImage"
	FieldCarousel   = "carouselImage"
	FieldWatchLink  = "watchLink"
)
