// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/catalog"
)

type stubReader struct {
	items []*catalog.Item
	err   error
	calls int
}

func (reader *stubReader) ListPublished(context.Context) ([]*catalog.Item, error) {
	reader.calls++
	return reader.items, reader.err
}

type stubFallback struct {
	items []*catalog.Item
	err   error
}

func (fallback *stubFallback) Load(context.Context) ([]*catalog.Item, error) {
	return fallback.items, fallback.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoader(remote catalog.PublishedReader, fallback catalog.FallbackSource) *catalog.Loader {
	return catalog.NewLoader(remote, fallback, catalog.LoaderConfig{FailureThreshold: 2, OpenTimeout: time.Minute}, discardLogger())
}

/*
TestLoader_Sources checks which source wins for each store outcome.
*/
func TestLoader_Sources(t *testing.T) {
	stored := []*catalog.Item{{ID: "db"}}
	bundled := []*catalog.Item{{ID: "file"}}

	tests := []struct {
		name     string
		remote   *stubReader
		fallback *stubFallback
		source   string
		expected string
	}{
		{"store_has_items", &stubReader{items: stored}, &stubFallback{items: bundled}, catalog.SourceRemote, "db"},
		{"store_empty", &stubReader{items: []*catalog.Item{}}, &stubFallback{items: bundled}, catalog.SourceFallback, "file"},
		{"store_error", &stubReader{err: errors.New("connection refused")}, &stubFallback{items: bundled}, catalog.SourceFallback, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := newLoader(tt.remote, tt.fallback).Load(context.Background())

			assert.Equal(t, tt.source, snapshot.Source)
			require.Len(t, snapshot.Items, 1)
			assert.Equal(t, tt.expected, snapshot.Items[0].ID)
		})
	}
}

/*
TestLoader_BothFail yields an empty catalog instead of an error.
*/
func TestLoader_BothFail(t *testing.T) {
	loader := newLoader(&stubReader{err: errors.New("down")}, &stubFallback{err: errors.New("missing")})

	snapshot := loader.Load(context.Background())
	assert.Equal(t, catalog.SourceNone, snapshot.Source)
	assert.NotNil(t, snapshot.Items)
	assert.Empty(t, snapshot.Items)
}

/*
TestLoader_BreakerOpens stops querying the store after repeated failures.
*/
func TestLoader_BreakerOpens(t *testing.T) {
	remote := &stubReader{err: errors.New("timeout")}
	loader := newLoader(remote, &stubFallback{items: []*catalog.Item{{ID: "file"}}})

	for range 5 {
		assert.Equal(t, catalog.SourceFallback, loader.Load(context.Background()).Source)
	}

	assert.Equal(t, 2, remote.calls)
	assert.Equal(t, "open", loader.BreakerState())
}

/*
TestLoader_NoRemote serves the fallback only.
*/
func TestLoader_NoRemote(t *testing.T) {
	loader := newLoader(nil, &stubFallback{items: []*catalog.Item{{ID: "file"}}})
	assert.Equal(t, catalog.SourceFallback, loader.Load(context.Background()).Source)
}

/*
TestFileFallback_Load reads the bundled document and hides drafts.
*/
func TestFileFallback_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	document := `{"movies": [
		{"id": "1", "title": "Dune", "cast": "[\"Zendaya\"]"},
		{"id": "2", "title": "Secret", "status": "draft"},
		{"id": "3", "title": "Dark", "type": "series", "status": "published", "cast": "Louis Hofmann, Lisa Vicari"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	items, err := catalog.NewFileFallback(path, discardLogger()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Dune", items[0].Title)
	assert.Equal(t, catalog.StringList{"Zendaya"}, items[0].Cast)
	assert.Equal(t, catalog.TypeSeries, items[1].Type)
	assert.Equal(t, catalog.StringList{"Louis Hofmann", "Lisa Vicari"}, items[1].Cast)
}

/*
TestFileFallback_LooseScalars coerces string scalars and skips only undecodable records.
*/
func TestFileFallback_LooseScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	document := `{"movies": [
		{"id": "1", "title": "Dune", "year": "2024", "rating": "8.1", "featured": "true"},
		{"id": "2", "title": "Dark"},
		{"id": 3, "title": "Arrival", "top10": 1, "top10_order": "2"},
		{"id": "4", "title": "Broken", "cast": {"lead": "nobody"}},
		null
	]}`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	snapshot := newLoader(nil, catalog.NewFileFallback(path, discardLogger())).Load(context.Background())
	require.Equal(t, catalog.SourceFallback, snapshot.Source)
	require.Len(t, snapshot.Items, 3)

	dune, dark, arrival := snapshot.Items[0], snapshot.Items[1], snapshot.Items[2]

	assert.Equal(t, 2024, dune.Year)
	assert.InDelta(t, 8.1, dune.Rating, 0.0001)
	assert.True(t, dune.Featured)

	assert.Equal(t, "Dark", dark.Title)

	assert.Equal(t, "3", arrival.ID)
	assert.True(t, arrival.Top10)
	assert.Equal(t, 2, arrival.Top10Order)
}

/*
TestFileFallback_Errors reports unreadable and malformed documents.
*/
func TestFileFallback_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := catalog.NewFileFallback(filepath.Join(dir, "absent.json"), discardLogger()).Load(context.Background())
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"movies": [`), 0o600))
	_, err = catalog.NewFileFallback(broken, discardLogger()).Load(context.Background())
	assert.Error(t, err)
}

/*
TestFileFallback_BundledDocument keeps the shipped document loadable.
*/
func TestFileFallback_BundledDocument(t *testing.T) {
	items, err := catalog.NewFileFallback("../../data/movies.json", discardLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
	}
}
