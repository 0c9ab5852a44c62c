// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/browse"
	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/homepage"
)

type staticLoader struct {
	snapshot catalog.Snapshot
}

func (loader staticLoader) Load(context.Context) catalog.Snapshot {
	return loader.snapshot
}

type staticLayout []homepage.Section

func (layout staticLayout) Layout(context.Context) []homepage.Section {
	return layout
}

func catalogFixture() []*catalog.Item {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []*catalog.Item{
		{ID: "dune", Title: "Dune", Category: "Sci-Fi, Drama", Cast: catalog.StringList{"Timothée Chalamet", "Zendaya"}, Top10: true, Top10Order: 2, IsNewRelease: true, CreatedAt: base},
		{ID: "arrival", Title: "Arrival", Category: "Sci-Fi", Top10: true, Top10Order: 1, CreatedAt: base.Add(time.Hour)},
		{ID: "raid", Title: "The Raid", Category: "Action", Featured: true, IsNewRelease: true, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func serve(t *testing.T, handler *browse.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	if out != nil && recorder.Code == http.StatusOK {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return recorder
}

type personView struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func newHandler(layout staticLayout) *browse.Handler {
	loader := staticLoader{snapshot: catalog.Snapshot{Items: catalogFixture(), Source: catalog.SourceFallback}}
	return browse.NewHandler(loader, layout)
}

/*
TestHandler_List reports the snapshot source.
*/
func TestHandler_List(t *testing.T) {
	var items []catalog.Item
	recorder := serve(t, newHandler(nil), "/", &items)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, catalog.SourceFallback, recorder.Header().Get(browse.HeaderCatalogSource))
	assert.Len(t, items, 3)
}

/*
TestHandler_Featured returns flagged items only.
*/
func TestHandler_Featured(t *testing.T) {
	var items []catalog.Item
	serve(t, newHandler(nil), "/featured", &items)

	require.Len(t, items, 1)
	assert.Equal(t, "raid", items[0].ID)
}

/*
TestHandler_Search returns the three buckets.
*/
func TestHandler_Search(t *testing.T) {
	var result struct {
		Titles []catalog.Item   `json:"titles"`
		People []personView     `json:"people"`
		Genres []map[string]any `json:"genres"`
	}
	serve(t, newHandler(nil), "/search?q=zen", &result)

	assert.Empty(t, result.Titles)
	require.Len(t, result.People, 1)
	assert.Equal(t, "Zendaya", result.People[0].Name)
	assert.Equal(t, "Actor", result.People[0].Role)
	assert.Empty(t, result.Genres)

	recorder := serve(t, newHandler(nil), "/search", nil)
	assert.JSONEq(t, `{"data": {"titles": [], "people": [], "genres": []}}`, recorder.Body.String())
}

/*
TestHandler_Sections resolves visible rows in layout order.
*/
func TestHandler_Sections(t *testing.T) {
	layout := staticLayout{
		{ID: "top10", Title: "Top 10", Type: homepage.TypeTop10, Visible: true},
		{ID: "hidden", Title: "Hidden", Type: homepage.TypeNew, Visible: false},
		{ID: "scifi", Title: "Sci-Fi", Type: "sci-fi", Visible: true},
	}

	var views []struct {
		ID    string         `json:"id"`
		Title string         `json:"title"`
		Items []catalog.Item `json:"items"`
	}
	serve(t, newHandler(layout), "/sections", &views)

	require.Len(t, views, 2)
	assert.Equal(t, "top10", views[0].ID)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, "arrival", views[0].Items[0].ID)
	assert.Equal(t, "dune", views[0].Items[1].ID)
	assert.Equal(t, "scifi", views[1].ID)
	assert.Len(t, views[1].Items, 2)
}

/*
TestHandler_Category lists a whole category with its heading.
*/
func TestHandler_Category(t *testing.T) {
	var view browse.CategoryView
	serve(t, newHandler(nil), "/categories/new", &view)

	assert.Equal(t, "New Movies", view.Title)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "raid", view.Items[0].ID)
}

/*
TestHandler_Item covers detail and related lookups.
*/
func TestHandler_Item(t *testing.T) {
	var item catalog.Item
	serve(t, newHandler(nil), "/items/dune", &item)
	assert.Equal(t, "Dune", item.Title)

	var related []catalog.Item
	serve(t, newHandler(nil), "/items/dune/related", &related)
	require.Len(t, related, 1)
	assert.Equal(t, "arrival", related[0].ID)

	assert.Equal(t, http.StatusNotFound, serve(t, newHandler(nil), "/items/ghost", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, newHandler(nil), "/items/ghost/related", nil).Code)
}
