// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browse serves the public catalog: the full list, the hero carousel,
search, homepage rows, category views and item details.

Every request reads one [catalog.Snapshot] and derives its response from it
in memory. Drafts never reach a snapshot.
*/
package browse

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ycinema/internal/catalog"
	"github.com/taibuivan/ycinema/internal/homepage"
	"github.com/taibuivan/ycinema/internal/platform/apperr"
	requestutil "github.com/taibuivan/ycinema/internal/platform/request"
	"github.com/taibuivan/ycinema/internal/platform/respond"
	"github.com/taibuivan/ycinema/internal/search"
)

// HeaderCatalogSource tells clients which source served the catalog.
const HeaderCatalogSource = "X-Catalog-Source"

// CatalogLoader supplies the public catalog.
type CatalogLoader interface {
	Load(context context.Context) catalog.Snapshot
}

// LayoutSource supplies the homepage section list.
type LayoutSource interface {
	Layout(context context.Context) []homepage.Section
}

// SectionView is one resolved homepage row.
type SectionView struct {
	homepage.Section
	Items []*catalog.Item `json:"items"`
}

// CategoryView is the full list behind a "view all" link.
type CategoryView struct {
	Category string          `json:"category"`
	Title    string          `json:"title"`
	Items    []*catalog.Item `json:"items"`
}

// Handler serves the public catalog endpoints.
type Handler struct {
	loader CatalogLoader
	layout LayoutSource
}

// NewHandler creates a new public catalog handler.
func NewHandler(loader CatalogLoader, layout LayoutSource) *Handler {
	return &Handler{loader: loader, layout: layout}
}

// Routes mounts under /catalog.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/featured", handler.featured)
	router.Get("/search", handler.search)
	router.Get("/sections", handler.sections)
	router.Get("/categories/{category}", handler.category)
	router.Get("/items/{id}", handler.item)
	router.Get("/items/{id}/related", handler.related)

	return router
}

func (handler *Handler) snapshot(writer http.ResponseWriter, request *http.Request) []*catalog.Item {
	snapshot := handler.loader.Load(request.Context())
	writer.Header().Set(HeaderCatalogSource, snapshot.Source)
	return snapshot.Items
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.snapshot(writer, request))
}

func (handler *Handler) featured(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, catalog.Featured(handler.snapshot(writer, request)))
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	text := requestutil.Query(request, "q")
	if text == "" {
		respond.OK(writer, search.Empty())
		return
	}

	result := search.Run(text, handler.snapshot(writer, request))
	respond.OK(writer, result.Truncate(search.DisplayLimit))
}

func (handler *Handler) sections(writer http.ResponseWriter, request *http.Request) {
	items := handler.snapshot(writer, request)

	visible := homepage.Visible(handler.layout.Layout(request.Context()))
	views := make([]SectionView, 0, len(visible))
	for _, section := range visible {
		views = append(views, SectionView{
			Section: section,
			Items:   homepage.Resolve(section.Type, items),
		})
	}

	respond.OK(writer, views)
}

func (handler *Handler) category(writer http.ResponseWriter, request *http.Request) {
	category := requestutil.ID(request, "category")

	respond.OK(writer, CategoryView{
		Category: category,
		Title:    homepage.CategoryTitle(category),
		Items:    homepage.FilterCategory(category, handler.snapshot(writer, request)),
	})
}

func (handler *Handler) item(writer http.ResponseWriter, request *http.Request) {
	item, ok := catalog.FindByID(handler.snapshot(writer, request), requestutil.ID(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Catalog item"))
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) related(writer http.ResponseWriter, request *http.Request) {
	items := handler.snapshot(writer, request)

	item, ok := catalog.FindByID(items, requestutil.ID(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Catalog item"))
		return
	}
	respond.OK(writer, catalog.Related(item, items))
}
