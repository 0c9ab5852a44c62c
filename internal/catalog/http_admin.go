// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ycinema/internal/platform/middleware"
	requestutil "github.com/taibuivan/ycinema/internal/platform/request"
	"github.com/taibuivan/ycinema/internal/platform/respond"
	"github.com/taibuivan/ycinema/internal/platform/sec"
	"github.com/taibuivan/ycinema/pkg/pagination"
)

// AdminHandler serves the console content endpoints.
type AdminHandler struct {
	service *Service
}

// NewAdminHandler creates a new console content handler.
func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Routes mounts under /admin/content. Callers are already authenticated.
func (handler *AdminHandler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.create)
		editorRoute.Put("/{id}", handler.save)
		editorRoute.Delete("/{id}", handler.delete)
		editorRoute.Patch("/{id}/featured", handler.setFeatured)
		editorRoute.Patch("/{id}/top10", handler.setTop10)
	})

	return router
}

// DashboardHandler serves GET /admin/dashboard.
func (handler *AdminHandler) DashboardHandler(writer http.ResponseWriter, request *http.Request) {
	dashboard, err := handler.service.Dashboard(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dashboard)
}

func (handler *AdminHandler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := ListFilter{
		Query: requestutil.Query(request, "q"),
		Type:  requestutil.Query(request, "type"),
	}

	items, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *AdminHandler) get(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *AdminHandler) create(writer http.ResponseWriter, request *http.Request) {
	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *AdminHandler) save(writer http.ResponseWriter, request *http.Request) {
	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Save(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *AdminHandler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type featuredInput struct {
	Featured bool `json:"featured"`
}

func (handler *AdminHandler) setFeatured(writer http.ResponseWriter, request *http.Request) {
	var input featuredInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	if err := handler.service.SetFeatured(request.Context(), id, input.Featured); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"id": id, "featured": input.Featured})
}

type top10Input struct {
	Top10 bool `json:"top10"`
}

func (handler *AdminHandler) setTop10(writer http.ResponseWriter, request *http.Request) {
	var input top10Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")
	if err := handler.service.SetTop10(request.Context(), id, input.Top10); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"id": id, "top10": input.Top10})
}
