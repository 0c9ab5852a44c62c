// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package homepage

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ycinema/internal/platform/middleware"
	requestutil "github.com/taibuivan/ycinema/internal/platform/request"
	"github.com/taibuivan/ycinema/internal/platform/respond"
	"github.com/taibuivan/ycinema/internal/platform/sec"
)

// Handler serves the console settings endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new settings handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts under /admin/settings.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getSettings)
	router.With(middleware.RequireRole(sec.RoleAdmin)).Put("/", handler.saveSettings)

	return router
}

func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.Settings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) saveSettings(writer http.ResponseWriter, request *http.Request) {
	var input SettingsInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.SaveSettings(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	settings, err := handler.service.Settings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}
