// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"io"
	"net/http"

	"github.com/taibuivan/ycinema/internal/platform/apperr"
	"github.com/taibuivan/ycinema/internal/platform/respond"
)

// MaxDocumentBytes caps an uploaded import document.
const MaxDocumentBytes = 10 << 20

// Handler serves POST /admin/import.
type Handler struct {
	service *Service
}

// NewHandler creates a new import handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ServeHTTP imports the request body as a catalog document.
func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, MaxDocumentBytes))
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("Document is too large or unreadable"))
		return
	}

	result, err := handler.service.ImportDocument(request.Context(), data, OriginHTTP)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
