// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/ycinema/internal/platform/metrics"
)

// Import origins, used as a metrics label.
const (
	OriginCLI  = "cli"
	OriginHTTP = "http"
)

// Result summarizes a completed import.
type Result struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// Service runs bulk imports and connectivity checks.
type Service struct {
	writer    Writer
	inspector Inspector
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new import service.
func NewService(writer Writer, inspector Inspector, logger *slog.Logger) *Service {
	return &Service{writer: writer, inspector: inspector, logger: logger, now: time.Now}
}

/*
ImportDocument decodes, normalizes and upserts a whole document.

The import is all-or-nothing: a single invalid record rejects the document
before anything is written.

Parameters:
  - context: context.Context
  - data: []byte (the raw document)
  - origin: string (OriginCLI or OriginHTTP)

Returns:
  - *Result: Imported IDs in document order
  - error: Validation or storage failures
*/
func (service *Service) ImportDocument(context context.Context, data []byte, origin string) (*Result, error) {
	records, err := Decode(data)
	if err != nil {
		return nil, err
	}

	entries, err := Normalize(records, service.now().UTC())
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "import_started",
		slog.Int("items", len(entries)),
		slog.String("origin", origin),
	)

	if err := service.writer.UpsertEntries(context, entries); err != nil {
		return nil, err
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}

	metrics.AddImportedItems(origin, len(entries))
	service.logger.InfoContext(context, "import_completed",
		slog.Int("items", len(entries)),
		slog.String("origin", origin),
	)

	return &Result{Count: len(entries), IDs: ids}, nil
}

// Verify reports row counts and a sample title.
func (service *Service) Verify(context context.Context) (*Report, error) {
	return service.inspector.Inspect(context)
}
