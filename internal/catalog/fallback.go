// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/taibuivan/ycinema/pkg/convert"
)

// rawDocument is the static catalog document format: {"movies": [...]}.
// Records are decoded one by one so a bad record cannot sink the rest.
type rawDocument struct {
	Movies []json.RawMessage `json:"movies"`
}

// Scalar fields that hand-edited documents write as strings, numbers or booleans.
var (
	looseInts   = []string{FieldYear, FieldTop10Order}
	looseFloats = []string{FieldRating}
	looseBools  = []string{"featured", "isNewRelease", "isPopular", "top10"}
	looseText   = []string{FieldID, FieldTitle}
)

// FileFallback serves the bundled catalog document from disk.
type FileFallback struct {
	path   string
	logger *slog.Logger
}

// NewFileFallback creates a fallback source reading the document at path.
func NewFileFallback(path string, logger *slog.Logger) *FileFallback {
	return &FileFallback{path: path, logger: logger}
}

// Path returns the location of the document.
func (fallback *FileFallback) Path() string {
	return fallback.path
}

/*
Load reads the document and returns its public items in file order.

Description: Loosely typed scalars ("2024", "8.1", "true") are coerced.
A record that still does not decode is skipped and logged.

Parameters:
  - context: context.Context

Returns:
  - []*Item: Public items
  - error: Unreadable file or a document that is not {"movies": [...]}
*/
func (fallback *FileFallback) Load(context context.Context) ([]*Item, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fallback.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read fallback document: %w", err)
	}

	var document rawDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("catalog: decode fallback document %s: %w", fallback.path, err)
	}

	items := make([]*Item, 0, len(document.Movies))
	for index, raw := range document.Movies {
		item, err := decodeLenient(raw)
		if err != nil {
			fallback.logger.Warn("catalog_fallback_record_skipped",
				slog.String("path", fallback.path),
				slog.Int("index", index),
				slog.Any("error", err),
			)
			continue
		}
		if item != nil && item.IsPublic() {
			items = append(items, item)
		}
	}

	return items, nil
}

// decodeLenient decodes one record, coercing loose scalars on a second pass.
// A null record yields a nil item.
func decodeLenient(raw json.RawMessage) (*Item, error) {
	var item *Item
	if err := json.Unmarshal(raw, &item); err == nil {
		return item, nil
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("catalog: record is not an object: %w", err)
	}

	coerce(fields, looseInts, func(value any) (any, bool) { return convert.Int(value) })
	coerce(fields, looseFloats, func(value any) (any, bool) { return convert.Float(value) })
	coerce(fields, looseBools, func(value any) (any, bool) { return convert.Bool(value) })
	coerce(fields, looseText, func(value any) (any, bool) { return convert.String(value) })

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	item = &Item{}
	if err := json.Unmarshal(normalized, item); err != nil {
		return nil, err
	}
	return item, nil
}

// coerce rewrites each present key through convert, dropping values it rejects.
func coerce(fields map[string]any, keys []string, to func(any) (any, bool)) {
	for _, key := range keys {
		value, present := fields[key]
		if !present || value == nil {
			continue
		}
		if converted, ok := to(value); ok {
			fields[key] = converted
		} else {
			delete(fields, key)
		}
	}
}
