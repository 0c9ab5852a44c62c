// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/taibuivan/ycinema/internal/platform/metrics"
)

// Snapshot sources.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
	SourceNone     = "none"
)

const breakerName = "catalog_store"

// FallbackSource supplies items when the store is unreachable or empty.
type FallbackSource interface {
	Load(context context.Context) ([]*Item, error)
}

// Snapshot is one loaded view of the public catalog.
type Snapshot struct {
	Items  []*Item
	Source string
}

// LoaderConfig tunes the circuit breaker around the store.
type LoaderConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// DefaultLoaderConfig trips after 3 consecutive failures and probes again after 30s.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{FailureThreshold: 3, OpenTimeout: 30 * time.Second}
}

// Loader fetches published items from the store and falls back to the
// bundled document on error or empty result.
//
// While the breaker is open, the store is not queried at all.
type Loader struct {
	remote   PublishedReader
	fallback FallbackSource
	breaker  *gobreaker.CircuitBreaker[[]*Item]
	logger   *slog.Logger
}

// NewLoader creates a new catalog loader. remote may be nil, in which case
// only the fallback is used.
func NewLoader(remote PublishedReader, fallback FallbackSource, cfg LoaderConfig, logger *slog.Logger) *Loader {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// A client that went away says nothing about the store.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog_breaker_state_changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.SetBreakerState(name, int(to))
		},
	}

	return &Loader{
		remote:   remote,
		fallback: fallback,
		breaker:  gobreaker.NewCircuitBreaker[[]*Item](settings),
		logger:   logger,
	}
}

/*
Load returns the public catalog.

It never fails: when both the store and the fallback document are
unavailable, the snapshot is empty with [SourceNone].
*/
func (loader *Loader) Load(context context.Context) Snapshot {
	if loader.remote != nil {
		items, err := loader.breaker.Execute(func() ([]*Item, error) {
			return loader.remote.ListPublished(context)
		})

		if err == nil && len(items) > 0 {
			metrics.RecordCatalogLoad(SourceRemote)
			return Snapshot{Items: items, Source: SourceRemote}
		}

		reason := "empty"
		if err != nil {
			reason = err.Error()
		}
		loader.logger.WarnContext(context, "catalog_fallback_used", slog.String("reason", reason))
	}

	items, err := loader.fallback.Load(context)
	if err != nil {
		loader.logger.ErrorContext(context, "catalog_fallback_failed", slog.Any("error", err))
		metrics.RecordCatalogLoad(SourceNone)
		return Snapshot{Items: []*Item{}, Source: SourceNone}
	}

	metrics.RecordCatalogLoad(SourceFallback)
	return Snapshot{Items: items, Source: SourceFallback}
}

// BreakerState reports the current breaker state for readiness output.
func (loader *Loader) BreakerState() string {
	return loader.breaker.State().String()
}
