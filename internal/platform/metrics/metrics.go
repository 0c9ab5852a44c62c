// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics exposes the Prometheus collectors shared by the API server.
//
// Collectors are registered on the default registry at package init and are
// served by [Handler] on GET /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsTotal counts finished requests.
	// Labels: method, route (chi pattern), status.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ycinema_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ycinema_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// catalogLoadsTotal counts public catalog loads by the source that served them.
	// Labels: source ("remote", "fallback", "none").
	catalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ycinema_catalog_loads_total",
			Help: "Catalog loads partitioned by serving source",
		},
		[]string{"source"},
	)

	// catalogBreakerState mirrors the remote-read circuit breaker.
	// 0 = closed, 1 = half-open, 2 = open.
	catalogBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ycinema_catalog_breaker_state",
			Help: "State of the catalog read circuit breaker",
		},
		[]string{"name"},
	)

	importedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ycinema_import_items_total",
			Help: "Catalog items written by bulk imports",
		},
		[]string{"origin"},
	)
)

// ObserveHTTPRequest records one finished request.
func ObserveHTTPRequest(method, route, status string, latency time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// RecordCatalogLoad increments the load counter for source.
func RecordCatalogLoad(source string) {
	catalogLoadsTotal.WithLabelValues(source).Inc()
}

// SetBreakerState publishes the numeric breaker state.
func SetBreakerState(name string, state int) {
	catalogBreakerState.WithLabelValues(name).Set(float64(state))
}

// AddImportedItems adds count to the import counter. Origin is "cli" or "api".
func AddImportedItems(origin string, count int) {
	importedItemsTotal.WithLabelValues(origin).Add(float64(count))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
