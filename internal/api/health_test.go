// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ycinema/internal/api"
)

/*
TestReadiness reports degraded when a dependency fails and includes the breaker state.
*/
func TestReadiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		deps   api.HealthDependencies
		status int
		body   []string
	}{
		{
			name:   "ready",
			deps:   api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy, BreakerState: func() string { return "closed" }},
			status: http.StatusOK,
			body:   []string{`"ready"`, `"catalog_breaker":"closed"`},
		},
		{
			name:   "database_down",
			deps:   api.HealthDependencies{CheckDatabase: broken, CheckCache: healthy},
			status: http.StatusServiceUnavailable,
			body:   []string{`"degraded"`, "connection refused"},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(tt.deps, logger)

			recorder := httptest.NewRecorder()
			readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.status, recorder.Code)
			for _, fragment := range tt.body {
				assert.Contains(t, recorder.Body.String(), fragment)
			}
		})
	}
}
