// Copyright (c) 2026 YCinema. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ycinema/internal/platform/ctxutil"
	"github.com/taibuivan/ycinema/internal/platform/middleware"
	"github.com/taibuivan/ycinema/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

type stubConfig struct{ development bool }

func (c stubConfig) IsDevelopment() bool  { return c.development }
func (c stubConfig) OriginSuffix() string { return "ycinema.app" }

func newGuardedRouter(role sec.UserRole) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(stubVerifier{claims: &sec.AuthClaims{UserID: "u1", Role: "editor"}}))
	router.With(middleware.RequireRole(role)).Get("/admin", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.GetAuthUser(request.Context()).UserID))
	})
	return router
}

/*
TestRequireRole covers anonymous, malformed, insufficient and sufficient callers.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		header string
		role   sec.UserRole
		status int
	}{
		{"anonymous", "", sec.RoleEditor, http.StatusUnauthorized},
		{"malformed_header", "Token good", sec.RoleEditor, http.StatusUnauthorized},
		{"invalid_token", "Bearer nope", sec.RoleEditor, http.StatusUnauthorized},
		{"insufficient_role", "Bearer good", sec.RoleAdmin, http.StatusForbidden},
		{"allowed", "Bearer good", sec.RoleEditor, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			newGuardedRouter(tt.role).ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestRateLimiter_Allow verifies that the burst is enforced per IP.
*/
func TestRateLimiter_Allow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 0.0001, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))

	handler := limiter.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Real-IP", "10.0.0.1")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get("Retry-After"))
}

/*
TestCORS verifies production origin filtering and preflight handling.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(stubConfig{})(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
	}))

	allowed := httptest.NewRequest(http.MethodOptions, "/api/v1/catalog", nil)
	allowed.Header.Set("Origin", "https://admin.ycinema.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, allowed)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://admin.ycinema.app", recorder.Header().Get("Access-Control-Allow-Origin"))

	foreign := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	foreign.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, foreign)
	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestRequestID_PropagatesHeader verifies reuse of a caller supplied id.
*/
func TestRequestID_PropagatesHeader(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.NotEqual(t, "abc", seen)
}
