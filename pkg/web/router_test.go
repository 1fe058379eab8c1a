// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/tracing"
)

type stubDatabase struct{}

func (stubDatabase) Ping(context.Context) error { return nil }

type stubSchema struct{}

func (stubSchema) GetDBVersion(context.Context) (int64, error) { return 20260101000000, nil }

func TestNewRouter(t *testing.T) {
	router := NewRouter(stubDatabase{}, stubSchema{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("oi-test"), logging.NewNoopLogger())

	testCases := []struct {
		name         string
		method       string
		path         string
		expectedCode int
	}{
		{name: "status", method: http.MethodGet, path: "/api/v0/status", expectedCode: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/api/v0/metrics", expectedCode: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v0/tenants", expectedCode: http.StatusNotFound},
		{name: "write method", method: http.MethodPost, path: "/api/v0/status", expectedCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != tc.expectedCode {
				t.Errorf("expected status code %d, got %d", tc.expectedCode, w.Code)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(stubDatabase{}, stubSchema{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("oi-test"), logging.NewNoopLogger())

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/status", nil)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard allow origin, got %q", got)
	}
}
