// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/tracing"
)

type stubDatabase struct{ err error }

func (s stubDatabase) Ping(context.Context) error { return s.err }

type stubSchema struct {
	version int64
	err     error
}

func (s stubSchema) GetDBVersion(context.Context) (int64, error) { return s.version, s.err }

func TestStatusEndpoint(t *testing.T) {
	testCases := []struct {
		name           string
		db             stubDatabase
		schema         stubSchema
		expectedCode   int
		expectedStatus string
		expectedSchema int64
	}{
		{
			name:           "healthy",
			schema:         stubSchema{version: 20260101000000},
			expectedCode:   http.StatusOK,
			expectedStatus: "ok",
			expectedSchema: 20260101000000,
		},
		{
			name:           "database unreachable",
			db:             stubDatabase{err: errors.New("connection refused")},
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "degraded",
		},
		{
			name:           "version table unreadable",
			schema:         stubSchema{err: errors.New("relation \"goose_db_version\" does not exist")},
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "degraded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux := chi.NewMux()
			NewAPI(tc.db, tc.schema, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("oi-test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status code %d, got %d", tc.expectedCode, w.Code)
			}

			var s Status
			if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if s.Status != tc.expectedStatus {
				t.Errorf("expected status %q, got %q", tc.expectedStatus, s.Status)
			}

			if s.SchemaVersion != tc.expectedSchema {
				t.Errorf("expected schema version %d, got %d", tc.expectedSchema, s.SchemaVersion)
			}
		})
	}
}
