// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/tracing"
	"github.com/canonical/outbound-impact/internal/version"
)

const (
	okValue       = "ok"
	degradedValue = "degraded"

	probeTimeout = 2 * time.Second
)

type Status struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	SchemaVersion int64  `json:"schema_version"`
	BuildInfo     string `json:"version"`
}

type API struct {
	db     DatabaseInterface
	schema SchemaVersionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	s := Status{Status: okValue, Database: okValue, BuildInfo: version.Version}
	code := http.StatusOK

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		s.Status = degradedValue
		s.Database = err.Error()
		code = http.StatusServiceUnavailable
	} else if v, err := a.schema.GetDBVersion(ctx); err != nil {
		a.logger.Errorf("failed to read schema version: %v", err)
		s.Status = degradedValue
		code = http.StatusServiceUnavailable
	} else {
		s.SchemaVersion = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(s); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

func NewAPI(db DatabaseInterface, schema SchemaVersionInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.schema = schema

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
