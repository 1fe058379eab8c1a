// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/outbound-impact/internal/config"
	"github.com/canonical/outbound-impact/internal/db"
	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/monitoring/prometheus"
	"github.com/canonical/outbound-impact/internal/storage"
	"github.com/canonical/outbound-impact/internal/tracing"
)

const serviceName = "outbound-impact"

var errMissingDSN = errors.New("no database connection string, set DATABASE_URL or pass --dsn")

// app holds the resources a command needs once its arguments are known to be valid.
type app struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	tracer  *tracing.Tracer
	monitor monitoring.MonitorInterface

	dbClient *db.DBClient
	storage  *storage.Storage
}

// Close releases the pool and flushes telemetry, it runs on every exit path of a command.
func (a *app) Close() {
	if a.dbClient != nil {
		a.dbClient.Close()
	}

	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			a.logger.Debugf("failed to flush traces: %v", err)
		}
	}

	_ = a.logger.Sync()
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if dsnFlag != "" {
		specs.DatabaseURL = dsnFlag
	}

	if tlsModeFlag != "" {
		specs.DBTLSMode = tlsModeFlag
	}

	return specs, nil
}

func newApp(ctx context.Context) (*app, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	if specs.DatabaseURL == "" {
		return nil, errMissingDSN
	}

	tlsMode, err := db.ParseTLSMode(specs.DBTLSMode)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)

	a := &app{specs: specs, logger: logger}
	a.monitor = prometheus.NewMonitor(serviceName, logger)
	a.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, serviceName, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	if tlsMode == db.TLSModePermissive {
		logger.Warn("database certificate validation is disabled (tls mode permissive)")
	}

	dbClient, err := db.NewDBClient(
		ctx,
		db.Config{
			DSN:             specs.DatabaseURL,
			TLSMode:         tlsMode,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		a.tracer,
		a.monitor,
		logger,
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.dbClient = dbClient
	a.storage = storage.NewStorage(dbClient, a.tracer, a.monitor, logger)

	return a, nil
}

// connect is swapped in tests to prove usage errors never reach the database.
var connect = newApp

func validFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q, must be text or json", format)
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
