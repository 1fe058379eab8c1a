// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`

	Port int `envconfig:"port" default:"8080"`

	// DatabaseURL is not marked required, the --dsn flag may provide it instead.
	DatabaseURL string `envconfig:"database_url"`
	DBTLSMode   string `envconfig:"db_tls_mode" default:"strict"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"4"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"0"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	BcryptCost int `envconfig:"bcrypt_cost" default:"12"`
}
