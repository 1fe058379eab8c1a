// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
)

func TestEnvSpecDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://oi:oi@localhost:5432/oi")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.DatabaseURL != "postgres://oi:oi@localhost:5432/oi" {
		t.Errorf("unexpected database url %q", specs.DatabaseURL)
	}

	if specs.DBTLSMode != "strict" {
		t.Errorf("expected strict tls mode by default, got %q", specs.DBTLSMode)
	}

	if specs.BcryptCost != 12 {
		t.Errorf("expected bcrypt cost 12, got %d", specs.BcryptCost)
	}

	if specs.DBMaxConnLifetime != time.Hour {
		t.Errorf("expected 1h max conn lifetime, got %v", specs.DBMaxConnLifetime)
	}

	if specs.TracingEnabled {
		t.Error("expected tracing to be disabled by default")
	}
}

func TestEnvSpecOverrides(t *testing.T) {
	t.Setenv("DB_TLS_MODE", "permissive")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.DBTLSMode != "permissive" {
		t.Errorf("expected permissive tls mode, got %q", specs.DBTLSMode)
	}

	if specs.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %q", specs.LogLevel)
	}

	if specs.Port != 9090 {
		t.Errorf("expected port 9090, got %d", specs.Port)
	}
}
