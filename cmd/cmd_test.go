// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dsnFlag, tlsModeFlag, formatFlag = "", "", "text"

	var reset func(*cobra.Command)
	reset = func(c *cobra.Command) {
		c.SilenceUsage = false
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// forbidConnect fails the test if a command reaches the database.
func forbidConnect(t *testing.T) {
	t.Helper()

	original := connect
	connect = func(context.Context) (*app, error) {
		t.Error("database connection attempted")
		return nil, errors.New("unexpected connection")
	}
	t.Cleanup(func() { connect = original })
}

func TestUsageErrorsNeverConnect(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "create-admin unknown role",
			args:        []string{"create-admin", "ops@example.com", "Secret123!", "Ops Person", "root"},
			errContains: "must be one of analyst, admin, super_admin",
		},
		{
			name:        "create-admin missing full name",
			args:        []string{"create-admin", "ops@example.com", "Secret123!"},
			errContains: "expected 3 or 4 arguments",
		},
		{
			name:        "create-admin no arguments",
			args:        []string{"create-admin"},
			errContains: "expected 3 or 4 arguments",
		},
		{
			name:        "create-admin malformed email",
			args:        []string{"create-admin", "ops", "Secret123!", "Ops Person"},
			errContains: "not a valid email address",
		},
		{
			name:        "create-admin password over the bcrypt limit",
			args:        []string{"create-admin", "ops@example.com", strings.Repeat("x", 80), "Ops Person"},
			errContains: "at most 72 bytes",
		},
		{
			name:        "create-admin unknown format",
			args:        []string{"create-admin", "ops@example.com", "Secret123!", "Ops Person", "--format", "yaml"},
			errContains: "invalid output format",
		},
		{
			name:        "migrate down is not supported",
			args:        []string{"migrate", "down"},
			errContains: "invalid first argument",
		},
		{
			name:        "migrate too many arguments",
			args:        []string{"migrate", "up", "1"},
			errContains: "accepts between 0 and 1 arg(s)",
		},
		{
			name:        "org create unknown plan",
			args:        []string{"org", "create", "Acme", "billing@acme.test", "gold"},
			errContains: "invalid input",
		},
		{
			name:        "org set-status malformed id",
			args:        []string{"org", "set-status", "org-1", "suspended"},
			errContains: "not a valid UUID",
		},
		{
			name:        "org get malformed id",
			args:        []string{"org", "get", "42"},
			errContains: "not a valid UUID",
		},
		{
			name:        "org set-status unknown status",
			args:        []string{"org", "set-status", "0192f0e0-7c1a-7000-8000-00000000a001", "deleted"},
			errContains: "must be one of active, suspended, cancelled",
		},
		{
			name:        "admins list extra argument",
			args:        []string{"admins", "list", "everyone"},
			errContains: "unknown command",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			forbidConnect(t)

			out, err := execute(t, tc.args...)
			if err == nil {
				t.Fatal("expected a usage error")
			}

			if !strings.Contains(err.Error(), tc.errContains) {
				t.Errorf("expected error to contain %q, got %q", tc.errContains, err.Error())
			}

			if !strings.Contains(out, "Usage:") {
				t.Errorf("expected usage text, got %q", out)
			}

			if strings.Contains(out, "Secret123!") {
				t.Error("output leaked the password")
			}
		})
	}
}

func TestRuntimeErrorsSkipUsage(t *testing.T) {
	original := connect
	connect = func(context.Context) (*app, error) {
		return nil, errors.New("failed to connect to the database: dial tcp 127.0.0.1:5432: connect: connection refused")
	}
	t.Cleanup(func() { connect = original })

	out, err := execute(t, "create-admin", "ops@example.com", "Secret123!", "Ops Person")
	if err == nil {
		t.Fatal("expected a connection error")
	}

	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected the database error to be reported, got %q", out)
	}

	if strings.Contains(out, "Usage:") {
		t.Errorf("runtime failures should not print usage, got %q", out)
	}
}

func TestMissingDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := execute(t, "migrate", "status")
	if !errors.Is(err, errMissingDSN) {
		t.Errorf("expected errMissingDSN, got %v", err)
	}
}

func TestInvalidTLSMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://oi:oi@localhost:5432/oi")
	t.Setenv("DB_TLS_MODE", "relaxed")

	_, err := execute(t, "migrate", "check")
	if err == nil || !strings.Contains(err.Error(), "invalid tls mode") {
		t.Errorf("expected invalid tls mode error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "App Version: dev") {
		t.Errorf("unexpected version output %q", out)
	}
}
