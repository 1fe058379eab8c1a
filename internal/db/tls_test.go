// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestParseTLSMode(t *testing.T) {
	testCases := []struct {
		input    string
		expected TLSMode
		wantErr  bool
	}{
		{input: "", expected: TLSModeStrict},
		{input: "strict", expected: TLSModeStrict},
		{input: " Permissive ", expected: TLSModePermissive},
		{input: "disable", wantErr: true},
		{input: "insecure", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := ParseTLSMode(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tc.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if mode != tc.expected {
				t.Errorf("expected mode %q, got %q", tc.expected, mode)
			}
		})
	}
}

func TestApplyTLSMode_Strict(t *testing.T) {
	cfg, err := pgconn.ParseConfig("postgres://oi:oi@db.example.com:5432/oi?sslmode=require")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.TLSConfig.InsecureSkipVerify {
		t.Fatal("expected sslmode=require to skip verification before the mode is applied")
	}

	ApplyTLSMode(cfg, TLSModeStrict)

	if cfg.TLSConfig.InsecureSkipVerify {
		t.Error("expected strict mode to verify certificates")
	}

	if cfg.TLSConfig.ServerName != "db.example.com" {
		t.Errorf("expected server name db.example.com, got %q", cfg.TLSConfig.ServerName)
	}
}

func TestApplyTLSMode_StrictFallbacks(t *testing.T) {
	testCases := []struct {
		name              string
		dsn               string
		plaintextFallback bool
	}{
		{
			name:              "implicit sslmode keeps plaintext fallback",
			dsn:               "postgres://oi:oi@localhost:5432/oi",
			plaintextFallback: true,
		},
		{
			name:              "prefer keeps plaintext fallback",
			dsn:               "postgres://oi:oi@db.example.com:5432/oi?sslmode=prefer",
			plaintextFallback: true,
		},
		{
			name: "require has no plaintext fallback",
			dsn:  "postgres://oi:oi@db.example.com:5432/oi?sslmode=require",
		},
		{
			name: "verify-full has no plaintext fallback",
			dsn:  "postgres://oi:oi@db.example.com:5432/oi?sslmode=verify-full",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := pgconn.ParseConfig(tc.dsn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ApplyTLSMode(cfg, TLSModeStrict)

			if cfg.TLSConfig == nil {
				t.Fatal("expected the first attempt to use tls")
			}
			if cfg.TLSConfig.InsecureSkipVerify {
				t.Error("expected the tls attempt to verify certificates")
			}

			plaintext := false
			for _, fb := range cfg.Fallbacks {
				if fb.TLSConfig == nil {
					plaintext = true
					continue
				}
				if fb.TLSConfig.InsecureSkipVerify {
					t.Error("expected every tls fallback to verify certificates")
				}
			}

			if plaintext != tc.plaintextFallback {
				t.Errorf("expected plaintext fallback %v, got %v", tc.plaintextFallback, plaintext)
			}
		})
	}
}

func TestApplyTLSMode_Permissive(t *testing.T) {
	cfg, err := pgconn.ParseConfig("postgres://oi:oi@db.example.com:5432/oi?sslmode=verify-full")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ApplyTLSMode(cfg, TLSModePermissive)

	if !cfg.TLSConfig.InsecureSkipVerify {
		t.Error("expected permissive mode to skip verification")
	}
}

func TestApplyTLSMode_DisabledTLSUntouched(t *testing.T) {
	for _, mode := range []TLSMode{TLSModeStrict, TLSModePermissive} {
		cfg, err := pgconn.ParseConfig("postgres://oi:oi@localhost:5432/oi?sslmode=disable")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ApplyTLSMode(cfg, mode)

		if cfg.TLSConfig != nil {
			t.Errorf("expected no tls config for mode %q", mode)
		}
	}
}
