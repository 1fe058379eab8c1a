// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// TLSMode controls how the server certificate of the database is validated.
type TLSMode string

const (
	// TLSModeStrict verifies the certificate chain and host name on every TLS attempt.
	// Plaintext fallbacks only exist for sslmode=prefer (the pgx default) and allow, and are kept.
	TLSModeStrict TLSMode = "strict"
	// TLSModePermissive accepts any certificate, for managed databases presenting
	// self-signed certificates.
	TLSModePermissive TLSMode = "permissive"
)

func ParseTLSMode(s string) (TLSMode, error) {
	switch TLSMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", TLSModeStrict:
		return TLSModeStrict, nil
	case TLSModePermissive:
		return TLSModePermissive, nil
	default:
		return "", fmt.Errorf("invalid tls mode %q, must be one of %q or %q", s, TLSModeStrict, TLSModePermissive)
	}
}

// ApplyTLSMode rewrites the TLS settings pgx derived from the DSN sslmode.
// A DSN without TLS (sslmode=disable) is left untouched in both modes, and the
// set of attempts pgx derived from sslmode is never changed.
func ApplyTLSMode(cfg *pgconn.Config, mode TLSMode) {
	switch mode {
	case TLSModePermissive:
		permissive(cfg.TLSConfig)
		for _, fb := range cfg.Fallbacks {
			permissive(fb.TLSConfig)
		}
	default:
		if cfg.TLSConfig == nil {
			return
		}

		strict(cfg.TLSConfig, cfg.Host)
		for _, fb := range cfg.Fallbacks {
			if fb.TLSConfig != nil {
				strict(fb.TLSConfig, fb.Host)
			}
		}
	}
}

func strict(c *tls.Config, host string) {
	c.InsecureSkipVerify = false
	c.VerifyPeerCertificate = nil
	if c.ServerName == "" {
		c.ServerName = host
	}
}

func permissive(c *tls.Config) {
	if c == nil {
		return
	}

	c.InsecureSkipVerify = true
	c.VerifyPeerCertificate = nil
}
