// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migration

import (
	"errors"
	"time"
)

var (
	ErrPendingMigrations = errors.New("migrations are pending")
	ErrIncompleteSchema  = errors.New("schema is incomplete")
)

type MigrationState struct {
	Version   int64      `json:"version"`
	Source    string     `json:"source"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
}

// Report describes the database after a runner operation. Tables is the inventory of base
// tables in the working schema, Missing the core tables absent from it.
type Report struct {
	Version    int64            `json:"version"`
	Pending    bool             `json:"pending"`
	Applied    []string         `json:"applied"`
	Migrations []MigrationState `json:"migrations,omitempty"`
	Tables     []string         `json:"tables"`
	Missing    []string         `json:"missing"`
}
