// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package schema names the relational objects every other component relies on.
// The tenant tables themselves are created by the goose migrations in /migrations,
// the operator table is created here so the admin bootstrap can run on a fresh database.
package schema

import (
	"sort"
)

const (
	TableOrganizations = "organizations"
	TableUsers         = "users"
	TableUploadedFiles = "uploaded_files"
	TableQRCodes       = "qr_codes"
	TableQRScanEvents  = "qr_scan_events"
	TableCampaigns     = "campaigns"
	TableActivityLog   = "activity_log"
	TableAdminUsers    = "admin_users"
)

// CoreTables are the tenant tables a completed migration must leave behind.
var CoreTables = []string{
	TableOrganizations,
	TableUsers,
	TableUploadedFiles,
	TableQRCodes,
	TableQRScanEvents,
	TableCampaigns,
	TableActivityLog,
}

// AdminUsersTable creates the internal operator table. It is independent of the tenant
// migrations and safe to execute any number of times.
const AdminUsersTable = `CREATE TABLE IF NOT EXISTS admin_users (
    id UUID PRIMARY KEY,
    email VARCHAR(255) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    role VARCHAR(32) NOT NULL DEFAULT 'admin',
    status VARCHAR(32) NOT NULL DEFAULT 'active',
    created_by UUID REFERENCES admin_users(id) ON DELETE SET NULL,
    last_login_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT admin_users_email_key UNIQUE (email),
    CONSTRAINT admin_users_role_check CHECK (role IN ('analyst', 'admin', 'super_admin')),
    CONSTRAINT admin_users_created_by_check CHECK (created_by IS NULL OR created_by <> id)
)`

// MissingTables returns the entries of required absent from inventory, sorted.
func MissingTables(inventory, required []string) []string {
	present := make(map[string]struct{}, len(inventory))
	for _, t := range inventory {
		present[t] = struct{}{}
	}

	missing := make([]string, 0)
	for _, t := range required {
		if _, ok := present[t]; !ok {
			missing = append(missing, t)
		}
	}

	sort.Strings(missing)

	return missing
}
