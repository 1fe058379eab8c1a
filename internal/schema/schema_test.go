// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package schema

import (
	"io/fs"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/canonical/outbound-impact/migrations"
)

var createTableRe = regexp.MustCompile(`(?is)CREATE TABLE (IF NOT EXISTS )?(\w+) \((.*?)\n\);`)

func loadMigrations(t *testing.T) string {
	t.Helper()

	var b strings.Builder
	err := fs.WalkDir(migrations.EmbedMigrations, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".sql") {
			return err
		}

		content, err := fs.ReadFile(migrations.EmbedMigrations, path)
		if err != nil {
			return err
		}

		b.Write(content)
		b.WriteString("\n")

		return nil
	})
	if err != nil {
		t.Fatalf("failed to read embedded migrations: %v", err)
	}

	return b.String()
}

func tableBodies(t *testing.T, script string) map[string]string {
	t.Helper()

	bodies := make(map[string]string)
	for _, m := range createTableRe.FindAllStringSubmatch(script, -1) {
		if m[1] == "" {
			t.Errorf("table %s is created without IF NOT EXISTS", m[2])
		}
		bodies[m[2]] = m[3]
	}

	return bodies
}

func TestMigrations_CreateEveryCoreTableIdempotently(t *testing.T) {
	bodies := tableBodies(t, loadMigrations(t))

	for _, table := range CoreTables {
		if _, ok := bodies[table]; !ok {
			t.Errorf("core table %s is not created by the migrations", table)
		}
	}
}

func TestMigrations_IndexesAreIdempotent(t *testing.T) {
	for _, line := range strings.Split(loadMigrations(t), "\n") {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "CREATE INDEX") && !strings.Contains(line, "IF NOT EXISTS") {
			t.Errorf("index created without IF NOT EXISTS: %s", line)
		}
	}
}

func TestMigrations_NeverDrop(t *testing.T) {
	script := strings.ToUpper(loadMigrations(t))

	for _, stmt := range []string{"DROP TABLE", "DROP COLUMN", "ALTER TABLE", "TRUNCATE"} {
		if strings.Contains(script, stmt) {
			t.Errorf("migrations must be additive, found %q", stmt)
		}
	}
}

func TestMigrations_UniqueConstraints(t *testing.T) {
	bodies := tableBodies(t, loadMigrations(t))

	testCases := []struct {
		table  string
		column string
	}{
		{table: TableOrganizations, column: "email"},
		{table: TableUsers, column: "email"},
		{table: TableUploadedFiles, column: "slug"},
		{table: TableQRCodes, column: "slug"},
	}

	for _, tc := range testCases {
		t.Run(tc.table+"."+tc.column, func(t *testing.T) {
			if !strings.Contains(bodies[tc.table], "UNIQUE ("+tc.column+")") {
				t.Errorf("expected a unique constraint on %s.%s", tc.table, tc.column)
			}
		})
	}

	if !strings.Contains(AdminUsersTable, "UNIQUE (email)") {
		t.Error("expected a unique constraint on admin_users.email")
	}
}

func TestMigrations_DeletionPolicies(t *testing.T) {
	bodies := tableBodies(t, loadMigrations(t))

	testCases := []struct {
		table   string
		column  string
		policy  string
		notNull bool
	}{
		{table: TableUsers, column: "organization_id", policy: "ON DELETE CASCADE"},
		{table: TableUploadedFiles, column: "organization_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableUploadedFiles, column: "user_id", policy: "ON DELETE SET NULL"},
		{table: TableQRCodes, column: "organization_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableQRCodes, column: "uploaded_file_id", policy: "ON DELETE CASCADE"},
		{table: TableQRScanEvents, column: "qr_code_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableQRScanEvents, column: "organization_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableCampaigns, column: "organization_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableActivityLog, column: "organization_id", policy: "ON DELETE CASCADE", notNull: true},
		{table: TableActivityLog, column: "user_id", policy: "ON DELETE SET NULL"},
	}

	for _, tc := range testCases {
		t.Run(tc.table+"."+tc.column, func(t *testing.T) {
			line := columnDefinition(bodies[tc.table], tc.column)
			if line == "" {
				t.Fatalf("column %s.%s not found", tc.table, tc.column)
			}

			if !strings.Contains(line, tc.policy) {
				t.Errorf("expected %s on %s.%s, got %q", tc.policy, tc.table, tc.column, line)
			}

			if tc.notNull != strings.Contains(line, "NOT NULL") {
				t.Errorf("unexpected nullability on %s.%s: %q", tc.table, tc.column, line)
			}
		})
	}
}

func TestMigrations_OrganizationDefaultsMatchPersonalPlan(t *testing.T) {
	body := tableBodies(t, loadMigrations(t))[TableOrganizations]

	for column, def := range map[string]string{
		"plan_type":           "DEFAULT 'personal'",
		"status":              "DEFAULT 'active'",
		"monthly_price":       "DEFAULT 0",
		"max_qr_codes":        "DEFAULT 5",
		"max_contributors":    "DEFAULT 1",
		"storage_limit_bytes": "DEFAULT 2147483648",
		"total_scans":         "DEFAULT 0",
		"total_uploads":       "DEFAULT 0",
	} {
		line := columnDefinition(body, column)
		if !strings.Contains(line, "NOT NULL") || !strings.Contains(line, def) {
			t.Errorf("expected %s to be NOT NULL %s, got %q", column, def, line)
		}
	}
}

func TestAdminUsersTable(t *testing.T) {
	if !strings.HasPrefix(AdminUsersTable, "CREATE TABLE IF NOT EXISTS admin_users") {
		t.Error("admin_users must be created idempotently")
	}

	for _, fragment := range []string{
		"'analyst', 'admin', 'super_admin'",
		"created_by IS NULL OR created_by <> id",
		"REFERENCES admin_users(id) ON DELETE SET NULL",
	} {
		if !strings.Contains(AdminUsersTable, fragment) {
			t.Errorf("expected admin_users definition to contain %q", fragment)
		}
	}
}

func TestMissingTables(t *testing.T) {
	testCases := []struct {
		name      string
		inventory []string
		expected  []string
	}{
		{
			name:      "complete",
			inventory: append([]string{"goose_db_version", TableAdminUsers}, CoreTables...),
			expected:  []string{},
		},
		{
			name:      "empty",
			inventory: nil,
			expected:  []string{"activity_log", "campaigns", "organizations", "qr_codes", "qr_scan_events", "uploaded_files", "users"},
		},
		{
			name:      "partial",
			inventory: []string{TableOrganizations, TableUsers, TableCampaigns},
			expected:  []string{"activity_log", "qr_codes", "qr_scan_events", "uploaded_files"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingTables(tc.inventory, CoreTables)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func columnDefinition(body, column string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, column+" ") {
			return trimmed
		}
	}

	return ""
}
