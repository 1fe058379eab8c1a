// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:build integration

package storage_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/outbound-impact/internal/db"
	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/storage"
	"github.com/canonical/outbound-impact/internal/tracing"
	"github.com/canonical/outbound-impact/internal/types"
	"github.com/canonical/outbound-impact/migrations"
	"github.com/canonical/outbound-impact/pkg/admin"
	"github.com/canonical/outbound-impact/pkg/migration"
)

type fixture struct {
	client   *db.DBClient
	storage  *storage.Storage
	provider *goose.Provider
}

// newFixture connects to TEST_DATABASE_URL inside a throwaway schema so every test starts empty.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	schemaName := "oi_test_" + uuid.NewString()[:8]

	root, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { root.Close() })

	if _, err := root.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %q", schemaName)); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	t.Cleanup(func() {
		_, _ = root.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA %q CASCADE", schemaName))
	})

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("TEST_DATABASE_URL must be a URL: %v", err)
	}
	q := u.Query()
	q.Set("search_path", schemaName)
	u.RawQuery = q.Encode()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("oi-test")
	logger := logging.NewNoopLogger()

	client, err := db.NewDBClient(ctx, db.Config{DSN: u.String(), TLSMode: db.TLSModeStrict, MaxConns: 2}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(client.Close)

	provider, err := goose.NewProvider(goose.DialectPostgres, client.DB(), migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	return &fixture{
		client:   client,
		storage:  storage.NewStorage(client, tracer, monitor, logger),
		provider: provider,
	}
}

func (f *fixture) migrate(t *testing.T) *migration.Report {
	t.Helper()

	report, err := migration.NewService(f.provider, f.storage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("oi-test"), logging.NewNoopLogger()).Up(context.Background())
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	return report
}

func (f *fixture) count(t *testing.T, query string, args ...interface{}) int {
	t.Helper()

	var n int
	if err := f.client.DB().QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}

func (f *fixture) insertID(t *testing.T, query string, args ...interface{}) string {
	t.Helper()

	var id string
	if err := f.client.DB().QueryRowContext(context.Background(), query, args...).Scan(&id); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	return id
}

func TestIntegration_MigrateTwice(t *testing.T) {
	f := newFixture(t)

	first := f.migrate(t)
	second := f.migrate(t)

	if len(first.Applied) != 1 {
		t.Errorf("expected one migration on a fresh database, got %v", first.Applied)
	}

	if len(second.Applied) != 0 {
		t.Errorf("expected no migration on the second run, got %v", second.Applied)
	}

	if !reflect.DeepEqual(first.Tables, second.Tables) {
		t.Errorf("table list changed: %v vs %v", first.Tables, second.Tables)
	}

	if len(second.Missing) != 0 {
		t.Errorf("missing core tables: %v", second.Missing)
	}
}

func TestIntegration_OrganizationCascade(t *testing.T) {
	f := newFixture(t)
	f.migrate(t)
	ctx := context.Background()

	org, err := f.storage.CreateOrganization(ctx, &types.Organization{Name: "Acme", Email: "billing@acme.test", PlanType: types.PlanSmallBusiness})
	if err != nil {
		t.Fatalf("failed to create organization: %v", err)
	}

	if _, err := f.storage.CreateOrganization(ctx, &types.Organization{Name: "Acme 2", Email: "billing@acme.test"}); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey for a taken contact email, got %v", err)
	}

	userID := f.insertID(t, "INSERT INTO users (organization_id, email, password_hash, name) VALUES ($1, 'u@acme.test', 'x', 'U') RETURNING id", org.ID)
	fileID := f.insertID(t, "INSERT INTO uploaded_files (organization_id, user_id, title, original_name, mime_type, storage_key, slug) VALUES ($1, $2, 'T', 't.pdf', 'application/pdf', 'k', 'slug-file') RETURNING id", org.ID, userID)
	qrID := f.insertID(t, "INSERT INTO qr_codes (organization_id, uploaded_file_id, slug) VALUES ($1, $2, 'slug-qr') RETURNING id", org.ID, fileID)
	f.insertID(t, "INSERT INTO qr_scan_events (qr_code_id, organization_id) VALUES ($1, $2) RETURNING id", qrID, org.ID)
	f.insertID(t, "INSERT INTO campaigns (organization_id, name) VALUES ($1, 'Launch') RETURNING id", org.ID)
	f.insertID(t, "INSERT INTO activity_log (organization_id, user_id, action) VALUES ($1, $2, 'upload') RETURNING id", org.ID, userID)

	if _, err := f.client.DB().ExecContext(ctx, "DELETE FROM organizations WHERE id = $1", org.ID); err != nil {
		t.Fatalf("failed to delete organization: %v", err)
	}

	for _, table := range []string{"users", "uploaded_files", "qr_codes", "qr_scan_events", "campaigns", "activity_log"} {
		if n := f.count(t, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); n != 0 {
			t.Errorf("expected %s to be emptied by the cascade, %d rows left", table, n)
		}
	}
}

func TestIntegration_UserDeletionNullsAttribution(t *testing.T) {
	f := newFixture(t)
	f.migrate(t)
	ctx := context.Background()

	org, err := f.storage.CreateOrganization(ctx, &types.Organization{Name: "Acme", Email: "billing@acme.test"})
	if err != nil {
		t.Fatalf("failed to create organization: %v", err)
	}

	userID := f.insertID(t, "INSERT INTO users (organization_id, email, password_hash, name) VALUES ($1, 'u@acme.test', 'x', 'U') RETURNING id", org.ID)
	f.insertID(t, "INSERT INTO uploaded_files (organization_id, user_id, title, original_name, mime_type, storage_key, slug) VALUES ($1, $2, 'T', 't.pdf', 'application/pdf', 'k', 'slug-file') RETURNING id", org.ID, userID)
	f.insertID(t, "INSERT INTO activity_log (organization_id, user_id, action) VALUES ($1, $2, 'upload') RETURNING id", org.ID, userID)

	if _, err := f.client.DB().ExecContext(ctx, "DELETE FROM users WHERE id = $1", userID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	if n := f.count(t, "SELECT COUNT(*) FROM uploaded_files WHERE user_id IS NULL"); n != 1 {
		t.Errorf("expected the uploaded file to survive with a null user, got %d", n)
	}

	if n := f.count(t, "SELECT COUNT(*) FROM activity_log WHERE user_id IS NULL"); n != 1 {
		t.Errorf("expected the activity entry to survive with a null user, got %d", n)
	}
}

func TestIntegration_SetOrganizationStatus(t *testing.T) {
	f := newFixture(t)
	f.migrate(t)
	ctx := context.Background()

	org, err := f.storage.CreateOrganization(ctx, &types.Organization{Name: "Acme", Email: "billing@acme.test"})
	if err != nil {
		t.Fatalf("failed to create organization: %v", err)
	}

	if err := f.storage.SetOrganizationStatus(ctx, org.ID, types.OrganizationSuspended); err != nil {
		t.Fatalf("failed to set status: %v", err)
	}

	updated, err := f.storage.GetOrganizationByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("failed to read organization: %v", err)
	}

	if updated.Status != types.OrganizationSuspended {
		t.Errorf("expected suspended, got %q", updated.Status)
	}

	if updated.UpdatedAt.Before(org.UpdatedAt) {
		t.Errorf("expected updated_at to move forward, %v is before %v", updated.UpdatedAt, org.UpdatedAt)
	}

	if err := f.storage.SetOrganizationStatus(ctx, uuid.NewString(), types.OrganizationActive); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestIntegration_AdminBootstrapOnFreshDatabase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hasher := admin.NewBcryptHasher(bcrypt.MinCost)
	svc := admin.NewService(f.storage, hasher, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("oi-test"), logging.NewNoopLogger())

	first, created, err := svc.Bootstrap(ctx, &admin.BootstrapRequest{Email: "ops@example.com", Password: "Secret123!", FullName: "Ops Person"})
	if err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if !created || first.Role != types.AdminRoleAdmin {
		t.Errorf("expected a new admin, got created=%v role=%q", created, first.Role)
	}

	second, created, err := svc.Bootstrap(ctx, &admin.BootstrapRequest{Email: "OPS@example.com", Password: "NewPass456!", FullName: "Ops Person", Role: types.AdminRoleSuperAdmin})
	if err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if created {
		t.Error("second bootstrap should update the existing row")
	}
	if second.ID != first.ID || second.Role != types.AdminRoleSuperAdmin {
		t.Errorf("unexpected operator after update: %+v", second)
	}

	if n := f.count(t, "SELECT COUNT(*) FROM admin_users WHERE email = $1", "ops@example.com"); n != 1 {
		t.Fatalf("expected exactly one operator row, got %d", n)
	}

	var hash string
	if err := f.client.DB().QueryRowContext(ctx, "SELECT password_hash FROM admin_users WHERE email = $1", "ops@example.com").Scan(&hash); err != nil {
		t.Fatalf("failed to read hash: %v", err)
	}

	if !hasher.Verify(hash, "NewPass456!") || hasher.Verify(hash, "Secret123!") {
		t.Error("stored hash must validate against the second password only")
	}

	if _, err := f.client.DB().ExecContext(ctx, "UPDATE admin_users SET role = 'root' WHERE id = $1", first.ID); err == nil {
		t.Error("expected the role check constraint to reject an unknown role")
	}
}
