// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/outbound-impact/internal/db"
	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/schema"
	"github.com/canonical/outbound-impact/internal/tracing"
	"github.com/canonical/outbound-impact/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var organizationColumns = []string{
	"id",
	"name",
	"email",
	"plan_type",
	"status",
	"monthly_price",
	"max_qr_codes",
	"max_contributors",
	"storage_limit_bytes",
	"total_scans",
	"total_uploads",
	"subscription_started_at",
	"created_at",
	"updated_at",
}

var adminOperatorColumns = []string{
	"id",
	"email",
	"full_name",
	"role",
	"status",
	"created_at",
	"updated_at",
}

// adminUpsertSuffix turns the insert into an upsert keyed on email. xmax is zero only for
// freshly inserted tuples, which tells the caller whether the operator already existed.
const adminUpsertSuffix = `ON CONFLICT (email) DO UPDATE SET
	password_hash = EXCLUDED.password_hash,
	full_name = EXCLUDED.full_name,
	role = EXCLUDED.role,
	updated_at = EXCLUDED.updated_at
RETURNING id, email, full_name, role, status, created_at, updated_at, (xmax = 0) AS inserted`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// ListTables returns the base tables of the connection's current schema, sorted by name.
func (s *Storage) ListTables(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTables")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("table_name").
		From("information_schema.tables").
		Where("table_schema = current_schema()").
		Where(sq.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table rows: %w", err)
	}

	return tables, nil
}

func (s *Storage) EnsureAdminTable(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureAdminTable")
	defer span.End()

	if _, err := s.db.DB().ExecContext(ctx, schema.AdminUsersTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", schema.TableAdminUsers, err)
	}

	return nil
}

// UpsertAdminOperator inserts the operator or, when the email is already taken, replaces its
// password hash, full name and role. The boolean is true when a new row was inserted.
// op.Email must already be normalized.
func (s *Storage) UpsertAdminOperator(ctx context.Context, op *types.AdminOperator) (*types.AdminOperator, bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAdminOperator")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate operator ID: %w", err)
	}

	status := op.Status
	if status == "" {
		status = "active"
	}

	now := time.Now().UTC()

	var (
		stored   types.AdminOperator
		inserted bool
	)

	err = s.db.Statement(ctx).
		Insert(schema.TableAdminUsers).
		Columns("id", "email", "password_hash", "full_name", "role", "status", "created_by", "created_at", "updated_at").
		Values(id.String(), op.Email, op.PasswordHash, op.FullName, string(op.Role), status, op.CreatedBy, now, now).
		Suffix(adminUpsertSuffix).
		QueryRowContext(ctx).
		Scan(
			&stored.ID,
			&stored.Email,
			&stored.FullName,
			&stored.Role,
			&stored.Status,
			&stored.CreatedAt,
			&stored.UpdatedAt,
			&inserted,
		)

	if err != nil {
		return nil, false, WrapConstraintError(err, "failed to upsert admin operator")
	}

	return &stored, inserted, nil
}

func (s *Storage) ListAdminOperators(ctx context.Context) ([]*types.AdminOperator, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAdminOperators")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(adminOperatorColumns...).
		From(schema.TableAdminUsers).
		OrderBy("created_at", "email").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin operators: %w", err)
	}
	defer rows.Close()

	operators := make([]*types.AdminOperator, 0)
	for rows.Next() {
		var op types.AdminOperator
		if err := rows.Scan(&op.ID, &op.Email, &op.FullName, &op.Role, &op.Status, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin operator: %w", err)
		}
		operators = append(operators, &op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin operator rows: %w", err)
	}

	return operators, nil
}

// CreateOrganization inserts a tenant with the quotas and price of its plan.
func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	plan := o.PlanType
	if plan == "" {
		plan = types.PlanPersonal
	}

	quotas, ok := types.PlanQuotas[plan]
	if !ok {
		return nil, fmt.Errorf("unknown plan %q", plan)
	}

	row := s.db.Statement(ctx).
		Insert(schema.TableOrganizations).
		Columns("id", "name", "email", "plan_type", "monthly_price", "max_qr_codes", "max_contributors", "storage_limit_bytes").
		Values(id.String(), o.Name, o.Email, string(plan), quotas.MonthlyPrice, quotas.MaxQRCodes, quotas.MaxContributors, quotas.StorageLimitBytes).
		Suffix("RETURNING " + strings.Join(organizationColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanOrganization(row)
	if err != nil {
		return nil, WrapConstraintError(err, "failed to insert organization")
	}

	return created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(organizationColumns...).
		From(schema.TableOrganizations).
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	o, err := scanOrganization(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

func (s *Storage) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(organizationColumns...).
		From(schema.TableOrganizations).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	organizations := make([]*types.Organization, 0)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		organizations = append(organizations, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}

	return organizations, nil
}

// SetOrganizationStatus is the soft alternative to deleting a tenant.
// updated_at has no trigger behind it, so it is set here explicitly.
func (s *Storage) SetOrganizationStatus(ctx context.Context, id string, status types.OrganizationStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrganizationStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(schema.TableOrganizations).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return WrapConstraintError(err, "failed to update organization status")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func scanOrganization(row rowScanner) (*types.Organization, error) {
	var o types.Organization

	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Email,
		&o.PlanType,
		&o.Status,
		&o.MonthlyPrice,
		&o.MaxQRCodes,
		&o.MaxContributors,
		&o.StorageLimitBytes,
		&o.TotalScans,
		&o.TotalUploads,
		&o.SubscriptionStartedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &o, nil
}
