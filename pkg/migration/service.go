// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/schema"
	"github.com/canonical/outbound-impact/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	provider ProviderInterface
	storage  StorageInterface
	required []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	provider ProviderInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		provider: provider,
		storage:  storage,
		required: schema.CoreTables,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Up applies every pending migration and reports the resulting table inventory.
// A failing statement aborts the run, migrations already applied stay applied.
func (s *Service) Up(ctx context.Context) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "migration.Service.Up")
	defer span.End()

	results, err := s.provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	report := &Report{Applied: make([]string, 0, len(results))}
	for _, r := range results {
		if r.Source == nil {
			continue
		}
		s.logger.Infof("applied migration %s in %s", r.Source.Path, r.Duration)
		report.Applied = append(report.Applied, r.Source.Path)
	}

	if err := s.inventory(ctx, report); err != nil {
		return report, err
	}

	return report, nil
}

// Status lists every known migration with its state, without applying anything.
func (s *Service) Status(ctx context.Context) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "migration.Service.Status")
	defer span.End()

	statuses, err := s.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration status: %w", err)
	}

	report := &Report{
		Applied:    make([]string, 0),
		Migrations: make([]MigrationState, 0, len(statuses)),
	}

	for _, st := range statuses {
		if st.Source == nil {
			continue
		}

		m := MigrationState{
			Version: st.Source.Version,
			Source:  st.Source.Path,
			Applied: st.State == goose.StateApplied,
		}

		if m.Applied {
			appliedAt := st.AppliedAt
			m.AppliedAt = &appliedAt
		} else {
			report.Pending = true
		}

		report.Migrations = append(report.Migrations, m)
	}

	if err := s.inventory(ctx, report); err != nil {
		return report, err
	}

	return report, nil
}

// Check fails with ErrPendingMigrations or ErrIncompleteSchema unless the database is fully migrated.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "migration.Service.Check")
	defer span.End()

	pending, err := s.provider.HasPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending migrations: %w", err)
	}

	report := &Report{Pending: pending, Applied: make([]string, 0)}

	if err := s.inventory(ctx, report); err != nil {
		return report, err
	}

	if pending {
		return report, fmt.Errorf("%w: current version %d", ErrPendingMigrations, report.Version)
	}

	return report, nil
}

func (s *Service) inventory(ctx context.Context, report *Report) error {
	version, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}
	report.Version = version

	tables, err := s.storage.ListTables(ctx)
	if err != nil {
		return err
	}
	report.Tables = tables
	report.Missing = schema.MissingTables(tables, s.required)

	if len(report.Missing) > 0 && !report.Pending {
		return fmt.Errorf("%w: missing %s", ErrIncompleteSchema, strings.Join(report.Missing, ", "))
	}

	return nil
}
