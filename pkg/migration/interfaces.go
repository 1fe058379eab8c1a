// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package migration

import (
	"context"

	"github.com/pressly/goose/v3"
)

type ServiceInterface interface {
	Up(ctx context.Context) (*Report, error)
	Status(ctx context.Context) (*Report, error)
	Check(ctx context.Context) (*Report, error)
}

// ProviderInterface is the subset of *goose.Provider the runner drives.
type ProviderInterface interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	HasPending(ctx context.Context) (bool, error)
	GetDBVersion(ctx context.Context) (int64, error)
}

// StorageInterface defines the storage operations required by the migration package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	ListTables(ctx context.Context) ([]string, error)
}
