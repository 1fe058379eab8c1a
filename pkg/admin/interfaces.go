// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/outbound-impact/internal/types"
)

type ServiceInterface interface {
	Bootstrap(ctx context.Context, req *BootstrapRequest) (*types.AdminOperator, bool, error)
	ListOperators(ctx context.Context) ([]*types.AdminOperator, error)
}

// StorageInterface defines the storage operations required by the admin package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	EnsureAdminTable(ctx context.Context) error
	UpsertAdminOperator(ctx context.Context, op *types.AdminOperator) (*types.AdminOperator, bool, error)
	ListAdminOperators(ctx context.Context) ([]*types.AdminOperator, error)
}

type HasherInterface interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
