// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/outbound-impact/internal/types"
)

type StorageInterface interface {
	ListTables(ctx context.Context) ([]string, error)

	EnsureAdminTable(ctx context.Context) error
	UpsertAdminOperator(ctx context.Context, op *types.AdminOperator) (*types.AdminOperator, bool, error)
	ListAdminOperators(ctx context.Context) ([]*types.AdminOperator, error)

	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	SetOrganizationStatus(ctx context.Context, id string, status types.OrganizationStatus) error
}
