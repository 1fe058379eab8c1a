// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/outbound-impact/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, req *CreateRequest) (*types.Organization, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	SetStatus(ctx context.Context, id string, status types.OrganizationStatus) (*types.Organization, error)
}

// StorageInterface defines the storage operations required by the organization package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizations(ctx context.Context) ([]*types.Organization, error)
	SetOrganizationStatus(ctx context.Context, id string, status types.OrganizationStatus) error
}
