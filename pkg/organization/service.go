// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"fmt"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
	"github.com/canonical/outbound-impact/internal/tracing"
	"github.com/canonical/outbound-impact/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateOrganization provisions a tenant on the requested plan. A taken contact email fails
// with storage.ErrDuplicateKey and leaves the table untouched.
func (s *Service) CreateOrganization(ctx context.Context, req *CreateRequest) (*types.Organization, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	o, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:     req.Name,
		Email:    req.Email,
		PlanType: req.PlanType,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created organization %s on plan %s", o.ID, o.PlanType)
	return o, nil
}

func (s *Service) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganization")
	defer span.End()

	return s.storage.GetOrganizationByID(ctx, id)
}

func (s *Service) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizations")
	defer span.End()

	return s.storage.ListOrganizations(ctx)
}

// SetStatus moves a tenant between active, suspended and cancelled and returns the updated row.
func (s *Service) SetStatus(ctx context.Context, id string, status types.OrganizationStatus) (*types.Organization, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "organization.Service.SetStatus")
	defer span.End()

	if err := s.storage.SetOrganizationStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Security().OrganizationStatusChanged(id, string(status))

	return s.storage.GetOrganizationByID(ctx, id)
}
