// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

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
	hasher  HasherInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hasher HasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		hasher:  hasher,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Bootstrap provisions the operator described by req, or overwrites the credentials, name and
// role of the operator already holding that email. The boolean is true when a row was inserted.
func (s *Service) Bootstrap(ctx context.Context, req *BootstrapRequest) (*types.AdminOperator, bool, error) {
	if req == nil {
		return nil, false, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if err := req.Validate(); err != nil {
		return nil, false, err
	}

	ctx, span := s.tracer.Start(ctx, "admin.Service.Bootstrap")
	defer span.End()

	if err := s.storage.EnsureAdminTable(ctx); err != nil {
		return nil, false, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, false, err
	}

	op, created, err := s.storage.UpsertAdminOperator(ctx, &types.AdminOperator{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Security().AdminOperatorUpserted(op.Email, string(op.Role), created)

	return op, created, nil
}

func (s *Service) ListOperators(ctx context.Context) ([]*types.AdminOperator, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListOperators")
	defer span.End()

	return s.storage.ListAdminOperators(ctx)
}
