// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/outbound-impact/internal/types"
)

var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateRequest struct {
	Name     string         `validate:"required,max=255"`
	Email    string         `validate:"required,email,max=255"`
	PlanType types.PlanType `validate:"required,oneof=personal small_business medium_business enterprise"`
}

// ParseCreateArgs builds a request from positional <name> <email> [plan] arguments.
func ParseCreateArgs(args []string) (*CreateRequest, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 arguments, got %d", ErrInvalidInput, len(args))
	}

	req := &CreateRequest{Name: args[0], Email: args[1]}
	if len(args) == 3 {
		req.PlanType = types.PlanType(args[2])
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate trims and lower-cases the request in place, the plan defaults to the personal tier.
func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.PlanType == "" {
		r.PlanType = types.PlanPersonal
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func ParseStatus(s string) (types.OrganizationStatus, error) {
	status := types.OrganizationStatus(s)
	if err := validate.Var(s, "required,oneof=active suspended cancelled"); err != nil {
		return "", fmt.Errorf("%w: status %q must be one of active, suspended, cancelled", ErrInvalidInput, s)
	}

	return status, nil
}

// ParseID checks that s is an organization UUID, so malformed ids never reach the database.
func ParseID(s string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	if err := validate.Var(id, "required,uuid"); err != nil {
		return "", fmt.Errorf("%w: organization id %q is not a valid UUID", ErrInvalidInput, s)
	}

	return id, nil
}
