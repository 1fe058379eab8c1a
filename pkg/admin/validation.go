// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/outbound-impact/internal/types"
)

// ErrInvalidInput marks usage errors, they are always detected before any database access.
var ErrInvalidInput = errors.New("invalid input")

// maxPasswordBytes is the bcrypt input limit, longer passwords are rejected by the hasher.
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("adminrole", func(fl validator.FieldLevel) bool {
		return slices.Contains(types.AdminRoles, types.AdminRole(fl.Field().String()))
	}); err != nil {
		panic(err)
	}

	return v
}

type BootstrapRequest struct {
	Email    string          `validate:"required,email"`
	Password string          `validate:"required"`
	FullName string          `validate:"required"`
	Role     types.AdminRole `validate:"required,adminrole"`
}

// ParseArgs builds a request from positional <email> <password> <full_name> [role] arguments.
func ParseArgs(args []string) (*BootstrapRequest, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 arguments, got %d", ErrInvalidInput, len(args))
	}

	req := &BootstrapRequest{
		Email:    args[0],
		Password: args[1],
		FullName: args[2],
	}

	if len(args) == 4 {
		req.Role = types.AdminRole(args[3])
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Normalize lower-cases the email, trims the name and applies the default role.
// The password is left untouched.
func (r *BootstrapRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)

	if r.Role == "" {
		r.Role = types.AdminRoleAdmin
	}
}

// Validate normalizes the request and checks it, every failure wraps ErrInvalidInput.
func (r *BootstrapRequest) Validate() error {
	r.Normalize()

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidInput, describe(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(r.Password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName(fe.Field()))
	case "email":
		return fmt.Sprintf("%q is not a valid email address", fe.Value())
	case "adminrole":
		return fmt.Sprintf("role %q must be one of %s", fe.Value(), roleList())
	default:
		return fmt.Sprintf("%s failed %s validation", fieldName(fe.Field()), fe.Tag())
	}
}

func fieldName(f string) string {
	switch f {
	case "FullName":
		return "full name"
	default:
		return strings.ToLower(f)
	}
}

func roleList() string {
	roles := make([]string, 0, len(types.AdminRoles))
	for _, r := range types.AdminRoles {
		roles = append(roles, string(r))
	}

	return strings.Join(roles, ", ")
}
