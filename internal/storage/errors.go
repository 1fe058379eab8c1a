// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, pgErrCodeUniqueViolation)
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgErrCodeForeignKeyViolation)
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return hasCode(err, pgErrCodeCheckViolation)
}

// IsConstraintViolation reports whether the write was rejected by a schema constraint,
// in which case nothing was changed.
func IsConstraintViolation(err error) bool {
	return IsDuplicateKeyError(err) || IsForeignKeyViolation(err) || IsCheckViolation(err)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// WrapConstraintError maps constraint violations onto the storage sentinels while keeping the
// database message, any other error is returned untouched.
func WrapConstraintError(err error, context string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %w: %s", context, ErrDuplicateKey, pgErr.Message)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %w: %s", context, ErrForeignKeyViolation, pgErr.Message)
	case pgErrCodeCheckViolation:
		return fmt.Errorf("%s: %w: %s", context, ErrCheckViolation, pgErr.Message)
	}

	return err
}
