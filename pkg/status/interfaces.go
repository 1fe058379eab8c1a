// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
)

type DatabaseInterface interface {
	Ping(ctx context.Context) error
}

// SchemaVersionInterface is satisfied by the goose provider.
type SchemaVersionInterface interface {
	GetDBVersion(ctx context.Context) (int64, error)
}
