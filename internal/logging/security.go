// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup            = "sys_startup"
	eventSystemShutdown           = "sys_shutdown"
	eventAdminOperatorUpserted    = "admin_operator_upserted"
	eventOrganizationStatusChange = "organization_status_changed"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

// AdminOperatorUpserted never receives credentials, only the account identity.
func (s *SecurityLogger) AdminOperatorUpserted(email, role string, created bool) {
	s.l.Warn(
		"admin operator provisioned",
		zap.String("event", eventAdminOperatorUpserted),
		zap.String("email", email),
		zap.String("role", role),
		zap.Bool("created", created),
	)
}

func (s *SecurityLogger) OrganizationStatusChanged(id, status string) {
	s.l.Warn(
		"organization status changed",
		zap.String("event", eventOrganizationStatusChange),
		zap.String("organization_id", id),
		zap.String("status", status),
	)
}
