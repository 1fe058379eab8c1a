// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface records security relevant events in a structured, greppable form.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AdminOperatorUpserted(email, role string, created bool)
	OrganizationStatusChanged(id, status string)
}
