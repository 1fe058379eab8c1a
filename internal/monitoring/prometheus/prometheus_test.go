// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/outbound-impact/internal/logging"
)

func TestMonitor_SetDependencyAvailability(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMonitorWithRegisterer("oi-test", registry, logging.NewNoopLogger())

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.dependencyAvailability.WithLabelValues("database")); got != 1 {
		t.Errorf("expected gauge value 1, got %v", got)
	}

	if err := m.SetDependencyAvailability(map[string]string{"unknown": "label"}, 1); err == nil {
		t.Error("expected error for unknown label set")
	}
}

func TestMonitor_SetResponseTimeMetric(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMonitorWithRegisterer("oi-test", registry, logging.NewNoopLogger())

	tags := map[string]string{"route": "GET /api/v0/status", "status": "200"}
	if err := m.SetResponseTimeMetric(tags, 0.25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := testutil.CollectAndCount(m.responseTime); count != 1 {
		t.Errorf("expected 1 series, got %d", count)
	}
}

func TestNewMonitor_RegistersOnce(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := NewMonitorWithRegisterer("oi-test", registry, logging.NewNoopLogger())
	second := NewMonitorWithRegisterer("oi-test", registry, logging.NewNoopLogger())

	if first.dependencyAvailability != second.dependencyAvailability {
		t.Error("expected the second monitor to reuse the registered gauge")
	}

	if second.GetService() != "oi-test" {
		t.Errorf("unexpected service name %q", second.GetService())
	}
}
