// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracer")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected noop span to carry an invalid span context")
	}

	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestNewTracerDefaultsServiceName(t *testing.T) {
	cfg := NewNoopConfig()

	NewTracer(cfg)

	if cfg.ServiceName != defaultServiceName {
		t.Errorf("expected service name %q, got %q", defaultServiceName, cfg.ServiceName)
	}
}
