// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/outbound-impact/internal/logging"
	"github.com/canonical/outbound-impact/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not enabled")
	}

	o, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	o.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not enabled")
	}

	g, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) registerHistograms(registerer prometheus.Registerer) {
	responseTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.responseTime = register(registerer, responseTime, m.logger)
}

func (m *Monitor) registerGauges(registerer prometheus.Registerer) {
	dependencyAvailability := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.dependencyAvailability = register(registerer, dependencyAvailability, m.logger)
}

// register reuses an already registered collector so repeated construction does not panic.
func register[T prometheus.Collector](registerer prometheus.Registerer, c T, logger logging.LoggerInterface) T {
	err := registerer.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("unable to register metric: %v", err)

	return c
}

// NewMonitor creates a Monitor registered on the default Prometheus registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return NewMonitorWithRegisterer(service, prometheus.DefaultRegisterer, logger)
}

func NewMonitorWithRegisterer(service string, registerer prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms(registerer)
	m.registerGauges(registerer)

	return m
}
