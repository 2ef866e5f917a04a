// Package monitoring collects operation metrics for the service layer on a
// private prometheus registry. It is an optional collaborator: every method
// is safe on a nil *Metrics, so services can run without it.
package monitoring

import "github.com/prometheus/client_golang/prometheus"

// Operation outcomes
const (
	OutcomeOK     = "ok"
	OutcomeDenied = "denied"
	OutcomeFailed = "failed"
)

// Metrics tracks service operations and audit chain growth.
type Metrics struct {
	registry *prometheus.Registry

	operations   *prometheus.CounterVec
	auditEntries prometheus.Counter
	chainLength  prometheus.Gauge
}

// NewMetrics creates a metrics collector with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "restaurant_operations_total",
				Help: "Service operations by outcome",
			},
			[]string{"service", "operation", "outcome"},
		),
		auditEntries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "restaurant_audit_entries_total",
				Help: "Audit entries appended",
			},
		),
		chainLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "restaurant_audit_chain_length",
				Help: "Current audit chain length",
			},
		),
	}
	m.registry.MustRegister(m.operations, m.auditEntries, m.chainLength)
	return m
}

// Registry exposes the private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordOperation counts one service operation with its outcome.
func (m *Metrics) RecordOperation(service, operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(service, operation, outcome).Inc()
}

// RecordAuditEntry counts an appended audit entry and tracks chain length.
func (m *Metrics) RecordAuditEntry(chainLength int) {
	if m == nil {
		return
	}
	m.auditEntries.Inc()
	m.chainLength.Set(float64(chainLength))
}
