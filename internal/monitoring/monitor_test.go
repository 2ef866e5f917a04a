package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics()

	m.RecordOperation("order", "order.place", OutcomeOK)
	m.RecordOperation("order", "order.place", OutcomeOK)
	m.RecordOperation("order", "order.place", OutcomeDenied)

	ok := m.operations.WithLabelValues("order", "order.place", OutcomeOK)
	denied := m.operations.WithLabelValues("order", "order.place", OutcomeDenied)
	assert.Equal(t, 2.0, testutil.ToFloat64(ok))
	assert.Equal(t, 1.0, testutil.ToFloat64(denied))
}

func TestRecordAuditEntry(t *testing.T) {
	m := NewMetrics()

	m.RecordAuditEntry(1)
	m.RecordAuditEntry(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.auditEntries))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.chainLength))
}

func TestRegistryGathers(t *testing.T) {
	m := NewMetrics()
	m.RecordOperation("menu", "menu.add_item", OutcomeOK)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "restaurant_operations_total")
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordOperation("order", "order.place", OutcomeOK)
		m.RecordAuditEntry(1)
	})
	assert.Nil(t, m.Registry())
}
