package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPOSMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPOSMetrics(reg)

	m.CheckoutCompleted(160)
	m.CheckoutCompleted(40)
	m.CheckoutFailed()
	m.LedgerTransaction("employees")
	m.LedgerTransaction("")
	m.CatalogRequest("products", nil)
	m.CatalogRequest("products", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkouts.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkouts.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerWrites.WithLabelValues("employees")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerWrites.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogCalls.WithLabelValues("products", "error")))
}

func TestPOSMetricsNilSafe(t *testing.T) {
	var m *POSMetrics
	m.CheckoutCompleted(1)
	m.CheckoutFailed()
	m.LedgerTransaction("x")
	m.CatalogRequest("x", nil)

	NewPOSMetrics(nil).CheckoutFailed()
}
