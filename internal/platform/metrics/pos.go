package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// POSMetrics records checkout and ledger activity.
type POSMetrics struct {
	checkouts    *prometheus.CounterVec
	saleTotal    prometheus.Histogram
	ledgerWrites *prometheus.CounterVec
	catalogCalls *prometheus.CounterVec
}

// NewPOSMetrics registers the POS metrics on the provided registerer.
// A nil registerer yields a recorder whose methods do nothing.
func NewPOSMetrics(reg prometheus.Registerer) *POSMetrics {
	if reg == nil {
		return &POSMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkouts_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	saleTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_sale_grand_total",
		Help:    "Grand total of completed sales.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})
	ledgerWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_ledger_transactions_total",
		Help: "Ledger transactions recorded, by ledger.",
	}, []string{"ledger"})
	catalogCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_catalog_requests_total",
		Help: "Remote catalog requests by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(checkouts, saleTotal, ledgerWrites, catalogCalls)
	return &POSMetrics{
		checkouts:    checkouts,
		saleTotal:    saleTotal,
		ledgerWrites: ledgerWrites,
		catalogCalls: catalogCalls,
	}
}

// CheckoutCompleted counts a persisted sale and observes its total.
func (m *POSMetrics) CheckoutCompleted(grandTotal float64) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues("completed").Inc()
	m.saleTotal.Observe(grandTotal)
}

// CheckoutFailed counts a sale whose persistence failed.
func (m *POSMetrics) CheckoutFailed() {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues("failed").Inc()
}

// LedgerTransaction counts a transaction appended to the named ledger.
func (m *POSMetrics) LedgerTransaction(ledger string) {
	if m == nil || m.ledgerWrites == nil {
		return
	}
	m.ledgerWrites.WithLabelValues(normalizeLabel(ledger)).Inc()
}

// CatalogRequest counts a remote catalog call.
func (m *POSMetrics) CatalogRequest(operation string, err error) {
	if m == nil || m.catalogCalls == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.catalogCalls.WithLabelValues(normalizeLabel(operation), outcome).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
