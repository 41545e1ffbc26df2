// Package metrics registers the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ingestion metrics
	RowsIngested  prometheus.Counter
	RowsDegraded  prometheus.Counter
	BatchesFailed prometheus.Counter
	BatchDuration prometheus.Histogram
	BatchSize     prometheus.Histogram

	// Reconciliation metrics
	DivergentInvoices prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RowsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_rows_ingested_total",
			Help: "Total number of spreadsheet rows converted into ledger records",
		}),
		RowsDegraded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_rows_degraded_total",
			Help: "Rows ingested with at least one cell defaulted during normalization",
		}),
		BatchesFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_import_batches_failed_total",
			Help: "Import batches that failed at the persistence layer",
		}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_import_batch_duration_seconds",
			Help:    "Duration of a full ingestion batch",
			Buckets: prometheus.DefBuckets,
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_import_batch_rows",
			Help:    "Row count per ingestion batch",
			Buckets: prometheus.ExponentialBuckets(10, 4, 6),
		}),
		DivergentInvoices: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_divergent_invoices",
			Help: "Invoice groups whose line items disagree with the declared total",
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"route", "status"}),
		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
