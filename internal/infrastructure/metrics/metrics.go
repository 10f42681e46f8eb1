package metrics

import (
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CatalogMetrics holds the service collectors.
type CatalogMetrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Catalog queries
	DepositQueryResults prometheus.Histogram

	// Mutations by entity and action
	CatalogMutationsTotal *prometheus.CounterVec

	// Refreshed by the stats job
	ActiveDeposits *prometheus.GaugeVec
}

// NewCatalogMetrics registers every collector with reg.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)

	return &CatalogMetrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
			},
			[]string{"route", "method"},
		),

		DepositQueryResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_deposit_query_results",
				Help:    "Number of deposits returned by a filtered listing",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),

		CatalogMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "Catalog writes by entity and action",
			},
			[]string{"entity", "action"},
		),

		ActiveDeposits: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catalog_active_deposits",
				Help: "Active deposits per currency",
			},
			[]string{"currency"},
		),
	}
}

// RecordMutation splits the event type ("deposit.created") into its labels.
func (m *CatalogMetrics) RecordMutation(eventType domain.CatalogEventType) {
	entity, action := eventType.Parts()
	m.CatalogMutationsTotal.WithLabelValues(entity, action).Inc()
}

// SetActiveDeposits publishes a gauge for every known currency, zero included.
func (m *CatalogMetrics) SetActiveDeposits(counts map[domain.Currency]int64) {
	for _, c := range domain.Currencies {
		m.ActiveDeposits.WithLabelValues(c.String()).Set(float64(counts[c]))
	}
}
