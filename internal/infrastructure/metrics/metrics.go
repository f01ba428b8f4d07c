package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the domain-level Prometheus metrics. It implements
// usecase.MetricsRecorder.
type Metrics struct {
	EntriesCreated prometheus.Counter
	EntriesUpdated prometheus.Counter
	EntriesDeleted prometheus.Counter
	LedgerFetches  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "anticipos_entries_created_total",
			Help: "Total number of advance entries created",
		}),
		EntriesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "anticipos_entries_updated_total",
			Help: "Total number of advance entries updated",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "anticipos_entries_deleted_total",
			Help: "Total number of advance entries deleted",
		}),
		LedgerFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anticipos_ledger_fetches_total",
				Help: "Total ledger summary fetches by cache outcome",
			},
			[]string{"cache"},
		),
	}
}

// EntryCreated counts a successful entry creation.
func (m *Metrics) EntryCreated() {
	m.EntriesCreated.Inc()
}

// EntryUpdated counts a successful entry update.
func (m *Metrics) EntryUpdated() {
	m.EntriesUpdated.Inc()
}

// EntryDeleted counts a successful entry deletion.
func (m *Metrics) EntryDeleted() {
	m.EntriesDeleted.Inc()
}

// LedgerFetched counts a ledger fetch, labelled by cache outcome.
func (m *Metrics) LedgerFetched(cacheHit bool) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}

	m.LedgerFetches.WithLabelValues(outcome).Inc()
}
