package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferAmount   prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Account metrics
	AccountsCreated      prometheus.Counter
	AccountNumberRetries prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	UsersCreated prometheus.Counter

	// Ledger metrics
	ConsistencyChecks     prometheus.Counter
	ConsistencyMismatches prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "simplebank_transfers_created_total",
			Help: "Total number of transfers executed",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "simplebank_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "simplebank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simplebank_transfer_errors_total",
				Help: "Total number of rejected transfers by reason",
			},
			[]string{"reason"},
		),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "simplebank_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountNumberRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "simplebank_account_number_retries_total",
			Help: "Total number of account number collisions retried",
		}),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simplebank_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "simplebank_users_created_total",
			Help: "Total number of users registered",
		}),

		ConsistencyChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "simplebank_consistency_checks_total",
			Help: "Total number of ledger consistency checks run",
		}),
		ConsistencyMismatches: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "simplebank_consistency_mismatches",
			Help: "Accounts whose balance disagreed with the ledger at the last check",
		}),
	}
}
