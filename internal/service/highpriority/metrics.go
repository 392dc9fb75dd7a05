package highpriority

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "high_priority_dispatched_total",
			Help: "Total number of high priority deliveries moved to ready to send",
		},
	)

	TransactionFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "high_priority_transaction_failures_total",
			Help: "Total number of rejected high priority dispatch transactions",
		},
	)
)
