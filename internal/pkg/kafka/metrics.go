package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConsumerErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delayer",
			Subsystem: "kafka",
			Name:      "consumer_errors_total",
			Help:      "Total number of consumer group errors",
		},
	)

	RebalancesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delayer",
			Subsystem: "kafka",
			Name:      "rebalances_total",
			Help:      "Total number of consumer group session restarts",
		},
	)
)
