package backlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchWriteRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backlog_batch_write_retries_total",
			Help: "Total number of batch write resubmissions of unprocessed paper deliveries",
		},
	)

	WrittenItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backlog_written_items_total",
			Help: "Total number of paper deliveries written to the backlog",
		},
		[]string{"stage"},
	)
)
