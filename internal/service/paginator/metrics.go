package paginator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAdvanced = "advanced"
	outcomeDeferred = "deferred"
	outcomeResidual = "residual"
	outcomeExcluded = "excluded"
)

var (
	ItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paginator_items_total",
			Help: "Total number of paper deliveries evaluated, by stage and outcome",
		},
		[]string{"stage", "outcome"},
	)

	PagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paginator_pages_total",
			Help: "Total number of backlog pages processed, by stage",
		},
		[]string{"stage"},
	)
)

func observe(stage string, report pageReport) {
	PagesTotal.WithLabelValues(stage).Inc()
	ItemsTotal.WithLabelValues(stage, outcomeAdvanced).Add(float64(report.advanced))
	ItemsTotal.WithLabelValues(stage, outcomeDeferred).Add(float64(report.deferred))
	ItemsTotal.WithLabelValues(stage, outcomeResidual).Add(float64(report.residual))
	ItemsTotal.WithLabelValues(stage, outcomeExcluded).Add(float64(report.excluded))
}
