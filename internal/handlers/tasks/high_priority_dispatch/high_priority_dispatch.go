//go:generate mockgen -source=high_priority_dispatch.go -destination=./contract_mocks_test.go -package=high_priority_dispatch_test
package high_priority_dispatch

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type Service interface {
	DispatchAll(ctx context.Context, week time.Time) (entities.RunReport, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type HighPriorityDispatch struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	dayOfWeek time.Weekday
	now       func() time.Time
}

func NewHighPriorityDispatch(
	log taskLogger,
	service Service,
	interval time.Duration,
	dayOfWeek time.Weekday,
	now func() time.Time,
) *HighPriorityDispatch {
	return &HighPriorityDispatch{
		log:       log,
		service:   service,
		interval:  interval,
		dayOfWeek: dayOfWeek,
		now:       now,
	}
}

func (h *HighPriorityDispatch) TTL() time.Duration {
	return h.interval
}

// Do разбирает очередь высокого приоритета на следующую неделю доставки:
// слоты и мощность этой недели уже отданы основному конвейеру.
func (h *HighPriorityDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	week := entities.NextWeek(entities.DeliveryWeek(h.now(), h.dayOfWeek))
	report, err := h.service.DispatchAll(ctxWithTimeout, week)

	if report.Advanced > 0 {
		h.log.Info("high priority dispatch",
			logger.NewField("week", entities.FormatDate(week)),
			logger.NewField("dispatched", report.Advanced),
			logger.NewField("deferred", report.Deferred),
		)
	}

	return err
}

func (h *HighPriorityDispatch) Info() string {
	return "high priority dispatch"
}
