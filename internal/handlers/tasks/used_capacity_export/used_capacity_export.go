//go:generate mockgen -source=used_capacity_export.go -destination=./contract_mocks_test.go -package=used_capacity_export_test
package used_capacity_export

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/export"
	"delayer/pkg/logger"
)

type Service interface {
	ExportUsedCapacities(ctx context.Context, week time.Time) (export.Result, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type UsedCapacityExport struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	dayOfWeek time.Weekday
	now       func() time.Time
}

func NewUsedCapacityExport(
	log taskLogger,
	service Service,
	interval time.Duration,
	dayOfWeek time.Weekday,
	now func() time.Time,
) *UsedCapacityExport {
	return &UsedCapacityExport{
		log:       log,
		service:   service,
		interval:  interval,
		dayOfWeek: dayOfWeek,
		now:       now,
	}
}

func (u *UsedCapacityExport) TTL() time.Duration {
	return u.interval
}

// Do выгружает счетчики текущей недели доставки.
func (u *UsedCapacityExport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, u.interval)
	defer cancel()

	week := entities.DeliveryWeek(u.now(), u.dayOfWeek)
	res, err := u.service.ExportUsedCapacities(ctxWithTimeout, week)
	if err != nil {
		return err
	}

	if res.Rows > 0 {
		u.log.Info("used capacity export",
			logger.NewField("key", res.Key),
			logger.NewField("rows", res.Rows),
		)
	}

	return nil
}

func (u *UsedCapacityExport) Info() string {
	return "used capacity export"
}
