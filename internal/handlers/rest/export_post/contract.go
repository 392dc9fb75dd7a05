//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=export_post_test
package export_post

import (
	"context"
	"time"

	"delayer/internal/service/export"
	"delayer/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ExportUsedCapacities(ctx context.Context, week time.Time) (export.Result, error)
}
