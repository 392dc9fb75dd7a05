//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_triggered_test
package job_triggered

import (
	"context"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Run(ctx context.Context, trigger entities.Trigger) (entities.RunReport, error)
}
