//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_get_test
package capacity_get

import (
	"context"
	"time"

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
	Resolve(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (entities.Capacity, error)
}
