//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runner_test
package runner

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type Paginator interface {
	Run(ctx context.Context, job entities.Job) (entities.RunReport, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, scope entities.Scope, week time.Time) (entities.RunReport, error)
}

type runnerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
