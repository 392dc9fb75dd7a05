//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=senderlimit_test
package senderlimit

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type Repository interface {
	GetLimits(ctx context.Context, keys []string, date time.Time) ([]entities.SenderLimit, error)
	GetUsed(ctx context.Context, keys []string, date time.Time) ([]entities.UsedSenderLimit, error)
	IncrementUsed(ctx context.Context, inc entities.SenderLimitIncrement) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
