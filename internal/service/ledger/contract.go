//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_test
package ledger

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type CounterRepository interface {
	Get(ctx context.Context, scope entities.Scope, week time.Time) (*entities.UsedCapacity, error)
	Increment(ctx context.Context, inc entities.CapacityIncrement) error
}

type DeclaredRepository interface {
	GetActive(ctx context.Context, tenderID string, driverID string, geoKey string, at time.Time) (int, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
