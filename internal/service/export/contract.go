//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=export_test
package export

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type CounterReader interface {
	ListByWeek(ctx context.Context, week time.Time, cursor entities.Cursor, limit int) (entities.Page[entities.UsedCapacity], error)
}

type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string) (string, error)
}
