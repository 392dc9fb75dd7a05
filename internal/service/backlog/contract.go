//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backlog_test
package backlog

import (
	"context"

	"delayer/internal/entities"
)

type Repository interface {
	BatchPut(ctx context.Context, items []entities.PaperDelivery) ([]entities.PaperDelivery, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
