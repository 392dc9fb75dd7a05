//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=printgate_test
package printgate

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type Repository interface {
	GetActualCapacity(ctx context.Context, week time.Time) (*entities.PrintCapacity, error)
	GetPrintCounter(ctx context.Context, week time.Time) (*entities.PrintCounter, error)
	UpdatePrintCounter(ctx context.Context, progress entities.PrintProgress) error
}
