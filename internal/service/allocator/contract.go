//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=allocator_test
package allocator

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type CapacityResolver interface {
	Resolve(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (entities.Capacity, error)
}
