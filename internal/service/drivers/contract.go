//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_test
package drivers

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type CapacityRepository interface {
	ListActiveOnProvince(ctx context.Context, tenderID string, province string, at time.Time) ([]entities.DriverCapacity, error)
}

type CounterRepository interface {
	ListExcluded(ctx context.Context, week time.Time, province string) ([]entities.ExcludedCounter, error)
}

type Cache interface {
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	SetMany(ctx context.Context, values map[string]string) error
}

type Gateway interface {
	ResolveDrivers(ctx context.Context, tenderID string, requests []entities.DriverRequest) (map[string]string, error)
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Debug(msg string, fields ...logger.Field)
}
