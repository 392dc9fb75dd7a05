//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=paginator_test
package paginator

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/allocator"
	"delayer/internal/service/senderlimit"
	"delayer/pkg/logger"
)

type Ledger interface {
	Resolve(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (entities.Capacity, error)
	Increment(ctx context.Context, increments []entities.CapacityIncrement) error
}

type Allocator interface {
	Allocate(ctx context.Context, driverID string, tenderID string, week time.Time, items []entities.PaperDelivery) (allocator.Result, error)
}

type PrintGate interface {
	ActualWeeklyCeiling(ctx context.Context, week time.Time) (int, error)
	Admit(ctx context.Context, week time.Time, n int, ceiling int) (int, int, error)
}

type BacklogReader interface {
	Query(ctx context.Context, pk string, skPrefix string, cursor entities.Cursor, limit int) (entities.Page[entities.PaperDelivery], error)
}

type BacklogWriter interface {
	Insert(ctx context.Context, items []entities.PaperDelivery) error
}

type Drivers interface {
	ProvinceCapacities(ctx context.Context, tenderID string, province string, week time.Time) (entities.ProvinceDrivers, error)
	AssignDrivers(ctx context.Context, tenderID string, drivers []entities.DriverCapacity, items []entities.PaperDelivery) ([]entities.PaperDelivery, error)
}

type SenderLimits interface {
	Evaluate(ctx context.Context, week time.Time, items []entities.PaperDelivery, capacities map[entities.ProductType]int) (senderlimit.Result, error)
	Commit(ctx context.Context, increments []entities.SenderLimitIncrement) error
}

type paginatorLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
