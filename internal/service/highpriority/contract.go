//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=highpriority_test
package highpriority

import (
	"context"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type Queue interface {
	Query(ctx context.Context, scope entities.Scope, cursor entities.Cursor, limit int) (entities.Page[entities.HighPriorityItem], error)
	ListScopes(ctx context.Context) ([]entities.Scope, error)
	Delete(ctx context.Context, items []entities.HighPriorityItem) error
	InsertReadyToSend(ctx context.Context, items []entities.ReadyToSend) error
}

// Ledger счетчики мощности. Используются два экземпляра: used и dispatched.
type Ledger interface {
	Resolve(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (entities.Capacity, error)
	Increment(ctx context.Context, increments []entities.CapacityIncrement) error
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type dispatcherLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
