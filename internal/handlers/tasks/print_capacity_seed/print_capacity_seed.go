//go:generate mockgen -source=print_capacity_seed.go -destination=./contract_mocks_test.go -package=print_capacity_seed_test
package print_capacity_seed

import (
	"context"
	"time"

	"delayer/internal/entities"
)

type Repository interface {
	SaveCapacities(ctx context.Context, capacities []entities.PrintCapacity) error
}

// PrintCapacitySeed переносит таблицу мощностей печати из конфигурации в хранилище.
// Прогревается при старте, затем повторяет запись, чтобы подхватить восстановленную БД.
type PrintCapacitySeed struct {
	repository Repository
	capacities []entities.PrintCapacity
	interval   time.Duration
}

func NewPrintCapacitySeed(repository Repository, capacities []entities.PrintCapacity, interval time.Duration) *PrintCapacitySeed {
	return &PrintCapacitySeed{
		repository: repository,
		capacities: capacities,
		interval:   interval,
	}
}

func (p *PrintCapacitySeed) TTL() time.Duration {
	return p.interval
}

func (p *PrintCapacitySeed) Warmup() bool {
	return true
}

func (p *PrintCapacitySeed) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	return p.repository.SaveCapacities(ctxWithTimeout, p.capacities)
}

func (p *PrintCapacitySeed) Info() string {
	return "print capacity seed"
}
