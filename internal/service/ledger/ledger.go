package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delayer/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Ledger учет заявленной и использованной мощности скоупов.
// Один и тот же тип обслуживает счетчики used и dispatched, различаются только репозиторием.
type Ledger struct {
	counters CounterRepository
	declared DeclaredRepository
	retrier  retrier
}

func New(counters CounterRepository, declared DeclaredRepository, retrier retrier) *Ledger {
	return &Ledger{
		counters: counters,
		declared: declared,
		retrier:  retrier,
	}
}

// Resolve возвращает заявленную и использованную мощность скоупа на неделю.
// Если счетчика еще нет, used = 0, а заявленная берется из справочника.
// Отсутствие заявленной мощности означает ноль, а не ошибку.
func (l *Ledger) Resolve(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (entities.Capacity, error) {
	counter, err := l.counters.Get(ctx, scope, week)
	if err == nil {
		return entities.Capacity{Declared: counter.Declared, Used: counter.Used}, nil
	}
	if !errors.Is(err, ErrCounterNotFound) {
		return entities.Capacity{}, fmt.Errorf("get used capacity %s: %w", scope.Key(), err)
	}

	declared, err := l.Declared(ctx, scope, tenderID, week)
	if err != nil {
		return entities.Capacity{}, err
	}
	return entities.Capacity{Declared: declared}, nil
}

// Declared заявленная мощность из справочника, 0 если интервала нет.
func (l *Ledger) Declared(ctx context.Context, scope entities.Scope, tenderID string, week time.Time) (int, error) {
	declared, err := l.declared.GetActive(ctx, tenderID, scope.DriverID, scope.GeoKey, week)
	if err != nil {
		if errors.Is(err, ErrDeclaredCapacityNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get declared capacity %s: %w", scope.Key(), err)
	}
	return declared, nil
}

// Increment прибавляет дельты к счетчикам. Дельты одного скоупа и недели суммируются,
// прибавки разных скоупов выполняются параллельно, каждая со своими ретраями.
// Повторяется только упавшая прибавка, уже примененные не переотправляются.
func (l *Ledger) Increment(ctx context.Context, increments []entities.CapacityIncrement) error {
	merged := Merge(increments)
	if len(merged) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, inc := range merged {
		g.Go(func() error {
			err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
				return l.counters.Increment(ctx, inc)
			})
			if err != nil {
				return fmt.Errorf("increment used capacity %s by %d: %w", inc.Key(), inc.Delta, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Merge суммирует дельты по скоупу и неделе, сохраняя порядок первого появления.
// Нулевые дельты отбрасываются.
func Merge(increments []entities.CapacityIncrement) []entities.CapacityIncrement {
	type key struct {
		scope entities.Scope
		week  time.Time
	}

	index := make(map[key]int, len(increments))
	merged := make([]entities.CapacityIncrement, 0, len(increments))
	for _, inc := range increments {
		k := key{scope: inc.Scope, week: inc.DeliveryWeek}
		if i, ok := index[k]; ok {
			merged[i].Delta += inc.Delta
			merged[i].Declared = inc.Declared
			continue
		}
		index[k] = len(merged)
		merged = append(merged, inc)
	}

	res := merged[:0]
	for _, inc := range merged {
		if inc.Delta != 0 {
			res = append(res, inc)
		}
	}
	return res
}
