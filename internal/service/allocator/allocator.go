package allocator

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"delayer/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Result разбиение страницы на принятые и перенесенные на следующую неделю.
type Result struct {
	Advanced   []entities.PaperDelivery
	Deferred   []entities.PaperDelivery
	Increments []entities.CapacityIncrement
}

func (r Result) Admitted() int {
	return len(r.Advanced)
}

type Allocator struct {
	resolver CapacityResolver
}

func New(resolver CapacityResolver) *Allocator {
	return &Allocator{
		resolver: resolver,
	}
}

// Allocate распределяет отправления одного водителя по мощностям cap. В каждой группе cap
// принимаются первые min(остаток, размер группы) по ключу сортировки этапа,
// остальные переносятся на следующую неделю.
func (a *Allocator) Allocate(
	ctx context.Context,
	driverID, tenderID string,
	week time.Time,
	items []entities.PaperDelivery,
) (Result, error) {
	groups := GroupByCap(items)
	caps := make([]string, 0, len(groups))
	for capCode := range groups {
		caps = append(caps, capCode)
	}
	sort.Strings(caps)

	capacities, err := ResolveCaps(ctx, a.resolver, driverID, tenderID, week, caps)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, capCode := range caps {
		group := groups[capCode]
		capacity := capacities[capCode]
		admitted := min(capacity.Residual(), len(group))

		for _, item := range group[:admitted] {
			res.Advanced = append(res.Advanced, item.Advance())
		}
		for _, item := range group[admitted:] {
			res.Deferred = append(res.Deferred, item.Postpone())
		}

		if admitted > 0 {
			res.Increments = append(res.Increments, entities.CapacityIncrement{
				Scope:        entities.Scope{DriverID: driverID, GeoKey: capCode},
				DeliveryWeek: week,
				Delta:        admitted,
				Declared:     capacity.Declared,
			})
		}
	}
	return res, nil
}

// GroupByCap группирует отправления по cap, внутри группы порядок по ключу сортировки.
func GroupByCap(items []entities.PaperDelivery) map[string][]entities.PaperDelivery {
	groups := make(map[string][]entities.PaperDelivery)
	for _, item := range items {
		groups[item.Cap] = append(groups[item.Cap], item)
	}
	for _, group := range groups {
		slices.SortStableFunc(group, func(a, b entities.PaperDelivery) int {
			return strings.Compare(a.SortKey(), b.SortKey())
		})
	}
	return groups
}

// ResolveCaps параллельно получает мощности всех cap водителя.
func ResolveCaps(
	ctx context.Context,
	resolver CapacityResolver,
	driverID, tenderID string,
	week time.Time,
	caps []string,
) (map[string]entities.Capacity, error) {
	var mu sync.Mutex
	res := make(map[string]entities.Capacity, len(caps))

	g, ctx := errgroup.WithContext(ctx)
	for _, capCode := range caps {
		g.Go(func() error {
			capacity, err := resolver.Resolve(ctx, entities.Scope{DriverID: driverID, GeoKey: capCode}, tenderID, week)
			if err != nil {
				return fmt.Errorf("resolve cap %s capacity: %w", capCode, err)
			}

			mu.Lock()
			res[capCode] = capacity
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
