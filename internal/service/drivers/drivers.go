package drivers

import (
	"context"
	"fmt"
	"slices"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type Service struct {
	log        serviceLogger
	capacities CapacityRepository
	counters   CounterRepository
	cache      Cache
	gateway    Gateway
}

func New(
	log serviceLogger,
	capacities CapacityRepository,
	counters CounterRepository,
	cache Cache,
	gateway Gateway,
) *Service {
	return &Service{
		log:        log,
		capacities: capacities,
		counters:   counters,
		cache:      cache,
		gateway:    gateway,
	}
}

// ProvinceCapacities водители провинции и мощность по продуктам. Водители с пересекающимися
// наборами продуктов объединяются в группу, мощность группы это сумма заявленных
// за вычетом исключенных по продуктам группы.
func (s *Service) ProvinceCapacities(ctx context.Context, tenderID, province string, week time.Time) (entities.ProvinceDrivers, error) {
	drivers, err := s.capacities.ListActiveOnProvince(ctx, tenderID, province, week)
	if err != nil {
		return entities.ProvinceDrivers{}, fmt.Errorf("list province drivers: %w", err)
	}
	if len(drivers) == 0 {
		return entities.ProvinceDrivers{}, fmt.Errorf("province %s: %w", province, ErrDriversNotFound)
	}

	excluded, err := s.counters.ListExcluded(ctx, week, province)
	if err != nil {
		return entities.ProvinceDrivers{}, fmt.Errorf("list excluded counters: %w", err)
	}
	excludedByProduct := make(map[entities.ProductType]int, len(excluded))
	for _, e := range excluded {
		excludedByProduct[e.ProductType] += e.NumberOfShipments
	}

	capacities := make(map[entities.ProductType]int)
	for _, group := range groupByProducts(drivers) {
		capacity := 0
		for _, d := range group.drivers {
			capacity += d.Capacity
		}
		for _, product := range group.products {
			capacity -= excludedByProduct[product]
		}
		capacity = max(capacity, 0)

		for _, product := range group.products {
			capacities[product] = capacity
		}
	}

	return entities.ProvinceDrivers{Drivers: drivers, Capacities: capacities}, nil
}

type driverGroup struct {
	drivers  []entities.DriverCapacity
	products []entities.ProductType
}

// groupByProducts объединяет водителей, у которых пересекаются продукты, в том числе транзитивно.
func groupByProducts(drivers []entities.DriverCapacity) []driverGroup {
	var groups []driverGroup
	for _, d := range drivers {
		merged := driverGroup{
			drivers:  []entities.DriverCapacity{d},
			products: slices.Clone(d.Products),
		}

		rest := groups[:0]
		for _, g := range groups {
			if overlaps(g.products, merged.products) {
				merged.drivers = append(g.drivers, merged.drivers...)
				merged.products = union(g.products, merged.products)
				continue
			}
			rest = append(rest, g)
		}
		groups = append(rest, merged)
	}
	return groups
}

func overlaps(a, b []entities.ProductType) bool {
	for _, p := range a {
		if slices.Contains(b, p) {
			return true
		}
	}
	return false
}

func union(a, b []entities.ProductType) []entities.ProductType {
	res := slices.Clone(a)
	for _, p := range b {
		if !slices.Contains(res, p) {
			res = append(res, p)
		}
	}
	return res
}

// AssignDrivers проставляет водителя каждому отправлению. Единственный водитель провинции
// назначается сразу, иначе водитель ищется по cap~productType сначала в кэше,
// промахи разрешаются одним вызовом сервиса водителей и кладутся в кэш.
func (s *Service) AssignDrivers(
	ctx context.Context,
	tenderID string,
	drivers []entities.DriverCapacity,
	items []entities.PaperDelivery,
) ([]entities.PaperDelivery, error) {
	res := make([]entities.PaperDelivery, 0, len(items))

	if len(drivers) == 1 {
		for _, item := range items {
			item.UnifiedDeliveryDriver = drivers[0].UnifiedDeliveryDriver
			item.TenderID = tenderID
			res = append(res, item)
		}
		return res, nil
	}

	resolved, err := s.resolve(ctx, tenderID, items)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		key := entities.DriverRequest{Cap: item.Cap, ProductType: item.ProductType}.Key()
		driver, ok := resolved[key]
		if !ok || driver == "" {
			return nil, fmt.Errorf("%s: %w", key, ErrDriverNotResolved)
		}
		item.UnifiedDeliveryDriver = driver
		item.TenderID = tenderID
		res = append(res, item)
	}
	return res, nil
}

func (s *Service) resolve(ctx context.Context, tenderID string, items []entities.PaperDelivery) (map[string]string, error) {
	requests := make(map[string]entities.DriverRequest)
	keys := make([]string, 0)
	for _, item := range items {
		r := entities.DriverRequest{Cap: item.Cap, ProductType: item.ProductType}
		if _, ok := requests[r.Key()]; ok {
			continue
		}
		requests[r.Key()] = r
		keys = append(keys, r.Key())
	}

	resolved, err := s.cache.GetMany(ctx, keys)
	if err != nil {
		s.log.Warn("driver cache read failed, resolving all keys upstream", logger.Err(err))
		resolved = make(map[string]string)
	}

	var misses []entities.DriverRequest
	for _, key := range keys {
		if _, ok := resolved[key]; !ok {
			misses = append(misses, requests[key])
		}
	}
	if len(misses) == 0 {
		return resolved, nil
	}

	s.log.Debug("resolving drivers upstream",
		logger.NewField("hits", len(keys)-len(misses)),
		logger.NewField("misses", len(misses)),
	)

	fetched, err := s.gateway.ResolveDrivers(ctx, tenderID, misses)
	if err != nil {
		return nil, fmt.Errorf("resolve drivers: %w", err)
	}

	if err := s.cache.SetMany(ctx, fetched); err != nil {
		s.log.Warn("driver cache write failed", logger.Err(err))
	}

	for key, driver := range fetched {
		resolved[key] = driver
	}
	return resolved, nil
}
