package senderlimit

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"delayer/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Result разбиение страницы этапа sender limit.
type Result struct {
	ToDriver   []entities.PaperDelivery
	ToResidual []entities.PaperDelivery
	Increments []entities.SenderLimitIncrement
}

// limit лимит ключа в штуках и сколько уже использовано.
type limit struct {
	limit int
	used  int
}

func (l limit) residual() int {
	return max(0, l.limit-l.used)
}

type Evaluator struct {
	repository Repository
	retrier    retrier
	maxKeys    int
}

func New(repository Repository, retrier retrier, maxKeys int) *Evaluator {
	return &Evaluator{
		repository: repository,
		retrier:    retrier,
		maxKeys:    maxKeys,
	}
}

// Evaluate делит страницу по лимитам отправителей. RS и повторные попытки идут на этап
// driver capacity без проверки. Остальные группируются по paId~productType~province,
// первые max(0, limit - used) группы идут в driver capacity, остаток в residual capacity.
// capacities мощность провинции по продукту, от нее считается лимит в штуках.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	week time.Time,
	items []entities.PaperDelivery,
	capacities map[entities.ProductType]int,
) (Result, error) {
	var res Result

	groups := make(map[string][]entities.PaperDelivery)
	for _, item := range items {
		if item.ExemptFromSenderLimit() {
			res.ToDriver = append(res.ToDriver, item.MoveTo(entities.StageDriverCapacity, week))
			continue
		}
		key := entities.SenderLimitKey(item.SenderPaID, item.ProductType, item.Province)
		groups[key] = append(groups[key], item)
	}
	if len(groups) == 0 {
		return res, nil
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	limits, err := e.resolveLimits(ctx, entities.ShipmentDate(week), keys, capacities)
	if err != nil {
		return Result{}, err
	}

	for _, key := range keys {
		group := groups[key]
		slices.SortStableFunc(group, func(a, b entities.PaperDelivery) int {
			return strings.Compare(a.SortKey(), b.SortKey())
		})

		l := limits[key]
		admitted := min(l.residual(), len(group))
		for _, item := range group[:admitted] {
			res.ToDriver = append(res.ToDriver, item.MoveTo(entities.StageDriverCapacity, week))
		}
		for _, item := range group[admitted:] {
			res.ToResidual = append(res.ToResidual, item.MoveTo(entities.StageResidualCapacity, week))
		}

		if admitted > 0 {
			first := group[0]
			res.Increments = append(res.Increments, entities.SenderLimitIncrement{
				PaID:         first.SenderPaID,
				ProductType:  first.ProductType,
				Province:     first.Province,
				DeliveryDate: entities.ShipmentDate(week),
				Delta:        admitted,
				SenderLimit:  l.limit,
			})
		}
	}
	return res, nil
}

// resolveLimits сначала ищет счетчики использованного лимита, для ключей без счетчика
// считает лимит от процента. Ключ без процента получает нулевой лимит.
func (e *Evaluator) resolveLimits(
	ctx context.Context,
	shipmentDate time.Time,
	keys []string,
	capacities map[entities.ProductType]int,
) (map[string]limit, error) {
	res := make(map[string]limit, len(keys))

	for chunk := range slices.Chunk(keys, e.chunkSize()) {
		used, err := e.repository.GetUsed(ctx, chunk, shipmentDate)
		if err != nil {
			return nil, fmt.Errorf("get used sender limits: %w", err)
		}
		for _, u := range used {
			res[u.Key()] = limit{limit: u.SenderLimit, used: u.NumberOfShipment}
		}
	}

	missing := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := res[key]; !ok {
			missing = append(missing, key)
		}
	}

	for chunk := range slices.Chunk(missing, e.chunkSize()) {
		limits, err := e.repository.GetLimits(ctx, chunk, shipmentDate)
		if err != nil {
			return nil, fmt.Errorf("get sender limits: %w", err)
		}
		for _, l := range limits {
			res[l.Key()] = limit{limit: l.Limit(capacities[l.ProductType])}
		}
	}
	return res, nil
}

// Commit прибавляет принятые к счетчикам использованного лимита. Прибавки одного ключа
// суммируются, разные ключи пишутся параллельно.
func (e *Evaluator) Commit(ctx context.Context, increments []entities.SenderLimitIncrement) error {
	merged := merge(increments)
	if len(merged) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, inc := range merged {
		g.Go(func() error {
			err := e.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
				return e.repository.IncrementUsed(ctx, inc)
			})
			if err != nil {
				key := entities.SenderLimitKey(inc.PaID, inc.ProductType, inc.Province)
				return fmt.Errorf("increment used sender limit %s: %w", key, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func merge(increments []entities.SenderLimitIncrement) []entities.SenderLimitIncrement {
	index := make(map[string]int, len(increments))
	merged := make([]entities.SenderLimitIncrement, 0, len(increments))
	for _, inc := range increments {
		if inc.Delta == 0 {
			continue
		}
		key := entities.JoinKey(
			entities.SenderLimitKey(inc.PaID, inc.ProductType, inc.Province),
			entities.FormatDate(inc.DeliveryDate),
		)
		if i, ok := index[key]; ok {
			merged[i].Delta += inc.Delta
			merged[i].SenderLimit = inc.SenderLimit
			continue
		}
		index[key] = len(merged)
		merged = append(merged, inc)
	}
	return merged
}

func (e *Evaluator) chunkSize() int {
	if e.maxKeys <= 0 {
		return 25
	}
	return e.maxKeys
}
