package highpriority

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/allocator"
	"delayer/pkg/logger"
)

type Config struct {
	TenderID              string
	QueryLimit            int
	DeliveryDateInterval  time.Duration
	DeliveryDateDayOfWeek time.Weekday
}

type Dispatcher struct {
	log        dispatcherLogger
	cfg        Config
	queue      Queue
	used       Ledger
	dispatched Ledger
	txManager  txManager
}

func New(
	log dispatcherLogger,
	cfg Config,
	queue Queue,
	used Ledger,
	dispatched Ledger,
	txManager txManager,
) *Dispatcher {
	return &Dispatcher{
		log:        log,
		cfg:        cfg,
		queue:      queue,
		used:       used,
		dispatched: dispatched,
		txManager:  txManager,
	}
}

// DispatchAll запускает Dispatch по всем скоупам, в которых есть отправления.
// Ошибка одного скоупа не останавливает остальные.
func (d *Dispatcher) DispatchAll(ctx context.Context, week time.Time) (entities.RunReport, error) {
	var report entities.RunReport

	scopes, err := d.queue.ListScopes(ctx)
	if err != nil {
		return report, fmt.Errorf("list high priority scopes: %w", err)
	}

	var errs []error
	for _, scope := range scopes {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		r, err := d.Dispatch(ctx, scope, week)
		report.Add(r)
		if err != nil {
			d.log.Error("high priority dispatch failed",
				logger.NewField("scope", scope.Key()),
				logger.Err(err),
			)
			errs = append(errs, fmt.Errorf("dispatch %s: %w", scope.Key(), err))
		}
	}
	return report, errors.Join(errs...)
}

// Dispatch обходит очередь скоупа постранично в порядке создания. week неделя доставки,
// в которую планируются слоты и на которую списывается мощность. Отправление принимается,
// если есть место и у скоупа, и у его cap. Принятые атомарно удаляются из очереди и
// записываются в ready to send со слотом доставки. Не принятые остаются в очереди.
func (d *Dispatcher) Dispatch(ctx context.Context, scope entities.Scope, week time.Time) (entities.RunReport, error) {
	var report entities.RunReport

	cursor := entities.Cursor("")
	for {
		page, err := d.queue.Query(ctx, scope, cursor, d.cfg.QueryLimit)
		if err != nil {
			return report, fmt.Errorf("query high priority queue at cursor %q: %w", cursor, err)
		}
		if len(page.Items) == 0 {
			return report, nil
		}

		admitted, err := d.processPage(ctx, scope, week, page.Items)
		if err != nil {
			return report, fmt.Errorf("process page at cursor %q: %w", cursor, err)
		}
		report.Add(entities.RunReport{
			Pages:    1,
			Advanced: admitted,
			Deferred: len(page.Items) - admitted,
		})

		if !page.HasNext() {
			return report, nil
		}
		cursor = page.NextCursor
	}
}

func (d *Dispatcher) processPage(
	ctx context.Context,
	scope entities.Scope,
	week time.Time,
	items []entities.HighPriorityItem,
) (int, error) {
	outer, err := d.used.Resolve(ctx, scope, d.cfg.TenderID, week)
	if err != nil {
		return 0, fmt.Errorf("resolve scope capacity: %w", err)
	}

	residual := outer.Residual()
	if residual == 0 {
		d.log.Warn("no capacity for high priority scope",
			logger.NewField("scope", scope.Key()),
		)
		return 0, nil
	}
	candidates := items[:min(residual, len(items))]

	caps := make([]string, 0)
	for _, item := range candidates {
		if !slices.Contains(caps, item.Cap) {
			caps = append(caps, item.Cap)
		}
	}
	slices.Sort(caps)

	capCapacities, err := allocator.ResolveCaps(ctx, d.used, scope.DriverID, d.cfg.TenderID, week, caps)
	if err != nil {
		return 0, err
	}

	capResiduals := make(map[string]int, len(caps))
	for capCode, capacity := range capCapacities {
		capResiduals[capCode] = capacity.Residual()
	}

	admitted := make([]entities.HighPriorityItem, 0, len(candidates))
	perCap := make(map[string]int, len(caps))
	for _, item := range candidates {
		if capResiduals[item.Cap] == 0 {
			continue
		}
		capResiduals[item.Cap]--
		perCap[item.Cap]++
		admitted = append(admitted, item)
	}
	if len(admitted) == 0 {
		d.log.Warn("no cap capacity for high priority scope",
			logger.NewField("scope", scope.Key()),
			logger.NewField("caps", caps),
		)
		return 0, nil
	}

	dispatched, err := d.dispatched.Resolve(ctx, scope, d.cfg.TenderID, week)
	if err != nil {
		return 0, fmt.Errorf("resolve dispatched capacity: %w", err)
	}

	// слоты лежат в той же неделе, на которую списывается мощность
	start := entities.WeekdayFrom(week, d.cfg.DeliveryDateDayOfWeek)
	plan := newSlotPlan(start, entities.NextWeek(week), d.cfg.DeliveryDateInterval, outer.Declared, dispatched.Used)

	ready := make([]entities.ReadyToSend, 0, len(admitted))
	for _, item := range admitted {
		ready = append(ready, entities.ReadyToSend{
			DeliveryDate: plan.next(),
			RequestID:    item.RequestID,
			Iun:          item.Iun,
		})
	}

	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		if err := d.queue.Delete(ctx, admitted); err != nil {
			return err
		}
		return d.queue.InsertReadyToSend(ctx, ready)
	})
	if err != nil {
		TransactionFailuresTotal.Inc()
		return 0, fmt.Errorf("%w: %w", ErrHighPriorityTransaction, err)
	}
	DispatchedTotal.Add(float64(len(admitted)))

	increments := make([]entities.CapacityIncrement, 0, len(perCap)+1)
	for _, capCode := range caps {
		if perCap[capCode] == 0 {
			continue
		}
		increments = append(increments, entities.CapacityIncrement{
			Scope:        entities.Scope{DriverID: scope.DriverID, GeoKey: capCode},
			DeliveryWeek: week,
			Delta:        perCap[capCode],
			Declared:     capCapacities[capCode].Declared,
		})
	}
	increments = append(increments, entities.CapacityIncrement{
		Scope:        scope,
		DeliveryWeek: week,
		Delta:        len(admitted),
		Declared:     outer.Declared,
	})

	if err := d.used.Increment(ctx, increments); err != nil {
		return 0, fmt.Errorf("increment used capacities: %w", err)
	}
	if err := d.dispatched.Increment(ctx, increments); err != nil {
		return 0, fmt.Errorf("increment dispatched capacities: %w", err)
	}

	d.log.Info("high priority deliveries dispatched",
		logger.NewField("scope", scope.Key()),
		logger.NewField("dispatched", len(admitted)),
	)
	return len(admitted), nil
}
