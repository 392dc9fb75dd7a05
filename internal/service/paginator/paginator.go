package paginator

import (
	"context"
	"fmt"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"
)

type Config struct {
	TenderID                   string
	DriverCapacityQueryLimit   int
	ResidualCapacityQueryLimit int
	SenderLimitQueryLimit      int
	PrintCapacityQueryLimit    int
}

type Paginator struct {
	log          paginatorLogger
	cfg          Config
	ledger       Ledger
	allocator    Allocator
	printGate    PrintGate
	reader       BacklogReader
	writer       BacklogWriter
	drivers      Drivers
	senderLimits SenderLimits
}

func New(
	log paginatorLogger,
	cfg Config,
	ledger Ledger,
	allocator Allocator,
	printGate PrintGate,
	reader BacklogReader,
	writer BacklogWriter,
	drivers Drivers,
	senderLimits SenderLimits,
) *Paginator {
	return &Paginator{
		log:          log,
		cfg:          cfg,
		ledger:       ledger,
		allocator:    allocator,
		printGate:    printGate,
		reader:       reader,
		writer:       writer,
		drivers:      drivers,
		senderLimits: senderLimits,
	}
}

// pageReport итог одной страницы.
type pageReport struct {
	advanced int
	deferred int
	residual int
	excluded int
}

func (r pageReport) toRun() entities.RunReport {
	return entities.RunReport{
		Pages:    1,
		Advanced: r.advanced,
		Deferred: r.deferred,
		Residual: r.residual,
		Excluded: r.excluded,
	}
}

// jobLog логгер запуска из ctx (trace id, этап, скоуп), иначе собственный.
func (p *Paginator) jobLog(ctx context.Context) paginatorLogger {
	if l, ok := logger.FromContext(ctx); ok {
		return l
	}
	return p.log
}

// Run обходит партицию этапа постранично, начиная с курсора задания.
// Завершается, когда хранилище не вернуло курсор следующей страницы.
func (p *Paginator) Run(ctx context.Context, job entities.Job) (entities.RunReport, error) {
	switch job.Stage {
	case entities.StageSenderLimit:
		return p.runSenderLimit(ctx, job)
	case entities.StageDriverCapacity:
		return p.runCapacity(ctx, job, p.cfg.DriverCapacityQueryLimit)
	case entities.StageResidualCapacity:
		return p.runCapacity(ctx, job, p.cfg.ResidualCapacityQueryLimit)
	case entities.StagePrintCapacity:
		return p.runPrint(ctx, job)
	default:
		return entities.RunReport{}, fmt.Errorf("paginate %q: %w", job.Stage, entities.ErrUnknownStage)
	}
}

// runCapacity этапы driver и residual capacity. Размер страницы не больше остатка мощности
// провинции. Когда остаток исчерпан, оставшиеся страницы переносятся на следующую неделю
// без проверки cap.
func (p *Paginator) runCapacity(ctx context.Context, job entities.Job, queryLimit int) (entities.RunReport, error) {
	var report entities.RunReport
	log := p.jobLog(ctx)

	capacity, err := p.ledger.Resolve(ctx, job.Scope, p.cfg.TenderID, job.Week)
	if err != nil {
		return report, fmt.Errorf("resolve province capacity: %w", err)
	}

	log.Info("province capacity resolved",
		logger.NewField("declared", capacity.Declared),
		logger.NewField("used", capacity.Used),
	)

	pk := entities.BacklogPartition(job.Week, job.Stage)
	prefix := entities.ScopePrefix(job.Stage, job.Scope)

	residual := capacity.Residual()
	if residual <= 0 {
		log.Warn("no province capacity, sending deliveries to next week")
		drained, err := p.drain(ctx, job.Stage, pk, prefix, job.Cursor, queryLimit)
		report.Add(drained)
		return report, err
	}

	ceiling, err := p.printGate.ActualWeeklyCeiling(ctx, job.Week)
	if err != nil {
		return report, fmt.Errorf("resolve print ceiling: %w", err)
	}

	cursor := job.Cursor
	for {
		page, err := p.reader.Query(ctx, pk, prefix, cursor, min(residual, queryLimit))
		if err != nil {
			return report, fmt.Errorf("query backlog at cursor %q: %w", cursor, err)
		}
		if len(page.Items) == 0 {
			if report.Pages == 0 {
				log.Warn("no paper deliveries found", logger.NewField("cursor", string(cursor)))
			}
			return report, nil
		}

		pr, err := p.processCapacityPage(ctx, job, capacity.Declared, ceiling, page.Items)
		if err != nil {
			return report, fmt.Errorf("process page at cursor %q: %w", cursor, err)
		}
		observe(job.Stage.String(), pr)
		report.Add(pr.toRun())

		residual -= pr.advanced
		log.Debug("page processed",
			logger.NewField("cursor", string(cursor)),
			logger.NewField("advanced", pr.advanced),
			logger.NewField("deferred", pr.deferred),
			logger.NewField("residual_capacity", residual),
		)

		if !page.HasNext() {
			return report, nil
		}
		cursor = page.NextCursor

		if residual <= 0 {
			log.Info("province capacity exhausted, sending remaining deliveries to next week")
			drained, err := p.drain(ctx, job.Stage, pk, prefix, cursor, queryLimit)
			report.Add(drained)
			return report, err
		}
	}
}

// processCapacityPage распределяет страницу по cap, пишет принятые и перенесенные,
// затем обновляет счетчики печати и мощности. Счетчики обновляются только после записи.
func (p *Paginator) processCapacityPage(
	ctx context.Context,
	job entities.Job,
	provinceDeclared, ceiling int,
	items []entities.PaperDelivery,
) (pageReport, error) {
	res, err := p.allocator.Allocate(ctx, job.Scope.DriverID, p.cfg.TenderID, job.Week, items)
	if err != nil {
		return pageReport{}, fmt.Errorf("allocate: %w", err)
	}

	if err := p.writer.Insert(ctx, res.Advanced); err != nil {
		return pageReport{}, fmt.Errorf("write advanced deliveries: %w", err)
	}
	if err := p.writer.Insert(ctx, res.Deferred); err != nil {
		return pageReport{}, fmt.Errorf("write deferred deliveries: %w", err)
	}

	admitted := res.Admitted()
	_, excluded, err := p.printGate.Admit(ctx, job.Week, admitted, ceiling)
	if err != nil {
		return pageReport{}, fmt.Errorf("record print progress: %w", err)
	}

	increments := res.Increments
	if admitted > 0 {
		increments = append(increments, entities.CapacityIncrement{
			Scope:        job.Scope,
			DeliveryWeek: job.Week,
			Delta:        admitted,
			Declared:     provinceDeclared,
		})
	}
	if err := p.ledger.Increment(ctx, increments); err != nil {
		return pageReport{}, fmt.Errorf("increment used capacities: %w", err)
	}

	return pageReport{
		advanced: admitted,
		deferred: len(res.Deferred),
		excluded: excluded,
	}, nil
}

// drain переносит все оставшиеся страницы скоупа на следующую неделю того же этапа.
func (p *Paginator) drain(
	ctx context.Context,
	stage entities.Stage,
	pk, prefix string,
	cursor entities.Cursor,
	queryLimit int,
) (entities.RunReport, error) {
	var report entities.RunReport
	for {
		page, err := p.reader.Query(ctx, pk, prefix, cursor, queryLimit)
		if err != nil {
			return report, fmt.Errorf("query backlog at cursor %q: %w", cursor, err)
		}
		if len(page.Items) == 0 {
			return report, nil
		}

		postponed := make([]entities.PaperDelivery, 0, len(page.Items))
		for _, item := range page.Items {
			postponed = append(postponed, item.Postpone())
		}
		if err := p.writer.Insert(ctx, postponed); err != nil {
			return report, fmt.Errorf("write deferred deliveries at cursor %q: %w", cursor, err)
		}

		pr := pageReport{deferred: len(postponed)}
		observe(stage.String(), pr)
		report.Add(pr.toRun())

		if !page.HasNext() {
			return report, nil
		}
		cursor = page.NextCursor
	}
}

// runSenderLimit этап sender limit по провинции: назначает водителей, делит страницу
// по лимитам отправителей и обновляет счетчики использованных лимитов.
func (p *Paginator) runSenderLimit(ctx context.Context, job entities.Job) (entities.RunReport, error) {
	var report entities.RunReport
	log := p.jobLog(ctx)

	province := job.Scope.GeoKey
	drivers, err := p.drivers.ProvinceCapacities(ctx, p.cfg.TenderID, province, job.Week)
	if err != nil {
		return report, fmt.Errorf("resolve province drivers: %w", err)
	}

	pk := entities.BacklogPartition(job.Week, entities.StageSenderLimit)
	prefix := entities.ScopePrefix(entities.StageSenderLimit, job.Scope)

	cursor := job.Cursor
	for {
		page, err := p.reader.Query(ctx, pk, prefix, cursor, p.cfg.SenderLimitQueryLimit)
		if err != nil {
			return report, fmt.Errorf("query backlog at cursor %q: %w", cursor, err)
		}
		if len(page.Items) == 0 {
			if report.Pages == 0 {
				log.Warn("no paper deliveries found", logger.NewField("cursor", string(cursor)))
			}
			return report, nil
		}

		pr, err := p.processSenderLimitPage(ctx, job.Week, drivers, page.Items)
		if err != nil {
			return report, fmt.Errorf("process page at cursor %q: %w", cursor, err)
		}
		observe(job.Stage.String(), pr)
		report.Add(pr.toRun())

		if !page.HasNext() {
			return report, nil
		}
		cursor = page.NextCursor
	}
}

func (p *Paginator) processSenderLimitPage(
	ctx context.Context,
	week time.Time,
	drivers entities.ProvinceDrivers,
	items []entities.PaperDelivery,
) (pageReport, error) {
	assigned, err := p.drivers.AssignDrivers(ctx, p.cfg.TenderID, drivers.Drivers, items)
	if err != nil {
		return pageReport{}, fmt.Errorf("assign drivers: %w", err)
	}

	res, err := p.senderLimits.Evaluate(ctx, week, assigned, drivers.Capacities)
	if err != nil {
		return pageReport{}, fmt.Errorf("evaluate sender limits: %w", err)
	}

	if err := p.writer.Insert(ctx, res.ToDriver); err != nil {
		return pageReport{}, fmt.Errorf("write driver capacity deliveries: %w", err)
	}
	if err := p.writer.Insert(ctx, res.ToResidual); err != nil {
		return pageReport{}, fmt.Errorf("write residual capacity deliveries: %w", err)
	}
	if err := p.senderLimits.Commit(ctx, res.Increments); err != nil {
		return pageReport{}, fmt.Errorf("increment used sender limits: %w", err)
	}

	return pageReport{
		advanced: len(res.ToDriver),
		residual: len(res.ToResidual),
	}, nil
}

// runPrint переводит отправления этапа печати недели в SENT_TO_PREPARE_PHASE_2.
// Потолок печати уже учтен при приеме на этап.
func (p *Paginator) runPrint(ctx context.Context, job entities.Job) (entities.RunReport, error) {
	var report entities.RunReport
	log := p.jobLog(ctx)

	pk := entities.BacklogPartition(job.Week, entities.StagePrintCapacity)
	cursor := job.Cursor
	for {
		page, err := p.reader.Query(ctx, pk, "", cursor, p.cfg.PrintCapacityQueryLimit)
		if err != nil {
			return report, fmt.Errorf("query backlog at cursor %q: %w", cursor, err)
		}
		if len(page.Items) == 0 {
			if report.Pages == 0 {
				log.Warn("no paper deliveries found", logger.NewField("cursor", string(cursor)))
			}
			return report, nil
		}

		advanced := make([]entities.PaperDelivery, 0, len(page.Items))
		for _, item := range page.Items {
			advanced = append(advanced, item.Advance())
		}
		if err := p.writer.Insert(ctx, advanced); err != nil {
			return report, fmt.Errorf("write phase two deliveries at cursor %q: %w", cursor, err)
		}

		pr := pageReport{advanced: len(advanced)}
		observe(job.Stage.String(), pr)
		report.Add(pr.toRun())

		if !page.HasNext() {
			return report, nil
		}
		cursor = page.NextCursor
	}
}
