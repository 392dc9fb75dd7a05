package app

import (
	"context"
	"time"

	driverGateway "delayer/internal/gateway/grpc/driver"
	"delayer/internal/handlers/tasks/high_priority_dispatch"
	"delayer/internal/handlers/tasks/print_capacity_seed"
	"delayer/internal/handlers/tasks/used_capacity_export"
	"delayer/internal/pkg/config"
	"delayer/internal/pkg/s3storage"
	driverCacheRepo "delayer/internal/repository/driver_cache"
	driverCapacityRepo "delayer/internal/repository/driver_capacity"
	highPriorityRepo "delayer/internal/repository/high_priority"
	paperDeliveryRepo "delayer/internal/repository/paper_delivery"
	printCounterRepo "delayer/internal/repository/print_counter"
	senderLimitRepo "delayer/internal/repository/sender_limit"
	usedCapacityRepo "delayer/internal/repository/used_capacity"
	"delayer/internal/service/allocator"
	"delayer/internal/service/backlog"
	"delayer/internal/service/drivers"
	"delayer/internal/service/export"
	"delayer/internal/service/highpriority"
	"delayer/internal/service/ledger"
	"delayer/internal/service/paginator"
	"delayer/internal/service/printgate"
	"delayer/internal/service/runner"
	"delayer/internal/service/senderlimit"
	"delayer/pkg/background"
	"delayer/pkg/logger"
	"delayer/pkg/querier"
	"delayer/pkg/retrier"
	"delayer/pkg/retrier/backoff_adapter"
	"delayer/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

type (
	// UsedLedger и DispatchedLedger счетчики used и dispatched, один тип на разных таблицах.
	UsedLedger       struct{ *ledger.Ledger }
	DispatchedLedger struct{ *ledger.Ledger }

	// WriteRetrier ретраи пакетной записи бэклога, CounterRetrier ретраи прибавок к счетчикам.
	WriteRetrier   struct{ *backoff_adapter.Retrier }
	CounterRetrier struct{ *backoff_adapter.Retrier }
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideWriteRetrier(cfg *config.Config) WriteRetrier {
	return WriteRetrier{backoff_adapter.New(retrier.Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  10 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     backlog.ShouldRetry,
	}.WithMaxAttempts(cfg.Delayer.BatchWriteMaxAttempts))}
}

func provideCounterRetrier(cfg *config.Config) CounterRetrier {
	return CounterRetrier{backoff_adapter.New(retrier.Config{
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
		MaxElapsedTime:  5 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
	}.WithMaxAttempts(cfg.Delayer.BatchWriteMaxAttempts))}
}

func provideUsedLedger(querier *querier.Querier, declared *driverCapacityRepo.Repository, retrier CounterRetrier) UsedLedger {
	counters := usedCapacityRepo.New(querier, usedCapacityRepo.TableUsed)
	return UsedLedger{ledger.New(counters, declared, retrier)}
}

func provideDispatchedLedger(querier *querier.Querier, declared *driverCapacityRepo.Repository, retrier CounterRetrier) DispatchedLedger {
	counters := usedCapacityRepo.New(querier, usedCapacityRepo.TableDispatched)
	return DispatchedLedger{ledger.New(counters, declared, retrier)}
}

func provideUsedCapacityReader(querier *querier.Querier) *usedCapacityRepo.Repository {
	return usedCapacityRepo.New(querier, usedCapacityRepo.TableUsed)
}

func provideBacklogWriter(repository *paperDeliveryRepo.Repository, retrier WriteRetrier, cfg *config.Config) *backlog.Writer {
	return backlog.New(repository, retrier, cfg.Delayer.BatchWriteChunkSize)
}

func provideSenderLimits(repository *senderLimitRepo.Repository, retrier CounterRetrier, cfg *config.Config) *senderlimit.Evaluator {
	return senderlimit.New(repository, retrier, cfg.Delayer.SenderLimitMaxKeys)
}

func providePrintGate(repository *printCounterRepo.Repository, cfg *config.Config) *printgate.Gate {
	return printgate.New(repository, cfg.Delayer.PrintCapacityWeeklyWorkingDays, cfg.Delayer.PrintCounterTTL)
}

func provideDriverCache(client *redis.Client, cfg *config.Config) *driverCacheRepo.Repository {
	return driverCacheRepo.New(client, cfg.Delayer.DriverCacheTTL)
}

func provideDriverGateway(conn *grpc.ClientConn) *driverGateway.DriverGateway {
	return driverGateway.New(conn)
}

func provideDrivers(
	log logger.Logger,
	capacities *driverCapacityRepo.Repository,
	counters *printCounterRepo.Repository,
	cache *driverCacheRepo.Repository,
	gateway *driverGateway.DriverGateway,
) *drivers.Service {
	return drivers.New(log.With(logger.NewField("component", "drivers")), capacities, counters, cache, gateway)
}

func provideAllocator(used UsedLedger) *allocator.Allocator {
	return allocator.New(used)
}

func providePaginator(
	log logger.Logger,
	cfg *config.Config,
	used UsedLedger,
	alloc *allocator.Allocator,
	gate *printgate.Gate,
	reader *paperDeliveryRepo.Repository,
	writer *backlog.Writer,
	driversService *drivers.Service,
	senderLimits *senderlimit.Evaluator,
) *paginator.Paginator {
	return paginator.New(
		log.With(logger.NewField("component", "paginator")),
		paginator.Config{
			TenderID:                   cfg.Delayer.ActualTenderID,
			DriverCapacityQueryLimit:   cfg.Delayer.DriverCapacityQueryLimit,
			ResidualCapacityQueryLimit: cfg.Delayer.ResidualCapacityQueryLimit,
			SenderLimitQueryLimit:      cfg.Delayer.SenderLimitQueryLimit,
			PrintCapacityQueryLimit:    cfg.Delayer.PrintCapacityQueryLimit,
		},
		used,
		alloc,
		gate,
		reader,
		writer,
		driversService,
		senderLimits,
	)
}

func provideDispatcher(
	log logger.Logger,
	cfg *config.Config,
	queue *highPriorityRepo.Repository,
	used UsedLedger,
	dispatched DispatchedLedger,
	txManager *tx.Manager,
) *highpriority.Dispatcher {
	return highpriority.New(
		log.With(logger.NewField("component", "high_priority")),
		highpriority.Config{
			TenderID:              cfg.Delayer.ActualTenderID,
			QueryLimit:            cfg.Delayer.HighPriorityQueryLimit,
			DeliveryDateInterval:  cfg.Delayer.DeliveryDateInterval,
			DeliveryDateDayOfWeek: cfg.Delayer.DeliveryDateDayOfWeek,
		},
		queue,
		used,
		dispatched,
		txManager,
	)
}

func provideRunner(log logger.Logger, cfg *config.Config, p *paginator.Paginator, d *highpriority.Dispatcher) *runner.Runner {
	return runner.New(log, cfg.Delayer.DeliveryWeekDayOfWeek, p, d, time.Now)
}

func provideExporter(counters *usedCapacityRepo.Repository, storage *s3storage.Storage, cfg *config.Config) *export.Exporter {
	return export.New(counters, storage, cfg.S3.KeyPrefix)
}

func provideHighPriorityDispatchTask(log logger.Logger, d *highpriority.Dispatcher, cfg *config.Config) *high_priority_dispatch.HighPriorityDispatch {
	return high_priority_dispatch.NewHighPriorityDispatch(
		log,
		d,
		cfg.Tasks.HighPriorityDispatchInterval,
		cfg.Delayer.DeliveryWeekDayOfWeek,
		time.Now,
	)
}

func provideUsedCapacityExportTask(log logger.Logger, e *export.Exporter, cfg *config.Config) *used_capacity_export.UsedCapacityExport {
	return used_capacity_export.NewUsedCapacityExport(
		log,
		e,
		cfg.Tasks.UsedCapacityExportInterval,
		cfg.Delayer.DeliveryWeekDayOfWeek,
		time.Now,
	)
}

func providePrintCapacitySeedTask(repository *printCounterRepo.Repository, cfg *config.Config) *print_capacity_seed.PrintCapacitySeed {
	// пересев раз в сутки, таблица меняется только при деплое конфигурации
	return print_capacity_seed.NewPrintCapacitySeed(repository, cfg.Delayer.PrintCapacities, 24*time.Hour)
}

func provideTaskList(
	seed *print_capacity_seed.PrintCapacitySeed,
	dispatch *high_priority_dispatch.HighPriorityDispatch,
	exportTask *used_capacity_export.UsedCapacityExport,
) []background.Task {
	return []background.Task{
		seed,
		dispatch,
		exportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
