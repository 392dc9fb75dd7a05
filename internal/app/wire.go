//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"delayer/internal/handlers/rest/capacity_get"
	"delayer/internal/handlers/rest/export_post"
	"delayer/internal/handlers/rest/job_post"
	"delayer/internal/pkg/config"
	"delayer/internal/pkg/s3storage"
	driverCapacityRepo "delayer/internal/repository/driver_capacity"
	highPriorityRepo "delayer/internal/repository/high_priority"
	paperDeliveryRepo "delayer/internal/repository/paper_delivery"
	printCounterRepo "delayer/internal/repository/print_counter"
	senderLimitRepo "delayer/internal/repository/sender_limit"
	"delayer/internal/service/export"
	"delayer/internal/service/runner"
	"delayer/pkg/background"
	"delayer/pkg/logger"
	"delayer/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

type Application struct {
	Runner            job_post.Service
	Capacities        capacity_get.Service
	Exporter          export_post.Service
	BackgroundWorkers *background.Worker
}

// Pipeline минимальный набор для cmd/job и Kafka воркера: только обход партиций.
type Pipeline struct {
	Runner *runner.Runner
}

var repositorySet = wire.NewSet(
	provideQuerier,
	provideTxManager,
	driverCapacityRepo.New,
	highPriorityRepo.New,
	paperDeliveryRepo.New,
	printCounterRepo.New,
	senderLimitRepo.New,
	wire.Bind(new(driverCapacityRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(highPriorityRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(paperDeliveryRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(printCounterRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(senderLimitRepo.Querier), new(*querier.Querier)),
)

var pipelineSet = wire.NewSet(
	repositorySet,
	provideWriteRetrier,
	provideCounterRetrier,
	provideUsedLedger,
	provideDispatchedLedger,
	provideBacklogWriter,
	provideSenderLimits,
	providePrintGate,
	provideDriverCache,
	provideDriverGateway,
	provideDrivers,
	provideAllocator,
	providePaginator,
	provideDispatcher,
	provideRunner,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	redisClient *redis.Client,
	storage *s3storage.Storage,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		pipelineSet,
		provideUsedCapacityReader,
		provideExporter,

		provideHighPriorityDispatchTask,
		provideUsedCapacityExportTask,
		providePrintCapacitySeedTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Bind(new(job_post.Service), new(*runner.Runner)),
		wire.Bind(new(capacity_get.Service), new(UsedLedger)),
		wire.Bind(new(export_post.Service), new(*export.Exporter)),
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

// InitializePipeline для Kafka воркера (cmd/worker-job-triggered) и cmd/job
func InitializePipeline(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Pipeline, error) {
	wire.Build(
		pipelineSet,
		wire.Struct(new(Pipeline), "*"),
	)
	return nil, nil
}
