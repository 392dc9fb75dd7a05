package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delayer/internal/app"
	"delayer/internal/entities"
	"delayer/internal/handlers/cli/job_run"
	"delayer/internal/pkg/config"
	"delayer/internal/pkg/dotenv"
	"delayer/internal/pkg/grpcclient"
	"delayer/internal/pkg/postgres"
	"delayer/internal/pkg/redisclient"
	"delayer/pkg/logger"
	"delayer/pkg/logger/zap_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/spf13/cobra"
)

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel(logLevel),
		zap_adapter.WithService("delayer-job"),
	)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	if err := newRootCommand(zapLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(log logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "job",
		Short:         "Delayer batch job runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var opts job_run.Options
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one pipeline stage for one partition",
		Long: `Run one stage of the paper delivery pipeline synchronously.
In array jobs the province is taken from --provinces by JOB_ARRAY_INDEX.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJob(cmd.Context(), log, opts)
		},
	}
	runCmd.Flags().StringVar(&opts.Step, "step", "", "workflow stage, e.g. EVALUATE_DRIVER_CAPACITY")
	runCmd.Flags().StringVar(&opts.Driver, "driver", "", "unified delivery driver id")
	runCmd.Flags().StringVar(&opts.Provinces, "provinces", "[]", `JSON array of provinces, e.g. '["RM","MI"]'`)
	runCmd.Flags().StringVar(&opts.Week, "week", "", "delivery week YYYY-MM-DD (default: current week)")
	runCmd.Flags().StringVar(&opts.Cursor, "cursor", "", "resume cursor")
	runCmd.Flags().StringVar(&opts.TraceID, "trace-id", os.Getenv("JOB_ID"), "trace id (default: $JOB_ID)")
	_ = runCmd.MarkFlagRequired("step")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}

func runJob(ctx context.Context, log logger.Logger, opts job_run.Options) error {
	mainLog := log.With(logger.NewField("step", opts.Step))

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return err
		}
	}

	index, err := job_run.ArrayIndex(os.Getenv("JOB_ARRAY_INDEX"))
	if err != nil {
		mainLog.Error("parse array index", logger.NewField("error", err))
		return err
	}

	trigger, err := opts.Trigger(index, time.Now())
	if err != nil {
		mainLog.Error("build trigger", logger.NewField("error", err))
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	report, err := execute(ctx, log, cfg, trigger)
	if err != nil {
		mainLog.Error("job failed",
			logger.NewField("partition_key", trigger.PartitionKey),
			logger.NewField("error", err),
		)
		return err
	}

	mainLog.Info("job completed",
		logger.NewField("partition_key", trigger.PartitionKey),
		logger.NewField("pages", report.Pages),
		logger.NewField("advanced", report.Advanced),
		logger.NewField("deferred", report.Deferred),
		logger.NewField("excluded", report.Excluded),
	)
	return nil
}

func execute(ctx context.Context, log logger.Logger, cfg *config.Config, trigger entities.Trigger) (entities.RunReport, error) {
	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return entities.RunReport{}, fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return entities.RunReport{}, fmt.Errorf("redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.DriverService)
	if err != nil {
		return entities.RunReport{}, fmt.Errorf("gRPC client: %w", err)
	}
	defer func() { _ = conn.Close() }()

	pipeline, err := app.InitializePipeline(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, redisClient, cfg)
	if err != nil {
		return entities.RunReport{}, fmt.Errorf("business logic: %w", err)
	}

	return pipeline.Runner.Run(ctx, trigger)
}
