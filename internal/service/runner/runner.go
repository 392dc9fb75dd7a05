package runner

import (
	"context"
	"fmt"
	"time"

	"delayer/internal/entities"
	"delayer/pkg/logger"

	"github.com/google/uuid"
)

type Runner struct {
	log        runnerLogger
	dayOfWeek  time.Weekday
	paginator  Paginator
	dispatcher Dispatcher
	now        func() time.Time
}

func New(
	log runnerLogger,
	dayOfWeek time.Weekday,
	paginator Paginator,
	dispatcher Dispatcher,
	now func() time.Time,
) *Runner {
	return &Runner{
		log:        log,
		dayOfWeek:  dayOfWeek,
		paginator:  paginator,
		dispatcher: dispatcher,
		now:        now,
	}
}

// Run выполняет один триггер до конца партиции. Пустой ключ партиции не ошибка.
// Без недели и начала батча неделя считается от текущего времени.
func (r *Runner) Run(ctx context.Context, trigger entities.Trigger) (entities.RunReport, error) {
	if trigger.TraceID == "" {
		trigger.TraceID = uuid.NewString()
	}
	if trigger.DeliveryWeek.IsZero() && trigger.BatchStart.IsZero() {
		trigger.BatchStart = r.now()
	}

	log := r.log.With(
		logger.NewField("trace_id", trigger.TraceID),
		logger.NewField("stage", trigger.Stage.String()),
		logger.NewField("partition_key", trigger.PartitionKey),
		logger.NewField("cursor", string(trigger.Cursor)),
	)

	if trigger.PartitionKey == "" {
		log.Warn("empty partition key, nothing to do")
		return entities.RunReport{}, nil
	}

	job, err := ParseJob(trigger, r.dayOfWeek)
	if err != nil {
		RunsTotal.WithLabelValues(trigger.Stage.String(), "invalid").Inc()
		return entities.RunReport{}, fmt.Errorf("parse trigger: %w", err)
	}

	start := time.Now()
	report, err := r.run(logger.ToContext(ctx, log), job)
	RunDuration.WithLabelValues(job.Stage.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		RunsTotal.WithLabelValues(job.Stage.String(), "failed").Inc()
		log.Error("run failed",
			logger.NewField("week", entities.FormatDate(job.Week)),
			logger.NewField("pages", report.Pages),
			logger.Err(err),
		)
		return report, err
	}

	RunsTotal.WithLabelValues(job.Stage.String(), "succeeded").Inc()
	log.Info("run completed",
		logger.NewField("week", entities.FormatDate(job.Week)),
		logger.NewField("pages", report.Pages),
		logger.NewField("advanced", report.Advanced),
		logger.NewField("deferred", report.Deferred),
		logger.NewField("residual", report.Residual),
		logger.NewField("excluded", report.Excluded),
	)
	return report, nil
}

func (r *Runner) run(ctx context.Context, job entities.Job) (entities.RunReport, error) {
	switch job.Stage {
	case entities.StageHighPriority:
		report, err := r.dispatcher.Dispatch(ctx, job.Scope, job.Week)
		if err != nil {
			return report, fmt.Errorf("dispatch high priority %s: %w", job.Scope.Key(), err)
		}
		return report, nil
	case entities.StageSenderLimit, entities.StageDriverCapacity,
		entities.StageResidualCapacity, entities.StagePrintCapacity:
		report, err := r.paginator.Run(ctx, job)
		if err != nil {
			return report, fmt.Errorf("run %s %s: %w", job.Stage, job.Scope.Key(), err)
		}
		return report, nil
	default:
		return entities.RunReport{}, fmt.Errorf("%w: %q", entities.ErrUnknownStage, job.Stage)
	}
}
