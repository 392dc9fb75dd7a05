package job_triggered

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"delayer/internal/entities"
	"delayer/internal/service/printgate"
	"delayer/internal/service/runner"
	"delayer/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	runner                   Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, runner Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "job.triggered"))

	return &Handler{
		runner:                   runner,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("job.triggered: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess.Context(), message)
			if shouldExit {
				return nil
			}
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			h.log.Info("job.triggered: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает один триггер.
// Возвращает true, если сообщение не обработано из-за отмены контекста и его нужно перечитать.
func (h *Handler) messageProcessing(ctx context.Context, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
	defer cancel()

	var event jobTriggeredEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("job.triggered handler received bad message")
		return false
	}

	if event.TraceID == "" {
		event.TraceID = headerValue(message, traceHeader)
	}

	msgLog := h.log.With(
		logger.NewField("stage", event.Stage),
		logger.NewField("partition_key", event.PartitionKey),
		logger.NewField("trace_id", event.TraceID),
		logger.NewField("offset", message.Offset),
	)

	trigger, err := event.toDomain()
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("job.triggered handler received invalid trigger")
		return false
	}

	msgLog.Info("job.triggered processing")

	report, err := h.runner.Run(ctx, trigger)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.triggered handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, runner.ErrInvalidTrigger),
			errors.Is(err, runner.ErrInvalidPartitionKey),
			errors.Is(err, entities.ErrUnknownStage):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.triggered handler rejected trigger")

		case errors.Is(err, printgate.ErrPrintCapacityNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Error("job.triggered handler print capacity is not configured")

		default:
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("pages", report.Pages),
			).Error("job.triggered handler failed to run job")
		}
		return false
	}

	msgLog.With(
		logger.NewField("pages", report.Pages),
		logger.NewField("advanced", report.Advanced),
		logger.NewField("deferred", report.Deferred),
	).Info("job.triggered: processed")
	return false
}

func headerValue(message *sarama.ConsumerMessage, key string) string {
	for _, header := range message.Headers {
		if header != nil && string(header.Key) == key {
			return string(header.Value)
		}
	}
	return ""
}
