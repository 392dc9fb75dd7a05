package runner

import (
	"fmt"
	"strings"
	"time"

	"delayer/internal/entities"
)

// ParseJob разбирает ключ партиции триггера в скоуп этапа:
//
//	EVALUATE_SENDER_LIMIT              province
//	EVALUATE_DRIVER/RESIDUAL_CAPACITY  driverId~province
//	HIGH_PRIORITY                      driverId~geoKey
//	EVALUATE_PRINT_CAPACITY            YYYY-MM-DD (неделя доставки)
//
// Неделя берется из триггера, иначе считается от batchStart. Для HIGH_PRIORITY
// от batchStart берется следующая неделя.
func ParseJob(trigger entities.Trigger, dayOfWeek time.Weekday) (entities.Job, error) {
	job := entities.Job{
		Stage:   trigger.Stage,
		Cursor:  trigger.Cursor,
		TraceID: trigger.TraceID,
		Week:    trigger.DeliveryWeek,
	}
	if job.Week.IsZero() && !trigger.BatchStart.IsZero() {
		job.Week = entities.DeliveryWeek(trigger.BatchStart, dayOfWeek)
		if trigger.Stage == entities.StageHighPriority {
			job.Week = entities.NextWeek(job.Week)
		}
	}

	key := strings.TrimSpace(trigger.PartitionKey)

	switch trigger.Stage {
	case entities.StageSenderLimit:
		if strings.Contains(key, "~") {
			return entities.Job{}, fmt.Errorf("%w: %q is not a province", ErrInvalidPartitionKey, key)
		}
		job.Scope = entities.Scope{GeoKey: key}
	case entities.StageDriverCapacity, entities.StageResidualCapacity, entities.StageHighPriority:
		parts := entities.SplitKey(key)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return entities.Job{}, fmt.Errorf("%w: %q is not driverId~geoKey", ErrInvalidPartitionKey, key)
		}
		job.Scope = entities.Scope{DriverID: parts[0], GeoKey: parts[1]}
	case entities.StagePrintCapacity:
		week, err := entities.ParseDate(key)
		if err != nil {
			return entities.Job{}, fmt.Errorf("%w: %q is not a delivery week: %w", ErrInvalidPartitionKey, key, err)
		}
		job.Week = week
	default:
		return entities.Job{}, fmt.Errorf("%w: stage %q cannot be triggered", ErrInvalidTrigger, trigger.Stage)
	}

	if job.Week.IsZero() {
		return entities.Job{}, fmt.Errorf("%w: no delivery week and no batch start", ErrInvalidTrigger)
	}
	return job, nil
}
