package job_triggered

import (
	"fmt"
	"time"

	"delayer/internal/entities"
)

const traceHeader = "traceId"

type jobTriggeredEvent struct {
	Stage        string     `json:"stage"`
	PartitionKey string     `json:"partitionKey"`
	Cursor       string     `json:"cursor,omitempty"`
	BatchStartTs *time.Time `json:"batchStartTs,omitempty"`
	DeliveryWeek string     `json:"deliveryWeek,omitempty"`
	TraceID      string     `json:"traceId,omitempty"`
}

func (e jobTriggeredEvent) toDomain() (entities.Trigger, error) {
	stage, err := entities.ParseStage(e.Stage)
	if err != nil {
		return entities.Trigger{}, err
	}

	trigger := entities.Trigger{
		Stage:        stage,
		PartitionKey: e.PartitionKey,
		Cursor:       entities.Cursor(e.Cursor),
		TraceID:      e.TraceID,
	}
	if e.BatchStartTs != nil {
		trigger.BatchStart = *e.BatchStartTs
	}
	if e.DeliveryWeek != "" {
		week, err := entities.ParseDate(e.DeliveryWeek)
		if err != nil {
			return entities.Trigger{}, fmt.Errorf("parse delivery week %q: %w", e.DeliveryWeek, err)
		}
		trigger.DeliveryWeek = week
	}
	return trigger, nil
}
