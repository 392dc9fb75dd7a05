package job_run

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"delayer/internal/entities"
)

var ErrInvalidOptions = errors.New("invalid job options")

// Options флаги команды run. Provinces JSON-массив, элемент выбирается по индексу array job.
type Options struct {
	Step      string
	Driver    string
	Provinces string
	Week      string
	Cursor    string
	TraceID   string
}

// ArrayIndex разбирает JOB_ARRAY_INDEX. Пустое значение означает одиночный запуск с индексом 0.
func ArrayIndex(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: array index %q", ErrInvalidOptions, raw)
	}
	return index, nil
}

// Trigger собирает триггер для элемента array job с индексом index.
func (o Options) Trigger(index int, now time.Time) (entities.Trigger, error) {
	stage, err := entities.ParseStage(o.Step)
	if err != nil {
		return entities.Trigger{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	trigger := entities.Trigger{
		Stage:   stage,
		Cursor:  entities.Cursor(o.Cursor),
		TraceID: o.TraceID,
	}
	if o.Week != "" {
		week, err := entities.ParseDate(o.Week)
		if err != nil {
			return entities.Trigger{}, fmt.Errorf("%w: week %q", ErrInvalidOptions, o.Week)
		}
		trigger.DeliveryWeek = week
	} else {
		trigger.BatchStart = now
	}

	if stage == entities.StagePrintCapacity {
		// партиция печати это сама неделя, провинции не нужны
		return trigger, nil
	}

	province, err := o.province(index)
	if err != nil {
		return entities.Trigger{}, err
	}

	switch stage {
	case entities.StageSenderLimit:
		trigger.PartitionKey = province
	case entities.StageDriverCapacity, entities.StageResidualCapacity, entities.StageHighPriority:
		if o.Driver == "" {
			return entities.Trigger{}, fmt.Errorf("%w: --driver is required for %s", ErrInvalidOptions, stage)
		}
		trigger.PartitionKey = entities.DriverGeoKey(o.Driver, province)
	default:
		return entities.Trigger{}, fmt.Errorf("%w: stage %s cannot be triggered", ErrInvalidOptions, stage)
	}
	return trigger, nil
}

func (o Options) province(index int) (string, error) {
	var provinces []string
	if err := json.Unmarshal([]byte(o.Provinces), &provinces); err != nil {
		return "", fmt.Errorf("%w: provinces must be a JSON array of strings", ErrInvalidOptions)
	}
	if index >= len(provinces) {
		return "", fmt.Errorf("%w: array index %d out of %d provinces", ErrInvalidOptions, index, len(provinces))
	}
	return provinces[index], nil
}
