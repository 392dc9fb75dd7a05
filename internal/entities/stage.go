package entities

import (
	"errors"
	"fmt"
)

// Stage этап workflow. Набор закрыт, переходы между этапами фиксированы.
type Stage string

const (
	StageSenderLimit      Stage = "EVALUATE_SENDER_LIMIT"
	StageDriverCapacity   Stage = "EVALUATE_DRIVER_CAPACITY"
	StageResidualCapacity Stage = "EVALUATE_RESIDUAL_CAPACITY"
	StagePrintCapacity    Stage = "EVALUATE_PRINT_CAPACITY"
	StageSentToPhaseTwo   Stage = "SENT_TO_PREPARE_PHASE_2"

	// StageHighPriority не этап бэклога, а отдельная очередь. Используется только в триггерах.
	StageHighPriority Stage = "HIGH_PRIORITY"
)

var ErrUnknownStage = errors.New("unknown workflow stage")

func ParseStage(raw string) (Stage, error) {
	stage := Stage(raw)
	switch stage {
	case StageSenderLimit, StageDriverCapacity, StageResidualCapacity,
		StagePrintCapacity, StageSentToPhaseTwo, StageHighPriority:
		return stage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, raw)
	}
}

// Next возвращает этап, на который переходят принятые на этом этапе отправления.
// Для sender limit это driver capacity: отправления сверх лимита идут в residual отдельно.
func (s Stage) Next() Stage {
	switch s {
	case StageSenderLimit:
		return StageDriverCapacity
	case StageDriverCapacity, StageResidualCapacity:
		return StagePrintCapacity
	case StagePrintCapacity, StageSentToPhaseTwo:
		return StageSentToPhaseTwo
	default:
		return s
	}
}

func (s Stage) String() string {
	return string(s)
}
