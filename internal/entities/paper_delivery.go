package entities

import (
	"strconv"
	"time"
)

type ProductType string

const (
	ProductAR  ProductType = "AR"
	ProductRS  ProductType = "RS"
	Product890 ProductType = "890"
)

// PaperDelivery одно отправление в бэклоге. Переход между этапами создает новую копию,
// существующая запись не меняется.
type PaperDelivery struct {
	RequestID             string
	Iun                   string
	CreatedAt             time.Time
	NotificationSentAt    time.Time
	PrepareRequestDate    time.Time
	ProductType           ProductType
	SenderPaID            string
	RecipientID           string
	Province              string
	Cap                   string
	Attempt               int
	UnifiedDeliveryDriver string
	TenderID              string
	Priority              int
	Stage                 Stage
	DeliveryWeek          time.Time
}

// ExemptFromSenderLimit RS и повторные попытки (attempt == 1) не ограничиваются лимитом отправителя.
func (p PaperDelivery) ExemptFromSenderLimit() bool {
	return p.ProductType == ProductRS || p.Attempt == 1
}

// ReferenceTimestamp время, по которому упорядочивается FIFO.
func (p PaperDelivery) ReferenceTimestamp() time.Time {
	if p.ExemptFromSenderLimit() {
		return p.PrepareRequestDate
	}
	return p.NotificationSentAt
}

// PartitionKey ключ партиции бэклога: deliveryWeek~STAGE.
func (p PaperDelivery) PartitionKey() string {
	return BacklogPartition(p.DeliveryWeek, p.Stage)
}

// SortKey ключ упорядочивания внутри партиции, зависит от этапа.
func (p PaperDelivery) SortKey() string {
	ref := formatTimestamp(p.ReferenceTimestamp())
	priority := strconv.Itoa(p.Priority)

	switch p.Stage {
	case StageSenderLimit:
		return JoinKey(p.Province, ref, p.RequestID)
	case StageDriverCapacity:
		return JoinKey(p.UnifiedDeliveryDriver, p.Province, priority, ref, p.RequestID)
	case StageResidualCapacity:
		return JoinKey(p.UnifiedDeliveryDriver, p.Province, ref, p.RequestID)
	case StagePrintCapacity:
		return JoinKey(priority, ref, p.RequestID)
	default:
		return JoinKey(FormatDate(p.DeliveryWeek), p.RequestID)
	}
}

// MoveTo копия отправления на этапе stage недели deliveryWeek.
func (p PaperDelivery) MoveTo(stage Stage, deliveryWeek time.Time) PaperDelivery {
	moved := p
	moved.Stage = stage
	moved.DeliveryWeek = deliveryWeek
	return moved
}

// Advance копия на следующем этапе той же недели.
func (p PaperDelivery) Advance() PaperDelivery {
	return p.MoveTo(p.Stage.Next(), p.DeliveryWeek)
}

// Postpone копия на том же этапе следующей недели.
func (p PaperDelivery) Postpone() PaperDelivery {
	return p.MoveTo(p.Stage, NextWeek(p.DeliveryWeek))
}

func BacklogPartition(deliveryWeek time.Time, stage Stage) string {
	return JoinKey(FormatDate(deliveryWeek), string(stage))
}

// ScopePrefix префикс ключа сортировки, под которым лежат отправления одного скоупа.
func ScopePrefix(stage Stage, scope Scope) string {
	switch stage {
	case StageSenderLimit:
		return scope.GeoKey + keySeparator
	case StageDriverCapacity, StageResidualCapacity:
		return JoinKey(scope.DriverID, scope.GeoKey) + keySeparator
	default:
		return ""
	}
}
