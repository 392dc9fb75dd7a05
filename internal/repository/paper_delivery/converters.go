package paper_delivery

import (
	"time"

	"delayer/internal/entities"
)

func ToDomain(p *PaperDeliveryDB) entities.PaperDelivery {
	return entities.PaperDelivery{
		RequestID:             p.RequestID,
		Iun:                   p.Iun,
		CreatedAt:             p.CreatedAt.UTC(),
		NotificationSentAt:    derefTime(p.NotificationSentAt),
		PrepareRequestDate:    derefTime(p.PrepareRequestDate),
		ProductType:           entities.ProductType(p.ProductType),
		SenderPaID:            p.SenderPaID,
		RecipientID:           p.RecipientID,
		Province:              p.Province,
		Cap:                   p.Cap,
		Attempt:               p.Attempt,
		UnifiedDeliveryDriver: p.UnifiedDeliveryDriver,
		TenderID:              p.TenderID,
		Priority:              p.Priority,
		Stage:                 entities.Stage(p.Stage),
		DeliveryWeek:          p.DeliveryWeek.UTC(),
	}
}

func FromDomain(p entities.PaperDelivery) *PaperDeliveryDB {
	return &PaperDeliveryDB{
		Pk:                    p.PartitionKey(),
		Sk:                    p.SortKey(),
		RequestID:             p.RequestID,
		Iun:                   p.Iun,
		Stage:                 string(p.Stage),
		DeliveryWeek:          p.DeliveryWeek,
		CreatedAt:             p.CreatedAt,
		NotificationSentAt:    refTime(p.NotificationSentAt),
		PrepareRequestDate:    refTime(p.PrepareRequestDate),
		ProductType:           string(p.ProductType),
		SenderPaID:            p.SenderPaID,
		RecipientID:           p.RecipientID,
		Province:              p.Province,
		Cap:                   p.Cap,
		Attempt:               p.Attempt,
		UnifiedDeliveryDriver: p.UnifiedDeliveryDriver,
		TenderID:              p.TenderID,
		Priority:              p.Priority,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}

func refTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
