package high_priority

import (
	"fmt"
	"strings"
	"time"

	"delayer/internal/entities"
)

func ToDomain(h *HighPriorityDB) entities.HighPriorityItem {
	return entities.HighPriorityItem{
		UnifiedDeliveryDriver: h.UnifiedDeliveryDriver,
		GeoKey:                h.GeoKey,
		CreatedAt:             h.CreatedAt.UTC(),
		RequestID:             h.RequestID,
		Iun:                   h.Iun,
		ProductType:           entities.ProductType(h.ProductType),
		Province:              h.Province,
		Cap:                   h.Cap,
		TenderID:              h.TenderID,
	}
}

func FromReadyToSendDomain(r entities.ReadyToSend) ReadyToSendDB {
	return ReadyToSendDB{
		DeliveryDate: r.DeliveryDate,
		RequestID:    r.RequestID,
		Iun:          r.Iun,
	}
}

// курсор очереди: createdAt~requestId последнего элемента страницы
func encodeCursor(h *HighPriorityDB) entities.Cursor {
	return entities.Cursor(h.CreatedAt.UTC().Format(time.RFC3339Nano) + "~" + h.RequestID)
}

func decodeCursor(c entities.Cursor) (time.Time, string, error) {
	createdAt, requestID, ok := strings.Cut(string(c), "~")
	if !ok {
		return time.Time{}, "", fmt.Errorf("malformed high priority cursor %q", c)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("malformed high priority cursor %q: %w", c, err)
	}
	return ts, requestID, nil
}
