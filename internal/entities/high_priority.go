package entities

import "time"

// HighPriorityItem отправление в очереди high priority скоупа (driver, geoKey).
type HighPriorityItem struct {
	UnifiedDeliveryDriver string
	GeoKey                string
	CreatedAt             time.Time
	RequestID             string
	Iun                   string
	ProductType           ProductType
	Province              string
	Cap                   string
	TenderID              string
}

// ReadyToSend отправление с назначенным слотом доставки.
type ReadyToSend struct {
	DeliveryDate time.Time
	RequestID    string
	Iun          string
}
