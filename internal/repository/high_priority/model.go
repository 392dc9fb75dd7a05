package high_priority

import "time"

type HighPriorityDB struct {
	Pk                    string
	CreatedAt             time.Time
	RequestID             string
	UnifiedDeliveryDriver string
	GeoKey                string
	Iun                   string
	ProductType           string
	Province              string
	Cap                   string
	TenderID              string
}

type ReadyToSendDB struct {
	DeliveryDate time.Time
	RequestID    string
	Iun          string
}
