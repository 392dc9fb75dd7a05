package driver_capacity

import "time"

type DriverCapacityDB struct {
	Pk                    string
	ActivationDateFrom    time.Time
	ActivationDateTo      *time.Time
	TenderID              string
	UnifiedDeliveryDriver string
	GeoKey                string
	Capacity              int
	Products              []string
}
