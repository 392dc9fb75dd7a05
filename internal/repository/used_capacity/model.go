package used_capacity

import "time"

// Table таблица счетчиков: использованная или отправленная (dispatched) мощность.
type Table string

const (
	TableUsed       Table = "driver_used_capacities"
	TableDispatched Table = "driver_dispatched_capacities"
)

type UsedCapacityDB struct {
	Pk                    string
	DeliveryDate          time.Time
	UnifiedDeliveryDriver string
	GeoKey                string
	UsedCapacity          int
	DeclaredCapacity      int
}
