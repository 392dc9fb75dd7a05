package used_capacity

import "delayer/internal/entities"

func ToDomain(u *UsedCapacityDB) *entities.UsedCapacity {
	if u == nil {
		return nil
	}
	return &entities.UsedCapacity{
		Scope: entities.Scope{
			DriverID: u.UnifiedDeliveryDriver,
			GeoKey:   u.GeoKey,
		},
		DeliveryWeek: u.DeliveryDate.UTC(),
		Used:         u.UsedCapacity,
		Declared:     u.DeclaredCapacity,
	}
}
