package driver_capacity

import "delayer/internal/entities"

func ToDomain(d *DriverCapacityDB) entities.DriverCapacity {
	products := make([]entities.ProductType, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, entities.ProductType(p))
	}
	return entities.DriverCapacity{
		TenderID:              d.TenderID,
		UnifiedDeliveryDriver: d.UnifiedDeliveryDriver,
		GeoKey:                d.GeoKey,
		Capacity:              d.Capacity,
		Products:              products,
		ActivationDateFrom:    d.ActivationDateFrom.UTC(),
		ActivationDateTo:      d.ActivationDateTo,
	}
}
