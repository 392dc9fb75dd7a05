package print_counter

import (
	"delayer/internal/entities"
)

func ToDomain(c *PrintCounterDB) (*entities.PrintCounter, error) {
	week, err := entities.ParseDate(c.Sk)
	if err != nil {
		return nil, err
	}
	return &entities.PrintCounter{
		DeliveryWeek:            week,
		NumberOfShipments:       c.NumberOfShipments,
		ExcludedDeliveryCounter: c.ExcludedDeliveryCounter,
		WeeklyPrintCapacity:     c.WeeklyPrintCapacity,
		DailyPrintCapacity:      c.DailyPrintCapacity,
	}, nil
}

// ToExcludedDomain ключ вида EXCLUDE~province~product.
func ToExcludedDomain(c *ExcludedCounterDB) entities.ExcludedCounter {
	parts := entities.SplitKey(c.Sk)
	res := entities.ExcludedCounter{NumberOfShipments: c.NumberOfShipments}
	if len(parts) > 1 {
		res.Province = parts[1]
	}
	if len(parts) > 2 {
		res.ProductType = entities.ProductType(parts[2])
	}
	return res
}

func ToPrintCapacityDomain(c *PrintCapacityDB) *entities.PrintCapacity {
	return &entities.PrintCapacity{
		StartDate:     c.StartDate.UTC(),
		DailyCapacity: c.DailyCapacity,
	}
}
