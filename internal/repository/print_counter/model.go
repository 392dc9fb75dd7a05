package print_counter

import "time"

const (
	printPk         = "PRINT"
	excludeSkPrefix = "EXCLUDE"
)

type PrintCounterDB struct {
	Sk                      string
	NumberOfShipments       int
	ExcludedDeliveryCounter int
	WeeklyPrintCapacity     int
	DailyPrintCapacity      int
}

type ExcludedCounterDB struct {
	Sk                string
	NumberOfShipments int
}

type PrintCapacityDB struct {
	StartDate     time.Time
	DailyCapacity int
}
