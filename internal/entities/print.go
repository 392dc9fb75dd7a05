package entities

import "time"

// PrintCapacity дневная мощность печати, действующая начиная с StartDate.
type PrintCapacity struct {
	StartDate     time.Time
	DailyCapacity int
}

// PrintCounter строка счетчика печати за неделю.
type PrintCounter struct {
	DeliveryWeek            time.Time
	NumberOfShipments       int
	ExcludedDeliveryCounter int
	WeeklyPrintCapacity     int
	DailyPrintCapacity      int
}

// Progress сколько мест недели уже занято.
func (c PrintCounter) Progress() int {
	return c.NumberOfShipments
}

// PrintProgress обновление счетчика печати. Nil означает, что поле в этом вызове не меняется.
type PrintProgress struct {
	DeliveryWeek        time.Time
	Sent                *int
	Excluded            *int
	WeeklyPrintCapacity int
	DailyPrintCapacity  int
	TTL                 time.Time
}
