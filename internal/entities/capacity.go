package entities

import "time"

// Scope область учета мощности: водитель и географический ключ (провинция или cap).
type Scope struct {
	DriverID string
	GeoKey   string
}

func (s Scope) Key() string {
	if s.DriverID == "" {
		return s.GeoKey
	}
	return DriverGeoKey(s.DriverID, s.GeoKey)
}

// DriverCapacity заявленная мощность водителя по тендеру. Справочные данные, пайплайн их не меняет.
type DriverCapacity struct {
	TenderID              string
	UnifiedDeliveryDriver string
	GeoKey                string
	Capacity              int
	Products              []ProductType
	ActivationDateFrom    time.Time
	ActivationDateTo      *time.Time
}

// ActiveAt true, если дата попадает в интервал [from, to). Пустой to означает бессрочный интервал.
func (d DriverCapacity) ActiveAt(date time.Time) bool {
	if date.Before(d.ActivationDateFrom) {
		return false
	}
	return d.ActivationDateTo == nil || date.Before(*d.ActivationDateTo)
}

// Capacity заявленная и использованная мощность скоупа за неделю.
type Capacity struct {
	Declared int
	Used     int
}

// Residual остаток мощности, не меньше нуля.
func (c Capacity) Residual() int {
	return max(0, c.Declared-max(c.Used, 0))
}

// UsedCapacity строка счетчика использованной мощности.
type UsedCapacity struct {
	Scope
	DeliveryWeek time.Time
	Used         int
	Declared     int
}

// CapacityIncrement прибавка к счетчику. Declared пишется для аудита.
type CapacityIncrement struct {
	Scope
	DeliveryWeek time.Time
	Delta        int
	Declared     int
}

// DriverRequest запрос водителя, обслуживающего продукт на cap.
type DriverRequest struct {
	Cap         string
	ProductType ProductType
}

// Key ключ кэша водителей: cap~productType.
func (r DriverRequest) Key() string {
	return JoinKey(r.Cap, string(r.ProductType))
}

// ProvinceDrivers водители провинции и мощность провинции по продуктам.
type ProvinceDrivers struct {
	Drivers    []DriverCapacity
	Capacities map[ProductType]int
}
