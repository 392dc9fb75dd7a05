package entities

import "time"

// SenderLimitKey ключ лимита отправителя: paId~productType~province.
func SenderLimitKey(paID string, productType ProductType, province string) string {
	return JoinKey(paID, string(productType), province)
}

// SenderLimit процент мощности, который может занять отправитель.
type SenderLimit struct {
	PaID         string
	ProductType  ProductType
	Province     string
	DeliveryDate time.Time
	Percentage   int
}

func (s SenderLimit) Key() string {
	return SenderLimitKey(s.PaID, s.ProductType, s.Province)
}

// Limit лимит в штуках от заявленной мощности.
func (s SenderLimit) Limit(declaredCapacity int) int {
	return declaredCapacity * s.Percentage / 100
}

// UsedSenderLimit счетчик использованного лимита.
type UsedSenderLimit struct {
	PaID             string
	ProductType      ProductType
	Province         string
	DeliveryDate     time.Time
	NumberOfShipment int
	SenderLimit      int
}

func (u UsedSenderLimit) Key() string {
	return SenderLimitKey(u.PaID, u.ProductType, u.Province)
}

// SenderLimitIncrement прибавка к использованному лимиту, SenderLimit перезаписывается.
type SenderLimitIncrement struct {
	PaID         string
	ProductType  ProductType
	Province     string
	DeliveryDate time.Time
	Delta        int
	SenderLimit  int
}

// ExcludedCounter число отправлений продукта, исключенных из мощности провинции на неделе.
type ExcludedCounter struct {
	Province          string
	ProductType       ProductType
	NumberOfShipments int
}
