package sender_limit

import "time"

type SenderLimitDB struct {
	Pk           string
	DeliveryDate time.Time
	PaID         string
	ProductType  string
	Province     string
	Percentage   int
}

type UsedSenderLimitDB struct {
	Pk               string
	DeliveryDate     time.Time
	PaID             string
	ProductType      string
	Province         string
	NumberOfShipment int
	SenderLimit      int
}
