package sender_limit

import "delayer/internal/entities"

func ToDomain(s *SenderLimitDB) entities.SenderLimit {
	return entities.SenderLimit{
		PaID:         s.PaID,
		ProductType:  entities.ProductType(s.ProductType),
		Province:     s.Province,
		DeliveryDate: s.DeliveryDate.UTC(),
		Percentage:   s.Percentage,
	}
}

func ToUsedDomain(u *UsedSenderLimitDB) entities.UsedSenderLimit {
	return entities.UsedSenderLimit{
		PaID:             u.PaID,
		ProductType:      entities.ProductType(u.ProductType),
		Province:         u.Province,
		DeliveryDate:     u.DeliveryDate.UTC(),
		NumberOfShipment: u.NumberOfShipment,
		SenderLimit:      u.SenderLimit,
	}
}
