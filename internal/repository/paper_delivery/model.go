package paper_delivery

import "time"

type PaperDeliveryDB struct {
	Pk                    string
	Sk                    string
	RequestID             string
	Iun                   string
	Stage                 string
	DeliveryWeek          time.Time
	CreatedAt             time.Time
	NotificationSentAt    *time.Time
	PrepareRequestDate    *time.Time
	ProductType           string
	SenderPaID            string
	RecipientID           string
	Province              string
	Cap                   string
	Attempt               int
	UnifiedDeliveryDriver string
	TenderID              string
	Priority              int
}
