package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// JobTrigger тело POST /jobs/{stage}.
type JobTrigger struct {
	PartitionKey string     `json:"partitionKey"`
	Cursor       string     `json:"cursor,omitempty"`
	DeliveryWeek string     `json:"deliveryWeek,omitempty"`
	BatchStartTs *time.Time `json:"batchStartTs,omitempty"`
	TraceID      string     `json:"traceId,omitempty"`
}

type JobReport struct {
	TraceID  string `json:"traceId"`
	Pages    int    `json:"pages"`
	Advanced int    `json:"advanced"`
	Deferred int    `json:"deferred"`
	Residual int    `json:"residual"`
	Excluded int    `json:"excluded"`
}

type Capacity struct {
	UnifiedDeliveryDriver string `json:"unifiedDeliveryDriver"`
	GeoKey                string `json:"geoKey"`
	DeliveryWeek          string `json:"deliveryWeek"`
	Declared              int    `json:"declaredCapacity"`
	Used                  int    `json:"usedCapacity"`
	Residual              int    `json:"residualCapacity"`
}

type ExportResponse struct {
	Message string `json:"message,omitempty"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url,omitempty"`
	Rows    int    `json:"rows"`
}
