package driver

import (
	"fmt"

	"delayer/internal/entities"

	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldTenderID = "tenderId"
	fieldRequests = "requests"
	fieldDrivers  = "drivers"
	fieldGeoKey   = "geoKey"
	fieldProduct  = "product"
	fieldDriver   = "unifiedDeliveryDriver"
)

func toRequest(tenderID string, requests []entities.DriverRequest) (*structpb.Struct, error) {
	items := make([]any, 0, len(requests))
	for _, r := range requests {
		items = append(items, map[string]any{
			fieldGeoKey:  r.Cap,
			fieldProduct: string(r.ProductType),
		})
	}

	req, err := structpb.NewStruct(map[string]any{
		fieldTenderID: tenderID,
		fieldRequests: items,
	})
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return req, nil
}

// toDomain ответ в виде cap~productType -> driverId. Записи без водителя пропускаются.
func toDomain(resp *structpb.Struct) map[string]string {
	res := make(map[string]string)
	if resp == nil {
		return res
	}

	for _, v := range resp.GetFields()[fieldDrivers].GetListValue().GetValues() {
		fields := v.GetStructValue().GetFields()
		driverID := fields[fieldDriver].GetStringValue()
		if driverID == "" {
			continue
		}

		key := entities.DriverRequest{
			Cap:         fields[fieldGeoKey].GetStringValue(),
			ProductType: entities.ProductType(fields[fieldProduct].GetStringValue()),
		}.Key()
		res[key] = driverID
	}
	return res
}
