package driver

import (
	"context"
	"fmt"
	"time"

	"delayer/internal/entities"
	retrierconfig "delayer/pkg/retrier"
	"delayer/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "delivery-driver-service"

	MethodGetUnifiedDeliveryDrivers = "/deliverydriver.DeliveryDriverService/GetUnifiedDeliveryDrivers"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type DriverGateway struct {
	client  client
	retrier retrier
}

func New(client client) *DriverGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &DriverGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// ResolveDrivers одним вызовом получает водителей для пар (cap, productType) тендера.
// Ключ ответа cap~productType.
func (d *DriverGateway) ResolveDrivers(
	ctx context.Context,
	tenderID string,
	requests []entities.DriverRequest,
) (map[string]string, error) {
	if len(requests) == 0 {
		return map[string]string{}, nil
	}

	req, err := toRequest(tenderID, requests)
	if err != nil {
		return nil, fmt.Errorf("gateway driver, resolve drivers: %w", err)
	}

	resp := &structpb.Struct{}
	err = d.executeWithMetrics(ctx, "GetUnifiedDeliveryDrivers", func(ctx context.Context) error {
		resp.Reset()
		return d.client.Invoke(ctx, MethodGetUnifiedDeliveryDrivers, req, resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway driver, resolve drivers: %w", err)
	}

	return toDomain(resp), nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (d *DriverGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := d.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
