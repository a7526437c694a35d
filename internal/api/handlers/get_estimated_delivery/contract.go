package get_estimated_delivery

import (
	"context"

	estimateDelivery "github.com/sliques/SLQ-OrderService/internal/usecase/estimate_delivery"
)

type EstimateDeliveryUseCase interface {
	Execute(ctx context.Context, req *estimateDelivery.Request) (*estimateDelivery.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
