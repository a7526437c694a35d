package get_order

import (
	"context"

	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
)

type OrderService interface {
	GetByOrderID(ctx context.Context, orderID string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
