package get_today_stats

import (
	"context"

	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
)

type StatsService interface {
	TodayStats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
