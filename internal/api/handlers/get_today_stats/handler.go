package get_today_stats

import (
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.TodayStats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/today - Failed to compute stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
