package health

import (
	"context"
	"net/http"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Checker dependency health check, *sql.DB satisfies it through PingContext
type Checker func(ctx context.Context) error

type Logger interface {
	Warn(format string, v ...interface{})
}

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks map[string]Checker
	logger Logger
}

func NewHandler(checks map[string]Checker, logger Logger) *Handler {
	return &Handler{checks: checks, logger: logger}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := StatusResponse{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("GET /health - %s check failed: %v", name, err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	handlers.RespondJSON(w, status, resp)
}
