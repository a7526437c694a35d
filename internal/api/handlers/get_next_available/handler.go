package get_next_available

import (
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// NextAvailableResponse HTTP response model
type NextAvailableResponse struct {
	Normal string `json:"normal"` // "2025-03-17"
	Urgent string `json:"urgent"`
}

type Handler struct {
	useCase GetNextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/next-available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /next-available - Failed to get next available dates: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NextAvailableResponse{
		Normal: result.Normal.Format(domain.DateFormat),
		Urgent: result.Urgent.Format(domain.DateFormat),
	})
}
