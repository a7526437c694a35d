package get_estimated_delivery

import (
	"errors"
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	estimateDelivery "github.com/sliques/SLQ-OrderService/internal/usecase/estimate_delivery"
)

const (
	msgInvalidDate        = "invalid processingStart, expected YYYY-MM-DD"
	msgInvalidBookingType = "bookingType must be normal or urgent"
)

type Handler struct {
	useCase EstimateDeliveryUseCase
	logger  Logger
}

func NewHandler(useCase EstimateDeliveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/estimated-delivery
// Query params: processingStart (YYYY-MM-DD), bookingType (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := ToUseCaseRequest(query.Get("processingStart"), query.Get("bookingType"))
	if err != nil {
		h.logger.Warn("GET /estimated-delivery - Invalid processingStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, estimateDelivery.ErrInvalidInput):
			h.logger.Warn("GET /estimated-delivery - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingType)

		default:
			h.logger.Error("GET /estimated-delivery - Failed to estimate delivery: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
