package create_order

import (
	"errors"
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	createOrder "github.com/sliques/SLQ-OrderService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidVisitDate   = "invalid tailorVisitDate, expected YYYY-MM-DD"
	msgPastVisitDate      = "tailorVisitDate is in the past"
	msgServiceNotFound    = "service or add-on not found"
	msgFullyBooked        = "the delivery date is fully booked, please pick another date"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Invalid tailorVisitDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createOrder.ErrInvalidDate):
			h.logger.Warn("POST /orders - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgPastVisitDate)

		case errors.Is(err, createOrder.ErrServiceNotFound):
			h.logger.Warn("POST /orders - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, createOrder.ErrCapacityExceeded):
			h.logger.Warn("POST /orders - Delivery date fully booked: booking_type=%s", req.BookingType)
			handlers.RespondConflict(w, msgFullyBooked)

		default:
			h.logger.Error("POST /orders - Failed to create order: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created successfully: order_id=%s", result.Order.OrderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
