package update_order_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	"github.com/sliques/SLQ-OrderService/internal/service/orders"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgInvalidStatus    = "invalid order status"
	msgNotFound         = "order not found"
	msgStatusTransition = "order status cannot be changed"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/{id}/status - Invalid request body: order_id=%s, error=%v", orderID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("PATCH /orders/{id}/status - Invalid status: order_id=%s, status=%s", orderID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{id}/status - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /orders/{id}/status - Transition rejected: order_id=%s, status=%s", orderID, req.Status)
			handlers.RespondConflict(w, msgStatusTransition)

		default:
			h.logger.Error("PATCH /orders/{id}/status - Failed to update status: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/status - Status updated: order_id=%s, status=%s", orderID, order.Status)
	handlers.RespondJSON(w, http.StatusOK, order)
}
