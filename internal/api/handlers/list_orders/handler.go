package list_orders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	"github.com/sliques/SLQ-OrderService/internal/service/orders"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
)

const msgInvalidParams = "invalid query parameters"

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

// Handle GET /api/v1/orders
// Query params: status, limit, skip (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query().Get("status"), r.URL.Query().Get("limit"), r.URL.Query().Get("skip"))
	if err != nil {
		h.logger.Warn("GET /orders - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /orders - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /orders - Failed to list orders: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToServiceRequest parses the query parameters, empty values are left to the service defaults
func ToServiceRequest(status, limit, skip string) (*models.ListOrdersRequest, error) {
	req := &models.ListOrdersRequest{}
	if status != "" {
		req.Status = &status
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, err
		}
		req.Limit = n
	}
	if skip != "" {
		n, err := strconv.Atoi(skip)
		if err != nil {
			return nil, err
		}
		req.Skip = n
	}
	return req, nil
}
