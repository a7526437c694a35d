package quote_price

import (
	"errors"
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	quotePrice "github.com/sliques/SLQ-OrderService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidVisitDate   = "invalid tailorVisitDate, expected YYYY-MM-DD"
	msgPastVisitDate      = "tailorVisitDate is in the past"
	msgServiceNotFound    = "service or add-on not found"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Invalid tailorVisitDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quotePrice.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastVisitDate)

		case errors.Is(err, quotePrice.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
