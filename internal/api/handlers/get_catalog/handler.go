package get_catalog

import (
	"net/http"

	"github.com/sliques/SLQ-OrderService/internal/api/handlers"
	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// ServiceResponse catalog service
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	BasePrice       int64  `json:"basePrice"`
	RequiresAdvance bool   `json:"requiresAdvance"`
}

// AddOnResponse catalog add-on
type AddOnResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	AddOns   []AddOnResponse   `json:"addOns"`
}

type Handler struct {
	response CatalogResponse
}

// NewHandler builds the response once, the catalog is static
func NewHandler() *Handler {
	resp := CatalogResponse{}
	for _, s := range domain.Services() {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			BasePrice:       s.BasePrice,
			RequiresAdvance: s.RequiresAdvance,
		})
	}
	for _, a := range domain.AddOns() {
		resp.AddOns = append(resp.AddOns, AddOnResponse{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return &Handler{response: resp}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
