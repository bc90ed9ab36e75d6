package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/httputil"
	"github.com/oms-integration/mockcommerce/pkg/pagination"
	"github.com/oms-integration/mockcommerce/pkg/validator"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/service"
)

// CatalogHandler handles HTTP requests for catalog endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// StockLevelRequest is the stockLevel object of an update request.
type StockLevelRequest struct {
	Available     *int  `json:"available" validate:"required,gte=0"`
	Incoming      *int  `json:"incoming" validate:"required,gte=0"`
	Backorderable *bool `json:"backorderable" validate:"required"`
}

// LeadTimeRequest is the leadTime object of an update request.
type LeadTimeRequest struct {
	Days        *int   `json:"days" validate:"required,gte=0"`
	Description string `json:"description" validate:"required"`
}

// UpdateProductRequest is the JSON request body for a full product update.
// Fields whose zero value is legitimate (price 0, p2OFlag false) are
// pointers so presence can be enforced.
type UpdateProductRequest struct {
	Name                 string             `json:"name" validate:"required"`
	Description          string             `json:"description" validate:"required"`
	Price                *float64           `json:"price" validate:"required,gte=0"`
	StockLevel           *StockLevelRequest `json:"stockLevel" validate:"required"`
	LeadTime             *LeadTimeRequest   `json:"leadTime" validate:"required"`
	P2OFlag              *bool              `json:"p2OFlag" validate:"required"`
	AdditionalProperties map[string]any     `json:"additionalProperties"`
}

// --- Handlers ---

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Pagination applies only when the client sends page or pageSize; a bare
	// listing returns the full catalog. A zero Page tells the service to skip
	// slicing.
	var page pagination.Page
	if q.Get("page") != "" || q.Get("pageSize") != "" {
		var err error
		page, err = pagination.ParsePage(r)
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
	}

	products, err := h.service.ListProducts(r.Context(), page, q.Get("filter"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PUT /products/{productId}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			httputil.WriteError(w, r, apperrors.InvalidInput(vErr.Error()), h.logger)
		} else {
			httputil.WriteError(w, r, apperrors.InvalidInput("Request body is empty or invalid JSON."), h.logger)
		}
		return
	}

	input := service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		StockLevel: domain.StockLevel{
			Available:     *req.StockLevel.Available,
			Incoming:      *req.StockLevel.Incoming,
			Backorderable: *req.StockLevel.Backorderable,
		},
		LeadTime: domain.LeadTime{
			Days:        *req.LeadTime.Days,
			Description: req.LeadTime.Description,
		},
		P2OFlag:              *req.P2OFlag,
		AdditionalProperties: req.AdditionalProperties,
	}

	summary, err := h.service.UpdateProduct(r.Context(), id, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}

// DeleteProduct handles DELETE /products/{productId}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAvailability handles GET /products/{productId}/availability
func (h *CatalogHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	availability, err := h.service.GetAvailability(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, availability)
}
