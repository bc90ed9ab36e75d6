package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/httputil"
	"github.com/oms-integration/mockcommerce/pkg/pagination"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/orders/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(svc *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	data, err := payload.Decode(r.Body)
	if err != nil {
		httputil.WriteError(w, r, invalidRequestBody(), h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), data)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := pagination.ParseLimitOffset(r)
	if err != nil {
		httputil.WriteError(w, r, parameterError(err), h.logger)
		return
	}

	query := service.ListQuery{
		CustomerID: r.URL.Query().Get("customerId"),
		Status:     r.URL.Query().Get("status"),
		DateFrom:   r.URL.Query().Get("dateFrom"),
		DateTo:     r.URL.Query().Get("dateTo"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}

	orders, total, err := h.service.ListOrders(r.Context(), query)
	if err != nil {
		httputil.WriteError(w, r, parameterError(err), h.logger)
		return
	}

	httputil.WriteListJSON(w, total, orders)
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	data, err := payload.Decode(r.Body)
	if err != nil {
		httputil.WriteError(w, r, invalidRequestBody(), h.logger)
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), id, data)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, order)
}

// CancelOrder handles DELETE /orders/{orderId}. Cancellation is a soft
// status transition; success carries no body.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	if err := h.service.CancelOrder(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func invalidRequestBody() error {
	return apperrors.FieldErrors{{
		Code:    "INVALID_REQUEST",
		Message: "Request body must be valid JSON and not empty.",
	}}
}

// parameterError rewraps an invalid query parameter failure as a one-element
// error list. The orders API answers every validation problem, body or query
// string, with the list shape.
func parameterError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == "INVALID_PARAMETER" {
		return apperrors.FieldErrors{{
			Code:    appErr.Code,
			Message: appErr.Message,
			Field:   appErr.Field,
		}}
	}
	return err
}
