package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/httputil"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/service"
)

var itemFields = []string{"itemId", "productName", "quantity", "price"}

// WarehouseHandler handles HTTP requests for the warehouse orders stub.
type WarehouseHandler struct {
	service *service.WarehouseService
	logger  *slog.Logger
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(svc *service.WarehouseService, logger *slog.Logger) *WarehouseHandler {
	return &WarehouseHandler{service: svc, logger: logger}
}

// CreateOrder handles POST /orders. The request body is an item; the
// created order wraps it as a single line.
func (h *WarehouseHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if missing := missingItemFields(data); len(missing) > 0 {
		httputil.WriteError(w, r, &apperrors.AppError{
			Code:    "MISSING_FIELDS",
			Message: "Missing required fields: " + strings.Join(missing, ", "),
			Field:   missing[0],
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}, h.logger)
		return
	}

	in, err := itemInput(data)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.service.CreateOrder(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, view)
}

// GetOrder handles GET /orders/{orderId}.
func (h *WarehouseHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// ReplaceOrder handles PUT /orders/{orderId}. The body is an item that
// replaces the content of the order's first line.
func (h *WarehouseHandler) ReplaceOrder(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	if missing := missingItemFields(data); len(missing) > 0 {
		httputil.WriteError(w, r, &apperrors.AppError{
			Code:    "MISSING_FIELDS_FOR_PUT",
			Message: "PUT request body must conform to itemordered. Missing: " + strings.Join(missing, ", "),
			Field:   missing[0],
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}, h.logger)
		return
	}

	in, err := itemInput(data)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.service.ReplaceFirstItem(r.Context(), chi.URLParam(r, "orderId"), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// PatchOrder handles PATCH /orders/{orderId}.
func (h *WarehouseHandler) PatchOrder(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	view, err := h.service.PatchOrder(r.Context(), chi.URLParam(r, "orderId"), data)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (h *WarehouseHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "orderId")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus handles PATCH /orders/{orderId}/status with a body of
// {"status": "..."}.
func (h *WarehouseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	status, ok := payload.String(data["status"])
	if !ok {
		httputil.WriteError(w, r, &apperrors.AppError{
			Code:    "INVALID_STATUS_PAYLOAD",
			Message: "Request body must contain a 'status' field as a string.",
			Field:   "status",
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}, h.logger)
		return
	}

	view, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), status)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// decodeBody decodes the request body into a map. A missing, non-JSON or
// empty body is rejected, matching the upstream warehouse API.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	invalid := &apperrors.AppError{
		Code:    "INVALID_REQUEST_BODY",
		Message: "Request body is missing or not JSON.",
		Status:  http.StatusBadRequest,
		Err:     apperrors.ErrInvalidInput,
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return nil, invalid
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	data, err := payload.Decode(r.Body)
	if err != nil || len(data) == 0 {
		return nil, invalid
	}
	return data, nil
}

func missingItemFields(data map[string]any) []string {
	var missing []string
	for _, field := range itemFields {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// itemInput extracts and type-checks the item fields of a request body.
func itemInput(data map[string]any) (service.ItemInput, error) {
	quantity, ok := payload.Int(data["quantity"])
	if !ok {
		return service.ItemInput{}, &apperrors.AppError{
			Code:    "INVALID_FIELD_TYPE",
			Message: "Field 'quantity' must be an integer.",
			Field:   "quantity",
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}
	}

	price, ok := payload.Number(data["price"])
	if !ok {
		return service.ItemInput{}, &apperrors.AppError{
			Code:    "INVALID_FIELD_TYPE",
			Message: "Field 'price' must be a number.",
			Field:   "price",
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}
	}

	productID, _ := payload.String(data["itemId"])
	productName, _ := payload.String(data["productName"])

	return service.ItemInput{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	}, nil
}
