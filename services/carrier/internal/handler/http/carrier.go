package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/httputil"
	"github.com/oms-integration/mockcommerce/pkg/payload"
	"github.com/oms-integration/mockcommerce/services/carrier/internal/service"
)

// labelFields are checked in order; the first absent field is reported.
var labelFields = []string{
	"packageDimensions", "packageWeight", "recipientAddress", "recipientCity",
	"recipientName", "recipientState", "recipientZip", "senderAddress",
	"senderCity", "senderName", "senderState", "senderZip", "shippingOptions",
}

var pickupFields = []string{
	"contactName", "contactPhone", "pickupAddress", "pickupCity",
	"pickupDate", "pickupState", "pickupTime", "pickupZip",
}

// CarrierHandler handles HTTP requests for the shipping carrier stub.
type CarrierHandler struct {
	service *service.CarrierService
	logger  *slog.Logger
}

// NewCarrierHandler creates a new carrier handler.
func NewCarrierHandler(svc *service.CarrierService, logger *slog.Logger) *CarrierHandler {
	return &CarrierHandler{service: svc, logger: logger}
}

// GenerateLabel handles POST /labels.
func (h *CarrierHandler) GenerateLabel(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	for _, field := range labelFields {
		if _, ok := data[field]; !ok {
			httputil.WriteError(w, r, missingField(field), h.logger)
			return
		}
	}

	weight, ok := asFloat(data["packageWeight"])
	if !ok {
		httputil.WriteError(w, r, &apperrors.AppError{
			Code:    "INVALID_DATA_TYPE",
			Message: "Invalid data type for packageWeight.",
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}, h.logger)
		return
	}

	in := service.LabelInput{
		PackageDimensions: asString(data["packageDimensions"]),
		PackageWeight:     weight,
		RecipientAddress:  asString(data["recipientAddress"]),
		RecipientCity:     asString(data["recipientCity"]),
		RecipientName:     asString(data["recipientName"]),
		RecipientState:    asString(data["recipientState"]),
		RecipientZip:      asString(data["recipientZip"]),
		SenderAddress:     asString(data["senderAddress"]),
		SenderCity:        asString(data["senderCity"]),
		SenderName:        asString(data["senderName"]),
		SenderState:       asString(data["senderState"]),
		SenderZip:         asString(data["senderZip"]),
		ShippingOptions:   asString(data["shippingOptions"]),
	}

	result, err := h.service.GenerateLabel(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// SchedulePickup handles POST /pickups.
func (h *CarrierHandler) SchedulePickup(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(w, r)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	for _, field := range pickupFields {
		if _, ok := data[field]; !ok {
			httputil.WriteError(w, r, missingField(field), h.logger)
			return
		}
	}

	in := service.PickupInput{
		ContactName:   asString(data["contactName"]),
		ContactPhone:  asString(data["contactPhone"]),
		PickupAddress: asString(data["pickupAddress"]),
		PickupCity:    asString(data["pickupCity"]),
		PickupDate:    asString(data["pickupDate"]),
		PickupState:   asString(data["pickupState"]),
		PickupTime:    asString(data["pickupTime"]),
		PickupZip:     asString(data["pickupZip"]),
		SKU:           asString(data["sku"]),
	}

	result, err := h.service.SchedulePickup(r.Context(), in)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// GetTracking handles GET /trackings/{trackingNumber}.
func (h *CarrierHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	trackingNumber := chi.URLParam(r, "trackingNumber")

	tracking, err := h.service.GetTracking(r.Context(), trackingNumber)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tracking)
}

// decodeBody enforces the JSON content type and decodes the request body.
// The carrier answers malformed requests with a single error object rather
// than a list, so the shared content-type middleware does not apply here.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	invalid := &apperrors.AppError{
		Code:    "INVALID_REQUEST_FORMAT",
		Message: "Request body must be JSON.",
		Status:  http.StatusBadRequest,
		Err:     apperrors.ErrInvalidInput,
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return nil, invalid
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	data, err := payload.Decode(r.Body)
	if err != nil {
		return nil, invalid
	}
	return data, nil
}

func missingField(field string) error {
	return &apperrors.AppError{
		Code:    "MISSING_FIELD",
		Message: "Missing required field: " + field,
		Status:  http.StatusBadRequest,
		Err:     apperrors.ErrInvalidInput,
	}
}

// asString renders a payload value as a string, passing strings through
// and formatting scalars the way they appeared on the wire.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		if n, ok := payload.Number(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return ""
	}
}

// asFloat accepts a JSON number or a numeric string for packageWeight.
func asFloat(v any) (float64, bool) {
	if n, ok := payload.Number(v); ok {
		return n, true
	}
	if s, ok := payload.String(v); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
