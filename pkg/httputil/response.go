package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/oms-integration/mockcommerce/pkg/errors"
	"github.com/oms-integration/mockcommerce/pkg/logger"
)

// TotalCountHeader carries the pre-pagination match count on list responses.
const TotalCountHeader = "X-Total-Count"

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteListJSON writes a 200 list response with the total match count exposed
// out-of-band in the X-Total-Count header, so pagination never distorts it.
func WriteListJSON(w http.ResponseWriter, total int, v any) {
	w.Header().Set(TotalCountHeader, strconv.Itoa(total))
	WriteJSON(w, http.StatusOK, v)
}

// WriteError writes an error response matching the stubbed backend's wire
// format: accumulated validation failures go out as a bare JSON array of
// {code, message, field} objects, everything else as a single object.
// Internal errors are logged and surfaced generically. It prefers the
// request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	var fieldErrs apperrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		WriteJSON(w, http.StatusBadRequest, fieldErrs)
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status == http.StatusInternalServerError {
			logInternal(l, r, err)
		}
		WriteJSON(w, appErr.Status, appErr)
		return
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logInternal(l, r, err)
		WriteJSON(w, status, apperrors.Internal(err))
		return
	}

	WriteJSON(w, status, &apperrors.AppError{Code: "ERROR", Message: err.Error()})
}

func logInternal(l *slog.Logger, r *http.Request, err error) {
	l.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}
