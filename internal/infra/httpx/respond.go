package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError classifies err and renders the structured error body. Internal
// faults are logged with their cause but rendered generically.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ae := apperr.From(err)
	if ae.Kind == apperr.KindInternal {
		slog.ErrorContext(ctx, "request failed", "error", ae)
	}
	writeJSON(w, statusOf(ae.Kind), ErrorResponse{
		Error:   ae.Code,
		Message: ae.Message,
		Fields:  ae.Fields,
	})
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
