package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/service/assistant"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors onto HTTP statuses. A duplicate save
// additionally reports the conflicting record so the SPA can show the
// stored spelling of the code.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var dup *domain.DuplicateError
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":           "duplicate paint",
			"conflictingId":   dup.ConflictingID,
			"conflictingCode": dup.ConflictingCode,
		})
	case errors.As(err, &ve):
		fields := make([]map[string]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields = append(fields, map[string]string{
				"field":   fe.Field,
				"message": fe.Message,
			})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, assistant.ErrDisabled):
		writeError(w, http.StatusServiceUnavailable, "assistant is not configured")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
