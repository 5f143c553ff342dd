package handlers

import (
	"FarmKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the service error taxonomy onto HTTP status
// codes. Anything outside the taxonomy is logged and becomes a generic 500.
func writeServiceError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	var missing *service.MissingFieldError
	var invalidRef *service.InvalidReferenceError

	switch {
	case errors.As(err, &missing), errors.As(err, &invalidRef), errors.Is(err, service.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrFarmNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrTypeInUse):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Errorw("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
