package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// RespondError is respondError for middleware outside this package.
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// user-facing message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return http.StatusBadRequest, ErrMsgInvalidIdentifier
	case errors.Is(err, domain.ErrMalformedCode),
		errors.Is(err, domain.ErrChecksumMismatch),
		errors.Is(err, domain.ErrUnsupportedVersion),
		errors.Is(err, domain.ErrFieldOutOfRange):
		return http.StatusBadRequest, ErrMsgInvalidCode
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFound
	case errors.Is(err, domain.ErrNoCrosshair):
		return http.StatusNotFound, ErrMsgNoCrosshair
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, ErrMsgUpstreamFailed
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
